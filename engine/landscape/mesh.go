package landscape

import "github.com/spaghettifunk/landscape/engine/math"

// cubeFaces lists each face of the unit cube centred at the origin as four
// corners wound counter-clockwise when seen from outside.
var cubeFaces = [6][4]math.Vec3[float64]{
	{{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}},     // +Z
	{{X: 0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}}, // -Z
	{{X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: 0.5}},     // +X
	{{X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: -0.5}}, // -X
	{{X: -0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}},     // +Y
	{{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: -0.5, Z: 0.5}}, // -Y
}

// UnitCubeExtents bounds the cube returned by CubeVertices.
func UnitCubeExtents() math.Extents3D[float64] {
	return math.Extents3D[float64]{
		Min: math.NewVec3Splat(-0.5),
		Max: math.NewVec3Splat(0.5),
	}
}

// CubeVertices builds the unit cube primitive: 24 vertices so every face
// gets its own normal, and 36 indices.
func CubeVertices(colour math.Vec3[float64]) ([]math.Vertex[float64], []uint32) {
	vertices := make([]math.Vertex[float64], 0, 24)
	indices := make([]uint32, 0, 36)
	for _, face := range cubeFaces {
		base := uint32(len(vertices))
		for _, p := range face {
			vertices = append(vertices, math.Vertex[float64]{Position: p, Colour: colour})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	math.GeometryGenerateNormals(vertices, indices)
	return vertices, indices
}
