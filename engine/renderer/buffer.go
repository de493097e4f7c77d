package renderer

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/landscape/engine/math"
	"golang.org/x/image/math/f32"
)

/**
 * @brief A mesh as the application describes it: vertices in model space
 * and triangle indices into them.
 */
type Primitive struct {
	Name     string
	Vertices []math.Vertex[float64]
	Indices  []uint32
}

/**
 * @brief Everything needed to draw one primitive in one place.
 */
type GeometryRenderData struct {
	ID        uuid.UUID
	Model     math.Transform[float64]
	Primitive *Primitive
}

/**
 * @brief The world-space float32 layout handed to the backend.
 */
type VertexBuffer struct {
	ID        uuid.UUID
	Positions []f32.Vec3
	Normals   []f32.Vec3
	Colours   []f32.Vec3
	Indices   []uint32
	Model     f32.Mat4
	View      f32.Mat4
}

func toF32(v math.Vec3[float64]) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Pack moves every vertex of data into world space and flattens the result.
// Positions go through the model transform as points; normals go through
// its inverse transpose and are renormalized.
func Pack(data *GeometryRenderData, scratch []math.Vec3[float64]) (*VertexBuffer, []math.Vec3[float64]) {
	vertices := data.Primitive.Vertices
	n := len(vertices)
	if cap(scratch) < 2*n {
		scratch = make([]math.Vec3[float64], 2*n)
	}
	src, dst := scratch[:n], scratch[n:2*n]
	for i, v := range vertices {
		src[i] = v.Position
	}
	data.Model.TransformPoints(dst, src)

	buf := &VertexBuffer{
		ID:        data.ID,
		Positions: make([]f32.Vec3, n),
		Normals:   make([]f32.Vec3, n),
		Colours:   make([]f32.Vec3, n),
		Indices:   data.Primitive.Indices,
		Model:     data.Model.M.F32(),
	}
	for i, v := range vertices {
		buf.Positions[i] = toF32(dst[i])
		buf.Normals[i] = toF32(data.Model.TransformNormal(v.Normal).Normalizing())
		buf.Colours[i] = toF32(v.Colour)
	}
	return buf, scratch
}
