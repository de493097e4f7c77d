package math

import m "math"

// GeometryGenerateNormals assigns every triangle's face normal to its three
// vertices.
func GeometryGenerateNormals[T Scalar](vertices []Vertex[T], indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		normal := edge1.Cross(edge2).Normalizing()

		// NOTE: This just generates a face normal. Smoothing out should be done in a separate pass if desired.
		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// NewExtents3DEmpty returns inverted extents that any Expand call replaces.
func NewExtents3DEmpty[T Scalar]() Extents3D[T] {
	inf := T(m.Inf(1))
	return Extents3D[T]{Min: NewVec3Splat(inf), Max: NewVec3Splat(-inf)}
}

func (e Extents3D[T]) IsEmpty() bool {
	return e.Min.X > e.Max.X || e.Min.Y > e.Max.Y || e.Min.Z > e.Max.Z
}

func (e *Extents3D[T]) Expand(p Vec3[T]) {
	e.Min = e.Min.Min(p)
	e.Max = e.Max.Max(p)
}

func (e Extents3D[T]) Center() Vec3[T] {
	return e.Min.Add(e.Max).MulScalar(0.5)
}

func (e Extents3D[T]) Size() Vec3[T] {
	return e.Max.Sub(e.Min)
}

func (e Extents3D[T]) Contains(p Vec3[T]) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X &&
		p.Y >= e.Min.Y && p.Y <= e.Max.Y &&
		p.Z >= e.Min.Z && p.Z <= e.Max.Z
}

// IntersectBox runs the slab test of r against e. It reports the ray
// parameter where r enters the box (0 when Org is inside) and whether the
// box is hit at all in front of the origin.
func IntersectBox[T Scalar](r Ray[T], e Extents3D[T]) (T, bool) {
	tmin, tmax := m.Inf(-1), m.Inf(1)
	org := [3]float64{float64(r.Org.X), float64(r.Org.Y), float64(r.Org.Z)}
	dir := [3]float64{float64(r.Dir.X), float64(r.Dir.Y), float64(r.Dir.Z)}
	lo := [3]float64{float64(e.Min.X), float64(e.Min.Y), float64(e.Min.Z)}
	hi := [3]float64{float64(e.Max.X), float64(e.Max.Y), float64(e.Max.Z)}

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if org[i] < lo[i] || org[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - org[i]) / dir[i]
		t2 := (hi[i] - org[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = m.Max(tmin, t1)
		tmax = m.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	return T(m.Max(tmin, 0)), true
}
