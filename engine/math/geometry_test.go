package math

import "testing"

func TestExtents(t *testing.T) {
	e := NewExtents3DEmpty[float64]()
	if !e.IsEmpty() {
		t.Fatal("new extents should be empty")
	}
	e.Expand(NewVec3(1.0, -2, 3))
	e.Expand(NewVec3(-1.0, 4, 0))
	if e.Min != (Vec3[float64]{-1, -2, 0}) || e.Max != (Vec3[float64]{1, 4, 3}) {
		t.Fatalf("Extents3D.Expand\nhave %v", e)
	}
	if c := e.Center(); c != (Vec3[float64]{0, 1, 1.5}) {
		t.Fatalf("Extents3D.Center\nhave %v\nwant {0 1 1.5}", c)
	}
	if s := e.Size(); s != (Vec3[float64]{2, 6, 3}) {
		t.Fatalf("Extents3D.Size\nhave %v\nwant {2 6 3}", s)
	}
	if !e.Contains(NewVec3Zero[float64]()) || e.Contains(NewVec3(0.0, 5, 0)) {
		t.Fatal("Extents3D.Contains")
	}
}

func TestIntersectBox(t *testing.T) {
	box := Extents3D[float64]{Min: NewVec3(-1.0, -1, -1), Max: NewVec3(1.0, 1, 1)}

	cases := []struct {
		name string
		ray  Ray[float64]
		hit  bool
		d    float64
	}{
		{"front", NewRay(NewVec3(0.0, 0, -5), NewVec3(0.0, 0, 1)), true, 4},
		{"scaled dir", NewRay(NewVec3(0.0, 0, -5), NewVec3(0.0, 0, 2)), true, 2},
		{"inside", NewRay(NewVec3Zero[float64](), NewVec3(1.0, 0, 0)), true, 0},
		{"behind", NewRay(NewVec3(0.0, 0, 5), NewVec3(0.0, 0, 1)), false, 0},
		{"miss parallel", NewRay(NewVec3(2.0, 0, -5), NewVec3(0.0, 0, 1)), false, 0},
		{"miss diagonal", NewRay(NewVec3(0.0, 3, -5), NewVec3(0.0, 0, 1)), false, 0},
	}
	for _, c := range cases {
		d, hit := IntersectBox(c.ray, box)
		if hit != c.hit {
			t.Fatalf("%s: hit\nhave %v\nwant %v", c.name, hit, c.hit)
		}
		if hit && Abs(d-c.d) >= Threshold {
			t.Fatalf("%s: distance\nhave %v\nwant %v", c.name, d, c.d)
		}
	}
}

func TestGenerateNormals(t *testing.T) {
	vertices := []Vertex[float32]{
		{Position: NewVec3[float32](0, 0, 0)},
		{Position: NewVec3[float32](1, 0, 0)},
		{Position: NewVec3[float32](0, 1, 0)},
	}
	GeometryGenerateNormals(vertices, []uint32{0, 1, 2})
	for i, v := range vertices {
		if v.Normal != (Vec3[float32]{0, 0, 1}) {
			t.Fatalf("vertex %d normal\nhave %v\nwant {0 0 1}", i, v.Normal)
		}
	}
}
