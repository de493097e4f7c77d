package math

import "testing"

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3Zero[float64](), NewVec3(0.0, 0, 1))
	if p := r.At(5); p != (Vec3[float64]{0, 0, 5}) {
		t.Fatalf("Ray.At\nhave %v\nwant {0 0 5}", p)
	}

	s := NewRayFromPoints(NewVec3(1.0, 1, 1), NewVec3(3.0, 1, 1))
	if p := s.At(1); p != (Vec3[float64]{3, 1, 1}) {
		t.Fatalf("NewRayFromPoints.At(1)\nhave %v\nwant {3 1 1}", p)
	}
	if l := s.Len(); l != 2 {
		t.Fatalf("Ray.Len\nhave %v\nwant 2", l)
	}
	if l := s.Len2(); l != 4 {
		t.Fatalf("Ray.Len2\nhave %v\nwant 4", l)
	}
}

func TestRayNormalizeNeg(t *testing.T) {
	r := NewRay(NewVec3(1.0, 2, 3), NewVec3(0.0, 4, 0))
	n := r.Normalizing()
	if n.Org != r.Org || !n.Dir.Eq(NewVec3(0.0, 1, 0)) {
		t.Fatalf("Ray.Normalizing\nhave %v", n)
	}
	if r.Dir != (Vec3[float64]{0, 4, 0}) {
		t.Fatal("Ray.Normalizing mutated the receiver")
	}
	r.Normalize()
	if !r.Eq(n) {
		t.Fatalf("Ray.Normalize\nhave %v\nwant %v", r, n)
	}

	g := r.Neg()
	if g.Org != r.Org || g.Dir != r.Dir.Neg() {
		t.Fatalf("Ray.Neg\nhave %v", g)
	}
	if !g.Ne(r) {
		t.Fatal("Ray.Ne: negated ray compares equal")
	}
}

func TestRayTransformFamily(t *testing.T) {
	r := NewRay(NewVec3(1.0, 0, 0), NewVec3(0.0, 1, 0))

	tr := r.Translation(NewVec3(0.0, 0, 3))
	if want := NewRay(NewVec3(1.0, 0, 3), NewVec3(0.0, 1, 0)); !tr.Eq(want) {
		t.Fatalf("Ray.Translation\nhave %v\nwant %v", tr, want)
	}

	rz := r.RotationZ(90)
	if want := NewRay(NewVec3(0.0, 1, 0), NewVec3(-1.0, 0, 0)); !rz.Eq(want) {
		t.Fatalf("Ray.RotationZ\nhave %v\nwant %v", rz, want)
	}
	if ra := r.Rotation(NewVec3(0.0, 0, 2), 90); !ra.Eq(rz) {
		t.Fatalf("Ray.Rotation\nhave %v\nwant %v", ra, rz)
	}
	if rx := r.RotationX(90); !rx.Eq(NewRay(NewVec3(1.0, 0, 0), NewVec3(0.0, 0, 1))) {
		t.Fatalf("Ray.RotationX\nhave %v", rx)
	}
	if ry := r.RotationY(-90); !ry.Eq(NewRay(NewVec3(0.0, 0, 1), NewVec3(0.0, 1, 0))) {
		t.Fatalf("Ray.RotationY\nhave %v", ry)
	}
	if rs := r.Scaling(NewVec3(2.0, 3, 1)); !rs.Eq(NewRay(NewVec3(2.0, 0, 0), NewVec3(0.0, 3, 0))) {
		t.Fatalf("Ray.Scaling\nhave %v", rs)
	}

	in := r
	in.RotateZ(90).Translate(NewVec3(0.0, 0, 1))
	if want := NewRay(NewVec3(0.0, 1, 1), NewVec3(-1.0, 0, 0)); !in.Eq(want) {
		t.Fatalf("Ray in-place chain\nhave %v\nwant %v", in, want)
	}
	if r != NewRay(NewVec3(1.0, 0, 0), NewVec3(0.0, 1, 0)) {
		t.Fatal("value forms mutated the receiver")
	}
}

func TestRayTransform(t *testing.T) {
	move := NewTransformTranslate(NewVec3(5.0, -2, 1))
	r := NewRay(NewVec3(1.0, 1, 1), NewVec3(0.0, 0, 2))

	m := r.Transformation(move)
	if m.Org != (Vec3[float64]{6, -1, 2}) {
		t.Fatalf("Ray.Transformation origin\nhave %v\nwant {6 -1 2}", m.Org)
	}
	if m.Dir != r.Dir {
		t.Fatalf("Ray.Transformation translated the direction\nhave %v\nwant %v", m.Dir, r.Dir)
	}

	tr := NewTransformRotateX(30.0).
		Mul(NewTransformScale(NewVec3(1.0, 2, 4))).
		Mul(NewTransformTranslate(NewVec3(-3.0, 0, 8)))
	back := r.Transformation(tr).InvTransformation(tr)
	if !back.Eq(r) {
		t.Fatalf("Ray round trip\nhave %v\nwant %v", back, r)
	}

	in := r
	in.Transform(tr)
	if !in.Eq(r.Transformation(tr)) {
		t.Fatal("Ray.Transform and Ray.Transformation disagree")
	}
	in.InvTransform(tr)
	if !in.Eq(r) {
		t.Fatalf("Ray.InvTransform\nhave %v\nwant %v", in, r)
	}

	// The point at distance d maps the same way whether the ray or the point
	// is transformed.
	for _, d := range []float64{0, 0.5, 3} {
		if a, b := r.Transformation(tr).At(d), r.At(d).Transformation(tr); !a.Eq(b) {
			t.Fatalf("At(%v) after transform\nhave %v\nwant %v", d, a, b)
		}
	}
}
