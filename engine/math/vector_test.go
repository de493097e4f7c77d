package math

import (
	m "math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	v := NewVec3(1.0, 2, 4)
	w := NewVec3(0.0, -1, 2)

	if u := v.Add(w); u != (Vec3[float64]{1, 1, 6}) {
		t.Fatalf("Vec3.Add\nhave %v\nwant {1 1 6}", u)
	}
	if u := v.Sub(w); u != (Vec3[float64]{1, 3, 2}) {
		t.Fatalf("Vec3.Sub\nhave %v\nwant {1 3 2}", u)
	}
	if u := v.MulScalar(-1); u != (Vec3[float64]{-1, -2, -4}) {
		t.Fatalf("Vec3.MulScalar\nhave %v\nwant {-1 -2 -4}", u)
	}
	if u := v.DivScalar(2); u != (Vec3[float64]{0.5, 1, 2}) {
		t.Fatalf("Vec3.DivScalar\nhave %v\nwant {0.5 1 2}", u)
	}
	if u := v.Mul(w); u != (Vec3[float64]{0, -2, 8}) {
		t.Fatalf("Vec3.Mul\nhave %v\nwant {0 -2 8}", u)
	}
	if d := v.Dot(w); d != 6 {
		t.Fatalf("Vec3.Dot\nhave %v\nwant 6", d)
	}
	if l := v.Len(); l != m.Sqrt(21) {
		t.Fatalf("Vec3.Len\nhave %v\nwant %v", l, m.Sqrt(21))
	}
	if l := v.Len2(); l != 21 {
		t.Fatalf("Vec3.Len2\nhave %v\nwant 21", l)
	}

	u := v
	u.AddAssign(w).MulAssign(2).SubAssign(NewVec3(2.0, 2, 2)).DivAssign(2)
	if u != (Vec3[float64]{0, 0, 5}) {
		t.Fatalf("Vec3 in-place chain\nhave %v\nwant {0 0 5}", u)
	}
}

func TestVec3DotCross(t *testing.T) {
	vs := []Vec3[float64]{
		{1, 0, 0}, {0, 1, 0}, {3, -2, 5}, {-0.5, 7, 1.25}, {0, 0, 0},
	}
	for _, a := range vs {
		for _, b := range vs {
			if a.Dot(b) != b.Dot(a) {
				t.Fatalf("Vec3.Dot not commutative for %v, %v", a, b)
			}
			if c, d := a.Cross(b), b.Cross(a).Neg(); !c.Eq(d) {
				t.Fatalf("Vec3.Cross not anti-commutative for %v, %v\nhave %v\nwant %v", a, b, c, d)
			}
		}
	}
	x, y := NewVec3(1.0, 0, 0), NewVec3(0.0, 1, 0)
	if z := x.Cross(y); z != (Vec3[float64]{0, 0, 1}) {
		t.Fatalf("Vec3.Cross\nhave %v\nwant {0 0 1}", z)
	}
}

func TestVec3Normalize(t *testing.T) {
	units := []Vec3[float64]{
		{1, 0, 0}, {0, -1, 0}, NewVec3(1.0, 1, 1).Normalizing(), NewVec3(3.0, 4, 0).DivScalar(5),
	}
	for _, u := range units {
		if n := u.Normalizing(); !n.Eq(u) {
			t.Fatalf("Vec3.Normalizing of a unit vector\nhave %v\nwant %v", n, u)
		}
	}

	v := NewVec3[float32](0, 0, -2)
	if v.Normalize(); v != (Vec3[float32]{0, 0, -1}) {
		t.Fatalf("Vec3.Normalize\nhave %v\nwant {0 0 -1}", v)
	}

	zero := NewVec3Zero[float64]()
	if n := zero.Normalizing(); n != zero {
		t.Fatalf("Vec3.Normalizing of zero\nhave %v\nwant %v", n, zero)
	}
	if l := NewVec3(0.0, 3, 4).Normalizing().Len(); Abs(l-1) >= Threshold {
		t.Fatalf("Vec3.Normalizing length\nhave %v\nwant 1", l)
	}
}

func TestVec3Eq(t *testing.T) {
	v := NewVec3(1.0, 2, 3)
	if !v.Eq(NewVec3(1+Threshold/2, 2, 3-Threshold/2)) {
		t.Fatal("Vec3.Eq: values within Threshold should compare equal")
	}
	if !v.Ne(NewVec3(1.0, 2, 3+2*Threshold)) {
		t.Fatal("Vec3.Ne: values beyond Threshold should differ")
	}
}

func TestVec3Rotations(t *testing.T) {
	x := NewVec3(1.0, 0, 0)
	y := NewVec3(0.0, 1, 0)
	z := NewVec3(0.0, 0, 1)

	if r := x.RotationZ(90); !r.Eq(y) {
		t.Fatalf("Vec3.RotationZ\nhave %v\nwant %v", r, y)
	}
	if r := y.RotationX(90); !r.Eq(z) {
		t.Fatalf("Vec3.RotationX\nhave %v\nwant %v", r, z)
	}
	if r := z.RotationY(90); !r.Eq(x) {
		t.Fatalf("Vec3.RotationY\nhave %v\nwant %v", r, x)
	}
	if r := x.Rotation(z, 90); !r.Eq(y) {
		t.Fatalf("Vec3.Rotation\nhave %v\nwant %v", r, y)
	}
	s, c := m.Sincos(m.Pi / 2)
	if r := y.RotationXSinCos(s, c); !r.Eq(z) {
		t.Fatalf("Vec3.RotationXSinCos\nhave %v\nwant %v", r, z)
	}

	v := NewVec3(1.0, 2, 3)
	axis := NewVec3(1.0, 1, 0)
	for _, a := range []float64{0, 15, 90, 133, -200} {
		want := NewQuatAxisAngle(axis, a).RotateVector(v)
		if r := v.Rotation(axis, a); !r.Eq(want) {
			t.Fatalf("Vec3.Rotation(%v)\nhave %v\nwant %v", a, r, want)
		}
		if r := v.Rotation(z, a); !r.Eq(v.RotationZ(a)) {
			t.Fatalf("Vec3.Rotation about Z (%v)\nhave %v\nwant %v", a, r, v.RotationZ(a))
		}
	}

	u := v
	u.RotateZ(90).Translate(NewVec3(1.0, 0, 0)).Scale(NewVec3(2.0, 2, 2))
	if want := NewVec3(-2.0, 2, 6); !u.Eq(want) {
		t.Fatalf("Vec3 in-place transform chain\nhave %v\nwant %v", u, want)
	}
	if v != (Vec3[float64]{1, 2, 3}) {
		t.Fatalf("value forms must not mutate the receiver: have %v", v)
	}
}

func TestVec3TransformRoundTrip(t *testing.T) {
	tr := NewTransformScale(NewVec3(2.0, 0.5, 3)).
		Mul(NewTransformRotate(NewVec3(1.0, -2, 0.5), 37)).
		Mul(NewTransformTranslate(NewVec3(4.0, -1, 9)))

	for _, v := range []Vec3[float64]{{0, 0, 0}, {1, 2, 3}, {-5, 0.25, 7}} {
		if r := v.Transformation(tr).InvTransformation(tr); !r.Eq(v) {
			t.Fatalf("point round trip\nhave %v\nwant %v", r, v)
		}
		if r := v.TransformationDir(tr).InvTransformationDir(tr); !r.Eq(v) {
			t.Fatalf("vector round trip\nhave %v\nwant %v", r, v)
		}
		p := v
		p.Transform(tr).InvTransform(tr)
		if !p.Eq(v) {
			t.Fatalf("in-place point round trip\nhave %v\nwant %v", p, v)
		}
		d := v
		d.TransformDir(tr).InvTransformDir(tr)
		if !d.Eq(v) {
			t.Fatalf("in-place vector round trip\nhave %v\nwant %v", d, v)
		}
	}
}
