package math

func NewRay[T Scalar](org, dir Vec3[T]) Ray[T] {
	return Ray[T]{Org: org, Dir: dir}
}

// NewRayFromPoints returns the ray leaving from and reaching to at d = 1.
func NewRayFromPoints[T Scalar](from, to Vec3[T]) Ray[T] {
	return Ray[T]{Org: from, Dir: to.Sub(from)}
}

// At returns the point at distance d along the ray: Org + Dir*d.
func (r Ray[T]) At(d T) Vec3[T] {
	return r.Org.Add(r.Dir.MulScalar(d))
}

// Len is the length of Dir; it only carries meaning for a non-degenerate Dir.
func (r Ray[T]) Len() T {
	return r.Dir.Len()
}

func (r Ray[T]) Len2() T {
	return r.Dir.Len2()
}

func (r Ray[T]) Eq(other Ray[T]) bool {
	return r.Org.Eq(other.Org) && r.Dir.Eq(other.Dir)
}

func (r Ray[T]) Ne(other Ray[T]) bool {
	return !r.Eq(other)
}

// Neg returns the ray leaving the same origin in the opposite direction.
func (r Ray[T]) Neg() Ray[T] {
	return Ray[T]{Org: r.Org, Dir: r.Dir.Neg()}
}

// Normalize normalizes Dir in place; Org is untouched.
func (r *Ray[T]) Normalize() *Ray[T] {
	r.Dir.Normalize()
	return r
}

func (r Ray[T]) Normalizing() Ray[T] {
	return *r.Normalize()
}

// Translate moves the origin; a direction has no position to move.
func (r *Ray[T]) Translate(d Vec3[T]) *Ray[T] {
	r.Org.Translate(d)
	return r
}

func (r Ray[T]) Translation(d Vec3[T]) Ray[T] {
	return *r.Translate(d)
}

func (r *Ray[T]) RotateXSinCos(sine, cosine T) *Ray[T] {
	r.Org.RotateXSinCos(sine, cosine)
	r.Dir.RotateXSinCos(sine, cosine)
	return r
}

func (r Ray[T]) RotationXSinCos(sine, cosine T) Ray[T] {
	return *r.RotateXSinCos(sine, cosine)
}

func (r *Ray[T]) RotateX(angleDeg T) *Ray[T] {
	return r.RotateXSinCos(sinCosDeg(angleDeg))
}

func (r Ray[T]) RotationX(angleDeg T) Ray[T] {
	return *r.RotateX(angleDeg)
}

func (r *Ray[T]) RotateYSinCos(sine, cosine T) *Ray[T] {
	r.Org.RotateYSinCos(sine, cosine)
	r.Dir.RotateYSinCos(sine, cosine)
	return r
}

func (r Ray[T]) RotationYSinCos(sine, cosine T) Ray[T] {
	return *r.RotateYSinCos(sine, cosine)
}

func (r *Ray[T]) RotateY(angleDeg T) *Ray[T] {
	return r.RotateYSinCos(sinCosDeg(angleDeg))
}

func (r Ray[T]) RotationY(angleDeg T) Ray[T] {
	return *r.RotateY(angleDeg)
}

func (r *Ray[T]) RotateZSinCos(sine, cosine T) *Ray[T] {
	r.Org.RotateZSinCos(sine, cosine)
	r.Dir.RotateZSinCos(sine, cosine)
	return r
}

func (r Ray[T]) RotationZSinCos(sine, cosine T) Ray[T] {
	return *r.RotateZSinCos(sine, cosine)
}

func (r *Ray[T]) RotateZ(angleDeg T) *Ray[T] {
	return r.RotateZSinCos(sinCosDeg(angleDeg))
}

func (r Ray[T]) RotationZ(angleDeg T) Ray[T] {
	return *r.RotateZ(angleDeg)
}

func (r *Ray[T]) RotateSinCos(axis Vec3[T], sine, cosine T) *Ray[T] {
	r.Org.RotateSinCos(axis, sine, cosine)
	r.Dir.RotateSinCos(axis, sine, cosine)
	return r
}

func (r Ray[T]) RotationSinCos(axis Vec3[T], sine, cosine T) Ray[T] {
	return *r.RotateSinCos(axis, sine, cosine)
}

func (r *Ray[T]) Rotate(axis Vec3[T], angleDeg T) *Ray[T] {
	s, c := sinCosDeg(angleDeg)
	return r.RotateSinCos(axis, s, c)
}

func (r Ray[T]) Rotation(axis Vec3[T], angleDeg T) Ray[T] {
	return *r.Rotate(axis, angleDeg)
}

func (r *Ray[T]) Scale(s Vec3[T]) *Ray[T] {
	r.Org.Scale(s)
	r.Dir.Scale(s)
	return r
}

func (r Ray[T]) Scaling(s Vec3[T]) Ray[T] {
	return *r.Scale(s)
}

// Transform maps Org as a point and Dir as a free vector.
func (r *Ray[T]) Transform(tr Transform[T]) *Ray[T] {
	r.Org = tr.TransformPoint(r.Org)
	r.Dir = tr.TransformVector(r.Dir)
	return r
}

func (r Ray[T]) Transformation(tr Transform[T]) Ray[T] {
	return *r.Transform(tr)
}

func (r *Ray[T]) InvTransform(tr Transform[T]) *Ray[T] {
	r.Org = tr.InvTransformPoint(r.Org)
	r.Dir = tr.InvTransformVector(r.Dir)
	return r
}

func (r Ray[T]) InvTransformation(tr Transform[T]) Ray[T] {
	return *r.InvTransform(tr)
}
