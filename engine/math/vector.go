package math

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVec3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0.
 */
func NewVec3Zero[T Scalar]() Vec3[T] {
	return Vec3[T]{}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0.
 */
func NewVec3One[T Scalar]() Vec3[T] {
	return Vec3[T]{1, 1, 1}
}

// NewVec3Splat returns a vector with every component set to a.
func NewVec3Splat[T Scalar](a T) Vec3[T] {
	return Vec3[T]{a, a, a}
}

func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

/**
 * @brief Multiplies the vector by other component by component.
 */
func (v Vec3[T]) Mul(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vec3[T]) MulScalar(scalar T) Vec3[T] {
	return Vec3[T]{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

/**
 * @brief Divides the vector by other component by component.
 */
func (v Vec3[T]) Div(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vec3[T]) DivScalar(scalar T) Vec3[T] {
	return Vec3[T]{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

func (v *Vec3[T]) AddAssign(other Vec3[T]) *Vec3[T] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v *Vec3[T]) SubAssign(other Vec3[T]) *Vec3[T] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v *Vec3[T]) MulAssign(scalar T) *Vec3[T] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v *Vec3[T]) DivAssign(scalar T) *Vec3[T] {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return v
}

/**
 * @brief Computes the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3[T]) Len2() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3[T]) Len() T {
	return sqrt(v.Len2())
}

/**
 * @brief Normalizes the vector in place. A zero-length vector is left as is.
 */
func (v *Vec3[T]) Normalize() *Vec3[T] {
	l2 := v.Len2()
	if l2 != 0 && l2 != 1 {
		v.DivAssign(sqrt(l2))
	}
	return v
}

/**
 * @brief Returns a normalized copy of the vector. A zero-length vector
 * is returned unchanged.
 */
func (v Vec3[T]) Normalizing() Vec3[T] {
	return *v.Normalize()
}

func (v Vec3[T]) Distance(other Vec3[T]) T {
	return v.Sub(other).Len()
}

func (v Vec3[T]) Lerp(other Vec3[T], t T) Vec3[T] {
	return Vec3[T]{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t), Lerp(v.Z, other.Z, t)}
}

func (v Vec3[T]) Min(other Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

func (v Vec3[T]) Max(other Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than Threshold.
 */
func (v Vec3[T]) Eq(other Vec3[T]) bool {
	return Abs(v.X-other.X) < Threshold &&
		Abs(v.Y-other.Y) < Threshold &&
		Abs(v.Z-other.Z) < Threshold
}

func (v Vec3[T]) Ne(other Vec3[T]) bool {
	return !v.Eq(other)
}

func (v *Vec3[T]) Translate(d Vec3[T]) *Vec3[T] {
	return v.AddAssign(d)
}

func (v Vec3[T]) Translation(d Vec3[T]) Vec3[T] {
	return v.Add(d)
}

// RotateXSinCos rotates around the X axis by the angle whose sine and cosine
// are given.
func (v *Vec3[T]) RotateXSinCos(sine, cosine T) *Vec3[T] {
	y, z := v.Y, v.Z
	v.Y = y*cosine - z*sine
	v.Z = y*sine + z*cosine
	return v
}

func (v Vec3[T]) RotationXSinCos(sine, cosine T) Vec3[T] {
	return *v.RotateXSinCos(sine, cosine)
}

func (v *Vec3[T]) RotateX(angleDeg T) *Vec3[T] {
	return v.RotateXSinCos(sinCosDeg(angleDeg))
}

func (v Vec3[T]) RotationX(angleDeg T) Vec3[T] {
	return *v.RotateX(angleDeg)
}

func (v *Vec3[T]) RotateYSinCos(sine, cosine T) *Vec3[T] {
	z, x := v.Z, v.X
	v.Z = z*cosine - x*sine
	v.X = z*sine + x*cosine
	return v
}

func (v Vec3[T]) RotationYSinCos(sine, cosine T) Vec3[T] {
	return *v.RotateYSinCos(sine, cosine)
}

func (v *Vec3[T]) RotateY(angleDeg T) *Vec3[T] {
	return v.RotateYSinCos(sinCosDeg(angleDeg))
}

func (v Vec3[T]) RotationY(angleDeg T) Vec3[T] {
	return *v.RotateY(angleDeg)
}

func (v *Vec3[T]) RotateZSinCos(sine, cosine T) *Vec3[T] {
	x, y := v.X, v.Y
	v.X = x*cosine - y*sine
	v.Y = x*sine + y*cosine
	return v
}

func (v Vec3[T]) RotationZSinCos(sine, cosine T) Vec3[T] {
	return *v.RotateZSinCos(sine, cosine)
}

func (v *Vec3[T]) RotateZ(angleDeg T) *Vec3[T] {
	return v.RotateZSinCos(sinCosDeg(angleDeg))
}

func (v Vec3[T]) RotationZ(angleDeg T) Vec3[T] {
	return *v.RotateZ(angleDeg)
}

/**
 * @brief Rotates the vector around an arbitrary axis (Rodrigues' formula).
 * The axis is normalized first.
 */
func (v *Vec3[T]) RotateSinCos(axis Vec3[T], sine, cosine T) *Vec3[T] {
	a := axis.Normalizing()
	p := *v
	*v = p.MulScalar(cosine).
		Add(a.Cross(p).MulScalar(sine)).
		Add(a.MulScalar(a.Dot(p) * (1 - cosine)))
	return v
}

func (v Vec3[T]) RotationSinCos(axis Vec3[T], sine, cosine T) Vec3[T] {
	return *v.RotateSinCos(axis, sine, cosine)
}

func (v *Vec3[T]) Rotate(axis Vec3[T], angleDeg T) *Vec3[T] {
	s, c := sinCosDeg(angleDeg)
	return v.RotateSinCos(axis, s, c)
}

func (v Vec3[T]) Rotation(axis Vec3[T], angleDeg T) Vec3[T] {
	return *v.Rotate(axis, angleDeg)
}

// Scale multiplies the vector by s component by component.
func (v *Vec3[T]) Scale(s Vec3[T]) *Vec3[T] {
	*v = v.Mul(s)
	return v
}

func (v Vec3[T]) Scaling(s Vec3[T]) Vec3[T] {
	return v.Mul(s)
}

// Transform maps the vector through tr as a point.
func (v *Vec3[T]) Transform(tr Transform[T]) *Vec3[T] {
	*v = tr.TransformPoint(*v)
	return v
}

func (v Vec3[T]) Transformation(tr Transform[T]) Vec3[T] {
	return tr.TransformPoint(v)
}

func (v *Vec3[T]) InvTransform(tr Transform[T]) *Vec3[T] {
	*v = tr.InvTransformPoint(*v)
	return v
}

func (v Vec3[T]) InvTransformation(tr Transform[T]) Vec3[T] {
	return tr.InvTransformPoint(v)
}

// TransformDir maps the vector through tr as a free vector, so the
// translation part of tr is ignored.
func (v *Vec3[T]) TransformDir(tr Transform[T]) *Vec3[T] {
	*v = tr.TransformVector(*v)
	return v
}

func (v Vec3[T]) TransformationDir(tr Transform[T]) Vec3[T] {
	return tr.TransformVector(v)
}

func (v *Vec3[T]) InvTransformDir(tr Transform[T]) *Vec3[T] {
	*v = tr.InvTransformVector(*v)
	return v
}

func (v Vec3[T]) InvTransformationDir(tr Transform[T]) Vec3[T] {
	return tr.InvTransformVector(v)
}
