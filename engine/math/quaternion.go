package math

import m "math"

func NewQuat[T Scalar](v Vec3[T], s T) Quat[T] {
	return Quat[T]{V: v, S: s}
}

/**
 * @brief Creates an identity quaternion.
 */
func NewQuatIdentity[T Scalar]() Quat[T] {
	return Quat[T]{S: 1}
}

/**
 * @brief Creates a quaternion rotating by angleDeg degrees around axis.
 * The axis is normalized internally. The half angle trigonometry runs in
 * float64 regardless of T so that small angles keep their precision.
 *
 * @param axis The axis of rotation.
 * @param angleDeg The angle of rotation, in degrees.
 * @return A new quaternion.
 */
func NewQuatAxisAngle[T Scalar](axis Vec3[T], angleDeg T) Quat[T] {
	half := float64(angleDeg) * Deg2RadMultiplier / 2
	s, c := m.Sincos(half)
	return Quat[T]{V: axis.Normalizing().MulScalar(T(s)), S: T(c)}
}

func (q Quat[T]) Add(other Quat[T]) Quat[T] {
	return Quat[T]{V: q.V.Add(other.V), S: q.S + other.S}
}

func (q Quat[T]) Sub(other Quat[T]) Quat[T] {
	return Quat[T]{V: q.V.Sub(other.V), S: q.S - other.S}
}

func (q Quat[T]) MulScalar(scalar T) Quat[T] {
	return Quat[T]{V: q.V.MulScalar(scalar), S: q.S * scalar}
}

func (q Quat[T]) Neg() Quat[T] {
	return Quat[T]{V: q.V.Neg(), S: -q.S}
}

/**
 * @brief Hamilton product q*other. Not commutative: the result rotates by
 * other first and then by q.
 *
 * (V,S)*(V2,S2) = (V*S2 + V2*S + V×V2, S*S2 - V·V2)
 */
func (q Quat[T]) Mul(other Quat[T]) Quat[T] {
	return Quat[T]{
		V: q.V.MulScalar(other.S).Add(other.V.MulScalar(q.S)).Add(q.V.Cross(other.V)),
		S: q.S*other.S - q.V.Dot(other.V),
	}
}

// MulAssign sets q to q*other.
func (q *Quat[T]) MulAssign(other Quat[T]) *Quat[T] {
	*q = q.Mul(other)
	return q
}

func (q Quat[T]) Dot(other Quat[T]) T {
	return q.V.Dot(other.V) + q.S*other.S
}

func (q Quat[T]) Len2() T {
	return q.Dot(q)
}

func (q Quat[T]) Len() T {
	return sqrt(q.Len2())
}

// Normalize scales q to unit length in place. The zero quaternion is left
// as is.
func (q *Quat[T]) Normalize() *Quat[T] {
	l2 := q.Len2()
	if l2 != 0 && l2 != 1 {
		*q = q.MulScalar(1 / sqrt(l2))
	}
	return q
}

func (q Quat[T]) Normalizing() Quat[T] {
	return *q.Normalize()
}

/**
 * @brief Conjugates q in place. That is, the V elements are negated,
 * but S is untouched.
 */
func (q *Quat[T]) Conjugate() *Quat[T] {
	q.V = q.V.Neg()
	return q
}

func (q Quat[T]) Conjugating() Quat[T] {
	return *q.Conjugate()
}

/**
 * @brief Inverts q in place: conjugate(q) / |q|². For unit quaternions this
 * is the conjugate. The zero quaternion is left as is.
 */
func (q *Quat[T]) Inverse() *Quat[T] {
	l2 := q.Len2()
	if l2 == 0 {
		return q
	}
	*q = q.Conjugating().MulScalar(1 / l2)
	return q
}

func (q Quat[T]) Inversing() Quat[T] {
	return *q.Inverse()
}

/**
 * @brief Rotates v by the rotation q describes: the vector part of
 * q * (v,0) * inverse(q).
 */
func (q Quat[T]) RotateVector(v Vec3[T]) Vec3[T] {
	return q.Mul(Quat[T]{V: v}).Mul(q.Inversing()).V
}

/**
 * @brief Creates a rotation matrix from the quaternion, laid out so that
 * v·q.ToMatr() equals q.RotateVector(v) for a unit q.
 *
 * @return A rotation matrix.
 */
func (q Quat[T]) ToMatr() Matr[T] {
	x, y, z, w := q.V.X, q.V.Y, q.V.Z, q.S
	return Matr[T]{A: [4][4]T{
		{1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y), 0},
		{2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x), 0},
		{2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y), 0},
		{0, 0, 0, 1},
	}}
}

func (q Quat[T]) Eq(other Quat[T]) bool {
	return Abs(q.S-other.S) < Threshold && q.V.Sub(other.V).Len() < Threshold
}

func (q Quat[T]) Ne(other Quat[T]) bool {
	return !q.Eq(other)
}

/**
 * @brief Spherical linear interpolation from q1 (t = 0) to q2 (t = 1), with
 * phi = acos(|q1·q2|). Both endpoints are returned as given, so callers
 * wanting the short arc put q2 in q1's hemisphere first. When sin(phi)
 * vanishes the quaternions are (anti)parallel and the plain linear blend
 * q1(1-t) + q2·t is returned instead.
 *
 * @param q1 The first quaternion.
 * @param q2 The second quaternion.
 * @param t The interpolation parameter, typically a value from 0.0-1.0.
 * @return An interpolated quaternion.
 */
func SLerp[T Scalar](q1, q2 Quat[T], t T) Quat[T] {
	dot := m.Abs(float64(q1.Dot(q2)))
	phi := m.Acos(Clamp(dot, 0, 1))
	sinPhi := m.Sin(phi)
	if sinPhi < Threshold {
		return q1.MulScalar(1 - t).Add(q2.MulScalar(t))
	}
	w1 := m.Sin(phi*(1-float64(t))) / sinPhi
	w2 := m.Sin(phi*float64(t)) / sinPhi
	return q1.MulScalar(T(w1)).Add(q2.MulScalar(T(w2)))
}
