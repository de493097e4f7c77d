package math

import "golang.org/x/image/math/f32"

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func NewMatrIdentity[T Scalar]() Matr[T] {
	return Matr[T]{A: [4][4]T{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func NewMatrTranslate[T Scalar](d Vec3[T]) Matr[T] {
	mt := NewMatrIdentity[T]()
	mt.A[3][0], mt.A[3][1], mt.A[3][2] = d.X, d.Y, d.Z
	return mt
}

func NewMatrScale[T Scalar](s Vec3[T]) Matr[T] {
	mt := NewMatrIdentity[T]()
	mt.A[0][0], mt.A[1][1], mt.A[2][2] = s.X, s.Y, s.Z
	return mt
}

func NewMatrRotateXSinCos[T Scalar](sine, cosine T) Matr[T] {
	mt := NewMatrIdentity[T]()
	mt.A[1][1], mt.A[1][2] = cosine, sine
	mt.A[2][1], mt.A[2][2] = -sine, cosine
	return mt
}

func NewMatrRotateYSinCos[T Scalar](sine, cosine T) Matr[T] {
	mt := NewMatrIdentity[T]()
	mt.A[0][0], mt.A[0][2] = cosine, -sine
	mt.A[2][0], mt.A[2][2] = sine, cosine
	return mt
}

func NewMatrRotateZSinCos[T Scalar](sine, cosine T) Matr[T] {
	mt := NewMatrIdentity[T]()
	mt.A[0][0], mt.A[0][1] = cosine, sine
	mt.A[1][0], mt.A[1][1] = -sine, cosine
	return mt
}

func NewMatrRotateX[T Scalar](angleDeg T) Matr[T] {
	return NewMatrRotateXSinCos(sinCosDeg(angleDeg))
}

func NewMatrRotateY[T Scalar](angleDeg T) Matr[T] {
	return NewMatrRotateYSinCos(sinCosDeg(angleDeg))
}

func NewMatrRotateZ[T Scalar](angleDeg T) Matr[T] {
	return NewMatrRotateZSinCos(sinCosDeg(angleDeg))
}

/**
 * @brief Creates a rotation matrix around an arbitrary axis. The axis is
 * normalized first.
 */
func NewMatrRotateSinCos[T Scalar](axis Vec3[T], sine, cosine T) Matr[T] {
	a := axis.Normalizing()
	x, y, z := a.X, a.Y, a.Z
	k := 1 - cosine
	return Matr[T]{A: [4][4]T{
		{cosine + k*x*x, k*x*y + sine*z, k*x*z - sine*y, 0},
		{k*x*y - sine*z, cosine + k*y*y, k*y*z + sine*x, 0},
		{k*x*z + sine*y, k*y*z - sine*x, cosine + k*z*z, 0},
		{0, 0, 0, 1},
	}}
}

func NewMatrRotate[T Scalar](axis Vec3[T], angleDeg T) Matr[T] {
	s, c := sinCosDeg(angleDeg)
	return NewMatrRotateSinCos(axis, s, c)
}

/**
 * @brief Returns the result of multiplying mt and other. Since points are
 * row vectors, the product applies mt first and other second.
 */
func (mt Matr[T]) Mul(other Matr[T]) Matr[T] {
	var out Matr[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.A[i][j] = mt.A[i][0]*other.A[0][j] +
				mt.A[i][1]*other.A[1][j] +
				mt.A[i][2]*other.A[2][j] +
				mt.A[i][3]*other.A[3][j]
		}
	}
	return out
}

func (mt Matr[T]) Transposing() Matr[T] {
	var out Matr[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.A[i][j] = mt.A[j][i]
		}
	}
	return out
}

func determ3x3[T Scalar](a11, a12, a13, a21, a22, a23, a31, a32, a33 T) T {
	return a11*a22*a33 - a11*a23*a32 - a12*a21*a33 +
		a12*a23*a31 + a13*a21*a32 - a13*a22*a31
}

// cofactor returns the signed minor of element (r, c).
func (mt Matr[T]) cofactor(r, c int) T {
	var rows, cols [3]int
	for i, k := 0, 0; i < 4; i++ {
		if i != r {
			rows[k] = i
			k++
		}
	}
	for j, k := 0, 0; j < 4; j++ {
		if j != c {
			cols[k] = j
			k++
		}
	}
	a := mt.A
	d := determ3x3(
		a[rows[0]][cols[0]], a[rows[0]][cols[1]], a[rows[0]][cols[2]],
		a[rows[1]][cols[0]], a[rows[1]][cols[1]], a[rows[1]][cols[2]],
		a[rows[2]][cols[0]], a[rows[2]][cols[1]], a[rows[2]][cols[2]])
	if (r+c)%2 != 0 {
		return -d
	}
	return d
}

func (mt Matr[T]) Determ() T {
	return mt.A[0][0]*mt.cofactor(0, 0) +
		mt.A[0][1]*mt.cofactor(0, 1) +
		mt.A[0][2]*mt.cofactor(0, 2) +
		mt.A[0][3]*mt.cofactor(0, 3)
}

/**
 * @brief Returns the inverse of the matrix (adjugate over determinant).
 * A singular matrix yields the identity.
 */
func (mt Matr[T]) Inversing() Matr[T] {
	det := mt.Determ()
	if det == 0 {
		return NewMatrIdentity[T]()
	}
	var out Matr[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.A[j][i] = mt.cofactor(i, j) / det
		}
	}
	return out
}

// TransformPoint maps p through the matrix including the translation row.
func (mt Matr[T]) TransformPoint(p Vec3[T]) Vec3[T] {
	a := mt.A
	return Vec3[T]{
		p.X*a[0][0] + p.Y*a[1][0] + p.Z*a[2][0] + a[3][0],
		p.X*a[0][1] + p.Y*a[1][1] + p.Z*a[2][1] + a[3][1],
		p.X*a[0][2] + p.Y*a[1][2] + p.Z*a[2][2] + a[3][2],
	}
}

// TransformVector maps v through the upper 3x3 block only.
func (mt Matr[T]) TransformVector(v Vec3[T]) Vec3[T] {
	a := mt.A
	return Vec3[T]{
		v.X*a[0][0] + v.Y*a[1][0] + v.Z*a[2][0],
		v.X*a[0][1] + v.Y*a[1][1] + v.Z*a[2][1],
		v.X*a[0][2] + v.Y*a[1][2] + v.Z*a[2][2],
	}
}

func (mt Matr[T]) Eq(other Matr[T]) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if Abs(mt.A[i][j]-other.A[i][j]) >= Threshold {
				return false
			}
		}
	}
	return true
}

// F32 flattens the matrix into the row-major float32 layout used for
// uniform uploads.
func (mt Matr[T]) F32() f32.Mat4 {
	var out f32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[4*i+j] = float32(mt.A[i][j])
		}
	}
	return out
}
