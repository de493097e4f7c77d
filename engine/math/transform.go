package math

// NewTransform returns the identity transform.
func NewTransform[T Scalar]() Transform[T] {
	return Transform[T]{M: NewMatrIdentity[T](), Inv: NewMatrIdentity[T]()}
}

func NewTransformTranslate[T Scalar](d Vec3[T]) Transform[T] {
	return Transform[T]{M: NewMatrTranslate(d), Inv: NewMatrTranslate(d.Neg())}
}

// NewTransformScale builds a scaling transform. A zero component has no
// inverse and maps to 0 in Inv.
func NewTransformScale[T Scalar](s Vec3[T]) Transform[T] {
	inv := func(a T) T {
		if a == 0 {
			return 0
		}
		return 1 / a
	}
	return Transform[T]{
		M:   NewMatrScale(s),
		Inv: NewMatrScale(Vec3[T]{inv(s.X), inv(s.Y), inv(s.Z)}),
	}
}

func NewTransformRotateX[T Scalar](angleDeg T) Transform[T] {
	return Transform[T]{M: NewMatrRotateX(angleDeg), Inv: NewMatrRotateX(-angleDeg)}
}

func NewTransformRotateY[T Scalar](angleDeg T) Transform[T] {
	return Transform[T]{M: NewMatrRotateY(angleDeg), Inv: NewMatrRotateY(-angleDeg)}
}

func NewTransformRotateZ[T Scalar](angleDeg T) Transform[T] {
	return Transform[T]{M: NewMatrRotateZ(angleDeg), Inv: NewMatrRotateZ(-angleDeg)}
}

func NewTransformRotate[T Scalar](axis Vec3[T], angleDeg T) Transform[T] {
	return Transform[T]{M: NewMatrRotate(axis, angleDeg), Inv: NewMatrRotate(axis, -angleDeg)}
}

// NewTransformFromQuat builds the rotation q describes. q is normalized
// first so the transposed matrix is its exact inverse.
func NewTransformFromQuat[T Scalar](q Quat[T]) Transform[T] {
	mt := q.Normalizing().ToMatr()
	return Transform[T]{M: mt, Inv: mt.Transposing()}
}

// NewTransformFromMatr wraps an arbitrary matrix, computing its inverse.
// A singular matrix (zero determinant) has none: Inv is then the identity,
// so the Inv* methods and Inverse do not undo M.
func NewTransformFromMatr[T Scalar](mt Matr[T]) Transform[T] {
	return Transform[T]{M: mt, Inv: mt.Inversing()}
}

// Mul composes the transforms: the result applies tr first and other second.
func (tr Transform[T]) Mul(other Transform[T]) Transform[T] {
	return Transform[T]{M: tr.M.Mul(other.M), Inv: other.Inv.Mul(tr.Inv)}
}

func (tr Transform[T]) Inverse() Transform[T] {
	return Transform[T]{M: tr.Inv, Inv: tr.M}
}

func (tr Transform[T]) TransformPoint(p Vec3[T]) Vec3[T] {
	return tr.M.TransformPoint(p)
}

// TransformVector never applies the translation.
func (tr Transform[T]) TransformVector(v Vec3[T]) Vec3[T] {
	return tr.M.TransformVector(v)
}

func (tr Transform[T]) InvTransformPoint(p Vec3[T]) Vec3[T] {
	return tr.Inv.TransformPoint(p)
}

func (tr Transform[T]) InvTransformVector(v Vec3[T]) Vec3[T] {
	return tr.Inv.TransformVector(v)
}

// TransformNormal maps a surface normal with the inverse transpose, which
// keeps it perpendicular under non-uniform scale. The result is not
// normalized.
func (tr Transform[T]) TransformNormal(n Vec3[T]) Vec3[T] {
	a := tr.Inv.A
	return Vec3[T]{
		n.X*a[0][0] + n.Y*a[0][1] + n.Z*a[0][2],
		n.X*a[1][0] + n.Y*a[1][1] + n.Z*a[1][2],
		n.X*a[2][0] + n.Y*a[2][1] + n.Z*a[2][2],
	}
}

// TransformPoints writes the image of every point of src into dst, which
// must be at least as long as src.
func (tr Transform[T]) TransformPoints(dst, src []Vec3[T]) {
	for i, p := range src {
		dst[i] = tr.M.TransformPoint(p)
	}
}

func (tr Transform[T]) TransformVectors(dst, src []Vec3[T]) {
	for i, v := range src {
		dst[i] = tr.M.TransformVector(v)
	}
}

func (tr Transform[T]) Eq(other Transform[T]) bool {
	return tr.M.Eq(other.M) && tr.Inv.Eq(other.Inv)
}
