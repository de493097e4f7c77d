package math

func NewPose[T Scalar]() *Pose[T] {
	p := &Pose[T]{}
	p.SetPositionRotationScale(NewVec3Zero[T](), NewQuatIdentity[T](), NewVec3One[T]())
	return p
}

func NewPoseFromPosition[T Scalar](position Vec3[T]) *Pose[T] {
	p := &Pose[T]{}
	p.SetPositionRotationScale(position, NewQuatIdentity[T](), NewVec3One[T]())
	return p
}

func NewPoseFromPositionRotationScale[T Scalar](position Vec3[T], rotation Quat[T], scale Vec3[T]) *Pose[T] {
	p := &Pose[T]{}
	p.SetPositionRotationScale(position, rotation, scale)
	return p
}

func (p *Pose[T]) SetPosition(position Vec3[T]) {
	p.Position = position
	p.IsDirty = true
}

func (p *Pose[T]) Translate(translation Vec3[T]) {
	p.Position = p.Position.Add(translation)
	p.IsDirty = true
}

func (p *Pose[T]) SetRotation(rotation Quat[T]) {
	p.Rotation = rotation
	p.IsDirty = true
}

// Rotate applies rotation on top of the current one.
func (p *Pose[T]) Rotate(rotation Quat[T]) {
	p.Rotation = rotation.Mul(p.Rotation)
	p.IsDirty = true
}

func (p *Pose[T]) SetScale(scale Vec3[T]) {
	p.Scale = scale
	p.IsDirty = true
}

func (p *Pose[T]) SetPositionRotationScale(position Vec3[T], rotation Quat[T], scale Vec3[T]) {
	p.Position = position
	p.Rotation = rotation
	p.Scale = scale
	p.IsDirty = true
}

// Local returns scale, then rotation, then translation as one transform.
// It is rebuilt only when the pose is dirty.
func (p *Pose[T]) Local() Transform[T] {
	if p == nil {
		return NewTransform[T]()
	}
	if p.IsDirty {
		p.local = NewTransformScale(p.Scale).
			Mul(NewTransformFromQuat(p.Rotation)).
			Mul(NewTransformTranslate(p.Position))
		p.IsDirty = false
	}
	return p.local
}

// World is the local transform followed by every ancestor's.
func (p *Pose[T]) World() Transform[T] {
	if p == nil {
		return NewTransform[T]()
	}
	l := p.Local()
	if p.Parent != nil {
		return l.Mul(p.Parent.World())
	}
	return l
}
