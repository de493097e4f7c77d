package math

// Vec3 represents a 3D vector. Depending on the call site it is either a
// point or a free direction.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

/**
 * @brief A quaternion: vector part V and scalar part S. Unit quaternions
 * describe rotations; q and -q describe the same one.
 */
type Quat[T Scalar] struct {
	V Vec3[T]
	S T
}

/**
 * @brief A half line starting at Org and heading along Dir. Dir does not
 * need to be normalized.
 */
type Ray[T Scalar] struct {
	Org Vec3[T]
	Dir Vec3[T]
}

/**
 * @brief a 4x4 matrix laid out for row vectors: a point p maps to p·M and
 * the translation lives in row 3.
 */
type Matr[T Scalar] struct {
	A [4][4]T
}

/**
 * @brief An affine map together with its inverse. Points pick up the
 * translation, free vectors do not.
 */
type Transform[T Scalar] struct {
	/** @brief The forward matrix. */
	M Matr[T]
	/** @brief The inverse of M, kept in sync by every constructor. */
	Inv Matr[T]
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D[T Scalar] struct {
	/** @brief The minimum extents of the object. */
	Min Vec3[T]
	/** @brief The maximum extents of the object. */
	Max Vec3[T]
}

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex[T Scalar] struct {
	/** @brief The position of the vertex */
	Position Vec3[T]
	/** @brief The normal of the vertex. */
	Normal Vec3[T]
	/** @brief The colour of the vertex. */
	Colour Vec3[T]
}

/**
 * @brief Represents the placement of an object in the world.
 * Poses can have a parent whose own pose is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the setters in pose.go
 * to ensure the cached transform is rebuilt.
 */
type Pose[T Scalar] struct {
	/** @brief The position in the world. */
	Position Vec3[T]
	/** @brief The rotation in the world. */
	Rotation Quat[T]
	/** @brief The scale in the world. */
	Scale Vec3[T]
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local transform needs to be recalculated.
	 */
	IsDirty bool
	/** @brief The cached local transform. */
	local Transform[T]
	/** @brief A pointer to a parent pose if one is assigned. Can also be nil. */
	Parent *Pose[T]
}
