package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Scalar is the component type every vector, quaternion, ray and matrix is
// parametrized over.
type Scalar interface {
	constraints.Float
}

const (
	/** @brief An approximate representation of PI. */
	Pi = 3.14159265358979323846
	/** @brief A multiplier used to convert degrees to radians. */
	Deg2RadMultiplier = Pi / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	Rad2DegMultiplier = 180.0 / Pi
	/**
	 * @brief Absolute tolerance used by every Eq/Ne comparison and by the
	 * degenerate-case guards (zero length, zero sine).
	 */
	Threshold = 1e-5
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Lerp blends a towards b by t.
func Lerp[T Scalar](a, b, t T) T {
	return a + (b-a)*t
}

func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func DegToRad[T Scalar](degrees T) T {
	return T(float64(degrees) * Deg2RadMultiplier)
}

func RadToDeg[T Scalar](radians T) T {
	return T(float64(radians) * Rad2DegMultiplier)
}

// sinCosDeg evaluates the trigonometry in double precision whatever T is.
func sinCosDeg[T Scalar](degrees T) (T, T) {
	s, c := m.Sincos(float64(degrees) * Deg2RadMultiplier)
	return T(s), T(c)
}

func sqrt[T Scalar](x T) T {
	return T(m.Sqrt(float64(x)))
}
