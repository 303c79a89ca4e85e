// Package scalar provides generic numeric building blocks for graphics and
// simulation code: n-ary min/max, clamping, interpolation, easing curves,
// and bit-level utilities such as Morton codes. Every function is a pure
// transform of its arguments.
package scalar

import "golang.org/x/exp/constraints"

// Scalar is the set of component types the vector package accepts.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Real is the subset of Scalar where fractional arithmetic is meaningful.
type Real interface {
	constraints.Float
}

// Sqr returns x squared.
func Sqr[T Scalar](x T) T {
	return x * x
}

// Cube returns x cubed.
func Cube[T Scalar](x T) T {
	return x * x * x
}

// Min returns the smaller of a and b, preferring a on ties.
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b, preferring a on ties.
func Max[T constraints.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// Min3 returns the smallest of three values.
func Min3[T constraints.Ordered](a1, a2, a3 T) T {
	return Min(a1, Min(a2, a3))
}

// Min4 returns the smallest of four values.
func Min4[T constraints.Ordered](a1, a2, a3, a4 T) T {
	return Min(Min(a1, a2), Min(a3, a4))
}

// Min5 returns the smallest of five values.
func Min5[T constraints.Ordered](a1, a2, a3, a4, a5 T) T {
	return Min3(Min(a1, a2), Min(a3, a4), a5)
}

// Min6 returns the smallest of six values.
func Min6[T constraints.Ordered](a1, a2, a3, a4, a5, a6 T) T {
	return Min3(Min(a1, a2), Min(a3, a4), Min(a5, a6))
}

// Max3 returns the largest of three values.
func Max3[T constraints.Ordered](a1, a2, a3 T) T {
	return Max(a1, Max(a2, a3))
}

// Max4 returns the largest of four values.
func Max4[T constraints.Ordered](a1, a2, a3, a4 T) T {
	return Max(Max(a1, a2), Max(a3, a4))
}

// Max5 returns the largest of five values.
func Max5[T constraints.Ordered](a1, a2, a3, a4, a5 T) T {
	return Max3(Max(a1, a2), Max(a3, a4), a5)
}

// Max6 returns the largest of six values.
func Max6[T constraints.Ordered](a1, a2, a3, a4, a5, a6 T) T {
	return Max3(Max(a1, a2), Max(a3, a4), Max(a5, a6))
}

// MinMax returns (min, max) of two values.
func MinMax[T constraints.Ordered](a1, a2 T) (amin, amax T) {
	if a1 < a2 {
		return a1, a2
	}
	return a2, a1
}

// MinMax3 returns (min, max) of three values in a single nested-comparison
// pass.
func MinMax3[T constraints.Ordered](a1, a2, a3 T) (amin, amax T) {
	if a1 < a2 {
		if a1 < a3 {
			if a2 < a3 {
				return a1, a3
			}
			return a1, a2
		}
		return a3, a2
	}
	if a2 < a3 {
		if a1 < a3 {
			return a2, a3
		}
		return a2, a1
	}
	return a3, a1
}

// MinMax4 returns (min, max) of four values in a single nested-comparison
// pass.
func MinMax4[T constraints.Ordered](a1, a2, a3, a4 T) (amin, amax T) {
	if a1 < a2 {
		if a3 < a4 {
			return Min(a1, a3), Max(a2, a4)
		}
		return Min(a1, a4), Max(a2, a3)
	}
	if a3 < a4 {
		return Min(a2, a3), Max(a1, a4)
	}
	return Min(a2, a4), Max(a1, a3)
}

// MinMax5 returns (min, max) of five values. Unlike the smaller arities it
// computes the two bounds in separate passes.
func MinMax5[T constraints.Ordered](a1, a2, a3, a4, a5 T) (amin, amax T) {
	return Min5(a1, a2, a3, a4, a5), Max5(a1, a2, a3, a4, a5)
}

// MinMax6 returns (min, max) of six values. Unlike the smaller arities it
// computes the two bounds in separate passes.
func MinMax6[T constraints.Ordered](a1, a2, a3, a4, a5, a6 T) (amin, amax T) {
	return Min6(a1, a2, a3, a4, a5, a6), Max6(a1, a2, a3, a4, a5, a6)
}

// UpdateMinMax widens the running (amin, amax) pair to include a.
// A bound only ever moves outward.
func UpdateMinMax[T constraints.Ordered](a, amin, amax T) (T, T) {
	if a < amin {
		amin = a
	} else if a > amax {
		amax = a
	}
	return amin, amax
}

// Clamp limits a to the inclusive range [lower, upper].
func Clamp[T constraints.Ordered](a, lower, upper T) T {
	if a < lower {
		return lower
	}
	if a > upper {
		return upper
	}
	return a
}

// Sort3 returns a, b, c in ascending order.
func Sort3[T constraints.Ordered](a, b, c T) (T, T, T) {
	if a < b {
		if a < c {
			if c < b {
				return a, c, b
			}
			return a, b, c
		}
		return c, a, b
	}
	if b < c {
		if a < c {
			return b, a, c
		}
		return b, c, a
	}
	return c, b, a
}
