// Package vec provides fixed-size 2/3/4 dimensional vectors generic over
// their component type. Vectors are plain value types backed by arrays, so
// components can be reached both by index (v[0]) and through the named
// accessors (v.X(), v.SetX(...)), which address the same storage. Two
// vectors compare equal with == exactly when all components are equal.
//
// The numeric methods follow a "fast path, caller's responsibility" policy:
// degenerate inputs such as normalizing a zero vector are not guarded and
// propagate IEEE NaN/Inf (or divide-by-zero panics for integer components).
package vec

import (
	"math"

	"github.com/alex-fu27/maths/pkg/scalar"
)

// Vec2 is a 2-dimensional vector with components of type T.
type Vec2[T scalar.Scalar] [2]T

// V2 creates a new Vec2.
func V2[T scalar.Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Splat2 creates a Vec2 with every component set to v.
func Splat2[T scalar.Scalar](v T) Vec2[T] {
	return Vec2[T]{v, v}
}

// FromSlice2 creates a Vec2 from the first two elements of s.
func FromSlice2[T scalar.Scalar](s []T) Vec2[T] {
	assertLen(len(s), 2)
	return Vec2[T]{s[0], s[1]}
}

// Convert2 converts a Vec2 to another component type.
func Convert2[T, S scalar.Scalar](v Vec2[S]) Vec2[T] {
	return Vec2[T]{T(v[0]), T(v[1])}
}

// Zero2 returns the zero vector.
func Zero2[T scalar.Scalar]() Vec2[T] {
	return Vec2[T]{}
}

// One2 returns the all-ones vector.
func One2[T scalar.Scalar]() Vec2[T] {
	return Vec2[T]{1, 1}
}

// UnitX2 returns (1, 0).
func UnitX2[T scalar.Scalar]() Vec2[T] {
	return Vec2[T]{1, 0}
}

// UnitY2 returns (0, 1).
func UnitY2[T scalar.Scalar]() Vec2[T] {
	return Vec2[T]{0, 1}
}

// X returns component 0.
func (v Vec2[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec2[T]) Y() T { return v[1] }

// SetX stores x into component 0.
func (v *Vec2[T]) SetX(x T) { v[0] = x }

// SetY stores y into component 1.
func (v *Vec2[T]) SetY(y T) { v[1] = y }

// XY unpacks the components.
func (v Vec2[T]) XY() (x, y T) {
	return v[0], v[1]
}

// Extend lifts the vector into three dimensions with the given z.
func (v Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{v[0], v[1], z}
}

// Add returns the vector sum a + b.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] + b[0], a[1] + b[1]}
}

// Sub returns the vector difference a - b.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] - b[0], a[1] - b[1]}
}

// Mul returns the component-wise product a * b.
func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] * b[0], a[1] * b[1]}
}

// Div returns the component-wise quotient a / b.
func (a Vec2[T]) Div(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] / b[0], a[1] / b[1]}
}

// Scale returns the scalar product a * s.
func (a Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{a[0] * s, a[1] * s}
}

// DivScalar returns the scalar division a / s.
func (a Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{a[0] / s, a[1] / s}
}

// AddScalar adds s to every component.
func (a Vec2[T]) AddScalar(s T) Vec2[T] {
	return Vec2[T]{a[0] + s, a[1] + s}
}

// SubScalar subtracts s from every component.
func (a Vec2[T]) SubScalar(s T) Vec2[T] {
	return Vec2[T]{a[0] - s, a[1] - s}
}

// Neg returns the negated vector.
func (a Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-a[0], -a[1]}
}

// Dot returns the dot product a · b.
func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a[0]*b[0] + a[1]*b[1]
}

// Cross returns the scalar 2D cross product a × b.
func (a Vec2[T]) Cross(b Vec2[T]) T {
	return a[0]*b[1] - a[1]*b[0]
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec2[T]) LenSq() T {
	return scalar.Sqr(a[0]) + scalar.Sqr(a[1])
}

// Len returns the length (magnitude) of the vector.
func (a Vec2[T]) Len() T {
	return T(math.Sqrt(float64(a.LenSq())))
}

// DistanceSq returns the squared distance between two points.
func (a Vec2[T]) DistanceSq(b Vec2[T]) T {
	return scalar.Sqr(a[0]-b[0]) + scalar.Sqr(a[1]-b[1])
}

// Distance returns the distance between two points.
func (a Vec2[T]) Distance(b Vec2[T]) T {
	return T(math.Sqrt(float64(a.DistanceSq(b))))
}

// Normalize returns the unit vector in the same direction. The zero vector
// is not guarded against.
func (a Vec2[T]) Normalize() Vec2[T] {
	return a.DivScalar(a.Len())
}

// Lerp returns the linear interpolation between a and b by t; t is not
// clamped.
func (a Vec2[T]) Lerp(b Vec2[T], t T) Vec2[T] {
	return Vec2[T]{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
	}
}

// LerpVec interpolates with a separate parameter per component.
func (a Vec2[T]) LerpVec(b, t Vec2[T]) Vec2[T] {
	return Vec2[T]{
		a[0] + (b[0]-a[0])*t[0],
		a[1] + (b[1]-a[1])*t[1],
	}
}

// Clamp limits every component to [lower, upper].
func (a Vec2[T]) Clamp(lower, upper T) Vec2[T] {
	return Vec2[T]{
		scalar.Clamp(a[0], lower, upper),
		scalar.Clamp(a[1], lower, upper),
	}
}

// ClampVec limits every component to the matching component range.
func (a Vec2[T]) ClampVec(lower, upper Vec2[T]) Vec2[T] {
	return Vec2[T]{
		scalar.Clamp(a[0], lower[0], upper[0]),
		scalar.Clamp(a[1], lower[1], upper[1]),
	}
}

// Saturate clamps every component to [0, 1].
func (a Vec2[T]) Saturate() Vec2[T] {
	return a.Clamp(0, 1)
}

// Min returns the component-wise minimum of a and b.
func (a Vec2[T]) Min(b Vec2[T]) Vec2[T] {
	return Vec2[T]{scalar.Min(a[0], b[0]), scalar.Min(a[1], b[1])}
}

// Max returns the component-wise maximum of a and b.
func (a Vec2[T]) Max(b Vec2[T]) Vec2[T] {
	return Vec2[T]{scalar.Max(a[0], b[0]), scalar.Max(a[1], b[1])}
}

// MinComp returns the smallest component.
func (a Vec2[T]) MinComp() T {
	return scalar.Min(a[0], a[1])
}

// MaxComp returns the largest component.
func (a Vec2[T]) MaxComp() T {
	return scalar.Max(a[0], a[1])
}

// Abs returns the component-wise absolute value.
func (a Vec2[T]) Abs() Vec2[T] {
	return Vec2[T]{absT(a[0]), absT(a[1])}
}

// Floor returns the component-wise floor.
func (a Vec2[T]) Floor() Vec2[T] {
	return Vec2[T]{floorT(a[0]), floorT(a[1])}
}

// Ceil returns the component-wise ceiling.
func (a Vec2[T]) Ceil() Vec2[T] {
	return Vec2[T]{ceilT(a[0]), ceilT(a[1])}
}

// Round returns the component-wise rounding to nearest, half away from zero.
func (a Vec2[T]) Round() Vec2[T] {
	return Vec2[T]{roundT(a[0]), roundT(a[1])}
}

// InfNorm returns the largest absolute component.
func (a Vec2[T]) InfNorm() T {
	return scalar.Max(absT(a[0]), absT(a[1]))
}

// All reports whether every component is nonzero.
func (a Vec2[T]) All() bool {
	return a[0] != 0 && a[1] != 0
}

// Any reports whether at least one component is nonzero.
func (a Vec2[T]) Any() bool {
	return a[0] != 0 || a[1] != 0
}

// Nonzero reports whether the vector differs from the zero vector.
func (a Vec2[T]) Nonzero() bool {
	return a.Any()
}

// AlmostEqual reports whether a and b lie within epsilon distance of each
// other.
func (a Vec2[T]) AlmostEqual(b Vec2[T], epsilon T) bool {
	return a.Distance(b) < epsilon
}

// Rotate rotates the vector counter-clockwise by angle radians.
func (a Vec2[T]) Rotate(angle float64) Vec2[T] {
	c := math.Cos(angle)
	s := math.Sin(angle)
	x := float64(a[0])
	y := float64(a[1])
	return Vec2[T]{T(c*x - s*y), T(s*x + c*y)}
}

// Perp returns the vector rotated counter-clockwise by 90 degrees.
func (a Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{-a[1], a[0]}
}
