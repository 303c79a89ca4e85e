package vec

import (
	"math"

	"github.com/alex-fu27/maths/pkg/scalar"
)

// Vec3 is a 3-dimensional vector with components of type T. When used as a
// color the components are addressed as r, g, b through the color accessors,
// which read the same storage as x, y, z.
type Vec3[T scalar.Scalar] [3]T

// V3 creates a new Vec3.
func V3[T scalar.Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Splat3 creates a Vec3 with every component set to v.
func Splat3[T scalar.Scalar](v T) Vec3[T] {
	return Vec3[T]{v, v, v}
}

// FromSlice3 creates a Vec3 from the first three elements of s.
func FromSlice3[T scalar.Scalar](s []T) Vec3[T] {
	assertLen(len(s), 3)
	return Vec3[T]{s[0], s[1], s[2]}
}

// Convert3 converts a Vec3 to another component type.
func Convert3[T, S scalar.Scalar](v Vec3[S]) Vec3[T] {
	return Vec3[T]{T(v[0]), T(v[1]), T(v[2])}
}

// V3From2 extends a Vec2 with a z component.
func V3From2[T scalar.Scalar](v Vec2[T], z T) Vec3[T] {
	return Vec3[T]{v[0], v[1], z}
}

// Zero3 returns the zero vector.
func Zero3[T scalar.Scalar]() Vec3[T] {
	return Vec3[T]{}
}

// One3 returns the all-ones vector.
func One3[T scalar.Scalar]() Vec3[T] {
	return Vec3[T]{1, 1, 1}
}

// UnitX3 returns (1, 0, 0).
func UnitX3[T scalar.Scalar]() Vec3[T] {
	return Vec3[T]{1, 0, 0}
}

// UnitY3 returns (0, 1, 0).
func UnitY3[T scalar.Scalar]() Vec3[T] {
	return Vec3[T]{0, 1, 0}
}

// UnitZ3 returns (0, 0, 1).
func UnitZ3[T scalar.Scalar]() Vec3[T] {
	return Vec3[T]{0, 0, 1}
}

// Color constructors.

// White3 returns (1, 1, 1).
func White3[T scalar.Scalar]() Vec3[T] { return Vec3[T]{1, 1, 1} }

// Black3 returns (0, 0, 0).
func Black3[T scalar.Scalar]() Vec3[T] { return Vec3[T]{} }

// Red3 returns (1, 0, 0).
func Red3[T scalar.Scalar]() Vec3[T] { return Vec3[T]{1, 0, 0} }

// Green3 returns (0, 1, 0).
func Green3[T scalar.Scalar]() Vec3[T] { return Vec3[T]{0, 1, 0} }

// Blue3 returns (0, 0, 1).
func Blue3[T scalar.Scalar]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// Yellow3 returns (1, 1, 0).
func Yellow3[T scalar.Scalar]() Vec3[T] { return Vec3[T]{1, 1, 0} }

// Cyan3 returns (0, 1, 1).
func Cyan3[T scalar.Scalar]() Vec3[T] { return Vec3[T]{0, 1, 1} }

// Magenta3 returns (1, 0, 1).
func Magenta3[T scalar.Scalar]() Vec3[T] { return Vec3[T]{1, 0, 1} }

// X returns component 0.
func (v Vec3[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns component 2.
func (v Vec3[T]) Z() T { return v[2] }

// R returns component 0 (alias of X).
func (v Vec3[T]) R() T { return v[0] }

// G returns component 1 (alias of Y).
func (v Vec3[T]) G() T { return v[1] }

// B returns component 2 (alias of Z).
func (v Vec3[T]) B() T { return v[2] }

// SetX stores x into component 0.
func (v *Vec3[T]) SetX(x T) { v[0] = x }

// SetY stores y into component 1.
func (v *Vec3[T]) SetY(y T) { v[1] = y }

// SetZ stores z into component 2.
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

// XYZ unpacks the components.
func (v Vec3[T]) XYZ() (x, y, z T) {
	return v[0], v[1], v[2]
}

// XY truncates to the first two components.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// SetXY overwrites the first two components.
func (v *Vec3[T]) SetXY(xy Vec2[T]) {
	v[0] = xy[0]
	v[1] = xy[1]
}

// Extend lifts the vector into four dimensions with the given w.
func (v Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2], w}
}

// Add returns the vector sum a + b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns the vector difference a - b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Mul returns the component-wise product a * b.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Div returns the component-wise quotient a / b.
func (a Vec3[T]) Div(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

// Scale returns the scalar product a * s.
func (a Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{a[0] * s, a[1] * s, a[2] * s}
}

// DivScalar returns the scalar division a / s.
func (a Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{a[0] / s, a[1] / s, a[2] / s}
}

// AddScalar adds s to every component.
func (a Vec3[T]) AddScalar(s T) Vec3[T] {
	return Vec3[T]{a[0] + s, a[1] + s, a[2] + s}
}

// SubScalar subtracts s from every component.
func (a Vec3[T]) SubScalar(s T) Vec3[T] {
	return Vec3[T]{a[0] - s, a[1] - s, a[2] - s}
}

// Neg returns the negated vector.
func (a Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-a[0], -a[1], -a[2]}
}

// Dot returns the dot product a · b.
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the cross product a × b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3[T]) LenSq() T {
	return scalar.Sqr(a[0]) + scalar.Sqr(a[1]) + scalar.Sqr(a[2])
}

// Len returns the length (magnitude) of the vector.
func (a Vec3[T]) Len() T {
	return T(math.Sqrt(float64(a.LenSq())))
}

// DistanceSq returns the squared distance between two points.
func (a Vec3[T]) DistanceSq(b Vec3[T]) T {
	return scalar.Sqr(a[0]-b[0]) + scalar.Sqr(a[1]-b[1]) + scalar.Sqr(a[2]-b[2])
}

// Distance returns the distance between two points.
func (a Vec3[T]) Distance(b Vec3[T]) T {
	return T(math.Sqrt(float64(a.DistanceSq(b))))
}

// Normalize returns the unit vector in the same direction. The zero vector
// is not guarded against.
func (a Vec3[T]) Normalize() Vec3[T] {
	return a.DivScalar(a.Len())
}

// Lerp returns the linear interpolation between a and b by t; t is not
// clamped.
func (a Vec3[T]) Lerp(b Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// LerpVec interpolates with a separate parameter per component.
func (a Vec3[T]) LerpVec(b, t Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a[0] + (b[0]-a[0])*t[0],
		a[1] + (b[1]-a[1])*t[1],
		a[2] + (b[2]-a[2])*t[2],
	}
}

// Clamp limits every component to [lower, upper].
func (a Vec3[T]) Clamp(lower, upper T) Vec3[T] {
	return Vec3[T]{
		scalar.Clamp(a[0], lower, upper),
		scalar.Clamp(a[1], lower, upper),
		scalar.Clamp(a[2], lower, upper),
	}
}

// ClampVec limits every component to the matching component range.
func (a Vec3[T]) ClampVec(lower, upper Vec3[T]) Vec3[T] {
	return Vec3[T]{
		scalar.Clamp(a[0], lower[0], upper[0]),
		scalar.Clamp(a[1], lower[1], upper[1]),
		scalar.Clamp(a[2], lower[2], upper[2]),
	}
}

// Saturate clamps every component to [0, 1].
func (a Vec3[T]) Saturate() Vec3[T] {
	return a.Clamp(0, 1)
}

// Min returns the component-wise minimum of a and b.
func (a Vec3[T]) Min(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		scalar.Min(a[0], b[0]),
		scalar.Min(a[1], b[1]),
		scalar.Min(a[2], b[2]),
	}
}

// Max returns the component-wise maximum of a and b.
func (a Vec3[T]) Max(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		scalar.Max(a[0], b[0]),
		scalar.Max(a[1], b[1]),
		scalar.Max(a[2], b[2]),
	}
}

// MinComp returns the smallest component.
func (a Vec3[T]) MinComp() T {
	return scalar.Min3(a[0], a[1], a[2])
}

// MaxComp returns the largest component.
func (a Vec3[T]) MaxComp() T {
	return scalar.Max3(a[0], a[1], a[2])
}

// Abs returns the component-wise absolute value.
func (a Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{absT(a[0]), absT(a[1]), absT(a[2])}
}

// Floor returns the component-wise floor.
func (a Vec3[T]) Floor() Vec3[T] {
	return Vec3[T]{floorT(a[0]), floorT(a[1]), floorT(a[2])}
}

// Ceil returns the component-wise ceiling.
func (a Vec3[T]) Ceil() Vec3[T] {
	return Vec3[T]{ceilT(a[0]), ceilT(a[1]), ceilT(a[2])}
}

// Round returns the component-wise rounding to nearest, half away from zero.
func (a Vec3[T]) Round() Vec3[T] {
	return Vec3[T]{roundT(a[0]), roundT(a[1]), roundT(a[2])}
}

// InfNorm returns the largest absolute component.
func (a Vec3[T]) InfNorm() T {
	return scalar.Max3(absT(a[0]), absT(a[1]), absT(a[2]))
}

// All reports whether every component is nonzero.
func (a Vec3[T]) All() bool {
	return a[0] != 0 && a[1] != 0 && a[2] != 0
}

// Any reports whether at least one component is nonzero.
func (a Vec3[T]) Any() bool {
	return a[0] != 0 || a[1] != 0 || a[2] != 0
}

// Nonzero reports whether the vector differs from the zero vector.
func (a Vec3[T]) Nonzero() bool {
	return a.Any()
}

// AlmostEqual reports whether a and b lie within epsilon distance of each
// other.
func (a Vec3[T]) AlmostEqual(b Vec3[T], epsilon T) bool {
	return a.Distance(b) < epsilon
}
