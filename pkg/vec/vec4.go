package vec

import (
	"math"

	"github.com/alex-fu27/maths/pkg/scalar"
)

// Vec4 is a 4-dimensional vector with components of type T. When used as a
// color the components are addressed as r, g, b, a through the color
// accessors, which read the same storage as x, y, z, w.
type Vec4[T scalar.Scalar] [4]T

// V4 creates a new Vec4.
func V4[T scalar.Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// Splat4 creates a Vec4 with every component set to v.
func Splat4[T scalar.Scalar](v T) Vec4[T] {
	return Vec4[T]{v, v, v, v}
}

// FromSlice4 creates a Vec4 from the first four elements of s.
func FromSlice4[T scalar.Scalar](s []T) Vec4[T] {
	assertLen(len(s), 4)
	return Vec4[T]{s[0], s[1], s[2], s[3]}
}

// Convert4 converts a Vec4 to another component type.
func Convert4[T, S scalar.Scalar](v Vec4[S]) Vec4[T] {
	return Vec4[T]{T(v[0]), T(v[1]), T(v[2]), T(v[3])}
}

// V4From3 extends a Vec3 with a w component.
func V4From3[T scalar.Scalar](v Vec3[T], w T) Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2], w}
}

// Zero4 returns the zero vector.
func Zero4[T scalar.Scalar]() Vec4[T] {
	return Vec4[T]{}
}

// One4 returns the all-ones vector.
func One4[T scalar.Scalar]() Vec4[T] {
	return Vec4[T]{1, 1, 1, 1}
}

// UnitX4 returns (1, 0, 0, 0).
func UnitX4[T scalar.Scalar]() Vec4[T] {
	return Vec4[T]{1, 0, 0, 0}
}

// UnitY4 returns (0, 1, 0, 0).
func UnitY4[T scalar.Scalar]() Vec4[T] {
	return Vec4[T]{0, 1, 0, 0}
}

// UnitZ4 returns (0, 0, 1, 0).
func UnitZ4[T scalar.Scalar]() Vec4[T] {
	return Vec4[T]{0, 0, 1, 0}
}

// UnitW4 returns (0, 0, 0, 1).
func UnitW4[T scalar.Scalar]() Vec4[T] {
	return Vec4[T]{0, 0, 0, 1}
}

// Color constructors; alpha is always 1.

// White4 returns (1, 1, 1, 1).
func White4[T scalar.Scalar]() Vec4[T] { return Vec4[T]{1, 1, 1, 1} }

// Black4 returns (0, 0, 0, 1).
func Black4[T scalar.Scalar]() Vec4[T] { return Vec4[T]{0, 0, 0, 1} }

// Red4 returns (1, 0, 0, 1).
func Red4[T scalar.Scalar]() Vec4[T] { return Vec4[T]{1, 0, 0, 1} }

// Green4 returns (0, 1, 0, 1).
func Green4[T scalar.Scalar]() Vec4[T] { return Vec4[T]{0, 1, 0, 1} }

// Blue4 returns (0, 0, 1, 1).
func Blue4[T scalar.Scalar]() Vec4[T] { return Vec4[T]{0, 0, 1, 1} }

// Yellow4 returns (1, 1, 0, 1).
func Yellow4[T scalar.Scalar]() Vec4[T] { return Vec4[T]{1, 1, 0, 1} }

// Cyan4 returns (0, 1, 1, 1).
func Cyan4[T scalar.Scalar]() Vec4[T] { return Vec4[T]{0, 1, 1, 1} }

// Magenta4 returns (1, 0, 1, 1).
func Magenta4[T scalar.Scalar]() Vec4[T] { return Vec4[T]{1, 0, 1, 1} }

// X returns component 0.
func (v Vec4[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns component 2.
func (v Vec4[T]) Z() T { return v[2] }

// W returns component 3.
func (v Vec4[T]) W() T { return v[3] }

// R returns component 0 (alias of X).
func (v Vec4[T]) R() T { return v[0] }

// G returns component 1 (alias of Y).
func (v Vec4[T]) G() T { return v[1] }

// B returns component 2 (alias of Z).
func (v Vec4[T]) B() T { return v[2] }

// A returns component 3 (alias of W).
func (v Vec4[T]) A() T { return v[3] }

// SetX stores x into component 0.
func (v *Vec4[T]) SetX(x T) { v[0] = x }

// SetY stores y into component 1.
func (v *Vec4[T]) SetY(y T) { v[1] = y }

// SetZ stores z into component 2.
func (v *Vec4[T]) SetZ(z T) { v[2] = z }

// SetW stores w into component 3.
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// XYZW unpacks the components.
func (v Vec4[T]) XYZW() (x, y, z, w T) {
	return v[0], v[1], v[2], v[3]
}

// XY truncates to the first two components.
func (v Vec4[T]) XY() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// XYZ truncates to the first three components.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}

// SetXY overwrites the first two components.
func (v *Vec4[T]) SetXY(xy Vec2[T]) {
	v[0] = xy[0]
	v[1] = xy[1]
}

// SetXYZ overwrites the first three components.
func (v *Vec4[T]) SetXYZ(xyz Vec3[T]) {
	v[0] = xyz[0]
	v[1] = xyz[1]
	v[2] = xyz[2]
}

// Add returns the vector sum a + b.
func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns the vector difference a - b.
func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul returns the component-wise product a * b.
func (a Vec4[T]) Mul(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div returns the component-wise quotient a / b.
func (a Vec4[T]) Div(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// Scale returns the scalar product a * s.
func (a Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// DivScalar returns the scalar division a / s.
func (a Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{a[0] / s, a[1] / s, a[2] / s, a[3] / s}
}

// AddScalar adds s to every component.
func (a Vec4[T]) AddScalar(s T) Vec4[T] {
	return Vec4[T]{a[0] + s, a[1] + s, a[2] + s, a[3] + s}
}

// SubScalar subtracts s from every component.
func (a Vec4[T]) SubScalar(s T) Vec4[T] {
	return Vec4[T]{a[0] - s, a[1] - s, a[2] - s, a[3] - s}
}

// Neg returns the negated vector.
func (a Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-a[0], -a[1], -a[2], -a[3]}
}

// Dot returns the dot product a · b.
func (a Vec4[T]) Dot(b Vec4[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec4[T]) LenSq() T {
	return scalar.Sqr(a[0]) + scalar.Sqr(a[1]) + scalar.Sqr(a[2]) + scalar.Sqr(a[3])
}

// Len returns the length (magnitude) of the vector.
func (a Vec4[T]) Len() T {
	return T(math.Sqrt(float64(a.LenSq())))
}

// DistanceSq returns the squared distance between two points.
func (a Vec4[T]) DistanceSq(b Vec4[T]) T {
	return scalar.Sqr(a[0]-b[0]) + scalar.Sqr(a[1]-b[1]) +
		scalar.Sqr(a[2]-b[2]) + scalar.Sqr(a[3]-b[3])
}

// Distance returns the distance between two points.
func (a Vec4[T]) Distance(b Vec4[T]) T {
	return T(math.Sqrt(float64(a.DistanceSq(b))))
}

// Normalize returns the unit vector in the same direction. The zero vector
// is not guarded against.
func (a Vec4[T]) Normalize() Vec4[T] {
	return a.DivScalar(a.Len())
}

// Lerp returns the linear interpolation between a and b by t; t is not
// clamped.
func (a Vec4[T]) Lerp(b Vec4[T], t T) Vec4[T] {
	return Vec4[T]{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
		a[3] + (b[3]-a[3])*t,
	}
}

// LerpVec interpolates with a separate parameter per component.
func (a Vec4[T]) LerpVec(b, t Vec4[T]) Vec4[T] {
	return Vec4[T]{
		a[0] + (b[0]-a[0])*t[0],
		a[1] + (b[1]-a[1])*t[1],
		a[2] + (b[2]-a[2])*t[2],
		a[3] + (b[3]-a[3])*t[3],
	}
}

// Clamp limits every component to [lower, upper].
func (a Vec4[T]) Clamp(lower, upper T) Vec4[T] {
	return Vec4[T]{
		scalar.Clamp(a[0], lower, upper),
		scalar.Clamp(a[1], lower, upper),
		scalar.Clamp(a[2], lower, upper),
		scalar.Clamp(a[3], lower, upper),
	}
}

// ClampVec limits every component to the matching component range.
func (a Vec4[T]) ClampVec(lower, upper Vec4[T]) Vec4[T] {
	return Vec4[T]{
		scalar.Clamp(a[0], lower[0], upper[0]),
		scalar.Clamp(a[1], lower[1], upper[1]),
		scalar.Clamp(a[2], lower[2], upper[2]),
		scalar.Clamp(a[3], lower[3], upper[3]),
	}
}

// Saturate clamps every component to [0, 1].
func (a Vec4[T]) Saturate() Vec4[T] {
	return a.Clamp(0, 1)
}

// Min returns the component-wise minimum of a and b.
func (a Vec4[T]) Min(b Vec4[T]) Vec4[T] {
	return Vec4[T]{
		scalar.Min(a[0], b[0]),
		scalar.Min(a[1], b[1]),
		scalar.Min(a[2], b[2]),
		scalar.Min(a[3], b[3]),
	}
}

// Max returns the component-wise maximum of a and b.
func (a Vec4[T]) Max(b Vec4[T]) Vec4[T] {
	return Vec4[T]{
		scalar.Max(a[0], b[0]),
		scalar.Max(a[1], b[1]),
		scalar.Max(a[2], b[2]),
		scalar.Max(a[3], b[3]),
	}
}

// MinComp returns the smallest component.
func (a Vec4[T]) MinComp() T {
	return scalar.Min4(a[0], a[1], a[2], a[3])
}

// MaxComp returns the largest component.
func (a Vec4[T]) MaxComp() T {
	return scalar.Max4(a[0], a[1], a[2], a[3])
}

// Abs returns the component-wise absolute value.
func (a Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{absT(a[0]), absT(a[1]), absT(a[2]), absT(a[3])}
}

// Floor returns the component-wise floor.
func (a Vec4[T]) Floor() Vec4[T] {
	return Vec4[T]{floorT(a[0]), floorT(a[1]), floorT(a[2]), floorT(a[3])}
}

// Ceil returns the component-wise ceiling.
func (a Vec4[T]) Ceil() Vec4[T] {
	return Vec4[T]{ceilT(a[0]), ceilT(a[1]), ceilT(a[2]), ceilT(a[3])}
}

// Round returns the component-wise rounding to nearest, half away from zero.
func (a Vec4[T]) Round() Vec4[T] {
	return Vec4[T]{roundT(a[0]), roundT(a[1]), roundT(a[2]), roundT(a[3])}
}

// InfNorm returns the largest absolute component.
func (a Vec4[T]) InfNorm() T {
	return scalar.Max4(absT(a[0]), absT(a[1]), absT(a[2]), absT(a[3]))
}

// All reports whether every component is nonzero.
func (a Vec4[T]) All() bool {
	return a[0] != 0 && a[1] != 0 && a[2] != 0 && a[3] != 0
}

// Any reports whether at least one component is nonzero.
func (a Vec4[T]) Any() bool {
	return a[0] != 0 || a[1] != 0 || a[2] != 0 || a[3] != 0
}

// Nonzero reports whether the vector differs from the zero vector.
func (a Vec4[T]) Nonzero() bool {
	return a.Any()
}

// AlmostEqual reports whether a and b lie within epsilon distance of each
// other.
func (a Vec4[T]) AlmostEqual(b Vec4[T], epsilon T) bool {
	return a.Distance(b) < epsilon
}
