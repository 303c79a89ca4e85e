package vec

import (
	"math"

	"github.com/alex-fu27/maths/pkg/scalar"
)

// Component helpers that route through float64 so the same code serves
// integer and floating point vectors. For integer T the float round-trips
// are identity operations.

func absT[T scalar.Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func floorT[T scalar.Scalar](x T) T {
	return T(math.Floor(float64(x)))
}

func ceilT[T scalar.Scalar](x T) T {
	return T(math.Ceil(float64(x)))
}

func roundT[T scalar.Scalar](x T) T {
	return T(math.Round(float64(x)))
}

// Triple returns the scalar triple product a · (b × c).
func Triple[T scalar.Scalar](a, b, c Vec3[T]) T {
	return a[0]*(b[1]*c[2]-b[2]*c[1]) +
		a[1]*(b[2]*c[0]-b[0]*c[2]) +
		a[2]*(b[0]*c[1]-b[1]*c[0])
}

// MinMax2 returns the component-wise minimum and maximum over vs.
// Calling it with no vectors returns two zero vectors.
func MinMax2[T scalar.Scalar](vs ...Vec2[T]) (lo, hi Vec2[T]) {
	if len(vs) == 0 {
		return
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo, hi = UpdateMinMax2(v, lo, hi)
	}
	return
}

// MinMax3 returns the component-wise minimum and maximum over vs.
// Calling it with no vectors returns two zero vectors.
func MinMax3[T scalar.Scalar](vs ...Vec3[T]) (lo, hi Vec3[T]) {
	if len(vs) == 0 {
		return
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo, hi = UpdateMinMax3(v, lo, hi)
	}
	return
}

// MinMax4 returns the component-wise minimum and maximum over vs.
// Calling it with no vectors returns two zero vectors.
func MinMax4[T scalar.Scalar](vs ...Vec4[T]) (lo, hi Vec4[T]) {
	if len(vs) == 0 {
		return
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo, hi = UpdateMinMax4(v, lo, hi)
	}
	return
}

// UpdateMinMax2 widens the running component-wise (lo, hi) pair to include x.
func UpdateMinMax2[T scalar.Scalar](x, lo, hi Vec2[T]) (Vec2[T], Vec2[T]) {
	for i := range x {
		lo[i], hi[i] = scalar.UpdateMinMax(x[i], lo[i], hi[i])
	}
	return lo, hi
}

// UpdateMinMax3 widens the running component-wise (lo, hi) pair to include x.
func UpdateMinMax3[T scalar.Scalar](x, lo, hi Vec3[T]) (Vec3[T], Vec3[T]) {
	for i := range x {
		lo[i], hi[i] = scalar.UpdateMinMax(x[i], lo[i], hi[i])
	}
	return lo, hi
}

// UpdateMinMax4 widens the running component-wise (lo, hi) pair to include x.
func UpdateMinMax4[T scalar.Scalar](x, lo, hi Vec4[T]) (Vec4[T], Vec4[T]) {
	for i := range x {
		lo[i], hi[i] = scalar.UpdateMinMax(x[i], lo[i], hi[i])
	}
	return lo, hi
}

// SmoothStep2 eases r against a per-component edge pair, yielding 0 before
// edge0 and 1 after edge1 in each component.
func SmoothStep2[T scalar.Real](r T, edge0, edge1 Vec2[T]) Vec2[T] {
	var res Vec2[T]
	for i := range res {
		res[i] = scalar.SmoothStepRange(r, edge0[i], edge1[i], 0, 1)
	}
	return res
}

// SmoothStep3 eases r against a per-component edge pair, yielding 0 before
// edge0 and 1 after edge1 in each component.
func SmoothStep3[T scalar.Real](r T, edge0, edge1 Vec3[T]) Vec3[T] {
	var res Vec3[T]
	for i := range res {
		res[i] = scalar.SmoothStepRange(r, edge0[i], edge1[i], 0, 1)
	}
	return res
}

// SmoothStep4 eases r against a per-component edge pair, yielding 0 before
// edge0 and 1 after edge1 in each component.
func SmoothStep4[T scalar.Real](r T, edge0, edge1 Vec4[T]) Vec4[T] {
	var res Vec4[T]
	for i := range res {
		res[i] = scalar.SmoothStepRange(r, edge0[i], edge1[i], 0, 1)
	}
	return res
}

// Step2 returns 1 per component where a exceeds b, else 0.
func Step2[T scalar.Scalar](a, b Vec2[T]) Vec2[T] {
	var res Vec2[T]
	for i := range res {
		if a[i] > b[i] {
			res[i] = 1
		}
	}
	return res
}

// Step3 returns 1 per component where a exceeds b, else 0.
func Step3[T scalar.Scalar](a, b Vec3[T]) Vec3[T] {
	var res Vec3[T]
	for i := range res {
		if a[i] > b[i] {
			res[i] = 1
		}
	}
	return res
}

// Step4 returns 1 per component where a exceeds b, else 0.
func Step4[T scalar.Scalar](a, b Vec4[T]) Vec4[T] {
	var res Vec4[T]
	for i := range res {
		if a[i] > b[i] {
			res[i] = 1
		}
	}
	return res
}
