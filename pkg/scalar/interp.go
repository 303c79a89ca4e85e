package scalar

import "math"

// Lerp linearly interpolates between value0 and value1. f is not clamped;
// values outside [0, 1] extrapolate.
func Lerp[T Real](value0, value1, f T) T {
	return (1-f)*value0 + f*value1
}

// Bilerp interpolates bilinearly between four corner samples, linearly in
// each axis.
func Bilerp[T Real](v00, v10, v01, v11, fx, fy T) T {
	return Lerp(Lerp(v00, v10, fx), Lerp(v01, v11, fx), fy)
}

// Trilerp interpolates trilinearly between eight corner samples.
func Trilerp[T Real](v000, v100, v010, v110, v001, v101, v011, v111, fx, fy, fz T) T {
	return Lerp(
		Bilerp(v000, v100, v010, v110, fx, fy),
		Bilerp(v001, v101, v011, v111, fx, fy),
		fz)
}

// Quadlerp interpolates quadrilinearly between sixteen corner samples.
func Quadlerp[T Real](v0000, v1000, v0100, v1100, v0010, v1010, v0110, v1110,
	v0001, v1001, v0101, v1101, v0011, v1011, v0111, v1111, fx, fy, fz, ft T,
) T {
	return Lerp(
		Trilerp(v0000, v1000, v0100, v1100, v0010, v1010, v0110, v1110, fx, fy, fz),
		Trilerp(v0001, v1001, v0101, v1101, v0011, v1011, v0111, v1111, fx, fy, fz),
		ft)
}

// QuadraticBSplineWeights computes the three quadratic B-spline weights for
// fractional offset f in [0, 1], with f=0.5 weighting w0 and w2 equally.
func QuadraticBSplineWeights[T Real](f T) (w0, w1, w2 T) {
	w0 = T(0.5) * Sqr(f-1)
	w1 = T(0.75) - Sqr(f-T(0.5))
	w2 = T(0.5) * Sqr(f)
	return
}

// CubicInterpWeights computes the four weights of the uniform Catmull-Rom
// style cubic basis for fractional offset f in [0, 1] between the middle two
// samples.
func CubicInterpWeights[T Real](f T) (wneg1, w0, w1, w2 T) {
	f2 := f * f
	f3 := f2 * f
	wneg1 = -T(1.0/3)*f + T(0.5)*f2 - T(1.0/6)*f3
	w0 = 1 - f2 + T(0.5)*(f3-f)
	w1 = f + T(0.5)*(f2-f3)
	w2 = T(1.0/6) * (f3 - f)
	return
}

// CubicInterp evaluates a 4-point cubic at fractional offset f between
// value0 and value1, using valueNeg1 and value2 as outer samples.
func CubicInterp[T Real](valueNeg1, value0, value1, value2, f T) T {
	wneg1, w0, w1, w2 := CubicInterpWeights(f)
	return wneg1*valueNeg1 + w0*value0 + w1*value1 + w2*value2
}

// CatmullRom evaluates the uniform Catmull-Rom spline segment between p1 and
// p2 at parameter t in [0, 1].
func CatmullRom[T Real](t, p0, p1, p2, p3 T) T {
	return T(0.5) * (2*p1 +
		(p2-p0)*t +
		(2*p0-5*p1+4*p2-p3)*(t*t) +
		(-p0+3*p1-3*p2+p3)*(t*t*t))
}

// CatmullRomAlpha evaluates the Catmull-Rom segment between p1 and p2 at
// parameter t in [0, 1] using chord-length knot spacing raised to alpha.
// alpha = 0.5 gives the centripetal variant, which avoids the overshoot of
// the uniform spline on unevenly spaced control points. It is built from
// nested linear interpolations rather than a closed-form polynomial.
// Coincident neighbouring control points give a zero knot interval and
// propagate NaN.
func CatmullRomAlpha[T Real](t, p0, p1, p2, p3, alpha T) T {
	knot := func(ti, pa, pb T) T {
		return ti + T(math.Pow(math.Abs(float64(pb-pa)), float64(alpha)))
	}
	t0 := T(0)
	t1 := knot(t0, p0, p1)
	t2 := knot(t1, p1, p2)
	t3 := knot(t2, p2, p3)

	u := t1 + t*(t2-t1)
	a1 := ((t1-u)*p0 + (u-t0)*p1) / (t1 - t0)
	a2 := ((t2-u)*p1 + (u-t1)*p2) / (t2 - t1)
	a3 := ((t3-u)*p2 + (u-t2)*p3) / (t3 - t2)
	b1 := ((t2-u)*a1 + (u-t0)*a2) / (t2 - t0)
	b2 := ((t3-u)*a2 + (u-t1)*a3) / (t3 - t1)
	return ((t2-u)*b1 + (u-t1)*b2) / (t2 - t1)
}

// Barycentric splits the real coordinate x into an integer cell index
// clamped to [iLow, iHigh-2] and a fractional offset within the cell. At the
// clamped ends the fraction is forced to 0 or 1 so sampling stays inside the
// grid.
func Barycentric[T Real](x T, iLow, iHigh int) (int, T) {
	s := T(math.Floor(float64(x)))
	i := int(s)
	switch {
	case i < iLow:
		return iLow, 0
	case i > iHigh-2:
		return iHigh - 2, 1
	default:
		return i, x - s
	}
}
