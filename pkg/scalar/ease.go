package scalar

import "math"

// The SmoothStart and SmoothStop families are power-law ease-in/ease-out
// curves in the classic (t, b, c, d) form: t is the current time, b the
// start value, c the value change, d the duration. Pass b=0, c=1, d=1 for
// the normalized curve.

// SmoothStart2 is a quadratic ease-in.
func SmoothStart2[T Real](t, b, c, d T) T {
	t /= d
	return c*t*t + b
}

// SmoothStart3 is a cubic ease-in.
func SmoothStart3[T Real](t, b, c, d T) T {
	t /= d
	return c*t*t*t + b
}

// SmoothStart4 is a quartic ease-in.
func SmoothStart4[T Real](t, b, c, d T) T {
	t /= d
	return c*t*t*t*t + b
}

// SmoothStart5 is a quintic ease-in.
func SmoothStart5[T Real](t, b, c, d T) T {
	t /= d
	return c*t*t*t*t*t + b
}

// SmoothStop2 is a quadratic ease-out.
func SmoothStop2[T Real](t, b, c, d T) T {
	t /= d
	return -c*t*(t-2) + b
}

// SmoothStop3 is a cubic ease-out.
func SmoothStop3[T Real](t, b, c, d T) T {
	t = t/d - 1
	return c*(t*t*t+1) + b
}

// SmoothStop4 is a quartic ease-out.
func SmoothStop4[T Real](t, b, c, d T) T {
	t = t/d - 1
	return -c*(t*t*t*t-1) + b
}

// SmoothStop5 is a quintic ease-out.
func SmoothStop5[T Real](t, b, c, d T) T {
	t = t/d - 1
	return -c*(t*t*t*t*t+1) + b
}

// Impulse is a bell-shaped response that rises quickly to 1 at x = 1/k and
// decays exponentially after.
func Impulse[T Real](k, x T) T {
	h := k * x
	return h * T(math.Exp(float64(1-h)))
}

// CubicPulse is a cubic bump of half-width w centred on c; it is 1 at x = c
// and 0 outside [c-w, c+w].
func CubicPulse[T Real](c, w, x T) T {
	x = T(math.Abs(float64(x - c)))
	if x > w {
		return 0
	}
	x /= w
	return 1 - x*x*(3-2*x)
}

// ExpStep is the exponential step exp(-k·xⁿ).
func ExpStep[T Real](x, k, n T) T {
	return T(math.Exp(float64(-k * T(math.Pow(float64(x), float64(n))))))
}

// Parabola remaps the unit interval to a power-shaped arch that is 0 at both
// ends and 1 at x = 0.5.
func Parabola[T Real](x, k T) T {
	return T(math.Pow(4*float64(x)*(1-float64(x)), float64(k)))
}

// PCurve is an asymmetric arch over [0, 1] with exponents a and b,
// normalized so its maximum is 1.
func PCurve[T Real](x, a, b T) T {
	fa, fb := float64(a), float64(b)
	k := math.Pow(fa+fb, fa+fb) / (math.Pow(fa, fa) * math.Pow(fb, fb))
	return T(k * math.Pow(float64(x), fa) * math.Pow(1-float64(x), fb))
}
