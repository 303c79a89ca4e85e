package scalar

// SmoothStep evaluates the quintic ease 10r³ - 15r⁴ + 6r⁵ on [0, 1].
// Inputs below 0 return 0 and inputs above 1 return 1.
func SmoothStep[T Real](r T) T {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r * r * r * (10 + r*(-15+r*6))
}

// SmoothStepRange remaps r from [rLower, rUpper] into [0, 1], eases it, and
// remaps the result into [valueLower, valueUpper]. A zero-width input range
// divides by zero and propagates NaN/Inf; the caller must keep
// rLower != rUpper.
func SmoothStepRange[T Real](r, rLower, rUpper, valueLower, valueUpper T) T {
	return valueLower + SmoothStep((r-rLower)/(rUpper-rLower))*(valueUpper-valueLower)
}

// LinearStep is a linear ramp: 0 at or below l, 1 at or above r, and the
// linear interpolant in between.
func LinearStep[T Real](l, r, v T) T {
	if v <= l {
		return 0
	}
	if v >= r {
		return 1
	}
	return (v - l) / (r - l)
}

// Ramp rescales SmoothStep to map [-1, 1] onto [-1, 1].
func Ramp[T Real](r T) T {
	return SmoothStep((r+1)/2)*2 - 1
}

// MapToRange linearly remaps v from [inStart, inEnd] to [outStart, outEnd].
// Values outside the input range extrapolate.
func MapToRange[T Real](inStart, inEnd, outStart, outEnd, v T) T {
	slope := (outEnd - outStart) / (inEnd - inStart)
	return outStart + slope*(v-inStart)
}
