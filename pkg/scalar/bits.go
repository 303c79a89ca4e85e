package scalar

// RoundUpToPowerOfTwo returns the smallest power of two that is >= n.
// n must be greater than zero: n = 0 wraps during the initial decrement and
// the result is unspecified.
func RoundUpToPowerOfTwo(n uint32) uint32 {
	exponent := 0
	n--
	for n != 0 {
		exponent++
		n >>= 1
	}
	return 1 << exponent
}

// RoundDownToPowerOfTwo returns the largest power of two that is <= n.
// RoundDownToPowerOfTwo(0) returns 1.
func RoundDownToPowerOfTwo(n uint32) uint32 {
	exponent := 0
	for n > 1 {
		exponent++
		n >>= 1
	}
	return 1 << exponent
}

// IntLog2 returns floor(log2(x)), or -1 for x = 0.
func IntLog2(x int) int {
	exp := -1
	for x != 0 {
		x >>= 1
		exp++
	}
	return exp
}

// mortonSpread1 spreads the 32 bits of x over the even bit positions of a
// 64-bit word.
func mortonSpread1(x uint32) uint64 {
	d := uint64(x)
	d = (d | d<<16) & 0x0000FFFF0000FFFF
	d = (d | d<<8) & 0x00FF00FF00FF00FF
	d = (d | d<<4) & 0x0F0F0F0F0F0F0F0F
	d = (d | d<<2) & 0x3333333333333333
	d = (d | d<<1) & 0x5555555555555555
	return d
}

// MortonCompact1 gathers the even bit positions of d back into a 32-bit
// coordinate; it is the inverse of the bit spreading used by MortonEncode.
func MortonCompact1(d uint64) uint32 {
	d &= 0x5555555555555555
	d = (d | d>>1) & 0x3333333333333333
	d = (d | d>>2) & 0x0F0F0F0F0F0F0F0F
	d = (d | d>>4) & 0x00FF00FF00FF00FF
	d = (d | d>>8) & 0x0000FFFF0000FFFF
	d = (d | d>>16) & 0x00000000FFFFFFFF
	return uint32(d)
}

// MortonEncode interleaves the bits of x and y into a 64-bit Z-order curve
// index, with x occupying the even bits.
func MortonEncode(x, y uint32) uint64 {
	return mortonSpread1(x) | mortonSpread1(y)<<1
}

// MortonDecode splits a 64-bit Z-order curve index back into its two 32-bit
// coordinates.
func MortonDecode(d uint64) (x, y uint32) {
	return MortonCompact1(d), MortonCompact1(d >> 1)
}
