package vec

import "math"

// FNV-1a parameters, folded inline over the component bit patterns.
const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// hashFold mixes one component into the running hash, byte by byte.
// Components are widened to float64 first so the hash is stable across
// component types that represent the same values.
func hashFold(h uint64, c float64) uint64 {
	bits := math.Float64bits(c)
	for i := 0; i < 8; i++ {
		h ^= (bits >> (8 * i)) & 0xff
		h *= fnvPrime
	}
	return h
}

// Hash returns an order-dependent hash of the components.
func (v Vec2[T]) Hash() uint64 {
	h := uint64(fnvOffset)
	for _, c := range v {
		h = hashFold(h, float64(c))
	}
	return h
}

// Hash returns an order-dependent hash of the components.
func (v Vec3[T]) Hash() uint64 {
	h := uint64(fnvOffset)
	for _, c := range v {
		h = hashFold(h, float64(c))
	}
	return h
}

// Hash returns an order-dependent hash of the components.
func (v Vec4[T]) Hash() uint64 {
	h := uint64(fnvOffset)
	for _, c := range v {
		h = hashFold(h, float64(c))
	}
	return h
}
