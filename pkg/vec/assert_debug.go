//go:build debug

package vec

import "fmt"

// assertLen reports a slice that is too short for the target dimension.
func assertLen(got, want int) {
	if got < want {
		panic(fmt.Sprintf("vec: need %d components, slice has %d", want, got))
	}
}

// assertMask reports mask indices outside the source vector's dimension.
func assertMask(indices []int, dim int) {
	for _, i := range indices {
		if i < 0 || i >= dim {
			panic(fmt.Sprintf("vec: swizzle index %d out of range [0,%d)", i, dim))
		}
	}
}
