//go:build !debug

package vec

// Release builds compile the contract checks out entirely; violations fall
// through to the runtime bounds check of the backing array.

func assertLen(got, want int) {}

func assertMask(indices []int, dim int) {}
