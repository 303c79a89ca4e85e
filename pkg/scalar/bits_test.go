package scalar

import "testing"

func TestRoundUpToPowerOfTwo(t *testing.T) {
	tests := []struct {
		n        uint32
		expected uint32
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{8, 8},
		{9, 16},
		{1000, 1024},
		{1 << 30, 1 << 30},
	}

	for _, tc := range tests {
		if got := RoundUpToPowerOfTwo(tc.n); got != tc.expected {
			t.Errorf("RoundUpToPowerOfTwo(%d) = %d, want %d", tc.n, got, tc.expected)
		}
	}
}

func TestRoundDownToPowerOfTwo(t *testing.T) {
	tests := []struct {
		n        uint32
		expected uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 2},
		{5, 4},
		{8, 8},
		{9, 8},
		{1000, 512},
	}

	for _, tc := range tests {
		if got := RoundDownToPowerOfTwo(tc.n); got != tc.expected {
			t.Errorf("RoundDownToPowerOfTwo(%d) = %d, want %d", tc.n, got, tc.expected)
		}
	}
}

func TestIntLog2(t *testing.T) {
	tests := []struct {
		x        int
		expected int
	}{
		{0, -1},
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{1023, 9},
		{1024, 10},
	}

	for _, tc := range tests {
		if got := IntLog2(tc.x); got != tc.expected {
			t.Errorf("IntLog2(%d) = %d, want %d", tc.x, got, tc.expected)
		}
	}
}

func TestMortonEncode(t *testing.T) {
	tests := []struct {
		x, y     uint32
		expected uint64
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 2},
		{1, 1, 3},
		{2, 0, 4},
		{7, 7, 0x3F},
		{0xFFFFFFFF, 0, 0x5555555555555555},
		{0, 0xFFFFFFFF, 0xAAAAAAAAAAAAAAAA},
	}

	for _, tc := range tests {
		if got := MortonEncode(tc.x, tc.y); got != tc.expected {
			t.Errorf("MortonEncode(%d, %d) = %#x, want %#x", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestMortonRoundTrip(t *testing.T) {
	coords := []struct{ x, y uint32 }{
		{0, 0},
		{1, 2},
		{123, 456},
		{65535, 1},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{0xDEADBEEF, 0xCAFEBABE},
	}

	for _, c := range coords {
		x, y := MortonDecode(MortonEncode(c.x, c.y))
		if x != c.x || y != c.y {
			t.Errorf("Morton round trip (%d, %d) = (%d, %d)", c.x, c.y, x, y)
		}
	}
}

func TestMortonOrderIsLocal(t *testing.T) {
	// Adjacent cells within a 2x2 block are consecutive codes.
	base := MortonEncode(4, 6)
	if MortonEncode(5, 6) != base+1 {
		t.Error("x neighbour in block not consecutive")
	}
	if MortonEncode(4, 7) != base+2 {
		t.Error("y neighbour in block not +2")
	}
	if MortonEncode(5, 7) != base+3 {
		t.Error("diagonal in block not +3")
	}
}
