package vec

import "testing"

func TestNamedSwizzles(t *testing.T) {
	v2 := V2(1.0, 2)
	if got := v2.YX(); got != V2(2.0, 1) {
		t.Errorf("YX = %v", got)
	}
	if got := v2.XX(); got != V2(1.0, 1) {
		t.Errorf("XX = %v", got)
	}
	if got := v2.YY(); got != V2(2.0, 2) {
		t.Errorf("YY = %v", got)
	}

	v3 := V3(1.0, 2, 3)
	if got := v3.YX(); got != V2(2.0, 1) {
		t.Errorf("Vec3.YX = %v", got)
	}
	if got := v3.XZ(); got != V2(1.0, 3) {
		t.Errorf("XZ = %v", got)
	}
	if got := v3.YZ(); got != V2(2.0, 3) {
		t.Errorf("YZ = %v", got)
	}
	if got := v3.ZYX(); got != V3(3.0, 2, 1) {
		t.Errorf("ZYX = %v", got)
	}

	v4 := V4(1.0, 2, 3, 4)
	if got := v4.WZYX(); got != V4(4.0, 3, 2, 1) {
		t.Errorf("WZYX = %v, want (4, 3, 2, 1)", got)
	}
	if got := v4.ZW(); got != V2(3.0, 4) {
		t.Errorf("ZW = %v", got)
	}
}

func TestGather(t *testing.T) {
	v := V4(10.0, 20, 30, 40)
	if got := v.Gather2(Mask2{3, 0}); got != V2(40.0, 10) {
		t.Errorf("Gather2 = %v", got)
	}
	if got := v.Gather3(Mask3{2, 2, 1}); got != V3(30.0, 30, 20) {
		t.Errorf("Gather3 with repeats = %v", got)
	}
	if got := v.Gather4(Mask4{3, 2, 1, 0}); got != v.WZYX() {
		t.Errorf("Gather4 reverse = %v", got)
	}

	// A gather is a copy, not a view.
	g := v.Gather2(Mask2{0, 1})
	v.SetX(99)
	if g != V2(10.0, 20) {
		t.Errorf("gathered vector aliased its source: %v", g)
	}
}

func TestScatter(t *testing.T) {
	v := V4(1.0, 2, 3, 4)
	v.Scatter4(Mask4{3, 2, 1, 0}, V4(1.0, 2, 3, 4))
	if v != V4(4.0, 3, 2, 1) {
		t.Errorf("reverse scatter = %v, want (4, 3, 2, 1)", v)
	}

	v3 := V3(0.0, 0, 0)
	v3.Scatter2(Mask2{2, 0}, V2(7.0, 5))
	if v3 != V3(5.0, 0, 7) {
		t.Errorf("Scatter2 = %v, want (5, 0, 7)", v3)
	}

	// Repeated indices: last write wins.
	v2 := V2(0.0, 0)
	v2.Scatter2(Mask2{0, 0}, V2(1.0, 2))
	if v2 != V2(2.0, 0) {
		t.Errorf("repeated scatter = %v, want (2, 0)", v2)
	}
}

func TestGatherScatterRoundTrip(t *testing.T) {
	src := V4(1.0, 2, 3, 4)
	m := Mask4{2, 0, 3, 1}
	g := src.Gather4(m)

	var dst Vec4[float64]
	dst.Scatter4(m, g)
	if dst != src {
		t.Errorf("scatter(gather(v)) = %v, want %v", dst, src)
	}
}
