package vec

import (
	"math"
	"testing"
)

func TestAddSubRoundTrip(t *testing.T) {
	a := V3(1.5, -2.0, 7.25)
	b := V3(0.5, 3.0, -1.75)
	if got := a.Add(b).Sub(b); got != a {
		t.Errorf("a+b-b = %v, want %v", got, a)
	}
}

func TestDotCommutes(t *testing.T) {
	a := V3(1.0, 2, 3)
	b := V3(-4.0, 5, 6)
	if a.Dot(b) != b.Dot(a) {
		t.Errorf("dot not commutative: %v vs %v", a.Dot(b), b.Dot(a))
	}
	if got := a.Dot(b); got != 24 {
		t.Errorf("Dot = %v, want 24", got)
	}
}

func TestCrossAnticommutes(t *testing.T) {
	a := V3(1.0, 2, 3)
	b := V3(4.0, 5, 6)
	ab := a.Cross(b)
	ba := b.Cross(a)
	if ab != ba.Neg() {
		t.Errorf("a×b = %v, b×a = %v, want negations", ab, ba)
	}
	// Cross product is orthogonal to both inputs.
	if math.Abs(ab.Dot(a)) > 1e-9 || math.Abs(ab.Dot(b)) > 1e-9 {
		t.Errorf("a×b = %v not orthogonal to inputs", ab)
	}
}

func TestCrossUnits(t *testing.T) {
	if got := UnitX3[float64]().Cross(UnitY3[float64]()); got != UnitZ3[float64]() {
		t.Errorf("x × y = %v, want z", got)
	}
}

func TestCross2D(t *testing.T) {
	if got := V2(1.0, 0).Cross(V2(0.0, 1)); got != 1 {
		t.Errorf("2D cross = %v, want 1", got)
	}
	if got := V2(3.0, 4).Cross(V2(3.0, 4)); got != 0 {
		t.Errorf("2D self cross = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3[float64]
	}{
		{"axis", V3(5.0, 0, 0)},
		{"diagonal", V3(1.0, 1, 1)},
		{"arbitrary", V3(-3.0, 4, 12)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.v.Normalize()
			if math.Abs(n.Len()-1) > 1e-9 {
				t.Errorf("|normalize(%v)| = %v, want 1", tc.v, n.Len())
			}
			// Direction preserved.
			if math.Abs(n.Dot(tc.v)-tc.v.Len()) > 1e-9 {
				t.Errorf("normalize(%v) changed direction", tc.v)
			}
		})
	}
}

func TestLenSqEqualsSelfDot(t *testing.T) {
	a := V4(1.0, -2, 3, 4.5)
	if a.LenSq() != a.Dot(a) {
		t.Errorf("LenSq = %v, Dot(a,a) = %v", a.LenSq(), a.Dot(a))
	}
}

func TestDistance(t *testing.T) {
	a := V2(1.0, 2)
	b := V2(4.0, 6)
	if got := a.Distance(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if a.DistanceSq(b) != 25 {
		t.Errorf("DistanceSq = %v, want 25", a.DistanceSq(b))
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := V3(1.0, 2, 3)
	b := V3(4.0, 8, 16)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp t=0 = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp t=1 = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != V3(2.5, 5.0, 9.5) {
		t.Errorf("Lerp t=0.5 = %v", got)
	}
}

func TestClamp(t *testing.T) {
	v := V4(-2.0, 0.5, 3, 1)
	if got := v.Clamp(0, 1); got != V4(0.0, 0.5, 1, 1) {
		t.Errorf("Clamp = %v", got)
	}
	if got := v.Saturate(); got != v.Clamp(0, 1) {
		t.Errorf("Saturate = %v", got)
	}
	// A vector already in range is unchanged.
	in := V2(0.25, 0.75)
	if got := in.Clamp(0, 1); got != in {
		t.Errorf("Clamp in-range = %v, want %v", got, in)
	}
}

func TestClampVec(t *testing.T) {
	v := V2(-5.0, 5)
	got := v.ClampVec(V2(0.0, -1), V2(1.0, 2))
	if got != V2(0.0, 2) {
		t.Errorf("ClampVec = %v, want (0, 2)", got)
	}
}

func TestMinMaxComp(t *testing.T) {
	v := V3(3.0, -1, 2)
	if v.MinComp() != -1 {
		t.Errorf("MinComp = %v, want -1", v.MinComp())
	}
	if v.MaxComp() != 3 {
		t.Errorf("MaxComp = %v, want 3", v.MaxComp())
	}
}

func TestComponentWiseMinMax(t *testing.T) {
	a := V2(1.0, 5)
	b := V2(3.0, 2)
	if got := a.Min(b); got != V2(1.0, 2) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != V2(3.0, 5) {
		t.Errorf("Max = %v", got)
	}
}

func TestAccessorsAliasStorage(t *testing.T) {
	v := V4(1.0, 2, 3, 4)
	v.SetX(10)
	if v[0] != 10 {
		t.Errorf("SetX did not write v[0]: %v", v)
	}
	v[3] = 40
	if v.W() != 40 {
		t.Errorf("W() did not read v[3]: %v", v)
	}
	x, y, z, w := v.XYZW()
	if x != 10 || y != 2 || z != 3 || w != 40 {
		t.Errorf("XYZW = (%v, %v, %v, %v)", x, y, z, w)
	}
}

func TestExtendTruncate(t *testing.T) {
	v2 := V2(1.0, 2)
	v3 := v2.Extend(3)
	if v3 != V3(1.0, 2, 3) {
		t.Errorf("Extend = %v", v3)
	}
	v4 := v3.Extend(4)
	if v4 != V4(1.0, 2, 3, 4) {
		t.Errorf("Extend = %v", v4)
	}
	if v4.XYZ() != v3 {
		t.Errorf("XYZ = %v, want %v", v4.XYZ(), v3)
	}
	if v3.XY() != v2 {
		t.Errorf("XY = %v, want %v", v3.XY(), v2)
	}
}

func TestConvert(t *testing.T) {
	vi := V3(1, 2, 3)
	vf := Convert3[float64](vi)
	if vf != V3(1.0, 2, 3) {
		t.Errorf("Convert3 = %v", vf)
	}
	back := Convert3[int](V3(1.9, 2.1, 3.5))
	if back != V3(1, 2, 3) {
		t.Errorf("Convert3 truncation = %v, want (1, 2, 3)", back)
	}
}

func TestIntegerVectors(t *testing.T) {
	a := V2(3, 4)
	if a.LenSq() != 25 {
		t.Errorf("int LenSq = %v, want 25", a.LenSq())
	}
	if a.Len() != 5 {
		t.Errorf("int Len = %v, want 5", a.Len())
	}
	if got := a.Scale(2); got != V2(6, 8) {
		t.Errorf("int Scale = %v", got)
	}
}

func TestAbsFloorCeilRound(t *testing.T) {
	v := V2(-1.5, 2.5)
	if got := v.Abs(); got != V2(1.5, 2.5) {
		t.Errorf("Abs = %v", got)
	}
	if got := v.Floor(); got != V2(-2.0, 2) {
		t.Errorf("Floor = %v", got)
	}
	if got := v.Ceil(); got != V2(-1.0, 3) {
		t.Errorf("Ceil = %v", got)
	}
	if got := v.Round(); got != V2(-2.0, 3) {
		t.Errorf("Round = %v", got)
	}
}

func TestInfNorm(t *testing.T) {
	if got := V3(1.0, -7, 3).InfNorm(); got != 7 {
		t.Errorf("InfNorm = %v, want 7", got)
	}
}

func TestAllAny(t *testing.T) {
	if !V3(1.0, 2, 3).All() {
		t.Error("All on nonzero vector = false")
	}
	if V3(1.0, 0, 3).All() {
		t.Error("All with a zero component = true")
	}
	if !V3(0.0, 0, 3).Any() {
		t.Error("Any with a nonzero component = false")
	}
	if Zero3[float64]().Any() {
		t.Error("Any on zero vector = true")
	}
}

func TestNonzero(t *testing.T) {
	if Zero2[float64]().Nonzero() {
		t.Error("Nonzero on zero Vec2 = true")
	}
	if !V3(0.0, 0, -1).Nonzero() {
		t.Error("Nonzero with one nonzero component = false")
	}
	if Zero4[int]().Nonzero() {
		t.Error("Nonzero on zero Vec4 = true")
	}
	if !UnitW4[float64]().Nonzero() {
		t.Error("Nonzero on unit Vec4 = false")
	}
}

func TestAlmostEqual(t *testing.T) {
	a := V2(1.0, 2)
	b := V2(1.0+1e-12, 2)
	if !a.AlmostEqual(b, 1e-9) {
		t.Error("nearby vectors not almost equal")
	}
	if a.AlmostEqual(V2(1.1, 2.0), 1e-9) {
		t.Error("distant vectors almost equal")
	}
}

func TestRotate(t *testing.T) {
	got := V2(1.0, 0).Rotate(math.Pi / 2)
	if !got.AlmostEqual(V2(0.0, 1), 1e-9) {
		t.Errorf("Rotate 90° = %v, want (0, 1)", got)
	}
	if p := V2(1.0, 0).Perp(); p != V2(0.0, 1) {
		t.Errorf("Perp = %v, want (0, 1)", p)
	}
}

func TestTriple(t *testing.T) {
	// Unit basis spans a unit signed volume.
	got := Triple(UnitX3[float64](), UnitY3[float64](), UnitZ3[float64]())
	if got != 1 {
		t.Errorf("Triple(x, y, z) = %v, want 1", got)
	}
	// Swapping two arguments flips the sign.
	if Triple(UnitY3[float64](), UnitX3[float64](), UnitZ3[float64]()) != -1 {
		t.Error("Triple did not flip sign on swap")
	}
}

func TestMinMaxVariadic(t *testing.T) {
	lo, hi := MinMax3(V3(1.0, 5, 2), V3(3.0, 2, 8), V3(-1.0, 4, 4))
	if lo != V3(-1.0, 2, 2) {
		t.Errorf("MinMax3 lo = %v", lo)
	}
	if hi != V3(3.0, 5, 8) {
		t.Errorf("MinMax3 hi = %v", hi)
	}

	lo2, hi2 := MinMax2[float64]()
	if lo2 != Zero2[float64]() || hi2 != Zero2[float64]() {
		t.Errorf("MinMax2() = (%v, %v), want zero vectors", lo2, hi2)
	}
}

func TestUpdateMinMaxVec(t *testing.T) {
	lo, hi := V2(0.0, 0), V2(1.0, 1)
	lo, hi = UpdateMinMax2(V2(-1.0, 0.5), lo, hi)
	if lo != V2(-1.0, 0) || hi != V2(1.0, 1) {
		t.Errorf("UpdateMinMax2 = (%v, %v)", lo, hi)
	}
}

func TestStep(t *testing.T) {
	got := Step3(V3(1.0, 2, 3), V3(2.0, 2, 2))
	if got != V3(0.0, 0, 1) {
		t.Errorf("Step3 = %v, want (0, 0, 1)", got)
	}
}

func TestSmoothStepVec(t *testing.T) {
	got := SmoothStep2(0.5, V2(0.0, 0), V2(1.0, 1))
	if math.Abs(got[0]-0.5) > 1e-9 || math.Abs(got[1]-0.5) > 1e-9 {
		t.Errorf("SmoothStep2 midpoint = %v, want (0.5, 0.5)", got)
	}
	below := SmoothStep3(-1.0, Zero3[float64](), One3[float64]())
	if below != Zero3[float64]() {
		t.Errorf("SmoothStep3 below edge0 = %v, want zero", below)
	}
}

func TestFromSlice(t *testing.T) {
	s := []float64{1, 2, 3, 4}
	if got := FromSlice2(s); got != V2(1.0, 2) {
		t.Errorf("FromSlice2 = %v", got)
	}
	if got := FromSlice3(s); got != V3(1.0, 2, 3) {
		t.Errorf("FromSlice3 = %v", got)
	}
	if got := FromSlice4(s); got != V4(1.0, 2, 3, 4) {
		t.Errorf("FromSlice4 = %v", got)
	}
}

func TestColors(t *testing.T) {
	if Red3[float64]() != V3(1.0, 0, 0) {
		t.Error("Red3 wrong")
	}
	if Black4[float64]() != V4(0.0, 0, 0, 1) {
		t.Error("Black4 should be opaque")
	}
	c := Magenta3[float64]()
	if c.R() != 1 || c.G() != 0 || c.B() != 1 {
		t.Errorf("Magenta3 RGB = (%v, %v, %v)", c.R(), c.G(), c.B())
	}
}
