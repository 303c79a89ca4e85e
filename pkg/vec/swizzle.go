package vec

// Swizzles come in two flavours. The named methods below cover the common
// shader-style projections as plain value gathers. For arbitrary
// permutations the Mask types carry the component indices; because a mask's
// arity is part of its type, pairing a mask with a vector of the wrong
// dimension is a compile-time error rather than a runtime one.
//
// Gather and scatter both copy by value: a gathered vector does not alias
// the source, and a scatter writes each selected component once (repeated
// indices are last-write-wins). Index validity is asserted only in builds
// with the debug tag; out-of-range indices otherwise surface as the runtime
// bounds panic of the backing array.

// Mask2 selects two component indices.
type Mask2 [2]int

// Mask3 selects three component indices.
type Mask3 [3]int

// Mask4 selects four component indices.
type Mask4 [4]int

// Gather2 copies the masked components into a Vec2.
func (v Vec2[T]) Gather2(m Mask2) Vec2[T] {
	assertMask(m[:], 2)
	return Vec2[T]{v[m[0]], v[m[1]]}
}

// Gather3 copies the masked components into a Vec3; indices may repeat.
func (v Vec2[T]) Gather3(m Mask3) Vec3[T] {
	assertMask(m[:], 2)
	return Vec3[T]{v[m[0]], v[m[1]], v[m[2]]}
}

// Gather4 copies the masked components into a Vec4; indices may repeat.
func (v Vec2[T]) Gather4(m Mask4) Vec4[T] {
	assertMask(m[:], 2)
	return Vec4[T]{v[m[0]], v[m[1]], v[m[2]], v[m[3]]}
}

// Scatter2 writes src into the masked components.
func (v *Vec2[T]) Scatter2(m Mask2, src Vec2[T]) {
	assertMask(m[:], 2)
	v[m[0]] = src[0]
	v[m[1]] = src[1]
}

// Gather2 copies the masked components into a Vec2.
func (v Vec3[T]) Gather2(m Mask2) Vec2[T] {
	assertMask(m[:], 3)
	return Vec2[T]{v[m[0]], v[m[1]]}
}

// Gather3 copies the masked components into a Vec3; indices may repeat.
func (v Vec3[T]) Gather3(m Mask3) Vec3[T] {
	assertMask(m[:], 3)
	return Vec3[T]{v[m[0]], v[m[1]], v[m[2]]}
}

// Gather4 copies the masked components into a Vec4; indices may repeat.
func (v Vec3[T]) Gather4(m Mask4) Vec4[T] {
	assertMask(m[:], 3)
	return Vec4[T]{v[m[0]], v[m[1]], v[m[2]], v[m[3]]}
}

// Scatter2 writes src into the masked components.
func (v *Vec3[T]) Scatter2(m Mask2, src Vec2[T]) {
	assertMask(m[:], 3)
	v[m[0]] = src[0]
	v[m[1]] = src[1]
}

// Scatter3 writes src into the masked components.
func (v *Vec3[T]) Scatter3(m Mask3, src Vec3[T]) {
	assertMask(m[:], 3)
	v[m[0]] = src[0]
	v[m[1]] = src[1]
	v[m[2]] = src[2]
}

// Gather2 copies the masked components into a Vec2.
func (v Vec4[T]) Gather2(m Mask2) Vec2[T] {
	assertMask(m[:], 4)
	return Vec2[T]{v[m[0]], v[m[1]]}
}

// Gather3 copies the masked components into a Vec3; indices may repeat.
func (v Vec4[T]) Gather3(m Mask3) Vec3[T] {
	assertMask(m[:], 4)
	return Vec3[T]{v[m[0]], v[m[1]], v[m[2]]}
}

// Gather4 copies the masked components into a Vec4; indices may repeat.
func (v Vec4[T]) Gather4(m Mask4) Vec4[T] {
	assertMask(m[:], 4)
	return Vec4[T]{v[m[0]], v[m[1]], v[m[2]], v[m[3]]}
}

// Scatter2 writes src into the masked components.
func (v *Vec4[T]) Scatter2(m Mask2, src Vec2[T]) {
	assertMask(m[:], 4)
	v[m[0]] = src[0]
	v[m[1]] = src[1]
}

// Scatter3 writes src into the masked components.
func (v *Vec4[T]) Scatter3(m Mask3, src Vec3[T]) {
	assertMask(m[:], 4)
	v[m[0]] = src[0]
	v[m[1]] = src[1]
	v[m[2]] = src[2]
}

// Scatter4 writes src into the masked components.
func (v *Vec4[T]) Scatter4(m Mask4, src Vec4[T]) {
	assertMask(m[:], 4)
	v[m[0]] = src[0]
	v[m[1]] = src[1]
	v[m[2]] = src[2]
	v[m[3]] = src[3]
}

// Named swizzles.

// YX returns (y, x).
func (v Vec2[T]) YX() Vec2[T] { return Vec2[T]{v[1], v[0]} }

// XX returns (x, x).
func (v Vec2[T]) XX() Vec2[T] { return Vec2[T]{v[0], v[0]} }

// YY returns (y, y).
func (v Vec2[T]) YY() Vec2[T] { return Vec2[T]{v[1], v[1]} }

// YX returns (y, x).
func (v Vec3[T]) YX() Vec2[T] { return Vec2[T]{v[1], v[0]} }

// XZ returns (x, z).
func (v Vec3[T]) XZ() Vec2[T] { return Vec2[T]{v[0], v[2]} }

// YZ returns (y, z).
func (v Vec3[T]) YZ() Vec2[T] { return Vec2[T]{v[1], v[2]} }

// ZYX returns the components reversed.
func (v Vec3[T]) ZYX() Vec3[T] { return Vec3[T]{v[2], v[1], v[0]} }

// WZYX returns the components reversed.
func (v Vec4[T]) WZYX() Vec4[T] { return Vec4[T]{v[3], v[2], v[1], v[0]} }

// ZW returns (z, w).
func (v Vec4[T]) ZW() Vec2[T] { return Vec2[T]{v[2], v[3]} }
