package vec

import "fmt"

// The textual form of a vector is its components separated by single spaces,
// with no dimension or type tag. It round-trips through UnmarshalText only
// when the reader already knows the dimension and component type.

// String formats the components separated by spaces.
func (v Vec2[T]) String() string {
	return fmt.Sprintf("%v %v", v[0], v[1])
}

// String formats the components separated by spaces.
func (v Vec3[T]) String() string {
	return fmt.Sprintf("%v %v %v", v[0], v[1], v[2])
}

// String formats the components separated by spaces.
func (v Vec4[T]) String() string {
	return fmt.Sprintf("%v %v %v %v", v[0], v[1], v[2], v[3])
}

// MarshalText implements encoding.TextMarshaler.
func (v Vec2[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Vec3[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Vec4[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, reading two
// whitespace-separated components.
func (v *Vec2[T]) UnmarshalText(text []byte) error {
	_, err := fmt.Sscan(string(text), &v[0], &v[1])
	return err
}

// UnmarshalText implements encoding.TextUnmarshaler, reading three
// whitespace-separated components.
func (v *Vec3[T]) UnmarshalText(text []byte) error {
	_, err := fmt.Sscan(string(text), &v[0], &v[1], &v[2])
	return err
}

// UnmarshalText implements encoding.TextUnmarshaler, reading four
// whitespace-separated components.
func (v *Vec4[T]) UnmarshalText(text []byte) error {
	_, err := fmt.Sscan(string(text), &v[0], &v[1], &v[2], &v[3])
	return err
}
