// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"
	"strconv"
)

// Int returns an int32 Value.
func Int(v int32) Value { return Value{kind: KindInt, i: v} }

// Float returns a float32 Value.
func Float(v float32) Value { return Value{kind: KindFloat, f: [3]float32{v}} }

// Bool returns a bool Value.
func Bool(v bool) Value {
	var b int32
	if v {
		b = 1
	}

	return Value{kind: KindBool, i: b}
}

// Str returns a string Value.
func Str(v string) Value { return Value{kind: KindString, s: v} }

// Vec2 returns a two-component vector Value.
func Vec2(x, y float32) Value { return Value{kind: KindVec2, f: [3]float32{x, y}} }

// Vec3 returns a three-component vector Value.
func Vec3(x, y, z float32) Value { return Value{kind: KindVec3, f: [3]float32{x, y, z}} }

// Mesh returns a Value wrapping an external mesh handle.
func Mesh(h MeshHandle) Value { return Value{kind: KindMesh, h: h} }

// Kind returns the element kind of v.
func (v Value) Kind() Kind { return v.kind }

// Int returns the int32 payload; zero for other kinds.
func (v Value) Int() int32 {
	if v.kind != KindInt {
		return 0
	}

	return v.i
}

// Float returns the float32 payload; ints are widened, other kinds give zero.
func (v Value) Float() float32 {
	switch v.kind {
	case KindFloat:
		return v.f[0]
	case KindInt:
		return float32(v.i)
	default:
		return 0
	}
}

// Bool returns the bool payload; false for other kinds.
func (v Value) Bool() bool { return v.kind == KindBool && v.i != 0 }

// Str returns the string payload; empty for other kinds.
func (v Value) Str() string { return v.s }

// Vec2 returns the two vector components; zero for other kinds.
func (v Value) Vec2() [2]float32 {
	if v.kind != KindVec2 {
		return [2]float32{}
	}

	return [2]float32{v.f[0], v.f[1]}
}

// Vec3 returns the three vector components; zero for other kinds.
func (v Value) Vec3() [3]float32 {
	if v.kind != KindVec3 {
		return [3]float32{}
	}

	return v.f
}

// Mesh returns the mesh handle payload; zero for other kinds.
func (v Value) Mesh() MeshHandle { return v.h }

// Less orders two Values of the same ordered Kind (int, float, string, bool).
// Values of different or unordered kinds are never Less.
func (v Value) Less(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt, KindBool:
		return v.i < o.i
	case KindFloat:
		return v.f[0] < o.f[0]
	case KindString:
		return v.s < o.s
	default:
		return false
	}
}

// Interface returns the payload as a native Go value
// (int32, float32, bool, string, [2]float32, [3]float32 or MeshHandle).
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f[0]
	case KindBool:
		return v.i != 0
	case KindString:
		return v.s
	case KindVec2:
		return v.Vec2()
	case KindVec3:
		return v.f
	case KindMesh:
		return v.h
	default:
		return nil
	}
}

// String renders v the way it appears inside Tree.String.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(int64(v.i), 10)
	case KindFloat:
		return formatFloat(v.f[0])
	case KindBool:
		return strconv.FormatBool(v.i != 0)
	case KindString:
		return strconv.Quote(v.s)
	case KindVec2:
		return fmt.Sprintf("(%s, %s)", formatFloat(v.f[0]), formatFloat(v.f[1]))
	case KindVec3:
		return fmt.Sprintf("(%s, %s, %s)", formatFloat(v.f[0]), formatFloat(v.f[1]), formatFloat(v.f[2]))
	case KindMesh:
		return fmt.Sprintf("<mesh %d>", uint64(v.h))
	default:
		return "<invalid>"
	}
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
