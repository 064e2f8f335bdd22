// SPDX-License-Identifier: MIT
// File: types.go
// Role: the closed Kind set, the comparable Value variant and the immutable Tree.

package tree

import "fmt"

// Kind tags the element type stored in the leaves of a Tree.
// The set is closed: operations switch over it instead of duck-typing.
type Kind uint8

const (
	// KindInvalid is the zero Kind; it marks an untyped (zero) Tree or Value.
	KindInvalid Kind = iota
	// KindInt stores an int32.
	KindInt
	// KindFloat stores a float32.
	KindFloat
	// KindBool stores a bool.
	KindBool
	// KindString stores a string.
	KindString
	// KindVec2 stores a [2]float32 vector.
	KindVec2
	// KindVec3 stores a [3]float32 vector.
	KindVec3
	// KindMesh stores an opaque MeshHandle owned by an external geometry kernel.
	KindMesh
)

// kindNames maps every Kind to its stable display name.
var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt:     "int32",
	KindFloat:   "float32",
	KindBool:    "bool",
	KindString:  "string",
	KindVec2:    "vec2",
	KindVec3:    "vec3",
	KindMesh:    "mesh",
}

// String returns the stable display name of k ("int32", "vec3", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the concrete element kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && k <= KindMesh
}

// Numeric reports whether k supports arithmetic sums (int, float and vectors).
func (k Kind) Numeric() bool {
	switch k {
	case KindInt, KindFloat, KindVec2, KindVec3:
		return true
	default:
		return false
	}
}

// Ordered reports whether Values of kind k can be compared with Value.Less.
func (k Kind) Ordered() bool {
	switch k {
	case KindInt, KindFloat, KindString, KindBool:
		return true
	default:
		return false
	}
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindInt, KindFloat, KindBool, KindString, KindVec2, KindVec3, KindMesh}
}

// ParseKind resolves a display name produced by Kind.String.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}

	return KindInvalid, fmt.Errorf("%w: unknown kind %q", ErrTypeMismatch, name)
}

// MeshHandle identifies a mesh owned by an external geometry kernel.
// The core never dereferences it; it only moves handles through trees.
type MeshHandle uint64

// Value is a single leaf: a tagged variant holding exactly one element of one Kind.
//
// Value is comparable with == (all payload fields are comparable), which makes
// exact structural equality of trees cheap.
type Value struct {
	kind Kind
	i    int32      // KindInt, KindBool (0/1)
	f    [3]float32 // KindFloat (f[0]), KindVec2 (f[0:2]), KindVec3
	s    string     // KindString
	h    MeshHandle // KindMesh
}

// Tree is an immutable nested sequence of Values.
//
// A Tree is either a leaf holding one Value, or a branch holding an ordered
// sequence of child Trees which all share the branch's Kind. The zero Tree is an
// empty branch of KindInvalid.
//
// depth caches 1+max(child depth) for branches so the broadcaster never rescans.
type Tree struct {
	kind     Kind
	leaf     bool
	value    Value
	depth    int
	children []Tree
}
