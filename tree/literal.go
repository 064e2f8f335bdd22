// SPDX-License-Identifier: MIT
// File: literal.go
// Role: conversion between native Go literals (scalars, nested slices) and Trees.
//
// Shape is inferred from the literal structure: every slice or array level becomes
// a branch level, every scalar a leaf. The target Kind is fixed by the caller;
// ints widen into KindFloat, every other disagreement is ErrTypeMismatch.
// Numeric sequences of length 2 (3) are single vectors when the kind is
// KindVec2 (KindVec3).

package tree

import (
	"fmt"
	"math"
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

var meshHandleType = reflect.TypeOf(MeshHandle(0))

// From converts a Go literal into a Tree of the given kind.
//
// Accepted literals: nil (empty branch), Tree, Value, cty.Value (see FromCty),
// Go scalars (ints, uints, floats, bool, string, MeshHandle), and slices/arrays
// nesting any of these.
func From(kind Kind, literal any) (Tree, error) {
	if !kind.Valid() {
		return Tree{}, fmt.Errorf("%w: invalid target kind %s", ErrTypeMismatch, kind)
	}

	return fromLiteral(kind, literal)
}

// MustFrom is From for static fixtures; it panics on conversion errors.
func MustFrom(kind Kind, literal any) Tree {
	t, err := From(kind, literal)
	if err != nil {
		panic(err)
	}

	return t
}

// Infer converts a literal whose kind is taken from its first scalar.
// Go arrays [2]T/[3]T of floats infer vectors; slices always infer lists.
func Infer(literal any) (Tree, error) {
	kind, ok := inferKind(reflect.ValueOf(literal))
	if !ok {
		return Tree{}, fmt.Errorf("%w: cannot infer kind of %T literal", ErrTypeMismatch, literal)
	}

	return From(kind, literal)
}

func fromLiteral(kind Kind, literal any) (Tree, error) {
	switch lit := literal.(type) {
	case nil:
		return Empty(kind), nil
	case cty.Value:
		return FromCty(kind, lit)
	case Tree:
		if lit.kind != kind && lit.hasLeaves() {
			if kind != KindFloat || lit.kind != KindInt {
				return Tree{}, fmt.Errorf("%w: %s tree assigned to %s", ErrTypeMismatch, lit.kind, kind)
			}

			return widen(lit), nil
		}
		if lit.kind != kind {
			return retag(lit, kind), nil
		}

		return lit, nil
	case Value:
		v, err := coerce(kind, lit)
		if err != nil {
			return Tree{}, err
		}

		return Leaf(v), nil
	}

	rv := reflect.ValueOf(literal)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if vec, ok := vectorOf(kind, rv); ok {
			return Leaf(vec), nil
		}
		cs := make([]Tree, rv.Len())
		for i := range cs {
			c, err := fromLiteral(kind, rv.Index(i).Interface())
			if err != nil {
				return Tree{}, fmt.Errorf("[%d]: %w", i, err)
			}
			cs[i] = c
		}

		return branchOf(kind, cs), nil
	default:
		v, err := scalarOf(kind, rv)
		if err != nil {
			return Tree{}, err
		}

		return Leaf(v), nil
	}
}

// coerce checks a ready-made Value against kind, widening ints into floats.
func coerce(kind Kind, v Value) (Value, error) {
	switch {
	case v.kind == kind:
		return v, nil
	case kind == KindFloat && v.kind == KindInt:
		return Float(float32(v.i)), nil
	default:
		return Value{}, fmt.Errorf("%w: %s value assigned to %s", ErrTypeMismatch, v.kind, kind)
	}
}

func widen(t Tree) Tree {
	if t.leaf {
		return Leaf(Float(float32(t.value.i)))
	}
	cs := make([]Tree, len(t.children))
	for i, c := range t.children {
		cs[i] = widen(c)
	}

	return branchOf(KindFloat, cs)
}

// scalarOf converts a non-sequence reflect value into a Value of kind.
func scalarOf(kind Kind, rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Value{}, fmt.Errorf("%w: nil scalar", ErrTypeMismatch)
	}
	if rv.Type() == meshHandleType {
		if kind != KindMesh {
			return Value{}, fmt.Errorf("%w: mesh handle assigned to %s", ErrTypeMismatch, kind)
		}

		return Mesh(MeshHandle(rv.Uint())), nil
	}

	switch kind {
	case KindInt:
		n, ok := integerOf(rv)
		if !ok {
			return Value{}, fmt.Errorf("%w: %s assigned to %s", ErrTypeMismatch, rv.Type(), kind)
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return Value{}, fmt.Errorf("%w: %d overflows int32", ErrTypeMismatch, n)
		}

		return Int(int32(n)), nil
	case KindFloat:
		f, ok := numberOf(rv)
		if !ok {
			return Value{}, fmt.Errorf("%w: %s assigned to %s", ErrTypeMismatch, rv.Type(), kind)
		}

		return Float(float32(f)), nil
	case KindBool:
		if rv.Kind() != reflect.Bool {
			return Value{}, fmt.Errorf("%w: %s assigned to %s", ErrTypeMismatch, rv.Type(), kind)
		}

		return Bool(rv.Bool()), nil
	case KindString:
		if rv.Kind() != reflect.String {
			return Value{}, fmt.Errorf("%w: %s assigned to %s", ErrTypeMismatch, rv.Type(), kind)
		}

		return Str(rv.String()), nil
	default:
		return Value{}, fmt.Errorf("%w: %s assigned to %s", ErrTypeMismatch, rv.Type(), kind)
	}
}

// vectorOf recognizes a numeric sequence of the vector length of kind.
// ok=false means the sequence is not a vector and should become a branch.
func vectorOf(kind Kind, rv reflect.Value) (Value, bool) {
	n := 0
	switch kind {
	case KindVec2:
		n = 2
	case KindVec3:
		n = 3
	default:
		return Value{}, false
	}
	if rv.Len() != n {
		return Value{}, false
	}
	var comps [3]float32
	for i := 0; i < n; i++ {
		el := rv.Index(i)
		if el.Kind() == reflect.Interface {
			el = el.Elem()
		}
		f, ok := numberOf(el)
		if !ok {
			return Value{}, false
		}
		comps[i] = float32(f)
	}
	if kind == KindVec2 {
		return Vec2(comps[0], comps[1]), true
	}

	return Vec3(comps[0], comps[1], comps[2]), true
}

func integerOf(rv reflect.Value) (int64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}

		return int64(u), true
	default:
		return 0, false
	}
}

func numberOf(rv reflect.Value) (float64, bool) {
	if !rv.IsValid() || rv.Type() == meshHandleType {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		n, ok := integerOf(rv)

		return float64(n), ok
	}
}

func inferKind(rv reflect.Value) (Kind, bool) {
	if !rv.IsValid() {
		return KindInvalid, false
	}
	switch lit := rv.Interface().(type) {
	case Tree:
		return lit.kind, lit.kind.Valid()
	case Value:
		return lit.kind, lit.kind.Valid()
	case MeshHandle:
		return KindMesh, true
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		return inferKind(rv.Elem())
	case reflect.Bool:
		return KindBool, true
	case reflect.String:
		return KindString, true
	case reflect.Float32, reflect.Float64:
		return KindFloat, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt, true
	case reflect.Array:
		if k := rv.Type().Elem().Kind(); k == reflect.Float32 || k == reflect.Float64 {
			switch rv.Len() {
			case 2:
				return KindVec2, true
			case 3:
				return KindVec3, true
			}
		}
		fallthrough
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			if k, ok := inferKind(rv.Index(i)); ok {
				return k, true
			}
		}
	}

	return KindInvalid, false
}

// Interface converts t back into native Go values: a leaf becomes its payload
// (see Value.Interface), a branch becomes []any of its converted children.
func (t Tree) Interface() any {
	if t.leaf {
		return t.value.Interface()
	}
	out := make([]any, len(t.children))
	for i, c := range t.children {
		out[i] = c.Interface()
	}

	return out
}
