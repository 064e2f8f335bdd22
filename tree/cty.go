// SPDX-License-Identifier: MIT
// File: cty.go
// Role: interop with github.com/zclconf/go-cty values, so trees can be fed from
// (and rendered to) HCL-style dynamic values without going through Go literals.
//
// Mapping:
//   - list, set and tuple values are branches (sets in cty's canonical order);
//   - numbers are int32 or float32 leaves depending on the target Kind;
//   - numeric tuples/lists of length 2 or 3 are vectors for KindVec2/KindVec3;
//   - bools and strings map directly; mesh handles have no cty form.
//
// Null and unknown values are ErrTypeMismatch: a tree is always fully known.

package tree

import (
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"
)

// FromCty converts a cty.Value into a Tree of the given kind.
func FromCty(kind Kind, v cty.Value) (Tree, error) {
	if !kind.Valid() || kind == KindMesh {
		return Tree{}, fmt.Errorf("%w: no cty mapping for %s", ErrTypeMismatch, kind)
	}

	return fromCty(kind, v)
}

func fromCty(kind Kind, v cty.Value) (Tree, error) {
	if v.IsMarked() {
		v, _ = v.Unmark()
	}
	if v.IsNull() || !v.IsKnown() {
		return Tree{}, fmt.Errorf("%w: null or unknown cty value", ErrTypeMismatch)
	}

	ty := v.Type()
	if ty.IsListType() || ty.IsSetType() || ty.IsTupleType() {
		elems := v.AsValueSlice()
		if vec, ok := ctyVector(kind, elems); ok {
			return Leaf(vec), nil
		}
		cs := make([]Tree, len(elems))
		for i, el := range elems {
			c, err := fromCty(kind, el)
			if err != nil {
				return Tree{}, fmt.Errorf("[%d]: %w", i, err)
			}
			cs[i] = c
		}

		return branchOf(kind, cs), nil
	}

	val, err := ctyScalar(kind, v)
	if err != nil {
		return Tree{}, err
	}

	return Leaf(val), nil
}

func ctyScalar(kind Kind, v cty.Value) (Value, error) {
	ty := v.Type()
	switch {
	case ty.Equals(cty.Number) && kind == KindInt:
		bf := v.AsBigFloat()
		if !bf.IsInt() {
			return Value{}, fmt.Errorf("%w: %s is not an integer", ErrTypeMismatch, bf.String())
		}
		n, _ := bf.Int64()
		if n < math.MinInt32 || n > math.MaxInt32 {
			return Value{}, fmt.Errorf("%w: %s overflows int32", ErrTypeMismatch, bf.String())
		}

		return Int(int32(n)), nil
	case ty.Equals(cty.Number) && kind == KindFloat:
		f, _ := v.AsBigFloat().Float64()

		return Float(float32(f)), nil
	case ty.Equals(cty.Bool) && kind == KindBool:
		return Bool(v.True()), nil
	case ty.Equals(cty.String) && kind == KindString:
		return Str(v.AsString()), nil
	default:
		return Value{}, fmt.Errorf("%w: cty %s assigned to %s", ErrTypeMismatch, ty.FriendlyName(), kind)
	}
}

func ctyVector(kind Kind, elems []cty.Value) (Value, bool) {
	n := 0
	switch kind {
	case KindVec2:
		n = 2
	case KindVec3:
		n = 3
	default:
		return Value{}, false
	}
	if len(elems) != n {
		return Value{}, false
	}
	var comps [3]float32
	for i, el := range elems {
		if el.IsNull() || !el.IsKnown() || !el.Type().Equals(cty.Number) {
			return Value{}, false
		}
		f, _ := el.AsBigFloat().Float64()
		comps[i] = float32(f)
	}
	if kind == KindVec2 {
		return Vec2(comps[0], comps[1]), true
	}

	return Vec3(comps[0], comps[1], comps[2]), true
}

// ToCty converts t into a cty.Value. Branches become tuples (trees may be
// irregular, which cty lists cannot express); vectors become numeric tuples.
func ToCty(t Tree) (cty.Value, error) {
	if t.leaf {
		return valueToCty(t.value)
	}
	if len(t.children) == 0 {
		return cty.EmptyTupleVal, nil
	}
	elems := make([]cty.Value, len(t.children))
	for i, c := range t.children {
		ev, err := ToCty(c)
		if err != nil {
			return cty.NilVal, err
		}
		elems[i] = ev
	}

	return cty.TupleVal(elems), nil
}

func valueToCty(v Value) (cty.Value, error) {
	switch v.kind {
	case KindInt:
		return cty.NumberIntVal(int64(v.i)), nil
	case KindFloat:
		return cty.NumberFloatVal(float64(v.f[0])), nil
	case KindBool:
		return cty.BoolVal(v.i != 0), nil
	case KindString:
		return cty.StringVal(v.s), nil
	case KindVec2:
		return cty.TupleVal([]cty.Value{
			cty.NumberFloatVal(float64(v.f[0])),
			cty.NumberFloatVal(float64(v.f[1])),
		}), nil
	case KindVec3:
		return cty.TupleVal([]cty.Value{
			cty.NumberFloatVal(float64(v.f[0])),
			cty.NumberFloatVal(float64(v.f[1])),
			cty.NumberFloatVal(float64(v.f[2])),
		}), nil
	default:
		return cty.NilVal, fmt.Errorf("%w: no cty mapping for %s", ErrTypeMismatch, v.kind)
	}
}
