package broadcast

import (
	"github.com/katalvlaran/lvflow/tree"
)

// LeafFunc computes one output leaf from one leaf per input.
type LeafFunc func(vs []tree.Value) (tree.Value, error)

// Elementwise returns the Spec and Kernel of an n-ary leaf function with one
// output of kind out. Every input is declared at depth 0.
func Elementwise(arity int, out tree.Kind, f LeafFunc) (Spec, Kernel) {
	spec := Spec{Depths: make([]int, arity), Outputs: []tree.Kind{out}}
	k := func(args []tree.Tree) ([]tree.Tree, error) {
		vs := make([]tree.Value, len(args))
		for i, a := range args {
			vs[i] = a.Value()
		}
		v, err := f(vs)
		if err != nil {
			return nil, err
		}

		return []tree.Tree{tree.Leaf(v)}, nil
	}

	return spec, k
}

// Unary maps f over every leaf of t.
func Unary(t tree.Tree, out tree.Kind, f func(tree.Value) (tree.Value, error)) (tree.Tree, error) {
	spec, k := Elementwise(1, out, func(vs []tree.Value) (tree.Value, error) { return f(vs[0]) })

	return first(Apply(spec, k, t))
}

// Binary combines the leaves of a and b pairwise, broadcasting shapes.
func Binary(a, b tree.Tree, out tree.Kind, f func(x, y tree.Value) (tree.Value, error)) (tree.Tree, error) {
	spec, k := Elementwise(2, out, func(vs []tree.Value) (tree.Value, error) { return f(vs[0], vs[1]) })

	return first(Apply(spec, k, a, b))
}

func first(ts []tree.Tree, err error) (tree.Tree, error) {
	if err != nil {
		return tree.Tree{}, err
	}

	return ts[0], nil
}
