package ops

import (
	"github.com/katalvlaran/lvflow/registry"
	"github.com/katalvlaran/lvflow/tree"
)

// Graft wraps every leaf of t in a singleton branch.
func Graft(t tree.Tree) (tree.Tree, error) {
	return call1("graft", t)
}

// Flatten removes the innermost nesting level of t. Flat lists are returned
// unchanged and single-element lists collapse to their element.
func Flatten(t tree.Tree) (tree.Tree, error) {
	return call1("flatten", t)
}

// FlattenAll collects every leaf of t into one flat list.
func FlattenAll(t tree.Tree) (tree.Tree, error) {
	return call1("flattenAll", t)
}

// TreeSum sums every leaf of t regardless of its shape.
func TreeSum(t tree.Tree) (tree.Tree, error) {
	return call1("treeSum", t)
}

func treeOverloads() []registry.Overload {
	var os []registry.Overload
	for _, k := range tree.Kinds() {
		os = append(os,
			wholeTreeOverload("graft", "Increases the depth of the tree by wrapping every leaf in a list.", k,
				func(t tree.Tree) (tree.Tree, error) { return t.Graft(), nil }),
			wholeTreeOverload("flatten", "Decreases the depth of the tree by splicing its innermost lists into their parents.", k,
				tree.Tree.Flatten),
			wholeTreeOverload("flattenAll", "Collects every leaf of the tree into a flat list.", k,
				func(t tree.Tree) (tree.Tree, error) { return t.FlattenAll(), nil }),
		)
	}
	for _, k := range []tree.Kind{tree.KindInt, tree.KindFloat, tree.KindVec2, tree.KindVec3} {
		os = append(os, treeSumOverload(k))
	}

	return os
}

func wholeTreeOverload(name, doc string, k tree.Kind, f func(tree.Tree) (tree.Tree, error)) registry.Overload {
	return registry.Overload{
		Name:    name,
		Doc:     doc,
		Inputs:  []registry.Param{param("tree", k, whole, "Input tree")},
		Outputs: []registry.Output{output("tree", k, "Output tree")},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			out, err := f(args[0])
			if err != nil {
				return nil, err
			}

			return []tree.Tree{out}, nil
		},
	}
}

func treeSumOverload(k tree.Kind) registry.Overload {
	return registry.Overload{
		Name:    "treeSum",
		Doc:     "Gets the sum of all elements in the tree.",
		Inputs:  []registry.Param{param("tree", k, whole, "Tree to be summed")},
		Outputs: []registry.Output{output("sum", k, "Sum of all elements of the tree")},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			return leaf(sum(k, args[0].Leaves()))
		},
	}
}
