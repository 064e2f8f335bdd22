package ops

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvflow/registry"
	"github.com/katalvlaran/lvflow/tree"
)

// sortKeyKinds lists the key kinds sort accepts.
var sortKeyKinds = []tree.Kind{tree.KindInt, tree.KindFloat, tree.KindString}

// Sort returns values reordered by ascending keys. The sort is stable: values
// with equal keys keep their relative order. Nested input sorts each group
// with its own keys.
func Sort(values, keys tree.Tree) (tree.Tree, error) {
	return call1("sort", values, keys)
}

func sortOverloads() []registry.Overload {
	var os []registry.Overload
	for _, vk := range tree.Kinds() {
		for _, kk := range sortKeyKinds {
			os = append(os, sortOverload(vk, kk))
		}
	}

	return os
}

func sortOverload(vk, kk tree.Kind) registry.Overload {
	return registry.Overload{
		Name: "sort",
		Doc:  "Sorts a list based on given keys.",
		Inputs: []registry.Param{
			param("list", vk, 1, "List to be sorted"),
			param("keys", kk, 1, "Keys to be used for sorting"),
		},
		Outputs: []registry.Output{output("sorted", vk, "Sorted values")},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			values, keys := args[0], args[1]
			if values.Len() != keys.Len() {
				return nil, fmt.Errorf("%w: sorting %d values by %d keys",
					tree.ErrShapeMismatch, values.Len(), keys.Len())
			}
			order := make([]int, values.Len())
			for i := range order {
				order[i] = i
			}
			sort.SliceStable(order, func(a, b int) bool {
				return keys.At(order[a]).Value().Less(keys.At(order[b]).Value())
			})
			sorted := make([]tree.Tree, len(order))
			for i, j := range order {
				sorted[i] = values.At(j)
			}

			return []tree.Tree{tree.Branch(vk, sorted...)}, nil
		},
	}
}
