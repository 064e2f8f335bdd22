package ops

import (
	"fmt"

	"github.com/katalvlaran/lvflow/registry"
	"github.com/katalvlaran/lvflow/tree"
)

// Combinations returns every k-element combination of the items of a flat
// list, each as a list, in lexicographic order of the chosen indices.
// k > len(items) yields an empty list; k == 0 yields one empty combination.
func Combinations(items, k tree.Tree) (tree.Tree, error) {
	return call1("combinations", items, k)
}

func combinationOverloads() []registry.Overload {
	os := make([]registry.Overload, 0, len(tree.Kinds()))
	for _, k := range tree.Kinds() {
		os = append(os, combinationsOverload(k))
	}

	return os
}

func combinationsOverload(k tree.Kind) registry.Overload {
	return registry.Overload{
		Name: "combinations",
		Doc:  "Gets all combinations of the given size from the items of the list.",
		Inputs: []registry.Param{
			param("items", k, 1, "Items to choose from"),
			param("size", tree.KindInt, 0, "Number of items in each combination"),
		},
		Outputs: []registry.Output{output("combinations", k, "One list per combination")},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			items := args[0]
			size := int(args[1].Value().Int())
			if size < 0 {
				return nil, fmt.Errorf("%w: combination size %d", ErrInvalidArgument, size)
			}

			var combos []tree.Tree
			forEachCombination(items.Len(), size, func(idx []int) {
				picked := make([]tree.Tree, len(idx))
				for i, j := range idx {
					picked[i] = items.At(j)
				}
				combos = append(combos, tree.Branch(k, picked...))
			})

			return []tree.Tree{tree.Branch(k, combos...)}, nil
		},
	}
}

// forEachCombination calls fn with every ascending k-subset of [0, n) in
// lexicographic order. idx is reused between calls.
func forEachCombination(n, k int, fn func(idx []int)) {
	if k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		// Find the rightmost index that can still advance.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
