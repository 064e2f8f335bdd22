// SPDX-License-Identifier: MIT
package tree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvflow/tree"
)

func benchTree(groups, width int) tree.Tree {
	rng := rand.New(rand.NewSource(1))
	cs := make([]tree.Tree, groups)
	for i := range cs {
		vs := make([]int32, width)
		for j := range vs {
			vs[j] = rng.Int31()
		}
		cs[i] = tree.Ints(vs...)
	}

	return tree.Branch(tree.KindInt, cs...)
}

func BenchmarkGraftFlatten(b *testing.B) {
	t := benchTree(100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := t.Graft().Flatten(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFrom(b *testing.B) {
	lit := make([][]float64, 100)
	for i := range lit {
		lit[i] = make([]float64, 100)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.From(tree.KindFloat, lit); err != nil {
			b.Fatal(err)
		}
	}
}
