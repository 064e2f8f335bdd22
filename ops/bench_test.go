package ops_test

import (
	"testing"

	"github.com/katalvlaran/lvflow/ops"
	"github.com/katalvlaran/lvflow/tree"
)

func BenchmarkCombinations_20Choose4(b *testing.B) {
	vals := make([]int32, 20)
	for i := range vals {
		vals[i] = int32(i)
	}
	items := tree.Ints(vals...)
	k := tree.Leaf(tree.Int(4))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ops.Combinations(items, k); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSort_1k(b *testing.B) {
	vals := make([]int32, 1000)
	keys := make([]float32, 1000)
	for i := range vals {
		vals[i] = int32(i)
		keys[i] = float32((i * 7919) % 1000)
	}
	v, k := tree.Ints(vals...), tree.Floats(keys...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ops.Sort(v, k); err != nil {
			b.Fatal(err)
		}
	}
}
