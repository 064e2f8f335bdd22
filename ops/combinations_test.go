package ops_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflow/ops"
	"github.com/katalvlaran/lvflow/tree"
)

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	c := 1
	for i := 0; i < k; i++ {
		c = c * (n - i) / (i + 1)
	}

	return c
}

func TestCombinations_TenChooseThree(t *testing.T) {
	items := make([]string, 10)
	for i := range items {
		items[i] = string(rune('a' + i))
	}
	got, err := ops.Combinations(tree.Strs(items...), ileaf(3))
	require.NoError(t, err)
	require.Equal(t, 120, got.Len())

	// Standard enumeration: i < j < k, ascending lexicographically.
	pos := 0
	for i := 0; i < 10; i++ {
		for j := i + 1; j < 10; j++ {
			for k := j + 1; k < 10; k++ {
				want := tree.Strs(items[i], items[j], items[k])
				requireTree(t, want, got.At(pos))
				pos++
			}
		}
	}
}

func TestCombinations_Counts(t *testing.T) {
	for n := 0; n <= 8; n++ {
		vals := make([]int32, n)
		for i := range vals {
			vals[i] = int32(i)
		}
		for k := 0; k <= n+1; k++ {
			got, err := ops.Combinations(tree.Ints(vals...), ileaf(int32(k)))
			require.NoError(t, err)
			require.Equal(t, binomial(n, k), got.Len(), "C(%d,%d)", n, k)

			// Every combination is ascending and the sequence is strictly increasing.
			var prev []int32
			for c := 0; c < got.Len(); c++ {
				cur := make([]int32, 0, k)
				for _, v := range got.At(c).Values() {
					cur = append(cur, v.Int())
				}
				for i := 1; i < len(cur); i++ {
					require.Less(t, cur[i-1], cur[i])
				}
				if prev != nil {
					require.True(t, lexLess(prev, cur), "%v !< %v", prev, cur)
				}
				prev = cur
			}
		}
	}
}

func lexLess(a, b []int32) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

func TestCombinations_Edges(t *testing.T) {
	got, err := ops.Combinations(tree.Ints(1, 2), ileaf(0))
	require.NoError(t, err)
	requireTree(t, tree.Branch(tree.KindInt, tree.Empty(tree.KindInt)), got)

	got, err = ops.Combinations(tree.Ints(1, 2), ileaf(3))
	require.NoError(t, err)
	requireTree(t, tree.Empty(tree.KindInt), got)

	_, err = ops.Combinations(tree.Ints(1, 2), ileaf(-1))
	assert.ErrorIs(t, err, ops.ErrInvalidArgument)
}

func TestSort(t *testing.T) {
	got, err := ops.Sort(tree.Strs("c", "a", "b"), tree.Floats(3, 1, 2))
	require.NoError(t, err)
	requireTree(t, tree.Strs("a", "b", "c"), got)

	got, err = ops.Sort(tree.Ints(1, 2, 3, 4), tree.Strs("b", "a", "b", "a"))
	require.NoError(t, err)
	requireTree(t, tree.Ints(2, 4, 1, 3), got)

	_, err = ops.Sort(tree.Ints(1, 2), tree.Ints(1))
	assert.ErrorIs(t, err, tree.ErrShapeMismatch)

	// Each group is sorted by its own keys.
	got, err = ops.Sort(
		tree.MustFrom(tree.KindInt, [][]int{{10, 20, 30}, {40, 50}}),
		tree.MustFrom(tree.KindInt, [][]int{{3, 1, 2}, {0, -1}}),
	)
	require.NoError(t, err)
	requireTree(t, tree.MustFrom(tree.KindInt, [][]int{{20, 30, 10}, {50, 40}}), got)
}

func TestSort_StablePermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(30)
		values := make([]int32, n)
		keys := make([]int32, n)
		for i := range values {
			values[i] = int32(i) // value doubles as the original position
			keys[i] = rng.Int31n(5)
		}
		got, err := ops.Sort(tree.Ints(values...), tree.Ints(keys...))
		require.NoError(t, err)
		require.Equal(t, n, got.Len())

		seen := make(map[int32]bool, n)
		vs := got.Values()
		for i, v := range vs {
			seen[v.Int()] = true
			if i == 0 {
				continue
			}
			prev, cur := vs[i-1].Int(), v.Int()
			require.LessOrEqual(t, keys[prev], keys[cur])
			if keys[prev] == keys[cur] {
				require.Less(t, prev, cur, "equal keys must keep their order")
			}
		}
		require.Len(t, seen, n)
	}
}
