package dataflow_test

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/lvflow/dataflow"
	"github.com/katalvlaran/lvflow/ops"
	"github.com/katalvlaran/lvflow/registry"
	"github.com/katalvlaran/lvflow/tree"
)

func ileaf(v int32) tree.Tree { return tree.Leaf(tree.Int(v)) }

// readTree reads n and fails unless it equals want.
func readTree(t *testing.T, g *dataflow.Graph, n *dataflow.Node, want tree.Tree) {
	t.Helper()
	got, err := g.Read(n)
	require.NoError(t, err)
	require.True(t, got.Equal(want), "got %s want %s", got, want)
}

func TestSource_Initial(t *testing.T) {
	g := dataflow.NewGraph()

	empty := g.MustSource(tree.KindInt)
	readTree(t, g, empty, tree.Empty(tree.KindInt))

	one := g.MustSource(tree.KindFloat, 2)
	readTree(t, g, one, tree.Leaf(tree.Float(2)))

	many := g.MustSource(tree.KindString, "a", "b")
	readTree(t, g, many, tree.Strs("a", "b"))

	_, err := g.Source(tree.KindBool, "yes")
	assert.ErrorIs(t, err, tree.ErrTypeMismatch)

	assert.True(t, one.IsSource())
	assert.Equal(t, "", one.Op())
	assert.Equal(t, dataflow.Clean, one.State())
	assert.Nil(t, one.Inputs())
}

func TestAssign_ThenRead(t *testing.T) {
	g := dataflow.NewGraph()
	src := g.MustSource(tree.KindInt)

	literals := []any{
		5,
		[]int{1, 2, 3},
		[][]int{{1, 2}, {3}, {}},
		[]any{1, []any{2, []int{3}}},
		nil,
	}
	for _, lit := range literals {
		require.NoError(t, g.Assign(src, lit))
		readTree(t, g, src, tree.MustFrom(tree.KindInt, lit))
	}

	assert.ErrorIs(t, g.Assign(src, "x"), tree.ErrTypeMismatch)
	assert.ErrorIs(t, g.Assign(src, []string{"x"}), tree.ErrTypeMismatch)
	// A failed assignment keeps the previous value.
	readTree(t, g, src, tree.Empty(tree.KindInt))
}

func TestAssign_WidensIntoFloat(t *testing.T) {
	g := dataflow.NewGraph()
	src := g.MustSource(tree.KindFloat)
	require.NoError(t, g.Assign(src, tree.Ints(1, 2)))
	readTree(t, g, src, tree.Floats(1, 2))
}

func TestAssign_Cty(t *testing.T) {
	g := dataflow.NewGraph()
	src := g.MustSource(tree.KindInt, cty.TupleVal([]cty.Value{cty.NumberIntVal(1)}))
	readTree(t, g, src, tree.Ints(1))

	require.NoError(t, g.Assign(src, cty.ListVal([]cty.Value{cty.NumberIntVal(2), cty.NumberIntVal(3)})))
	readTree(t, g, src, tree.Ints(2, 3))

	assert.ErrorIs(t, g.Assign(src, cty.StringVal("x")), tree.ErrTypeMismatch)
}

func TestAssign_FunctionNode(t *testing.T) {
	g := dataflow.NewGraph()
	a := g.MustSource(tree.KindInt, 1)
	sum, err := g.Call("add", a, a)
	require.NoError(t, err)

	assert.ErrorIs(t, g.Assign(sum, 3), dataflow.ErrInvalidTarget)
}

func TestSeries_ListSum(t *testing.T) {
	g := dataflow.NewGraph()
	start := g.MustSource(tree.KindInt, 10)
	step := g.MustSource(tree.KindInt, 2)
	count := g.MustSource(tree.KindInt, 23)

	series, err := g.Call("series", start, step, count)
	require.NoError(t, err)
	total, err := g.Call("listSum", series)
	require.NoError(t, err)

	want := make([]int32, 0, 23)
	var sum int32
	for v := int32(10); v <= 54; v += 2 {
		want = append(want, v)
		sum += v
	}
	readTree(t, g, series, tree.Ints(want...))
	readTree(t, g, total, ileaf(sum))
	assert.Equal(t, int32(736), sum)
}

func TestMul_Broadcast(t *testing.T) {
	g := dataflow.NewGraph()
	a := g.MustSource(tree.KindInt, [][]int{{2}, {3}})
	b := g.MustSource(tree.KindInt, []int{4, 5})
	m, err := g.Call("mul", a, b)
	require.NoError(t, err)

	readTree(t, g, m, tree.MustFrom(tree.KindInt, [][]int{{8, 10}, {12, 15}}))
}

func TestAdd_ScalarToList(t *testing.T) {
	g := dataflow.NewGraph()
	c := g.MustSource(tree.KindInt, 0)
	xs := g.MustSource(tree.KindInt, 1, 2, 3)
	sum, err := g.Call("add", c, xs)
	require.NoError(t, err)

	for _, v := range []int32{-4, 0, 9} {
		require.NoError(t, g.Assign(c, v))
		readTree(t, g, sum, tree.Ints(v+1, v+2, v+3))
	}
}

func TestFlatten_Graph(t *testing.T) {
	g := dataflow.NewGraph()
	src := g.MustSource(tree.KindInt, 1, 2, 3)
	flat, err := g.Call("flatten", src)
	require.NoError(t, err)
	readTree(t, g, flat, tree.Ints(1, 2, 3))

	require.NoError(t, g.Assign(src, [][]int{{1}, {}, {2, 3}}))
	readTree(t, g, flat, tree.Ints(1, 2, 3))
}

func TestCombinations_Graph(t *testing.T) {
	g := dataflow.NewGraph()
	items := g.MustSource(tree.KindString, "a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	k := g.MustSource(tree.KindInt, 3)
	combos, err := g.Call("combinations", items, k)
	require.NoError(t, err)

	got, err := g.Read(combos)
	require.NoError(t, err)
	require.Equal(t, 120, got.Len())
	assert.True(t, got.At(0).Equal(tree.Strs("a", "b", "c")))
	assert.True(t, got.At(119).Equal(tree.Strs("h", "i", "j")))
}

func TestMemoization(t *testing.T) {
	var evaluated []string
	g := dataflow.NewGraph(dataflow.WithOnEvaluate(func(n *dataflow.Node) {
		evaluated = append(evaluated, n.Op())
	}))
	a := g.MustSource(tree.KindInt, 1)
	b := g.MustSource(tree.KindInt, 2)
	s, err := g.Call("add", a, b)
	require.NoError(t, err)
	p, err := g.Call("mul", s, s)
	require.NoError(t, err)

	assert.Equal(t, dataflow.Dirty, s.State())
	readTree(t, g, p, ileaf(9))
	assert.Equal(t, []string{"add", "mul"}, evaluated)
	assert.Equal(t, dataflow.Clean, s.State())

	// Clean reads run nothing.
	readTree(t, g, p, ileaf(9))
	readTree(t, g, s, ileaf(3))
	assert.Len(t, evaluated, 2)

	// Assign dirties everything downstream, once.
	require.NoError(t, g.Assign(a, 4))
	assert.Equal(t, dataflow.Dirty, s.State())
	assert.Equal(t, dataflow.Dirty, p.State())
	require.NoError(t, g.Assign(b, 5))

	readTree(t, g, s, ileaf(9))
	readTree(t, g, p, ileaf(81))
	assert.Equal(t, []string{"add", "mul", "add", "mul"}, evaluated)

	st := g.Stats()
	assert.Equal(t, 4, st.Nodes)
	assert.Equal(t, uint64(4), st.Evaluations)
	assert.Equal(t, uint64(2), st.Invalidations, "second assign finds everything already dirty")
	assert.Equal(t, uint64(5), st.CacheHits)
	assert.Zero(t, st.Failures)
}

func TestInvalidation_OnlyDownstream(t *testing.T) {
	g := dataflow.NewGraph()
	a := g.MustSource(tree.KindInt, 1)
	b := g.MustSource(tree.KindInt, 2)
	left, err := g.Call("add", a, a)
	require.NoError(t, err)
	right, err := g.Call("add", b, b)
	require.NoError(t, err)

	readTree(t, g, left, ileaf(2))
	readTree(t, g, right, ileaf(4))

	require.NoError(t, g.Assign(a, 10))
	assert.Equal(t, dataflow.Dirty, left.State())
	assert.Equal(t, dataflow.Clean, right.State())
}

func TestWire_Errors(t *testing.T) {
	g := dataflow.NewGraph()
	i := g.MustSource(tree.KindInt, 1)
	s := g.MustSource(tree.KindString, "x")

	_, err := g.Call("add", i, s)
	assert.ErrorIs(t, err, registry.ErrNoMatchingOverload)

	_, err = g.Call("ad", i, i)
	assert.ErrorIs(t, err, registry.ErrNoMatchingOverload)
	assert.Contains(t, err.Error(), `did you mean "add"?`)

	_, err = g.Call("add", i, nil)
	assert.ErrorIs(t, err, dataflow.ErrForeignNode)

	other := dataflow.NewGraph().MustSource(tree.KindInt, 1)
	_, err = g.Call("add", i, other)
	assert.ErrorIs(t, err, dataflow.ErrForeignNode)
	_, err = g.Read(other)
	assert.ErrorIs(t, err, dataflow.ErrForeignNode)
	assert.ErrorIs(t, g.Assign(other, 2), dataflow.ErrForeignNode)

	// Failed wiring creates no nodes.
	assert.Len(t, g.Nodes(), 2)
}

func TestRead_EvaluationError(t *testing.T) {
	g := dataflow.NewGraph()
	a := g.MustSource(tree.KindInt, 1, 2)
	b := g.MustSource(tree.KindInt, 0)
	q, err := g.Call("div", a, b)
	require.NoError(t, err)
	double, err := g.Call("add", q, q)
	require.NoError(t, err)

	_, err = g.Read(double)
	assert.ErrorIs(t, err, ops.ErrDivisionByZero)
	assert.Equal(t, dataflow.Dirty, q.State())
	assert.Equal(t, dataflow.Dirty, double.State())
	assert.Equal(t, uint64(1), g.Stats().Failures)

	require.NoError(t, g.Assign(b, 2))
	readTree(t, g, double, tree.Ints(0, 2))
}

func TestRead_ShapeMismatch(t *testing.T) {
	g := dataflow.NewGraph()
	a := g.MustSource(tree.KindInt, 1, 2, 3)
	b := g.MustSource(tree.KindInt, 1, 2)
	sum, err := g.Call("add", a, b)
	require.NoError(t, err)

	_, err = g.Read(sum)
	assert.ErrorIs(t, err, tree.ErrShapeMismatch)
}

func TestDispatch_SharedComputation(t *testing.T) {
	calls := 0
	g := dataflow.NewGraph(dataflow.WithOnEvaluate(func(*dataflow.Node) { calls++ }))
	items := g.MustSource(tree.KindInt, 1, 2, 3, 4)
	mask := g.MustSource(tree.KindBool, true, false, false, true)

	outs, err := g.Wire("dispatch", 2, items, mask)
	require.NoError(t, err)
	require.Len(t, outs, 2)
	assert.Equal(t, 0, outs[0].Output())
	assert.Equal(t, 1, outs[1].Output())
	assert.Equal(t, "dispatch", outs[1].Op())
	assert.Equal(t, []*dataflow.Node{items, mask}, outs[1].Inputs())

	readTree(t, g, outs[1], tree.Ints(2, 3))
	readTree(t, g, outs[0], tree.Ints(1, 4))
	assert.Equal(t, 1, calls)

	all, err := g.Wire("dispatch", 0, items, mask)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = g.Call("dispatch", items, mask)
	assert.ErrorIs(t, err, registry.ErrNoMatchingOverload)
}

func TestWithRegistry(t *testing.T) {
	r := registry.New()
	require.NoError(t, ops.Register(r))
	g := dataflow.NewGraph(dataflow.WithRegistry(r), dataflow.WithName("custom"))
	assert.Same(t, r, g.Registry())
	assert.Equal(t, "custom", g.Name())

	empty := dataflow.NewGraph(dataflow.WithRegistry(registry.New()))
	a := empty.MustSource(tree.KindInt, 1)
	_, err := empty.Call("add", a, a)
	assert.ErrorIs(t, err, registry.ErrNoMatchingOverload)
}

func TestBadKernelOutput(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(registry.Overload{
		Name:    "mislabel",
		Inputs:  []registry.Param{{Name: "x", Kind: tree.KindInt, Depth: -1}},
		Outputs: []registry.Output{{Name: "y", Kind: tree.KindInt}},
		Kernel: func([]tree.Tree) ([]tree.Tree, error) {
			return []tree.Tree{tree.Branch(tree.KindInt, tree.Leaf(tree.Str("x")))}, nil
		},
	}))
	g := dataflow.NewGraph(dataflow.WithRegistry(r))
	n, err := g.Call("mislabel", g.MustSource(tree.KindInt, 1))
	require.NoError(t, err)

	_, err = g.Read(n)
	assert.ErrorIs(t, err, dataflow.ErrBadKernelOutput)
	assert.ErrorIs(t, err, tree.ErrTypeMismatch)
	assert.Equal(t, dataflow.Dirty, n.State())
}

func TestNodes_IDsAndOrder(t *testing.T) {
	g := dataflow.NewGraph()
	a := g.MustSource(tree.KindInt, 1)
	outs, err := g.Wire("dispatch", 2, a, g.MustSource(tree.KindBool, true))
	require.NoError(t, err)

	ids := make([]string, 0, 4)
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []string{"n1", "n2", "n3", "n4"}, ids)
	assert.Equal(t, "n3", outs[0].String())
	assert.Equal(t, tree.KindInt, outs[1].Kind())

	o, ok := outs[0].Overload()
	require.True(t, ok)
	assert.Equal(t, "dispatch(items int32, pattern bool) -> (trueItems int32, falseItems int32)", o.Signature())
	_, ok = a.Overload()
	assert.False(t, ok)
}

func TestUpstream(t *testing.T) {
	g := dataflow.NewGraph()
	a := g.MustSource(tree.KindInt, 1)
	b := g.MustSource(tree.KindInt, 2)
	s, err := g.Call("add", a, b)
	require.NoError(t, err)
	p, err := g.Call("mul", s, a)
	require.NoError(t, err)

	order, err := g.Upstream(p)
	require.NoError(t, err)
	assert.Equal(t, []*dataflow.Node{a, b, s, p}, order)

	order, err = g.Upstream(a)
	require.NoError(t, err)
	assert.Equal(t, []*dataflow.Node{a}, order)
}

func TestDescribe(t *testing.T) {
	g := dataflow.NewGraph()
	a := g.MustSource(tree.KindInt, 1)
	b := g.MustSource(tree.KindInt, 2, 3)
	s, err := g.Call("add", a, b)
	require.NoError(t, err)
	p, err := g.Call("mul", s, a)
	require.NoError(t, err)

	got, err := g.Describe(p)
	require.NoError(t, err)
	want := "n4 mul -> int32 [dirty]\n" +
		"├── n3 add -> int32 [dirty]\n" +
		"│   ├── n1 source int32 = 1\n" +
		"│   └── n2 source int32 = [2, 3]\n" +
		"└── n1 source int32 = 1\n"
	assert.Equal(t, want, got)

	readTree(t, g, p, tree.Ints(3, 4))
	got, err = g.Describe(s)
	require.NoError(t, err)
	assert.Equal(t, "n3 add -> int32 [clean]\n├── n1 source int32 = 1\n└── n2 source int32 = [2, 3]\n", got)
}

// diamonds wires levels nodes, each adding the previous node to itself.
func diamonds(t *testing.T, g *dataflow.Graph, levels int) *dataflow.Node {
	t.Helper()
	last := g.MustSource(tree.KindInt, 1)
	for i := 0; i < levels; i++ {
		n, err := g.Call("add", last, last)
		require.NoError(t, err)
		last = n
	}

	return last
}

func TestDescribe_SharedInputs(t *testing.T) {
	g := dataflow.NewGraph()
	top := diamonds(t, g, 3)

	got, err := g.Describe(top)
	require.NoError(t, err)
	want := "n4 add -> int32 [dirty]\n" +
		"├── n3 add -> int32 [dirty]\n" +
		"│   ├── n2 add -> int32 [dirty]\n" +
		"│   │   ├── n1 source int32 = 1\n" +
		"│   │   └── n1 source int32 = 1\n" +
		"│   └── n2 add -> int32 [dirty] (see above)\n" +
		"└── n3 add -> int32 [dirty] (see above)\n"
	assert.Equal(t, want, got)

	// Output grows linearly with the number of shared levels.
	deep := dataflow.NewGraph()
	got, err = deep.Describe(diamonds(t, deep, 30))
	require.NoError(t, err)
	assert.Equal(t, 2*30+1, strings.Count(got, "\n"))
}

func TestDescribe_MultiOutput(t *testing.T) {
	g := dataflow.NewGraph()
	outs, err := g.Wire("dispatch", 2, g.MustSource(tree.KindInt, 1), g.MustSource(tree.KindBool, true))
	require.NoError(t, err)

	got, err := g.Describe(outs[1])
	require.NoError(t, err)
	assert.Equal(t, "n4 dispatch.falseItems -> int32 [dirty]\n├── n1 source int32 = 1\n└── n2 source bool = true\n", got)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Trace,
	})
	g := dataflow.NewGraph(dataflow.WithLogger(logger), dataflow.WithName("demo"))
	a := g.MustSource(tree.KindInt, 1)
	s, err := g.Call("add", a, a)
	require.NoError(t, err)
	require.NoError(t, g.Assign(a, 2))
	readTree(t, g, s, ileaf(4))

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] dataflow: wired")
	assert.Contains(t, out, "op=add")
	assert.Contains(t, out, "graph=demo")
	assert.Contains(t, out, "[DEBUG] dataflow: assigned")
	assert.Contains(t, out, "[TRACE] dataflow: evaluated")
	assert.Contains(t, out, "node=n2")
}

func TestAtomically(t *testing.T) {
	g := dataflow.NewGraph()
	a := g.MustSource(tree.KindInt, 0)
	double, err := g.Call("add", a, a)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(v int32) {
			defer wg.Done()
			errs <- g.Atomically(func(tx *dataflow.Tx) error {
				if err := tx.Assign(a, v); err != nil {
					return err
				}
				got, err := tx.Read(double)
				if err != nil {
					return err
				}
				if !got.Equal(ileaf(2 * v)) {
					return fmt.Errorf("read %s after assigning %d", got, v)
				}
				return nil
			})
		}(int32(i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "dirty", dataflow.Dirty.String())
	assert.Equal(t, "evaluating", dataflow.Evaluating.String())
	assert.Equal(t, "clean", dataflow.Clean.String())
	assert.Equal(t, "unknown", dataflow.State(9).String())
}
