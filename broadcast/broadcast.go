package broadcast

import (
	"fmt"

	"github.com/katalvlaran/lvflow/tree"
)

// applier carries the fixed parts of one Apply call through the recursion.
type applier struct {
	spec   Spec
	kernel Kernel
	path   []int // current nesting path, reused across siblings
}

// Apply runs k over args according to spec, broadcasting arguments that are
// deeper than their declared depth. It returns one tree per spec output.
func Apply(spec Spec, k Kernel, args ...tree.Tree) ([]tree.Tree, error) {
	// 1. Validate the contract before touching any tree.
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(args) != len(spec.Depths) {
		return nil, fmt.Errorf("%w: %d arguments for %d declared inputs", ErrArity, len(args), len(spec.Depths))
	}
	if k == nil {
		return nil, fmt.Errorf("%w: nil kernel", ErrArity)
	}

	// 2. Recurse from the root with an empty path.
	a := &applier{spec: spec, kernel: k}

	return a.apply(args)
}

func (a *applier) apply(args []tree.Tree) ([]tree.Tree, error) {
	// 1. Compute the excess of every broadcastable input; keep the maximum.
	maxExcess := 0
	excess := make([]int, len(args))
	for i, arg := range args {
		d := a.spec.Depths[i]
		if d == Whole {
			excess[i] = Whole
			continue
		}
		e := arg.Depth() - d
		if e < 0 {
			return nil, fmt.Errorf("%w: input %d has depth %d, needs %d%s",
				tree.ErrInvalidDepth, i, arg.Depth(), d, a.where())
		}
		excess[i] = e
		if e > maxExcess {
			maxExcess = e
		}
	}

	// 2. Everything at its declared depth: invoke the kernel once.
	if maxExcess == 0 {
		return a.invoke(args)
	}

	// 3. Iterate the deepest inputs; the common length ignores length-1 inputs.
	n, err := a.commonLen(args, excess, maxExcess)
	if err != nil {
		return nil, err
	}
	cols := make([][]tree.Tree, len(a.spec.Outputs))
	for o := range cols {
		cols[o] = make([]tree.Tree, n)
	}
	sub := make([]tree.Tree, len(args))
	for pos := 0; pos < n; pos++ {
		for i, arg := range args {
			switch {
			case excess[i] != maxExcess:
				sub[i] = arg
			case arg.Len() == 1:
				sub[i] = arg.At(0)
			default:
				sub[i] = arg.At(pos)
			}
		}
		a.path = append(a.path, pos)
		outs, err := a.apply(sub)
		a.path = a.path[:len(a.path)-1]
		if err != nil {
			return nil, err
		}
		for o := range cols {
			cols[o][pos] = outs[o]
		}
	}

	// 4. Rebuild one branch per output around the positional results.
	res := make([]tree.Tree, len(cols))
	for o, col := range cols {
		res[o] = tree.Branch(a.spec.Outputs[o], col...)
	}

	return res, nil
}

// commonLen returns the iteration length of the inputs with the given excess.
// Length-1 inputs broadcast; any other disagreement is ErrShapeMismatch.
func (a *applier) commonLen(args []tree.Tree, excess []int, maxExcess int) (int, error) {
	n := 1
	for i, arg := range args {
		if excess[i] != maxExcess {
			continue
		}
		l := arg.Len()
		switch {
		case l == 1:
		case n == 1:
			n = l
		case l != n:
			return 0, fmt.Errorf("%w: input %d has length %d, expected %d%s",
				tree.ErrShapeMismatch, i, l, n, a.where())
		}
	}

	return n, nil
}

func (a *applier) invoke(args []tree.Tree) ([]tree.Tree, error) {
	call := make([]tree.Tree, len(args))
	copy(call, args)
	outs, err := a.kernel(call)
	if err != nil {
		if len(a.path) > 0 {
			return nil, fmt.Errorf("at %v: %w", a.path, err)
		}

		return nil, err
	}
	if len(outs) != len(a.spec.Outputs) {
		return nil, fmt.Errorf("%w: kernel returned %d outputs, declared %d%s",
			ErrArity, len(outs), len(a.spec.Outputs), a.where())
	}

	return outs, nil
}

// where renders the current nesting path as an error suffix, or "" at the root.
func (a *applier) where() string {
	if len(a.path) == 0 {
		return ""
	}

	return fmt.Sprintf(" at %v", a.path)
}
