package broadcast

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvflow/tree"
)

// Whole declares an input consumed as a complete tree; it is never iterated.
const Whole = -1

// ErrArity indicates that the number of arguments, or of kernel outputs,
// disagrees with the Spec.
var ErrArity = errors.New("broadcast: arity mismatch")

// Kernel computes an operation on arguments already reduced to their declared
// depths. It must return exactly one tree per declared output.
type Kernel func(args []tree.Tree) ([]tree.Tree, error)

// Spec describes how an operation consumes and produces trees.
type Spec struct {
	// Depths holds the declared depth of each input (0, 1, ... or Whole).
	Depths []int

	// Outputs holds the element kind of each output. The kind tags the
	// branches built around kernel results, including empty ones.
	Outputs []tree.Kind
}

// Validate reports malformed specs: no outputs, invalid output kinds or
// declared depths below Whole.
func (s Spec) Validate() error {
	if len(s.Outputs) == 0 {
		return fmt.Errorf("%w: spec declares no outputs", ErrArity)
	}
	for i, k := range s.Outputs {
		if !k.Valid() {
			return fmt.Errorf("%w: output %d has kind %s", tree.ErrTypeMismatch, i, k)
		}
	}
	for i, d := range s.Depths {
		if d < Whole {
			return fmt.Errorf("%w: input %d declares depth %d", tree.ErrInvalidDepth, i, d)
		}
	}

	return nil
}
