package registry

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvflow/broadcast"
	"github.com/katalvlaran/lvflow/tree"
)

// Param declares one input of an overload.
type Param struct {
	Name  string
	Kind  tree.Kind
	Depth int // depth consumed by the kernel; broadcast.Whole for the entire tree
	Doc   string
}

// Output declares one output of an overload.
type Output struct {
	Name string
	Kind tree.Kind
	Doc  string
}

// Overload is one typed implementation of a named operation.
type Overload struct {
	Name    string
	Doc     string
	Inputs  []Param
	Outputs []Output
	Kernel  broadcast.Kernel
}

// InputKinds returns the element kinds of the inputs in order.
func (o Overload) InputKinds() []tree.Kind {
	ks := make([]tree.Kind, len(o.Inputs))
	for i, p := range o.Inputs {
		ks[i] = p.Kind
	}

	return ks
}

// OutputKinds returns the element kinds of the outputs in order.
func (o Overload) OutputKinds() []tree.Kind {
	ks := make([]tree.Kind, len(o.Outputs))
	for i, out := range o.Outputs {
		ks[i] = out.Kind
	}

	return ks
}

// Spec returns the broadcast contract of o.
func (o Overload) Spec() broadcast.Spec {
	ds := make([]int, len(o.Inputs))
	for i, p := range o.Inputs {
		ds[i] = p.Depth
	}

	return broadcast.Spec{Depths: ds, Outputs: o.OutputKinds()}
}

// Signature renders o as "add(a int32, b int32) -> (sum int32)".
func (o Overload) Signature() string {
	var sb strings.Builder
	sb.WriteString(o.Name)
	sb.WriteByte('(')
	for i, p := range o.Inputs {
		if i > 0 {
			sb.WriteString(", ")
		}
		if p.Name != "" {
			sb.WriteString(p.Name)
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Kind.String())
	}
	sb.WriteString(") -> (")
	for i, out := range o.Outputs {
		if i > 0 {
			sb.WriteString(", ")
		}
		if out.Name != "" {
			sb.WriteString(out.Name)
			sb.WriteByte(' ')
		}
		sb.WriteString(out.Kind.String())
	}
	sb.WriteByte(')')

	return sb.String()
}

// Call evaluates o on args through the broadcaster.
// Results are normalized to the declared output kinds: empty trees are
// retagged and int results widen into float outputs.
func (o Overload) Call(args ...tree.Tree) ([]tree.Tree, error) {
	outs, err := broadcast.Apply(o.Spec(), o.Kernel, args...)
	if err != nil {
		return nil, err
	}
	for i, out := range outs {
		want := o.Outputs[i].Kind
		if out.Kind() == want {
			continue
		}
		norm, err := tree.From(want, out)
		if err != nil {
			return nil, fmt.Errorf("%s output %d: %w", o.Name, i, err)
		}
		outs[i] = norm
	}

	return outs, nil
}

// accepts reports why o cannot serve the given input kinds and output count,
// or nil if it can. outputs == 0 accepts any output count.
func (o Overload) accepts(kinds []tree.Kind, outputs int) error {
	if len(kinds) != len(o.Inputs) {
		return fmt.Errorf("takes %d inputs, got %d", len(o.Inputs), len(kinds))
	}
	for i, k := range kinds {
		if k != o.Inputs[i].Kind {
			return fmt.Errorf("input %d wants %s, got %s", i, o.Inputs[i].Kind, k)
		}
	}
	if outputs != 0 && outputs != len(o.Outputs) {
		return fmt.Errorf("has %d outputs, %d requested", len(o.Outputs), outputs)
	}

	return nil
}

// sameSignature reports whether o and p would be ambiguous under Resolve.
func (o Overload) sameSignature(p Overload) bool {
	return o.Name == p.Name && len(o.Outputs) == len(p.Outputs) && o.accepts(p.InputKinds(), 0) == nil
}

// kindList renders kinds as "int32, float32".
func kindList(kinds []tree.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return strings.Join(names, ", ")
}
