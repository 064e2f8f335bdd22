package ops

import (
	"sync"

	"github.com/katalvlaran/lvflow/broadcast"
	"github.com/katalvlaran/lvflow/registry"
	"github.com/katalvlaran/lvflow/tree"
)

// Overloads returns every overload of the library in registration order.
func Overloads() []registry.Overload {
	var os []registry.Overload
	os = append(os, listOverloads()...)
	os = append(os, treeOverloads()...)
	os = append(os, combinationOverloads()...)
	os = append(os, sortOverloads()...)
	os = append(os, mathOverloads()...)
	os = append(os, colorOverloads()...)

	return os
}

// Register installs the whole library into r.
func Register(r *registry.Registry) error {
	for _, o := range Overloads() {
		if err := r.Register(o); err != nil {
			return err
		}
	}

	return nil
}

// NewRegistry returns a registry preloaded with the whole library.
func NewRegistry() *registry.Registry {
	r := registry.New()
	r.MustRegister(Overloads()...)

	return r
}

// library backs the package-level operator functions. It is built once and
// never handed out, so callers cannot register into it.
var library = sync.OnceValue(NewRegistry)

// Call runs the library operator name on args. The overload is resolved from
// the element kinds of args, exactly as a graph resolves it at wire time.
func Call(name string, args ...tree.Tree) ([]tree.Tree, error) {
	kinds := make([]tree.Kind, len(args))
	for i, a := range args {
		kinds[i] = a.Kind()
	}
	o, err := library().Resolve(name, kinds, 0)
	if err != nil {
		return nil, err
	}

	return o.Call(args...)
}

// call1 is Call for single-output operators.
func call1(name string, args ...tree.Tree) (tree.Tree, error) {
	outs, err := Call(name, args...)
	if err != nil {
		return tree.Tree{}, err
	}

	return outs[0], nil
}

func param(name string, k tree.Kind, depth int, doc string) registry.Param {
	return registry.Param{Name: name, Kind: k, Depth: depth, Doc: doc}
}

func output(name string, k tree.Kind, doc string) registry.Output {
	return registry.Output{Name: name, Kind: k, Doc: doc}
}

// leaf wraps a single result value as a kernel output.
func leaf(v tree.Value) ([]tree.Tree, error) {
	return []tree.Tree{tree.Leaf(v)}, nil
}

// whole is the declared depth of inputs consumed as entire trees.
const whole = broadcast.Whole
