// SPDX-License-Identifier: MIT

package dataflow

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/lvflow/registry"
	"github.com/katalvlaran/lvflow/tree"
)

const nodeIDPrefix = 'n'

// Graph owns a set of nodes and evaluates them on demand.
//
// mu serializes every public method; evaluation recurses under the lock.
// nextID is an atomic counter for node IDs.
type Graph struct {
	mu sync.Mutex

	name       string
	registry   *registry.Registry
	log        hclog.Logger
	onEvaluate func(*Node)

	nextID uint64
	nodes  []*Node // creation order
	stats  Stats
}

// NewGraph creates an empty Graph. Without options it resolves against the
// full ops library and logs nothing.
func NewGraph(opts ...Option) *Graph {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.resolve()

	return &Graph{
		name:       cfg.name,
		registry:   cfg.registry,
		log:        cfg.logger,
		onEvaluate: cfg.onEvaluate,
	}
}

// Name returns the graph name.
func (g *Graph) Name() string { return g.name }

// Registry returns the registry the graph resolves overloads against.
func (g *Graph) Registry() *registry.Registry { return g.registry }

// Source creates a source node of the given element kind.
//
// Without initial values the node holds an empty branch. A single value is
// converted with tree.From; several values become a list, one child each.
func (g *Graph) Source(kind tree.Kind, initial ...any) (*Node, error) {
	var (
		t   tree.Tree
		err error
	)
	switch len(initial) {
	case 0:
		t, err = tree.From(kind, nil)
	case 1:
		t, err = tree.From(kind, initial[0])
	default:
		t, err = tree.From(kind, initial)
	}
	if err != nil {
		return nil, fmt.Errorf("dataflow: source: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.newNode(kind)
	n.value = t

	return n, nil
}

// MustSource is Source for static fixtures; it panics on conversion errors.
func (g *Graph) MustSource(kind tree.Kind, initial ...any) *Node {
	n, err := g.Source(kind, initial...)
	if err != nil {
		panic(err)
	}

	return n
}

// Wire creates a function node computing op over inputs and returns one node
// per output of the resolved overload.
//
// The overload is chosen once, here, from the element kinds of inputs; outputs
// is the number of results the caller expects, 0 accepting any. All returned
// nodes share one computation: reading any of them evaluates it once.
func (g *Graph) Wire(op string, outputs int, inputs ...*Node) ([]*Node, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	kinds := make([]tree.Kind, len(inputs))
	for i, in := range inputs {
		if err := g.owns(in); err != nil {
			return nil, fmt.Errorf("%s input %d: %w", op, i, err)
		}
		kinds[i] = in.kind
	}
	o, err := g.registry.Resolve(op, kinds, outputs)
	if err != nil {
		return nil, err
	}

	c := &computation{
		op:     o,
		inputs: append([]*Node(nil), inputs...),
		state:  Dirty,
	}
	c.outputs = make([]*Node, len(o.Outputs))
	for i, out := range o.Outputs {
		n := g.newNode(out.Kind)
		n.comp = c
		n.slot = i
		c.outputs[i] = n
	}
	for _, in := range inputs {
		in.addConsumer(c)
	}
	g.log.Debug("wired", "op", op, "signature", o.Signature(), "node", c.outputs[0].id, "outputs", len(c.outputs))

	return append([]*Node(nil), c.outputs...), nil
}

// Call is Wire for single-output operators.
func (g *Graph) Call(op string, inputs ...*Node) (*Node, error) {
	ns, err := g.Wire(op, 1, inputs...)
	if err != nil {
		return nil, err
	}

	return ns[0], nil
}

// Nodes returns every node of g in creation order.
func (g *Graph) Nodes() []*Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]*Node(nil), g.nodes...)
}

// Stats returns a snapshot of the graph counters.
func (g *Graph) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.stats
	s.Nodes = len(g.nodes)

	return s
}

// newNode allocates and records a node. Callers hold g.mu.
func (g *Graph) newNode(kind tree.Kind) *Node {
	n := &Node{id: nextNodeID(g), g: g, kind: kind}
	g.nodes = append(g.nodes, n)

	return n
}

// owns reports ErrForeignNode unless n was created by g.
func (g *Graph) owns(n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrForeignNode)
	}
	if n.g != g {
		return fmt.Errorf("%w: %s", ErrForeignNode, n.id)
	}

	return nil
}

func (n *Node) addConsumer(c *computation) {
	for _, have := range n.consumers {
		if have == c {
			return
		}
	}
	n.consumers = append(n.consumers, c)
}

// nextNodeID returns a new unique textual node ID ("n1", "n2", ...).
func nextNodeID(g *Graph) string {
	id := atomic.AddUint64(&g.nextID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, nodeIDPrefix)
	buf = strconv.AppendUint(buf, id, 10)

	return string(buf)
}
