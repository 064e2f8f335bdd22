// SPDX-License-Identifier: MIT

package dataflow

import (
	"github.com/katalvlaran/lvflow/registry"
	"github.com/katalvlaran/lvflow/tree"
)

// State is the evaluation state of a function computation.
type State int

const (
	// Dirty computations must run before their outputs can be read.
	Dirty State = iota
	// Evaluating computations are running; reaching one again is a cycle.
	Evaluating
	// Clean computations hold a cached result.
	Clean
)

// String returns "dirty", "evaluating" or "clean".
func (s State) String() string {
	switch s {
	case Dirty:
		return "dirty"
	case Evaluating:
		return "evaluating"
	case Clean:
		return "clean"
	default:
		return "unknown"
	}
}

// Node is one output of a graph. Source nodes hold an assigned tree; function
// nodes are one output slot of a computation.
type Node struct {
	id    string
	g     *Graph
	kind  tree.Kind
	value tree.Tree    // sources only
	comp  *computation // nil for sources
	slot  int          // output index within comp

	// consumers are the computations reading this node, deduplicated, in
	// wiring order.
	consumers []*computation
}

// computation is one resolved overload applied to its input nodes.
// All of its outputs are evaluated, cached and invalidated together.
type computation struct {
	op      registry.Overload
	inputs  []*Node
	outputs []*Node
	state   State
	cache   []tree.Tree
}

// Stats is a snapshot of graph counters.
type Stats struct {
	Nodes         int    // nodes created, sources included
	Evaluations   uint64 // computations run to completion
	CacheHits     uint64 // reads served from a clean computation
	Invalidations uint64 // computations marked dirty by Assign
	Failures      uint64 // evaluations that returned an error
}

// ID returns the node's graph-unique identifier ("n1", "n2", ...).
func (n *Node) ID() string { return n.id }

// Kind returns the element kind of the node's tree. It never changes.
func (n *Node) Kind() tree.Kind { return n.kind }

// IsSource reports whether n accepts Assign.
func (n *Node) IsSource() bool { return n.comp == nil }

// Op returns the resolved overload name, or "" for a source.
func (n *Node) Op() string {
	if n.comp == nil {
		return ""
	}

	return n.comp.op.Name
}

// Overload returns the overload resolved for n at wire time.
// ok is false for sources.
func (n *Node) Overload() (o registry.Overload, ok bool) {
	if n.comp == nil {
		return registry.Overload{}, false
	}

	return n.comp.op, true
}

// Inputs returns the nodes n's computation reads, in parameter order.
func (n *Node) Inputs() []*Node {
	if n.comp == nil {
		return nil
	}

	return append([]*Node(nil), n.comp.inputs...)
}

// Output returns the index of n among its computation's outputs.
func (n *Node) Output() int { return n.slot }

// State returns the evaluation state of n. Sources are always Clean.
func (n *Node) State() State {
	if n.comp == nil {
		return Clean
	}
	n.g.mu.Lock()
	defer n.g.mu.Unlock()

	return n.comp.state
}

func (n *Node) String() string { return n.id }
