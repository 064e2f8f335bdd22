// SPDX-License-Identifier: MIT

package dataflow

import "fmt"

// Visitation colors of the dependency walk.
const (
	white = iota // not yet visited
	gray         // on the current path
	black        // fully explored
)

// Upstream returns n and every node it transitively depends on, ordered so
// that each node appears after all of its inputs. n is last.
//
// Sibling outputs of a computation are not dependencies of each other and are
// only listed when something reads them. A cycle yields ErrCyclicDependency.
func (g *Graph) Upstream(n *Node) ([]*Node, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.owns(n); err != nil {
		return nil, err
	}
	w := &upstreamWalker{state: make(map[*Node]int)}
	if err := w.visit(n); err != nil {
		return nil, err
	}

	return w.order, nil
}

// upstreamWalker records the post-order of a DFS over input edges, which is
// already a dependencies-first order.
type upstreamWalker struct {
	state map[*Node]int
	order []*Node
}

func (w *upstreamWalker) visit(n *Node) error {
	switch w.state[n] {
	case gray:
		return fmt.Errorf("%w: %s", ErrCyclicDependency, n.id)
	case black:
		return nil
	}
	w.state[n] = gray
	if n.comp != nil {
		for _, in := range n.comp.inputs {
			if err := w.visit(in); err != nil {
				return err
			}
		}
	}
	w.state[n] = black
	w.order = append(w.order, n)

	return nil
}
