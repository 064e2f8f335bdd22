// SPDX-License-Identifier: MIT

package dataflow

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvflow/tree"
)

// Assign replaces the tree held by the source node n.
//
// literal is converted with tree.From using n's kind: the shape may change
// freely, the element kind may not (ints still widen into float32 sources).
// Every computation downstream of n becomes Dirty.
func (g *Graph) Assign(n *Node, literal any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.assign(n, literal)
}

// Read returns the current tree of n, evaluating dirty dependencies first.
func (g *Graph) Read(n *Node) (tree.Tree, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.owns(n); err != nil {
		return tree.Tree{}, err
	}

	return g.read(n)
}

// Tx is the view of a Graph inside Atomically.
type Tx struct {
	g *Graph
}

// Assign is Graph.Assign without re-acquiring the lock.
func (tx *Tx) Assign(n *Node, literal any) error { return tx.g.assign(n, literal) }

// Read is Graph.Read without re-acquiring the lock.
func (tx *Tx) Read(n *Node) (tree.Tree, error) {
	if err := tx.g.owns(n); err != nil {
		return tree.Tree{}, err
	}

	return tx.g.read(n)
}

// Atomically runs fn while holding the graph lock, so a sequence of assigns
// and reads is not interleaved with other goroutines. fn must use tx, not g.
func (g *Graph) Atomically(fn func(tx *Tx) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(&Tx{g: g})
}

func (g *Graph) assign(n *Node, literal any) error {
	if err := g.owns(n); err != nil {
		return err
	}
	if n.comp != nil {
		return fmt.Errorf("%w: %s is the output of %s", ErrInvalidTarget, n.id, n.comp.op.Name)
	}
	t, err := tree.From(n.kind, literal)
	if err != nil {
		return fmt.Errorf("dataflow: assign %s: %w", n.id, err)
	}
	n.value = t

	marked := 0
	for _, c := range n.consumers {
		marked += g.invalidate(c)
	}
	g.stats.Invalidations += uint64(marked)
	g.log.Debug("assigned", "node", n.id, "depth", t.Depth(), "invalidated", marked)

	return nil
}

// invalidate marks c and everything downstream of it Dirty, depth-first.
// Already-dirty computations stop the walk: their dependents are dirty too.
// It returns the number of computations it changed.
func (g *Graph) invalidate(c *computation) int {
	if c.state == Dirty {
		return 0
	}
	c.state = Dirty
	c.cache = nil

	marked := 1
	for _, out := range c.outputs {
		for _, next := range out.consumers {
			marked += g.invalidate(next)
		}
	}

	return marked
}

func (g *Graph) read(n *Node) (tree.Tree, error) {
	if n.comp == nil {
		return n.value, nil
	}
	if err := g.evaluate(n.comp); err != nil {
		return tree.Tree{}, err
	}

	return n.comp.cache[n.slot], nil
}

// evaluate brings c to Clean. On any failure c is left Dirty with no cache.
func (g *Graph) evaluate(c *computation) error {
	switch c.state {
	case Clean:
		g.stats.CacheHits++
		return nil
	case Evaluating:
		return fmt.Errorf("%w: %s (%s) depends on itself", ErrCyclicDependency, c.outputs[0].id, c.op.Name)
	}

	c.state = Evaluating
	args := make([]tree.Tree, len(c.inputs))
	for i, in := range c.inputs {
		t, err := g.read(in)
		if err != nil {
			c.state = Dirty
			return err
		}
		args[i] = t
	}

	start := time.Now()
	outs, err := c.op.Call(args...)
	if err == nil {
		err = c.check(outs)
	}
	if err != nil {
		c.state = Dirty
		g.stats.Failures++
		g.log.Trace("evaluation failed", "node", c.outputs[0].id, "op", c.op.Name, "error", err)

		return fmt.Errorf("dataflow: %s (%s): %w", c.outputs[0].id, c.op.Signature(), err)
	}

	c.cache = outs
	c.state = Clean
	g.stats.Evaluations++
	g.log.Trace("evaluated", "node", c.outputs[0].id, "op", c.op.Name, "duration", time.Since(start))
	if g.onEvaluate != nil {
		g.onEvaluate(c.outputs[0])
	}

	return nil
}

// check verifies that outs matches the declared outputs of c.
func (c *computation) check(outs []tree.Tree) error {
	if len(outs) != len(c.outputs) {
		return fmt.Errorf("%w: %d trees for %d outputs", ErrBadKernelOutput, len(outs), len(c.outputs))
	}
	for i, out := range outs {
		if err := out.Validate(); err != nil {
			return fmt.Errorf("%w: output %d: %w", ErrBadKernelOutput, i, err)
		}
		if out.Kind() != c.outputs[i].kind {
			return fmt.Errorf("%w: output %d is %s, want %s", ErrBadKernelOutput, i, out.Kind(), c.outputs[i].kind)
		}
	}

	return nil
}
