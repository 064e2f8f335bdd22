// SPDX-License-Identifier: MIT

package dataflow

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Describe renders the dependency tree of n, one line per node:
//
//	n4 mul -> int32 [dirty]
//	├── n1 source int32 = [[2], [3]]
//	└── n2 source int32 = [4, 5]
//
// Each function node is expanded once; later occurrences of a shared input
// are printed as a single line marked "(see above)". A node met again on its
// own path is marked "(cycle)". Sources are always printed in full.
func (g *Graph) Describe(n *Node) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.owns(n); err != nil {
		return "", err
	}
	d := &describer{
		onPath:   map[*Node]bool{n: true},
		expanded: map[*Node]bool{n: true},
	}
	root := treeprint.NewWithRoot(label(n))
	d.inputs(root, n)

	return root.String(), nil
}

type describer struct {
	onPath   map[*Node]bool
	expanded map[*Node]bool
}

func (d *describer) inputs(parent treeprint.Tree, n *Node) {
	if n.comp == nil {
		return
	}
	for _, in := range n.comp.inputs {
		switch {
		case d.onPath[in]:
			parent.AddNode(label(in) + " (cycle)")
		case in.comp == nil:
			parent.AddNode(label(in))
		case d.expanded[in]:
			parent.AddNode(label(in) + " (see above)")
		default:
			d.expanded[in] = true
			branch := parent.AddBranch(label(in))
			d.onPath[in] = true
			d.inputs(branch, in)
			delete(d.onPath, in)
		}
	}
}

// label is the one-line summary of n. Callers hold the graph lock.
func label(n *Node) string {
	if n.comp == nil {
		return fmt.Sprintf("%s source %s = %s", n.id, n.kind, n.value)
	}
	name := n.comp.op.Name
	if len(n.comp.outputs) > 1 {
		name = fmt.Sprintf("%s.%s", name, n.comp.op.Outputs[n.slot].Name)
	}

	return fmt.Sprintf("%s %s -> %s [%s]", n.id, name, n.kind, n.comp.state)
}
