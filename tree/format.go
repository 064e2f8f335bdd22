// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// String renders t in compact bracket form, e.g. "[[8, 10], [12, 15]]".
func (t Tree) String() string {
	var sb strings.Builder
	t.writeTo(&sb)

	return sb.String()
}

func (t Tree) writeTo(sb *strings.Builder) {
	if t.leaf {
		sb.WriteString(t.value.String())
		return
	}
	sb.WriteByte('[')
	for i, c := range t.children {
		if i > 0 {
			sb.WriteString(", ")
		}
		c.writeTo(sb)
	}
	sb.WriteByte(']')
}

// Dump renders t as an indented multi-line tree, one line per node.
// Branch lines show their child count, leaf lines their value:
//
//	int32 depth=2
//	├── [1]
//	│   └── 2
//	└── [1]
//	    └── 3
func (t Tree) Dump() string {
	root := treeprint.NewWithRoot(fmt.Sprintf("%s depth=%d", t.kind, t.Depth()))
	if t.leaf {
		root.AddNode(t.value.String())

		return root.String()
	}
	for _, c := range t.children {
		c.dumpInto(root)
	}

	return root.String()
}

func (t Tree) dumpInto(parent treeprint.Tree) {
	if t.leaf {
		parent.AddNode(t.value.String())
		return
	}
	branch := parent.AddBranch(fmt.Sprintf("[%d]", len(t.children)))
	for _, c := range t.children {
		c.dumpInto(branch)
	}
}
