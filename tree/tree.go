// SPDX-License-Identifier: MIT
// File: tree.go
// Role: Tree constructors, structural queries and the two depth transforms
// (Graft/Flatten) that every other package builds on.
//
// Determinism:
//   - Children keep insertion order; Leaves() walks depth-first, left to right.
//
// Immutability:
//   - No method mutates its receiver. Constructors copy caller slices; internal
//     helpers share child slices between trees because trees are never mutated.

package tree

import "fmt"

// Leaf returns a depth-0 tree holding v.
func Leaf(v Value) Tree {
	return Tree{kind: v.kind, leaf: true, value: v}
}

// Empty returns an empty branch of the given kind (depth 1, no leaves).
func Empty(kind Kind) Tree {
	return Tree{kind: kind, depth: 1}
}

// Branch returns a branch of kind holding children in order.
// Children without leaves (e.g. Empty of another kind) are retagged to kind;
// children holding leaves of another kind are kept as-is and reported by Validate.
func Branch(kind Kind, children ...Tree) Tree {
	cs := make([]Tree, len(children))
	copy(cs, children)

	return branchOf(kind, cs)
}

// List returns a depth-1 branch holding one leaf per value.
func List(kind Kind, values ...Value) Tree {
	cs := make([]Tree, len(values))
	for i, v := range values {
		cs[i] = Leaf(v)
	}

	return branchOf(kind, cs)
}

// Ints returns a depth-1 int32 list.
func Ints(values ...int32) Tree {
	cs := make([]Tree, len(values))
	for i, v := range values {
		cs[i] = Leaf(Int(v))
	}

	return branchOf(KindInt, cs)
}

// Floats returns a depth-1 float32 list.
func Floats(values ...float32) Tree {
	cs := make([]Tree, len(values))
	for i, v := range values {
		cs[i] = Leaf(Float(v))
	}

	return branchOf(KindFloat, cs)
}

// Bools returns a depth-1 bool list.
func Bools(values ...bool) Tree {
	cs := make([]Tree, len(values))
	for i, v := range values {
		cs[i] = Leaf(Bool(v))
	}

	return branchOf(KindBool, cs)
}

// Strs returns a depth-1 string list.
func Strs(values ...string) Tree {
	cs := make([]Tree, len(values))
	for i, v := range values {
		cs[i] = Leaf(Str(v))
	}

	return branchOf(KindString, cs)
}

// branchOf takes ownership of cs and computes the cached depth.
func branchOf(kind Kind, cs []Tree) Tree {
	depth := 0
	for i := range cs {
		if cs[i].kind != kind && !cs[i].hasLeaves() {
			cs[i] = retag(cs[i], kind)
		}
		if d := cs[i].Depth(); d > depth {
			depth = d
		}
	}

	return Tree{kind: kind, depth: depth + 1, children: cs}
}

func retag(t Tree, kind Kind) Tree {
	cs := make([]Tree, len(t.children))
	for i, c := range t.children {
		cs[i] = retag(c, kind)
	}

	return Tree{kind: kind, depth: t.depth, children: cs}
}

func (t Tree) hasLeaves() bool {
	if t.leaf {
		return true
	}
	for _, c := range t.children {
		if c.hasLeaves() {
			return true
		}
	}

	return false
}

// Kind returns the element kind shared by every leaf of t.
func (t Tree) Kind() Kind { return t.kind }

// IsLeaf reports whether t is a depth-0 leaf.
func (t Tree) IsLeaf() bool { return t.leaf }

// Depth returns the number of branch levels above the deepest leaf:
// 0 for a leaf, 1 for a flat list (or any empty branch), 1+max(child) otherwise.
func (t Tree) Depth() int {
	if t.leaf {
		return 0
	}
	if t.depth == 0 {
		return 1 // zero Tree
	}

	return t.depth
}

// Len returns the number of direct children (0 for leaves).
func (t Tree) Len() int { return len(t.children) }

// Child returns the i-th direct child or ErrIndexOutOfRange.
func (t Tree) Child(i int) (Tree, error) {
	if i < 0 || i >= len(t.children) {
		return Tree{}, fmt.Errorf("%w: child %d of %d", ErrIndexOutOfRange, i, len(t.children))
	}

	return t.children[i], nil
}

// Children returns a copy of the direct children slice.
func (t Tree) Children() []Tree {
	cs := make([]Tree, len(t.children))
	copy(cs, t.children)

	return cs
}

// At returns the child at index i without bounds reporting.
// It is intended for kernels that already validated i.
func (t Tree) At(i int) Tree { return t.children[i] }

// Value returns the leaf payload; the zero Value for branches.
func (t Tree) Value() Value { return t.value }

// Values returns the payloads of the direct children of a depth-1 branch.
// Non-leaf children are skipped.
func (t Tree) Values() []Value {
	out := make([]Value, 0, len(t.children))
	for _, c := range t.children {
		if c.leaf {
			out = append(out, c.value)
		}
	}

	return out
}

// Leaves returns every leaf payload in depth-first, left-to-right order.
func (t Tree) Leaves() []Value {
	out := make([]Value, 0, len(t.children))

	return t.appendLeaves(out)
}

func (t Tree) appendLeaves(out []Value) []Value {
	if t.leaf {
		return append(out, t.value)
	}
	for _, c := range t.children {
		out = c.appendLeaves(out)
	}

	return out
}

// LeafCount returns the number of leaves in t.
func (t Tree) LeafCount() int {
	if t.leaf {
		return 1
	}
	n := 0
	for _, c := range t.children {
		n += c.LeafCount()
	}

	return n
}

// Equal reports exact structural equality: same kind, same nesting, equal leaves.
// go-cmp picks this method up, so trees can be diffed with cmp.Diff directly.
func (t Tree) Equal(o Tree) bool {
	if t.kind != o.kind || t.leaf != o.leaf {
		return false
	}
	if t.leaf {
		return t.value == o.value
	}
	if len(t.children) != len(o.children) {
		return false
	}
	for i := range t.children {
		if !t.children[i].Equal(o.children[i]) {
			return false
		}
	}

	return true
}

// Validate reports ErrTypeMismatch if any leaf's kind differs from t.Kind().
func (t Tree) Validate() error {
	return t.validate(t.kind)
}

func (t Tree) validate(kind Kind) error {
	if t.leaf {
		if t.value.kind != kind {
			return fmt.Errorf("%w: leaf %s in %s tree", ErrTypeMismatch, t.value.kind, kind)
		}

		return nil
	}
	for _, c := range t.children {
		if err := c.validate(kind); err != nil {
			return err
		}
	}

	return nil
}

// Graft wraps every leaf of t in a singleton branch, increasing depth by one.
// An empty branch gains a level too: [] becomes [[]].
func (t Tree) Graft() Tree {
	if t.leaf || len(t.children) == 0 {
		return branchOf(t.kind, []Tree{t})
	}
	cs := make([]Tree, len(t.children))
	for i, c := range t.children {
		cs[i] = c.Graft()
	}

	return branchOf(t.kind, cs)
}

// Flatten removes the innermost nesting level of t.
//
// Every innermost branch (depth 1, including empty ones) below the root is
// spliced into its parent in order, so depth drops by exactly one and
// Flatten undoes Graft. A depth-1 root has no parent to splice into: a
// single-element list collapses to its leaf, any other list (empty included)
// is returned unchanged. A leaf is ErrInvalidDepth.
func (t Tree) Flatten() (Tree, error) {
	if t.leaf {
		return Tree{}, fmt.Errorf("%w: cannot flatten a leaf", ErrInvalidDepth)
	}
	if t.Depth() == 1 {
		if len(t.children) == 1 {
			return t.children[0], nil
		}

		return t, nil
	}

	return t.spliceInnermost(), nil
}

func (t Tree) spliceInnermost() Tree {
	cs := make([]Tree, 0, len(t.children))
	for _, c := range t.children {
		switch {
		case c.leaf:
			cs = append(cs, c)
		case c.Depth() == 1:
			cs = append(cs, c.children...)
		default:
			cs = append(cs, c.spliceInnermost())
		}
	}

	return branchOf(t.kind, cs)
}

// FlattenAll returns a depth-1 list of every leaf of t in order.
func (t Tree) FlattenAll() Tree {
	return List(t.kind, t.Leaves()...)
}
