// Package broadcast aligns trees of different shapes for operations that
// consume inputs at a fixed, declared depth.
//
// Every operation declares, per input, the depth its kernel consumes:
//
//	0      a single leaf (scalar arithmetic, an index, a count)
//	1      a flat list (listSum, sort, dispatch)
//	n      any fixed nesting
//	Whole  the entire tree, never broadcast (graft, flatten, treeSum)
//
// Apply compares each argument's depth with its declared depth. The difference
// is the argument's excess. When every excess is zero the kernel runs once.
// Otherwise the arguments with the largest excess are iterated position-wise at
// their top level and every other argument is repeated whole at each position,
// so a scalar meets every leaf of a list and a depth-2 tree combines with a
// depth-1 tree per top-level group:
//
//	mul([[2], [3]], [4, 5])  ==  [[8, 10], [12, 15]]
//	add(42, [1, 2])          ==  [43, 44]
//
// Iterated arguments must agree in length; a length-1 argument broadcasts
// against any length. Recursion is per subtree, so irregular trees combine
// group by group. Multi-output kernels yield one tree per output, each with the
// same outer nesting.
//
// Errors:
//
//   - tree.ErrInvalidDepth   an argument is shallower than its declared depth.
//   - tree.ErrShapeMismatch  iterated arguments have incompatible lengths.
//   - ErrArity               argument or kernel output count disagrees with the Spec.
//
// All errors carry the nesting path at which they were detected, e.g. "at [1 0]".
//
// Complexity: O(total positions visited) kernel calls; no argument is copied,
// children are shared with the inputs.
package broadcast
