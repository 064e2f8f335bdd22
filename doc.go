// Package lvflow evaluates dataflow graphs whose values are trees: arbitrarily
// nested, ordered collections of typed scalar leaves.
//
// Users build a graph of source nodes (assigned from outside) and function
// nodes (a named operator applied to other nodes), then read any node. Reading
// evaluates only what is dirty, caches every result, and re-evaluates only
// what an assignment invalidated.
//
// Operators declare the nesting depth they consume. When an input is deeper,
// the operator is applied per element and the results are reassembled into a
// tree of the same shape (broadcasting), so one "add" serves scalars, lists
// and lists of lists alike:
//
//	mul([[2], [3]], [4, 5]) == [[8, 10], [12, 15]]
//
// Packages:
//
//	tree/       the Tree value: leaves, branches, depth, graft, flatten, literals
//	broadcast/  depth-driven application of kernels over nested inputs
//	registry/   named, typed overloads resolved once at wire time
//	ops/        the operator library: lists, trees, sorting, combinations, math
//	dataflow/   Graph, Node, lazy memoized evaluation and dirty propagation
//
// Quick example:
//
//	g := dataflow.NewGraph()
//	a := g.MustSource(tree.KindInt, [][]int{{2}, {3}})
//	b := g.MustSource(tree.KindInt, []int{4, 5})
//	m, _ := g.Call("mul", a, b)
//	out, _ := g.Read(m) // [[8, 10], [12, 15]]
package lvflow
