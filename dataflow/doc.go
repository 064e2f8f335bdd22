// SPDX-License-Identifier: MIT

// Package dataflow builds and evaluates graphs of tree-valued nodes.
//
// A Graph owns two kinds of node:
//
//   - Source nodes hold a tree assigned from outside (Graph.Source, Graph.Assign).
//   - Function nodes apply one registry.Overload to the outputs of other nodes
//     (Graph.Wire, Graph.Call). The overload is resolved once, at wire time,
//     from the element kinds of the inputs.
//
// Evaluation is lazy and memoized. Every function computation is Dirty, Clean or
// Evaluating:
//
//	wire            -> Dirty
//	Read (Dirty)    -> Evaluating -> Clean    (result cached)
//	Read (Clean)    -> cached result, nothing runs
//	Assign upstream -> Dirty                  (cache dropped)
//	Read while Evaluating -> ErrCyclicDependency
//
// A computation with several outputs (e.g. dispatch) runs once and fills all of
// its output nodes together.
//
// Concurrency: a Graph serializes every public method on one mutex. Atomically
// holds that mutex across a sequence of assigns and reads, so no other goroutine
// observes the intermediate state.
//
// Errors:
//
//   - ErrInvalidTarget     Assign on a function node.
//   - ErrCyclicDependency  a node was reached again while it was being evaluated.
//   - ErrForeignNode       a nil node or a node owned by another Graph.
//   - ErrBadKernelOutput   a kernel returned the wrong number or kinds of trees.
//
// Resolution failures surface as registry.ErrNoMatchingOverload from Wire, shape
// and conversion failures as the tree sentinels from Assign and Read.
package dataflow
