// SPDX-License-Identifier: MIT

package dataflow

import "errors"

var (
	// ErrInvalidTarget indicates an Assign to a node that is not a source.
	ErrInvalidTarget = errors.New("dataflow: invalid assignment target")

	// ErrCyclicDependency indicates a node that depends on its own value.
	ErrCyclicDependency = errors.New("dataflow: cyclic dependency")

	// ErrForeignNode indicates a nil node, or one created by a different Graph.
	ErrForeignNode = errors.New("dataflow: node does not belong to graph")

	// ErrBadKernelOutput indicates a kernel whose results disagree with the
	// outputs its overload declares.
	ErrBadKernelOutput = errors.New("dataflow: kernel output does not match overload")
)
