// SPDX-License-Identifier: MIT
// Sentinel error set shared by every tree-consuming package.
//
// Every message is prefixed with "tree: ..." so failures can be grepped across
// logs. Callers branch with errors.Is; context (the nesting path, the offending
// index) is attached with %w wrapping at the point of detection.

package tree

import "errors"

var (
	// ErrShapeMismatch indicates two trees combined elementwise have incompatible,
	// non-broadcastable lengths at some nesting level.
	ErrShapeMismatch = errors.New("tree: shape mismatch")

	// ErrInvalidDepth indicates a tree has fewer nesting levels than an operation
	// requires (e.g. Flatten on a leaf).
	ErrInvalidDepth = errors.New("tree: invalid depth")

	// ErrIndexOutOfRange indicates an index or slice bound outside the valid range.
	ErrIndexOutOfRange = errors.New("tree: index out of range")

	// ErrTypeMismatch indicates a leaf whose Kind disagrees with the Kind required
	// by the receiving tree, node or operation.
	ErrTypeMismatch = errors.New("tree: type mismatch")
)
