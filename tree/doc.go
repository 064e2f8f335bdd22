// SPDX-License-Identifier: MIT

// Package tree provides the value type of lvflow: an immutable, arbitrarily
// nested ordered structure of tagged scalar leaves.
//
// A Tree is either a leaf holding one Value, or a branch holding an ordered
// sequence of child Trees. Every leaf of a tree shares one Kind (int32, float32,
// bool, string, vec2, vec3 or an opaque mesh handle); branches may be irregular,
// i.e. siblings may have different lengths and depths.
//
// Depth:
//
//	leaf                    0
//	empty branch            1
//	branch                  1 + max(child depth)
//
// Structural transforms:
//
//   - Graft:      depth d -> d+1, every leaf (and every empty branch) wrapped in
//     a singleton branch.
//   - Flatten:    depth d -> d-1 for d >= 2, innermost branches (empty ones
//     included) spliced into their parent. A flat list has nothing to splice
//     into and is returned as is, except that [x] collapses to x.
//     Flatten(Graft(t)) == t for every tree t.
//   - FlattenAll: depth-1 list of every leaf in depth-first order.
//
// Conversion:
//
//   - From / MustFrom / Infer build trees from Go literals (nested slices, scalars).
//   - Interface converts a tree back into nested []any.
//   - FromCty / ToCty bridge to github.com/zclconf/go-cty values.
//   - String renders compact brackets, Dump an indented treeprint rendering.
//
// Errors:
//
//   - ErrShapeMismatch    incompatible lengths in elementwise combination.
//   - ErrInvalidDepth     a tree with fewer levels than required.
//   - ErrIndexOutOfRange  an index or bound outside the valid range.
//   - ErrTypeMismatch     a leaf Kind that disagrees with the required Kind.
//
// Trees are values: they are safe to share between goroutines and between
// graph nodes because no operation ever mutates one in place.
package tree
