// Package ops is the operator library of lvflow: the structural list and tree
// transforms plus the scalar math overloads that function nodes call.
//
// Every operator is a pure function over tree.Tree and is usable without a
// graph. Each one is defined once as a registry.Overload table entry whose
// inputs declare the depth they consume; the broadcaster lifts it to deeper
// trees, so every operator works per group on nested input:
//
//	ListSum([[1, 2], [3]])          == [3, 3]
//	ListItem([a, b, c], [0, 2])     == [a, c]
//	Sort([[3, 1], [2, 1]], keys)    sorts each group with its own keys
//
// Structural operators:
//
//	series(start, step, count)   arithmetic progression, int32 and float32
//	listSum(list)                sum of a flat list (int32, float32, vec2, vec3)
//	treeSum(tree)                sum of every leaf of a whole tree
//	repeat(value, count)         count copies of a whole tree
//	listItem(list, index)        one element; ErrIndexOutOfRange outside [0, len)
//	listLength(list)             number of elements
//	subList(list, start, stop)   half-open slice; bounds within [0, len]
//	graft / flatten / flattenAll depth transforms of a whole tree
//	dispatch(items, mask)        stable split into (true, false) lists
//	combinations(items, k)       C(n, k) k-subsets in lexicographic index order
//	sort(values, keys)           stable sort by int32, float32 or string keys
//
// Math operators: add, sub, mul, div, min, max (int32, float32; add/sub on
// vectors; mul of a vector by a float32), sin, cos, tan, arcsin, arccos,
// arctan, sqrt, pow (float32), toString (int32, float32), vec2, vec3.
// Integer division truncates toward zero.
//
// mapValueToColor(value, range, scheme) interpolates a vec3 color from a
// scheme list by the position of value within range, clamped to its ends.
//
// Register installs the whole library into a registry.Registry; NewRegistry
// returns a registry preloaded with it.
//
// Errors:
//
//   - ErrInvalidArgument  negative counts or combination sizes.
//   - ErrDivisionByZero   integer division by zero.
//   - tree.ErrIndexOutOfRange, tree.ErrShapeMismatch, tree.ErrInvalidDepth
//     as reported by the operators and the broadcaster.
package ops
