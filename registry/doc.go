// Package registry maps operation names to typed overloads and resolves them
// statically, once, when a function node is wired.
//
// An Overload declares its inputs (name, element kind, consumed depth), its
// outputs (name, element kind) and a broadcast.Kernel. Several overloads may
// share a name as long as their input kinds differ, e.g.
//
//	add(a int32, b int32)     -> (sum int32)
//	add(a float32, b float32) -> (sum float32)
//	add(a vec3, b vec3)       -> (sum vec3)
//
// Resolve picks the overload whose input kinds equal the static kinds of the
// wired inputs. When none matches it returns ErrNoMatchingOverload together
// with the reason every candidate was rejected, and a "did you mean" hint for
// unknown names.
//
// A Registry is an explicit object: graphs receive one, nothing is global.
// All methods are safe for concurrent use.
//
// Errors:
//
//   - ErrNoMatchingOverload  no overload accepts the given input kinds.
//   - ErrDuplicateOverload   an overload with the same signature already exists.
//   - ErrInvalidOverload     Register was given a malformed overload.
package registry
