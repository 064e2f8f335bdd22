package registry

import "errors"

var (
	// ErrNoMatchingOverload indicates that no overload registered under a name
	// accepts the given input kinds and output count.
	ErrNoMatchingOverload = errors.New("registry: no matching overload")

	// ErrDuplicateOverload indicates an overload with the same name, input kinds
	// and output count is already registered.
	ErrDuplicateOverload = errors.New("registry: duplicate overload")

	// ErrInvalidOverload indicates a malformed overload passed to Register.
	ErrInvalidOverload = errors.New("registry: invalid overload")
)
