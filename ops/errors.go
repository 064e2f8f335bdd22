package ops

import "errors"

var (
	// ErrInvalidArgument indicates an argument outside the domain of an
	// operator, e.g. a negative count or a negative combination size.
	ErrInvalidArgument = errors.New("ops: invalid argument")

	// ErrDivisionByZero indicates integer division by zero.
	ErrDivisionByZero = errors.New("ops: division by zero")
)
