package latexexpr

import (
	"fmt"
	"strconv"
)

// UndefinedValueError is an error indicating that numeric evaluation reached
// a Variable that has no assigned value.
type UndefinedValueError struct {
	// Name is the symbolic name of the unassigned variable.
	Name string
}

func (err *UndefinedValueError) Error() string {
	return "latexexpr: variable " + strconv.Quote(err.Name) + " has no assigned value"
}

// ArityError is an error indicating that an operation factory received a
// number of operands outside the allowed range for its kind.
type ArityError struct {
	// Kind is the operation kind.
	Kind OpKind
	// Got is the number of operands supplied.
	Got int
	// Min and Max bound the allowed operand count. Max < 0 means unbounded.
	Min, Max int
}

func (err *ArityError) Error() string {
	if err.Max < 0 {
		return fmt.Sprintf("latexexpr: operation %s needs at least %d operand(s), got %d", err.Kind, err.Min, err.Got)
	}
	if err.Min == err.Max {
		return fmt.Sprintf("latexexpr: operation %s needs exactly %d operand(s), got %d", err.Kind, err.Min, err.Got)
	}
	return fmt.Sprintf("latexexpr: operation %s needs %d to %d operands, got %d", err.Kind, err.Min, err.Max, err.Got)
}

// DomainError is an error indicating that an evaluation rule produced no
// finite result for its operands, e.g. division by zero, the square root of
// a negative number or the logarithm of a non-positive number.
type DomainError struct {
	// Kind is the operation whose evaluation failed.
	Kind OpKind
	// Operands are the numeric operand values the rule was applied to.
	Operands []float64
}

func (err *DomainError) Error() string {
	return fmt.Sprintf("latexexpr: operation %s is undefined for operands %v", err.Kind, err.Operands)
}

// StoreCorruptError is an error indicating that a variable-store file could
// not be parsed on load.
type StoreCorruptError struct {
	// Path is the store file.
	Path string
	// Err is the underlying parse failure, if any.
	Err error
}

func (err *StoreCorruptError) Error() string {
	if err.Err == nil {
		return "latexexpr: corrupt variable store " + strconv.Quote(err.Path)
	}
	return "latexexpr: corrupt variable store " + strconv.Quote(err.Path) + ": " + err.Err.Error()
}

func (err *StoreCorruptError) Unwrap() error { return err.Err }
