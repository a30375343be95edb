package latexexpr

import (
	"fmt"
	"strconv"
)

// Precedence describes the strength of the glue holding a rendered
// sub-expression together. An infix parent brackets an operand whose own
// precedence is not strictly higher than the parent operator's.
type Precedence int

const (
	// PrecAdd is the precedence of sums and differences.
	PrecAdd Precedence = iota
	// PrecMul is the precedence of products and inline quotients.
	PrecMul
	// PrecPow is the precedence of powers.
	PrecPow
	// PrecAtom is the precedence of leaves and self-grouping templates
	// (fractions, function calls, bracket wrappers).
	PrecAtom
)

// A Node is anything renderable in symbolic, substituted and result form and
// evaluable to a number. Variable, Operation and Expression implement it.
//
// Value never caches: every call recomputes from current leaf values, so a
// later Variable reassignment is reflected automatically. Rendering calls
// read current state the same way.
type Node interface {
	// Value evaluates the node. It fails with *UndefinedValueError if any
	// reachable Variable has no assigned value, and with *DomainError if an
	// evaluation rule has no finite result for its operands.
	Value() (float64, error)
	// StrSymbolic renders names and operators only.
	StrSymbolic() string
	// StrSubstituted renders the same structure with numeric values in place
	// of names.
	StrSubstituted() string
	// Precedence reports how tightly the rendered form binds.
	Precedence() Precedence

	fmt.Stringer
}

// Num wraps a numeric literal into an anonymous unit-less Variable so it can
// appear as an operand. The display name is the shortest representation of
// the value and the format follows it, so Num(4) renders as "4", not "4.00".
func Num(v float64) *Variable {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	return NewVariable(s, v, "", WithFormat("%g"))
}
