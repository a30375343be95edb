package latexexpr

import "math"

// Variable represents a mathematical or physical variable: a symbolic name,
// an optional scalar value, a unit label and rendering options. It is the
// fundamental building block of operations and expressions.
//
// A Variable may be declared without a value (NewSymbol) and assigned later
// with SetValue; evaluating it while unassigned fails with
// *UndefinedValueError rather than defaulting to zero.
type Variable struct {
	// Name is the symbolic name, used verbatim in symbolic rendering and as
	// the variable-store key.
	Name string
	// Unit is an opaque label, never interpreted, only typeset.
	Unit string
	// Options controls value and unit formatting.
	Options RenderOptions

	value *float64
}

// NewVariable returns a Variable with an assigned value.
func NewVariable(name string, value float64, unit string, opts ...Option) *Variable {
	v := value
	return &Variable{
		Name:    name,
		Unit:    unit,
		Options: applyOptions(DefaultRenderOptions(), opts),
		value:   &v,
	}
}

// NewSymbol returns a Variable that is declared but not yet assigned.
func NewSymbol(name, unit string, opts ...Option) *Variable {
	return &Variable{
		Name:    name,
		Unit:    unit,
		Options: applyOptions(DefaultRenderOptions(), opts),
	}
}

// SetValue assigns or reassigns the value. Trees already containing the
// receiver pick the new value up on their next evaluation or rendering.
func (v *Variable) SetValue(value float64) {
	v.value = &value
}

// ClearValue removes the assigned value, returning the receiver to the
// declared-but-unassigned state.
func (v *Variable) ClearValue() { v.value = nil }

// IsDefined reports whether a value is assigned.
func (v *Variable) IsDefined() bool { return v.value != nil }

// Value returns the assigned value, or *UndefinedValueError if there is none.
func (v *Variable) Value() (float64, error) {
	if v.value == nil {
		return 0, &UndefinedValueError{Name: v.Name}
	}
	return *v.value, nil
}

// Precedence reports PrecAtom; a name or a number never needs brackets.
func (v *Variable) Precedence() Precedence { return PrecAtom }

// StrSymbolic renders the name inside an inert math-mode group.
func (v *Variable) StrSymbolic() string { return "{" + v.Name + "}" }

// StrSubstituted renders the formatted value. Substitution is a no-op beyond
// formatting for a leaf, so the text equals StrResult. An unassigned
// Variable renders symbolically instead, keeping partially defined trees
// printable.
func (v *Variable) StrSubstituted() string {
	if v.value == nil {
		return v.StrSymbolic()
	}
	return strValue(*v.value, v.Options)
}

// StrResult renders the formatted, exponent-scaled value without name or
// unit.
func (v *Variable) StrResult() (string, error) {
	val, err := v.Value()
	if err != nil {
		return "", err
	}
	return strValue(val, v.Options), nil
}

// StrResultWithUnit renders the formatted value followed by the unit label.
func (v *Variable) StrResultWithUnit() (string, error) {
	val, err := v.Value()
	if err != nil {
		return "", err
	}
	return strValueWithUnit(val, v.Unit, v.Options), nil
}

// String renders "name = value unit". An unassigned Variable renders as its
// bare symbolic name.
func (v *Variable) String() string {
	ru, err := v.StrResultWithUnit()
	if err != nil {
		return v.StrSymbolic()
	}
	return v.Name + " = " + ru
}

// Copy returns an independent copy of the receiver. The copy does not share
// value storage with the original.
func (v *Variable) Copy() *Variable {
	c := &Variable{Name: v.Name, Unit: v.Unit, Options: v.Options}
	if v.value != nil {
		val := *v.value
		c.value = &val
	}
	return c
}

// Arithmetic builders. Each returns a new Operation wired to the receiver
// and the other operand; nothing is evaluated and the receiver is never
// mutated.

func (v *Variable) Add(other Node) *Operation       { return AddOf(v, other) }
func (v *Variable) Sub(other Node) *Operation       { return SubOf(v, other) }
func (v *Variable) Mul(other Node) *Operation       { return MulOf(v, other) }
func (v *Variable) Div(other Node) *Operation       { return DivOf(v, other) }
func (v *Variable) DivInline(other Node) *Operation { return DivInlineOf(v, other) }
func (v *Variable) Pow(other Node) *Operation       { return PowOf(v, other) }
func (v *Variable) Neg() *Operation                 { return NegOf(v) }
func (v *Variable) Abs() *Operation                 { return AbsOf(v) }

// Predefined constants.
var (
	// Zero is the literal 0.
	Zero = NewVariable("0", 0, "", WithFormat("%.0f"))
	// One is the literal 1.
	One = NewVariable("1", 1, "", WithFormat("%.0f"))
	// Two is the literal 2.
	Two = NewVariable("2", 2, "", WithFormat("%.0f"))
	// E is Euler's number.
	E = NewVariable(`\mathrm{e}`, math.E, "")
	// Pi is the circle constant.
	Pi = NewVariable(`\pi`, math.Pi, "")
)
