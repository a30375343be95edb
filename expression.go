package latexexpr

// Expression is a named, unit-labeled wrapper around one root node, usually
// an Operation. It offers the same rendering contract as Variable, so a
// defined expression can stand in for a variable inside further trees.
type Expression struct {
	// Name is the symbolic name of the defined quantity.
	Name string
	// Root is the owned expression tree.
	Root Node
	// Unit is an opaque label, never interpreted.
	Unit string
	// Options formats the result form.
	Options RenderOptions
}

// NewExpression names an expression tree as a defined quantity.
func NewExpression(name string, root Node, unit string, opts ...Option) *Expression {
	return &Expression{
		Name:    name,
		Root:    root,
		Unit:    unit,
		Options: applyOptions(DefaultRenderOptions(), opts),
	}
}

// Value evaluates the owned tree.
func (e *Expression) Value() (float64, error) { return e.Root.Value() }

// Precedence reports PrecAtom; in operand position an expression renders as
// its name.
func (e *Expression) Precedence() Precedence { return PrecAtom }

// StrSymbolic renders the defining equation "name = <symbolic form of the
// tree>".
func (e *Expression) StrSymbolic() string {
	return "{" + e.Name + "} = " + e.Root.StrSymbolic()
}

// StrSubstituted renders "name = <tree with numeric values substituted>".
func (e *Expression) StrSubstituted() string {
	return "{" + e.Name + "} = " + e.Root.StrSubstituted()
}

// strSubstitutedLeaf renders the receiver the way a Variable leaf renders in
// substituted form: the formatted result, or the bare name while the tree is
// not fully defined. Operation templates use this when the receiver appears
// as an operand.
func (e *Expression) strSubstitutedLeaf() string {
	v, err := e.Value()
	if err != nil {
		return "{" + e.Name + "}"
	}
	return strValue(v, e.Options)
}

// StrResult renders the formatted, exponent-scaled result without name or
// unit.
func (e *Expression) StrResult() (string, error) {
	v, err := e.Value()
	if err != nil {
		return "", err
	}
	return strValue(v, e.Options), nil
}

// StrResultWithUnit renders the formatted result followed by the unit label.
func (e *Expression) StrResultWithUnit() (string, error) {
	v, err := e.Value()
	if err != nil {
		return "", err
	}
	return strValueWithUnit(v, e.Unit, e.Options), nil
}

// StrFull renders the four-part chain
// "name = symbolic = substituted = result unit", the complete derivation of
// a quantity as shown in a document.
func (e *Expression) StrFull() (string, error) {
	ru, err := e.StrResultWithUnit()
	if err != nil {
		return "", err
	}
	return e.Name + " = " + e.Root.StrSymbolic() + " = " + e.Root.StrSubstituted() + " = " + ru, nil
}

// String renders the result form "name = value unit", matching Variable's
// default. While the tree is not fully defined it falls back to the symbolic
// definition.
func (e *Expression) String() string {
	ru, err := e.StrResultWithUnit()
	if err != nil {
		return e.StrSymbolic()
	}
	return e.Name + " = " + ru
}

// ToVariable snapshots the receiver into a new Variable carrying the same
// name (or newName, if non-empty), unit and formatting.
func (e *Expression) ToVariable(newName string) (*Variable, error) {
	v, err := e.Value()
	if err != nil {
		return nil, err
	}
	name := e.Name
	if newName != "" {
		name = newName
	}
	ret := NewVariable(name, v, e.Unit)
	ret.Options = e.Options
	return ret, nil
}

// Arithmetic builders, mirroring those on Variable.

func (e *Expression) Add(other Node) *Operation       { return AddOf(e, other) }
func (e *Expression) Sub(other Node) *Operation       { return SubOf(e, other) }
func (e *Expression) Mul(other Node) *Operation       { return MulOf(e, other) }
func (e *Expression) Div(other Node) *Operation       { return DivOf(e, other) }
func (e *Expression) DivInline(other Node) *Operation { return DivInlineOf(e, other) }
func (e *Expression) Pow(other Node) *Operation       { return PowOf(e, other) }
func (e *Expression) Neg() *Operation                 { return NegOf(e) }
func (e *Expression) Abs() *Operation                 { return AbsOf(e) }
