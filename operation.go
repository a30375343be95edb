package latexexpr

import (
	"math"
	"strings"
)

// OpKind identifies a predefined operation.
type OpKind string

// Supported operation kinds. Prefer the factory functions (AddOf, DivOf,
// SqrtOf, …) over NewOperation with a raw kind.
const (
	OpAdd       OpKind = "+"
	OpSub       OpKind = "-"
	OpMul       OpKind = "*"
	OpDiv       OpKind = "/"  // stacked fraction, \frac{...}{...}
	OpDivInline OpKind = "//" // inline quotient, .../...
	OpNeg       OpKind = "neg"
	OpPos       OpKind = "pos"
	OpAbs       OpKind = "abs"
	OpMax       OpKind = "max"
	OpMin       OpKind = "min"
	OpPow       OpKind = "pow"
	OpSqr       OpKind = "sqr"
	OpRoot      OpKind = "root"
	OpSqrt      OpKind = "sqrt"
	OpSin       OpKind = "sin"
	OpCos       OpKind = "cos"
	OpTan       OpKind = "tan"
	OpSinh      OpKind = "sinh"
	OpCosh      OpKind = "cosh"
	OpTanh      OpKind = "tanh"
	OpExp       OpKind = "exp"
	OpLog       OpKind = "log"
	OpLn        OpKind = "ln"
	OpLog10     OpKind = "log10"
	OpBrackets  OpKind = "()"
	OpSBrackets OpKind = "[]"
	OpCBrackets OpKind = "{}"
	OpABrackets OpKind = "<>"
)

func (k OpKind) String() string { return string(k) }

// arity is the allowed operand-count range of a kind. max < 0 means
// unbounded.
type arity struct{ min, max int }

var opArities = map[OpKind]arity{
	OpAdd: {1, -1}, OpMul: {1, -1}, OpMax: {1, -1}, OpMin: {1, -1},

	OpSub: {2, 2}, OpDiv: {2, 2}, OpDivInline: {2, 2},
	OpPow: {2, 2}, OpRoot: {2, 2}, OpLog: {2, 2},

	OpNeg: {1, 1}, OpPos: {1, 1}, OpAbs: {1, 1}, OpSqr: {1, 1},
	OpSqrt: {1, 1}, OpSin: {1, 1}, OpCos: {1, 1}, OpTan: {1, 1},
	OpSinh: {1, 1}, OpCosh: {1, 1}, OpTanh: {1, 1}, OpExp: {1, 1},
	OpLn: {1, 1}, OpLog10: {1, 1},
	OpBrackets: {1, 1}, OpSBrackets: {1, 1}, OpCBrackets: {1, 1}, OpABrackets: {1, 1},
}

// Operation is an n-ary composite node: an operation kind applied to ordered
// operands. It never caches a numeric value; Value recomputes from current
// operand state on every call.
type Operation struct {
	// Kind selects the rendering template and evaluation rule.
	Kind OpKind
	// Operands are the child nodes, in template order.
	Operands []Node
	// Options formats the result form only; symbolic and substituted forms
	// are controlled by the leaves.
	Options RenderOptions
}

// NewOperation constructs an Operation of an arbitrary kind, validating the
// operand count against the kind's arity policy. It fails with *ArityError
// on a count violation and panics on an unknown kind, which is always a
// programming error.
func NewOperation(kind OpKind, operands ...Node) (*Operation, error) {
	a, ok := opArities[kind]
	if !ok {
		panic("latexexpr: unknown operation kind " + string(kind))
	}
	if len(operands) < a.min || (a.max >= 0 && len(operands) > a.max) {
		return nil, &ArityError{Kind: kind, Got: len(operands), Min: a.min, Max: a.max}
	}
	return &Operation{Kind: kind, Operands: operands, Options: DefaultRenderOptions()}, nil
}

// mustOperation backs the fixed-signature factories, whose operand counts
// are correct by construction.
func mustOperation(kind OpKind, operands ...Node) *Operation {
	op, err := NewOperation(kind, operands...)
	if err != nil {
		panic(err)
	}
	return op
}

// Precedence reports how tightly the rendered template binds. Self-grouping
// templates (fractions, functions, brackets) bind like atoms; the identity
// operation is as loose as its operand.
func (op *Operation) Precedence() Precedence {
	switch op.Kind {
	case OpAdd, OpSub:
		return PrecAdd
	case OpMul, OpDivInline:
		return PrecMul
	case OpPow, OpSqr:
		return PrecPow
	case OpPos:
		return op.Operands[0].Precedence()
	}
	return PrecAtom
}

// operandSymbolic renders an operand for use inside a template. In operand
// position an Expression stands for its name, like a variable, so
// expressions compose without inlining their definitions.
func operandSymbolic(n Node) string {
	if e, ok := n.(*Expression); ok {
		return "{" + e.Name + "}"
	}
	return n.StrSymbolic()
}

// operandSubstituted is the substituted-form counterpart of operandSymbolic.
func operandSubstituted(n Node) string {
	if e, ok := n.(*Expression); ok {
		return e.strSubstitutedLeaf()
	}
	return n.StrSubstituted()
}

// grouped brackets an operand rendering when the operand is an Operation
// whose template binds no tighter than the parent operator, i.e. whenever
// the combination would read ambiguously.
func grouped(n Node, rendered string, parent Precedence) string {
	if _, ok := n.(*Operation); !ok {
		return rendered
	}
	if n.Precedence() > parent {
		return rendered
	}
	return `\left( ` + rendered + ` \right)`
}

// strTemplate renders the operation's template with each operand rendered by
// render. Symbolic and substituted forms share the template; only the leaf
// rendering differs.
func (op *Operation) strTemplate(render func(Node) string) string {
	args := op.Operands
	switch op.Kind {
	case OpAdd, OpMul:
		sep := " + "
		if op.Kind == OpMul {
			sep = ` \cdot `
		}
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = grouped(a, render(a), op.Precedence())
		}
		return strings.Join(parts, sep)
	case OpMax, OpMin:
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = render(a)
		}
		return `\` + string(op.Kind) + `{\left( ` + strings.Join(parts, ", ") + ` \right)}`
	case OpSub:
		return grouped(args[0], render(args[0]), PrecAdd) + " - " + grouped(args[1], render(args[1]), PrecAdd)
	case OpDiv:
		return `\frac{ ` + render(args[0]) + ` }{ ` + render(args[1]) + ` }`
	case OpDivInline:
		return grouped(args[0], render(args[0]), PrecMul) + " / " + grouped(args[1], render(args[1]), PrecMul)
	case OpPow:
		return "{ " + grouped(args[0], render(args[0]), PrecPow) + ` }^{ ` + render(args[1]) + ` }`
	case OpRoot:
		return `\sqrt[ ` + render(args[0]) + ` ]{ ` + render(args[1]) + ` }`
	case OpLog:
		return `\log_{ ` + render(args[0]) + ` }{ ` + render(args[1]) + ` }`
	case OpNeg:
		// The minus binds only the first term visually, so a loose operand
		// keeps its own brackets inside the template's.
		return `\left( - ` + grouped(args[0], render(args[0]), PrecAdd) + ` \right)`
	case OpPos:
		return render(args[0])
	case OpAbs:
		return `\left| ` + render(args[0]) + ` \right|`
	case OpSqr:
		return grouped(args[0], render(args[0]), PrecPow) + "^2"
	case OpSqrt:
		return `\sqrt{ ` + render(args[0]) + ` }`
	case OpSin, OpCos, OpTan, OpSinh, OpCosh, OpTanh, OpLn:
		return `\` + string(op.Kind) + `{ ` + render(args[0]) + ` }`
	case OpExp:
		return `\mathrm{e}^{ ` + render(args[0]) + ` }`
	case OpLog10:
		return `\log_{10}{ ` + render(args[0]) + ` }`
	case OpBrackets:
		return `\left( ` + render(args[0]) + ` \right)`
	case OpSBrackets:
		return `\left[ ` + render(args[0]) + ` \right]`
	case OpCBrackets:
		return `\left\{ ` + render(args[0]) + ` \right\}`
	case OpABrackets:
		return `\left\langle ` + render(args[0]) + ` \right\rangle`
	}
	panic("latexexpr: unknown operation kind " + string(op.Kind))
}

// StrSymbolic renders operand names combined by the operation's template.
func (op *Operation) StrSymbolic() string {
	return op.strTemplate(operandSymbolic)
}

// StrSubstituted renders the same template with numeric values in place of
// names.
func (op *Operation) StrSubstituted() string {
	return op.strTemplate(operandSubstituted)
}

// Value recursively evaluates all operands and applies the operation's
// evaluation rule. An *UndefinedValueError from any operand propagates
// unchanged; a rule with no finite result for its operands fails with
// *DomainError.
func (op *Operation) Value() (float64, error) {
	vals := make([]float64, len(op.Operands))
	for i, a := range op.Operands {
		v, err := a.Value()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	res := op.apply(vals)
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, &DomainError{Kind: op.Kind, Operands: vals}
	}
	return res, nil
}

// apply is the pure evaluation rule over operand values. Domain violations
// surface as NaN/Inf from the underlying math and are classified by Value;
// they are not pre-checked.
func (op *Operation) apply(v []float64) float64 {
	switch op.Kind {
	case OpAdd:
		sum := 0.0
		for _, x := range v {
			sum += x
		}
		return sum
	case OpMul:
		prod := 1.0
		for _, x := range v {
			prod *= x
		}
		return prod
	case OpMax:
		m := v[0]
		for _, x := range v[1:] {
			m = math.Max(m, x)
		}
		return m
	case OpMin:
		m := v[0]
		for _, x := range v[1:] {
			m = math.Min(m, x)
		}
		return m
	case OpSub:
		return v[0] - v[1]
	case OpDiv, OpDivInline:
		return v[0] / v[1]
	case OpPow:
		return math.Pow(v[0], v[1])
	case OpRoot:
		return math.Pow(v[1], 1/v[0])
	case OpLog:
		return math.Log(v[1]) / math.Log(v[0])
	case OpNeg:
		return -v[0]
	case OpPos, OpBrackets, OpSBrackets, OpCBrackets, OpABrackets:
		return v[0]
	case OpAbs:
		return math.Abs(v[0])
	case OpSqr:
		return v[0] * v[0]
	case OpSqrt:
		return math.Sqrt(v[0])
	case OpSin:
		return math.Sin(v[0])
	case OpCos:
		return math.Cos(v[0])
	case OpTan:
		return math.Tan(v[0])
	case OpSinh:
		return math.Sinh(v[0])
	case OpCosh:
		return math.Cosh(v[0])
	case OpTanh:
		return math.Tanh(v[0])
	case OpExp:
		return math.Exp(v[0])
	case OpLn:
		return math.Log(v[0])
	case OpLog10:
		return math.Log10(v[0])
	}
	panic("latexexpr: unknown operation kind " + string(op.Kind))
}

// StrResult renders the formatted, exponent-scaled numeric result.
func (op *Operation) StrResult() (string, error) {
	v, err := op.Value()
	if err != nil {
		return "", err
	}
	return strValue(v, op.Options), nil
}

// String renders "symbolic = substituted", the form an anonymous
// sub-expression is quoted in inside a document.
func (op *Operation) String() string {
	return op.StrSymbolic() + " = " + op.StrSubstituted()
}

// ToVariable evaluates the receiver and snapshots the result into a new
// Variable. Unlike the live tree, the snapshot does not react to later
// operand reassignment.
func (op *Operation) ToVariable(name string, opts ...Option) (*Variable, error) {
	v, err := op.Value()
	if err != nil {
		return nil, err
	}
	return NewVariable(name, v, "", opts...), nil
}

// Arithmetic builders, mirroring those on Variable.

func (op *Operation) Add(other Node) *Operation       { return AddOf(op, other) }
func (op *Operation) Sub(other Node) *Operation       { return SubOf(op, other) }
func (op *Operation) Mul(other Node) *Operation       { return MulOf(op, other) }
func (op *Operation) Div(other Node) *Operation       { return DivOf(op, other) }
func (op *Operation) DivInline(other Node) *Operation { return DivInlineOf(op, other) }
func (op *Operation) Pow(other Node) *Operation       { return PowOf(op, other) }
func (op *Operation) Neg() *Operation                 { return NegOf(op) }
func (op *Operation) Abs() *Operation                 { return AbsOf(op) }
