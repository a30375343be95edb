package latexexpr

// Predefined operation factories. Each returns a new Operation preconfigured
// with the kind's template, arity and evaluation rule. Arity policies are
// enforced by the signatures; NewOperation remains for callers that build
// trees dynamically from data.

// AddOf returns the sum first + rest[0] + … + rest[last].
func AddOf(first Node, rest ...Node) *Operation {
	return mustOperation(OpAdd, prepend(first, rest)...)
}

// SumOf is an alias for AddOf.
func SumOf(first Node, rest ...Node) *Operation { return AddOf(first, rest...) }

// SubOf returns the difference a - b.
func SubOf(a, b Node) *Operation { return mustOperation(OpSub, a, b) }

// MulOf returns the product first \cdot rest[0] \cdot … \cdot rest[last].
func MulOf(first Node, rest ...Node) *Operation {
	return mustOperation(OpMul, prepend(first, rest)...)
}

// TimesOf is an alias for MulOf.
func TimesOf(first Node, rest ...Node) *Operation { return MulOf(first, rest...) }

// DivOf returns the quotient a / b typeset as a stacked fraction,
// \frac{ a }{ b }.
func DivOf(a, b Node) *Operation { return mustOperation(OpDiv, a, b) }

// DivInlineOf returns the quotient a / b typeset inline, a / b.
func DivInlineOf(a, b Node) *Operation { return mustOperation(OpDivInline, a, b) }

// PowOf returns the power a^b.
func PowOf(a, b Node) *Operation { return mustOperation(OpPow, a, b) }

// RootOf returns the n-th root of x, \sqrt[ n ]{ x }, evaluated as x^(1/n).
func RootOf(n, x Node) *Operation { return mustOperation(OpRoot, n, x) }

// LogOf returns the base-b logarithm of x, \log_{ b }{ x }, evaluated as
// ln x / ln b.
func LogOf(b, x Node) *Operation { return mustOperation(OpLog, b, x) }

// MaxOf returns the maximum of its operands.
func MaxOf(first Node, rest ...Node) *Operation {
	return mustOperation(OpMax, prepend(first, rest)...)
}

// MinOf returns the minimum of its operands.
func MinOf(first Node, rest ...Node) *Operation {
	return mustOperation(OpMin, prepend(first, rest)...)
}

// NegOf returns the negation \left( - a \right).
func NegOf(a Node) *Operation { return mustOperation(OpNeg, a) }

// PosOf returns the identity operation, which renders and evaluates as its
// operand.
func PosOf(a Node) *Operation { return mustOperation(OpPos, a) }

// AbsOf returns the absolute value \left| a \right|.
func AbsOf(a Node) *Operation { return mustOperation(OpAbs, a) }

// SqrOf returns the square a^2.
func SqrOf(a Node) *Operation { return mustOperation(OpSqr, a) }

// SqrtOf returns the square root \sqrt{ a }.
func SqrtOf(a Node) *Operation { return mustOperation(OpSqrt, a) }

// SinOf returns \sin{ a }.
func SinOf(a Node) *Operation { return mustOperation(OpSin, a) }

// CosOf returns \cos{ a }.
func CosOf(a Node) *Operation { return mustOperation(OpCos, a) }

// TanOf returns \tan{ a }.
func TanOf(a Node) *Operation { return mustOperation(OpTan, a) }

// SinhOf returns \sinh{ a }.
func SinhOf(a Node) *Operation { return mustOperation(OpSinh, a) }

// CoshOf returns \cosh{ a }.
func CoshOf(a Node) *Operation { return mustOperation(OpCosh, a) }

// TanhOf returns \tanh{ a }.
func TanhOf(a Node) *Operation { return mustOperation(OpTanh, a) }

// ExpOf returns base-e exponentiation \mathrm{e}^{ a }.
func ExpOf(a Node) *Operation { return mustOperation(OpExp, a) }

// LnOf returns the natural logarithm \ln{ a }.
func LnOf(a Node) *Operation { return mustOperation(OpLn, a) }

// Log10Of returns the decadic logarithm \log_{10}{ a }.
func Log10Of(a Node) *Operation { return mustOperation(OpLog10, a) }

// BracketsOf wraps a in round brackets. Purely presentational: evaluation is
// the identity.
func BracketsOf(a Node) *Operation { return mustOperation(OpBrackets, a) }

// SBracketsOf wraps a in square brackets.
func SBracketsOf(a Node) *Operation { return mustOperation(OpSBrackets, a) }

// CBracketsOf wraps a in curly brackets.
func CBracketsOf(a Node) *Operation { return mustOperation(OpCBrackets, a) }

// ABracketsOf wraps a in angle brackets.
func ABracketsOf(a Node) *Operation { return mustOperation(OpABrackets, a) }

func prepend(first Node, rest []Node) []Node {
	return append([]Node{first}, rest...)
}
