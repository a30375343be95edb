// Package simplify rewrites latexexpr operation trees into equivalent,
// shorter trees: nested sums and products are flattened, numeric leaves are
// folded, and like terms are collected by symbol name. The rewritten tree
// satisfies the Node contract and nothing else, so it can be rendered and
// evaluated exactly like the original.
//
// Rewriting is deterministic: collected terms are emitted in sorted symbolic
// order with the numeric remainder last.
package simplify

import (
	"sort"
	"strconv"

	"github.com/njchilds90/latexexpr"
)

type config struct {
	substituteFloats bool
}

// An Option adjusts how aggressively trees are rewritten.
type Option func(*config)

// SubstituteFloats folds every Variable with an assigned value into its
// numeric value before collection, instead of keeping named variables
// symbolic.
func SubstituteFloats() Option {
	return func(c *config) { c.substituteFloats = true }
}

// Simplify returns an equivalent, canonicalized tree. The input tree is not
// modified.
func Simplify(n latexexpr.Node, opts ...Option) latexexpr.Node {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c.simplify(n)
}

// SimplifyExpression rewrites the expression's owned tree in place, keeping
// its name, unit and formatting.
func SimplifyExpression(e *latexexpr.Expression, opts ...Option) {
	e.Root = Simplify(e.Root, opts...)
}

// term is one summand of a flattened sum: a numeric coefficient applied to a
// product of non-numeric factors. An empty factor list is a pure constant.
type term struct {
	coeff   float64
	factors []latexexpr.Node
	key     string
}

func (c *config) simplify(n latexexpr.Node) latexexpr.Node {
	op, ok := n.(*latexexpr.Operation)
	if !ok {
		return n
	}
	switch op.Kind {
	case latexexpr.OpAdd, latexexpr.OpSub, latexexpr.OpNeg:
		return c.rebuildSum(c.collectTerms(n, 1))
	case latexexpr.OpMul:
		coeff, factors := c.collectFactors(n)
		return rebuildProduct(coeff, factors)
	case latexexpr.OpPos, latexexpr.OpBrackets, latexexpr.OpSBrackets, latexexpr.OpCBrackets, latexexpr.OpABrackets:
		// Presentational wrappers dissolve under rewriting.
		return c.simplify(op.Operands[0])
	}
	return c.rebuildOther(op)
}

// collectTerms flattens n into weighted summands. sign carries subtraction
// and negation down the walk.
func (c *config) collectTerms(n latexexpr.Node, sign float64) []term {
	if op, ok := n.(*latexexpr.Operation); ok {
		switch op.Kind {
		case latexexpr.OpAdd:
			var ts []term
			for _, a := range op.Operands {
				ts = append(ts, c.collectTerms(a, sign)...)
			}
			return ts
		case latexexpr.OpSub:
			ts := c.collectTerms(op.Operands[0], sign)
			return append(ts, c.collectTerms(op.Operands[1], -sign)...)
		case latexexpr.OpNeg:
			return c.collectTerms(op.Operands[0], -sign)
		case latexexpr.OpPos, latexexpr.OpBrackets, latexexpr.OpSBrackets, latexexpr.OpCBrackets, latexexpr.OpABrackets:
			return c.collectTerms(op.Operands[0], sign)
		}
	}
	coeff, factors := c.collectFactors(n)
	return []term{{coeff: sign * coeff, factors: factors, key: productKey(factors)}}
}

// collectFactors flattens n into a numeric coefficient and remaining
// symbolic factors, folding foldable leaves.
func (c *config) collectFactors(n latexexpr.Node) (float64, []latexexpr.Node) {
	if op, ok := n.(*latexexpr.Operation); ok && op.Kind == latexexpr.OpMul {
		coeff := 1.0
		var factors []latexexpr.Node
		for _, a := range op.Operands {
			ac, af := c.collectFactors(a)
			coeff *= ac
			factors = append(factors, af...)
		}
		return coeff, factors
	}
	s := c.simplify(n)
	if v, ok := c.foldable(s); ok {
		return v, nil
	}
	return 1, []latexexpr.Node{s}
}

// foldable reports the numeric value of leaves that may be replaced by it:
// literal numbers always, valued Variables under SubstituteFloats.
func (c *config) foldable(n latexexpr.Node) (float64, bool) {
	v, ok := n.(*latexexpr.Variable)
	if !ok || !v.IsDefined() {
		return 0, false
	}
	val, err := v.Value()
	if err != nil {
		return 0, false
	}
	if c.substituteFloats || isLiteral(v, val) {
		return val, true
	}
	return 0, false
}

// isLiteral recognizes the anonymous wrappers produced by latexexpr.Num,
// whose name is the shortest representation of their value.
func isLiteral(v *latexexpr.Variable, val float64) bool {
	return v.Name == strconv.FormatFloat(val, 'g', -1, 64)
}

// rebuildOther simplifies the operands of a non-sum, non-product operation
// and folds the whole node when every operand folded to a number.
func (c *config) rebuildOther(op *latexexpr.Operation) latexexpr.Node {
	operands := make([]latexexpr.Node, len(op.Operands))
	numeric := true
	for i, a := range op.Operands {
		s := c.simplify(a)
		if v, ok := c.foldable(s); ok {
			s = latexexpr.Num(v)
		} else {
			numeric = false
		}
		operands[i] = s
	}
	rebuilt, err := latexexpr.NewOperation(op.Kind, operands...)
	if err != nil {
		// Arity is unchanged from a valid operation.
		panic(err)
	}
	rebuilt.Options = op.Options
	if numeric {
		if v, err := rebuilt.Value(); err == nil {
			return latexexpr.Num(v)
		}
	}
	return rebuilt
}

func (c *config) rebuildSum(ts []term) latexexpr.Node {
	// Collect like terms by factor key; constants accumulate separately and
	// come last, matching canonical ordering.
	byKey := map[string]*term{}
	var order []string
	constant := 0.0
	for i := range ts {
		t := ts[i]
		if len(t.factors) == 0 {
			constant += t.coeff
			continue
		}
		if prev, seen := byKey[t.key]; seen {
			prev.coeff += t.coeff
			continue
		}
		byKey[t.key] = &t
		order = append(order, t.key)
	}
	sort.Strings(order)

	var parts []latexexpr.Node
	for _, k := range order {
		t := byKey[k]
		if t.coeff == 0 {
			continue
		}
		parts = append(parts, rebuildProduct(t.coeff, t.factors))
	}
	if constant != 0 || len(parts) == 0 {
		parts = append(parts, latexexpr.Num(constant))
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return latexexpr.AddOf(parts[0], parts[1:]...)
}

func rebuildProduct(coeff float64, factors []latexexpr.Node) latexexpr.Node {
	if coeff == 0 || len(factors) == 0 {
		return latexexpr.Num(coeff)
	}
	sorted := make([]latexexpr.Node, len(factors))
	copy(sorted, factors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return symbolKey(sorted[i]) < symbolKey(sorted[j])
	})
	var parts []latexexpr.Node
	switch {
	case coeff == 1:
	case coeff == -1 && len(sorted) == 1:
		return latexexpr.NegOf(sorted[0])
	default:
		parts = append(parts, latexexpr.Num(coeff))
	}
	parts = append(parts, sorted...)
	if len(parts) == 1 {
		return parts[0]
	}
	return latexexpr.MulOf(parts[0], parts[1:]...)
}

// productKey is a stable identity for a factor list, used to collect like
// terms.
func productKey(factors []latexexpr.Node) string {
	keys := make([]string, len(factors))
	for i, f := range factors {
		keys[i] = symbolKey(f)
	}
	sort.Strings(keys)
	key := ""
	for _, k := range keys {
		key += k + "\x00"
	}
	return key
}

// symbolKey is the rendering identity of a node in operand position.
func symbolKey(n latexexpr.Node) string {
	if e, ok := n.(*latexexpr.Expression); ok {
		return "{" + e.Name + "}"
	}
	return n.StrSymbolic()
}
