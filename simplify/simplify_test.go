package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/latexexpr"
	"github.com/njchilds90/latexexpr/simplify"
)

func TestSimplify_CollectsLikeTerms(t *testing.T) {
	v1 := latexexpr.NewSymbol("v_1", "")
	v2 := latexexpr.NewSymbol("v_2", "")

	got := simplify.Simplify(latexexpr.AddOf(v1, v1, v2, v2, v2))
	assert.Equal(t, `{2} \cdot {v_1} + {3} \cdot {v_2}`, got.StrSymbolic())
}

func TestSimplify_SortsTermsAndFoldsConstantsLast(t *testing.T) {
	v1 := latexexpr.NewSymbol("v_1", "")
	v2 := latexexpr.NewSymbol("v_2", "")

	got := simplify.Simplify(latexexpr.AddOf(v2, latexexpr.Num(2), v1, latexexpr.Num(3)))
	assert.Equal(t, `{v_1} + {v_2} + {5}`, got.StrSymbolic())
}

func TestSimplify_CancellationYieldsZero(t *testing.T) {
	v := latexexpr.NewSymbol("v", "")

	got := simplify.Simplify(latexexpr.SubOf(v, v))
	assert.Equal(t, `{0}`, got.StrSymbolic())

	val, err := got.Value()
	require.NoError(t, err)
	assert.Equal(t, 0.0, val)
}

func TestSimplify_SubtractionBecomesNegation(t *testing.T) {
	v := latexexpr.NewSymbol("v_1", "")

	got := simplify.Simplify(latexexpr.SubOf(latexexpr.Num(0), v))
	assert.Equal(t, `\left( - {v_1} \right)`, got.StrSymbolic())
}

func TestSimplify_FlattensProducts(t *testing.T) {
	a := latexexpr.NewSymbol("a", "")
	b := latexexpr.NewSymbol("b", "")

	got := simplify.Simplify(latexexpr.MulOf(latexexpr.Num(2), latexexpr.MulOf(a, latexexpr.Num(3), b)))
	assert.Equal(t, `{6} \cdot {a} \cdot {b}`, got.StrSymbolic())
}

func TestSimplify_DissolvesPresentationalWrappers(t *testing.T) {
	a := latexexpr.NewSymbol("a", "")
	b := latexexpr.NewSymbol("b", "")

	got := simplify.Simplify(latexexpr.BracketsOf(latexexpr.AddOf(a, latexexpr.PosOf(b))))
	assert.Equal(t, `{a} + {b}`, got.StrSymbolic())
}

func TestSimplify_FoldsNumericOperations(t *testing.T) {
	got := simplify.Simplify(latexexpr.SqrtOf(latexexpr.Num(4)))
	assert.Equal(t, `{2}`, got.StrSymbolic())

	got = simplify.Simplify(latexexpr.PowOf(latexexpr.Num(2), latexexpr.Num(3)))
	assert.Equal(t, `{8}`, got.StrSymbolic())
}

func TestSimplify_KeepsSymbolicOperandsUnfolded(t *testing.T) {
	x := latexexpr.NewSymbol("x", "")

	got := simplify.Simplify(latexexpr.SqrtOf(x))
	assert.Equal(t, `\sqrt{ {x} }`, got.StrSymbolic())
}

func TestSimplify_SubstituteFloats(t *testing.T) {
	v3 := latexexpr.NewVariable("v_3", 1.5, "")
	v4 := latexexpr.NewVariable("v_4", 4.5, "")

	plain := simplify.Simplify(latexexpr.SubOf(v3, v4))
	// Without substitution the rewrite keeps both symbols; subtraction comes
	// back as an added negation.
	assert.Equal(t, `{v_3} + \left( - {v_4} \right)`, plain.StrSymbolic())

	folded := simplify.Simplify(latexexpr.SubOf(v3, v4), simplify.SubstituteFloats())
	assert.Equal(t, `{-3}`, folded.StrSymbolic())

	val, err := folded.Value()
	require.NoError(t, err)
	assert.Equal(t, -3.0, val)
}

func TestSimplify_PreservesValue(t *testing.T) {
	a := latexexpr.NewVariable("a", 2.5, "")
	b := latexexpr.NewVariable("b", 4, "")

	tree := latexexpr.AddOf(
		latexexpr.MulOf(latexexpr.Num(2), a),
		latexexpr.SubOf(b, a),
		latexexpr.NegOf(latexexpr.MulOf(a, latexexpr.Num(3))),
		latexexpr.SqrtOf(latexexpr.Num(16)),
	)
	want, err := tree.Value()
	require.NoError(t, err)

	got, err := simplify.Simplify(tree).Value()
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

func TestSimplify_LeavesUndefinedLeavesAlone(t *testing.T) {
	x := latexexpr.NewSymbol("x", "")

	got := simplify.Simplify(latexexpr.AddOf(x, x), simplify.SubstituteFloats())
	assert.Equal(t, `{2} \cdot {x}`, got.StrSymbolic())
}

func TestSimplifyExpression_RewritesInPlace(t *testing.T) {
	v := latexexpr.NewVariable("v_1", 3, "m")
	e := latexexpr.NewExpression("s", latexexpr.AddOf(v, v, v), "m")

	simplify.SimplifyExpression(e)

	assert.Equal(t, `{s} = {3} \cdot {v_1}`, e.StrSymbolic())
	val, err := e.Value()
	require.NoError(t, err)
	assert.Equal(t, 9.0, val)
}
