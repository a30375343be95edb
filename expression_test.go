package latexexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/latexexpr"
)

func TestExpression_DivideScenario(t *testing.T) {
	a := latexexpr.NewVariable("a", 4, "m")
	b := latexexpr.NewVariable("b", 2, "m")
	e := latexexpr.NewExpression("c", latexexpr.DivOf(a, b), "")

	val, err := e.Value()
	require.NoError(t, err)
	assert.Equal(t, 2.0, val)

	sym := e.StrSymbolic()
	assert.Contains(t, sym, "{c} = ")
	assert.Contains(t, sym, `\frac{ {a} }{ {b} }`)

	assert.Equal(t, `{c} = \frac{ 4.00 }{ 2.00 }`, e.StrSubstituted())
	assert.Equal(t, `c = 2.00 \ \mathrm{}`, e.String())
}

func TestExpression_StrFullChain(t *testing.T) {
	r := latexexpr.NewVariable("r", 3, "m")
	f := latexexpr.NewVariable("F", 4, "kN")
	m := latexexpr.NewExpression("M", r.Mul(f), "kNm")

	full, err := m.StrFull()
	require.NoError(t, err)
	assert.Equal(t, `M = {r} \cdot {F} = 3.00 \cdot 4.00 = 12.00 \ \mathrm{kNm}`, full)
}

func TestExpression_RendersLikeVariableInOperandPosition(t *testing.T) {
	v1 := latexexpr.NewVariable("v_1", 3.45, "mm")
	v2 := latexexpr.NewVariable("v_2", 5.88, "kN")
	e2 := latexexpr.NewExpression("E_2", latexexpr.AddOf(v1, v2), "mm")

	// Composed into a larger tree, the expression stands for its name and
	// its computed value, exactly like a variable.
	outer := latexexpr.MulOf(e2, v1)
	assert.Equal(t, `{E_2} \cdot {v_1}`, outer.StrSymbolic())
	assert.Equal(t, `9.33 \cdot 3.45`, outer.StrSubstituted())
}

func TestExpression_WrapsBareVariable(t *testing.T) {
	v := latexexpr.NewVariable("v", 1.5, "m")
	e := latexexpr.NewExpression("w", v, "m")

	val, err := e.Value()
	require.NoError(t, err)
	assert.Equal(t, 1.5, val)
	assert.Equal(t, "{w} = {v}", e.StrSymbolic())
}

func TestExpression_UndefinedTreeFallsBackToSymbolic(t *testing.T) {
	x := latexexpr.NewSymbol("x", "")
	e := latexexpr.NewExpression("y", latexexpr.SqrOf(x), "")

	_, err := e.Value()
	var undef *latexexpr.UndefinedValueError
	require.ErrorAs(t, err, &undef)

	assert.Equal(t, "{y} = {x}^2", e.String())

	// In operand position an unevaluable expression keeps its name.
	outer := latexexpr.AddOf(e, latexexpr.Num(1))
	assert.Equal(t, "{y} + 1", outer.StrSubstituted())
}

func TestExpression_OptionsApplyToResult(t *testing.T) {
	a := latexexpr.NewVariable("a", 1250, "Pa")
	e := latexexpr.NewExpression("p", latexexpr.PosOf(a), "Pa",
		latexexpr.WithExponent(3), latexexpr.WithFormat("%.3f"))

	res, err := e.StrResult()
	require.NoError(t, err)
	assert.Equal(t, `{ 1.250 \cdot 10^{3} }`, res)
}

func TestExpression_ToVariable(t *testing.T) {
	a := latexexpr.NewVariable("a", 4, "m")
	b := latexexpr.NewVariable("b", 2, "m")
	e := latexexpr.NewExpression("q", latexexpr.DivOf(a, b), "m")

	v, err := e.ToVariable("")
	require.NoError(t, err)
	assert.Equal(t, "q", v.Name)
	assert.Equal(t, "m", v.Unit)
	val, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, 2.0, val)

	renamed, err := e.ToVariable("q_2")
	require.NoError(t, err)
	assert.Equal(t, "q_2", renamed.Name)
}

func TestExpression_BuilderMethods(t *testing.T) {
	a := latexexpr.NewVariable("a", 4, "")
	e := latexexpr.NewExpression("q", latexexpr.SqrOf(a), "")

	op := e.Add(latexexpr.Num(1))
	got, err := op.Value()
	require.NoError(t, err)
	assert.Equal(t, 17.0, got)
	assert.Equal(t, "{q} + {1}", op.StrSymbolic())
}

func TestExpression_DomainErrorPropagates(t *testing.T) {
	n := latexexpr.NewVariable("n", -4, "")
	e := latexexpr.NewExpression("s", latexexpr.SqrtOf(n), "")

	_, err := e.Value()
	var domain *latexexpr.DomainError
	assert.ErrorAs(t, err, &domain)
	_, err = e.StrResult()
	assert.ErrorAs(t, err, &domain)
}
