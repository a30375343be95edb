package latexexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/latexexpr"
)

func TestVariable_DefaultRendering(t *testing.T) {
	v := latexexpr.NewVariable("H", 3.25, "m")

	assert.Equal(t, "{H}", v.StrSymbolic())

	res, err := v.StrResult()
	require.NoError(t, err)
	assert.Equal(t, "3.25", res)

	ru, err := v.StrResultWithUnit()
	require.NoError(t, err)
	assert.Equal(t, `3.25 \ \mathrm{m}`, ru)

	assert.Equal(t, `H = 3.25 \ \mathrm{m}`, v.String())
}

func TestVariable_SubstitutedEqualsResult(t *testing.T) {
	// Leaf substitution is a no-op beyond formatting.
	for _, v := range []*latexexpr.Variable{
		latexexpr.NewVariable("a", 3.45, "mm"),
		latexexpr.NewVariable("F", -6.543, "kN"),
		latexexpr.NewVariable("F", 4.34, "kN", latexexpr.WithExponent(-2)),
	} {
		res, err := v.StrResult()
		require.NoError(t, err)
		assert.Equal(t, res, v.StrSubstituted())
	}
}

func TestVariable_NegativeValueIsBracketed(t *testing.T) {
	v := latexexpr.NewVariable("F", -6.543, "kN")
	res, err := v.StrResult()
	require.NoError(t, err)
	assert.Equal(t, `\left( -6.54 \right)`, res)
}

func TestVariable_ExponentScalesDisplayOnly(t *testing.T) {
	v := latexexpr.NewVariable("F", 4.34, "kN", latexexpr.WithExponent(-2))

	res, err := v.StrResult()
	require.NoError(t, err)
	assert.Equal(t, `{ 434.00 \cdot 10^{-2} }`, res)

	// The stored value is untouched.
	val, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, 4.34, val)
}

func TestVariable_CustomFormat(t *testing.T) {
	v := latexexpr.NewVariable("F", 2.564345, "kN", latexexpr.WithFormat("%.4f"))
	res, err := v.StrResult()
	require.NoError(t, err)
	assert.Equal(t, "2.5643", res)
}

func TestVariable_CustomUnitFormat(t *testing.T) {
	v := latexexpr.NewVariable("H", 3.25, "m", latexexpr.WithUnitFormat("%s"))
	ru, err := v.StrResultWithUnit()
	require.NoError(t, err)
	assert.Equal(t, `3.25 \ m`, ru)
}

func TestVariable_UndefinedValueFailsEvaluation(t *testing.T) {
	v := latexexpr.NewSymbol("x", "kN")
	assert.False(t, v.IsDefined())

	_, err := v.Value()
	var undef *latexexpr.UndefinedValueError
	require.ErrorAs(t, err, &undef)
	assert.Equal(t, "x", undef.Name)

	// Symbolic and substituted forms stay printable.
	assert.Equal(t, "{x}", v.StrSymbolic())
	assert.Equal(t, "{x}", v.StrSubstituted())
	assert.Equal(t, "{x}", v.String())
}

func TestVariable_DeclareNowAssignLater(t *testing.T) {
	v := latexexpr.NewSymbol("x", "kN")
	v.SetValue(10)
	require.True(t, v.IsDefined())
	val, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, 10.0, val)

	v.ClearValue()
	_, err = v.Value()
	var undef *latexexpr.UndefinedValueError
	assert.ErrorAs(t, err, &undef)
}

func TestVariable_ReassignmentReflectsInTrees(t *testing.T) {
	v := latexexpr.NewVariable("x", 3, "")
	double := v.Mul(latexexpr.Num(2))

	val, err := double.Value()
	require.NoError(t, err)
	assert.Equal(t, 6.0, val)

	v.SetValue(5)
	val, err = double.Value()
	require.NoError(t, err)
	assert.Equal(t, 10.0, val)
}

func TestVariable_Copy(t *testing.T) {
	v := latexexpr.NewVariable("x", 3, "m")
	c := v.Copy()
	c.SetValue(7)

	val, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, 3.0, val)
}

func TestNum_WrapsLiteral(t *testing.T) {
	n := latexexpr.Num(4)
	assert.Equal(t, "{4}", n.StrSymbolic())
	assert.Equal(t, "4", n.StrSubstituted())
	assert.Empty(t, n.Unit)

	half := latexexpr.Num(0.5)
	assert.Equal(t, "0.5", half.StrSubstituted())
}

func TestConstants(t *testing.T) {
	val, err := latexexpr.Pi.Value()
	require.NoError(t, err)
	assert.InDelta(t, 3.14159265, val, 1e-8)
	assert.Equal(t, `{\pi}`, latexexpr.Pi.StrSymbolic())

	two, err := latexexpr.Two.StrResult()
	require.NoError(t, err)
	assert.Equal(t, "2", two)
}
