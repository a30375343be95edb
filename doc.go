// Package latexexpr builds algebraic expressions as in-memory trees and
// typesets them as LaTeX math-mode fragments in three complementary forms:
// symbolic (names and operators), substituted (numeric values in place of
// names), and result (the computed value with its unit), i.e.
//
//	r = 3.00 \ \mathrm{m}
//	F = 4.00 \ \mathrm{kN}
//	M = {r} \cdot {F} = 3.00 \cdot 4.00 = 12.00 \ \mathrm{kNm}
//
// Design goals:
//   - Single source of truth for a formula's definition, substitution and answer
//   - Build, don't evaluate: tree construction performs no computation
//   - Deterministic rendering with stable, golden-testable output
//   - Embeddable in document-build pipelines (pythontex-style snippet runners)
//
// The building blocks are Variable (a named scalar with an optional value,
// a unit label and formatting options), Operation (an n-ary composite built
// by one of the predefined factories such as AddOf, DivOf or SqrtOf), and
// Expression (a named, unit-labeled wrapper around one root node). All three
// satisfy the Node interface and compose freely.
//
// Computed values survive across independent snippet processes through a
// file-backed variable store; see SaveVars and LoadVars.
//
// The core emits the contents of math-mode fragments only, never the
// surrounding delimiters.
package latexexpr
