package latexexpr

import (
	"fmt"
	"math"
)

// Default formatting applied to every Variable, Operation and Expression
// unless overridden by options.
const (
	// DefaultFormat is the fmt verb applied to the (exponent-scaled) value.
	DefaultFormat = "%.2f"
	// DefaultUnitFormat wraps the unit label for non-italic math-mode units.
	DefaultUnitFormat = `\mathrm{%s}`
)

// RenderOptions controls how a numeric result is typeset.
type RenderOptions struct {
	// Format is a fmt verb for one float64, e.g. "%.2f", "%.4g" or "%e".
	Format string
	// UnitFormat is a fmt verb for the unit label, e.g. `\mathrm{%s}` or "%s".
	UnitFormat string
	// Exponent is a power-of-ten scale factor applied to the displayed value
	// only; the stored value is untouched. 0 disables scientific display.
	Exponent int
}

// DefaultRenderOptions returns the options used when none are supplied.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Format: DefaultFormat, UnitFormat: DefaultUnitFormat}
}

// An Option modifies the rendering configuration of the node it is passed to.
type Option func(*RenderOptions)

// WithFormat sets the fmt verb applied to the scaled numeric value.
func WithFormat(format string) Option {
	return func(o *RenderOptions) { o.Format = format }
}

// WithUnitFormat sets the fmt verb wrapping the unit label.
func WithUnitFormat(unitFormat string) Option {
	return func(o *RenderOptions) { o.UnitFormat = unitFormat }
}

// WithExponent sets the display-only power-of-ten scale factor.
func WithExponent(exponent int) Option {
	return func(o *RenderOptions) { o.Exponent = exponent }
}

func applyOptions(o RenderOptions, opts []Option) RenderOptions {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// strValue typesets v per o: scaled by 10^-Exponent, formatted by Format,
// negative values wrapped in \left( … \right) so they survive adjacent
// operators, and scaled values annotated with \cdot 10^{e}.
func strValue(v float64, o RenderOptions) string {
	f := o.Format
	if f == "" {
		f = DefaultFormat
	}
	if o.Exponent == 0 {
		if v < 0 {
			return fmt.Sprintf(`\left( `+f+` \right)`, v)
		}
		return fmt.Sprintf(f, v)
	}
	scaled := v * math.Pow(10, float64(-o.Exponent))
	if v < 0 {
		return fmt.Sprintf(`\left( `+f+` \cdot 10^{%d} \right)`, scaled, o.Exponent)
	}
	return fmt.Sprintf(`{ `+f+` \cdot 10^{%d} }`, scaled, o.Exponent)
}

// strUnit typesets the unit label per o.
func strUnit(unit string, o RenderOptions) string {
	f := o.UnitFormat
	if f == "" {
		f = DefaultUnitFormat
	}
	return fmt.Sprintf(f, unit)
}

// strValueWithUnit joins a formatted value and its unit with a thin
// math-mode separator.
func strValueWithUnit(v float64, unit string, o RenderOptions) string {
	return strValue(v, o) + ` \ ` + strUnit(unit, o)
}
