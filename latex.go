package latexexpr

import (
	"fmt"
	"strconv"
)

// DefCommand selects the LaTeX command used to define a document-level
// variable.
type DefCommand string

const (
	CmdDef          DefCommand = "def"
	CmdNewCommand   DefCommand = "newcommand"
	CmdRenewCommand DefCommand = "renewcommand"
)

// DefContent selects what part of a node a LaTeX variable definition
// carries.
type DefContent string

const (
	// DefFloat is the raw numeric value.
	DefFloat DefContent = "float"
	// DefStr is the formatted value, with possible \cdot 10^{e} scaling.
	DefStr DefContent = "str"
	// DefValUnit is the formatted value followed by the unit.
	DefValUnit DefContent = "valunit"
	// DefSymb is the symbolic form (Expression only).
	DefSymb DefContent = "symb"
	// DefSubst is the substituted form (Expression only).
	DefSubst DefContent = "subst"
	// DefAll is the default string form.
	DefAll DefContent = "all"
)

// ToLaTeXVariable formats an arbitrary name/body pair as a LaTeX variable
// definition line, e.g. \def\name{body}. It is independent of the node model.
func ToLaTeXVariable(name, body string, command DefCommand) (string, error) {
	switch command {
	case CmdDef:
		return `\def\` + name + `{` + body + `}`, nil
	case CmdNewCommand, CmdRenewCommand:
		return `\` + string(command) + `{\` + name + `}{` + body + `}`, nil
	}
	return "", fmt.Errorf("latexexpr: unknown LaTeX command %q", string(command))
}

// ToLaTeXVariable converts the receiver into a LaTeX variable definition
// carrying the part selected by what.
func (v *Variable) ToLaTeXVariable(name string, what DefContent, command DefCommand) (string, error) {
	var body string
	switch what {
	case DefFloat:
		val, err := v.Value()
		if err != nil {
			return "", err
		}
		body = strconv.FormatFloat(val, 'g', -1, 64)
	case DefStr:
		s, err := v.StrResult()
		if err != nil {
			return "", err
		}
		body = s
	case DefValUnit:
		s, err := v.StrResultWithUnit()
		if err != nil {
			return "", err
		}
		body = s
	case DefAll, DefSubst:
		body = v.String()
	default:
		return "", fmt.Errorf("latexexpr: content %q not supported for a variable", string(what))
	}
	return ToLaTeXVariable(name, body, command)
}

// Shortcuts for the common ToLaTeXVariable contents.

func (v *Variable) ToLaTeXVariableFloat(name string) (string, error) {
	return v.ToLaTeXVariable(name, DefFloat, CmdDef)
}

func (v *Variable) ToLaTeXVariableStr(name string) (string, error) {
	return v.ToLaTeXVariable(name, DefStr, CmdDef)
}

func (v *Variable) ToLaTeXVariableValUnit(name string) (string, error) {
	return v.ToLaTeXVariable(name, DefValUnit, CmdDef)
}

func (v *Variable) ToLaTeXVariableAll(name string) (string, error) {
	return v.ToLaTeXVariable(name, DefAll, CmdDef)
}

// ToLaTeXVariable converts the receiver into a LaTeX variable definition
// carrying the part selected by what.
func (e *Expression) ToLaTeXVariable(name string, what DefContent, command DefCommand) (string, error) {
	var body string
	switch what {
	case DefFloat:
		val, err := e.Value()
		if err != nil {
			return "", err
		}
		body = strconv.FormatFloat(val, 'g', -1, 64)
	case DefStr:
		s, err := e.StrResult()
		if err != nil {
			return "", err
		}
		body = s
	case DefValUnit:
		s, err := e.StrResultWithUnit()
		if err != nil {
			return "", err
		}
		body = s
	case DefSymb:
		body = e.StrSymbolic()
	case DefSubst:
		body = e.StrSubstituted()
	case DefAll:
		body = e.String()
	default:
		return "", fmt.Errorf("latexexpr: content %q not supported for an expression", string(what))
	}
	return ToLaTeXVariable(name, body, command)
}

// Shortcuts for the common ToLaTeXVariable contents.

func (e *Expression) ToLaTeXVariableFloat(name string) (string, error) {
	return e.ToLaTeXVariable(name, DefFloat, CmdDef)
}

func (e *Expression) ToLaTeXVariableStr(name string) (string, error) {
	return e.ToLaTeXVariable(name, DefStr, CmdDef)
}

func (e *Expression) ToLaTeXVariableValUnit(name string) (string, error) {
	return e.ToLaTeXVariable(name, DefValUnit, CmdDef)
}

func (e *Expression) ToLaTeXVariableSymb(name string) (string, error) {
	return e.ToLaTeXVariable(name, DefSymb, CmdDef)
}

func (e *Expression) ToLaTeXVariableSubst(name string) (string, error) {
	return e.ToLaTeXVariable(name, DefSubst, CmdDef)
}

func (e *Expression) ToLaTeXVariableAll(name string) (string, error) {
	return e.ToLaTeXVariable(name, DefAll, CmdDef)
}
