package latexexpr

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// The variable store carries computed quantities between independently
// executed document-build snippets. It is a single YAML file holding
// name -> (value, unit) records, rewritten wholesale on every save; there is
// no locking, because each build step runs as its own sequential process.
//
// Encoding, version 1:
//
//	version: 1
//	variables:
//	  F_max: {value: 12.5, unit: kN}

const storeVersion = 1

type storeEntry struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit,omitempty"`
}

type storeFile struct {
	Version   int                   `yaml:"version"`
	Variables map[string]storeEntry `yaml:"variables"`
}

// SaveVars writes the current value and unit of each named node to the store
// file at path, replacing any prior content in full. Entries that cannot be
// evaluated yet (e.g. a declared-but-unassigned Variable) are skipped, so a
// session may save its namespace wholesale.
func SaveVars(path string, vars map[string]Node) error {
	out := storeFile{
		Version:   storeVersion,
		Variables: make(map[string]storeEntry, len(vars)),
	}
	for name, n := range vars {
		v, err := n.Value()
		if err != nil {
			continue
		}
		out.Variables[name] = storeEntry{Value: v, Unit: nodeUnit(n)}
	}
	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("latexexpr: encoding variable store: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadVars reads the store file at path and assigns each stored value into
// the live Variable registered under the same name. Stored names with no
// matching Variable are ignored, as are supplied Variables with no stored
// entry; stored units are informational only and never enforced against the
// live Variable's unit. A file that cannot be parsed, or whose version is
// not understood, fails with *StoreCorruptError.
func LoadVars(path string, vars map[string]*Variable) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("latexexpr: reading variable store: %w", err)
	}
	var in storeFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return &StoreCorruptError{Path: path, Err: err}
	}
	if in.Version != storeVersion {
		return &StoreCorruptError{Path: path, Err: fmt.Errorf("unsupported store version %d", in.Version)}
	}
	for name, v := range vars {
		if v == nil {
			continue
		}
		if entry, ok := in.Variables[name]; ok {
			v.SetValue(entry.Value)
		}
	}
	return nil
}

// StoredVar is one record of the variable store.
type StoredVar struct {
	Value float64
	Unit  string
}

// ReadVars reads every record of the store file at path without touching any
// live Variable. Tools that inspect or patch store files build on this; the
// usual in-process path is LoadVars.
func ReadVars(path string) (map[string]StoredVar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("latexexpr: reading variable store: %w", err)
	}
	var in storeFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, &StoreCorruptError{Path: path, Err: err}
	}
	if in.Version != storeVersion {
		return nil, &StoreCorruptError{Path: path, Err: fmt.Errorf("unsupported store version %d", in.Version)}
	}
	out := make(map[string]StoredVar, len(in.Variables))
	for name, entry := range in.Variables {
		out[name] = StoredVar{Value: entry.Value, Unit: entry.Unit}
	}
	return out, nil
}

// nodeUnit extracts the unit label of the named node kinds; anonymous
// operations carry none.
func nodeUnit(n Node) string {
	switch t := n.(type) {
	case *Variable:
		return t.Unit
	case *Expression:
		return t.Unit
	}
	return ""
}
