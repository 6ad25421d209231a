package params

import (
	"fmt"
	"strings"
)

// Source resolves a named kinetic parameter for a (part, mechanism) pair.
// Failure to resolve is a fatal configuration error for the caller.
type Source interface {
	Resolve(name, partID, mechanism string) (float64, error)
}

type ResolutionError struct {
	Name      string
	PartID    string
	Mechanism string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("parameter %q not found for part %q and mechanism %q", e.Name, e.PartID, e.Mechanism)
}

// Table is an in-memory parameter source. Lookup falls back from the most
// to the least specific scope:
//
//	(mechanism, part, name) -> (part, name) -> (mechanism, name) -> (name)
type Table struct {
	values map[string]float64
}

func NewTable() *Table {
	return &Table{values: make(map[string]float64)}
}

func (t *Table) Set(name string, v float64)                    { t.values[key("", "", name)] = v }
func (t *Table) SetPart(partID, name string, v float64)        { t.values[key("", partID, name)] = v }
func (t *Table) SetMechanism(mech, name string, v float64)     { t.values[key(mech, "", name)] = v }
func (t *Table) SetScoped(mech, partID, name string, v float64) { t.values[key(mech, partID, name)] = v }

func (t *Table) Resolve(name, partID, mechanism string) (float64, error) {
	lookups := []string{
		key(mechanism, partID, name),
		key("", partID, name),
		key(mechanism, "", name),
		key("", "", name),
	}
	for _, k := range lookups {
		if v, ok := t.values[k]; ok {
			return v, nil
		}
	}
	return 0, &ResolutionError{Name: name, PartID: partID, Mechanism: mechanism}
}

func key(mechanism, partID, name string) string {
	return strings.Join([]string{mechanism, partID, name}, "|")
}
