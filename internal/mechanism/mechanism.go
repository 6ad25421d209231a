package mechanism

import (
	"fmt"
	"math"

	"github.com/synbiolab/crngen/internal/crn"
	"github.com/synbiolab/crngen/internal/params"
)

// Request carries the molecular participants and parameter context for one
// species-discovery or reaction-construction call. Mechanisms read it, never
// mutate it.
type Request struct {
	DNA        *crn.Species
	Transcript *crn.Species
	Protein    *crn.Species
	Regulator  *crn.Species

	// Complex optionally supplies a pre-built enzyme:substrate complex so
	// repeated calls reuse one identity.
	Complex *crn.Species

	Leak   bool
	PartID string
	Params params.Source

	// Overrides are direct rate values consulted before the parameter
	// source. Hill mechanisms ignore them.
	Overrides map[string]float64
}

// ExpressionOnly reports the transcript-free configuration where a compound
// rate links template directly to protein.
func (r Request) ExpressionOnly() bool {
	return r.Transcript == nil && r.Protein != nil
}

// Mechanism is a reusable rule that emits the species and reactions modeling
// one biochemical process. Both operations are deterministic pure functions
// of the request and the parameter source.
type Mechanism interface {
	Name() string
	Kind() string
	Species(req Request) ([]*crn.Species, error)
	Reactions(req Request) ([]*crn.Reaction, error)
}

// Diagnostic is an advisory emitted at construction time. Callers decide
// whether to log or surface it.
type Diagnostic struct {
	Mechanism string
	Message   string
}

// Advisor is implemented by mechanisms carrying construction-time caveats.
type Advisor interface {
	Diagnostics() []Diagnostic
}

type ConfigError struct {
	Mechanism string
	Reason    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Mechanism, e.Reason)
}

func configErrf(m Mechanism, format string, args ...any) error {
	return &ConfigError{Mechanism: m.Name(), Reason: fmt.Sprintf(format, args...)}
}

// resolve looks a rate constant up in the request overrides, then the
// parameter source. Missing on both paths is a configuration error.
func resolve(m Mechanism, req Request, name string) (float64, error) {
	if v, ok := req.Overrides[name]; ok {
		return v, nil
	}
	if req.Params == nil {
		return 0, configErrf(m, "no value for %q: pass a parameter source or a direct override", name)
	}
	return req.Params.Resolve(name, req.PartID, m.Name())
}

// resolveStrict is resolve without the override path, for mechanisms whose
// parameters must come from the part-scoped source.
func resolveStrict(m Mechanism, req Request, name string) (float64, error) {
	if req.Params == nil {
		return 0, configErrf(m, "requires a parameter source, no direct value accepted for %q", name)
	}
	if req.PartID == "" {
		return 0, configErrf(m, "requires a part identifier to resolve %q", name)
	}
	return req.Params.Resolve(name, req.PartID, m.Name())
}

// resolveCount resolves a parameter that must be a non-negative integer.
func resolveCount(m Mechanism, req Request, name string) (int, error) {
	v, err := resolve(m, req, name)
	if err != nil {
		return 0, err
	}
	if v < 0 || v != math.Trunc(v) {
		return 0, configErrf(m, "%q must be a non-negative integer, got %f", name, v)
	}
	return int(v), nil
}
