package catalog

import (
	"fmt"
	"sort"

	"github.com/synbiolab/crngen/internal/crn"
	"github.com/synbiolab/crngen/internal/mechanism"
)

// Enzymes are the carrier species shared by every mechanism in a circuit
// that needs one.
type Enzymes struct {
	Polymerase *crn.Species
	Ribosome   *crn.Species
	Nuclease   *crn.Species
}

type factory func(Enzymes) (mechanism.Mechanism, error)

// Registry maps mechanism names to factories. Carrier-bearing mechanisms
// are constructed against the circuit's enzyme set.
type Registry struct {
	factories map[string]factory
}

func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]factory)}

	r.factories["gene_expression"] = func(Enzymes) (mechanism.Mechanism, error) {
		return mechanism.NewOneStepExpression(), nil
	}
	r.factories["simple_transcription"] = func(Enzymes) (mechanism.Mechanism, error) {
		return mechanism.NewSimpleTranscription(), nil
	}
	r.factories["simple_translation"] = func(Enzymes) (mechanism.Mechanism, error) {
		return mechanism.NewSimpleTranslation(), nil
	}
	r.factories["positivehill_transcription"] = func(Enzymes) (mechanism.Mechanism, error) {
		return mechanism.NewPositiveHillTranscription(), nil
	}
	r.factories["negativehill_transcription"] = func(Enzymes) (mechanism.Mechanism, error) {
		return mechanism.NewNegativeHillTranscription(), nil
	}
	r.factories["transcription_mm"] = func(e Enzymes) (mechanism.Mechanism, error) {
		return mechanism.NewTranscriptionMM(e.Polymerase)
	}
	r.factories["translation_mm"] = func(e Enzymes) (mechanism.Mechanism, error) {
		return mechanism.NewTranslationMM(e.Ribosome)
	}
	r.factories["rna_degradation_mm"] = func(e Enzymes) (mechanism.Mechanism, error) {
		return mechanism.NewRNADegradationMM(e.Nuclease)
	}
	r.factories["multi_tx"] = func(e Enzymes) (mechanism.Mechanism, error) {
		return mechanism.NewMultiTx(e.Polymerase)
	}
	r.factories["multi_tl"] = func(e Enzymes) (mechanism.Mechanism, error) {
		return mechanism.NewMultiTl(e.Ribosome)
	}

	return r
}

func (r *Registry) Get(name string, enzymes Enzymes) (mechanism.Mechanism, error) {
	fn, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown mechanism: %s", name)
	}
	return fn(enzymes)
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
