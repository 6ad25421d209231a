package mechanism

import "github.com/synbiolab/crngen/internal/crn"

// Shared two-phase catalytic core: E + S <--> E:S --> products. When
// regenerate is set the substrate survives catalysis (E:S --> E + S + P),
// otherwise it is consumed (E:S --> E + P, or E:S --> E with no product).
// A pre-built complex may be supplied to reuse one identity across calls.

func catalyticComplex(enzyme, substrate, existing *crn.Species) *crn.Species {
	if existing != nil {
		return existing
	}
	return crn.BindingComplex(substrate, enzyme)
}

func catalyticSpecies(enzyme, substrate, product, existing *crn.Species) []*crn.Species {
	species := []*crn.Species{enzyme, substrate, catalyticComplex(enzyme, substrate, existing)}
	if product != nil {
		species = append(species, product)
	}
	return species
}

func catalyticReactions(enzyme, substrate, product, existing *crn.Species, kb, ku, kcat float64, regenerate bool) ([]*crn.Reaction, error) {
	complex := catalyticComplex(enzyme, substrate, existing)

	bind, err := crn.NewMassAction(
		[]*crn.Species{enzyme, substrate},
		[]*crn.Species{complex},
		kb,
	)
	if err != nil {
		return nil, err
	}
	unbind, err := crn.NewMassAction(
		[]*crn.Species{complex},
		[]*crn.Species{enzyme, substrate},
		ku,
	)
	if err != nil {
		return nil, err
	}

	outputs := []*crn.Species{enzyme}
	if regenerate {
		outputs = append(outputs, substrate)
	}
	if product != nil {
		outputs = append(outputs, product)
	}
	catalyze, err := crn.NewMassAction([]*crn.Species{complex}, outputs, kcat)
	if err != nil {
		return nil, err
	}

	return []*crn.Reaction{bind, unbind, catalyze}, nil
}

// TranscriptionMM models Michaelis-Menten transcription:
// G + RNAP <--> G:RNAP --> G + RNAP + T. The polymerase carrier is fixed at
// construction.
type TranscriptionMM struct {
	rnap *crn.Species
}

func NewTranscriptionMM(rnap *crn.Species) (*TranscriptionMM, error) {
	if rnap == nil {
		return nil, &ConfigError{Mechanism: "transcription_mm", Reason: "requires a polymerase species"}
	}
	return &TranscriptionMM{rnap: rnap}, nil
}

func (*TranscriptionMM) Name() string { return "transcription_mm" }
func (*TranscriptionMM) Kind() string { return "transcription" }

func (m *TranscriptionMM) output(req Request) *crn.Species {
	if req.ExpressionOnly() {
		return req.Protein
	}
	return req.Transcript
}

func (m *TranscriptionMM) Species(req Request) ([]*crn.Species, error) {
	if req.DNA == nil {
		return nil, configErrf(m, "requires a dna species")
	}
	species := []*crn.Species{req.DNA}
	species = append(species, catalyticSpecies(m.rnap, req.DNA, m.output(req), req.Complex)...)
	return species, nil
}

func (m *TranscriptionMM) Reactions(req Request) ([]*crn.Reaction, error) {
	if req.DNA == nil {
		return nil, configErrf(m, "requires a dna species")
	}
	output := m.output(req)
	if output == nil {
		return nil, configErrf(m, "requires a transcript or a protein species")
	}
	ktx, err := resolve(m, req, "ktx")
	if err != nil {
		return nil, err
	}
	kb, err := resolve(m, req, "kb")
	if err != nil {
		return nil, err
	}
	ku, err := resolve(m, req, "ku")
	if err != nil {
		return nil, err
	}
	return catalyticReactions(m.rnap, req.DNA, output, req.Complex, kb, ku, ktx, true)
}

// TranslationMM models Michaelis-Menten translation:
// T + Rib <--> T:Rib --> T + Rib + P. Degenerates to no reactions in the
// expression-only configuration.
type TranslationMM struct {
	ribosome *crn.Species
}

func NewTranslationMM(ribosome *crn.Species) (*TranslationMM, error) {
	if ribosome == nil {
		return nil, &ConfigError{Mechanism: "translation_mm", Reason: "requires a ribosome species"}
	}
	return &TranslationMM{ribosome: ribosome}, nil
}

func (*TranslationMM) Name() string { return "translation_mm" }
func (*TranslationMM) Kind() string { return "translation" }

func (m *TranslationMM) Species(req Request) ([]*crn.Species, error) {
	if req.ExpressionOnly() {
		return []*crn.Species{req.Protein}, nil
	}
	if req.Transcript == nil || req.Protein == nil {
		return nil, configErrf(m, "requires transcript and protein species")
	}
	return catalyticSpecies(m.ribosome, req.Transcript, req.Protein, req.Complex), nil
}

func (m *TranslationMM) Reactions(req Request) ([]*crn.Reaction, error) {
	if req.ExpressionOnly() {
		return nil, nil
	}
	if req.Transcript == nil || req.Protein == nil {
		return nil, configErrf(m, "requires transcript and protein species")
	}
	ktl, err := resolve(m, req, "ktl")
	if err != nil {
		return nil, err
	}
	kb, err := resolve(m, req, "kb")
	if err != nil {
		return nil, err
	}
	ku, err := resolve(m, req, "ku")
	if err != nil {
		return nil, err
	}
	return catalyticReactions(m.ribosome, req.Transcript, req.Protein, req.Complex, kb, ku, ktl, true)
}

// RNADegradationMM models Michaelis-Menten mRNA degradation by a nuclease:
// T + Endo <--> T:Endo --> Endo. The transcript is consumed, not regenerated.
type RNADegradationMM struct {
	nuclease *crn.Species
}

func NewRNADegradationMM(nuclease *crn.Species) (*RNADegradationMM, error) {
	if nuclease == nil {
		return nil, &ConfigError{Mechanism: "rna_degradation_mm", Reason: "requires a nuclease species"}
	}
	return &RNADegradationMM{nuclease: nuclease}, nil
}

func (*RNADegradationMM) Name() string { return "rna_degradation_mm" }
func (*RNADegradationMM) Kind() string { return "rna_degradation" }

func (m *RNADegradationMM) Species(req Request) ([]*crn.Species, error) {
	if req.Transcript == nil {
		return nil, configErrf(m, "requires a transcript species")
	}
	species := []*crn.Species{req.Transcript, m.nuclease}
	species = append(species, catalyticSpecies(m.nuclease, req.Transcript, nil, req.Complex)...)
	return species, nil
}

func (m *RNADegradationMM) Reactions(req Request) ([]*crn.Reaction, error) {
	if req.Transcript == nil {
		return nil, configErrf(m, "requires a transcript species")
	}
	kdeg, err := resolve(m, req, "kdeg")
	if err != nil {
		return nil, err
	}
	kb, err := resolve(m, req, "kb")
	if err != nil {
		return nil, err
	}
	ku, err := resolve(m, req, "ku")
	if err != nil {
		return nil, err
	}
	return catalyticReactions(m.nuclease, req.Transcript, nil, req.Complex, kb, ku, kdeg, false)
}
