package mechanism

import "github.com/synbiolab/crngen/internal/crn"

// HillTranscription models regulated transcription as a single reaction
// whose propensity is a proportional Hill function of a regulator:
// activator in the positive variant, repressor in the negative one. An
// optional mass-action leak reaction shares the same species lists.
// Parameters always come from the part-scoped source; there is no direct
// override path.
type HillTranscription struct {
	negative bool
}

func NewPositiveHillTranscription() HillTranscription { return HillTranscription{} }
func NewNegativeHillTranscription() HillTranscription { return HillTranscription{negative: true} }

func (m HillTranscription) Name() string {
	if m.negative {
		return "negativehill_transcription"
	}
	return "positivehill_transcription"
}

func (HillTranscription) Kind() string { return "transcription" }

func (m HillTranscription) Species(req Request) ([]*crn.Species, error) {
	if req.DNA == nil {
		return nil, configErrf(m, "requires a dna species")
	}
	if req.Regulator == nil {
		return nil, configErrf(m, "requires a regulator species")
	}
	species := []*crn.Species{req.DNA, req.Regulator}
	if req.Transcript != nil {
		species = append(species, req.Transcript)
	}
	if req.Protein != nil {
		species = append(species, req.Protein)
	}
	return species, nil
}

func (m HillTranscription) Reactions(req Request) ([]*crn.Reaction, error) {
	if req.DNA == nil {
		return nil, configErrf(m, "requires a dna species")
	}
	if req.Regulator == nil {
		return nil, configErrf(m, "requires a regulator species")
	}

	output := req.Transcript
	if req.ExpressionOnly() {
		output = req.Protein
	}
	if output == nil {
		return nil, configErrf(m, "requires a transcript or a protein species")
	}

	k, err := resolveStrict(m, req, "k")
	if err != nil {
		return nil, err
	}
	n, err := resolveStrict(m, req, "n")
	if err != nil {
		return nil, err
	}
	half, err := resolveStrict(m, req, "K")
	if err != nil {
		return nil, err
	}

	var prop crn.Propensity
	if m.negative {
		prop = crn.ProportionalHillNegative{K: k, Half: half, N: n, Regulator: req.Regulator, Scaled: req.DNA}
	} else {
		prop = crn.ProportionalHillPositive{K: k, Half: half, N: n, Regulator: req.Regulator, Scaled: req.DNA}
	}

	inputs := []*crn.Species{req.DNA}
	outputs := []*crn.Species{req.DNA, output}

	hill, err := crn.NewReaction(inputs, outputs, prop)
	if err != nil {
		return nil, err
	}
	reactions := []*crn.Reaction{hill}

	if req.Leak {
		kleak, err := resolveStrict(m, req, "kleak")
		if err != nil {
			return nil, err
		}
		leak, err := crn.NewMassAction(inputs, outputs, kleak)
		if err != nil {
			return nil, err
		}
		reactions = append(reactions, leak)
	}

	return reactions, nil
}
