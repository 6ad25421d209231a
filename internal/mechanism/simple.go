package mechanism

import "github.com/synbiolab/crngen/internal/crn"

// OneStepExpression models gene expression without an explicit transcript:
// G --> G + P at kexpress.
type OneStepExpression struct{}

func NewOneStepExpression() OneStepExpression { return OneStepExpression{} }

func (OneStepExpression) Name() string { return "gene_expression" }
func (OneStepExpression) Kind() string { return "transcription" }

func (m OneStepExpression) Species(req Request) ([]*crn.Species, error) {
	if req.DNA == nil {
		return nil, configErrf(m, "requires a dna species")
	}
	species := []*crn.Species{req.DNA}
	if req.Protein != nil {
		species = append(species, req.Protein)
	}
	return species, nil
}

func (m OneStepExpression) Reactions(req Request) ([]*crn.Reaction, error) {
	if req.DNA == nil {
		return nil, configErrf(m, "requires a dna species")
	}
	if req.Protein == nil {
		// species-only bookkeeping, nothing to express into
		return nil, nil
	}
	kexpress, err := resolve(m, req, "kexpress")
	if err != nil {
		return nil, err
	}
	r, err := crn.NewMassAction(
		[]*crn.Species{req.DNA},
		[]*crn.Species{req.DNA, req.Protein},
		kexpress,
	)
	if err != nil {
		return nil, err
	}
	return []*crn.Reaction{r}, nil
}

// SimpleTranscription models G --> G + T at ktx. In the transcript-free
// expression-only configuration it emits G --> G + P at ktx*ktl instead,
// folding translation into one compound step.
type SimpleTranscription struct{}

func NewSimpleTranscription() SimpleTranscription { return SimpleTranscription{} }

func (SimpleTranscription) Name() string { return "simple_transcription" }
func (SimpleTranscription) Kind() string { return "transcription" }

func (m SimpleTranscription) Species(req Request) ([]*crn.Species, error) {
	if req.DNA == nil {
		return nil, configErrf(m, "requires a dna species")
	}
	species := []*crn.Species{req.DNA}
	if req.Transcript != nil {
		species = append(species, req.Transcript)
	}
	if req.Protein != nil {
		species = append(species, req.Protein)
	}
	return species, nil
}

func (m SimpleTranscription) Reactions(req Request) ([]*crn.Reaction, error) {
	if req.DNA == nil {
		return nil, configErrf(m, "requires a dna species")
	}
	ktx, err := resolve(m, req, "ktx")
	if err != nil {
		return nil, err
	}

	if req.ExpressionOnly() {
		ktl, err := resolve(m, req, "ktl")
		if err != nil {
			return nil, err
		}
		r, err := crn.NewMassAction(
			[]*crn.Species{req.DNA},
			[]*crn.Species{req.DNA, req.Protein},
			ktx*ktl,
		)
		if err != nil {
			return nil, err
		}
		return []*crn.Reaction{r}, nil
	}

	if req.Transcript == nil {
		return nil, configErrf(m, "requires a transcript or a protein species")
	}
	r, err := crn.NewMassAction(
		[]*crn.Species{req.DNA},
		[]*crn.Species{req.DNA, req.Transcript},
		ktx,
	)
	if err != nil {
		return nil, err
	}
	return []*crn.Reaction{r}, nil
}

// SimpleTranslation models T --> T + P at ktl. In the expression-only
// configuration it emits nothing; the compound transcription step already
// accounts for translation.
type SimpleTranslation struct{}

func NewSimpleTranslation() SimpleTranslation { return SimpleTranslation{} }

func (SimpleTranslation) Name() string { return "simple_translation" }
func (SimpleTranslation) Kind() string { return "translation" }

func (m SimpleTranslation) Species(req Request) ([]*crn.Species, error) {
	if req.ExpressionOnly() {
		return []*crn.Species{req.Protein}, nil
	}
	if req.Transcript == nil {
		return nil, configErrf(m, "requires a transcript species")
	}
	protein := req.Protein
	if protein == nil {
		protein = crn.Protein(req.Transcript.Name)
	}
	return []*crn.Species{req.Transcript, protein}, nil
}

func (m SimpleTranslation) Reactions(req Request) ([]*crn.Reaction, error) {
	if req.ExpressionOnly() {
		return nil, nil
	}
	if req.Transcript == nil {
		return nil, configErrf(m, "requires a transcript species")
	}
	protein := req.Protein
	if protein == nil {
		protein = crn.Protein(req.Transcript.Name)
	}
	ktl, err := resolve(m, req, "ktl")
	if err != nil {
		return nil, err
	}
	r, err := crn.NewMassAction(
		[]*crn.Species{req.Transcript},
		[]*crn.Species{req.Transcript, protein},
		ktl,
	)
	if err != nil {
		return nil, err
	}
	return []*crn.Reaction{r}, nil
}
