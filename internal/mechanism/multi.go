package mechanism

import "github.com/synbiolab/crngen/internal/crn"

// MultiTx models transcription with explicit multi-polymerase occupancy of
// the gene: up to max_occ polymerases bound simultaneously, each binding in
// a closed conformation and isomerizing to an open, elongating one. Rates
// k1/k2 (bind/unbind), k_iso, and ktx_solo apply uniformly at every level.
type MultiTx struct {
	pol *crn.Species
}

func NewMultiTx(pol *crn.Species) (*MultiTx, error) {
	if pol == nil {
		return nil, &ConfigError{Mechanism: "multi_tx", Reason: "requires a polymerase species"}
	}
	return &MultiTx{pol: pol}, nil
}

func (*MultiTx) Name() string { return "multi_tx" }
func (*MultiTx) Kind() string { return "transcription" }

func (m *MultiTx) machine(req Request, maxOcc int) occupancyMachine {
	return occupancyMachine{
		template: req.DNA,
		carrier:  m.pol,
		product:  req.Transcript,
		maxOcc:   maxOcc,
	}
}

func (m *MultiTx) Species(req Request) ([]*crn.Species, error) {
	if req.DNA == nil || req.Transcript == nil {
		return nil, configErrf(m, "requires dna and transcript species")
	}
	maxOcc, err := resolveCount(m, req, "max_occ")
	if err != nil {
		return nil, err
	}
	return m.machine(req, maxOcc).species(), nil
}

func (m *MultiTx) Reactions(req Request) ([]*crn.Reaction, error) {
	if req.DNA == nil || req.Transcript == nil {
		return nil, configErrf(m, "requires dna and transcript species")
	}
	k1, err := resolve(m, req, "k1")
	if err != nil {
		return nil, err
	}
	k2, err := resolve(m, req, "k2")
	if err != nil {
		return nil, err
	}
	kIso, err := resolve(m, req, "k_iso")
	if err != nil {
		return nil, err
	}
	ktxSolo, err := resolve(m, req, "ktx_solo")
	if err != nil {
		return nil, err
	}
	maxOcc, err := resolveCount(m, req, "max_occ")
	if err != nil {
		return nil, err
	}
	return m.machine(req, maxOcc).reactions(occupancyRates{
		bind:      k1,
		unbind:    k2,
		isomerize: kIso,
		release:   ktxSolo,
	})
}

// MultiTl is the translation analogue of MultiTx: template = transcript,
// carrier = ribosome, product = protein, with rates kbr/kur/k_iso_r/ktl_solo.
type MultiTl struct {
	ribosome *crn.Species
}

func NewMultiTl(ribosome *crn.Species) (*MultiTl, error) {
	if ribosome == nil {
		return nil, &ConfigError{Mechanism: "multi_tl", Reason: "requires a ribosome species"}
	}
	return &MultiTl{ribosome: ribosome}, nil
}

func (*MultiTl) Name() string { return "multi_tl" }
func (*MultiTl) Kind() string { return "translation" }

// Diagnostics carries the construction-time caveats for this mechanism;
// callers decide whether to log them.
func (m *MultiTl) Diagnostics() []Diagnostic {
	return []Diagnostic{
		{Mechanism: m.Name(), Message: "transcript-ribosome complexes are not subject to dilution unless the caller configures it"},
	}
}

func (m *MultiTl) machine(req Request, maxOcc int) occupancyMachine {
	return occupancyMachine{
		template: req.Transcript,
		carrier:  m.ribosome,
		product:  req.Protein,
		maxOcc:   maxOcc,
	}
}

func (m *MultiTl) Species(req Request) ([]*crn.Species, error) {
	if req.Transcript == nil || req.Protein == nil {
		return nil, configErrf(m, "requires transcript and protein species")
	}
	maxOcc, err := resolveCount(m, req, "max_occ")
	if err != nil {
		return nil, err
	}
	return m.machine(req, maxOcc).species(), nil
}

func (m *MultiTl) Reactions(req Request) ([]*crn.Reaction, error) {
	if req.Transcript == nil || req.Protein == nil {
		return nil, configErrf(m, "requires transcript and protein species")
	}
	kbr, err := resolve(m, req, "kbr")
	if err != nil {
		return nil, err
	}
	kur, err := resolve(m, req, "kur")
	if err != nil {
		return nil, err
	}
	kIsoR, err := resolve(m, req, "k_iso_r")
	if err != nil {
		return nil, err
	}
	ktlSolo, err := resolve(m, req, "ktl_solo")
	if err != nil {
		return nil, err
	}
	maxOcc, err := resolveCount(m, req, "max_occ")
	if err != nil {
		return nil, err
	}
	return m.machine(req, maxOcc).reactions(occupancyRates{
		bind:      kbr,
		unbind:    kur,
		isomerize: kIsoR,
		release:   ktlSolo,
	})
}
