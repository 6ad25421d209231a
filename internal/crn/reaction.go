package crn

import (
	"fmt"
	"strings"
)

type WeightedSpecies struct {
	Species       *Species
	Stoichiometry int
}

// Reaction is a transformation between species multisets. Reactant and
// product lists hold merged stoichiometry and preserve first-appearance order.
type Reaction struct {
	Reactants  []WeightedSpecies
	Products   []WeightedSpecies
	Propensity Propensity
}

func NewReaction(reactants, products []*Species, propensity Propensity) (*Reaction, error) {
	if propensity == nil {
		return nil, fmt.Errorf("reaction requires a propensity")
	}
	if err := propensity.Validate(); err != nil {
		return nil, err
	}
	if len(reactants) == 0 && len(products) == 0 {
		return nil, fmt.Errorf("reaction has no reactants and no products")
	}
	for _, s := range append(append([]*Species{}, reactants...), products...) {
		if s == nil {
			return nil, fmt.Errorf("reaction contains a nil species")
		}
	}

	return &Reaction{
		Reactants:  mergeStoichiometry(reactants),
		Products:   mergeStoichiometry(products),
		Propensity: propensity,
	}, nil
}

func NewMassAction(reactants, products []*Species, kForward float64) (*Reaction, error) {
	return NewReaction(reactants, products, MassAction{KForward: kForward})
}

// mergeStoichiometry collapses repeated species into weighted entries,
// keeping the order in which each species first appears.
func mergeStoichiometry(list []*Species) []WeightedSpecies {
	merged := make([]WeightedSpecies, 0, len(list))
	index := make(map[string]int, len(list))
	for _, s := range list {
		id := s.ID()
		if i, ok := index[id]; ok {
			merged[i].Stoichiometry++
			continue
		}
		index[id] = len(merged)
		merged = append(merged, WeightedSpecies{Species: s, Stoichiometry: 1})
	}
	return merged
}

// Species returns every distinct species the reaction touches, including
// species referenced only by the rate law.
func (r *Reaction) Species() []*Species {
	seen := make(map[string]bool)
	out := make([]*Species, 0, len(r.Reactants)+len(r.Products))
	add := func(s *Species) {
		if s == nil || seen[s.ID()] {
			return
		}
		seen[s.ID()] = true
		out = append(out, s)
	}
	for _, w := range r.Reactants {
		add(w.Species)
	}
	for _, w := range r.Products {
		add(w.Species)
	}
	for _, s := range r.Propensity.Species() {
		add(s)
	}
	return out
}

func (r *Reaction) Contains(s *Species) bool {
	for _, each := range r.Species() {
		if each.Equal(s) {
			return true
		}
	}
	return false
}

// Key is a canonical string identity used for structural comparison.
func (r *Reaction) Key() string {
	var b strings.Builder
	writeSide(&b, r.Reactants)
	b.WriteString(">")
	writeSide(&b, r.Products)
	b.WriteString("@")
	b.WriteString(r.Propensity.Kind())
	return b.String()
}

func (r *Reaction) Equal(other *Reaction) bool {
	if other == nil {
		return false
	}
	return r.Key() == other.Key() && fmt.Sprintf("%v", r.Propensity) == fmt.Sprintf("%v", other.Propensity)
}

func (r *Reaction) String() string {
	arrow := " --> "
	if ma, ok := r.Propensity.(MassAction); ok && ma.IsReversible() {
		arrow = " <--> "
	}
	return sideString(r.Reactants) + arrow + sideString(r.Products)
}

func writeSide(b *strings.Builder, side []WeightedSpecies) {
	for i, w := range side {
		if i > 0 {
			b.WriteString("+")
		}
		fmt.Fprintf(b, "%d*%s", w.Stoichiometry, w.Species.ID())
	}
}

func sideString(side []WeightedSpecies) string {
	if len(side) == 0 {
		return "∅"
	}
	parts := make([]string, 0, len(side))
	for _, w := range side {
		if w.Stoichiometry == 1 {
			parts = append(parts, w.Species.ID())
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s", w.Stoichiometry, w.Species.ID()))
	}
	return strings.Join(parts, " + ")
}
