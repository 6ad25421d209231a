package crn

import (
	"fmt"
	"strings"
)

// Network assembles species and reactions produced by mechanisms into one
// model. Species are deduplicated structurally on add; reactions are kept in
// insertion order.
type Network struct {
	Species   []*Species
	Reactions []*Reaction

	index map[string]*Species
}

func NewNetwork() *Network {
	return &Network{index: make(map[string]*Species)}
}

func (n *Network) AddSpecies(species ...*Species) {
	for _, s := range species {
		if s == nil {
			continue
		}
		if _, ok := n.index[s.ID()]; ok {
			continue
		}
		n.index[s.ID()] = s
		n.Species = append(n.Species, s)
	}
}

// AddReactions appends reactions and registers every species they touch.
func (n *Network) AddReactions(reactions ...*Reaction) {
	for _, r := range reactions {
		if r == nil {
			continue
		}
		n.AddSpecies(r.Species()...)
		n.Reactions = append(n.Reactions, r)
	}
}

func (n *Network) HasSpecies(s *Species) bool {
	_, ok := n.index[s.ID()]
	return ok
}

// Containing returns every registered species whose composition includes s,
// including s itself if registered.
func (n *Network) Containing(s *Species) []*Species {
	var out []*Species
	for _, each := range n.Species {
		if each.Equal(s) || containsComponent(each, s) {
			out = append(out, each)
		}
	}
	return out
}

func containsComponent(complex, target *Species) bool {
	for _, c := range complex.Components {
		if c.Equal(target) || containsComponent(c, target) {
			return true
		}
	}
	return false
}

// Validate cross-checks the species list against the reaction set and
// returns human-readable diagnostics. An empty slice means consistent.
func (n *Network) Validate() []string {
	var diags []string

	used := make(map[string]bool)
	for _, r := range n.Reactions {
		for _, s := range r.Species() {
			used[s.ID()] = true
			if !n.HasSpecies(s) {
				diags = append(diags, fmt.Sprintf("species %s appears in a reaction but is not registered", s.ID()))
			}
		}
	}
	for _, s := range n.Species {
		if !used[s.ID()] {
			diags = append(diags, fmt.Sprintf("species %s is not part of any reaction", s.ID()))
		}
	}

	seen := make(map[string]bool)
	for _, r := range n.Reactions {
		key := r.Key()
		if seen[key] {
			diags = append(diags, fmt.Sprintf("reaction %s is duplicated", r))
		}
		seen[key] = true
	}

	return diags
}

// InitialConditions maps a species-id to value table onto the species order.
func (n *Network) InitialConditions(values map[string]float64) []float64 {
	x0 := make([]float64, len(n.Species))
	for i, s := range n.Species {
		if v, ok := values[s.ID()]; ok {
			x0[i] = v
		}
	}
	return x0
}

func (n *Network) PrettyPrint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "species (%d):\n", len(n.Species))
	for i, s := range n.Species {
		fmt.Fprintf(&b, "  %d. %s\n", i, s.ID())
	}
	fmt.Fprintf(&b, "reactions (%d):\n", len(n.Reactions))
	for i, r := range n.Reactions {
		fmt.Fprintf(&b, "  %d. %s\n", i, r)
	}
	return b.String()
}
