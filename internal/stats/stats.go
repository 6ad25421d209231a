package stats

import (
	"sort"

	"github.com/synbiolab/crngen/internal/crn"
)

// Summary holds structural statistics for a compiled network.
type Summary struct {
	Species        int
	Reactions      int
	KindCounts     map[string]int
	MaterialCounts map[string]int
	Reversible     int
}

func Summarize(net *crn.Network) Summary {
	s := Summary{
		Species:        len(net.Species),
		Reactions:      len(net.Reactions),
		KindCounts:     make(map[string]int),
		MaterialCounts: make(map[string]int),
	}
	for _, sp := range net.Species {
		s.MaterialCounts[string(sp.Material)]++
	}
	for _, r := range net.Reactions {
		s.KindCounts[r.Propensity.Kind()]++
		if ma, ok := r.Propensity.(crn.MassAction); ok && ma.IsReversible() {
			s.Reversible++
		}
	}
	return s
}

// Degrees returns, per species, the number of reactions that touch it,
// sorted descending so hubs come first.
type Degree struct {
	Species string
	Count   int
}

func Degrees(net *crn.Network) []Degree {
	counts := make(map[string]int, len(net.Species))
	for _, sp := range net.Species {
		counts[sp.ID()] = 0
	}
	for _, r := range net.Reactions {
		for _, sp := range r.Species() {
			counts[sp.ID()]++
		}
	}

	out := make([]Degree, 0, len(counts))
	for id, n := range counts {
		out = append(out, Degree{Species: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Species < out[j].Species
	})
	return out
}

// DegreeSeries flattens the sorted degrees into a float series for plotting.
func DegreeSeries(degrees []Degree) []float64 {
	series := make([]float64, len(degrees))
	for i, d := range degrees {
		series[i] = float64(d.Count)
	}
	return series
}

// RateSeries returns the mass-action forward rates in reaction order,
// for a quick visual scan of the rate spread.
func RateSeries(net *crn.Network) []float64 {
	series := make([]float64, 0, len(net.Reactions))
	for _, r := range net.Reactions {
		if ma, ok := r.Propensity.(crn.MassAction); ok {
			series = append(series, ma.KForward)
		}
	}
	return series
}
