package circuit

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/synbiolab/crngen/internal/catalog"
	"github.com/synbiolab/crngen/internal/crn"
	"github.com/synbiolab/crngen/internal/mechanism"
	"github.com/synbiolab/crngen/internal/params"
)

// Result is a compiled circuit: the assembled network plus any
// construction-time diagnostics the mechanisms reported.
type Result struct {
	Network     *crn.Network
	Diagnostics []mechanism.Diagnostic
}

type partOutput struct {
	species     []*crn.Species
	reactions   []*crn.Reaction
	diagnostics []mechanism.Diagnostic
}

// Compile builds every part's species and reactions and merges them into one
// network. Parts compile concurrently; the merge is in definition order, so
// the output is deterministic.
func Compile(ctx context.Context, def *Definition, src params.Source) (*Result, error) {
	registry := catalog.NewRegistry()
	enzymes := catalog.Enzymes{}
	if def.Enzymes.Polymerase != "" {
		enzymes.Polymerase = crn.Protein(def.Enzymes.Polymerase)
	}
	if def.Enzymes.Ribosome != "" {
		enzymes.Ribosome = crn.Protein(def.Enzymes.Ribosome)
	}
	if def.Enzymes.Nuclease != "" {
		enzymes.Nuclease = crn.Protein(def.Enzymes.Nuclease)
	}

	outputs := make([]partOutput, len(def.Parts))
	g, ctx := errgroup.WithContext(ctx)

	for i, part := range def.Parts {
		i, part := i, part
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			out, err := compilePart(part, registry, enzymes, src)
			if err != nil {
				return fmt.Errorf("part %s: %w", part.ID, err)
			}
			outputs[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Network: crn.NewNetwork()}
	for _, out := range outputs {
		result.Network.AddSpecies(out.species...)
		result.Network.AddReactions(out.reactions...)
		result.Diagnostics = append(result.Diagnostics, out.diagnostics...)
	}
	return result, nil
}

func compilePart(part Part, registry *catalog.Registry, enzymes catalog.Enzymes, src params.Source) (partOutput, error) {
	req := requestFor(part, src)

	var out partOutput
	for _, name := range part.Mechanisms {
		m, err := registry.Get(name, enzymes)
		if err != nil {
			return partOutput{}, err
		}
		if adv, ok := m.(mechanism.Advisor); ok {
			out.diagnostics = append(out.diagnostics, adv.Diagnostics()...)
		}

		species, err := m.Species(req)
		if err != nil {
			return partOutput{}, err
		}
		reactions, err := m.Reactions(req)
		if err != nil {
			return partOutput{}, err
		}
		out.species = append(out.species, species...)
		out.reactions = append(out.reactions, reactions...)
	}
	return out, nil
}

func requestFor(part Part, src params.Source) mechanism.Request {
	req := mechanism.Request{
		Leak:   part.Leak,
		PartID: part.ID,
		Params: src,
	}
	if part.DNA != "" {
		req.DNA = crn.DNA(part.DNA)
	}
	if part.Transcript != "" {
		req.Transcript = crn.RNA(part.Transcript)
	}
	if part.Protein != "" {
		req.Protein = crn.Protein(part.Protein)
	}
	if part.Regulator != "" {
		req.Regulator = crn.Protein(part.Regulator)
	}
	return req
}
