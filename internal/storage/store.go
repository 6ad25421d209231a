package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/synbiolab/crngen/internal/crn"
)

// Store persists compiled networks under a data directory, one build per
// subdirectory: metadata.json, network.json, species.csv, reactions.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID        string    `json:"id"`
	Circuit   string    `json:"circuit"`
	Timestamp time.Time `json:"timestamp"`
	Species   int       `json:"species"`
	Reactions int       `json:"reactions"`
	Warnings  []string  `json:"warnings,omitempty"`
}

type SpeciesRecord struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Material   string   `json:"material"`
	Components []string `json:"components,omitempty"`
}

type WeightedRecord struct {
	Species       string `json:"species"`
	Stoichiometry int    `json:"stoichiometry"`
}

type ReactionRecord struct {
	Reactants []WeightedRecord `json:"reactants"`
	Products  []WeightedRecord `json:"products"`
	Kind      string           `json:"kind"`
	Rate      float64          `json:"rate,omitempty"`
	Display   string           `json:"display"`
}

type NetworkRecord struct {
	Meta      Metadata         `json:"meta"`
	Species   []SpeciesRecord  `json:"species"`
	Reactions []ReactionRecord `json:"reactions"`
}

// Record flattens a network into its serializable form. Propensities are
// recorded by kind; only mass-action rates survive the round trip, which is
// enough for listing and export.
func Record(meta Metadata, net *crn.Network) NetworkRecord {
	rec := NetworkRecord{Meta: meta}
	for _, sp := range net.Species {
		sr := SpeciesRecord{ID: sp.ID(), Name: sp.Name, Material: string(sp.Material)}
		for _, c := range sp.Components {
			sr.Components = append(sr.Components, c.ID())
		}
		rec.Species = append(rec.Species, sr)
	}
	for _, r := range net.Reactions {
		rr := ReactionRecord{Kind: r.Propensity.Kind(), Display: r.String()}
		if ma, ok := r.Propensity.(crn.MassAction); ok {
			rr.Rate = ma.KForward
		}
		for _, w := range r.Reactants {
			rr.Reactants = append(rr.Reactants, WeightedRecord{Species: w.Species.ID(), Stoichiometry: w.Stoichiometry})
		}
		for _, w := range r.Products {
			rr.Products = append(rr.Products, WeightedRecord{Species: w.Species.ID(), Stoichiometry: w.Stoichiometry})
		}
		rec.Reactions = append(rec.Reactions, rr)
	}
	return rec
}

func (s *Store) Save(circuit string, net *crn.Network, warnings []string) (string, error) {
	buildID := fmt.Sprintf("%s_%s", circuit, uuid.NewString()[:8])
	buildDir := filepath.Join(s.baseDir, buildID)

	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return "", err
	}

	meta := Metadata{
		ID:        buildID,
		Circuit:   circuit,
		Timestamp: time.Now(),
		Species:   len(net.Species),
		Reactions: len(net.Reactions),
		Warnings:  warnings,
	}
	rec := Record(meta, net)

	if err := writeJSON(filepath.Join(buildDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(buildDir, "network.json"), rec); err != nil {
		return "", err
	}
	if err := writeSpeciesCSV(filepath.Join(buildDir, "species.csv"), rec); err != nil {
		return "", err
	}
	if err := writeReactionsCSV(filepath.Join(buildDir, "reactions.csv"), rec); err != nil {
		return "", err
	}

	return buildID, nil
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSpeciesCSV(path string, rec NetworkRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"id", "name", "material", "components"}); err != nil {
		return err
	}
	for _, sp := range rec.Species {
		row := []string{sp.ID, sp.Name, sp.Material, strconv.Itoa(len(sp.Components))}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeReactionsCSV(path string, rec NetworkRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"index", "reaction", "kind", "rate"}); err != nil {
		return err
	}
	for i, r := range rec.Reactions {
		row := []string{
			strconv.Itoa(i),
			r.Display,
			r.Kind,
			strconv.FormatFloat(r.Rate, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	builds := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta Metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		builds = append(builds, meta)
	}

	return builds, nil
}

func (s *Store) Load(buildID string) (*NetworkRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, buildID, "network.json"))
	if err != nil {
		return nil, err
	}

	var rec NetworkRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// ExportJSON streams a stored record to w.
func ExportJSON(w io.Writer, rec *NetworkRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
