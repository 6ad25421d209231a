package crn

import "strings"

type Material string

const (
	MaterialNone    Material = ""
	MaterialDNA     Material = "dna"
	MaterialRNA     Material = "rna"
	MaterialProtein Material = "protein"
	MaterialComplex Material = "complex"
)

// Species is an immutable molecular identity. A Species with a non-empty
// Components list is a complex (a bound state of its components).
type Species struct {
	Name       string
	Material   Material
	Attributes []string
	Components []*Species
}

func NewSpecies(name string, material Material, attributes ...string) *Species {
	return &Species{
		Name:       name,
		Material:   material,
		Attributes: attributes,
	}
}

func DNA(name string) *Species     { return NewSpecies(name, MaterialDNA) }
func RNA(name string) *Species     { return NewSpecies(name, MaterialRNA) }
func Protein(name string) *Species { return NewSpecies(name, MaterialProtein) }

// ID returns the canonical identifier used for structural equality and
// network deduplication.
func (s *Species) ID() string {
	var b strings.Builder
	if s.Material != MaterialNone {
		b.WriteString(string(s.Material))
		b.WriteString("_")
	}
	b.WriteString(s.Name)
	for _, a := range s.Attributes {
		b.WriteString("_")
		b.WriteString(a)
	}
	return b.String()
}

func (s *Species) Equal(other *Species) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.ID() == other.ID()
}

func (s *Species) IsComplex() bool { return len(s.Components) > 0 }

func (s *Species) String() string { return s.ID() }
