package crn

import "fmt"

type Conformation string

const (
	ConformationOpen   Conformation = "open"
	ConformationClosed Conformation = "closed"
)

// NewComplex builds a bound state from an ordered list of component species.
// Identity is derived from the explicit name plus the complex material, so
// repeated construction for the same logical state is structurally equal.
func NewComplex(name string, components ...*Species) *Species {
	comps := make([]*Species, len(components))
	copy(comps, components)
	return &Species{
		Name:       name,
		Material:   MaterialComplex,
		Components: comps,
	}
}

// OccupancyComplex names and assembles a template occupied by bound carriers.
// open is the count of open-conformation carriers on the template. A closed
// complex additionally holds exactly one closed-conformation carrier, so its
// composition is template + open + 1 carriers.
func OccupancyComplex(template, carrier *Species, open int, conf Conformation) *Species {
	carriers := open
	name := fmt.Sprintf("%sx%s_%d", carrier.Name, template.Name, open)
	if conf == ConformationClosed {
		carriers = open + 1
		name = fmt.Sprintf("%sx%s_closed_%d", carrier.Name, template.Name, open)
	}

	components := make([]*Species, 0, carriers+1)
	components = append(components, template)
	for i := 0; i < carriers; i++ {
		components = append(components, carrier)
	}
	return NewComplex(name, components...)
}

// BindingComplex names an enzyme-substrate pair, e.g. dna:rnap.
func BindingComplex(substrate, enzyme *Species) *Species {
	name := fmt.Sprintf("%s_%s", substrate.Name, enzyme.Name)
	return NewComplex(name, substrate, enzyme)
}
