package circuit

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/synbiolab/crngen/internal/params"
)

type EnzymeNames struct {
	Polymerase string `yaml:"polymerase"`
	Ribosome   string `yaml:"ribosome"`
	Nuclease   string `yaml:"nuclease"`
}

// Part is one genetic part: the participant species it introduces and the
// mechanisms that model its expression.
type Part struct {
	ID         string   `yaml:"id"`
	DNA        string   `yaml:"dna"`
	Transcript string   `yaml:"transcript"`
	Protein    string   `yaml:"protein"`
	Regulator  string   `yaml:"regulator"`
	Leak       bool     `yaml:"leak"`
	Mechanisms []string `yaml:"mechanisms"`
}

// Definition is a yaml circuit description. Parameters come from a referenced
// parameter file, optionally overlaid with inline global values.
type Definition struct {
	Name       string             `yaml:"name"`
	Enzymes    EnzymeNames        `yaml:"enzymes"`
	Parts      []Part             `yaml:"parts"`
	ParamFile  string             `yaml:"params"`
	Parameters map[string]float64 `yaml:"parameters"`

	dir string
}

func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	def.dir = filepath.Dir(path)
	if def.Name == "" {
		base := filepath.Base(path)
		def.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) validate() error {
	if len(d.Parts) == 0 {
		return fmt.Errorf("circuit %s has no parts", d.Name)
	}
	for i, p := range d.Parts {
		if p.ID == "" {
			return fmt.Errorf("part %d has no id", i)
		}
		if len(p.Mechanisms) == 0 {
			return fmt.Errorf("part %s has no mechanisms", p.ID)
		}
	}
	return nil
}

// ParamTable builds the parameter source for this circuit: the referenced
// parameter file (resolved relative to the circuit file) overlaid with the
// inline globals.
func (d *Definition) ParamTable() (*params.Table, error) {
	tbl := params.NewTable()
	if d.ParamFile != "" {
		path := d.ParamFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(d.dir, path)
		}
		loaded, err := params.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading parameter file: %w", err)
		}
		tbl = loaded
	}
	for name, v := range d.Parameters {
		tbl.Set(name, v)
	}
	return tbl, nil
}
