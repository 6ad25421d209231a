package params

import (
	"os"

	"gopkg.in/yaml.v3"
)

type fileFormat struct {
	Global     map[string]float64            `yaml:"global"`
	Mechanisms map[string]map[string]float64 `yaml:"mechanisms"`
	Parts      map[string]filePart           `yaml:"parts"`
}

type filePart struct {
	Values     map[string]float64            `yaml:"values"`
	Mechanisms map[string]map[string]float64 `yaml:"mechanisms"`
}

// Load reads a parameter table from a yaml file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	t := NewTable()
	for name, v := range f.Global {
		t.Set(name, v)
	}
	for mech, values := range f.Mechanisms {
		for name, v := range values {
			t.SetMechanism(mech, name, v)
		}
	}
	for partID, part := range f.Parts {
		for name, v := range part.Values {
			t.SetPart(partID, name, v)
		}
		for mech, values := range part.Mechanisms {
			for name, v := range values {
				t.SetScoped(mech, partID, name, v)
			}
		}
	}
	return t, nil
}
