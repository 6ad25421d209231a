package circuit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/synbiolab/crngen/internal/params"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const testCircuit = `
name: reporter
enzymes:
  polymerase: rnap
  ribosome: ribosome
  nuclease: rnase
parts:
  - id: ptet
    dna: ptet
    transcript: tetR
    protein: tetR
    mechanisms: [simple_transcription, simple_translation, rna_degradation_mm]
parameters:
  ktx: 0.05
  ktl: 0.1
  kb: 100.0
  ku: 10.0
  kdeg: 1.0
`

func TestLoadDefinition(t *testing.T) {
	path := writeFile(t, t.TempDir(), "reporter.yaml", testCircuit)

	def, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "reporter" {
		t.Errorf("expected name reporter, got %s", def.Name)
	}
	if len(def.Parts) != 1 || len(def.Parts[0].Mechanisms) != 3 {
		t.Errorf("unexpected parts: %+v", def.Parts)
	}
}

func TestLoadRejectsEmptyParts(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "name: empty\nparts: []\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for circuit without parts")
	}
}

func TestParamTableInlineAndFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "params.yaml", "global:\n  ktx: 0.01\n  kb: 50.0\n")
	path := writeFile(t, dir, "c.yaml", `
name: c
params: params.yaml
parameters:
  ktx: 0.99
parts:
  - id: p1
    dna: p1
    mechanisms: [gene_expression]
`)

	def, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := def.ParamTable()
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := tbl.Resolve("ktx", "p1", "x"); v != 0.99 {
		t.Errorf("inline parameter should override file, got %f", v)
	}
	if v, _ := tbl.Resolve("kb", "p1", "x"); v != 50.0 {
		t.Errorf("file parameter should survive overlay, got %f", v)
	}
}

func TestCompile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "reporter.yaml", testCircuit)
	def, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := def.ParamTable()
	if err != nil {
		t.Fatal(err)
	}

	result, err := Compile(context.Background(), def, tbl)
	if err != nil {
		t.Fatal(err)
	}

	// tx (1) + tl (1) + degradation bind/unbind/catalyze (3)
	if len(result.Network.Reactions) != 5 {
		t.Errorf("expected 5 reactions, got %d", len(result.Network.Reactions))
	}
	if len(result.Network.Species) == 0 {
		t.Error("expected species in compiled network")
	}
}

func TestCompileDeterministic(t *testing.T) {
	path := writeFile(t, t.TempDir(), "reporter.yaml", testCircuit)
	def, _ := Load(path)
	tbl, _ := def.ParamTable()

	a, err := Compile(context.Background(), def, tbl)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compile(context.Background(), def, tbl)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Network.Reactions) != len(b.Network.Reactions) {
		t.Fatal("reaction counts differ between compilations")
	}
	for i := range a.Network.Reactions {
		if !a.Network.Reactions[i].Equal(b.Network.Reactions[i]) {
			t.Errorf("reaction %d differs between compilations", i)
		}
	}
	for i := range a.Network.Species {
		if !a.Network.Species[i].Equal(b.Network.Species[i]) {
			t.Errorf("species %d differs between compilations", i)
		}
	}
}

func TestCompileMissingParameterFails(t *testing.T) {
	path := writeFile(t, t.TempDir(), "reporter.yaml", testCircuit)
	def, _ := Load(path)

	_, err := Compile(context.Background(), def, params.NewTable())
	if err == nil {
		t.Fatal("expected compile failure with empty parameter table")
	}
}

func TestCompileCollectsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "multi.yaml", `
name: multi
enzymes:
  polymerase: rnap
  ribosome: ribosome
parts:
  - id: ptet
    dna: ptet
    transcript: tetR
    protein: tetR
    mechanisms: [multi_tx, multi_tl]
parameters:
  max_occ: 2
  k1: 20.0
  k2: 5.0
  k_iso: 2.0
  ktx_solo: 0.5
  kbr: 15.0
  kur: 4.0
  k_iso_r: 1.5
  ktl_solo: 0.4
`)
	def, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	tbl, _ := def.ParamTable()

	result, err := Compile(context.Background(), def, tbl)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Diagnostics) == 0 {
		t.Error("expected multi_tl diagnostics to be collected")
	}
	if len(result.Network.Reactions) != 18 {
		t.Errorf("expected 9 + 9 reactions at max_occ 2, got %d", len(result.Network.Reactions))
	}
}
