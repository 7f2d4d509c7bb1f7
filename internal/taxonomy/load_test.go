package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeTaxonomy(t *testing.T, tables *Tables) string {
	t.Helper()
	data, err := yaml.Marshal(tables)
	if err != nil {
		t.Fatalf("marshal taxonomy: %v", err)
	}
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write taxonomy: %v", err)
	}
	return path
}

func TestLoadRoundTrip(t *testing.T) {
	path := writeTaxonomy(t, Default())

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", loaded.Version)
	}
	if len(loaded.Timepoints) != 4 {
		t.Errorf("loaded %d timepoints, want 4", len(loaded.Timepoints))
	}
	if len(loaded.Drugs) != len(Default().Drugs) {
		t.Errorf("loaded %d drugs, want %d", len(loaded.Drugs), len(Default().Drugs))
	}
}

func TestLoadRejectsMissingVersion(t *testing.T) {
	tables := Default()
	tables.Version = ""
	path := writeTaxonomy(t, tables)

	if _, err := Load(path); err == nil {
		t.Error("Load accepted a taxonomy without a version")
	}
}

func TestLoadRejectsInvalidTables(t *testing.T) {
	tables := Default()
	tables.NodesPerCategory = -1
	path := writeTaxonomy(t, tables)

	if _, err := Load(path); err == nil {
		t.Error("Load accepted an invalid taxonomy")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}
