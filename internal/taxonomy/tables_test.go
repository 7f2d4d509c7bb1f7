package taxonomy

import (
	"testing"

	"github.com/seiler-lab/biograph/internal/models"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default taxonomy failed validation: %v", err)
	}
}

func TestPathwayNamesUniqueAndComplete(t *testing.T) {
	tables := Default()
	names := tables.PathwayNames()

	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate pathway name %q", n)
		}
		seen[n] = true
	}

	want := 0
	for _, c := range tables.Categories {
		want += len(c.Pathways)
	}
	if len(names) != want {
		t.Errorf("PathwayNames returned %d names, want %d", len(names), want)
	}
}

func TestCategoriesOf(t *testing.T) {
	tables := Default()

	tests := []struct {
		pathway string
		want    []string
	}{
		{PathwayNeurotrophin, []string{CategorySynapticPlasticity}},
		{PathwayCytokineSignaling, []string{CategoryNeuroinflammation}},
		{"No Such Pathway", nil},
	}

	for _, tt := range tests {
		got := tables.CategoriesOf(tt.pathway)
		if len(got) != len(tt.want) {
			t.Errorf("CategoriesOf(%q) = %v, want %v", tt.pathway, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("CategoriesOf(%q) = %v, want %v", tt.pathway, got, tt.want)
			}
		}
	}
}

func TestTimepointIndex(t *testing.T) {
	tables := Default()
	if got := tables.TimepointIndex("10min"); got != 0 {
		t.Errorf("TimepointIndex(10min) = %d, want 0", got)
	}
	if got := tables.TimepointIndex("24h"); got != 3 {
		t.Errorf("TimepointIndex(24h) = %d, want 3", got)
	}
	if got := tables.TimepointIndex("48h"); got != -1 {
		t.Errorf("TimepointIndex(48h) = %d, want -1", got)
	}
}

func TestDrugByID(t *testing.T) {
	tables := Default()

	byID, err := tables.DrugByID("lithium")
	if err != nil {
		t.Fatalf("DrugByID(lithium): %v", err)
	}
	if byID.Name != "Lithium" {
		t.Errorf("DrugByID(lithium).Name = %q", byID.Name)
	}

	byName, err := tables.DrugByID("Ketamine")
	if err != nil {
		t.Fatalf("DrugByID(Ketamine): %v", err)
	}
	if byName.ID != "ketamine" {
		t.Errorf("DrugByID(Ketamine).ID = %q", byName.ID)
	}

	if _, err := tables.DrugByID("aspirin"); err == nil {
		t.Error("DrugByID(aspirin) did not fail")
	}
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tables)
	}{
		{"no timepoints", func(tb *Tables) { tb.Timepoints = nil }},
		{"no categories", func(tb *Tables) { tb.Categories = nil }},
		{"zero node budget", func(tb *Tables) { tb.NodesPerCategory = 0 }},
		{"distribution does not sum to 1", func(tb *Tables) {
			tb.OmicsDistribution["1h"][models.OmicsProtein] = 0.9
		}},
		{"missing distribution row", func(tb *Tables) {
			delete(tb.OmicsDistribution, "6h")
		}},
		{"cross-talk to unknown pathway", func(tb *Tables) {
			tb.CrossTalk = append(tb.CrossTalk, CrossTalkRule{
				Pathway: "No Such Pathway", ExtraCategory: CategoryImmuneResponse, Probability: 0.5,
			})
		}},
		{"cross-talk probability out of range", func(tb *Tables) {
			tb.CrossTalk[0].Probability = 1.5
		}},
		{"well-studied unknown pathway", func(tb *Tables) {
			tb.WellStudied = append(tb.WellStudied, "No Such Pathway")
		}},
		{"duplicate drug id", func(tb *Tables) {
			tb.Drugs = append(tb.Drugs, tb.Drugs[0])
		}},
		{"drug targets unknown pathway", func(tb *Tables) {
			tb.Drugs[0].TargetPathways = append(tb.Drugs[0].TargetPathways, "No Such Pathway")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := Default()
			tt.mutate(tables)
			if err := tables.Validate(); err == nil {
				t.Error("Validate accepted broken tables")
			}
		})
	}
}

func TestDrugsNameCuratedGenes(t *testing.T) {
	tables := Default()

	// Every curated gene list should be non-empty for each drug so the
	// name-match branch of perturbation has material to work with.
	for _, d := range tables.Drugs {
		if len(d.Effects.Upregulated) == 0 && len(d.Effects.Downregulated) == 0 {
			t.Errorf("drug %s names no up- or downregulated genes", d.ID)
		}
		if len(d.TargetPathways) == 0 {
			t.Errorf("drug %s targets no pathways", d.ID)
		}
	}
}
