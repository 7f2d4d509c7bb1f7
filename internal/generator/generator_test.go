package generator

import (
	"testing"

	"github.com/seiler-lab/biograph/internal/config"
	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

func generate(t *testing.T, seed int64) models.PathwayData {
	t.Helper()
	gen := NewSeeded(taxonomy.Default(), config.Default().Generation, seed, nil)
	return gen.Generate()
}

func TestGenerateProducesWellFormedGraph(t *testing.T) {
	graph := generate(t, 42)

	if len(graph.Nodes) == 0 {
		t.Fatal("generated no nodes")
	}
	if len(graph.Links) == 0 {
		t.Fatal("generated no links")
	}

	ids := make(map[string]bool, len(graph.Nodes))
	for _, n := range graph.Nodes {
		if !n.Valid() {
			t.Errorf("invalid node %+v", n)
		}
		if ids[n.ID] {
			t.Errorf("duplicate node ID %s", n.ID)
		}
		ids[n.ID] = true

		if n.Confidence < models.MinConfidence || n.Confidence > models.MaxConfidence {
			t.Errorf("node %s confidence %.3f outside [%.2f, %.2f]",
				n.ID, n.Confidence, models.MinConfidence, models.MaxConfidence)
		}
		if n.Significance < 0 || n.Significance > models.MaxSignificance {
			t.Errorf("node %s significance %.4f outside [0, %.2f]",
				n.ID, n.Significance, models.MaxSignificance)
		}
		if n.FoldChange != 1.0 {
			t.Errorf("baseline node %s has fold change %.3f", n.ID, n.FoldChange)
		}
		if n.Expression != n.BaselineExpression {
			t.Errorf("baseline node %s expression %.3f != baseline %.3f",
				n.ID, n.Expression, n.BaselineExpression)
		}
	}
}

func TestLinksAreCleanAndUndirectedUnique(t *testing.T) {
	graph := generate(t, 42)

	ids := make(map[string]bool, len(graph.Nodes))
	for _, n := range graph.Nodes {
		ids[n.ID] = true
	}

	seen := make(map[string]bool, len(graph.Links))
	for _, l := range graph.Links {
		if l.Source == l.Target {
			t.Errorf("self link on %s", l.Source)
		}
		if !ids[l.Source] || !ids[l.Target] {
			t.Errorf("dangling link %s -> %s", l.Source, l.Target)
		}
		if l.Strength <= 0 || l.Strength > 1 {
			t.Errorf("link %s -> %s strength %.3f outside (0, 1]", l.Source, l.Target, l.Strength)
		}
		if !l.Type.Valid() {
			t.Errorf("link %s -> %s has unknown type %q", l.Source, l.Target, l.Type)
		}
		key := models.PairKey(l.Source, l.Target)
		if seen[key] {
			t.Errorf("duplicate undirected pair %s", key)
		}
		seen[key] = true
	}
}

func TestEveryTimepointCategoryLayerPopulated(t *testing.T) {
	tables := taxonomy.Default()
	graph := generate(t, 7)

	type cell struct{ tp, cat string }
	counts := make(map[cell]int)
	for _, n := range graph.Nodes {
		for _, c := range n.Categories {
			counts[cell{n.Timepoint, c}]++
		}
	}

	for _, tp := range tables.Timepoints {
		for _, cat := range tables.Categories {
			if counts[cell{tp, cat.Name}] == 0 {
				t.Errorf("no nodes for (%s, %s)", tp, cat.Name)
			}
		}
	}
}

func TestNodePathwayBelongsToCategory(t *testing.T) {
	tables := taxonomy.Default()
	graph := generate(t, 13)

	for _, n := range graph.Nodes {
		categories := tables.CategoriesOf(n.Pathway)

		// The primary category (first tag) must list the node's pathway.
		// Cross-talk tags are exempt: they are extra tags by design.
		primary := n.Categories[0]
		found := false
		for _, c := range categories {
			if c == primary {
				found = true
			}
		}
		if !found {
			t.Errorf("node %s: primary category %q does not list pathway %q", n.ID, primary, n.Pathway)
		}
	}
}

func TestSameSeedSameGraph(t *testing.T) {
	a := generate(t, 99)
	b := generate(t, 99)

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("same seed produced different node sets")
	}
	if len(a.Links) != len(b.Links) {
		t.Fatalf("same seed produced %d vs %d links", len(a.Links), len(b.Links))
	}
	for i := range a.Links {
		if a.Links[i] != b.Links[i] {
			t.Fatalf("link %d differs between runs: %+v vs %+v", i, a.Links[i], b.Links[i])
		}
	}
}

func TestDifferentSeedsDifferentExpression(t *testing.T) {
	a := generate(t, 1)
	b := generate(t, 2)

	same := 0
	for i := range a.Nodes {
		if i < len(b.Nodes) && a.Nodes[i].Expression == b.Nodes[i].Expression {
			same++
		}
	}
	if same == len(a.Nodes) {
		t.Error("different seeds produced identical expression values")
	}
}

func TestCuratedNamesComeFirst(t *testing.T) {
	graph := generate(t, 5)

	// Neurotrophin Signaling's curated table starts with BDNF; at least one
	// node per time point should carry it.
	found := false
	for _, n := range graph.Nodes {
		if n.Pathway == taxonomy.PathwayNeurotrophin && len(n.Name) >= 4 && n.Name[:4] == "BDNF" {
			found = true
			break
		}
	}
	if !found {
		t.Error("no BDNF node generated for Neurotrophin Signaling")
	}
}

func TestOmicsChainLinkTypes(t *testing.T) {
	graph := generate(t, 17)
	byID := make(map[string]models.BiologicalNode, len(graph.Nodes))
	for _, n := range graph.Nodes {
		byID[n.ID] = n
	}

	for _, l := range graph.Links {
		s, tgt := byID[l.Source], byID[l.Target]
		pair := [2]models.OmicsType{s.Omics, tgt.Omics}

		// Conversion links only appear on metabolic chain pairs.
		if l.Type == models.LinkConversion {
			ok := pair == [2]models.OmicsType{models.OmicsProtein, models.OmicsMetabolite} ||
				pair == [2]models.OmicsType{models.OmicsMetabolite, models.OmicsLipid}
			if !ok {
				t.Errorf("conversion link between %s and %s layers", s.Omics, tgt.Omics)
			}
		}
	}
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Glucose Metabolism", "GM"},
		{"HPA Axis Signaling", "HAS"},
		{"Neurotrophin Signaling", "NS"},
	}
	for _, tt := range tests {
		if got := abbreviate(tt.in); got != tt.want {
			t.Errorf("abbreviate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
