package query

import (
	"strings"
	"testing"

	"github.com/seiler-lab/biograph/internal/config"
	"github.com/seiler-lab/biograph/internal/generator"
	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

func testGraph(t *testing.T) models.PathwayData {
	t.Helper()
	gen := generator.NewSeeded(taxonomy.Default(), config.Default().Generation, 42, nil)
	return gen.Generate()
}

func runQuery(t *testing.T, text string, nodes []models.BiologicalNode) models.QueryResult {
	t.Helper()
	result, err := ParseQuery(text, nodes, taxonomy.Default(), config.Default().Query)
	if err != nil {
		t.Fatalf("ParseQuery(%q): %v", text, err)
	}
	return result
}

func TestOmicsAndDirectionQuery(t *testing.T) {
	graph := testGraph(t)

	// Mark a few proteins as upregulated so the direction filter has hits.
	for i := range graph.Nodes {
		if graph.Nodes[i].Omics == models.OmicsProtein && i%3 == 0 {
			graph.Nodes[i].FoldChange = 2.0
		}
	}

	result := runQuery(t, "Show me proteins that are upregulated", graph.Nodes)

	if result.Confidence != models.QueryConfidenceBase {
		t.Errorf("confidence = %.2f, want %.2f", result.Confidence, models.QueryConfidenceBase)
	}
	if !strings.Contains(result.Explanation, "protein") {
		t.Errorf("explanation %q does not mention protein", result.Explanation)
	}
	if !strings.Contains(result.Explanation, "upregulated") {
		t.Errorf("explanation %q does not mention upregulated", result.Explanation)
	}
	if len(result.Nodes) == 0 {
		t.Fatal("no nodes matched")
	}
	for _, n := range result.Nodes {
		if n.Omics != models.OmicsProtein {
			t.Errorf("matched %s node %s", n.Omics, n.ID)
		}
		if n.FoldChange <= 1.2 {
			t.Errorf("matched node %s with fold change %.3f", n.ID, n.FoldChange)
		}
	}
}

func TestUnrecognizedQuery(t *testing.T) {
	graph := testGraph(t)
	result := runQuery(t, "banana", graph.Nodes)

	if result.Confidence != models.QueryConfidenceUnfiltered {
		t.Errorf("confidence = %.2f, want %.2f", result.Confidence, models.QueryConfidenceUnfiltered)
	}
	if len(result.Nodes) != len(graph.Nodes) {
		t.Errorf("matched %d nodes, want all %d", len(result.Nodes), len(graph.Nodes))
	}
	if !strings.Contains(result.Explanation, "No recognizable filters") {
		t.Errorf("explanation %q does not state the no-filter case", result.Explanation)
	}
}

func TestEmptyNodeListIsNotAnError(t *testing.T) {
	result := runQuery(t, "Show me proteins", nil)

	if result.Confidence != models.QueryConfidenceEmpty {
		t.Errorf("confidence = %.2f, want %.2f", result.Confidence, models.QueryConfidenceEmpty)
	}
	if len(result.Nodes) != 0 {
		t.Errorf("matched %d nodes from an empty list", len(result.Nodes))
	}
}

func TestPathwayQueryEarnsSpecificConfidence(t *testing.T) {
	graph := testGraph(t)
	result := runQuery(t, "What happens in glutamate signaling?", graph.Nodes)

	if result.Confidence != models.QueryConfidenceSpecific {
		t.Errorf("confidence = %.2f, want %.2f", result.Confidence, models.QueryConfidenceSpecific)
	}
	for _, n := range result.Nodes {
		if n.Pathway != taxonomy.PathwayGlutamateSignaling {
			t.Errorf("matched node %s from pathway %q", n.ID, n.Pathway)
		}
	}
}

func TestCategoryPartialMention(t *testing.T) {
	graph := testGraph(t)
	result := runQuery(t, "immune nodes at 24h", graph.Nodes)

	if result.Confidence != models.QueryConfidenceSpecific {
		t.Errorf("confidence = %.2f, want %.2f", result.Confidence, models.QueryConfidenceSpecific)
	}
	for _, n := range result.Nodes {
		if !n.InCategory(taxonomy.CategoryImmuneResponse) {
			t.Errorf("matched node %s outside Immune Response", n.ID)
		}
		if n.Timepoint != "24h" {
			t.Errorf("matched node %s at %s, want 24h", n.ID, n.Timepoint)
		}
	}
}

func TestTimepointSynonyms(t *testing.T) {
	graph := testGraph(t)

	tests := []struct {
		query string
		want  map[string]bool
	}{
		{"early changes", map[string]bool{"10min": true, "1h": true}},
		{"late changes", map[string]bool{"6h": true, "24h": true}},
		{"long-term changes", map[string]bool{"6h": true, "24h": true}},
		{"nodes at 1h", map[string]bool{"1h": true}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			result := runQuery(t, tt.query, graph.Nodes)
			if len(result.Nodes) == 0 {
				t.Fatal("no nodes matched")
			}
			for _, n := range result.Nodes {
				if !tt.want[n.Timepoint] {
					t.Errorf("matched node at %s, want one of %v", n.Timepoint, tt.want)
				}
			}
		})
	}
}

func TestUpregulatedDoesNotTriggerLate(t *testing.T) {
	graph := testGraph(t)
	for i := range graph.Nodes {
		graph.Nodes[i].FoldChange = 2.0
	}

	// "upregulated" contains the letters of "late"; the time-point intent
	// must not fire on it.
	result := runQuery(t, "upregulated nodes", graph.Nodes)

	if _, ok := result.Intents["time point"]; ok {
		t.Errorf("time-point intent fired on %v", result.Intents)
	}
	timepoints := make(map[string]bool)
	for _, n := range result.Nodes {
		timepoints[n.Timepoint] = true
	}
	if len(timepoints) < 4 {
		t.Errorf("results restricted to timepoints %v", timepoints)
	}
}

func TestDrugTargetIntent(t *testing.T) {
	graph := testGraph(t)
	for i := range graph.Nodes {
		if i%4 == 0 {
			graph.Nodes[i].IsPerturbationTarget = true
		}
	}

	affected := runQuery(t, "nodes affected by the drug", graph.Nodes)
	for _, n := range affected.Nodes {
		if !n.IsPerturbationTarget {
			t.Errorf("affected query matched untargeted node %s", n.ID)
		}
	}

	unaffected := runQuery(t, "nodes not affected by the drug", graph.Nodes)
	for _, n := range unaffected.Nodes {
		if n.IsPerturbationTarget {
			t.Errorf("not-affected query matched targeted node %s", n.ID)
		}
	}

	if len(affected.Nodes)+len(unaffected.Nodes) != len(graph.Nodes) {
		t.Error("affected and unaffected queries do not partition the graph")
	}
}

func TestGeneSymbolQuery(t *testing.T) {
	graph := testGraph(t)
	result := runQuery(t, "What happened to BDNF?", graph.Nodes)

	if len(result.Nodes) == 0 {
		t.Fatal("no BDNF nodes matched")
	}
	for _, n := range result.Nodes {
		if !strings.Contains(strings.ToLower(n.Name), "bdnf") {
			t.Errorf("gene query matched %s", n.Name)
		}
	}
}

func TestSequentialFiltersNarrow(t *testing.T) {
	graph := testGraph(t)
	broad := runQuery(t, "proteins", graph.Nodes)
	narrow := runQuery(t, "proteins at 1h", graph.Nodes)

	if len(narrow.Nodes) > len(broad.Nodes) {
		t.Errorf("adding a filter grew the result: %d > %d", len(narrow.Nodes), len(broad.Nodes))
	}
}

func TestEngineRejectsForeignNodeList(t *testing.T) {
	graph := testGraph(t)
	eng, err := NewEngine(graph, taxonomy.Default(), config.Default().Query)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer eng.Close()

	other := generator.NewSeeded(taxonomy.Default(), config.Default().Generation, 1234, nil).Generate()
	if _, err := eng.Run("proteins", other.Nodes); err == nil {
		t.Error("engine accepted nodes from a different graph")
	}
}

func TestEngineAcceptsPerturbedNodeList(t *testing.T) {
	graph := testGraph(t)
	eng, err := NewEngine(graph, taxonomy.Default(), config.Default().Query)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer eng.Close()

	// Same identities with changed effect attributes must pass the check.
	perturbed := graph.Clone()
	for i := range perturbed.Nodes {
		perturbed.Nodes[i].FoldChange = 2.5
		perturbed.Nodes[i].IsPerturbationTarget = true
	}
	if _, err := eng.Run("proteins", perturbed.Nodes); err != nil {
		t.Errorf("engine rejected perturbed node list of its own graph: %v", err)
	}
}

func TestFuzzyPathwayMatchToleratesTypo(t *testing.T) {
	graph := testGraph(t)
	result := runQuery(t, "glutamat signaling nodes", graph.Nodes)

	if len(result.Intents["pathway"]) == 0 {
		t.Fatalf("typo query recognized no pathway: %v", result.Intents)
	}
	found := false
	for _, p := range result.Intents["pathway"] {
		if p == taxonomy.PathwayGlutamateSignaling {
			found = true
		}
	}
	if !found {
		t.Errorf("typo matched pathways %v", result.Intents["pathway"])
	}
}
