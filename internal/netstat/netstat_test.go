package netstat

import (
	"math"
	"testing"

	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

func node(id, tp string, omics models.OmicsType, expr, fold float64) models.BiologicalNode {
	return models.BiologicalNode{
		ID: id, Name: id, Omics: omics, Pathway: "p", Timepoint: tp,
		Categories: []string{"c"}, Expression: expr, FoldChange: fold,
	}
}

func TestComputeOverall(t *testing.T) {
	graph := models.PathwayData{
		Nodes: []models.BiologicalNode{
			node("a", "10min", models.OmicsProtein, 0.2, 1.0),
			node("b", "10min", models.OmicsProtein, 0.4, 2.0),
			node("c", "1h", models.OmicsLipid, 0.6, 3.0),
		},
		Links: []models.BiologicalLink{
			{Source: "a", Target: "b", Strength: 0.5, Type: models.LinkRegulation},
		},
	}

	stats := Compute(graph, taxonomy.Default())

	if stats.NodeCount != 3 || stats.LinkCount != 1 {
		t.Errorf("counts %d/%d, want 3/1", stats.NodeCount, stats.LinkCount)
	}
	if math.Abs(stats.Overall.Expression.Mean-0.4) > 1e-9 {
		t.Errorf("expression mean %.4f, want 0.4", stats.Overall.Expression.Mean)
	}
	if stats.Overall.Expression.Min != 0.2 || stats.Overall.Expression.Max != 0.6 {
		t.Errorf("expression min/max %.2f/%.2f, want 0.2/0.6",
			stats.Overall.Expression.Min, stats.Overall.Expression.Max)
	}
	if math.Abs(stats.Overall.FoldChange.Mean-2.0) > 1e-9 {
		t.Errorf("fold mean %.4f, want 2.0", stats.Overall.FoldChange.Mean)
	}
}

func TestSlicesFollowTaxonomyOrder(t *testing.T) {
	tables := taxonomy.Default()
	graph := models.PathwayData{
		Nodes: []models.BiologicalNode{
			node("a", "24h", models.OmicsLipid, 0.5, 1.0),
		},
	}

	stats := Compute(graph, tables)

	if len(stats.ByTimepoint) != len(tables.Timepoints) {
		t.Fatalf("have %d timepoint slices, want %d", len(stats.ByTimepoint), len(tables.Timepoints))
	}
	for i, tp := range tables.Timepoints {
		if stats.ByTimepoint[i].Label != tp {
			t.Errorf("slice %d label %q, want %q", i, stats.ByTimepoint[i].Label, tp)
		}
	}
	if len(stats.ByOmicsLayer) != len(models.AllOmicsTypes) {
		t.Fatalf("have %d layer slices, want %d", len(stats.ByOmicsLayer), len(models.AllOmicsTypes))
	}

	// Empty slices report zero counts instead of being dropped.
	if stats.ByTimepoint[0].Expression.Count != 0 {
		t.Errorf("empty 10min slice has count %d", stats.ByTimepoint[0].Expression.Count)
	}
}

func TestZeroFoldChangeExcluded(t *testing.T) {
	graph := models.PathwayData{
		Nodes: []models.BiologicalNode{
			node("a", "1h", models.OmicsProtein, 0.5, 0),
			node("b", "1h", models.OmicsProtein, 0.5, 2.0),
		},
	}

	stats := Compute(graph, taxonomy.Default())
	if stats.Overall.FoldChange.Count != 1 {
		t.Errorf("fold count %d, want 1 (zero fold changes excluded)", stats.Overall.FoldChange.Count)
	}
	if stats.Overall.Expression.Count != 2 {
		t.Errorf("expression count %d, want 2", stats.Overall.Expression.Count)
	}
}

func TestTargetCount(t *testing.T) {
	a := node("a", "1h", models.OmicsProtein, 0.5, 2.0)
	a.IsPerturbationTarget = true
	graph := models.PathwayData{Nodes: []models.BiologicalNode{a, node("b", "1h", models.OmicsProtein, 0.5, 1.0)}}

	stats := Compute(graph, taxonomy.Default())
	if stats.TargetCount != 1 {
		t.Errorf("target count %d, want 1", stats.TargetCount)
	}
}

func TestSummarizeSingleValue(t *testing.T) {
	s := summarize([]float64{0.7})
	if s.Count != 1 || s.Mean != 0.7 || s.StdDev != 0 || s.Median != 0.7 {
		t.Errorf("single-value summary %+v", s)
	}
}
