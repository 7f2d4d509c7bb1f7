// Package netstat computes summary statistics over a graph snapshot:
// expression and fold-change distributions sliced by time point and
// omics layer, plus link strength summaries.
package netstat

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

// Summary describes one distribution of values.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// SliceStats is a Summary pair (expression, fold change) for one slice of
// the node population.
type SliceStats struct {
	Label      string  `json:"label"`
	Expression Summary `json:"expression"`
	FoldChange Summary `json:"fold_change"`
}

// GraphStats aggregates the per-slice summaries for a whole snapshot.
type GraphStats struct {
	NodeCount    int          `json:"node_count"`
	LinkCount    int          `json:"link_count"`
	Overall      SliceStats   `json:"overall"`
	ByTimepoint  []SliceStats `json:"by_timepoint"`
	ByOmicsLayer []SliceStats `json:"by_omics_layer"`
	LinkStrength Summary      `json:"link_strength"`
	TargetCount  int          `json:"perturbation_target_count"`
}

// Compute builds the full statistics report for a snapshot. Time-point
// slices follow the taxonomy ordering; omics slices follow the canonical
// layer ordering.
func Compute(graph models.PathwayData, tables *taxonomy.Tables) GraphStats {
	gs := GraphStats{
		NodeCount: len(graph.Nodes),
		LinkCount: len(graph.Links),
		Overall:   nodeSlice("all", graph.Nodes, func(models.BiologicalNode) bool { return true }),
	}

	for _, tp := range tables.Timepoints {
		tp := tp
		gs.ByTimepoint = append(gs.ByTimepoint, nodeSlice(tp, graph.Nodes, func(n models.BiologicalNode) bool {
			return n.Timepoint == tp
		}))
	}

	for _, layer := range models.AllOmicsTypes {
		layer := layer
		gs.ByOmicsLayer = append(gs.ByOmicsLayer, nodeSlice(string(layer), graph.Nodes, func(n models.BiologicalNode) bool {
			return n.Omics == layer
		}))
	}

	strengths := make([]float64, 0, len(graph.Links))
	for _, l := range graph.Links {
		strengths = append(strengths, l.Strength)
	}
	gs.LinkStrength = summarize(strengths)

	for _, n := range graph.Nodes {
		if n.IsPerturbationTarget {
			gs.TargetCount++
		}
	}

	return gs
}

func nodeSlice(label string, nodes []models.BiologicalNode, keep func(models.BiologicalNode) bool) SliceStats {
	var expr, fold []float64
	for _, n := range nodes {
		if !keep(n) {
			continue
		}
		expr = append(expr, n.Expression)
		if n.FoldChange != 0 {
			fold = append(fold, n.FoldChange)
		}
	}
	return SliceStats{
		Label:      label,
		Expression: summarize(expr),
		FoldChange: summarize(fold),
	}
}

// summarize computes the moments and order statistics of one value set.
func summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s := Summary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}
