package query

import (
	"fmt"
	"strings"

	"github.com/seiler-lab/biograph/internal/models"
)

// apply runs the extracted intents as a sequential filter pipeline:
// logical AND across distinct intents, OR across multiple values within
// one intent. Filter order is fixed: omics layer, time point, pathway,
// category, expression direction, drug-target flag, gene name.
func (e *Engine) apply(in intents, nodes []models.BiologicalNode) models.QueryResult {
	candidates := nodes
	fired := make(map[string][]string)
	var order []string

	filter := func(name string, values []string, keep func(models.BiologicalNode) bool) {
		if len(values) == 0 {
			return
		}
		next := make([]models.BiologicalNode, 0, len(candidates))
		for _, n := range candidates {
			if keep(n) {
				next = append(next, n)
			}
		}
		candidates = next
		fired[name] = values
		order = append(order, name)
	}

	filter("omics layer", omicsStrings(in.omics), func(n models.BiologicalNode) bool {
		for _, o := range in.omics {
			if n.Omics == o {
				return true
			}
		}
		return false
	})

	filter("time point", in.timepoints, func(n models.BiologicalNode) bool {
		for _, tp := range in.timepoints {
			if n.Timepoint == tp {
				return true
			}
		}
		return false
	})

	filter("pathway", in.pathways, func(n models.BiologicalNode) bool {
		for _, p := range in.pathways {
			if n.Pathway == p {
				return true
			}
		}
		return false
	})

	filter("category", in.categories, func(n models.BiologicalNode) bool {
		for _, c := range in.categories {
			if n.InCategory(c) {
				return true
			}
		}
		return false
	})

	filter("expression direction", directionStrings(in.directions), func(n models.BiologicalNode) bool {
		for _, d := range in.directions {
			if e.matchesDirection(n, d) {
				return true
			}
		}
		return false
	})

	if in.drugTarget != nil {
		label := "perturbed"
		if !*in.drugTarget {
			label = "unperturbed"
		}
		filter("drug targets", []string{label}, func(n models.BiologicalNode) bool {
			return n.IsPerturbationTarget == *in.drugTarget
		})
	}

	filter("gene", in.genes, func(n models.BiologicalNode) bool {
		lower := strings.ToLower(n.Name)
		for _, g := range in.genes {
			if strings.Contains(lower, strings.ToLower(g)) {
				return true
			}
		}
		return false
	})

	return models.QueryResult{
		Nodes:       candidates,
		Explanation: explanation(order, fired, len(candidates), len(nodes)),
		Confidence:  confidence(order, fired, len(candidates), len(nodes)),
		Intents:     fired,
	}
}

// matchesDirection applies the expression-direction thresholds. A fold
// change "exists" when the field is non-zero; ad hoc node lists without
// fold changes fall back to raw expression thresholds.
func (e *Engine) matchesDirection(n models.BiologicalNode, d models.ExpressionDirection) bool {
	hasFold := n.FoldChange != 0

	switch d {
	case models.DirectionUpregulated:
		if hasFold {
			return n.FoldChange > e.cfg.UpregulatedFoldThreshold
		}
		return n.Expression > e.cfg.UpregulatedExprThreshold

	case models.DirectionDownregulated:
		if hasFold {
			return n.FoldChange < e.cfg.DownregulatedFoldThreshold
		}
		return n.Expression < e.cfg.DownregulatedExprThreshold

	case models.DirectionUnchanged:
		if hasFold {
			return n.FoldChange >= e.cfg.DownregulatedFoldThreshold &&
				n.FoldChange <= e.cfg.UpregulatedFoldThreshold
		}
		return n.Expression >= e.cfg.DownregulatedExprThreshold &&
			n.Expression <= e.cfg.UpregulatedExprThreshold
	}
	return false
}

// confidence scores how specific the query was: 0.2 for an empty result,
// 0.4 when no filter had any effect, 0.9 when a pathway or category was
// recognized, 0.8 otherwise.
func confidence(order []string, fired map[string][]string, matched, total int) float64 {
	if matched == 0 {
		return models.QueryConfidenceEmpty
	}
	if len(order) == 0 {
		return models.QueryConfidenceUnfiltered
	}
	if len(fired["pathway"]) > 0 || len(fired["category"]) > 0 {
		return models.QueryConfidenceSpecific
	}
	return models.QueryConfidenceBase
}

// explanation enumerates, in filter order, which intents fired and with
// what matched values.
func explanation(order []string, fired map[string][]string, matched, total int) string {
	if len(order) == 0 {
		return fmt.Sprintf("No recognizable filters in query; returning all %d nodes.", total)
	}

	parts := make([]string, 0, len(order))
	for _, name := range order {
		parts = append(parts, fmt.Sprintf("%s [%s]", name, strings.Join(fired[name], ", ")))
	}
	return fmt.Sprintf("Matched %d of %d nodes with filters: %s.", matched, total, strings.Join(parts, "; "))
}

func omicsStrings(layers []models.OmicsType) []string {
	out := make([]string, 0, len(layers))
	for _, o := range layers {
		out = append(out, string(o))
	}
	return out
}

func directionStrings(dirs []models.ExpressionDirection) []string {
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, string(d))
	}
	return out
}
