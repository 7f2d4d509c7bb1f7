// Package perturb computes how a named drug treatment changes node
// expression and link strength. The baseline graph is never mutated:
// perturbation produces a new graph with the same node and link identities
// and modified effect attributes.
package perturb

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/seiler-lab/biograph/internal/config"
	"github.com/seiler-lab/biograph/internal/logging"
	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

// Engine applies drug treatments to baseline graphs. The random source is
// injected so perturbation is reproducible under a fixed seed.
type Engine struct {
	tables    *taxonomy.Tables
	cfg       config.PerturbationConfig
	rng       *rand.Rand
	log       *slog.Logger
	decisions *logging.DecisionLogger
}

// New creates a perturbation engine. A nil logger disables operational
// logging; a nil decision logger disables decision tracing.
func New(tables *taxonomy.Tables, cfg config.PerturbationConfig, rng *rand.Rand, log *slog.Logger, decisions *logging.DecisionLogger) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{tables: tables, cfg: cfg, rng: rng, log: log, decisions: decisions}
}

// Apply produces a new PathwayData representing the treatment effect.
// A nil drug is a caller-contract violation and returns an error
// immediately; malformed nodes and links are logged and skipped.
func (e *Engine) Apply(baseline models.PathwayData, drug *models.DrugTreatment) (models.PathwayData, error) {
	if drug == nil {
		return models.PathwayData{}, fmt.Errorf("perturb: nil drug treatment")
	}

	// Broad categories reachable from the drug's target pathways; a node
	// whose pathway shares one of these is eligible.
	targetCategories := make(map[string]bool)
	for _, p := range drug.TargetPathways {
		for _, c := range e.tables.CategoriesOf(p) {
			targetCategories[c] = true
		}
	}

	out := models.PathwayData{
		Nodes:      make([]models.BiologicalNode, 0, len(baseline.Nodes)),
		Links:      make([]models.BiologicalLink, 0, len(baseline.Links)),
		Pathways:   append([]string(nil), baseline.Pathways...),
		Categories: append([]string(nil), baseline.Categories...),
	}

	names := make(map[string]string, len(baseline.Nodes)) // id -> name
	pathways := make(map[string]string, len(baseline.Nodes))

	for _, n := range baseline.Nodes {
		if !n.Valid() {
			e.log.Warn("skipping malformed node", "id", n.ID)
			continue
		}
		names[n.ID] = n.Name
		pathways[n.ID] = n.Pathway
		out.Nodes = append(out.Nodes, e.perturbNode(n, drug, targetCategories))
	}

	for _, l := range baseline.Links {
		if !l.Valid() {
			e.log.Warn("skipping malformed link", "source", l.Source, "target", l.Target)
			continue
		}
		if _, ok := names[l.Source]; !ok {
			e.log.Warn("skipping dangling link", "source", l.Source, "target", l.Target)
			continue
		}
		if _, ok := names[l.Target]; !ok {
			e.log.Warn("skipping dangling link", "source", l.Source, "target", l.Target)
			continue
		}
		out.Links = append(out.Links, e.perturbLink(l, drug, names, pathways))
	}

	e.log.Debug("applied perturbation",
		"drug", drug.ID,
		"nodes", len(out.Nodes),
		"links", len(out.Links))
	return out, nil
}

// eligible reports whether the drug can act on the node: its pathway is a
// target, its layer is a target, or its pathway shares a broad category
// with a target pathway.
func (e *Engine) eligible(n models.BiologicalNode, drug *models.DrugTreatment, targetCategories map[string]bool) bool {
	if drug.TargetsPathway(n.Pathway) || drug.TargetsOmics(n.Omics) {
		return true
	}
	for _, c := range n.Categories {
		if targetCategories[c] {
			return true
		}
	}
	return false
}

// perturbNode returns a new node record with the same identity and the
// treatment effect attributes filled in.
func (e *Engine) perturbNode(n models.BiologicalNode, drug *models.DrugTreatment, targetCategories map[string]bool) models.BiologicalNode {
	out := n
	out.Categories = append([]string(nil), n.Categories...)

	if !e.eligible(n, drug, targetCategories) {
		out.FoldChange = 1.0
		out.Expression = n.BaselineExpression
		out.PerturbedExpression = n.BaselineExpression
		return out
	}

	var fold float64
	var outcome string
	switch {
	case models.NameMatches(drug.Effects.Upregulated, n.Name):
		fold = e.uniform(e.cfg.UpregulatedFold)
		outcome = "upregulated"
	case models.NameMatches(drug.Effects.Downregulated, n.Name):
		fold = e.uniform(e.cfg.DownregulatedFold)
		outcome = "downregulated"
	default:
		r := e.rng.Float64()
		switch {
		case r < e.cfg.NodeIncreaseProbability:
			fold = e.uniform(e.cfg.NodeIncreaseFold)
			outcome = "random-increase"
		case r < e.cfg.NodeIncreaseProbability+e.cfg.NodeDecreaseProbability:
			fold = e.uniform(e.cfg.NodeDecreaseFold)
			outcome = "random-decrease"
		default:
			fold = e.uniform(e.cfg.NodeMildFold)
			outcome = "random-mild"
		}
	}

	out.FoldChange = fold
	out.PerturbedExpression = n.BaselineExpression * fold
	out.Expression = out.PerturbedExpression
	out.IsPerturbationTarget = true

	e.decisions.Log(map[string]any{
		"kind":    "node",
		"id":      n.ID,
		"name":    n.Name,
		"drug":    drug.ID,
		"outcome": outcome,
		"fold":    fold,
	})
	return out
}

// perturbLink returns a new link record with the treatment's strength
// effect applied.
func (e *Engine) perturbLink(l models.BiologicalLink, drug *models.DrugTreatment, names, pathways map[string]string) models.BiologicalLink {
	out := l
	srcName, tgtName := names[l.Source], names[l.Target]

	var factor float64
	var outcome string
	switch {
	case models.NameMatches(drug.Effects.EnhancedInteractions, srcName) ||
		models.NameMatches(drug.Effects.EnhancedInteractions, tgtName):
		factor = e.uniform(e.cfg.EnhancedFactor)
		outcome = "enhanced"
	case models.NameMatches(drug.Effects.DisruptedInteractions, srcName) ||
		models.NameMatches(drug.Effects.DisruptedInteractions, tgtName):
		factor = e.uniform(e.cfg.DisruptedFactor)
		outcome = "disrupted"
	case !drug.TargetsPathway(pathways[l.Source]) && !drug.TargetsPathway(pathways[l.Target]):
		factor = e.uniform(e.cfg.NearIdentityFactor)
		outcome = "near-identity"
	default:
		r := e.rng.Float64()
		switch {
		case r < e.cfg.LinkEnhanceProbability:
			factor = e.uniform(e.cfg.LinkEnhanceFactor)
			outcome = "random-enhance"
		case r < e.cfg.LinkEnhanceProbability+e.cfg.LinkDisruptProbability:
			factor = e.uniform(e.cfg.LinkDisruptFactor)
			outcome = "random-disrupt"
		default:
			factor = e.uniform(e.cfg.LinkMildFactor)
			outcome = "random-mild"
		}
	}

	out.StrengthChange = factor
	out.PerturbedStrength = l.BaselineStrength * factor
	out.Strength = out.PerturbedStrength

	e.decisions.Log(map[string]any{
		"kind":    "link",
		"source":  l.Source,
		"target":  l.Target,
		"drug":    drug.ID,
		"outcome": outcome,
		"factor":  factor,
	})
	return out
}

// uniform draws from [r.Min, r.Max).
func (e *Engine) uniform(r config.Range) float64 {
	return r.Min + e.rng.Float64()*(r.Max-r.Min)
}
