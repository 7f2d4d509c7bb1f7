// Package generator builds the baseline multi-omics network: biologically
// structured nodes across time points, pathway categories, and molecular
// layers, plus the typed causal-chain links connecting them.
package generator

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/seiler-lab/biograph/internal/config"
	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

// Generator constructs baseline PathwayData graphs from the taxonomy tables.
// The random source is injected so generation is reproducible under a fixed
// seed; shape (counts and structure) is stable across seeds.
type Generator struct {
	tables *taxonomy.Tables
	cfg    config.GenerationConfig
	rng    *rand.Rand
	log    *slog.Logger
}

// New creates a Generator over the given tables, tuning config, and random
// source. A nil logger disables operational logging.
func New(tables *taxonomy.Tables, cfg config.GenerationConfig, rng *rand.Rand, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{tables: tables, cfg: cfg, rng: rng, log: log}
}

// NewSeeded creates a Generator with a deterministic source for the seed.
func NewSeeded(tables *taxonomy.Tables, cfg config.GenerationConfig, seed int64, log *slog.Logger) *Generator {
	return New(tables, cfg, rand.New(rand.NewSource(seed)), log)
}

// Generate builds the full baseline network. The result is always
// well-formed: malformed nodes and dangling links are dropped at the end,
// and an empty graph is returned rather than an error if everything was
// dropped.
func (g *Generator) Generate() models.PathwayData {
	nodes := g.buildNodes()
	links := g.buildLinks(nodes)

	graph := models.PathwayData{
		Nodes:      nodes,
		Links:      links,
		Pathways:   g.tables.PathwayNames(),
		Categories: g.tables.CategoryNames(),
	}
	graph = validate(graph, g.log)

	g.log.Debug("generated network",
		"nodes", len(graph.Nodes),
		"links", len(graph.Links),
		"pathways", len(graph.Pathways))
	return graph
}

// buildNodes allocates each (time point, category) node budget across the
// four omics layers using the time-point-dependent distribution, then
// splits each layer's allotment round-robin over the category's pathways.
func (g *Generator) buildNodes() []models.BiologicalNode {
	var nodes []models.BiologicalNode

	// nameCursor tracks curated-name consumption per (pathway, timepoint).
	nameCursor := make(map[string]int)

	for tpIdx, tp := range g.tables.Timepoints {
		dist := g.tables.OmicsDistribution[tp]

		for _, cat := range g.tables.Categories {
			for _, layer := range models.AllOmicsTypes {
				count := int(float64(g.tables.NodesPerCategory)*dist[layer] + 0.5)
				for slot := 0; slot < count; slot++ {
					pathway := cat.Pathways[slot%len(cat.Pathways)]
					node := g.buildNode(pathway, cat.Name, layer, tp, tpIdx, slot, nameCursor)
					nodes = append(nodes, node)
				}
			}
		}
	}

	return nodes
}

// buildNode synthesizes one node for a (pathway, layer, timepoint) slot.
func (g *Generator) buildNode(pathway, category string, layer models.OmicsType, tp string, tpIdx, slot int, nameCursor map[string]int) models.BiologicalNode {
	name := g.nextName(pathway, tp, nameCursor)
	expr := g.uniform(g.cfg.ExpressionRange)

	node := models.BiologicalNode{
		ID:                 fmt.Sprintf("%s_%s_%s_%s", abbreviate(pathway), layer, tp, name),
		Name:               fmt.Sprintf("%s_%s", name, tp),
		Omics:              layer,
		Pathway:            pathway,
		Timepoint:          tp,
		Categories:         []string{category},
		Expression:         expr,
		BaselineExpression: expr,
		FoldChange:         1.0,
		Significance:       models.ClampSignificance(g.rng.Float64() * models.MaxSignificance),
		Confidence:         g.confidence(pathway, layer, tpIdx, slot),
	}

	// Cross-talk: some pathways probabilistically carry a second broad
	// category tag.
	for _, rule := range g.tables.CrossTalk {
		if rule.Pathway != pathway || node.InCategory(rule.ExtraCategory) {
			continue
		}
		if g.chance(rule.Probability) {
			node.Categories = append(node.Categories, rule.ExtraCategory)
		}
	}

	return node
}

// nextName picks a descriptive name from the pathway's curated table,
// falling back to a generated abbreviation once the table is exhausted.
func (g *Generator) nextName(pathway, tp string, nameCursor map[string]int) string {
	key := pathway + "|" + tp
	cursor := nameCursor[key]
	nameCursor[key] = cursor + 1

	table := g.tables.GeneNames[pathway]
	if cursor < len(table) {
		return table[cursor]
	}
	return fmt.Sprintf("%s%d", abbreviate(pathway), cursor+1)
}

// confidence computes the weighted reliability heuristic: base value plus
// layer, familiarity, and recency bonuses, bounded jitter, and a key-player
// bonus for early group members or random draw winners. Clamped to
// [0.1, 0.95].
func (g *Generator) confidence(pathway string, layer models.OmicsType, tpIdx, slot int) float64 {
	cc := g.cfg.Confidence

	c := cc.Base
	c += cc.LayerBonus[layer]
	if g.tables.IsWellStudied(pathway) {
		c += cc.WellStudiedBonus
	}
	// Earlier time points are measured more confidently.
	c += float64(len(g.tables.Timepoints)-1-tpIdx) * cc.TimepointBonusStep
	c += g.uniform(cc.Jitter)
	if slot < cc.KeyPlayerFirstN || g.chance(cc.KeyPlayerProbability) {
		c += cc.KeyPlayerBonus
	}

	return models.ClampConfidence(c)
}

// uniform draws from [r.Min, r.Max).
func (g *Generator) uniform(r config.Range) float64 {
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

// between draws an inclusive integer from the fanout interval.
func (g *Generator) between(f config.Fanout) int {
	if f.Max <= f.Min {
		return f.Min
	}
	return f.Min + g.rng.Intn(f.Max-f.Min+1)
}

// chance returns true with probability p.
func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

// abbreviate builds a short uppercase code from a pathway name's initials,
// e.g. "Glucose Metabolism" -> "GM".
func abbreviate(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		b.WriteByte(w[0])
	}
	return strings.ToUpper(b.String())
}
