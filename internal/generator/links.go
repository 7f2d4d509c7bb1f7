package generator

import (
	"strings"

	"github.com/seiler-lab/biograph/internal/models"
)

// linkBuilder accumulates links with undirected duplicate checking across
// all passes: (a,b) and (b,a) are the same edge.
type linkBuilder struct {
	links []models.BiologicalLink
	seen  map[string]bool
}

func newLinkBuilder() *linkBuilder {
	return &linkBuilder{seen: make(map[string]bool)}
}

// add appends a link unless it is a self-link or the pair already exists.
func (lb *linkBuilder) add(source, target string, strength float64, typ models.LinkType) {
	if source == target {
		return
	}
	key := models.PairKey(source, target)
	if lb.seen[key] {
		return
	}
	lb.seen[key] = true
	lb.links = append(lb.links, models.BiologicalLink{
		Source:           source,
		Target:           target,
		Strength:         strength,
		BaselineStrength: strength,
		StrengthChange:   1.0,
		Type:             typ,
	})
}

// nodeGroups indexes node positions for the link passes.
type nodeGroups struct {
	byPathwayTp      map[string][]int // pathway|timepoint
	byPathwayTpLayer map[string][]int // pathway|timepoint|layer
	byCategory       map[string][]int // category name
	all              []int
}

func groupNodes(nodes []models.BiologicalNode) *nodeGroups {
	g := &nodeGroups{
		byPathwayTp:      make(map[string][]int),
		byPathwayTpLayer: make(map[string][]int),
		byCategory:       make(map[string][]int),
	}
	for i, n := range nodes {
		pt := n.Pathway + "|" + n.Timepoint
		g.byPathwayTp[pt] = append(g.byPathwayTp[pt], i)
		ptl := pt + "|" + string(n.Omics)
		g.byPathwayTpLayer[ptl] = append(g.byPathwayTpLayer[ptl], i)
		for _, c := range n.Categories {
			g.byCategory[c] = append(g.byCategory[c], i)
		}
		g.all = append(g.all, i)
	}
	return g
}

// buildLinks runs the six ordered, additive link passes.
func (g *Generator) buildLinks(nodes []models.BiologicalNode) []models.BiologicalLink {
	lb := newLinkBuilder()
	groups := groupNodes(nodes)

	g.linkIntraPathway(nodes, groups, lb)
	g.linkTemporalCascade(nodes, groups, lb)
	g.linkFeedback(nodes, groups, lb)
	g.linkCrossPathway(nodes, groups, lb)
	g.linkCrossCategory(nodes, groups, lb)
	g.linkOmicsChain(nodes, groups, lb)

	return lb.links
}

// Pass 1: dense intra-pathway, same-time-point links modeling local causal
// chains. Every node links to 2-4 random co-pathway, co-time-point nodes.
func (g *Generator) linkIntraPathway(nodes []models.BiologicalNode, groups *nodeGroups, lb *linkBuilder) {
	for i, n := range nodes {
		peers := groups.byPathwayTp[n.Pathway+"|"+n.Timepoint]
		k := g.between(g.cfg.IntraPathwayFanout)
		for _, j := range g.sample(peers, k, i) {
			lb.add(n.ID, nodes[j].ID, g.uniform(g.cfg.IntraPathwayStrength), models.LinkRegulation)
		}
	}
}

// Pass 2: forward temporal cascade. Nodes at time point t link to 1-3
// random same-pathway nodes at t+1, modeling progression.
func (g *Generator) linkTemporalCascade(nodes []models.BiologicalNode, groups *nodeGroups, lb *linkBuilder) {
	for i, n := range nodes {
		tpIdx := g.tables.TimepointIndex(n.Timepoint)
		if tpIdx < 0 || tpIdx >= len(g.tables.Timepoints)-1 {
			continue
		}
		next := g.tables.Timepoints[tpIdx+1]
		peers := groups.byPathwayTp[n.Pathway+"|"+next]
		k := g.between(g.cfg.CascadeFanout)
		for _, j := range g.sample(peers, k, i) {
			lb.add(n.ID, nodes[j].ID, g.uniform(g.cfg.CascadeStrength), models.LinkRegulation)
		}
	}
}

// Pass 3: backward feedback. With 30% probability a node links back to a
// random same-pathway node at the previous time point.
func (g *Generator) linkFeedback(nodes []models.BiologicalNode, groups *nodeGroups, lb *linkBuilder) {
	for i, n := range nodes {
		tpIdx := g.tables.TimepointIndex(n.Timepoint)
		if tpIdx <= 0 || !g.chance(g.cfg.FeedbackProbability) {
			continue
		}
		prev := g.tables.Timepoints[tpIdx-1]
		peers := groups.byPathwayTp[n.Pathway+"|"+prev]
		for _, j := range g.sample(peers, 1, i) {
			lb.add(n.ID, nodes[j].ID, g.uniform(g.cfg.FeedbackStrength), models.LinkRegulation)
		}
	}
}

// Pass 4: cross-pathway within category. With 40% probability per node,
// link to a node of a different pathway in the same broad category,
// preferring the same time point.
func (g *Generator) linkCrossPathway(nodes []models.BiologicalNode, groups *nodeGroups, lb *linkBuilder) {
	for i, n := range nodes {
		if !g.chance(g.cfg.CrossPathwayProbability) {
			continue
		}

		var sameTp, anyTp []int
		for _, c := range n.Categories {
			for _, j := range groups.byCategory[c] {
				if nodes[j].Pathway == n.Pathway {
					continue
				}
				if nodes[j].Timepoint == n.Timepoint {
					sameTp = append(sameTp, j)
				} else {
					anyTp = append(anyTp, j)
				}
			}
		}

		candidates := sameTp
		if len(candidates) == 0 {
			candidates = anyTp
		}
		for _, j := range g.sample(candidates, 1, i) {
			lb.add(n.ID, nodes[j].ID, g.uniform(g.cfg.CrossPathwayStrength), models.LinkInteraction)
		}
	}
}

// Pass 5: cross-category. With 20% probability per node, link to a node
// sharing no broad category with it.
func (g *Generator) linkCrossCategory(nodes []models.BiologicalNode, groups *nodeGroups, lb *linkBuilder) {
	for i, n := range nodes {
		if !g.chance(g.cfg.CrossCategoryProbability) {
			continue
		}

		var candidates []int
		for _, j := range groups.all {
			if j == i || sharesCategory(n, nodes[j]) {
				continue
			}
			candidates = append(candidates, j)
		}
		for _, j := range g.sample(candidates, 1, i) {
			lb.add(n.ID, nodes[j].ID, g.uniform(g.cfg.CrossCategoryStrength), models.LinkInteraction)
		}
	}
}

// Pass 6: omics-layer chain within a pathway and time point:
// transcript -> protein (regulation), protein -> metabolite (conversion),
// and for lipid-related pathways metabolite -> lipid (conversion).
func (g *Generator) linkOmicsChain(nodes []models.BiologicalNode, groups *nodeGroups, lb *linkBuilder) {
	for i, n := range nodes {
		pt := n.Pathway + "|" + n.Timepoint

		switch n.Omics {
		case models.OmicsTranscript:
			peers := groups.byPathwayTpLayer[pt+"|"+string(models.OmicsProtein)]
			k := g.between(g.cfg.TranscriptProteinFanout)
			for _, j := range g.sample(peers, k, i) {
				lb.add(n.ID, nodes[j].ID, g.uniform(g.cfg.TranscriptProteinStrength), models.LinkRegulation)
			}

		case models.OmicsProtein:
			peers := groups.byPathwayTpLayer[pt+"|"+string(models.OmicsMetabolite)]
			k := g.between(g.cfg.ProteinMetaboliteFanout)
			for _, j := range g.sample(peers, k, i) {
				lb.add(n.ID, nodes[j].ID, g.uniform(g.cfg.ProteinMetaboliteStrength), models.LinkConversion)
			}

		case models.OmicsMetabolite:
			if !isLipidRelated(n.Pathway) {
				continue
			}
			peers := groups.byPathwayTpLayer[pt+"|"+string(models.OmicsLipid)]
			k := g.between(g.cfg.MetaboliteLipidFanout)
			for _, j := range g.sample(peers, k, i) {
				lb.add(n.ID, nodes[j].ID, g.uniform(g.cfg.MetaboliteLipidStrength), models.LinkConversion)
			}
		}
	}
}

// sample picks up to k distinct random positions from candidates,
// excluding the position self.
func (g *Generator) sample(candidates []int, k int, self int) []int {
	pool := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if c != self {
			pool = append(pool, c)
		}
	}
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return nil
	}
	g.rng.Shuffle(len(pool), func(a, b int) { pool[a], pool[b] = pool[b], pool[a] })
	return pool[:k]
}

// sharesCategory reports whether two nodes have any broad category in common.
func sharesCategory(a, b models.BiologicalNode) bool {
	for _, c := range a.Categories {
		if b.InCategory(c) {
			return true
		}
	}
	return false
}

// isLipidRelated reports whether the pathway name mentions lipids or
// metabolism, gating the metabolite -> lipid conversion pass.
func isLipidRelated(pathway string) bool {
	lower := strings.ToLower(pathway)
	return strings.Contains(lower, "lipid") || strings.Contains(lower, "metabolism")
}
