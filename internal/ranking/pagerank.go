// Package ranking identifies hub nodes in a graph snapshot using
// strength-weighted PageRank over the undirected link set.
package ranking

import (
	"math"
	"sort"

	"github.com/seiler-lab/biograph/internal/constants"
	"github.com/seiler-lab/biograph/internal/models"
)

// PageRankConfig holds configuration for PageRank computation.
type PageRankConfig struct {
	// DampingFactor (d) is the probability of following a link vs. teleporting.
	DampingFactor float64

	// MaxIterations is the maximum number of power iteration steps.
	MaxIterations int

	// Tolerance is the convergence threshold.
	Tolerance float64
}

// DefaultPageRankConfig returns the default PageRank configuration.
func DefaultPageRankConfig() PageRankConfig {
	return PageRankConfig{
		DampingFactor: constants.PageRankDamping,
		MaxIterations: constants.PageRankIterations,
		Tolerance:     1e-6,
	}
}

// Hub is one ranked node.
type Hub struct {
	NodeID  string  `json:"node_id"`
	Name    string  `json:"name"`
	Pathway string  `json:"pathway"`
	Score   float64 `json:"score"`
	Degree  int     `json:"degree"`
}

// ComputePageRank calculates PageRank scores over the snapshot's links.
// Links are undirected, so each link contributes flow in both directions,
// weighted by its strength. Returns node ID to normalized score (max 1.0).
func ComputePageRank(graph models.PathwayData, config PageRankConfig) map[string]float64 {
	n := len(graph.Nodes)
	if n == 0 {
		return map[string]float64{}
	}

	nodeSet := make(map[string]bool, n)
	nodeIDs := make([]string, 0, n)
	for _, node := range graph.Nodes {
		nodeSet[node.ID] = true
		nodeIDs = append(nodeIDs, node.ID)
	}

	type weightedEdge struct {
		neighbor string
		weight   float64
	}

	// inbound[v] lists the weighted links arriving at v; outWeight[u] is
	// the total strength leaving u.
	inbound := make(map[string][]weightedEdge, n)
	outWeight := make(map[string]float64, n)

	for _, l := range graph.Links {
		if !nodeSet[l.Source] || !nodeSet[l.Target] || l.Strength <= 0 {
			continue
		}
		inbound[l.Target] = append(inbound[l.Target], weightedEdge{l.Source, l.Strength})
		inbound[l.Source] = append(inbound[l.Source], weightedEdge{l.Target, l.Strength})
		outWeight[l.Source] += l.Strength
		outWeight[l.Target] += l.Strength
	}

	d := config.DampingFactor
	nf := float64(n)
	scores := make(map[string]float64, n)
	for _, id := range nodeIDs {
		scores[id] = 1.0 / nf
	}

	for iter := 0; iter < config.MaxIterations; iter++ {
		newScores := make(map[string]float64, n)
		maxDelta := 0.0

		for _, v := range nodeIDs {
			sum := 0.0
			for _, e := range inbound[v] {
				if w := outWeight[e.neighbor]; w > 0 {
					sum += scores[e.neighbor] * e.weight / w
				}
			}

			newScore := (1.0-d)/nf + d*sum
			newScores[v] = newScore

			if delta := math.Abs(newScore - scores[v]); delta > maxDelta {
				maxDelta = delta
			}
		}

		scores = newScores

		if maxDelta < config.Tolerance {
			break
		}
	}

	maxScore := 0.0
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore > 0 {
		for id, score := range scores {
			scores[id] = score / maxScore
		}
	}

	return scores
}

// TopHubs ranks nodes by PageRank score and returns the top limit entries.
// Ties break on node ID for stable output.
func TopHubs(graph models.PathwayData, config PageRankConfig, limit int) []Hub {
	if limit <= 0 {
		limit = constants.DefaultTopHubs
	}

	scores := ComputePageRank(graph, config)

	degree := make(map[string]int, len(graph.Nodes))
	for _, l := range graph.Links {
		degree[l.Source]++
		degree[l.Target]++
	}

	hubs := make([]Hub, 0, len(graph.Nodes))
	for _, n := range graph.Nodes {
		hubs = append(hubs, Hub{
			NodeID:  n.ID,
			Name:    n.Name,
			Pathway: n.Pathway,
			Score:   scores[n.ID],
			Degree:  degree[n.ID],
		})
	}

	sort.Slice(hubs, func(i, j int) bool {
		if hubs[i].Score != hubs[j].Score {
			return hubs[i].Score > hubs[j].Score
		}
		return hubs[i].NodeID < hubs[j].NodeID
	})

	if len(hubs) > limit {
		hubs = hubs[:limit]
	}
	return hubs
}
