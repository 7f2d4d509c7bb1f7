package generator

import (
	"log/slog"

	"github.com/seiler-lab/biograph/internal/models"
)

// validate drops malformed nodes (missing required fields, duplicate IDs,
// out-of-range scores) and links whose endpoints are not in the surviving
// node set. It never fails: if everything is dropped, an empty but
// well-formed graph is returned.
func validate(graph models.PathwayData, log *slog.Logger) models.PathwayData {
	nodes := make([]models.BiologicalNode, 0, len(graph.Nodes))
	ids := make(map[string]bool, len(graph.Nodes))
	droppedNodes := 0

	for _, n := range graph.Nodes {
		if !n.Valid() || ids[n.ID] {
			droppedNodes++
			continue
		}
		n.Confidence = models.ClampConfidence(n.Confidence)
		n.Significance = models.ClampSignificance(n.Significance)
		ids[n.ID] = true
		nodes = append(nodes, n)
	}

	links := make([]models.BiologicalLink, 0, len(graph.Links))
	seen := make(map[string]bool, len(graph.Links))
	droppedLinks := 0

	for _, l := range graph.Links {
		key := models.PairKey(l.Source, l.Target)
		if !l.Valid() || !ids[l.Source] || !ids[l.Target] || l.Strength <= 0 || seen[key] {
			droppedLinks++
			continue
		}
		seen[key] = true
		links = append(links, l)
	}

	if droppedNodes > 0 || droppedLinks > 0 {
		log.Debug("validation dropped records",
			"nodes", droppedNodes,
			"links", droppedLinks)
	}

	graph.Nodes = nodes
	graph.Links = links
	return graph
}
