// Package visualization renders graph snapshots in exportable formats.
package visualization

import (
	"fmt"
	"strings"

	"github.com/seiler-lab/biograph/internal/models"
)

// Format specifies the output format for graph rendering.
type Format string

const (
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
)

// nodeColors maps omics layers to DOT colors.
var nodeColors = map[models.OmicsType]string{
	models.OmicsProtein:    "steelblue",
	models.OmicsTranscript: "mediumseagreen",
	models.OmicsMetabolite: "goldenrod",
	models.OmicsLipid:      "tomato",
}

// edgeStyles maps link types to DOT styles.
var edgeStyles = map[models.LinkType]string{
	models.LinkRegulation:  "solid",
	models.LinkInteraction: "dashed",
	models.LinkConversion:  "dotted",
}

// RenderDOT produces a Graphviz DOT representation of the snapshot,
// clustered by time point, colored by omics layer, with edge styles per
// link type. Links are undirected so edges render without arrowheads.
func RenderDOT(graph models.PathwayData, timepoints []string) string {
	var b strings.Builder
	b.WriteString("graph biograph {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=filled, fontname=\"Helvetica\"];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	byTimepoint := make(map[string][]models.BiologicalNode)
	for _, n := range graph.Nodes {
		byTimepoint[n.Timepoint] = append(byTimepoint[n.Timepoint], n)
	}

	for i, tp := range timepoints {
		nodes := byTimepoint[tp]
		if len(nodes) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("  subgraph cluster_%d {\n", i))
		b.WriteString(fmt.Sprintf("    label=%q;\n", tp))
		b.WriteString("    style=rounded;\n")
		for _, n := range nodes {
			color := nodeColors[n.Omics]
			if color == "" {
				color = "lightgray"
			}
			b.WriteString(fmt.Sprintf("    %q [label=%q, fillcolor=%q, tooltip=\"pathway=%s confidence=%.2f\"];\n",
				n.ID, truncate(n.Name, 40), color, n.Pathway, n.Confidence))
		}
		b.WriteString("  }\n\n")
	}

	for _, l := range graph.Links {
		style := edgeStyles[l.Type]
		if style == "" {
			style = "solid"
		}
		b.WriteString(fmt.Sprintf("  %q -- %q [label=%q, style=%s, weight=\"%.1f\"];\n",
			l.Source, l.Target, string(l.Type), style, l.Strength))
	}

	b.WriteString("}\n")
	return b.String()
}

// RenderJSON produces a JSON-serializable graph representation with nodes
// and links arrays plus counts.
func RenderJSON(graph models.PathwayData) map[string]interface{} {
	jsonNodes := make([]map[string]interface{}, 0, len(graph.Nodes))
	for _, n := range graph.Nodes {
		jsonNodes = append(jsonNodes, map[string]interface{}{
			"id":         n.ID,
			"name":       n.Name,
			"omics":      string(n.Omics),
			"pathway":    n.Pathway,
			"timepoint":  n.Timepoint,
			"categories": n.Categories,
			"expression": n.Expression,
			"foldChange": n.FoldChange,
			"confidence": n.Confidence,
			"perturbed":  n.IsPerturbationTarget,
		})
	}

	jsonLinks := make([]map[string]interface{}, 0, len(graph.Links))
	for _, l := range graph.Links {
		jsonLinks = append(jsonLinks, map[string]interface{}{
			"source":   l.Source,
			"target":   l.Target,
			"type":     string(l.Type),
			"strength": l.Strength,
		})
	}

	return map[string]interface{}{
		"nodes":      jsonNodes,
		"links":      jsonLinks,
		"node_count": len(jsonNodes),
		"link_count": len(jsonLinks),
	}
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
