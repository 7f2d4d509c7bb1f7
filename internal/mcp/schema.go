// Package mcp provides an MCP (Model Context Protocol) server for biograph.
package mcp

import (
	"time"

	"github.com/seiler-lab/biograph/internal/models"
)

// GenerateInput defines the input for the biograph_generate tool.
type GenerateInput struct {
	Name string `json:"name" jsonschema:"description=Snapshot name to save the baseline graph under,required"`
	Seed int64  `json:"seed,omitempty" jsonschema:"description=Random seed for reproducible generation (0 = time-based)"`
}

// GenerateOutput defines the output for the biograph_generate tool.
type GenerateOutput struct {
	Name       string   `json:"name" jsonschema:"description=Snapshot name"`
	NodeCount  int      `json:"node_count" jsonschema:"description=Number of generated nodes"`
	LinkCount  int      `json:"link_count" jsonschema:"description=Number of generated links"`
	Pathways   []string `json:"pathways" jsonschema:"description=Pathways present in the graph"`
	Categories []string `json:"categories" jsonschema:"description=Broad categories present in the graph"`
}

// PerturbInput defines the input for the biograph_perturb tool.
type PerturbInput struct {
	Graph  string `json:"graph" jsonschema:"description=Name of the baseline snapshot to perturb,required"`
	Drug   string `json:"drug" jsonschema:"description=Drug treatment id or name (e.g. 'lithium'),required"`
	SaveAs string `json:"save_as,omitempty" jsonschema:"description=Snapshot name for the perturbed graph (default: '<graph>-<drug>')"`
	Seed   int64  `json:"seed,omitempty" jsonschema:"description=Random seed for reproducible perturbation (0 = time-based)"`
}

// PerturbOutput defines the output for the biograph_perturb tool.
type PerturbOutput struct {
	Name        string `json:"name" jsonschema:"description=Name the perturbed snapshot was saved under"`
	Drug        string `json:"drug" jsonschema:"description=Applied drug treatment id"`
	Mechanism   string `json:"mechanism" jsonschema:"description=Drug mechanism summary"`
	TargetCount int    `json:"target_count" jsonschema:"description=Number of nodes flagged as perturbation targets"`
	NodeCount   int    `json:"node_count" jsonschema:"description=Total nodes in the perturbed graph"`
}

// QueryInput defines the input for the biograph_query tool.
type QueryInput struct {
	Graph    string `json:"graph" jsonschema:"description=Name of the snapshot to query,required"`
	Question string `json:"question" jsonschema:"description=Free-text question (e.g. 'Show me proteins that are upregulated'),required"`
	Limit    int    `json:"limit,omitempty" jsonschema:"description=Maximum nodes to return (default: 25)"`
}

// QueryOutput defines the output for the biograph_query tool.
type QueryOutput struct {
	Explanation string              `json:"explanation" jsonschema:"description=Human-readable description of the applied filters"`
	Confidence  float64             `json:"confidence" jsonschema:"description=Interpretation confidence (0.2-0.9)"`
	Intents     map[string][]string `json:"intents,omitempty" jsonschema:"description=Recognized intents and their matched values"`
	Total       int                 `json:"total" jsonschema:"description=Total matching nodes before the limit"`
	Nodes       []NodeSummary       `json:"nodes" jsonschema:"description=Matching nodes (up to limit)"`
}

// NodeSummary provides a compact view of a node for tool output.
type NodeSummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Omics      string  `json:"omics"`
	Pathway    string  `json:"pathway"`
	Timepoint  string  `json:"timepoint"`
	Expression float64 `json:"expression"`
	FoldChange float64 `json:"fold_change"`
	Perturbed  bool    `json:"perturbed"`
}

// ListInput defines the input for the biograph_list tool.
type ListInput struct{}

// ListOutput defines the output for the biograph_list tool.
type ListOutput struct {
	Graphs []GraphListItem `json:"graphs" jsonschema:"description=Stored snapshots, newest first"`
	Count  int             `json:"count" jsonschema:"description=Number of snapshots"`
}

// GraphListItem provides a list view of a stored snapshot.
type GraphListItem struct {
	Name      string    `json:"name"`
	Drug      string    `json:"drug,omitempty"`
	NodeCount int       `json:"node_count"`
	LinkCount int       `json:"link_count"`
	CreatedAt time.Time `json:"created_at"`
}

func summarizeNodes(nodes []models.BiologicalNode, limit int) []NodeSummary {
	if limit <= 0 || limit > len(nodes) {
		limit = len(nodes)
	}
	out := make([]NodeSummary, 0, limit)
	for _, n := range nodes[:limit] {
		out = append(out, NodeSummary{
			ID:         n.ID,
			Name:       n.Name,
			Omics:      string(n.Omics),
			Pathway:    n.Pathway,
			Timepoint:  n.Timepoint,
			Expression: n.Expression,
			FoldChange: n.FoldChange,
			Perturbed:  n.IsPerturbationTarget,
		})
	}
	return out
}
