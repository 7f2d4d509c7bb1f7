package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seiler-lab/biograph/internal/query"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [question]",
		Short: "Run a free-text question against a snapshot",
		Long: `Parse a free-text question and filter a stored snapshot's nodes by the
recognized intents: omics layer, time point, pathway, category, expression
direction, drug-target flag, and gene name.

Example:
  biograph query --graph baseline-lithium "Show me proteins that are upregulated"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphName, _ := cmd.Flags().GetString("graph")
			limit, _ := cmd.Flags().GetInt("limit")
			if graphName == "" {
				return fmt.Errorf("--graph is required")
			}
			question := strings.Join(args, " ")

			cfg, err := loadEngineConfig(cmd)
			if err != nil {
				return err
			}
			tables, err := loadTaxonomy(cmd)
			if err != nil {
				return err
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			graph, _, err := st.LoadGraph(context.Background(), graphName)
			if err != nil {
				return err
			}

			result, err := query.ParseQuery(question, graph.Nodes, tables, cfg.Query)
			if err != nil {
				return fmt.Errorf("failed to run query: %w", err)
			}

			if jsonOut(cmd) {
				nodes := result.Nodes
				if limit > 0 && limit < len(nodes) {
					nodes = nodes[:limit]
				}
				return printJSON(map[string]interface{}{
					"explanation": result.Explanation,
					"confidence":  result.Confidence,
					"intents":     result.Intents,
					"total":       len(result.Nodes),
					"nodes":       nodes,
				})
			}

			fmt.Println(result.Explanation)
			fmt.Printf("Confidence: %.2f\n", result.Confidence)
			shown := len(result.Nodes)
			if limit > 0 && limit < shown {
				shown = limit
			}
			for _, n := range result.Nodes[:shown] {
				fmt.Printf("  %-40s %-12s %-10s fold=%.2f expr=%.2f\n",
					n.Name, n.Omics, n.Timepoint, n.FoldChange, n.Expression)
			}
			if shown < len(result.Nodes) {
				fmt.Printf("  ... and %d more (use --limit to adjust)\n", len(result.Nodes)-shown)
			}
			return nil
		},
	}

	cmd.Flags().String("graph", "", "Snapshot name (required)")
	cmd.Flags().Int("limit", 25, "Maximum nodes to print (0 = all)")
	return cmd
}
