package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seiler-lab/biograph/internal/netstat"
	"github.com/seiler-lab/biograph/internal/ranking"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [name]",
		Short: "Summarize a snapshot: distributions and hub nodes",
		Long: `Compute expression and fold-change distributions sliced by time point
and omics layer, plus the top hub nodes by strength-weighted PageRank.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topN, _ := cmd.Flags().GetInt("top")

			tables, err := loadTaxonomy(cmd)
			if err != nil {
				return err
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			graph, _, err := st.LoadGraph(context.Background(), args[0])
			if err != nil {
				return err
			}

			stats := netstat.Compute(graph, tables)
			hubs := ranking.TopHubs(graph, ranking.DefaultPageRankConfig(), topN)

			if jsonOut(cmd) {
				return printJSON(map[string]interface{}{
					"stats": stats,
					"hubs":  hubs,
				})
			}

			fmt.Printf("Snapshot %q: %d nodes, %d links, %d perturbation targets\n",
				args[0], stats.NodeCount, stats.LinkCount, stats.TargetCount)
			fmt.Printf("Expression: mean=%.3f sd=%.3f median=%.3f\n",
				stats.Overall.Expression.Mean, stats.Overall.Expression.StdDev, stats.Overall.Expression.Median)
			fmt.Printf("Fold change: mean=%.3f sd=%.3f median=%.3f\n",
				stats.Overall.FoldChange.Mean, stats.Overall.FoldChange.StdDev, stats.Overall.FoldChange.Median)

			fmt.Println("\nBy time point:")
			for _, s := range stats.ByTimepoint {
				fmt.Printf("  %-8s n=%-4d expr mean=%.3f fold mean=%.3f\n",
					s.Label, s.Expression.Count, s.Expression.Mean, s.FoldChange.Mean)
			}

			fmt.Println("\nBy omics layer:")
			for _, s := range stats.ByOmicsLayer {
				fmt.Printf("  %-12s n=%-4d expr mean=%.3f fold mean=%.3f\n",
					s.Label, s.Expression.Count, s.Expression.Mean, s.FoldChange.Mean)
			}

			fmt.Println("\nTop hubs:")
			for _, h := range hubs {
				fmt.Printf("  %-40s score=%.3f degree=%d (%s)\n", h.Name, h.Score, h.Degree, h.Pathway)
			}
			return nil
		},
	}

	cmd.Flags().Int("top", 10, "Number of hub nodes to show")
	return cmd
}
