package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seiler-lab/biograph/internal/visualization"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [name]",
		Short: "Export a snapshot as DOT or JSON",
		Long: `Export a stored snapshot for external tooling. DOT output clusters nodes
by time point, colors them by omics layer, and styles edges by link type.

Example:
  biograph export baseline --format dot -o baseline.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outPath, _ := cmd.Flags().GetString("output")

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

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			switch visualization.Format(format) {
			case visualization.FormatDOT:
				_, err = fmt.Fprint(out, visualization.RenderDOT(graph, tables.Timepoints))
				return err
			case visualization.FormatJSON:
				return encodeJSON(out, visualization.RenderJSON(graph))
			default:
				return fmt.Errorf("unknown format %q (want dot or json)", format)
			}
		},
	}

	cmd.Flags().String("format", "dot", "Output format: dot or json")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	return cmd
}
