package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seiler-lab/biograph/internal/mcp"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Run the MCP server over stdio",
		Long: `Run a Model Context Protocol server exposing the generate, perturb,
query, and list operations as tools. Communicates over stdin/stdout;
intended to be launched by an MCP client.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")

			cfg, err := loadEngineConfig(cmd)
			if err != nil {
				return err
			}
			tables, err := loadTaxonomy(cmd)
			if err != nil {
				return err
			}

			srv, err := mcp.NewServer(&mcp.Config{
				Name:    "biograph",
				Version: version,
				Root:    root,
				Tables:  tables,
				Engine:  cfg,
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			return srv.Run(context.Background())
		},
	}
}
