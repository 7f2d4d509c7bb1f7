package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "biograph",
		Short: "Synthetic multi-omics network generator and query engine",
		Long: `biograph generates synthetic biological networks spanning transcript,
protein, metabolite, and lipid layers across a treatment time course,
applies drug perturbations, and answers free-text questions about the
resulting graphs.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for machine consumption)")
	rootCmd.PersistentFlags().String("root", ".", "Project root directory")
	rootCmd.PersistentFlags().String("config", "", "Path to engine config YAML (default: built-in)")
	rootCmd.PersistentFlags().String("taxonomy", "", "Path to taxonomy YAML (default: built-in)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(),
		newPerturbCmd(),
		newQueryCmd(),
		newListCmd(),
		newDrugsCmd(),
		newStatsCmd(),
		newExportCmd(),
		newDeleteCmd(),
		newBackupCmd(),
		newRestoreCmd(),
		newMCPServerCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("biograph version %s\n", version)
			}
		},
	}
}
