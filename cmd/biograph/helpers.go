package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seiler-lab/biograph/internal/config"
	"github.com/seiler-lab/biograph/internal/constants"
	"github.com/seiler-lab/biograph/internal/store"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

// loadEngineConfig resolves the --config flag into an EngineConfig,
// falling back to the built-in defaults when the flag is unset.
func loadEngineConfig(cmd *cobra.Command) (*config.EngineConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// loadTaxonomy resolves the --taxonomy flag into taxonomy tables,
// falling back to the built-in defaults when the flag is unset.
func loadTaxonomy(cmd *cobra.Command) (*taxonomy.Tables, error) {
	path, _ := cmd.Flags().GetString("taxonomy")
	if path == "" {
		return taxonomy.Default(), nil
	}
	return taxonomy.Load(path)
}

// openStore opens the snapshot store rooted at --root.
func openStore(cmd *cobra.Command) (*store.SQLiteGraphStore, error) {
	root, _ := cmd.Flags().GetString("root")
	return store.NewSQLiteGraphStore(root)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	return encodeJSON(os.Stdout, v)
}

// encodeJSON writes v as indented JSON to w.
func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// jsonOut reports whether the --json flag is set.
func jsonOut(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// dataDir returns the .biograph directory under --root.
func dataDir(cmd *cobra.Command) string {
	root, _ := cmd.Flags().GetString("root")
	return filepath.Join(root, constants.DataDirName)
}
