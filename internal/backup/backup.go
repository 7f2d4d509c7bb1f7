// Package backup archives stored graph snapshots to checksummed files and
// restores them into a store.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/store"
)

// ArchivedGraph is one snapshot inside an archive.
type ArchivedGraph struct {
	Name  string             `json:"name"`
	Drug  string             `json:"drug,omitempty"`
	Graph models.PathwayData `json:"graph"`
}

// Archive is the decompressed payload of an archive file.
type Archive struct {
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	Graphs    []ArchivedGraph `json:"graphs"`
}

// Export writes every stored snapshot to a single archive file at outputPath.
func Export(ctx context.Context, graphStore store.GraphStore, outputPath string) (*ArchiveHeader, error) {
	infos, err := graphStore.ListGraphs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("no snapshots to archive")
	}

	archive := &Archive{
		Version:   FormatVersion,
		CreatedAt: time.Now().UTC(),
		Graphs:    make([]ArchivedGraph, 0, len(infos)),
	}
	for _, info := range infos {
		graph, _, err := graphStore.LoadGraph(ctx, info.Name)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot %q: %w", info.Name, err)
		}
		archive.Graphs = append(archive.Graphs, ArchivedGraph{
			Name:  info.Name,
			Drug:  info.Drug,
			Graph: graph,
		})
	}

	return writeArchive(outputPath, archive)
}

// RestoreMode controls how Restore handles snapshot names that already exist.
type RestoreMode string

const (
	// RestoreMerge skips snapshots whose names already exist (default).
	RestoreMerge RestoreMode = "merge"
	// RestoreReplace overwrites existing snapshots with archived ones.
	RestoreReplace RestoreMode = "replace"
)

// RestoreResult reports what a restore did.
type RestoreResult struct {
	GraphsRestored int `json:"graphs_restored"`
	GraphsSkipped  int `json:"graphs_skipped"`
}

// Restore imports snapshots from an archive file into the store.
func Restore(ctx context.Context, graphStore store.GraphStore, inputPath string, mode RestoreMode) (*RestoreResult, error) {
	if mode != RestoreMerge && mode != RestoreReplace {
		return nil, fmt.Errorf("unknown restore mode: %q", mode)
	}

	archive, err := readArchive(inputPath)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]bool)
	infos, err := graphStore.ListGraphs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	for _, info := range infos {
		existing[info.Name] = true
	}

	result := &RestoreResult{}
	for _, g := range archive.Graphs {
		if mode == RestoreMerge && existing[g.Name] {
			result.GraphsSkipped++
			continue
		}
		if _, err := graphStore.SaveGraph(ctx, g.Name, g.Drug, g.Graph); err != nil {
			return nil, fmt.Errorf("restoring snapshot %q: %w", g.Name, err)
		}
		result.GraphsRestored++
	}
	return result, nil
}

// archivePrefix and archiveExt name the timestamped files Rotate manages.
const (
	archivePrefix = "biograph-backup-"
	archiveExt    = ".bga"
)

// GenerateArchivePath creates a timestamped archive filename in dir.
func GenerateArchivePath(dir string) string {
	ts := time.Now().Format("20060102-150405")
	return filepath.Join(dir, archivePrefix+ts+archiveExt)
}

// ListArchives returns archive paths in dir sorted newest-first. The
// timestamp embedded in the filename determines order.
func ListArchives(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading archive directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, archivePrefix) || filepath.Ext(name) != archiveExt {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	return paths, nil
}

// Rotate keeps only the keepN most recent archives in dir, deleting the rest.
func Rotate(dir string, keepN int) ([]string, error) {
	paths, err := ListArchives(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) <= keepN {
		return nil, nil
	}

	var deleted []string
	for _, p := range paths[keepN:] {
		if err := os.Remove(p); err != nil {
			return deleted, fmt.Errorf("removing old archive %s: %w", filepath.Base(p), err)
		}
		deleted = append(deleted, p)
	}
	return deleted, nil
}
