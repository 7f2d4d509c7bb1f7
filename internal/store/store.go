// Package store persists named graph snapshots so the CLI and MCP surfaces
// can generate a baseline once and perturb or query it across invocations.
package store

import (
	"context"
	"time"

	"github.com/seiler-lab/biograph/internal/models"
)

// GraphInfo describes a stored snapshot.
type GraphInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Drug      string    `json:"drug,omitempty"` // empty for baseline graphs
	NodeCount int       `json:"node_count"`
	LinkCount int       `json:"link_count"`
	CreatedAt time.Time `json:"created_at"`
}

// GraphStore defines the interface for storing and retrieving graph
// snapshots. Snapshots are immutable: saving under an existing name
// replaces the previous snapshot atomically.
type GraphStore interface {
	// SaveGraph persists a snapshot under a unique name. Drug is the
	// treatment id that produced it, or "" for a baseline.
	SaveGraph(ctx context.Context, name, drug string, graph models.PathwayData) (GraphInfo, error)

	// LoadGraph retrieves a snapshot by name.
	LoadGraph(ctx context.Context, name string) (models.PathwayData, GraphInfo, error)

	// ListGraphs returns all stored snapshots, newest first.
	ListGraphs(ctx context.Context) ([]GraphInfo, error)

	// DeleteGraph removes a snapshot by name.
	DeleteGraph(ctx context.Context, name string) error

	Close() error
}
