package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/seiler-lab/biograph/internal/constants"
	"github.com/seiler-lab/biograph/internal/models"
)

// SQLiteGraphStore implements GraphStore using SQLite for persistence.
// Each snapshot is written in a single transaction so a replace-by-name
// either fully succeeds or leaves the previous snapshot intact.
type SQLiteGraphStore struct {
	mu     sync.RWMutex
	db     *sql.DB
	dbPath string
}

// NewSQLiteGraphStore creates a SQLite-backed store rooted at projectRoot.
// The database lives at .biograph/biograph.db under that root.
func NewSQLiteGraphStore(projectRoot string) (*SQLiteGraphStore, error) {
	dataDir := filepath.Join(projectRoot, constants.DataDirName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", constants.DataDirName, err)
	}

	dbPath := filepath.Join(dataDir, constants.DBFileName)
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteGraphStore{db: db, dbPath: dbPath}, nil
}

// SaveGraph persists a snapshot under a unique name, replacing any previous
// snapshot with that name.
func (s *SQLiteGraphStore) SaveGraph(ctx context.Context, name, drug string, graph models.PathwayData) (GraphInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return GraphInfo{}, fmt.Errorf("snapshot name cannot be empty")
	}

	pathways, err := json.Marshal(graph.Pathways)
	if err != nil {
		return GraphInfo{}, fmt.Errorf("failed to marshal pathways: %w", err)
	}
	categories, err := json.Marshal(graph.Categories)
	if err != nil {
		return GraphInfo{}, fmt.Errorf("failed to marshal categories: %w", err)
	}

	info := GraphInfo{
		ID:        uuid.NewString(),
		Name:      name,
		Drug:      drug,
		NodeCount: len(graph.Nodes),
		LinkCount: len(graph.Links),
		CreatedAt: time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GraphInfo{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Replace-by-name: cascade deletes the old snapshot's rows
	if _, err := tx.ExecContext(ctx, `DELETE FROM graphs WHERE name = ?`, name); err != nil {
		return GraphInfo{}, fmt.Errorf("failed to delete previous snapshot: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO graphs (id, name, drug, node_count, link_count, pathways, categories, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		info.ID, info.Name, info.Drug, info.NodeCount, info.LinkCount,
		string(pathways), string(categories), info.CreatedAt.Format(time.RFC3339Nano)); err != nil {
		return GraphInfo{}, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO nodes (graph_id, id, name, omics_type, pathway, timepoint, categories,
			expression, baseline_expression, perturbed_expression, fold_change,
			significance, confidence, is_perturbation_target)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return GraphInfo{}, fmt.Errorf("failed to prepare node insert: %w", err)
	}
	defer nodeStmt.Close()

	for _, n := range graph.Nodes {
		cats, err := json.Marshal(n.Categories)
		if err != nil {
			return GraphInfo{}, fmt.Errorf("failed to marshal categories for node %s: %w", n.ID, err)
		}
		if _, err := nodeStmt.ExecContext(ctx,
			info.ID, n.ID, n.Name, string(n.Omics), n.Pathway, n.Timepoint, string(cats),
			n.Expression, n.BaselineExpression, nullFloat(n.PerturbedExpression), n.FoldChange,
			n.Significance, n.Confidence, boolToInt(n.IsPerturbationTarget)); err != nil {
			return GraphInfo{}, fmt.Errorf("failed to insert node %s: %w", n.ID, err)
		}
	}

	linkStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO links (graph_id, source, target, strength, baseline_strength,
			perturbed_strength, strength_change, link_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return GraphInfo{}, fmt.Errorf("failed to prepare link insert: %w", err)
	}
	defer linkStmt.Close()

	for _, l := range graph.Links {
		if _, err := linkStmt.ExecContext(ctx,
			info.ID, l.Source, l.Target, l.Strength, l.BaselineStrength,
			nullFloat(l.PerturbedStrength), l.StrengthChange, string(l.Type)); err != nil {
			return GraphInfo{}, fmt.Errorf("failed to insert link %s->%s: %w", l.Source, l.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return GraphInfo{}, fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return info, nil
}

// LoadGraph retrieves a snapshot by name.
func (s *SQLiteGraphStore) LoadGraph(ctx context.Context, name string) (models.PathwayData, GraphInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		info       GraphInfo
		pathways   string
		categories string
		createdAt  string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, drug, node_count, link_count, pathways, categories, created_at
		FROM graphs WHERE name = ?`, name).Scan(
		&info.ID, &info.Name, &info.Drug, &info.NodeCount, &info.LinkCount,
		&pathways, &categories, &createdAt)
	if err == sql.ErrNoRows {
		return models.PathwayData{}, GraphInfo{}, fmt.Errorf("snapshot %q not found", name)
	}
	if err != nil {
		return models.PathwayData{}, GraphInfo{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if t, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
		info.CreatedAt = t
	}

	var graph models.PathwayData
	if err := json.Unmarshal([]byte(pathways), &graph.Pathways); err != nil {
		return models.PathwayData{}, GraphInfo{}, fmt.Errorf("failed to unmarshal pathways: %w", err)
	}
	if err := json.Unmarshal([]byte(categories), &graph.Categories); err != nil {
		return models.PathwayData{}, GraphInfo{}, fmt.Errorf("failed to unmarshal categories: %w", err)
	}

	graph.Nodes, err = s.loadNodes(ctx, info.ID)
	if err != nil {
		return models.PathwayData{}, GraphInfo{}, err
	}
	graph.Links, err = s.loadLinks(ctx, info.ID)
	if err != nil {
		return models.PathwayData{}, GraphInfo{}, err
	}

	return graph, info, nil
}

func (s *SQLiteGraphStore) loadNodes(ctx context.Context, graphID string) ([]models.BiologicalNode, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, omics_type, pathway, timepoint, categories,
			expression, baseline_expression, perturbed_expression, fold_change,
			significance, confidence, is_perturbation_target
		FROM nodes WHERE graph_id = ? ORDER BY id`, graphID)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	var nodes []models.BiologicalNode
	for rows.Next() {
		var (
			n         models.BiologicalNode
			omics     string
			cats      string
			perturbed sql.NullFloat64
			target    int
		)
		if err := rows.Scan(&n.ID, &n.Name, &omics, &n.Pathway, &n.Timepoint, &cats,
			&n.Expression, &n.BaselineExpression, &perturbed, &n.FoldChange,
			&n.Significance, &n.Confidence, &target); err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		n.Omics = models.OmicsType(omics)
		if err := json.Unmarshal([]byte(cats), &n.Categories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal categories for node %s: %w", n.ID, err)
		}
		if perturbed.Valid {
			n.PerturbedExpression = perturbed.Float64
		}
		n.IsPerturbationTarget = target != 0
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

func (s *SQLiteGraphStore) loadLinks(ctx context.Context, graphID string) ([]models.BiologicalLink, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source, target, strength, baseline_strength, perturbed_strength,
			strength_change, link_type
		FROM links WHERE graph_id = ? ORDER BY source, target`, graphID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var links []models.BiologicalLink
	for rows.Next() {
		var (
			l         models.BiologicalLink
			linkType  string
			perturbed sql.NullFloat64
		)
		if err := rows.Scan(&l.Source, &l.Target, &l.Strength, &l.BaselineStrength,
			&perturbed, &l.StrengthChange, &linkType); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		if perturbed.Valid {
			l.PerturbedStrength = perturbed.Float64
		}
		l.Type = models.LinkType(linkType)
		links = append(links, l)
	}
	return links, rows.Err()
}

// ListGraphs returns all stored snapshots, newest first.
func (s *SQLiteGraphStore) ListGraphs(ctx context.Context) ([]GraphInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, drug, node_count, link_count, created_at
		FROM graphs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var infos []GraphInfo
	for rows.Next() {
		var (
			info      GraphInfo
			createdAt string
		)
		if err := rows.Scan(&info.ID, &info.Name, &info.Drug,
			&info.NodeCount, &info.LinkCount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
			info.CreatedAt = t
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteGraph removes a snapshot by name.
func (s *SQLiteGraphStore) DeleteGraph(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM graphs WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("snapshot %q not found", name)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteGraphStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func nullFloat(v float64) sql.NullFloat64 {
	if v == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
