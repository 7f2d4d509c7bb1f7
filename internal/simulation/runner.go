package simulation

import (
	"context"
	"math/rand"
	"testing"

	"github.com/seiler-lab/biograph/internal/config"
	"github.com/seiler-lab/biograph/internal/generator"
	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/perturb"
	"github.com/seiler-lab/biograph/internal/query"
	"github.com/seiler-lab/biograph/internal/store"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

// BaselineName is the snapshot name the runner stores the generated
// baseline under.
const BaselineName = "baseline"

// Runner orchestrates pipeline experiments against a real snapshot store.
type Runner struct {
	t     *testing.T
	store *store.SQLiteGraphStore
}

// NewRunner creates a runner with an isolated SQLite store under
// t.TempDir().
func NewRunner(t *testing.T) *Runner {
	t.Helper()

	s, err := store.NewSQLiteGraphStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewRunner: failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return &Runner{t: t, store: s}
}

// Run executes the scenario and returns the collected results.
func (r *Runner) Run(scenario Scenario) ScenarioResult {
	r.t.Helper()
	ctx := context.Background()

	cfg := scenario.Config
	if cfg == nil {
		cfg = config.Default()
	}
	tables := scenario.Tables
	if tables == nil {
		tables = taxonomy.Default()
	}

	// Phase 1: generate and store the baseline.
	gen := generator.NewSeeded(tables, cfg.Generation, scenario.Seed, nil)
	baseline := gen.Generate()
	if _, err := r.store.SaveGraph(ctx, BaselineName, "", baseline); err != nil {
		r.t.Fatalf("Run(%s): save baseline: %v", scenario.Name, err)
	}

	result := ScenarioResult{
		Baseline:  baseline,
		Perturbed: make(map[string]models.PathwayData, len(scenario.Drugs)),
	}

	// Phase 2: apply each drug to the stored baseline.
	for _, drugID := range scenario.Drugs {
		drug, err := tables.DrugByID(drugID)
		if err != nil {
			r.t.Fatalf("Run(%s): %v", scenario.Name, err)
		}

		loaded, _, err := r.store.LoadGraph(ctx, BaselineName)
		if err != nil {
			r.t.Fatalf("Run(%s): load baseline: %v", scenario.Name, err)
		}

		eng := perturb.New(tables, cfg.Perturbation, rand.New(rand.NewSource(scenario.Seed)), nil, nil)
		perturbed, err := eng.Apply(loaded, drug)
		if err != nil {
			r.t.Fatalf("Run(%s): perturb with %s: %v", scenario.Name, drugID, err)
		}

		if _, err := r.store.SaveGraph(ctx, drug.ID, drug.ID, perturbed); err != nil {
			r.t.Fatalf("Run(%s): save %s snapshot: %v", scenario.Name, drugID, err)
		}
		result.Perturbed[drug.ID] = perturbed
	}

	// Phase 3: run the questions against their snapshots.
	for _, q := range scenario.Questions {
		graph, _, err := r.store.LoadGraph(ctx, q.Graph)
		if err != nil {
			r.t.Fatalf("Run(%s): load %q for question: %v", scenario.Name, q.Graph, err)
		}

		qr, err := query.ParseQuery(q.Text, graph.Nodes, tables, cfg.Query)
		if err != nil {
			r.t.Fatalf("Run(%s): query %q: %v", scenario.Name, q.Text, err)
		}
		result.Questions = append(result.Questions, QuestionResult{Question: q, Result: qr})
	}

	return result
}
