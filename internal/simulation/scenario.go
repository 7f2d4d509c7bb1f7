package simulation

import (
	"github.com/seiler-lab/biograph/internal/config"
	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

// Scenario defines a complete pipeline experiment.
type Scenario struct {
	Name string

	// Seed drives both generation and perturbation for reproducibility.
	Seed int64

	// Drugs lists treatment ids to apply to the baseline. Each produces a
	// snapshot stored under the drug id.
	Drugs []string

	// Questions are run in order after generation and perturbation.
	Questions []Question

	// Config overrides the default engine configuration when non-nil.
	Config *config.EngineConfig

	// Tables overrides the default taxonomy when non-nil.
	Tables *taxonomy.Tables
}

// Question targets one stored snapshot with a free-text query. Graph is
// either "baseline" or a drug id from Scenario.Drugs.
type Question struct {
	Graph string
	Text  string
}

// QuestionResult captures one query outcome.
type QuestionResult struct {
	Question Question
	Result   models.QueryResult
}

// ScenarioResult captures the full pipeline state for assertions.
type ScenarioResult struct {
	Baseline  models.PathwayData
	Perturbed map[string]models.PathwayData // drug id -> snapshot
	Questions []QuestionResult
}
