// Package constants provides named constants used throughout the biograph codebase.
// This centralizes magic numbers and shared names for better maintainability.
package constants

// Data directory and file names.
const (
	// DataDirName is the per-root directory holding the snapshot database
	// and decision traces.
	DataDirName = ".biograph"

	// DBFileName is the SQLite snapshot database file name.
	DBFileName = "biograph.db"

	// DecisionsFileName is the JSONL perturbation decision trace file name.
	DecisionsFileName = "decisions.jsonl"
)

// Hub-node ranking defaults.
const (
	// PageRankDamping is the standard damping factor for the strength-weighted
	// PageRank used by hub analysis.
	PageRankDamping = 0.85

	// PageRankIterations bounds the power iteration; the graph is small
	// (hundreds of nodes) so convergence is quick.
	PageRankIterations = 30

	// DefaultTopHubs is how many hub nodes the stats command prints.
	DefaultTopHubs = 10
)

// Query engine fuzzy matching limits.
const (
	// PathwayMaxMatches caps how many fuzzy pathway hits a query may fire.
	PathwayMaxMatches = 3

	// CategoryMaxMatches caps how many fuzzy category hits a query may fire.
	CategoryMaxMatches = 2

	// FuzzyEditDistance is the bounded per-term edit distance for fuzzy
	// index lookups.
	FuzzyEditDistance = 1
)
