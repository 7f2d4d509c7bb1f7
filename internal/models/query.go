package models

// ExpressionDirection classifies a node's response relative to baseline.
type ExpressionDirection string

const (
	DirectionUpregulated   ExpressionDirection = "upregulated"
	DirectionDownregulated ExpressionDirection = "downregulated"
	DirectionUnchanged     ExpressionDirection = "unchanged"
)

// Query result confidence tiers.
const (
	QueryConfidenceEmpty      = 0.2 // the filters matched nothing
	QueryConfidenceUnfiltered = 0.4 // no filter had any effect
	QueryConfidenceBase       = 0.8 // some filter fired
	QueryConfidenceSpecific   = 0.9 // a pathway or category was recognized
)

// QueryResult is the output of the query engine: the filtered node subset,
// a human-readable explanation of which filters fired, and a confidence
// score in [0.2, 0.9] reflecting how specific the query was.
type QueryResult struct {
	Nodes       []BiologicalNode `json:"nodes"`
	Explanation string           `json:"explanation"`
	Confidence  float64          `json:"confidence"`

	// Intents summarizes the fired filters for structured consumers
	// (keyed by intent name, values are the matched terms).
	Intents map[string][]string `json:"intents,omitempty"`
}
