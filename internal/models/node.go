package models

// OmicsType identifies the molecular layer a node was observed in.
type OmicsType string

const (
	OmicsTranscript OmicsType = "transcript" // mRNA abundance
	OmicsProtein    OmicsType = "protein"
	OmicsMetabolite OmicsType = "metabolite"
	OmicsLipid      OmicsType = "lipid"
)

// AllOmicsTypes lists the four molecular layers in canonical order.
var AllOmicsTypes = []OmicsType{OmicsTranscript, OmicsProtein, OmicsMetabolite, OmicsLipid}

// Valid reports whether o is one of the four known layers.
func (o OmicsType) Valid() bool {
	switch o {
	case OmicsTranscript, OmicsProtein, OmicsMetabolite, OmicsLipid:
		return true
	}
	return false
}

// Confidence and significance bounds for BiologicalNode.
const (
	MinConfidence   = 0.1
	MaxConfidence   = 0.95
	MaxSignificance = 0.05
)

// BiologicalNode is a single molecular observation in the network.
//
// Nodes are created once by the generator and never mutated in place;
// perturbation produces a new node record with the same ID.
type BiologicalNode struct {
	// Identity
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Classification
	Omics     OmicsType `json:"omicsType" yaml:"omicsType"`
	Pathway   string    `json:"pathway" yaml:"pathway"`
	Timepoint string    `json:"timepoint" yaml:"timepoint"`

	// Categories is the set of broad categories the node belongs to.
	// A node may legitimately carry more than one category to model
	// biological cross-talk. Never empty for a valid node.
	Categories []string `json:"broadCategory" yaml:"broadCategory"`

	// Quantitative attributes
	Expression          float64 `json:"expression" yaml:"expression"`
	BaselineExpression  float64 `json:"baselineExpression" yaml:"baselineExpression"`
	PerturbedExpression float64 `json:"perturbedExpression,omitempty" yaml:"perturbedExpression,omitempty"`

	// FoldChange is the perturbed/baseline expression ratio. 1.0 means unchanged.
	FoldChange float64 `json:"foldChange" yaml:"foldChange"`

	// Significance is a p-value-like score in [0, 0.05].
	Significance float64 `json:"significance" yaml:"significance"`

	// Confidence is a reliability score in [0.1, 0.95].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// IsPerturbationTarget is true once any perturbation touched this node.
	IsPerturbationTarget bool `json:"isPerturbationTarget" yaml:"isPerturbationTarget"`
}

// InCategory reports whether the node carries the given broad category tag.
func (n BiologicalNode) InCategory(category string) bool {
	for _, c := range n.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Valid reports whether the node carries every required field.
// Used by generation and perturbation output validation.
func (n BiologicalNode) Valid() bool {
	return n.ID != "" && n.Name != "" && n.Omics.Valid() &&
		n.Pathway != "" && n.Timepoint != "" && len(n.Categories) > 0
}

// ClampConfidence forces v into the documented confidence range.
func ClampConfidence(v float64) float64 {
	if v < MinConfidence {
		return MinConfidence
	}
	if v > MaxConfidence {
		return MaxConfidence
	}
	return v
}

// ClampSignificance forces v into [0, MaxSignificance].
func ClampSignificance(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > MaxSignificance {
		return MaxSignificance
	}
	return v
}
