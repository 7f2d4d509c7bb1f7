package models

// LinkType categorizes the biological relationship a link models.
type LinkType string

const (
	LinkRegulation  LinkType = "regulation"  // e.g. transcript -> protein
	LinkInteraction LinkType = "interaction" // cross-pathway / cross-category contact
	LinkConversion  LinkType = "conversion"  // e.g. protein -> metabolite
)

// Valid reports whether t is one of the three known link types.
func (t LinkType) Valid() bool {
	switch t {
	case LinkRegulation, LinkInteraction, LinkConversion:
		return true
	}
	return false
}

// BiologicalLink is a relationship between two node IDs.
//
// Links are undirected for uniqueness purposes: (a,b) and (b,a) are the
// same edge within one generation pass.
type BiologicalLink struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`

	// Strength is the current regulatory/interaction weight (positive).
	Strength          float64 `json:"strength" yaml:"strength"`
	BaselineStrength  float64 `json:"baselineStrength" yaml:"baselineStrength"`
	PerturbedStrength float64 `json:"perturbedStrength,omitempty" yaml:"perturbedStrength,omitempty"`

	// StrengthChange is the perturbed/baseline strength ratio. 1.0 means unchanged.
	StrengthChange float64 `json:"strengthChange" yaml:"strengthChange"`

	Type LinkType `json:"type" yaml:"type"`
}

// Valid reports whether the link has two distinct endpoints and a known type.
// Used by generation and perturbation output validation.
func (l BiologicalLink) Valid() bool {
	return l.Source != "" && l.Target != "" && l.Source != l.Target && l.Type.Valid()
}

// PairKey returns the canonical undirected key for a (source, target) pair.
// The lexically smaller ID always comes first so (a,b) == (b,a).
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}
