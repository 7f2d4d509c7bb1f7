package models

import "strings"

// DrugEffects holds the gene-name lists a treatment acts on. Names are
// matched case-insensitively as substrings in either direction, so "BDNF"
// matches a node named "BDNF_10min" and vice versa.
type DrugEffects struct {
	Upregulated           []string `json:"upregulated" yaml:"upregulated"`
	Downregulated         []string `json:"downregulated" yaml:"downregulated"`
	EnhancedInteractions  []string `json:"enhancedInteractions" yaml:"enhancedInteractions"`
	DisruptedInteractions []string `json:"disruptedInteractions" yaml:"disruptedInteractions"`
}

// DrugTreatment is a named perturbation recipe. Treated as immutable
// reference data loaded from the taxonomy tables.
type DrugTreatment struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Mechanism string `json:"mechanism" yaml:"mechanism"`

	// TargetPathways are the sub-pathway names the treatment biases.
	TargetPathways []string `json:"targetPathways" yaml:"targetPathways"`

	// TargetOmics are the molecular layers the treatment biases.
	TargetOmics []OmicsType `json:"targetOmicsTypes" yaml:"targetOmicsTypes"`

	Effects DrugEffects `json:"effects" yaml:"effects"`
}

// TargetsPathway reports whether pathway is in the drug's target list.
func (d DrugTreatment) TargetsPathway(pathway string) bool {
	for _, p := range d.TargetPathways {
		if p == pathway {
			return true
		}
	}
	return false
}

// TargetsOmics reports whether the layer is in the drug's target list.
func (d DrugTreatment) TargetsOmics(o OmicsType) bool {
	for _, t := range d.TargetOmics {
		if t == o {
			return true
		}
	}
	return false
}

// NameMatches reports whether any gene name in the list matches the node
// name: case-insensitive substring containment in either direction.
func NameMatches(names []string, nodeName string) bool {
	if nodeName == "" {
		return false
	}
	lower := strings.ToLower(nodeName)
	for _, g := range names {
		lg := strings.ToLower(g)
		if lg == "" {
			continue
		}
		if strings.Contains(lower, lg) || strings.Contains(lg, lower) {
			return true
		}
	}
	return false
}
