// Package taxonomy provides the static reference tables of the biograph
// engine: omics layers, time points, broad pathway categories and their
// sub-pathways, curated gene-name tables, cross-talk rules, and drug
// treatment records. Tables are versioned and YAML-loadable so the taxonomy
// can be swapped or extended without touching generation logic.
package taxonomy

import (
	"fmt"
	"math"

	"github.com/seiler-lab/biograph/internal/models"
)

// Category is a top-level grouping of several sub-pathways.
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Pathways []string `json:"pathways" yaml:"pathways"`
}

// CrossTalkRule probabilistically gives nodes of a pathway a second broad
// category tag, modeling known biological overlap.
type CrossTalkRule struct {
	Pathway       string  `json:"pathway" yaml:"pathway"`
	ExtraCategory string  `json:"extraCategory" yaml:"extraCategory"`
	Probability   float64 `json:"probability" yaml:"probability"`
}

// Tables holds the complete reference taxonomy. Loaded once at process
// start and treated as constant for the remainder of the process lifetime.
type Tables struct {
	Version string `json:"version" yaml:"version"`

	// Timepoints are the four discrete sampling times, earliest first.
	Timepoints []string `json:"timepoints" yaml:"timepoints"`

	// OmicsDistribution maps each time point to the fraction of its node
	// budget allotted to each molecular layer. Each row sums to 1.0.
	OmicsDistribution map[string]map[models.OmicsType]float64 `json:"omicsDistribution" yaml:"omicsDistribution"`

	Categories []Category `json:"categories" yaml:"categories"`

	// GeneNames are the curated per-pathway name tables. When a table is
	// exhausted the generator falls back to generated abbreviations.
	GeneNames map[string][]string `json:"geneNames" yaml:"geneNames"`

	CrossTalk []CrossTalkRule `json:"crossTalk" yaml:"crossTalk"`

	// WellStudied lists pathways that earn a confidence familiarity bonus.
	WellStudied []string `json:"wellStudied" yaml:"wellStudied"`

	// NodesPerCategory is the node budget per (time point, category) cell.
	NodesPerCategory int `json:"nodesPerCategory" yaml:"nodesPerCategory"`

	Drugs []models.DrugTreatment `json:"drugs" yaml:"drugs"`
}

// PathwayNames returns every sub-pathway name across all categories,
// in category order, without duplicates.
func (t *Tables) PathwayNames() []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, c := range t.Categories {
		for _, p := range c.Pathways {
			if !seen[p] {
				seen[p] = true
				names = append(names, p)
			}
		}
	}
	return names
}

// CategoryNames returns the broad category names in declaration order.
func (t *Tables) CategoryNames() []string {
	names := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		names = append(names, c.Name)
	}
	return names
}

// CategoriesOf returns the names of every category that lists the pathway.
func (t *Tables) CategoriesOf(pathway string) []string {
	var out []string
	for _, c := range t.Categories {
		for _, p := range c.Pathways {
			if p == pathway {
				out = append(out, c.Name)
				break
			}
		}
	}
	return out
}

// TimepointIndex returns the position of the label in Timepoints, or -1.
func (t *Tables) TimepointIndex(label string) int {
	for i, tp := range t.Timepoints {
		if tp == label {
			return i
		}
	}
	return -1
}

// IsWellStudied reports whether the pathway is on the familiarity allowlist.
func (t *Tables) IsWellStudied(pathway string) bool {
	for _, p := range t.WellStudied {
		if p == pathway {
			return true
		}
	}
	return false
}

// DrugByID returns the treatment with the given ID or name
// (case-sensitive ID first, then display name).
func (t *Tables) DrugByID(id string) (*models.DrugTreatment, error) {
	for i := range t.Drugs {
		if t.Drugs[i].ID == id {
			return &t.Drugs[i], nil
		}
	}
	for i := range t.Drugs {
		if t.Drugs[i].Name == id {
			return &t.Drugs[i], nil
		}
	}
	return nil, fmt.Errorf("unknown drug treatment: %q", id)
}

// Validate checks the referential integrity of the tables: every cross-talk
// and drug target pathway must exist, every distribution row must sum to 1,
// and every time point must have a distribution.
func (t *Tables) Validate() error {
	if len(t.Timepoints) == 0 {
		return fmt.Errorf("taxonomy: no timepoints defined")
	}
	if len(t.Categories) == 0 {
		return fmt.Errorf("taxonomy: no categories defined")
	}
	if t.NodesPerCategory <= 0 {
		return fmt.Errorf("taxonomy: nodesPerCategory must be positive, got %d", t.NodesPerCategory)
	}

	known := make(map[string]bool)
	for _, p := range t.PathwayNames() {
		known[p] = true
	}
	categories := make(map[string]bool)
	for _, c := range t.Categories {
		if categories[c.Name] {
			return fmt.Errorf("taxonomy: duplicate category %q", c.Name)
		}
		categories[c.Name] = true
		if len(c.Pathways) == 0 {
			return fmt.Errorf("taxonomy: category %q has no pathways", c.Name)
		}
	}

	for _, tp := range t.Timepoints {
		dist, ok := t.OmicsDistribution[tp]
		if !ok {
			return fmt.Errorf("taxonomy: no omics distribution for timepoint %q", tp)
		}
		sum := 0.0
		for layer, frac := range dist {
			if !layer.Valid() {
				return fmt.Errorf("taxonomy: unknown omics layer %q in distribution for %q", layer, tp)
			}
			if frac < 0 {
				return fmt.Errorf("taxonomy: negative fraction for %s at %q", layer, tp)
			}
			sum += frac
		}
		if math.Abs(sum-1.0) > 1e-6 {
			return fmt.Errorf("taxonomy: omics distribution for %q sums to %f, want 1.0", tp, sum)
		}
	}

	for _, rule := range t.CrossTalk {
		if !known[rule.Pathway] {
			return fmt.Errorf("taxonomy: cross-talk rule references unknown pathway %q", rule.Pathway)
		}
		if !categories[rule.ExtraCategory] {
			return fmt.Errorf("taxonomy: cross-talk rule references unknown category %q", rule.ExtraCategory)
		}
		if rule.Probability < 0 || rule.Probability > 1 {
			return fmt.Errorf("taxonomy: cross-talk probability %f for %q outside [0, 1]", rule.Probability, rule.Pathway)
		}
	}

	for _, p := range t.WellStudied {
		if !known[p] {
			return fmt.Errorf("taxonomy: well-studied list references unknown pathway %q", p)
		}
	}

	drugIDs := make(map[string]bool)
	for _, d := range t.Drugs {
		if d.ID == "" || d.Name == "" {
			return fmt.Errorf("taxonomy: drug with missing id or name")
		}
		if drugIDs[d.ID] {
			return fmt.Errorf("taxonomy: duplicate drug id %q", d.ID)
		}
		drugIDs[d.ID] = true
		for _, p := range d.TargetPathways {
			if !known[p] {
				return fmt.Errorf("taxonomy: drug %q targets unknown pathway %q", d.ID, p)
			}
		}
		for _, o := range d.TargetOmics {
			if !o.Valid() {
				return fmt.Errorf("taxonomy: drug %q targets unknown omics layer %q", d.ID, o)
			}
		}
	}

	return nil
}
