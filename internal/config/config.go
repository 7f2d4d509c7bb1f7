// Package config provides unified configuration loading for biograph.
// It holds the manually-tuned generation, perturbation, and query constants
// as explicit configuration values so behavior can be adjusted without
// touching engine logic.
package config

import (
	"fmt"
	"os"

	"github.com/seiler-lab/biograph/internal/models"
	"gopkg.in/yaml.v3"
)

// Range is an inclusive [Min, Max] interval values are drawn from uniformly.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Valid reports whether the range is well-formed.
func (r Range) Valid() bool { return r.Max >= r.Min }

// Fanout is an inclusive integer interval for per-node link counts.
type Fanout struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// EngineConfig contains all biograph engine tuning settings.
type EngineConfig struct {
	Generation   GenerationConfig   `json:"generation" yaml:"generation"`
	Perturbation PerturbationConfig `json:"perturbation" yaml:"perturbation"`
	Query        QueryConfig        `json:"query" yaml:"query"`
	Logging      LoggingConfig      `json:"logging" yaml:"logging"`
}

// LoggingConfig configures biograph's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables decision logging to .biograph/decisions.jsonl.
	Level string `json:"level" yaml:"level"`
}

// GenerationConfig tunes the network generator: expression sampling, the
// six link passes, and the confidence heuristic.
type GenerationConfig struct {
	// ExpressionRange is the baseline expression sampling interval.
	ExpressionRange Range `json:"expression_range" yaml:"expression_range"`

	// Pass 1: dense intra-pathway, same-time-point links.
	IntraPathwayFanout   Fanout `json:"intra_pathway_fanout" yaml:"intra_pathway_fanout"`
	IntraPathwayStrength Range  `json:"intra_pathway_strength" yaml:"intra_pathway_strength"`

	// Pass 2: forward temporal cascade.
	CascadeFanout   Fanout `json:"cascade_fanout" yaml:"cascade_fanout"`
	CascadeStrength Range  `json:"cascade_strength" yaml:"cascade_strength"`

	// Pass 3: backward feedback.
	FeedbackProbability float64 `json:"feedback_probability" yaml:"feedback_probability"`
	FeedbackStrength    Range   `json:"feedback_strength" yaml:"feedback_strength"`

	// Pass 4: cross-pathway within category.
	CrossPathwayProbability float64 `json:"cross_pathway_probability" yaml:"cross_pathway_probability"`
	CrossPathwayStrength    Range   `json:"cross_pathway_strength" yaml:"cross_pathway_strength"`

	// Pass 5: cross-category.
	CrossCategoryProbability float64 `json:"cross_category_probability" yaml:"cross_category_probability"`
	CrossCategoryStrength    Range   `json:"cross_category_strength" yaml:"cross_category_strength"`

	// Pass 6: omics-layer chain.
	TranscriptProteinFanout   Fanout `json:"transcript_protein_fanout" yaml:"transcript_protein_fanout"`
	TranscriptProteinStrength Range  `json:"transcript_protein_strength" yaml:"transcript_protein_strength"`
	ProteinMetaboliteFanout   Fanout `json:"protein_metabolite_fanout" yaml:"protein_metabolite_fanout"`
	ProteinMetaboliteStrength Range  `json:"protein_metabolite_strength" yaml:"protein_metabolite_strength"`
	MetaboliteLipidFanout     Fanout `json:"metabolite_lipid_fanout" yaml:"metabolite_lipid_fanout"`
	MetaboliteLipidStrength   Range  `json:"metabolite_lipid_strength" yaml:"metabolite_lipid_strength"`

	Confidence ConfidenceConfig `json:"confidence" yaml:"confidence"`
}

// ConfidenceConfig tunes the weighted confidence heuristic. The final score
// is always clamped to [0.1, 0.95].
type ConfidenceConfig struct {
	// Base is the starting confidence before bonuses.
	Base float64 `json:"base" yaml:"base"`

	// LayerBonus rewards more reliable measurement layers
	// (protein > transcript > metabolite > lipid).
	LayerBonus map[models.OmicsType]float64 `json:"layer_bonus" yaml:"layer_bonus"`

	// WellStudiedBonus applies to pathways on the well-studied allowlist.
	WellStudiedBonus float64 `json:"well_studied_bonus" yaml:"well_studied_bonus"`

	// TimepointBonusStep is the per-step bonus for earlier time points:
	// the earliest time point earns (len-1)*step, the latest earns 0.
	TimepointBonusStep float64 `json:"timepoint_bonus_step" yaml:"timepoint_bonus_step"`

	// Jitter is the bounded random adjustment interval.
	Jitter Range `json:"jitter" yaml:"jitter"`

	// KeyPlayerBonus applies to the first KeyPlayerFirstN nodes of a
	// (pathway, layer, timepoint) group, or to random winners drawn with
	// KeyPlayerProbability.
	KeyPlayerBonus       float64 `json:"key_player_bonus" yaml:"key_player_bonus"`
	KeyPlayerFirstN      int     `json:"key_player_first_n" yaml:"key_player_first_n"`
	KeyPlayerProbability float64 `json:"key_player_probability" yaml:"key_player_probability"`
}

// PerturbationConfig tunes the drug perturbation heuristics.
type PerturbationConfig struct {
	// Named gene-list matches.
	UpregulatedFold   Range `json:"upregulated_fold" yaml:"upregulated_fold"`
	DownregulatedFold Range `json:"downregulated_fold" yaml:"downregulated_fold"`

	// Weighted random outcome for eligible but unnamed nodes.
	NodeIncreaseProbability float64 `json:"node_increase_probability" yaml:"node_increase_probability"`
	NodeIncreaseFold        Range   `json:"node_increase_fold" yaml:"node_increase_fold"`
	NodeDecreaseProbability float64 `json:"node_decrease_probability" yaml:"node_decrease_probability"`
	NodeDecreaseFold        Range   `json:"node_decrease_fold" yaml:"node_decrease_fold"`
	NodeMildFold            Range   `json:"node_mild_fold" yaml:"node_mild_fold"`

	// Named interaction-pair matches.
	EnhancedFactor  Range `json:"enhanced_factor" yaml:"enhanced_factor"`
	DisruptedFactor Range `json:"disrupted_factor" yaml:"disrupted_factor"`

	// Links with no targeted endpoint pathway drift only slightly.
	NearIdentityFactor Range `json:"near_identity_factor" yaml:"near_identity_factor"`

	// Weighted random outcome for links touching a targeted pathway.
	LinkEnhanceProbability float64 `json:"link_enhance_probability" yaml:"link_enhance_probability"`
	LinkEnhanceFactor      Range   `json:"link_enhance_factor" yaml:"link_enhance_factor"`
	LinkDisruptProbability float64 `json:"link_disrupt_probability" yaml:"link_disrupt_probability"`
	LinkDisruptFactor      Range   `json:"link_disrupt_factor" yaml:"link_disrupt_factor"`
	LinkMildFactor         Range   `json:"link_mild_factor" yaml:"link_mild_factor"`
}

// QueryConfig tunes the query engine's thresholds.
type QueryConfig struct {
	// Fold-change thresholds used when a node carries a fold change.
	UpregulatedFoldThreshold   float64 `json:"upregulated_fold_threshold" yaml:"upregulated_fold_threshold"`
	DownregulatedFoldThreshold float64 `json:"downregulated_fold_threshold" yaml:"downregulated_fold_threshold"`

	// Raw expression thresholds used when no fold change is present.
	UpregulatedExprThreshold   float64 `json:"upregulated_expr_threshold" yaml:"upregulated_expr_threshold"`
	DownregulatedExprThreshold float64 `json:"downregulated_expr_threshold" yaml:"downregulated_expr_threshold"`

	// Minimum fuzzy-hit scores, relative to the best hit of the search.
	// Categories use a looser threshold than pathways.
	PathwayMinScore  float64 `json:"pathway_min_score" yaml:"pathway_min_score"`
	CategoryMinScore float64 `json:"category_min_score" yaml:"category_min_score"`
}

// Default returns an EngineConfig with the documented tuning values.
func Default() *EngineConfig {
	return &EngineConfig{
		Generation: GenerationConfig{
			ExpressionRange: Range{Min: 0.2, Max: 1.0},

			IntraPathwayFanout:   Fanout{Min: 2, Max: 4},
			IntraPathwayStrength: Range{Min: 0.6, Max: 0.9},

			CascadeFanout:   Fanout{Min: 1, Max: 3},
			CascadeStrength: Range{Min: 0.5, Max: 0.9},

			FeedbackProbability: 0.3,
			FeedbackStrength:    Range{Min: 0.3, Max: 0.6},

			CrossPathwayProbability: 0.4,
			CrossPathwayStrength:    Range{Min: 0.3, Max: 0.6},

			CrossCategoryProbability: 0.2,
			CrossCategoryStrength:    Range{Min: 0.2, Max: 0.5},

			TranscriptProteinFanout:   Fanout{Min: 1, Max: 2},
			TranscriptProteinStrength: Range{Min: 0.7, Max: 0.9},
			ProteinMetaboliteFanout:   Fanout{Min: 1, Max: 3},
			ProteinMetaboliteStrength: Range{Min: 0.6, Max: 0.9},
			MetaboliteLipidFanout:     Fanout{Min: 1, Max: 2},
			MetaboliteLipidStrength:   Range{Min: 0.5, Max: 0.8},

			Confidence: ConfidenceConfig{
				Base: 0.45,
				LayerBonus: map[models.OmicsType]float64{
					models.OmicsProtein:    0.15,
					models.OmicsTranscript: 0.10,
					models.OmicsMetabolite: 0.06,
					models.OmicsLipid:      0.03,
				},
				WellStudiedBonus:     0.08,
				TimepointBonusStep:   0.02,
				Jitter:               Range{Min: -0.05, Max: 0.05},
				KeyPlayerBonus:       0.10,
				KeyPlayerFirstN:      2,
				KeyPlayerProbability: 0.1,
			},
		},
		Perturbation: PerturbationConfig{
			UpregulatedFold:   Range{Min: 1.8, Max: 3.3},
			DownregulatedFold: Range{Min: 0.15, Max: 0.6},

			NodeIncreaseProbability: 0.4,
			NodeIncreaseFold:        Range{Min: 1.5, Max: 2.5},
			NodeDecreaseProbability: 0.4,
			NodeDecreaseFold:        Range{Min: 0.3, Max: 0.7},
			NodeMildFold:            Range{Min: 0.85, Max: 1.15},

			EnhancedFactor:  Range{Min: 1.6, Max: 2.8},
			DisruptedFactor: Range{Min: 0.1, Max: 0.4},

			NearIdentityFactor: Range{Min: 0.95, Max: 1.05},

			LinkEnhanceProbability: 0.3,
			LinkEnhanceFactor:      Range{Min: 1.4, Max: 2.2},
			LinkDisruptProbability: 0.3,
			LinkDisruptFactor:      Range{Min: 0.2, Max: 0.6},
			LinkMildFactor:         Range{Min: 0.8, Max: 1.2},
		},
		Query: QueryConfig{
			UpregulatedFoldThreshold:   1.2,
			DownregulatedFoldThreshold: 0.8,
			UpregulatedExprThreshold:   0.6,
			DownregulatedExprThreshold: 0.4,
			PathwayMinScore:            0.6,
			CategoryMinScore:           0.5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads an EngineConfig from a YAML file, layering the file's values
// over the defaults.
func Load(path string) (*EngineConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and probabilities for well-formedness.
func (c *EngineConfig) Validate() error {
	ranges := map[string]Range{
		"generation.expression_range":     c.Generation.ExpressionRange,
		"generation.intra_pathway":        c.Generation.IntraPathwayStrength,
		"generation.cascade":              c.Generation.CascadeStrength,
		"generation.feedback":             c.Generation.FeedbackStrength,
		"generation.cross_pathway":        c.Generation.CrossPathwayStrength,
		"generation.cross_category":       c.Generation.CrossCategoryStrength,
		"perturbation.upregulated_fold":   c.Perturbation.UpregulatedFold,
		"perturbation.downregulated_fold": c.Perturbation.DownregulatedFold,
		"perturbation.enhanced_factor":    c.Perturbation.EnhancedFactor,
		"perturbation.disrupted_factor":   c.Perturbation.DisruptedFactor,
		"perturbation.near_identity":      c.Perturbation.NearIdentityFactor,
	}
	for name, r := range ranges {
		if !r.Valid() {
			return fmt.Errorf("%s: invalid range [%f, %f]", name, r.Min, r.Max)
		}
	}

	probs := map[string]float64{
		"generation.feedback_probability":       c.Generation.FeedbackProbability,
		"generation.cross_pathway_probability":  c.Generation.CrossPathwayProbability,
		"generation.cross_category_probability": c.Generation.CrossCategoryProbability,
		"perturbation.node_increase":            c.Perturbation.NodeIncreaseProbability,
		"perturbation.node_decrease":            c.Perturbation.NodeDecreaseProbability,
		"perturbation.link_enhance":             c.Perturbation.LinkEnhanceProbability,
		"perturbation.link_disrupt":             c.Perturbation.LinkDisruptProbability,
	}
	for name, p := range probs {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: probability %f outside [0, 1]", name, p)
		}
	}

	if c.Perturbation.NodeIncreaseProbability+c.Perturbation.NodeDecreaseProbability > 1 {
		return fmt.Errorf("perturbation node outcome probabilities exceed 1.0")
	}
	if c.Perturbation.LinkEnhanceProbability+c.Perturbation.LinkDisruptProbability > 1 {
		return fmt.Errorf("perturbation link outcome probabilities exceed 1.0")
	}

	return nil
}
