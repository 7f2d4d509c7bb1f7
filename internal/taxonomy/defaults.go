package taxonomy

import "github.com/seiler-lab/biograph/internal/models"

// Broad category names.
const (
	CategorySynapticPlasticity = "Synaptic Plasticity"
	CategoryEnergyMetabolism   = "Energy Metabolism"
	CategoryNeuroinflammation  = "Neuroinflammation"
	CategoryImmuneResponse     = "Immune Response"
	CategoryStressResponse     = "Stress Response"
)

// Sub-pathway names.
const (
	PathwayGlutamateSignaling  = "Glutamate Signaling"
	PathwayGABASignaling       = "GABA Signaling"
	PathwaySynapticVesicle     = "Synaptic Vesicle Cycle"
	PathwayNeurotrophin        = "Neurotrophin Signaling"
	PathwayGlucoseMetabolism   = "Glucose Metabolism"
	PathwayOxidativePhos       = "Oxidative Phosphorylation"
	PathwayTCACycle            = "TCA Cycle"
	PathwayLipidMetabolism     = "Lipid Metabolism"
	PathwayCytokineSignaling   = "Cytokine Signaling"
	PathwayMicroglialActiv     = "Microglial Activation"
	PathwayComplementCascade   = "Complement Cascade"
	PathwayInnateImmunity      = "Innate Immunity"
	PathwayAntigenPresentation = "Antigen Presentation"
	PathwayOxidativeStress     = "Oxidative Stress"
	PathwayHPAAxis             = "HPA Axis Signaling"
	PathwayHeatShock           = "Heat Shock Response"
)

// Default returns the embedded reference taxonomy: a synthetic
// neuro-multi-omics network sampled at four time points after treatment.
func Default() *Tables {
	return &Tables{
		Version: "1.0",

		Timepoints: []string{"10min", "1h", "6h", "24h"},

		// Early time points are metabolite/protein-heavy (fast signaling);
		// transcription dominates the middle; 24h is lipid-heavy
		// (membrane remodeling). Each row sums to 1.0.
		OmicsDistribution: map[string]map[models.OmicsType]float64{
			"10min": {
				models.OmicsTranscript: 0.15,
				models.OmicsProtein:    0.30,
				models.OmicsMetabolite: 0.40,
				models.OmicsLipid:      0.15,
			},
			"1h": {
				models.OmicsTranscript: 0.30,
				models.OmicsProtein:    0.30,
				models.OmicsMetabolite: 0.25,
				models.OmicsLipid:      0.15,
			},
			"6h": {
				models.OmicsTranscript: 0.30,
				models.OmicsProtein:    0.30,
				models.OmicsMetabolite: 0.20,
				models.OmicsLipid:      0.20,
			},
			"24h": {
				models.OmicsTranscript: 0.20,
				models.OmicsProtein:    0.25,
				models.OmicsMetabolite: 0.20,
				models.OmicsLipid:      0.35,
			},
		},

		Categories: []Category{
			{
				Name: CategorySynapticPlasticity,
				Pathways: []string{
					PathwayGlutamateSignaling,
					PathwayGABASignaling,
					PathwaySynapticVesicle,
					PathwayNeurotrophin,
				},
			},
			{
				Name: CategoryEnergyMetabolism,
				Pathways: []string{
					PathwayGlucoseMetabolism,
					PathwayOxidativePhos,
					PathwayTCACycle,
					PathwayLipidMetabolism,
				},
			},
			{
				Name: CategoryNeuroinflammation,
				Pathways: []string{
					PathwayCytokineSignaling,
					PathwayMicroglialActiv,
					PathwayComplementCascade,
				},
			},
			{
				Name: CategoryImmuneResponse,
				Pathways: []string{
					PathwayInnateImmunity,
					PathwayAntigenPresentation,
				},
			},
			{
				Name: CategoryStressResponse,
				Pathways: []string{
					PathwayOxidativeStress,
					PathwayHPAAxis,
					PathwayHeatShock,
				},
			},
		},

		GeneNames: defaultGeneNames(),

		// Known cross-talk: inflammation pathways sometimes tag as immune
		// response, oxidative stress couples to energy metabolism.
		CrossTalk: []CrossTalkRule{
			{Pathway: PathwayCytokineSignaling, ExtraCategory: CategoryImmuneResponse, Probability: 0.4},
			{Pathway: PathwayComplementCascade, ExtraCategory: CategoryImmuneResponse, Probability: 0.5},
			{Pathway: PathwayMicroglialActiv, ExtraCategory: CategoryImmuneResponse, Probability: 0.3},
			{Pathway: PathwayOxidativeStress, ExtraCategory: CategoryEnergyMetabolism, Probability: 0.3},
		},

		WellStudied: []string{
			PathwayGlucoseMetabolism,
			PathwayGlutamateSignaling,
			PathwayCytokineSignaling,
			PathwayOxidativePhos,
		},

		NodesPerCategory: 12,

		Drugs: defaultDrugs(),
	}
}

// defaultDrugs returns the built-in treatment records.
func defaultDrugs() []models.DrugTreatment {
	return []models.DrugTreatment{
		{
			ID:        "lithium",
			Name:      "Lithium",
			Mechanism: "GSK-3 beta inhibition and inositol depletion",
			TargetPathways: []string{
				PathwayNeurotrophin,
				PathwayGlutamateSignaling,
				PathwayHPAAxis,
			},
			TargetOmics: []models.OmicsType{models.OmicsProtein, models.OmicsTranscript},
			Effects: models.DrugEffects{
				Upregulated:           []string{"BDNF", "CREB1", "NTRK2", "BCL2"},
				Downregulated:         []string{"GSK3B", "GRIN2B", "FKBP5"},
				EnhancedInteractions:  []string{"BDNF", "NTRK2"},
				DisruptedInteractions: []string{"GSK3B", "GRIN2B"},
			},
		},
		{
			ID:        "ketamine",
			Name:      "Ketamine",
			Mechanism: "NMDA receptor antagonism with downstream mTOR activation",
			TargetPathways: []string{
				PathwayGlutamateSignaling,
				PathwayNeurotrophin,
				PathwaySynapticVesicle,
			},
			TargetOmics: []models.OmicsType{models.OmicsProtein, models.OmicsMetabolite},
			Effects: models.DrugEffects{
				Upregulated:           []string{"BDNF", "AKT1", "MAPK1", "SYN1"},
				Downregulated:         []string{"GRIN1", "GRIN2B", "SLC1A2"},
				EnhancedInteractions:  []string{"BDNF", "SYN1"},
				DisruptedInteractions: []string{"GRIN1", "GRIN2A"},
			},
		},
		{
			ID:        "rapamycin",
			Name:      "Rapamycin",
			Mechanism: "mTOR complex 1 inhibition, autophagy induction",
			TargetPathways: []string{
				PathwayGlucoseMetabolism,
				PathwayLipidMetabolism,
				PathwayNeurotrophin,
			},
			TargetOmics: []models.OmicsType{models.OmicsProtein, models.OmicsLipid},
			Effects: models.DrugEffects{
				Upregulated:           []string{"MAP1LC3B", "ULK1", "SQSTM1"},
				Downregulated:         []string{"RPS6KB1", "SREBF1", "FASN"},
				EnhancedInteractions:  []string{"ULK1"},
				DisruptedInteractions: []string{"RPS6KB1", "SREBF1"},
			},
		},
		{
			ID:        "minocycline",
			Name:      "Minocycline",
			Mechanism: "Microglial activation inhibition, anti-inflammatory",
			TargetPathways: []string{
				PathwayMicroglialActiv,
				PathwayCytokineSignaling,
				PathwayComplementCascade,
			},
			TargetOmics: []models.OmicsType{models.OmicsTranscript, models.OmicsProtein},
			Effects: models.DrugEffects{
				Upregulated:           []string{"IL10", "SOCS3"},
				Downregulated:         []string{"TNF", "IL1B", "IL6", "AIF1", "C1QA"},
				EnhancedInteractions:  []string{"IL10"},
				DisruptedInteractions: []string{"TNF", "IL1B"},
			},
		},
	}
}
