package taxonomy

// defaultGeneNames returns the curated per-pathway name tables. Names are
// standard HGNC-style symbols for transcript/protein slots; the generator
// reuses them across layers and falls back to generated abbreviations once
// a table is exhausted.
func defaultGeneNames() map[string][]string {
	return map[string][]string{
		PathwayGlutamateSignaling: {
			"GRIN1", "GRIN2A", "GRIN2B", "GRIA1", "GRIA2",
			"GRM5", "SLC1A2", "DLG4", "CAMK2A", "HOMER1",
		},
		PathwayGABASignaling: {
			"GABRA1", "GABRB2", "GABRG2", "GAD1", "GAD2",
			"SLC6A1", "GPHN", "ABAT",
		},
		PathwaySynapticVesicle: {
			"SYN1", "SYT1", "SNAP25", "STX1A", "VAMP2",
			"SV2A", "RAB3A", "CPLX1",
		},
		PathwayNeurotrophin: {
			"BDNF", "NTRK2", "NGF", "NTF3", "CREB1",
			"AKT1", "MAPK1", "RPS6KB1", "GSK3B",
		},
		PathwayGlucoseMetabolism: {
			"HK1", "PFKM", "ALDOA", "GAPDH", "PKM",
			"PGK1", "ENO2", "SLC2A3",
		},
		PathwayOxidativePhos: {
			"NDUFS1", "NDUFV1", "SDHA", "UQCRC1", "COX4I1",
			"ATP5F1A", "CYCS",
		},
		PathwayTCACycle: {
			"CS", "ACO2", "IDH2", "OGDH", "SUCLA2",
			"FH", "MDH2", "SDHB",
		},
		PathwayLipidMetabolism: {
			"FASN", "ACACA", "SCD", "CPT1A", "SREBF1",
			"APOE", "DGAT1", "PLIN2",
		},
		PathwayCytokineSignaling: {
			"TNF", "IL1B", "IL6", "IL10", "NFKB1",
			"STAT3", "JAK2", "SOCS3", "CCL2",
		},
		PathwayMicroglialActiv: {
			"AIF1", "CX3CR1", "TREM2", "CD68", "ITGAM",
			"P2RY12", "TYROBP",
		},
		PathwayComplementCascade: {
			"C1QA", "C1QB", "C3", "C4A", "CFH",
			"CR1", "C5AR1",
		},
		PathwayInnateImmunity: {
			"TLR4", "TLR2", "MYD88", "IRF3", "IFNB1",
			"NLRP3", "CASP1",
		},
		PathwayAntigenPresentation: {
			"B2M", "TAP1", "TAP2", "PSMB8", "PSMB9", "CD74",
		},
		PathwayOxidativeStress: {
			"SOD1", "SOD2", "CAT", "GPX1", "NFE2L2",
			"HMOX1", "NQO1", "GCLC",
		},
		PathwayHPAAxis: {
			"CRH", "CRHR1", "POMC", "NR3C1", "FKBP5",
			"AVP", "MC2R",
		},
		PathwayHeatShock: {
			"HSPA1A", "HSPA8", "HSP90AA1", "DNAJB1", "HSF1",
			"HSPB1", "BAG3",
		},
	}
}
