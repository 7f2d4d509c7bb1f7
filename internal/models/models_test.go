package models

import "testing"

func validNode(id string) BiologicalNode {
	return BiologicalNode{
		ID:         id,
		Name:       "BDNF_1h",
		Omics:      OmicsProtein,
		Pathway:    "Neurotrophin Signaling",
		Timepoint:  "1h",
		Categories: []string{"Synaptic Plasticity"},
		Expression: 0.5,
		FoldChange: 1.0,
		Confidence: 0.6,
	}
}

func TestNodeValid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BiologicalNode)
		want   bool
	}{
		{"complete node", func(n *BiologicalNode) {}, true},
		{"missing id", func(n *BiologicalNode) { n.ID = "" }, false},
		{"missing name", func(n *BiologicalNode) { n.Name = "" }, false},
		{"unknown omics", func(n *BiologicalNode) { n.Omics = "genome" }, false},
		{"missing pathway", func(n *BiologicalNode) { n.Pathway = "" }, false},
		{"missing timepoint", func(n *BiologicalNode) { n.Timepoint = "" }, false},
		{"no categories", func(n *BiologicalNode) { n.Categories = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := validNode("n1")
			tt.mutate(&n)
			if got := n.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInCategory(t *testing.T) {
	n := validNode("n1")
	n.Categories = []string{"Synaptic Plasticity", "Immune Response"}

	if !n.InCategory("Immune Response") {
		t.Error("InCategory missed a carried category")
	}
	if n.InCategory("Energy Metabolism") {
		t.Error("InCategory matched an absent category")
	}
}

func TestClamps(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"confidence below floor", ClampConfidence, 0.01, MinConfidence},
		{"confidence above ceiling", ClampConfidence, 1.2, MaxConfidence},
		{"confidence in range", ClampConfidence, 0.5, 0.5},
		{"significance negative", ClampSignificance, -0.1, 0},
		{"significance above ceiling", ClampSignificance, 0.2, MaxSignificance},
		{"significance in range", ClampSignificance, 0.03, 0.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPairKeyCanonical(t *testing.T) {
	if PairKey("b", "a") != PairKey("a", "b") {
		t.Error("PairKey is not direction-independent")
	}
	if PairKey("a", "b") != "a|b" {
		t.Errorf("PairKey(a, b) = %q, want a|b", PairKey("a", "b"))
	}
}

func TestLinkTypeValid(t *testing.T) {
	for _, lt := range []LinkType{LinkRegulation, LinkInteraction, LinkConversion} {
		if !lt.Valid() {
			t.Errorf("%s reported invalid", lt)
		}
	}
	for _, lt := range []LinkType{"", "binds", "Regulation"} {
		if lt.Valid() {
			t.Errorf("%q reported valid", lt)
		}
	}
}

func TestLinkValid(t *testing.T) {
	l := BiologicalLink{Source: "a", Target: "b", Strength: 0.5, Type: LinkRegulation}
	if !l.Valid() {
		t.Error("complete link reported invalid")
	}

	for name, bad := range map[string]BiologicalLink{
		"self loop":    {Source: "a", Target: "a", Strength: 0.5, Type: LinkRegulation},
		"no source":    {Target: "b", Strength: 0.5, Type: LinkRegulation},
		"unknown type": {Source: "a", Target: "b", Strength: 0.5, Type: "binds"},
	} {
		if bad.Valid() {
			t.Errorf("%s reported valid", name)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := PathwayData{
		Nodes:      []BiologicalNode{validNode("n1")},
		Links:      []BiologicalLink{{Source: "n1", Target: "n2", Strength: 0.5, Type: LinkRegulation}},
		Pathways:   []string{"Neurotrophin Signaling"},
		Categories: []string{"Synaptic Plasticity"},
	}

	clone := orig.Clone()
	clone.Nodes[0].Categories[0] = "changed"
	clone.Nodes[0].Expression = 99
	clone.Links[0].Strength = 99
	clone.Pathways[0] = "changed"

	if orig.Nodes[0].Categories[0] != "Synaptic Plasticity" {
		t.Error("Clone shares category slices with the original")
	}
	if orig.Nodes[0].Expression == 99 || orig.Links[0].Strength == 99 || orig.Pathways[0] == "changed" {
		t.Error("Clone shares backing arrays with the original")
	}
}

func TestFingerprintIgnoresEffectAttributes(t *testing.T) {
	a := []BiologicalNode{validNode("n1"), validNode("n2")}
	b := []BiologicalNode{validNode("n2"), validNode("n1")}
	b[0].FoldChange = 2.5
	b[0].IsPerturbationTarget = true
	b[1].Expression = 0.99

	if NodesFingerprint(a) != NodesFingerprint(b) {
		t.Error("fingerprint changed with node order or effect attributes")
	}

	c := []BiologicalNode{validNode("n1"), validNode("n3")}
	if NodesFingerprint(a) == NodesFingerprint(c) {
		t.Error("fingerprint identical for different node identities")
	}

	// Baseline expression is part of identity: two generation runs over the
	// same taxonomy share IDs but not baselines, and must not collide.
	d := []BiologicalNode{validNode("n1"), validNode("n2")}
	d[0].BaselineExpression = 0.42
	if NodesFingerprint(a) == NodesFingerprint(d) {
		t.Error("fingerprint identical for different baseline expressions")
	}
}

func TestNameMatches(t *testing.T) {
	names := []string{"BDNF", "CREB1"}

	tests := []struct {
		nodeName string
		want     bool
	}{
		{"BDNF_1h", true},
		{"bdnf_24h", true},
		{"CREB1_10min", true},
		{"NTRK2_1h", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := NameMatches(names, tt.nodeName); got != tt.want {
			t.Errorf("NameMatches(%q) = %v, want %v", tt.nodeName, got, tt.want)
		}
	}
}
