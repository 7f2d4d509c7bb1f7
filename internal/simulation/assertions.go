package simulation

import (
	"strings"
	"testing"
)

// AssertConfidence asserts that question index qi produced exactly the
// given interpretation confidence.
func AssertConfidence(t *testing.T, result ScenarioResult, qi int, want float64) {
	t.Helper()
	qr := questionAt(t, result, qi)
	if qr.Result.Confidence != want {
		t.Errorf("AssertConfidence: question %q: confidence %.2f, want %.2f",
			qr.Question.Text, qr.Result.Confidence, want)
	}
}

// AssertExplanationMentions asserts that the explanation for question qi
// contains every given substring.
func AssertExplanationMentions(t *testing.T, result ScenarioResult, qi int, substrings ...string) {
	t.Helper()
	qr := questionAt(t, result, qi)
	for _, s := range substrings {
		if !strings.Contains(qr.Result.Explanation, s) {
			t.Errorf("AssertExplanationMentions: question %q: explanation %q missing %q",
				qr.Question.Text, qr.Result.Explanation, s)
		}
	}
}

// AssertNonEmpty asserts that question qi matched at least one node.
func AssertNonEmpty(t *testing.T, result ScenarioResult, qi int) {
	t.Helper()
	qr := questionAt(t, result, qi)
	if len(qr.Result.Nodes) == 0 {
		t.Errorf("AssertNonEmpty: question %q matched no nodes", qr.Question.Text)
	}
}

// AssertSubsetOfBaseline asserts that every node returned for question qi
// exists in the baseline graph.
func AssertSubsetOfBaseline(t *testing.T, result ScenarioResult, qi int) {
	t.Helper()
	qr := questionAt(t, result, qi)
	ids := make(map[string]bool, len(result.Baseline.Nodes))
	for _, n := range result.Baseline.Nodes {
		ids[n.ID] = true
	}
	for _, n := range qr.Result.Nodes {
		if !ids[n.ID] {
			t.Errorf("AssertSubsetOfBaseline: question %q returned unknown node %s",
				qr.Question.Text, n.ID)
		}
	}
}

// AssertTargetsPerturbed asserts that the snapshot for the given drug has
// at least minTargets nodes flagged as perturbation targets, each with a
// fold change inside [foldMin, foldMax] or outside the near-identity band.
func AssertTargetsPerturbed(t *testing.T, result ScenarioResult, drugID string, minTargets int) {
	t.Helper()
	graph, ok := result.Perturbed[drugID]
	if !ok {
		t.Fatalf("AssertTargetsPerturbed: no snapshot for drug %q", drugID)
	}
	targets := 0
	for _, n := range graph.Nodes {
		if n.IsPerturbationTarget {
			targets++
		}
	}
	if targets < minTargets {
		t.Errorf("AssertTargetsPerturbed: drug %s flagged %d targets, want at least %d",
			drugID, targets, minTargets)
	}
}

// AssertBaselineUntouched asserts that perturbation left the baseline's
// expression values and fold changes at their generated state.
func AssertBaselineUntouched(t *testing.T, result ScenarioResult) {
	t.Helper()
	for _, n := range result.Baseline.Nodes {
		if n.FoldChange != 1.0 {
			t.Errorf("AssertBaselineUntouched: node %s fold change %.3f, want 1.0", n.ID, n.FoldChange)
		}
		if n.IsPerturbationTarget {
			t.Errorf("AssertBaselineUntouched: node %s flagged as perturbation target", n.ID)
		}
	}
}

func questionAt(t *testing.T, result ScenarioResult, qi int) QuestionResult {
	t.Helper()
	if qi < 0 || qi >= len(result.Questions) {
		t.Fatalf("question index %d out of range (%d questions)", qi, len(result.Questions))
	}
	return result.Questions[qi]
}
