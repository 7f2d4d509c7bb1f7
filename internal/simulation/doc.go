// Package simulation provides an end-to-end test harness for the
// generate, perturb, and query pipeline.
//
// Scenarios exercise the real Generator, perturbation Engine,
// SQLiteGraphStore, and query Engine together, no mocks. Each scenario
// generates a seeded baseline, optionally applies drug treatments, runs a
// set of free-text questions against the resulting snapshots, and captures
// the outcomes for property-based assertions.
//
// Each test gets an isolated SQLite database via t.TempDir().
//
// Usage:
//
//	func TestLithiumUpregulatesTargets(t *testing.T) {
//	    r := simulation.NewRunner(t)
//	    result := r.Run(simulation.Scenario{
//	        Name:  "lithium-upregulation",
//	        Seed:  42,
//	        Drugs: []string{"lithium"},
//	        Questions: []simulation.Question{
//	            {Graph: "lithium", Text: "Show me proteins that are upregulated"},
//	        },
//	    })
//	    simulation.AssertConfidence(t, result, 0, 0.8)
//	}
package simulation
