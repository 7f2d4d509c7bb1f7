package store

import (
	"context"
	"testing"

	"github.com/seiler-lab/biograph/internal/config"
	"github.com/seiler-lab/biograph/internal/generator"
	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

func newTestStore(t *testing.T) *SQLiteGraphStore {
	t.Helper()
	s, err := NewSQLiteGraphStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewSQLiteGraphStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testGraph(t *testing.T) models.PathwayData {
	t.Helper()
	gen := generator.NewSeeded(taxonomy.Default(), config.Default().Generation, 42, nil)
	return gen.Generate()
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	graph := testGraph(t)

	info, err := s.SaveGraph(ctx, "baseline", "", graph)
	if err != nil {
		t.Fatalf("SaveGraph: %v", err)
	}
	if info.NodeCount != len(graph.Nodes) || info.LinkCount != len(graph.Links) {
		t.Errorf("info counts %d/%d, want %d/%d",
			info.NodeCount, info.LinkCount, len(graph.Nodes), len(graph.Links))
	}

	loaded, loadedInfo, err := s.LoadGraph(ctx, "baseline")
	if err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}
	if loadedInfo.ID != info.ID {
		t.Errorf("loaded snapshot id %s, want %s", loadedInfo.ID, info.ID)
	}
	if len(loaded.Nodes) != len(graph.Nodes) || len(loaded.Links) != len(graph.Links) {
		t.Fatalf("loaded %d nodes %d links, want %d/%d",
			len(loaded.Nodes), len(loaded.Links), len(graph.Nodes), len(graph.Links))
	}
	if loaded.Fingerprint() != graph.Fingerprint() {
		t.Error("round trip changed node identities")
	}
	if len(loaded.Pathways) != len(graph.Pathways) || len(loaded.Categories) != len(graph.Categories) {
		t.Error("round trip lost pathway or category lists")
	}

	byID := loaded.NodeIndex()
	for _, want := range graph.Nodes {
		i, ok := byID[want.ID]
		if !ok {
			t.Fatalf("node %s missing after round trip", want.ID)
		}
		got := loaded.Nodes[i]
		if got.Expression != want.Expression || got.Confidence != want.Confidence ||
			got.FoldChange != want.FoldChange || len(got.Categories) != len(want.Categories) {
			t.Errorf("node %s changed in round trip: %+v vs %+v", want.ID, got, want)
		}
	}
}

func TestSaveReplacesByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	graph := testGraph(t)

	first, err := s.SaveGraph(ctx, "snap", "", graph)
	if err != nil {
		t.Fatalf("SaveGraph: %v", err)
	}
	second, err := s.SaveGraph(ctx, "snap", "lithium", graph)
	if err != nil {
		t.Fatalf("SaveGraph (replace): %v", err)
	}
	if first.ID == second.ID {
		t.Error("replacement kept the old snapshot id")
	}

	infos, err := s.ListGraphs(ctx)
	if err != nil {
		t.Fatalf("ListGraphs: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("have %d snapshots after replace, want 1", len(infos))
	}
	if infos[0].Drug != "lithium" {
		t.Errorf("replacement kept drug %q, want lithium", infos[0].Drug)
	}
}

func TestLoadUnknownName(t *testing.T) {
	s := newTestStore(t)
	if _, _, err := s.LoadGraph(context.Background(), "absent"); err == nil {
		t.Error("LoadGraph succeeded for an absent snapshot")
	}
}

func TestDeleteGraph(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SaveGraph(ctx, "snap", "", testGraph(t)); err != nil {
		t.Fatalf("SaveGraph: %v", err)
	}
	if err := s.DeleteGraph(ctx, "snap"); err != nil {
		t.Fatalf("DeleteGraph: %v", err)
	}
	if _, _, err := s.LoadGraph(ctx, "snap"); err == nil {
		t.Error("snapshot loadable after delete")
	}
	if err := s.DeleteGraph(ctx, "snap"); err == nil {
		t.Error("deleting an absent snapshot did not fail")
	}
}

func TestEmptyNameRejected(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.SaveGraph(context.Background(), "", "", testGraph(t)); err == nil {
		t.Error("SaveGraph accepted an empty name")
	}
}

func TestSchemaSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewSQLiteGraphStore(dir)
	if err != nil {
		t.Fatalf("NewSQLiteGraphStore: %v", err)
	}
	if _, err := s.SaveGraph(ctx, "snap", "", testGraph(t)); err != nil {
		t.Fatalf("SaveGraph: %v", err)
	}
	s.Close()

	reopened, err := NewSQLiteGraphStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	loaded, _, err := reopened.LoadGraph(ctx, "snap")
	if err != nil {
		t.Fatalf("LoadGraph after reopen: %v", err)
	}
	if len(loaded.Nodes) == 0 {
		t.Error("snapshot empty after reopen")
	}
}
