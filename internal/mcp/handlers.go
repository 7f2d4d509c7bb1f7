package mcp

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seiler-lab/biograph/internal/generator"
	"github.com/seiler-lab/biograph/internal/perturb"
	"github.com/seiler-lab/biograph/internal/query"
)

const defaultQueryLimit = 25

func (s *Server) handleGenerate(ctx context.Context, req *sdk.CallToolRequest, args GenerateInput) (*sdk.CallToolResult, GenerateOutput, error) {
	if args.Name == "" {
		return nil, GenerateOutput{}, fmt.Errorf("name is required")
	}

	seed := args.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := generator.NewSeeded(s.tables, s.cfg.Generation, seed, nil)
	graph := gen.Generate()

	if _, err := s.store.SaveGraph(ctx, args.Name, "", graph); err != nil {
		return nil, GenerateOutput{}, fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil, GenerateOutput{
		Name:       args.Name,
		NodeCount:  len(graph.Nodes),
		LinkCount:  len(graph.Links),
		Pathways:   graph.Pathways,
		Categories: graph.Categories,
	}, nil
}

func (s *Server) handlePerturb(ctx context.Context, req *sdk.CallToolRequest, args PerturbInput) (*sdk.CallToolResult, PerturbOutput, error) {
	if args.Graph == "" || args.Drug == "" {
		return nil, PerturbOutput{}, fmt.Errorf("graph and drug are required")
	}

	drug, err := s.tables.DrugByID(args.Drug)
	if err != nil {
		return nil, PerturbOutput{}, err
	}

	baseline, _, err := s.store.LoadGraph(ctx, args.Graph)
	if err != nil {
		return nil, PerturbOutput{}, err
	}

	seed := args.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng := perturb.New(s.tables, s.cfg.Perturbation, rand.New(rand.NewSource(seed)), nil, nil)
	perturbed, err := eng.Apply(baseline, drug)
	if err != nil {
		return nil, PerturbOutput{}, fmt.Errorf("failed to apply perturbation: %w", err)
	}

	saveAs := args.SaveAs
	if saveAs == "" {
		saveAs = args.Graph + "-" + drug.ID
	}

	if _, err := s.store.SaveGraph(ctx, saveAs, drug.ID, perturbed); err != nil {
		return nil, PerturbOutput{}, fmt.Errorf("failed to save snapshot: %w", err)
	}

	targets := 0
	for _, n := range perturbed.Nodes {
		if n.IsPerturbationTarget {
			targets++
		}
	}

	return nil, PerturbOutput{
		Name:        saveAs,
		Drug:        drug.ID,
		Mechanism:   drug.Mechanism,
		TargetCount: targets,
		NodeCount:   len(perturbed.Nodes),
	}, nil
}

func (s *Server) handleQuery(ctx context.Context, req *sdk.CallToolRequest, args QueryInput) (*sdk.CallToolResult, QueryOutput, error) {
	if args.Graph == "" || args.Question == "" {
		return nil, QueryOutput{}, fmt.Errorf("graph and question are required")
	}

	graph, _, err := s.store.LoadGraph(ctx, args.Graph)
	if err != nil {
		return nil, QueryOutput{}, err
	}

	result, err := query.ParseQuery(args.Question, graph.Nodes, s.tables, s.cfg.Query)
	if err != nil {
		return nil, QueryOutput{}, fmt.Errorf("failed to run query: %w", err)
	}

	limit := args.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	return nil, QueryOutput{
		Explanation: result.Explanation,
		Confidence:  result.Confidence,
		Intents:     result.Intents,
		Total:       len(result.Nodes),
		Nodes:       summarizeNodes(result.Nodes, limit),
	}, nil
}

func (s *Server) handleList(ctx context.Context, req *sdk.CallToolRequest, args ListInput) (*sdk.CallToolResult, ListOutput, error) {
	infos, err := s.store.ListGraphs(ctx)
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("failed to list snapshots: %w", err)
	}

	items := make([]GraphListItem, 0, len(infos))
	for _, info := range infos {
		items = append(items, GraphListItem{
			Name:      info.Name,
			Drug:      info.Drug,
			NodeCount: info.NodeCount,
			LinkCount: info.LinkCount,
			CreatedAt: info.CreatedAt,
		})
	}

	return nil, ListOutput{Graphs: items, Count: len(items)}, nil
}
