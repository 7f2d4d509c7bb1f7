// Package query maps free-text questions to filtered node subsets,
// deterministically and without any external model service. Fuzzy matching
// runs against in-memory bleve indexes built once per engine instance from
// a fixed graph snapshot.
package query

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/seiler-lab/biograph/internal/config"
	"github.com/seiler-lab/biograph/internal/constants"
	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

// Engine parses free-text questions against a specific graph snapshot.
// The fuzzy-match indexes are built once from that snapshot and reused
// across queries; running against a different graph fails fast rather
// than silently returning stale matches.
type Engine struct {
	cfg        config.QueryConfig
	timepoints []string
	pathways   []string
	categories []string

	pathwayIdx  bleve.Index
	categoryIdx bleve.Index

	// genes maps lower-cased gene symbols (node names before the
	// time-point suffix) to their canonical spelling.
	genes map[string]string

	fingerprint string
}

// NewEngine builds the fuzzy-match indexes for the given graph. The
// taxonomy supplies time-point ordering for the early/late synonyms.
func NewEngine(graph models.PathwayData, tables *taxonomy.Tables, cfg config.QueryConfig) (*Engine, error) {
	e := &Engine{
		cfg:         cfg,
		timepoints:  append([]string(nil), tables.Timepoints...),
		pathways:    append([]string(nil), graph.Pathways...),
		categories:  append([]string(nil), graph.Categories...),
		genes:       make(map[string]string),
		fingerprint: graph.Fingerprint(),
	}

	var err error
	e.pathwayIdx, err = nameIndex(graph.Pathways)
	if err != nil {
		return nil, fmt.Errorf("query: build pathway index: %w", err)
	}
	e.categoryIdx, err = nameIndex(graph.Categories)
	if err != nil {
		e.pathwayIdx.Close()
		return nil, fmt.Errorf("query: build category index: %w", err)
	}

	for _, n := range graph.Nodes {
		symbol := n.Name
		if i := strings.IndexByte(symbol, '_'); i > 0 {
			symbol = symbol[:i]
		}
		if symbol != "" {
			e.genes[strings.ToLower(symbol)] = symbol
		}
	}

	return e, nil
}

// nameIndex builds an in-memory bleve index over a flat name list,
// using the name itself as document ID.
func nameIndex(names []string) (bleve.Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if err := idx.Index(name, map[string]string{"name": name}); err != nil {
			idx.Close()
			return nil, err
		}
	}
	return idx, nil
}

// Close releases the engine's indexes.
func (e *Engine) Close() error {
	var first error
	if err := e.pathwayIdx.Close(); err != nil {
		first = err
	}
	if err := e.categoryIdx.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

// Run parses the question and applies the extracted filters to the node
// list. The nodes must belong to the graph snapshot the engine was built
// from (perturbation preserves identities, so perturbed node lists of the
// same baseline are accepted).
func (e *Engine) Run(text string, nodes []models.BiologicalNode) (models.QueryResult, error) {
	if got := models.NodesFingerprint(nodes); got != e.fingerprint {
		return models.QueryResult{}, fmt.Errorf("query: node list does not match the graph this engine was built from (stale index)")
	}

	in := e.parse(text)
	return e.apply(in, nodes), nil
}

// ParseQuery is the one-shot convenience over a throwaway engine: it
// builds indexes from the supplied node list and taxonomy, runs the
// question, and releases the indexes.
func ParseQuery(text string, nodes []models.BiologicalNode, tables *taxonomy.Tables, cfg config.QueryConfig) (models.QueryResult, error) {
	graph := models.PathwayData{
		Nodes:      nodes,
		Pathways:   tables.PathwayNames(),
		Categories: tables.CategoryNames(),
	}
	e, err := NewEngine(graph, tables, cfg)
	if err != nil {
		return models.QueryResult{}, err
	}
	defer e.Close()
	return e.Run(text, nodes)
}

// fuzzyMatch runs a fuzzy match query against a name index and returns up
// to limit document IDs. Bleve scores are unbounded, so minScore is applied
// relative to the best hit; this drops names that only share a common word
// with the query (e.g. "Signaling") while keeping genuinely close matches.
func fuzzyMatch(idx bleve.Index, input string, limit int, minScore float64) ([]string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	q := bleve.NewMatchQuery(input)
	q.SetFuzziness(constants.FuzzyEditDistance)
	req := bleve.NewSearchRequest(q)
	req.Size = limit

	res, err := idx.Search(req)
	if err != nil {
		return nil, err
	}
	if len(res.Hits) == 0 {
		return nil, nil
	}

	top := res.Hits[0].Score
	var out []string
	for _, hit := range res.Hits {
		if top > 0 && hit.Score/top < minScore {
			continue
		}
		out = append(out, hit.ID)
	}
	return out, nil
}
