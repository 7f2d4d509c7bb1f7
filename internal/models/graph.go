// Package models defines the core data types of the biograph engine:
// nodes, links, the graph container, drug treatments, and query results.
package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// PathwayData is the graph container passed between the generator, the
// perturbation engine, the query engine, and external consumers.
type PathwayData struct {
	Nodes []BiologicalNode `json:"nodes" yaml:"nodes"`
	Links []BiologicalLink `json:"links" yaml:"links"`

	// Pathways is the master sub-pathway name list.
	Pathways []string `json:"pathways" yaml:"pathways"`

	// Categories is the master broad-category name list.
	Categories []string `json:"categories" yaml:"categories"`
}

// NodeIndex returns a map from node ID to the node's position in Nodes.
func (p PathwayData) NodeIndex() map[string]int {
	idx := make(map[string]int, len(p.Nodes))
	for i, n := range p.Nodes {
		idx[n.ID] = i
	}
	return idx
}

// NodeByID returns the node with the given ID, or nil if absent.
func (p PathwayData) NodeByID(id string) *BiologicalNode {
	for i := range p.Nodes {
		if p.Nodes[i].ID == id {
			return &p.Nodes[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the graph. Perturbation operates on a clone
// so the baseline is never mutated.
func (p PathwayData) Clone() PathwayData {
	out := PathwayData{
		Nodes:      make([]BiologicalNode, len(p.Nodes)),
		Links:      make([]BiologicalLink, len(p.Links)),
		Pathways:   make([]string, len(p.Pathways)),
		Categories: make([]string, len(p.Categories)),
	}
	for i, n := range p.Nodes {
		n.Categories = append([]string(nil), n.Categories...)
		out.Nodes[i] = n
	}
	copy(out.Links, p.Links)
	copy(out.Pathways, p.Pathways)
	copy(out.Categories, p.Categories)
	return out
}

// Fingerprint returns a stable hash over node identities, classification,
// and baseline expression. The query engine records the fingerprint of the
// graph its indexes were built from and refuses to run against a graph with
// a different one. Perturbation preserves identities and baselines, so a
// baseline and its perturbed graphs share a fingerprint; two generation runs
// do not, since their baseline draws differ.
func (p PathwayData) Fingerprint() string {
	return NodesFingerprint(p.Nodes)
}

// NodesFingerprint computes the identity hash for a bare node list.
func NodesFingerprint(nodes []BiologicalNode) string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, fmt.Sprintf("%s/%s/%s/%s/%g", n.ID, n.Omics, n.Pathway, n.Timepoint, n.BaselineExpression))
	}
	sort.Strings(ids)

	h := sha256.New()
	for _, id := range ids {
		h.Write([]byte(id))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
