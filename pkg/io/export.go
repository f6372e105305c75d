package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/grafo/pkg/graph"
)

type document struct {
	Attributes attributes `json:"attributes"`
	Nodes      []node     `json:"nodes"`
	Edges      []edge     `json:"edges"`
}

type attributes struct {
	Graph graph.Attrs `json:"graph"`
	Node  graph.Attrs `json:"node"`
	Edge  graph.Attrs `json:"edge"`
}

type node struct {
	Name  string      `json:"name"`
	Attrs graph.Attrs `json:"attrs"`
}

type edge struct {
	From  string      `json:"from"`
	To    string      `json:"to"`
	Attrs graph.Attrs `json:"attrs"`
}

// WriteJSON encodes g as indented JSON and writes it to w.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	out := document{
		Attributes: attributes{
			Graph: g.GraphAttrs.Clone(),
			Node:  g.NodeAttrs.Clone(),
			Edge:  g.EdgeAttrs.Clone(),
		},
		Nodes: make([]node, g.NodeCount()),
		Edges: make([]edge, g.EdgeCount()),
	}

	for i, n := range g.Nodes() {
		out.Nodes[i] = node{Name: n.Name, Attrs: n.Attrs.Clone()}
	}
	for i, e := range g.Edges() {
		out.Edges[i] = edge{
			From:  g.Node(e.From).Name,
			To:    g.Node(e.To).Name,
			Attrs: e.Attrs.Clone(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
