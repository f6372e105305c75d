package graph

import (
	"context"
	"errors"
	"io"

	"github.com/matzehuels/grafo/pkg/color"
)

var (
	// ErrInvalidNodeName is returned by [Graph.AddNode] when the name is empty.
	ErrInvalidNodeName = errors.New("node name must not be empty")

	// ErrDuplicateNode is returned by [Graph.AddNode] when a node with the
	// same name already exists.
	ErrDuplicateNode = errors.New("duplicate node name")

	// ErrUnknownNode is returned by [Graph.AddEdge] when an endpoint ID does
	// not address a node of this graph.
	ErrUnknownNode = errors.New("unknown node")
)

// DefaultName is the identifier written after the "graph" keyword.
const DefaultName = "G"

// Graph owns the nodes and edges of one generation run.
//
// The zero value is not usable; call [New].
type Graph struct {
	Name string

	// GraphAttrs are emitted as top-level assignments.
	GraphAttrs Attrs
	// NodeAttrs are emitted as the default node block.
	NodeAttrs Attrs
	// EdgeAttrs are emitted as the default edge block.
	EdgeAttrs Attrs

	nodes  []Node
	edges  []Edge
	byName map[string]NodeID
	out    map[NodeID][]int // node -> indices into edges it created
}

// New creates an empty graph named [DefaultName].
func New() *Graph {
	return &Graph{
		Name:       DefaultName,
		GraphAttrs: Attrs{},
		NodeAttrs:  Attrs{},
		EdgeAttrs:  Attrs{},
		byName:     make(map[string]NodeID),
		out:        make(map[NodeID][]int),
	}
}

// AddNode appends a node named name and returns its ID. New nodes start
// with a white fill color.
func (g *Graph) AddNode(name string) (NodeID, error) {
	if name == "" {
		return 0, ErrInvalidNodeName
	}
	if _, exists := g.byName[name]; exists {
		return 0, ErrDuplicateNode
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		ID:    id,
		Name:  name,
		Attrs: Attrs{AttrFillColor: color.White},
	})
	g.byName[name] = id
	return id, nil
}

// Node returns the node with the given ID, or nil if there is none. The
// returned pointer is valid until the next AddNode call and is meant for
// populating attributes right after creation.
func (g *Graph) Node(id NodeID) *Node {
	if !g.has(id) {
		return nil
	}
	return &g.nodes[id]
}

// NodeByName looks a node up by name.
func (g *Graph) NodeByName(name string) (*Node, bool) {
	id, ok := g.byName[name]
	if !ok {
		return nil, false
	}
	return &g.nodes[id], true
}

// AddEdge appends an edge from one existing node to another. Self-loops and
// parallel edges are accepted; the generator never asks for self-loops.
func (g *Graph) AddEdge(from, to NodeID, attrs Attrs) error {
	if !g.has(from) || !g.has(to) {
		return ErrUnknownNode
	}
	if attrs == nil {
		attrs = Attrs{}
	}
	g.out[from] = append(g.out[from], len(g.edges))
	g.edges = append(g.edges, Edge{From: from, To: to, Attrs: attrs})
	return nil
}

// Nodes returns the node arena in creation order. Callers must not modify it.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns the edge arena in creation order. Callers must not modify it.
func (g *Graph) Edges() []Edge { return g.edges }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutEdges returns the edges created with id as their From endpoint.
func (g *Graph) OutEdges(id NodeID) []Edge {
	idx := g.out[id]
	edges := make([]Edge, len(idx))
	for i, e := range idx {
		edges[i] = g.edges[e]
	}
	return edges
}

// Degree returns the number of edges touching id, counting a self-loop twice.
func (g *Graph) Degree(id NodeID) int {
	n := 0
	for _, e := range g.edges {
		if e.From == id {
			n++
		}
		if e.To == id {
			n++
		}
	}
	return n
}

func (g *Graph) has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Renderer turns DOT text into an image in the requested format.
type Renderer interface {
	Render(ctx context.Context, dot string, format string) ([]byte, error)
}

// Render serializes g, hands it to r and writes the resulting image to w.
func (g *Graph) Render(ctx context.Context, r Renderer, format string, w io.Writer) error {
	img, err := r.Render(ctx, g.DOT(), format)
	if err != nil {
		return err
	}
	_, err = w.Write(img)
	return err
}
