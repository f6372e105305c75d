// Package graph is the in-memory model of a generated graph and its DOT
// serialization.
//
// # Arenas
//
// A [Graph] owns its nodes and edges in two ordered slices. Nodes are
// addressed by [NodeID], their index in the node arena, and edges store the
// IDs of their endpoints rather than node pointers. Node names are unique;
// [Graph.AddNode] rejects duplicates.
//
// Edges are undirected for output purposes but keep the order they were
// created in (From is the node that asked for the link). Parallel edges
// between the same pair are allowed and kept.
//
// # Attributes
//
// Every node, every edge and the graph itself carry [Attrs], a flat
// string-to-string map emitted verbatim as Graphviz attributes. The graph
// holds three of them: graph-level attributes and the defaults for all
// nodes and all edges.
//
// # DOT Output
//
// [Graph.DOT] produces an undirected Graphviz document:
//
//	graph G {
//	  overlap="false";
//	  node [style="filled"];
//	  edge [penwidth="0.5"];
//	  g0_n0 [color="#3c1a5f", fillcolor="#8e4cd3", label=""];
//	  g0_n1 [color="#431d69", fillcolor="#9653de", label=""];
//	  g0_n0 -- g0_n1 [color="#924fd8"];
//	}
//
// Attribute keys are sorted, and nodes and edges appear in arena order, so
// the same graph always serializes to the same text.
//
// # Concurrency
//
// A Graph is built by one goroutine and then only read. It is not safe for
// concurrent mutation.
package graph
