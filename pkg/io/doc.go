// Package io exports generated graphs as JSON.
//
// The JSON form carries the same information as the DOT document, without
// Graphviz syntax, for tools that want the raw nodes and edges:
//
//	{
//	  "attributes": {
//	    "graph": {"overlap": "false"},
//	    "node": {"style": "filled"},
//	    "edge": {"penwidth": "0.5"}
//	  },
//	  "nodes": [
//	    {"name": "g0_n0", "attrs": {"color": "#4c2870", "fillcolor": "#8e4cd3", "label": ""}},
//	    {"name": "g0_n1", "attrs": {"color": "#4c2870", "fillcolor": "#8e4cd3", "label": ""}}
//	  ],
//	  "edges": [
//	    {"from": "g0_n0", "to": "g0_n1", "attrs": {"color": "#8e4cd3"}}
//	  ]
//	}
//
// Nodes and edges appear in creation order. Edges name their endpoints by
// node name. Attribute maps are encoded with sorted keys, so the output is
// stable for a given graph.
//
// Use [WriteJSON] for any io.Writer and [ExportJSON] for a file path.
// There is no importer: graphs are generated, not read back.
package io
