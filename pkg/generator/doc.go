// Package generator builds random clustered graphs from a configuration tree.
//
// A run walks four phases in order, each finishing before the next starts:
//
//  1. Nodes. Every entry of "groups" becomes a group. number_of_nodes is
//     read once per group; each node gets a fill color derived from the
//     group's basecolor with a per-node brightness_offset applied in HSV
//     space, a border color 0.4 darker than the fill, an empty label and,
//     when node_diameter is configured, a width and height.
//  2. Intra-group links. Every node draws intralinks_per_node and links to
//     that many random other nodes of its own group.
//  3. Inter-group links. Each group draws nodes_with_extralinks and picks
//     that many random nodes (with replacement). Each picked node draws
//     extralinks_per_node and links to random nodes of random other groups.
//  4. Assembly. The graphviz.graph, graphviz.node and graphviz.edge tables
//     become the graph's default attribute blocks.
//
// Per-group options are read from groups[i] first and fall back to the
// shared "group" table. Edge colors come from edge.color: a hex color,
// "average" to blend both endpoints' fill colors, or unset for black.
//
// When no valid "other" endpoint exists (a single-node group, a single
// group) the link is skipped and logged at debug level. Parallel edges are
// kept. Counts below zero create nothing.
//
// All randomness flows through the [rand.Rand] handed to [New]; bind the
// configuration's samplers to the same source and a fixed seed reproduces
// the graph exactly.
//
//	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
//	root, _ := config.Load("graph.toml", rng)
//	res, err := generator.New(rng).Generate(ctx, root)
//	fmt.Print(res.Graph.DOT())
package generator
