// Package pkg provides the core libraries for grafo random graph generation.
//
// # Overview
//
// grafo builds random clustered graphs from a declarative configuration and
// writes them as Graphviz documents. Nodes are organized into groups; each
// group has a base color that every member's fill color jitters around, dense
// links inside the group and sparse links to other groups. The pkg directory
// is organized into four main areas:
//
//  1. [config] - Configuration trees with per-access sampled values
//  2. [generator] - Domain logic (nodes, intragroup and intergroup links)
//  3. [graph] and [io] - Graph model, DOT and JSON serialization
//  4. [pipeline] - Orchestration (load → generate → encode)
//
// # Architecture
//
// The typical data flow through grafo:
//
//	TOML / YAML configuration
//	         ↓
//	    [config] package (tree + distribution samplers)
//	         ↓
//	    [generator] package (groups, nodes, links)
//	         ↓
//	    [graph] package (DOT) / [io] package (JSON)
//	         ↓
//	    [render] package (Graphviz: SVG/PNG/JPG, cached)
//
// # Quick Start
//
// Generate a graph and print it as DOT:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/grafo/pkg/config"
//	    "github.com/matzehuels/grafo/pkg/generator"
//	    "github.com/matzehuels/grafo/pkg/pipeline"
//	)
//
//	// 1. One random source for samplers and generator
//	rng := pipeline.NewRand(42)
//
//	// 2. Load the configuration
//	root, _ := config.Load("graph.toml", rng)
//
//	// 3. Generate
//	res, _ := generator.New(rng).Generate(context.Background(), root)
//
//	// 4. Serialize
//	fmt.Print(res.Graph.DOT())
//
// # Main Packages
//
// [color] - RGB hex and HSV conversion, brightness adjustment and RGB
// averaging of node colors.
//
// [config] - Configuration trees. Any leaf may be a distribution table
// (gauss, uniform, randint, choice) that draws a new value on every access.
//
// [generator] - The four generation phases: nodes, intragroup links,
// intergroup links and Graphviz attribute assembly.
//
// [graph] - Undirected multigraph with ordered nodes and edges, DOT output.
//
// [io] - JSON export of a generated graph.
//
// [render] - Graphviz rendering through the embedded library or an
// executable on PATH, with an optional content-addressed cache.
//
// [cache] - Cache backends for rendered images: local files, Redis, or none.
//
// [pipeline] - Complete load → generate → encode flow used by the CLI.
//
// [observability] - Hooks for generation, rendering and cache events.
//
// [errors] - Structured errors with machine-readable codes.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/generator/...          # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [color]: https://pkg.go.dev/github.com/matzehuels/grafo/pkg/color
// [config]: https://pkg.go.dev/github.com/matzehuels/grafo/pkg/config
// [generator]: https://pkg.go.dev/github.com/matzehuels/grafo/pkg/generator
// [graph]: https://pkg.go.dev/github.com/matzehuels/grafo/pkg/graph
// [io]: https://pkg.go.dev/github.com/matzehuels/grafo/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/grafo/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/grafo/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/grafo/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/grafo/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/grafo/pkg/errors
package pkg
