// Package config holds the generator's configuration tree and the dotted-path
// accessor over it.
//
// # Tree
//
// A configuration is a small recursive sum type: a [Map] of named children,
// a [Seq] of ordered children, or a [Leaf]. A leaf carries a [Value], which
// is either a [Literal] returned as-is or a [Sampler] invoked on every
// access. Two reads of the same sampler path may therefore disagree; that
// is how per-node random draws (a Gaussian brightness jitter, say) are
// expressed.
//
// # Paths
//
// [Resolve] walks a dotted path such as "groups.0" or "group.number_of_nodes".
// Map segments are keys. A Seq segment is an index, and indexing into a
// sequence is terminal: the element is returned directly and any trailing
// segments are ignored.
//
// # Files
//
// [Load] reads TOML or YAML. Any table with a "dist" key becomes a sampler
// bound to the caller's random source:
//
//	[group]
//	number_of_nodes = 30
//	intralinks_per_node = { dist = "gauss", mean = 15, stddev = 3, round = true, floor = 1 }
//
// See [Example] for a complete file.
package config
