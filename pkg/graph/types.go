package graph

import (
	"maps"
	"slices"
)

// NodeID addresses a node in its graph's node arena.
type NodeID int

// Attrs is a flat set of Graphviz attributes.
type Attrs map[string]string

// Keys returns the attribute names in sorted order.
func (a Attrs) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Merge copies every entry of other into a, overwriting existing keys.
func (a Attrs) Merge(other map[string]string) {
	maps.Copy(a, other)
}

// Clone returns an independent copy. The copy of a nil Attrs is empty, not nil.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	maps.Copy(out, a)
	return out
}

// Node is a named vertex with its render attributes.
type Node struct {
	ID    NodeID
	Name  string
	Attrs Attrs
}

// Edge links two nodes by ID.
type Edge struct {
	From  NodeID
	To    NodeID
	Attrs Attrs
}

// Well-known attribute names set by the generator.
const (
	AttrLabel     = "label"
	AttrFillColor = "fillcolor"
	AttrColor     = "color"
	AttrWidth     = "width"
	AttrHeight    = "height"
)
