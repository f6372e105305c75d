package config

import (
	"fmt"
	"maps"
	"slices"
)

// Node is one position in a configuration tree: a [Map], a [Seq] or a [Leaf].
type Node interface {
	node()
}

// Map is a mapping from key to child node.
type Map map[string]Node

// Seq is an ordered list of child nodes.
type Seq []Node

// Leaf is a terminal node holding a [Value].
type Leaf struct {
	Value Value
}

func (Map) node()  {}
func (Seq) node()  {}
func (Leaf) node() {}

// Keys returns the map's keys in sorted order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Value is the payload of a [Leaf]: a [Literal] or a [Sampler].
type Value interface {
	get() any
}

// Literal is a fixed value.
type Literal struct {
	V any
}

func (l Literal) get() any { return l.V }

// Sampler produces a fresh value on every access.
type Sampler func() any

func (s Sampler) get() any { return s() }

// Lit wraps v in a literal leaf.
func Lit(v any) Leaf {
	return Leaf{Value: Literal{V: v}}
}

// Sample wraps fn in a sampler leaf.
func Sample(fn func() any) Leaf {
	return Leaf{Value: Sampler(fn)}
}

// IsSampler reports whether n is a leaf that draws a new value per access.
func IsSampler(n Node) bool {
	leaf, ok := n.(Leaf)
	if !ok {
		return false
	}
	_, ok = leaf.Value.(Sampler)
	return ok
}

// Get evaluates a leaf, invoking it if it is a sampler. Maps and sequences
// are returned unchanged.
func Get(n Node) any {
	if leaf, ok := n.(Leaf); ok {
		if leaf.Value == nil {
			return nil
		}
		return leaf.Value.get()
	}
	return n
}

// Dump renders the tree shape for debugging. Samplers print as "<sampler>".
func Dump(n Node) string {
	switch v := n.(type) {
	case Map:
		s := "{"
		for i, k := range v.Keys() {
			if i > 0 {
				s += ", "
			}
			s += k + ": " + Dump(v[k])
		}
		return s + "}"
	case Seq:
		s := "["
		for i, e := range v {
			if i > 0 {
				s += ", "
			}
			s += Dump(e)
		}
		return s + "]"
	case Leaf:
		if IsSampler(v) {
			return "<sampler>"
		}
		return fmt.Sprintf("%v", Get(v))
	default:
		return "<nil>"
	}
}
