package config

import (
	"strconv"
	"strings"
)

// Resolve looks up a dotted path in root.
//
// Each segment is a key when the current node is a [Map]; a missing key
// fails the whole lookup. When the current node is a [Seq] the segment is
// parsed as a non-negative index and the element is returned directly,
// without evaluating it and without walking any remaining segments. Any
// other node fails the lookup.
//
// When the walk ends on a map entry, a [Leaf] is evaluated (samplers are
// invoked, literals returned) and maps or sequences are returned as-is.
// The second result is false when the path does not resolve.
func Resolve(root Node, path string) (any, bool) {
	n, indexed, ok := walk(root, path)
	if !ok {
		return nil, false
	}
	if indexed {
		return n, true
	}
	return Get(n), true
}

// Lookup walks path like [Resolve] but never evaluates the node it lands
// on, so callers can tell samplers from literals.
func Lookup(root Node, path string) (Node, bool) {
	n, _, ok := walk(root, path)
	return n, ok
}

// walk reports the node at path and whether the walk stopped early on a
// sequence index.
func walk(root Node, path string) (Node, bool, bool) {
	cur := root
	for _, seg := range strings.Split(path, ".") {
		switch n := cur.(type) {
		case Map:
			next, ok := n[seg]
			if !ok {
				return nil, false, false
			}
			cur = next
		case Seq:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(n) {
				return nil, false, false
			}
			return n[i], true, true
		default:
			return nil, false, false
		}
	}
	return cur, false, true
}
