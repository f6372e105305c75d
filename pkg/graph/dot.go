package graph

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// bareIDRe matches identifiers DOT accepts without quotes.
var bareIDRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// dotKeywords must be quoted when used as node names.
var dotKeywords = map[string]bool{
	"node": true, "edge": true, "graph": true, "digraph": true, "subgraph": true, "strict": true,
}

// DOT serializes g as an undirected Graphviz document: graph attributes,
// the default node and edge blocks, one statement per node, one per edge.
// Empty default blocks are omitted.
func (g *Graph) DOT() string {
	var buf bytes.Buffer
	_ = g.WriteDOT(&buf)
	return buf.String()
}

// WriteDOT writes the same document as [Graph.DOT] to w.
func (g *Graph) WriteDOT(w io.Writer) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %s {\n", quoteID(g.Name))

	for _, k := range g.GraphAttrs.Keys() {
		fmt.Fprintf(&buf, "  %s=%s;\n", quoteID(k), quoteValue(g.GraphAttrs[k]))
	}
	if len(g.NodeAttrs) > 0 {
		fmt.Fprintf(&buf, "  node [%s];\n", fmtAttrs(g.NodeAttrs))
	}
	if len(g.EdgeAttrs) > 0 {
		fmt.Fprintf(&buf, "  edge [%s];\n", fmtAttrs(g.EdgeAttrs))
	}

	for _, n := range g.nodes {
		fmt.Fprintf(&buf, "  %s [%s];\n", quoteID(n.Name), fmtAttrs(n.Attrs))
	}
	for _, e := range g.edges {
		from, to := g.nodes[e.From].Name, g.nodes[e.To].Name
		if len(e.Attrs) == 0 {
			fmt.Fprintf(&buf, "  %s -- %s;\n", quoteID(from), quoteID(to))
			continue
		}
		fmt.Fprintf(&buf, "  %s -- %s [%s];\n", quoteID(from), quoteID(to), fmtAttrs(e.Attrs))
	}

	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func fmtAttrs(a Attrs) string {
	parts := make([]string, 0, len(a))
	for _, k := range a.Keys() {
		parts = append(parts, quoteID(k)+"="+quoteValue(a[k]))
	}
	return strings.Join(parts, ", ")
}

func quoteID(s string) string {
	if bareIDRe.MatchString(s) && !dotKeywords[strings.ToLower(s)] {
		return s
	}
	return quoteValue(s)
}

// quoteValue wraps s in double quotes for DOT. Only unescaped quotes are
// escaped; every other backslash sequence (\N, \G, \n, \l) reaches Graphviz
// untouched. A trailing odd backslash is doubled so it cannot swallow the
// closing quote.
func quoteValue(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	run := 0 // backslashes immediately before the current byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			run++
		case '"':
			if run%2 == 0 {
				b.WriteByte('\\')
			}
			run = 0
		default:
			run = 0
		}
		b.WriteByte(c)
	}
	if run%2 == 1 {
		b.WriteByte('\\')
	}
	b.WriteByte('"')
	return b.String()
}
