package graph

import (
	"strings"
	"testing"
)

func buildSample(t *testing.T) *Graph {
	t.Helper()
	g := New()
	g.GraphAttrs.Merge(map[string]string{"overlap": "false", "bgcolor": "#3C5F9C"})
	g.NodeAttrs.Merge(map[string]string{"style": "filled"})
	g.EdgeAttrs.Merge(map[string]string{"penwidth": "0.5"})

	a, _ := g.AddNode("g0_n0")
	b, _ := g.AddNode("g0_n1")
	g.Node(a).Attrs.Merge(map[string]string{AttrLabel: "", AttrColor: "#4c2870", AttrFillColor: "#8e4cd3"})
	g.Node(b).Attrs.Merge(map[string]string{AttrLabel: "", AttrColor: "#4c2870", AttrFillColor: "#8e4cd3", AttrWidth: "1.5", AttrHeight: "1.5"})
	if err := g.AddEdge(a, b, Attrs{AttrColor: "#8e4cd3"}); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDOT(t *testing.T) {
	got := buildSample(t).DOT()

	want := `graph G {
  bgcolor="#3C5F9C";
  overlap="false";
  node [style="filled"];
  edge [penwidth="0.5"];
  g0_n0 [color="#4c2870", fillcolor="#8e4cd3", label=""];
  g0_n1 [color="#4c2870", fillcolor="#8e4cd3", height="1.5", label="", width="1.5"];
  g0_n0 -- g0_n1 [color="#8e4cd3"];
}
`
	if got != want {
		t.Errorf("DOT() =\n%s\nwant\n%s", got, want)
	}
}

func TestDOT_Deterministic(t *testing.T) {
	g := buildSample(t)
	first := g.DOT()
	for range 20 {
		if g.DOT() != first {
			t.Fatal("DOT() output changed between calls")
		}
	}
}

func TestDOT_Empty(t *testing.T) {
	got := New().DOT()
	if got != "graph G {\n}\n" {
		t.Errorf("DOT() of empty graph = %q", got)
	}
}

func TestDOT_OmitsEmptyDefaults(t *testing.T) {
	g := New()
	g.AddNode("a")
	dot := g.DOT()

	if strings.Contains(dot, "node [") || strings.Contains(dot, "edge [") {
		t.Errorf("DOT() emitted empty default blocks:\n%s", dot)
	}
	if !strings.Contains(dot, `a [fillcolor="#ffffff"];`) {
		t.Errorf("DOT() missing default node statement:\n%s", dot)
	}
}

func TestDOT_EdgeWithoutAttrs(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	g.AddEdge(a, b, nil)

	if !strings.Contains(g.DOT(), "  a -- b;\n") {
		t.Errorf("DOT() edge without attrs:\n%s", g.DOT())
	}
}

func TestQuoteID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"g0_n0", "g0_n0"},
		{"G", "G"},
		{"_x", "_x"},
		{"0abc", `"0abc"`},
		{"has space", `"has space"`},
		{"with-dash", `"with-dash"`},
		{"node", `"node"`},
		{"Graph", `"Graph"`},
		{`say "hi"`, `"say \"hi\""`},
	}

	for _, tt := range tests {
		if got := quoteID(tt.in); got != tt.want {
			t.Errorf("quoteID(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDOT_EscapesValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"quotes", `x "y"`, `label="x \"y\""`},
		{"node name escape", `\N`, `label="\N"`},
		{"newline escape", `a\nb`, `label="a\nb"`},
		{"left justify", `a\lb\l`, `label="a\lb\l"`},
		{"already escaped quote", `x \"y\"`, `label="x \"y\""`},
		{"escaped backslash", `a\\b`, `label="a\\b"`},
		{"trailing backslash", `a\`, `label="a\\"`},
		{"tab", "a\tb", "label=\"a\tb\""},
		{"unicode", "größe", `label="größe"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			id, _ := g.AddNode("a")
			g.Node(id).Attrs[AttrLabel] = tt.value
			if got := g.DOT(); !strings.Contains(got, tt.want) {
				t.Errorf("DOT() missing %s:\n%s", tt.want, got)
			}
		})
	}
}

func TestDOT_DefaultBlocksPassThrough(t *testing.T) {
	g := New()
	g.GraphAttrs["label"] = `\G`
	g.NodeAttrs["label"] = `\N`
	g.EdgeAttrs["label"] = `\T--\H`
	_, _ = g.AddNode("g0_n0")

	got := g.DOT()
	for _, want := range []string{
		`  label="\G";`,
		`  node [label="\N"];`,
		`  edge [label="\T--\H"];`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DOT() missing %s:\n%s", want, got)
		}
	}
}
