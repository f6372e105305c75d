package config

import (
	"testing"

	"github.com/matzehuels/grafo/pkg/errors"
)

func counter() (Leaf, *int) {
	n := 0
	return Sample(func() any {
		n++
		return n
	}), &n
}

func TestResolve_Map(t *testing.T) {
	root := Map{
		"group": Map{
			"number_of_nodes": Lit(30),
		},
		"edge": Map{"color": Lit("average")},
	}

	tests := []struct {
		path   string
		want   any
		wantOK bool
	}{
		{"group.number_of_nodes", 30, true},
		{"edge.color", "average", true},
		{"group.missing", nil, false},
		{"missing", nil, false},
		{"edge.color.deeper", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Resolve(root, tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolve_ReturnsSubtree(t *testing.T) {
	graph := Map{"overlap": Lit("false")}
	root := Map{"graphviz": Map{"graph": graph}}

	got, ok := Resolve(root, "graphviz.graph")
	if !ok {
		t.Fatal("Resolve(graphviz.graph) not found")
	}
	m, ok := got.(Map)
	if !ok {
		t.Fatalf("Resolve(graphviz.graph) = %T, want Map", got)
	}
	if Get(m["overlap"]) != "false" {
		t.Errorf("overlap = %v", Get(m["overlap"]))
	}
}

func TestResolve_SequenceIndexIsTerminal(t *testing.T) {
	first := Map{"c": Lit("deep")}
	root := Map{
		"a": Map{
			"b": Seq{first, Map{"c": Lit("other")}},
		},
	}

	got, ok := Resolve(root, "a.b.0.c")
	if !ok {
		t.Fatal("Resolve(a.b.0.c) not found")
	}
	m, ok := got.(Map)
	if !ok {
		t.Fatalf("Resolve(a.b.0.c) = %T, want element 0 itself", got)
	}
	if Get(m["c"]) != "deep" {
		t.Errorf("returned element c = %v, want deep", Get(m["c"]))
	}
}

func TestResolve_SequenceElementNotInvoked(t *testing.T) {
	leaf, calls := counter()
	root := Map{"xs": Seq{leaf}}

	got, ok := Resolve(root, "xs.0")
	if !ok {
		t.Fatal("Resolve(xs.0) not found")
	}
	if _, isLeaf := got.(Leaf); !isLeaf {
		t.Errorf("Resolve(xs.0) = %T, want the raw Leaf", got)
	}
	if *calls != 0 {
		t.Errorf("sampler invoked %d times, want 0", *calls)
	}
}

func TestResolve_BadIndex(t *testing.T) {
	root := Map{"xs": Seq{Lit(1), Lit(2)}}

	for _, path := range []string{"xs.2", "xs.-1", "xs.first", "xs."} {
		if got, ok := Resolve(root, path); ok {
			t.Errorf("Resolve(%q) = %v, want not found", path, got)
		}
	}
}

func TestResolve_SamplerInvokedPerAccess(t *testing.T) {
	leaf, _ := counter()
	root := Map{"group": Map{"intralinks_per_node": leaf}}

	first, _ := Resolve(root, "group.intralinks_per_node")
	second, _ := Resolve(root, "group.intralinks_per_node")

	if first.(int) >= second.(int) {
		t.Errorf("consecutive resolutions = %v, %v; want increasing", first, second)
	}
}

func TestResolve_LeafRoot(t *testing.T) {
	if _, ok := Resolve(Lit(3), "anything"); ok {
		t.Error("Resolve on a leaf root should fail")
	}
}

func TestLookup_DoesNotInvoke(t *testing.T) {
	leaf, calls := counter()
	root := Map{"node_diameter": leaf}

	n, ok := Lookup(root, "node_diameter")
	if !ok {
		t.Fatal("Lookup not found")
	}
	if !IsSampler(n) {
		t.Error("IsSampler() = false for sampler leaf")
	}
	if *calls != 0 {
		t.Errorf("Lookup invoked sampler %d times", *calls)
	}
	if IsSampler(Lit(1)) {
		t.Error("IsSampler() = true for literal")
	}
}

func TestTypedAccessors(t *testing.T) {
	root := Map{
		"f":     Lit(0.25),
		"i64":   Lit(int64(7)),
		"trunc": Lit(3.9),
		"neg":   Lit(-2.7),
		"s":     Lit("#ff0000"),
		"b":     Lit(true),
		"style": Map{"overlap": Lit(false), "size": Lit("8x6"), "dpi": Lit(int64(96))},
		"bad":   Map{"nested": Map{}},
	}

	if got, err := Float(root, "f"); err != nil || got != 0.25 {
		t.Errorf("Float(f) = %v, %v", got, err)
	}
	if got, err := Int(root, "i64"); err != nil || got != 7 {
		t.Errorf("Int(i64) = %v, %v", got, err)
	}
	if got, err := Int(root, "trunc"); err != nil || got != 3 {
		t.Errorf("Int(trunc) = %v, %v; want 3", got, err)
	}
	if got, err := Int(root, "neg"); err != nil || got != -2 {
		t.Errorf("Int(neg) = %v, %v; want -2", got, err)
	}
	if got, err := String(root, "s"); err != nil || got != "#ff0000" {
		t.Errorf("String(s) = %v, %v", got, err)
	}

	if _, err := Float(root, "b"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Float(b) err = %v, want INVALID_CONFIG", err)
	}
	if _, err := Float(root, "nope"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Float(nope) err = %v, want INVALID_CONFIG", err)
	}
	if _, err := String(root, "f"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("String(f) err = %v, want INVALID_CONFIG", err)
	}

	style, err := StringMap(root, "style")
	if err != nil {
		t.Fatalf("StringMap(style) error = %v", err)
	}
	want := map[string]string{"overlap": "false", "size": "8x6", "dpi": "96"}
	for k, v := range want {
		if style[k] != v {
			t.Errorf("style[%q] = %q, want %q", k, style[k], v)
		}
	}

	if m, err := StringMap(root, "absent"); err != nil || len(m) != 0 {
		t.Errorf("StringMap(absent) = %v, %v; want empty", m, err)
	}
	if _, err := StringMap(root, "bad"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("StringMap(bad) err = %v, want INVALID_CONFIG", err)
	}
	if _, err := StringMap(root, "s"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("StringMap(s) err = %v, want INVALID_CONFIG", err)
	}
}

func TestDump(t *testing.T) {
	leaf, _ := counter()
	root := Map{"b": Seq{Lit(1), leaf}, "a": Lit("x")}

	if got := Dump(root); got != "{a: x, b: [1, <sampler>]}" {
		t.Errorf("Dump() = %q", got)
	}
}
