package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/grafo/pkg/cache"
	"github.com/matzehuels/grafo/pkg/config"
	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/render"
)

const testConfig = `
[group]
number_of_nodes = 3
intralinks_per_node = 1
extralinks_per_node = 1
nodes_with_extralinks = 1

[[groups]]
basecolor = "#ff0000"
brightness_offset = { dist = "gauss", mean = 0, stddev = 0.2 }

[[groups]]
basecolor = "#0000ff"

[graphviz.node]
style = "filled"
`

func inline(format string) Options {
	return Options{Config: []byte(testConfig), Syntax: config.SyntaxTOML, Seed: 42, Format: format}
}

func TestValidateAndSetDefaults(t *testing.T) {
	o := Options{ConfigPath: "graph.toml"}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if o.Format != DefaultFormat || o.Layout != render.DefaultLayout || o.Renderer != RendererEmbedded {
		t.Errorf("defaults = %q/%q/%q", o.Format, o.Layout, o.Renderer)
	}
	// Idempotent.
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call error = %v", err)
	}
}

func TestValidateAndSetDefaults_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"no config", Options{}, errors.ErrCodeInvalidInput},
		{"inline without syntax", Options{Config: []byte("x")}, errors.ErrCodeInvalidInput},
		{"bad format", Options{ConfigPath: "g.toml", Format: "pdf"}, errors.ErrCodeInvalidFormat},
		{"bad layout", Options{ConfigPath: "g.toml", Layout: "osage"}, errors.ErrCodeInvalidLayout},
		{"bad renderer", Options{ConfigPath: "g.toml", Renderer: "wasm"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestNewRand_Deterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 10 {
		if a.Uint64() != b.Uint64() {
			t.Fatal("NewRand with equal seeds diverged")
		}
	}
	if NewRand(1).Uint64() == NewRand(2).Uint64() {
		t.Error("different seeds produced the same first draw")
	}
}

func TestExecute_DOT(t *testing.T) {
	res, err := NewRunner(nil, nil).Execute(context.Background(), inline(render.FormatGV))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Stats.NodeCount != 6 {
		t.Errorf("NodeCount = %d, want 6", res.Stats.NodeCount)
	}
	if res.Generation.Groups != 2 {
		t.Errorf("Groups = %d, want 2", res.Generation.Groups)
	}
	if !bytes.HasPrefix(res.Artifact, []byte("graph G {")) {
		t.Errorf("artifact is not DOT:\n%s", res.Artifact)
	}
	if string(res.Artifact) != res.Graph.DOT() {
		t.Error("artifact differs from the graph's DOT")
	}
	if res.CacheInfo.RenderHit {
		t.Error("DOT output should never report a cache hit")
	}
}

func TestExecute_SeedReproducible(t *testing.T) {
	r := NewRunner(nil, nil)
	a, err := r.Execute(context.Background(), inline(render.FormatGV))
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(context.Background(), inline(render.FormatGV))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Artifact, b.Artifact) {
		t.Error("equal seeds produced different graphs")
	}

	other := inline(render.FormatGV)
	other.Seed = 43
	c, err := r.Execute(context.Background(), other)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.Artifact, c.Artifact) {
		t.Error("different seeds produced identical graphs")
	}
}

func TestExecute_JSON(t *testing.T) {
	res, err := NewRunner(nil, nil).Execute(context.Background(), inline(render.FormatJSON))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(res.Artifact, &doc); err != nil {
		t.Fatalf("artifact is not JSON: %v", err)
	}
	if _, ok := doc["nodes"]; !ok {
		t.Error("JSON document has no nodes")
	}
}

func TestExecute_ConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	yaml := "groups:\n  - basecolor: \"#00ff00\"\n    number_of_nodes: 2\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	res, err := NewRunner(nil, nil).Execute(context.Background(), Options{ConfigPath: path, Seed: 1})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Stats.NodeCount != 2 || res.Stats.EdgeCount != 0 {
		t.Errorf("got %d nodes, %d edges; want 2, 0", res.Stats.NodeCount, res.Stats.EdgeCount)
	}
}

func TestExecute_ConfigError(t *testing.T) {
	opts := Options{Config: []byte("[[groups]]\nnumber_of_nodes = 1\n"), Syntax: config.SyntaxTOML}
	_, err := NewRunner(nil, nil).Execute(context.Background(), opts)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Execute() error = %v, want INVALID_CONFIG", err)
	}
	if err != nil && !strings.Contains(err.Error(), "groups[0].basecolor") {
		t.Errorf("error %q should name the missing path", err)
	}
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRunner(nil, nil).Execute(ctx, inline(render.FormatGV)); err == nil {
		t.Error("Execute() on a cancelled context should fail")
	}
}

func TestExecute_SVGIsCached(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil)
	ctx := context.Background()

	first, err := r.Execute(ctx, inline(render.FormatSVG))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !bytes.Contains(first.Artifact, []byte("<svg")) {
		t.Errorf("artifact is not SVG: %.80s", first.Artifact)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first render should miss the cache")
	}

	second, err := r.Execute(ctx, inline(render.FormatSVG))
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second render of the same seed should hit the cache")
	}
}
