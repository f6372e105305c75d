// Package pipeline runs the complete load → generate → encode flow for grafo.
//
// By centralizing this logic, the CLI and tests share one definition of how a
// seed, a configuration and an output format turn into bytes.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse a TOML or YAML configuration, binding distribution tables
//     to the run's random source
//  2. Generate: Build the clustered graph
//  3. Encode: Serialize as DOT or JSON, or render an image through Graphviz
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ConfigPath: "graph.toml",
//	    Seed:       42,
//	    Format:     render.FormatSVG,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("graph.svg", result.Artifact, 0644)
//
// Configuration samplers and the generator draw from the same source, so a
// seed reproduces the whole graph.
package pipeline

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/generator"
	"github.com/matzehuels/grafo/pkg/graph"
	"github.com/matzehuels/grafo/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultFormat is the output format when none is given.
	DefaultFormat = render.FormatGV

	// DefaultCacheTTL is how long rendered images stay cached.
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// Renderer engines.
const (
	RendererEmbedded = "embedded" // go-graphviz, in process
	RendererCommand  = "command"  // Graphviz executable on PATH
)

// Renderers lists the accepted renderer names.
var Renderers = []string{RendererEmbedded, RendererCommand}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Load options. Config takes precedence over ConfigPath.
	ConfigPath string `json:"config_path,omitempty"`
	Config     []byte `json:"config,omitempty"`
	Syntax     string `json:"syntax,omitempty"` // config.SyntaxTOML or config.SyntaxYAML; required with Config
	Seed       uint64 `json:"seed"`

	// Encode options
	Format   string        `json:"format,omitempty"`
	Layout   string        `json:"layout,omitempty"`
	Renderer string        `json:"renderer,omitempty"`
	Binary   string        `json:"binary,omitempty"` // executable for RendererCommand; defaults to Layout
	CacheTTL time.Duration `json:"cache_ttl,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks every option and fills in defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Config == nil && o.ConfigPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "config or config path is required")
	}
	if o.Config != nil && o.Syntax == "" {
		return errors.New(errors.ErrCodeInvalidInput, "syntax is required with inline config")
	}
	if err := o.ValidateEncode(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateEncode checks the encode options and fills in their defaults.
func (o *Options) ValidateEncode() error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Layout == "" {
		o.Layout = render.DefaultLayout
	}
	if o.Renderer == "" {
		o.Renderer = RendererEmbedded
	}
	if err := render.ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := render.ValidateLayout(o.Layout); err != nil {
		return err
	}
	return errors.ValidateChoice(errors.ErrCodeInvalidInput, "renderer", o.Renderer, Renderers)
}

// renderer builds the Graphviz renderer the options select.
func (o *Options) renderer() render.Renderer {
	if o.Renderer == RendererCommand {
		return render.Command{Layout: o.Layout, Binary: o.Binary}
	}
	return render.Embedded{Layout: o.Layout}
}

// NewRand creates a run's random source from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the generated graph.
	Graph *graph.Graph

	// Generation holds the generator's per-phase counts.
	Generation generator.Stats

	// Artifact is the encoded output in the requested format.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	LoadTime     time.Duration
	GenerateTime time.Duration
	EncodeTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether the image came from the render cache
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
