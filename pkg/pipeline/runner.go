package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/grafo/pkg/cache"
	"github.com/matzehuels/grafo/pkg/config"
	"github.com/matzehuels/grafo/pkg/generator"
	"github.com/matzehuels/grafo/pkg/graph"
	gio "github.com/matzehuels/grafo/pkg/io"
	"github.com/matzehuels/grafo/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options, since each run gets its own random source.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables render caching and a nil
// logger discards pipeline records.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete load → generate → encode pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	rng := NewRand(opts.Seed)
	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	root, err := r.Load(opts, rng)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)

	// Stage 2: Generate
	genStart := time.Now()
	gen, err := generator.New(rng, generator.WithLogger(r.Logger)).Generate(ctx, root)
	if err != nil {
		return nil, err
	}
	result.Graph = gen.Graph
	result.Generation = gen.Stats
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.NodeCount = gen.Graph.NodeCount()
	result.Stats.EdgeCount = gen.Graph.EdgeCount()

	r.Logger.Info("generated graph",
		"seed", opts.Seed,
		"groups", gen.Stats.Groups,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"skipped", gen.Stats.Skipped,
		"duration", result.Stats.GenerateTime)

	// Stage 3: Encode
	encStart := time.Now()
	artifact, hit, err := r.Encode(ctx, gen.Graph, opts)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", opts.Format, err)
	}
	result.Artifact = artifact
	result.Stats.EncodeTime = time.Since(encStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("encoded output",
		"format", opts.Format,
		"bytes", len(artifact),
		"cached", hit,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// Load parses the configuration the options name. Distribution tables draw
// from rng.
func (r *Runner) Load(opts Options, rng *rand.Rand) (config.Node, error) {
	if opts.Config != nil {
		return config.Parse(opts.Config, opts.Syntax, rng)
	}
	return config.Load(opts.ConfigPath, rng)
}

// Encode serializes g in opts.Format. Images go through the render cache;
// the boolean reports a cache hit.
func (r *Runner) Encode(ctx context.Context, g *graph.Graph, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateEncode(); err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	switch opts.Format {
	case render.FormatGV:
		if err := g.WriteDOT(&buf); err != nil {
			return nil, false, err
		}
		return buf.Bytes(), false, nil
	case render.FormatJSON:
		if err := gio.WriteJSON(g, &buf); err != nil {
			return nil, false, err
		}
		return buf.Bytes(), false, nil
	}

	cached := render.NewCached(opts.renderer(), r.Cache, opts.CacheTTL, r.Logger)
	return cached.Lookup(ctx, g.DOT(), opts.Format)
}
