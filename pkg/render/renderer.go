package render

import (
	"context"
	"time"

	"github.com/matzehuels/grafo/pkg/graph"
	"github.com/matzehuels/grafo/pkg/observability"
)

// Renderer is a graph.Renderer that can name itself.
type Renderer interface {
	graph.Renderer

	// ID identifies the engine and layout, e.g. "embedded/fdp".
	ID() string
}

// observe reports a render to the observability hooks.
func observe(ctx context.Context, id, format string, fn func() ([]byte, error)) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, id, format)
	start := time.Now()
	out, err := fn()
	hooks.OnRenderComplete(ctx, id, format, len(out), time.Since(start), err)
	return out, err
}
