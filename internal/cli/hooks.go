package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/grafo/pkg/observability"
)

// logHooks reports library events as debug records, visible with --verbose.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnGenerateStart(_ context.Context, groups int) {
	h.logger.Debug("generate started", "groups", groups)
}

func (h logHooks) OnGenerateComplete(_ context.Context, nodes, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generate failed", "err", err, "duration", d.Round(time.Microsecond))
		return
	}
	h.logger.Debug("generate complete", "nodes", nodes, "edges", edges, "duration", d.Round(time.Microsecond))
}

func (h logHooks) OnLinkSkipped(_ context.Context, kind string, group int) {
	h.logger.Debug("link skipped", "kind", kind, "group", group)
}

func (h logHooks) OnRenderStart(_ context.Context, renderer, format string) {
	h.logger.Debug("render started", "renderer", renderer, "format", format)
}

func (h logHooks) OnRenderComplete(_ context.Context, renderer, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "renderer", renderer, "err", err)
		return
	}
	h.logger.Debug("render complete", "renderer", renderer, "format", format, "bytes", size, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

// installHooks routes observability events to l.
func installHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetGeneratorHooks(h)
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
}

var (
	_ observability.GeneratorHooks = logHooks{}
	_ observability.RenderHooks    = logHooks{}
	_ observability.CacheHooks     = logHooks{}
)
