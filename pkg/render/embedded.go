package render

import (
	"bytes"
	"context"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/grafo/pkg/errors"
)

// Embedded renders with the Graphviz library compiled into the binary.
type Embedded struct {
	// Layout is the engine name; empty means [DefaultLayout].
	Layout string
}

// ID implements [Renderer].
func (e Embedded) ID() string { return "embedded/" + layoutOrDefault(e.Layout) }

// Render lays out dot and encodes it as format.
func (e Embedded) Render(ctx context.Context, dot, format string) ([]byte, error) {
	if err := validateImageFormat(format); err != nil {
		return nil, err
	}
	layout := layoutOrDefault(e.Layout)
	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}

	return observe(ctx, e.ID(), format, func() ([]byte, error) {
		gv, err := graphviz.New(ctx)
		if err != nil {
			return nil, errors.Render(err, "init graphviz")
		}
		defer gv.Close()
		gv.SetLayout(graphviz.Layout(layout))

		g, err := graphviz.ParseBytes([]byte(dot))
		if err != nil {
			return nil, errors.Render(err, "parse DOT")
		}
		defer g.Close()

		var buf bytes.Buffer
		if err := gv.Render(ctx, g, graphviz.Format(format), &buf); err != nil {
			return nil, errors.Render(err, "%s %s", layout, format)
		}
		return buf.Bytes(), nil
	})
}

var _ Renderer = Embedded{}
