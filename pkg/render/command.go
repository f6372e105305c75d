package render

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/grafo/pkg/errors"
)

// Command renders by piping DOT into a Graphviz executable, the way
// `fdp -Tpng` is used from a shell.
type Command struct {
	// Layout picks the executable; empty means [DefaultLayout].
	Layout string
	// Binary overrides the executable path. Empty means the Layout name
	// looked up on PATH.
	Binary string
}

func (c Command) binary() string {
	if c.Binary != "" {
		return c.Binary
	}
	return layoutOrDefault(c.Layout)
}

// ID implements [Renderer].
func (c Command) ID() string { return "command/" + c.binary() }

// Render runs the executable with -T<format>, writes dot to its stdin and
// returns its stdout. A missing executable or a non-zero exit is a
// RENDER_FAILED error carrying the tool's stderr.
func (c Command) Render(ctx context.Context, dot, format string) ([]byte, error) {
	if err := validateImageFormat(format); err != nil {
		return nil, err
	}
	if c.Binary == "" {
		if err := ValidateLayout(layoutOrDefault(c.Layout)); err != nil {
			return nil, err
		}
	}

	bin := c.binary()
	return observe(ctx, c.ID(), format, func() ([]byte, error) {
		path, err := exec.LookPath(bin)
		if err != nil {
			return nil, errors.Render(err, "%s not found; install Graphviz or use the embedded renderer", bin)
		}

		cmd := exec.CommandContext(ctx, path, "-T"+format)
		cmd.Stdin = strings.NewReader(dot)

		var out, stderr bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				return nil, errors.Render(err, "%s -T%s", bin, format)
			}
			return nil, errors.Render(err, "%s -T%s: %s", bin, format, msg)
		}
		return out.Bytes(), nil
	})
}

var _ Renderer = Command{}
