package render

import (
	"slices"

	"github.com/matzehuels/grafo/pkg/errors"
)

// Output formats.
const (
	FormatGV   = "gv"   // the DOT document itself
	FormatSVG  = "svg"  // rendered vector image
	FormatPNG  = "png"  // rendered raster image
	FormatJPG  = "jpg"  // rendered raster image
	FormatJSON = "json" // node/edge export, no layout
)

// Layout engines.
const (
	LayoutFDP   = "fdp"
	LayoutDot   = "dot"
	LayoutNeato = "neato"
	LayoutSFDP  = "sfdp"
	LayoutCirco = "circo"
	LayoutTwopi = "twopi"
)

// DefaultLayout is the force-directed engine grafo graphs are tuned for.
const DefaultLayout = LayoutFDP

var (
	// Formats lists every output format the CLI accepts.
	Formats = []string{FormatGV, FormatSVG, FormatPNG, FormatJPG, FormatJSON}

	// ImageFormats lists the formats that need a layout engine.
	ImageFormats = []string{FormatSVG, FormatPNG, FormatJPG}

	// Layouts lists the supported layout engines.
	Layouts = []string{LayoutFDP, LayoutDot, LayoutNeato, LayoutSFDP, LayoutCirco, LayoutTwopi}
)

// IsImage reports whether format must go through a renderer.
func IsImage(format string) bool {
	return slices.Contains(ImageFormats, format)
}

// ValidateFormat checks format against [Formats].
func ValidateFormat(format string) error {
	return errors.ValidateChoice(errors.ErrCodeInvalidFormat, "format", format, Formats)
}

// ValidateLayout checks layout against [Layouts].
func ValidateLayout(layout string) error {
	return errors.ValidateChoice(errors.ErrCodeInvalidLayout, "layout", layout, Layouts)
}

func validateImageFormat(format string) error {
	return errors.ValidateChoice(errors.ErrCodeInvalidFormat, "image format", format, ImageFormats)
}

func layoutOrDefault(layout string) string {
	if layout == "" {
		return DefaultLayout
	}
	return layout
}
