// Package color converts between the two color representations grafo uses.
//
// Colors are stored on nodes and edges as lowercase "#rrggbb" strings so the
// DOT output stays uniform. They are converted to fractional HSV only
// transiently, to move the value (brightness) channel up or down.
//
// All HSV channels are normalized to [0, 1]; hue is a fraction of a full
// turn rather than degrees.
//
//	hsv, _ := color.RGBToHSV("#8e4cd3")
//	darker := color.AdjustBrightness(hsv, -0.4)
//	fmt.Println(color.HSVToRGB(darker))
package color

import (
	"encoding/hex"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/grafo/pkg/errors"
)

// White is the fill color of a node nobody has painted yet.
const White = "#ffffff"

// quantizationSlack absorbs float noise before channels are truncated to
// bytes. Converting #123abc to HSV and back yields a red channel of
// 17.999999999999993, which must still truncate to 0x12.
const quantizationSlack = 1e-9

// RGB is a color as three byte-valued channels.
type RGB struct {
	R, G, B int
}

// HSV is a color as hue, saturation and value, each in [0, 1].
type HSV struct {
	H, S, V float64
}

// String renders the color for log output.
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.3f, %.3f, %.3f)", c.H, c.S, c.V)
}

// Hex encodes c as "#rrggbb".
func (c RGB) Hex() string {
	return DecimalToHex(float64(c.R), float64(c.G), float64(c.B))
}

// HexToDecimal splits "#RRGGBB" into its three byte channels.
// It returns an INVALID_COLOR error unless s is "#" followed by exactly six
// hex digits. Digits are case-insensitive.
func HexToDecimal(s string) (RGB, error) {
	if err := errors.ValidateHexColor(s); err != nil {
		return RGB{}, err
	}
	b, err := hex.DecodeString(s[1:])
	if err != nil {
		return RGB{}, errors.Format("invalid hex color %q: %v", s, err)
	}
	return RGB{R: int(b[0]), G: int(b[1]), B: int(b[2])}, nil
}

// DecimalToHex encodes three channels as lowercase "#rrggbb". Channels are
// truncated toward zero and then clamped into [0, 255].
func DecimalToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", toByte(r), toByte(g), toByte(b))
}

func toByte(v float64) int {
	n := int(v)
	return max(0, min(n, 255))
}

// RGBToHSV converts a hex color to fractional HSV.
func RGBToHSV(s string) (HSV, error) {
	rgb, err := HexToDecimal(s)
	if err != nil {
		return HSV{}, err
	}
	c := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
	h, sat, v := c.Hsv()
	return HSV{H: wrapHue(h / 360), S: sat, V: v}, nil
}

// HSVToRGB converts fractional HSV to a hex color. Each channel is scaled by
// 255 and truncated.
func HSVToRGB(c HSV) string {
	rgb := colorful.Hsv(wrapHue(c.H)*360, clamp01(c.S), clamp01(c.V))
	return DecimalToHex(
		rgb.R*255+quantizationSlack,
		rgb.G*255+quantizationSlack,
		rgb.B*255+quantizationSlack,
	)
}

// AdjustBrightness adds offset to the value channel and clamps it into
// [0, 1]. Hue and saturation are left untouched.
func AdjustBrightness(c HSV, offset float64) HSV {
	c.V = clamp01(c.V + offset)
	return c
}

// Average returns the channel-wise arithmetic mean of two hex colors,
// truncated to integers. Blending happens in RGB space, not HSV.
func Average(a, b string) (string, error) {
	ca, err := HexToDecimal(a)
	if err != nil {
		return "", err
	}
	cb, err := HexToDecimal(b)
	if err != nil {
		return "", err
	}
	return RGB{
		R: (ca.R + cb.R) / 2,
		G: (ca.G + cb.G) / 2,
		B: (ca.B + cb.B) / 2,
	}.Hex(), nil
}

// wrapHue maps h into [0, 1).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	return h
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
