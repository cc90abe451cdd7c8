package main

import (
	"fmt"
	"math"
)

// ColorFormat selects the textual encoding produced for a copied color.
type ColorFormat int

const (
	FormatHTMLHex ColorFormat = iota // "#RRGGBB"
	FormatRawHex                     // "0xaabbcc"
	FormatCSSRGB                     // "rgb(R, G, B);"
	FormatCSSRGBA                    // "rgba(R, G, B, 1);"
	FormatHSL                        // "hsl(H, S%, L%);"
	FormatFloat                      // "0.54f, 0.22f, 0.44f"
	FormatVec3                       // "vec3(0.54f, 0.22f, 0.44f)"
	FormatVec4                       // "vec4(0.54f, 0.22f, 0.44f, 1.00f)"
	formatCount
)

// formatNames are the menu labels, indexed by ColorFormat.
var formatNames = [formatCount]string{
	"HTML HEX", "Raw HEX", "CSS RGB", "CSS RGBA", "HSL", "Float", "Vec3", "Vec4",
}

// FormatColor renders a 24-bit RGB value in the given format. An out-of-range
// format returns the empty string; that signals a programming error in the
// caller, not bad input.
func FormatColor(rgb uint32, format ColorFormat) string {
	r := (rgb >> 16) & 0xFF
	g := (rgb >> 8) & 0xFF
	b := rgb & 0xFF
	rn := float64(r) / 255.0
	gn := float64(g) / 255.0
	bn := float64(b) / 255.0

	switch format {
	case FormatHTMLHex:
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	case FormatRawHex:
		return fmt.Sprintf("0x%02x%02x%02x", r, g, b)
	case FormatCSSRGB:
		return fmt.Sprintf("rgb(%d, %d, %d);", r, g, b)
	case FormatCSSRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, 1);", r, g, b)
	case FormatHSL:
		h, s, l := rgbToHSL(rn, gn, bn)
		return fmt.Sprintf("hsl(%d, %d%%, %d%%);",
			int(math.Round(h)), int(math.Round(s*100)), int(math.Round(l*100)))
	case FormatFloat:
		return fmt.Sprintf("%.2ff, %.2ff, %.2ff", rn, gn, bn)
	case FormatVec3:
		return fmt.Sprintf("vec3(%.2ff, %.2ff, %.2ff)", rn, gn, bn)
	case FormatVec4:
		return fmt.Sprintf("vec4(%.2ff, %.2ff, %.2ff, 1.00f)", rn, gn, bn)
	default:
		return ""
	}
}

// rgbToHSL converts normalized RGB channels to HSL. Hue is in degrees
// [0, 360), saturation and lightness in [0, 1]. Achromatic input maps to
// hue 0, saturation 0. Hue ties between equal maximum channels resolve in
// R, G, B order.
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min
	l = (max + min) / 2.0

	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2.0 - max - min)
	}

	switch max {
	case r:
		h = (g - b) / delta
	case g:
		h = 2.0 + (b-r)/delta
	default: // max == b
		h = 4.0 + (r-g)/delta
	}
	h *= 60.0
	if h < 0 {
		h += 360.0
	}
	return h, s, l
}
