// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color-space conversions and a total
// ordering over colors, returning standard [color.RGBA] values.
package colors

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// FromHSV returns the sRGB color for the given hue in degrees
// (any value, wrapped into [0, 360)), and saturation and value
// as percentages in the 0-100 range (ranges enforced).
// The conversion runs in float64 throughout, and channels are
// rounded to the nearest 8-bit value only at the end; alpha is opaque.
func FromHSV(hue, saturation, value float64) color.RGBA {
	return AsRGBA(colorful.Hsv(normHue(hue), clamp01(saturation/100), clamp01(value/100)))
}

// ToHSV returns the hue in degrees [0, 360) and the saturation and
// value as percentages in the 0-100 range for the given color.
// It is the inverse of [FromHSV] up to 8-bit rounding.
func ToHSV(c color.Color) (hue, saturation, value float32) {
	cf, _ := colorful.MakeColor(opaque(c))
	h, s, v := cf.Hsv()
	return float32(h), float32(s * 100), float32(v * 100)
}

// AsRGBA converts the given [colorful.Color] into an opaque
// [color.RGBA], clamping it into the sRGB gamut first.
func AsRGBA(cf colorful.Color) color.RGBA {
	r, g, b := cf.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// normHue wraps the given hue in degrees into [0, 360).
func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// opaque returns c with its alpha forced to fully opaque, because
// [colorful.MakeColor] refuses fully transparent colors.
func opaque(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA64{uint16(r), uint16(g), uint16(b), 0xffff}
}
