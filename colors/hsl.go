// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// FromHSL returns the sRGB color for the given hue in degrees
// (wrapped into [0, 360)) and saturation and lightness in the 0-1
// range (ranges enforced). A hue sweep at saturation 1 and lightness
// 0.5 yields the fully saturated display rainbow.
func FromHSL(hue, saturation, lightness float64) color.RGBA {
	return AsRGBA(colorful.Hsl(normHue(hue), clamp01(saturation), clamp01(lightness)))
}

// Float32 returns the red, green and blue channels of the given
// color as 0-1 normalized float32 values, as used for vertex colors.
func Float32(c color.RGBA) (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}
