// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHSV(t *testing.T) {
	tests := []struct {
		h, s, v float64
		want    color.RGBA
	}{
		{0, 100, 100, color.RGBA{255, 0, 0, 255}},
		{120, 100, 100, color.RGBA{0, 255, 0, 255}},
		{240, 100, 100, color.RGBA{0, 0, 255, 255}},
		{60, 100, 100, color.RGBA{255, 255, 0, 255}},
		{360, 100, 100, color.RGBA{255, 0, 0, 255}},
		{-120, 100, 100, color.RGBA{0, 0, 255, 255}},
		{200, 0, 100, color.RGBA{255, 255, 255, 255}},
		{200, 0, 0, color.RGBA{0, 0, 0, 255}},
		{0, 0, 50, color.RGBA{128, 128, 128, 255}},
		{0, 150, 120, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromHSV(tt.h, tt.s, tt.v), "hsv(%g, %g, %g)", tt.h, tt.s, tt.v)
	}
}

func TestToHSV(t *testing.T) {
	for _, hue := range []float64{0, 30, 90, 150, 210, 270, 330} {
		c := FromHSV(hue, 100, 100)
		h, s, v := ToHSV(c)
		assert.InDelta(t, hue, float64(h), 1, "hue %g", hue)
		assert.InDelta(t, 100, s, 0.5)
		assert.InDelta(t, 100, v, 0.5)
	}
}

// Levels that land on exact halves of 8-bit steps must round
// the way the float64 conversion does.
func TestFromHSVHalfSteps(t *testing.T) {
	one, five, six := 1.0, 5.0, 6.0
	assert.Equal(t, color.RGBA{42, 42, 42, 255}, FromHSV(0, 0, one/six*100))
	assert.Equal(t, color.RGBA{213, 213, 213, 255}, FromHSV(0, 0, five/six*100))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, FromHSV(0, 0, 50))
}

func TestFromHSL(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, FromHSL(0, 1, 0.5))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, FromHSL(120, 1, 0.5))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, FromHSL(240, 1, 0.5))
	assert.Equal(t, FromHSL(0, 1, 0.5), FromHSL(360, 1, 0.5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, FromHSL(10, 0.3, 1))
}

func TestHex(t *testing.T) {
	c := FromHex(0xbbccdd)
	assert.Equal(t, color.RGBA{0xbb, 0xcc, 0xdd, 0xff}, c)
	assert.Equal(t, uint32(0xbbccdd), AsHex(c))
	assert.Equal(t, "#bbccdd", HexString(c))

	p, err := ParseHex("bbccdd")
	require.NoError(t, err)
	assert.Equal(t, c, p)
	_, err = ParseHex("#zz0000")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	red := FromHex(0xff0000)
	green := FromHex(0x00ff00)
	assert.Equal(t, 1, Compare(red, green))
	assert.Equal(t, -1, Compare(green, red))
	assert.Equal(t, 0, Compare(red, red))

	// alpha does not participate in the order
	assert.Equal(t, 0, Compare(color.RGBA{1, 2, 3, 0}, color.RGBA{1, 2, 3, 255}))
	// red dominates green dominates blue
	assert.Equal(t, -1, Compare(FromHex(0x00ffff), FromHex(0x010000)))
}

func TestFloat32(t *testing.T) {
	r, g, b := Float32(FromHex(0xff8000))
	assert.Equal(t, float32(1), r)
	assert.InDelta(t, 0.502, g, 0.001)
	assert.Equal(t, float32(0), b)
}
