// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cmp"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// FromHex returns the opaque color for the given packed 0xRRGGBB value.
func FromHex(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 255}
}

// AsHex returns the packed 0xRRGGBB value of the given color,
// ignoring alpha.
func AsHex(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// HexString returns the given color as a lowercase "#rrggbb" string.
func HexString(c color.RGBA) string {
	return fmt.Sprintf("#%06x", AsHex(c))
}

// ParseHex parses a "#rrggbb" or "rrggbb" string into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.ParseHex: %w", err)
	}
	return AsRGBA(cf), nil
}

// Compare returns -1, 0 or 1 depending on whether a orders before,
// equal to or after b. The order is total: colors are compared by
// their packed 0xRRGGBB value, which is lexicographic by R, then G,
// then B. Alpha is ignored.
func Compare(a, b color.RGBA) int {
	return cmp.Compare(AsHex(a), AsHex(b))
}
