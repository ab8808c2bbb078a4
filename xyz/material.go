// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/hsvcube/colors"
)

// Material describes the surface or line color properties of an object.
type Material struct {

	// Color is the main color of the surface or line; the alpha
	// component determines transparency.
	Color color.RGBA `json:"-" yaml:"-" toml:"-"`

	// Hex is the #rrggbb form of Color, for serialization.
	Hex string `json:"color" yaml:"color" toml:"color"`

	// VertexColors indicates that per-vertex colors are used
	// instead of Color, which is then a multiplier.
	VertexColors bool `json:"vertexColors,omitempty" yaml:"vertexColors,omitempty" toml:"vertexColors,omitempty"`
}

// Defaults sets the default material values: opaque white.
func (mt *Material) Defaults() {
	mt.SetColor(color.RGBA{255, 255, 255, 255})
}

// SetColor sets [Material.Color] and its serialized form.
func (mt *Material) SetColor(c color.RGBA) {
	mt.Color = c
	mt.Hex = colors.HexString(c)
}
