// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsvcube

import (
	"image/color"
	"log/slog"

	"cogentcore.org/hsvcube/colors"
	"cogentcore.org/hsvcube/math32"
)

// Sample is one discretized point of the HSV color space with its
// derived color and position. It is a value type and never modified
// after generation.
type Sample struct {

	// Color is the sRGB color of the sample.
	Color color.RGBA

	// Position is the 3D position of the sample.
	Position math32.Vector3

	// H is the hue in degrees, in [0, 360).
	H float32

	// S is the saturation in percent, in [0, 100].
	S float32

	// V is the value in percent, in [0, 100].
	V float32

	// ForceShowOnHueFilter is set for achromatic samples (S == 0),
	// which have no meaningful hue and stay visible whatever hue
	// range is being filtered on.
	ForceShowOnHueFilter bool
}

// NewSample returns the sample at the given hue in degrees and
// saturation and value in percent. The color and position are
// computed from the full-precision inputs, which are then narrowed
// to float32 for storage.
func NewSample(degree, saturation, value float64) Sample {
	return Sample{
		Color:                colors.FromHSV(degree, saturation, value),
		Position:             Position(degree, saturation, value),
		H:                    float32(degree),
		S:                    float32(saturation),
		V:                    float32(value),
		ForceShowOnHueFilter: saturation == 0,
	}
}

// MatchesHue returns whether the sample passes a hue filter for the
// closed range [lo, hi] in degrees. A range with lo > hi wraps around
// 360. Samples with [Sample.ForceShowOnHueFilter] always match.
func (s Sample) MatchesHue(lo, hi float32) bool {
	if s.ForceShowOnHueFilter {
		return true
	}
	if lo <= hi {
		return s.H >= lo && s.H <= hi
	}
	return s.H >= lo || s.H <= hi
}

// Samples returns the samples of the layout in generation order,
// or none for the zero Layout: for each value level i, for each saturation level j <= i, a ring
// of max(j*RingCount, 1) evenly spaced hues starting at 0.
// Higher values get more saturation levels, and saturation 0
// contributes the single achromatic sample of each value level.
func (ly Layout) Samples() []Sample {
	if !ly.IsValid() {
		return nil
	}
	levels := ly.Levels()
	samples := make([]Sample, 0, ly.Count())
	for i := 0; i <= levels; i++ {
		value := ly.Level(i)
		for j := 0; j <= i; j++ {
			saturation := ly.Level(j)
			n := max(j*RingCount, 1)
			for k := 0; k < n; k++ {
				degree := 360 / float64(n) * float64(k)
				samples = append(samples, NewSample(degree, saturation, value))
			}
		}
	}
	slog.Debug("hsvcube: generated samples", "steps", ly.steps, "count", len(samples))
	return samples
}

// Samples returns the samples for the given resolution;
// see [Layout.Samples].
func Samples(steps int) ([]Sample, error) {
	ly, err := NewLayout(steps)
	if err != nil {
		return nil, err
	}
	return ly.Samples(), nil
}
