// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsvcube lays out a discretized HSV color space as a 3D
// point cloud: hue is rotation about the Y axis, saturation is the
// radial distance from it and value is the height. A [Layout]
// enumerates the samples, binds them to a pool of visual handles in
// color order, and builds the matching axis and tick geometry.
package hsvcube

import (
	"fmt"
	"math"

	"cogentcore.org/hsvcube/base/errors"
	"cogentcore.org/hsvcube/math32"
)

const (
	// RingCount is the number of hue samples on the innermost
	// non-achromatic ring; ring j has j*RingCount samples.
	RingCount = 6

	// MaxRadius is the radius of the fully saturated ring.
	MaxRadius = 60

	// Height is the vertical extent from value 0 to value 100.
	Height = 140

	// OffsetY is the height of value 0.
	OffsetY = 10

	// Model is the group label attached to every object made here.
	Model = "HSV"
)

// ErrInvalidResolution is returned for a resolution below 2,
// which has no distinct value levels to divide by.
var ErrInvalidResolution = errors.New("hsvcube: invalid resolution")

// Layout is the immutable resolution of an HSV layout: the number of
// discrete value levels. All operations on the same Layout share the
// same level spacing, so samples and axis ticks always line up.
// Layouts are made with [NewLayout]; the zero Layout is empty and
// produces no samples, ticks or ring vertices.
type Layout struct {
	steps int
}

// NewLayout returns a [Layout] for the given number of value levels,
// or an error wrapping [ErrInvalidResolution] if steps < 2.
func NewLayout(steps int) (Layout, error) {
	if steps < 2 {
		return Layout{}, fmt.Errorf("%w: steps must be at least 2, got %d", ErrInvalidResolution, steps)
	}
	return Layout{steps: steps}, nil
}

// Steps returns the number of discrete value levels,
// which is 0 for the zero Layout.
func (ly Layout) Steps() int {
	return ly.steps
}

// IsValid returns whether the layout was made by [NewLayout].
func (ly Layout) IsValid() bool {
	return ly.steps >= 2
}

// Levels returns the zero-indexed level count, Steps-1. Level i of
// Levels maps to 100*i/Levels percent. It is 0 for the zero Layout.
func (ly Layout) Levels() int {
	if !ly.IsValid() {
		return 0
	}
	return ly.steps - 1
}

// Level returns the percentage in 0-100 for level i, in full
// precision: colors are computed from these values before they
// are narrowed for storage.
func (ly Layout) Level(i int) float64 {
	if !ly.IsValid() {
		return 0
	}
	return float64(i) / float64(ly.Levels()) * 100
}

// Count returns the number of samples the layout generates:
// the sum over value levels i of the sum over saturation levels
// j <= i of max(j*RingCount, 1). With RingCount = 6 each value level
// adds a centered hexagonal number, so the total is Steps cubed.
func (ly Layout) Count() int {
	if !ly.IsValid() {
		return 0
	}
	return ly.steps * ly.steps * ly.steps
}

// Count returns the number of samples for the given resolution,
// or 0 if it is invalid.
func Count(steps int) int {
	ly, err := NewLayout(steps)
	if err != nil {
		return 0
	}
	return ly.Count()
}

// Position returns the 3D position of the given hue in degrees and
// saturation and value in percent. Hue increases clockwise when
// viewed from +Y; a saturation of 0 collapses onto the Y axis.
// It is computed in float64 and narrowed to float32 at the end.
func Position(degree, saturation, value float64) math32.Vector3 {
	radian := -(degree * math.Pi / 180)
	radius := MaxRadius * saturation / 100
	return math32.Vec3(float32(math.Cos(radian)*radius), float32(Height*(value/100)+OffsetY), float32(math.Sin(radian)*radius))
}
