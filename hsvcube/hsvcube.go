// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsvcube

import (
	"cogentcore.org/hsvcube/xyz"
)

// AddHSVProps generates the samples for the given resolution and
// assigns them to the pool in color order; see [Assign]. The pool
// should hold at least [Count](steps) handles, or the trailing samples
// are dropped. It returns an error wrapping [ErrInvalidResolution]
// before touching the pool if steps < 2.
func AddHSVProps[H Handle](pool []H, steps int) error {
	ly, err := NewLayout(steps)
	if err != nil {
		return err
	}
	Assign(pool, ly.Samples())
	return nil
}

// CreateHSVAxes returns the axis and tick objects for the given
// resolution, made with the standard [xyz.Builder]; see [Layout.Axes].
func CreateHSVAxes(steps int) (axes, ticks []xyz.Object, err error) {
	ly, err := NewLayout(steps)
	if err != nil {
		return nil, nil, err
	}
	axes, ticks = ly.Axes(xyz.Builder{})
	return axes, ticks, nil
}

// NewCubes returns a pool of exactly [Layout.Count] cubes of the given
// size with the samples assigned, each cube placed at its sample
// position and given its sample color.
func (ly Layout) NewCubes(size float32) []*xyz.Solid {
	pool := make([]*xyz.Solid, ly.Count())
	for i := range pool {
		pool[i] = xyz.NewCube(size).SetModel(Model)
	}
	for _, b := range Bind(pool, ly.Samples()) {
		b.Handle.SetUserData(UserDataKey, b.Sample)
		b.Handle.SetPos(b.Sample.Position).SetColor(b.Sample.Color)
	}
	return pool
}

// SampleOf returns the sample assigned to the given handle
// by [Assign], if any.
func SampleOf(nb *xyz.NodeBase) (Sample, bool) {
	v, ok := nb.UserDataValue(UserDataKey)
	if !ok {
		return Sample{}, false
	}
	s, ok := v.(Sample)
	return s, ok
}

// NewScene returns a group holding the cubes of [Layout.NewCubes]
// followed by the axes and ticks of [Layout.Axes].
func (ly Layout) NewScene(cubeSize float32) *xyz.Group {
	gp := xyz.NewGroup("hsv")
	for _, c := range ly.NewCubes(cubeSize) {
		gp.Add(c)
	}
	axes, ticks := ly.Axes(xyz.Builder{})
	gp.Add(axes...)
	gp.Add(ticks...)
	return gp
}
