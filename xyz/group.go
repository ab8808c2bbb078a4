// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Group collects individual elements in a scene but does not have a
// shape or material of its own.
type Group struct {
	NodeBase

	// Kids are the objects in the group, in insertion order.
	Kids []Object
}

// NewGroup returns a new empty group with the given name.
func NewGroup(name string) *Group {
	gp := &Group{}
	gp.Name = name
	gp.Pose.Defaults()
	return gp
}

// Add appends the given objects to the group.
func (gp *Group) Add(objs ...Object) {
	gp.Kids = append(gp.Kids, objs...)
}

// Len returns the number of objects in the group.
func (gp *Group) Len() int {
	return len(gp.Kids)
}

// ByModel returns the objects whose [NodeBase.Model] label is model.
func (gp *Group) ByModel(model string) []Object {
	var objs []Object
	for _, k := range gp.Kids {
		if k.AsNode().Model == model {
			objs = append(objs, k)
		}
	}
	return objs
}

// SetModelVisible sets the visibility of all objects with the given
// model label, returning how many objects were changed.
func (gp *Group) SetModelVisible(model string, visible bool) int {
	n := 0
	for _, k := range gp.ByModel(model) {
		nb := k.AsNode()
		if nb.IsVisible() != visible {
			nb.SetVisible(visible)
			n++
		}
	}
	return n
}

// test for impl
var (
	_ Object = &Group{}
	_ Object = &Solid{}
	_ Object = &TickPlane{}
	_ Object = &AxisArrow{}
	_ Object = &Lines{}
)
