// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz provides the scene objects produced by the HSV layout:
// solids (cubes and tick planes), axis arrows and colored polylines,
// each with a [Pose] and free-form user data. It holds no rendering
// state; a renderer consumes these objects as plain data.
package xyz

// Object is implemented by every element that can be added to a [Group].
type Object interface {
	// AsNode returns the [NodeBase] embedded in the object.
	AsNode() *NodeBase
}

// NodeBase is the common data for all scene objects.
type NodeBase struct {

	// Name is a unique name within the parent group, if set.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Model is the model group label that the object belongs to,
	// used by the scene to group and toggle related objects together.
	Model string `json:"model,omitempty" yaml:"model,omitempty" toml:"model,omitempty"`

	// Pose is the position and orientation of the object.
	Pose Pose `json:"pose" yaml:"pose" toml:"pose"`

	// Invisible hides the object. Objects are visible by default.
	Invisible bool `json:"invisible,omitempty" yaml:"invisible,omitempty" toml:"invisible,omitempty"`

	// UserData holds arbitrary data attached by clients, by key.
	UserData map[string]any `json:"-" yaml:"-" toml:"-"`
}

func (nb *NodeBase) AsNode() *NodeBase {
	return nb
}

// IsVisible returns whether the object should be rendered.
func (nb *NodeBase) IsVisible() bool {
	return !nb.Invisible
}

// SetVisible sets whether the object should be rendered.
func (nb *NodeBase) SetVisible(visible bool) {
	nb.Invisible = !visible
}

// SetUserData sets the user data value for the given key,
// allocating the map if needed.
func (nb *NodeBase) SetUserData(key string, v any) {
	if nb.UserData == nil {
		nb.UserData = make(map[string]any)
	}
	nb.UserData[key] = v
}

// UserDataValue returns the user data value for the given key
// and whether it was set.
func (nb *NodeBase) UserDataValue(key string) (any, bool) {
	v, ok := nb.UserData[key]
	return v, ok
}
