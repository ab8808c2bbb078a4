// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"

	"cogentcore.org/hsvcube/math32"
)

// Views are the orthographic projections used for previews.
type Views int32

const (
	// ViewIso looks at the origin from the (1, 1, 1) direction.
	ViewIso Views = iota

	// ViewFront looks down the -Z axis, with Y up.
	ViewFront

	// ViewTop looks down the -Y axis, with -Z up.
	ViewTop
)

func (vw Views) String() string {
	switch vw {
	case ViewIso:
		return "iso"
	case ViewFront:
		return "front"
	case ViewTop:
		return "top"
	}
	return fmt.Sprintf("Views(%d)", int32(vw))
}

// ParseView returns the view with the given case-insensitive name.
func ParseView(name string) (Views, error) {
	switch strings.ToLower(name) {
	case "iso":
		return ViewIso, nil
	case "front":
		return ViewFront, nil
	case "top":
		return ViewTop, nil
	}
	return ViewIso, fmt.Errorf("render: unknown view %q", name)
}

var (
	isoRight = math32.Vec3(1, 0, -1).Normal()
	isoUp    = math32.Vec3(-1, 2, -1).Normal()
	isoDepth = math32.Vec3(1, 1, 1).Normal()
)

// Project returns the screen-plane coordinates of the given point,
// with u to the right and v up, and its depth, larger values being
// nearer to the viewer.
func (vw Views) Project(p math32.Vector3) (u, v, depth float32) {
	switch vw {
	case ViewFront:
		return p.X, p.Y, p.Z
	case ViewTop:
		return p.X, -p.Z, p.Y
	}
	return p.Dot(isoRight), p.Dot(isoUp), p.Dot(isoDepth)
}
