// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws flat orthographic previews of HSV layout
// scenes into images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/hsvcube/colors"
	"cogentcore.org/hsvcube/hsvcube"
	"cogentcore.org/hsvcube/math32"
	"cogentcore.org/hsvcube/xyz"
	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// Options are the options for drawing a preview.
type Options struct {

	// Width and Height are the image size in pixels.
	Width, Height int

	// View is the projection.
	View Views

	// Axes draws the axis arrows, ticks and hue ring.
	Axes bool

	// Ring forces the normally hidden hue ring to be drawn with the axes.
	Ring bool

	// CubeSize is the edge length of each sample cube, in layout units.
	CubeSize float32

	// Background is the background color.
	Background color.Color

	// Margin is the empty border around the drawing, in pixels.
	Margin float64
}

// DefaultOptions returns the default preview options.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     800,
		View:       ViewIso,
		Axes:       true,
		Ring:       true,
		CubeSize:   4,
		Background: colornames.Black,
		Margin:     40,
	}
}

// ParseBackground returns the color for the given SVG color name
// or #rrggbb hex value.
func ParseBackground(s string) (color.RGBA, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	c, err := colors.ParseHex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: unknown background color %q", s)
	}
	return c, nil
}

// item is an object to draw with its projected depth.
type item struct {
	obj   xyz.Object
	depth float32
}

// Draw returns a preview image of the scene for the given layout.
func Draw(ly hsvcube.Layout, opts Options) image.Image {
	return newPainter(ly, opts).dc.Image()
}

// WritePNG writes a PNG preview of the given layout to w.
func WritePNG(w io.Writer, ly hsvcube.Layout, opts Options) error {
	return newPainter(ly, opts).dc.EncodePNG(w)
}

// SavePNG saves a PNG preview of the given layout to the given file.
func SavePNG(filename string, ly hsvcube.Layout, opts Options) error {
	return newPainter(ly, opts).dc.SavePNG(filename)
}

// painter holds the state for drawing one preview.
type painter struct {
	dc   *gg.Context
	opts Options

	umin, vmin float32
	scale      float64
	ox, oy     float64
}

func newPainter(ly hsvcube.Layout, opts Options) *painter {
	sc := ly.NewScene(opts.CubeSize)
	pt := &painter{dc: gg.NewContext(opts.Width, opts.Height), opts: opts}
	var items []item
	for _, obj := range sc.Kids {
		switch o := obj.(type) {
		case *xyz.Solid:
			_, _, d := opts.View.Project(o.Pose.Pos)
			items = append(items, item{o, d})
		case *xyz.Lines:
			if opts.Axes && opts.Ring {
				o.SetVisible(true)
			}
		}
	}
	slices.SortStableFunc(items, func(a, b item) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})
	pt.fit(sc)

	bg := opts.Background
	if bg == nil {
		bg = colornames.Black
	}
	pt.dc.SetColor(bg)
	pt.dc.Clear()
	for _, it := range items {
		pt.drawCube(it.obj.(*xyz.Solid))
	}
	if opts.Axes {
		for _, obj := range sc.Kids {
			switch o := obj.(type) {
			case *xyz.Lines:
				pt.drawLines(o)
			case *xyz.AxisArrow:
				pt.drawArrow(o)
			case *xyz.TickPlane:
				pt.drawTick(o)
			}
		}
	}
	slog.Debug("render: drew preview", "view", opts.View, "cubes", len(items))
	return pt
}

// fit computes the scale and offset that fit the drawn objects
// into the image, keeping the aspect ratio.
func (pt *painter) fit(sc *xyz.Group) {
	umin, vmin := float32(math32.Infinity), float32(math32.Infinity)
	umax, vmax := -umin, -vmin
	add := func(p math32.Vector3) {
		u, v, _ := pt.opts.View.Project(p)
		umin, umax = math32.Min(umin, u), math32.Max(umax, u)
		vmin, vmax = math32.Min(vmin, v), math32.Max(vmax, v)
	}
	for _, obj := range sc.Kids {
		switch o := obj.(type) {
		case *xyz.Solid:
			add(o.Pose.Pos)
		case *xyz.AxisArrow:
			if pt.opts.Axes {
				add(o.Origin)
				add(o.Tip())
			}
		}
	}
	if umin > umax {
		// nothing to draw
		umin, vmin, umax, vmax = 0, 0, 0, 0
	}
	pad := max(pt.opts.CubeSize, 1)
	umin, vmin, umax, vmax = umin-pad, vmin-pad, umax+pad, vmax+pad
	margin := pt.margin()
	w := float64(pt.opts.Width) - 2*margin
	h := float64(pt.opts.Height) - 2*margin
	pt.scale = min(w/float64(umax-umin), h/float64(vmax-vmin))
	pt.umin, pt.vmin = umin, vmin
	pt.ox = (float64(pt.opts.Width) - float64(umax-umin)*pt.scale) / 2
	pt.oy = (float64(pt.opts.Height) - float64(vmax-vmin)*pt.scale) / 2
}

// margin returns [Options.Margin], reduced so that at least half of
// the smaller image dimension stays drawable.
func (pt *painter) margin() float64 {
	return max(0, min(pt.opts.Margin, float64(min(pt.opts.Width, pt.opts.Height))/4))
}

// screen returns the pixel coordinates of the given point.
func (pt *painter) screen(p math32.Vector3) (x, y float64) {
	u, v, _ := pt.opts.View.Project(p)
	x = pt.ox + float64(u-pt.umin)*pt.scale
	y = float64(pt.opts.Height) - pt.oy - float64(v-pt.vmin)*pt.scale
	return
}

func (pt *painter) drawCube(sd *xyz.Solid) {
	x, y := pt.screen(sd.Pose.Pos)
	sz := float64(sd.Size.X) * pt.scale
	pt.dc.SetColor(sd.Material.Color)
	pt.dc.DrawRectangle(x-sz/2, y-sz/2, sz, sz)
	pt.dc.Fill()
}

func (pt *painter) drawLines(ln *xyz.Lines) {
	if !ln.IsVisible() {
		return
	}
	pt.dc.SetLineWidth(float64(ln.Width))
	for i := 1; i < len(ln.Points); i++ {
		x0, y0 := pt.screen(ln.Points[i-1])
		x1, y1 := pt.screen(ln.Points[i])
		if ln.Material.VertexColors {
			pt.dc.SetColor(ln.Colors[i-1])
		} else {
			pt.dc.SetColor(ln.Material.Color)
		}
		pt.dc.DrawLine(x0, y0, x1, y1)
		pt.dc.Stroke()
	}
}

func (pt *painter) drawArrow(ar *xyz.AxisArrow) {
	x0, y0 := pt.screen(ar.Origin)
	x1, y1 := pt.screen(ar.Tip())
	xb, yb := pt.screen(ar.HeadBase())
	pt.dc.SetColor(ar.Material.Color)
	pt.dc.SetLineWidth(1.5)
	pt.dc.DrawLine(x0, y0, xb, yb)
	pt.dc.Stroke()
	// head as a triangle perpendicular to the projected shaft
	dx, dy := x1-xb, y1-yb
	hw := 0.4
	pt.dc.MoveTo(x1, y1)
	pt.dc.LineTo(xb-dy*hw, yb+dx*hw)
	pt.dc.LineTo(xb+dy*hw, yb-dx*hw)
	pt.dc.ClosePath()
	pt.dc.Fill()
}

func (pt *painter) drawTick(tp *xyz.TickPlane) {
	x, y := pt.screen(tp.Pose.Pos)
	pt.dc.SetColor(tp.Material.Color)
	pt.dc.DrawCircle(x, y, 2)
	pt.dc.Fill()
	pt.dc.DrawStringAnchored(tp.AxisName+" "+tp.Text(), x+4, y, 0, 0.5)
}
