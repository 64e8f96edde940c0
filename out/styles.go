// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style holds formatting codes in matplotlib notation
type Style struct {
	C  string  // color; e.g. "k", "r", "b", "orange"
	M  string  // marker; e.g. "s", "^", "o", "x", "+", "." ("" means no marker)
	Ls string  // line style; e.g. "-", "--", ":" ("" means "-" if no marker; none otherwise)
	Lw float64 // line width [points]
	Ms float64 // marker size [points]
	L  string  // label
}

// HasLine tells whether a line must be drawn
func (o Style) HasLine() bool {
	if o.Ls == "none" {
		return false
	}
	return o.M == "" || o.Ls != ""
}

// LineStyle returns the line style for gonum/plot
func (o Style) LineStyle() (ls draw.LineStyle) {
	ls.Color = GetColor(o.C)
	ls.Width = vg.Points(1)
	if o.Lw > 0 {
		ls.Width = vg.Points(o.Lw)
	}
	switch o.Ls {
	case "--":
		ls.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	case ":":
		ls.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	case "-.":
		ls.Dashes = []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}
	}
	return
}

// GlyphStyle returns the marker style for gonum/plot
func (o Style) GlyphStyle() (gs draw.GlyphStyle) {
	gs.Color = GetColor(o.C)
	gs.Radius = vg.Points(3)
	if o.Ms > 0 {
		gs.Radius = vg.Points(o.Ms / 2)
	}
	switch o.M {
	case "s":
		gs.Shape = draw.BoxGlyph{}
	case "^":
		gs.Shape = draw.PyramidGlyph{}
	case "x":
		gs.Shape = draw.CrossGlyph{}
	case "+":
		gs.Shape = draw.PlusGlyph{}
	case "*":
		gs.Shape = draw.RingGlyph{}
	case ".":
		gs.Shape = draw.CircleGlyph{}
		gs.Radius /= 2
	default:
		gs.Shape = draw.CircleGlyph{}
	}
	return
}

// GetColor converts matplotlib color codes
func GetColor(c string) color.Color {
	switch c {
	case "r", "red":
		return color.RGBA{R: 255, A: 255}
	case "g", "green":
		return color.RGBA{G: 128, A: 255}
	case "b", "blue":
		return color.RGBA{B: 255, A: 255}
	case "c", "cyan":
		return color.RGBA{G: 191, B: 191, A: 255}
	case "m", "magenta":
		return color.RGBA{R: 191, B: 191, A: 255}
	case "y", "yellow":
		return color.RGBA{R: 191, G: 191, A: 255}
	case "orange":
		return color.RGBA{R: 255, G: 165, A: 255}
	case "grey", "gray":
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return color.Black
}

// GetLabel returns the axis label for a given key
func GetLabel(key, unit string) string {
	var l string
	switch key {
	case "y":
		l = "y"
	case "u", "disp":
		l = "displacement"
	case "phi", "rot":
		l = "Cosserat rotation"
	case "m32", "couple":
		l = "couple stress"
	case "s21", "shear":
		l = "shear stress"
	case "stress":
		l = "stress"
	default:
		l = key
	}
	if unit != "" {
		l += " (" + unit + ")"
	}
	return l
}
