// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/alcoae/moose/ana"
	"github.com/cpmech/gosl/chk"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// figure size (matplotlib's default)
var (
	FigWidth  = 6.4 * vg.Inch
	FigHeight = 4.8 * vg.Inch
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Style Style     // style
}

// SplotDat stores all data for one figure
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of figure
	Xlbl   string       // x-axis label
	Ylbl   string       // y-axis label
	LegLoc string       // legend location; e.g. "center right", "upper left"
	Data   []*PltEntity // data and styles to be plotted
}

// NewSplot returns a new figure
func NewSplot(id, title, xlbl, ylbl string) *SplotDat {
	return &SplotDat{Id: id, Title: title, Xlbl: xlbl, Ylbl: ylbl, LegLoc: "center right"}
}

// Plot adds data to figure
func (o *SplotDat) Plot(alias string, X, Y []float64, sty Style) (err error) {
	if len(X) != len(Y) {
		return chk.Err("%s: lengths of x- and y-series are different. len(x)=%d, len(y)=%d", alias, len(X), len(Y))
	}
	o.Data = append(o.Data, &PltEntity{Alias: alias, X: X, Y: Y, Style: sty})
	return
}

// Build builds the gonum/plot structure
func (o SplotDat) Build() (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.Xlbl
	p.Y.Label.Text = o.Ylbl
	p.Add(plotter.NewGrid())
	nleg := 0
	for _, d := range o.Data {
		xy := make(plotter.XYs, len(d.X))
		for i := range d.X {
			xy[i].X, xy[i].Y = d.X[i], d.Y[i]
		}
		var thumbs []plot.Thumbnailer
		if d.Style.HasLine() {
			l, err := plotter.NewLine(xy)
			if err != nil {
				return nil, chk.Err("%s: cannot draw line:\n%v", d.Alias, err)
			}
			l.LineStyle = d.Style.LineStyle()
			p.Add(l)
			thumbs = append(thumbs, l)
		}
		if d.Style.M != "" {
			s, err := plotter.NewScatter(xy)
			if err != nil {
				return nil, chk.Err("%s: cannot draw markers:\n%v", d.Alias, err)
			}
			s.GlyphStyle = d.Style.GlyphStyle()
			p.Add(s)
			thumbs = append(thumbs, s)
		}
		lbl := d.Style.L
		if lbl == "" {
			lbl = d.Alias
		}
		if lbl != "" {
			p.Legend.Add(lbl, thumbs...)
			nleg++
		}
	}
	o.placeLegend(p, nleg)
	return
}

// Draw saves figure to dirout/fname; the format is given by the extension of fname (e.g. ".pdf")
func (o SplotDat) Draw(dirout, fname string) (err error) {
	p, err := o.Build()
	if err != nil {
		return
	}
	if dirout == "" {
		dirout = "."
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory for figures (%s):\n%v", dirout, err)
	}
	fn := filepath.Join(dirout, fname)
	err = p.Save(FigWidth, FigHeight, fn)
	if err != nil {
		return chk.Err("cannot save figure %q:\n%v", fn, err)
	}
	log.WithFields(log.Fields{
		"figure":   o.Id,
		"file":     fn,
		"entities": len(o.Data),
	}).Info("figure saved")
	return
}

// GlideFigures returns the displacement and stress figures of the Cosserat glide test
//  fld -- analytical solution along the dense grid
//  smp -- simulated samples
func GlideFigures(fld *ana.GlideFields, smp *Samples) (disp, stress *SplotDat, err error) {
	for _, v := range [][]float64{smp.Rot, smp.Disp, smp.Couple, smp.Shear} {
		if len(v) > len(smp.X) {
			return nil, nil, chk.Err("there are %d samples but only %d coordinates", len(v), len(smp.X))
		}
	}
	X := func(v []float64) []float64 { return smp.X[:len(v)] }

	disp = NewSplot("disp", "Cosserat glide", GetLabel("y", "m"), GetLabel("disp", "m"))
	disp.Plot("ana-rot", fld.Y, fld.Phi, Style{C: "k", Ls: "-", Lw: 1, L: "expected Cosserat rot"})
	disp.Plot("ana-disp", fld.Y, fld.U, Style{C: "r", Ls: "-", Lw: 1, L: "expected displacement"})
	disp.Plot("num-rot", X(smp.Rot), smp.Rot, Style{C: "k", M: "s", Ms: 10, L: "MOOSE Cosserat rot"})
	disp.Plot("num-disp", X(smp.Disp), smp.Disp, Style{C: "r", M: "^", Ms: 10, L: "MOOSE displacement"})

	stress = NewSplot("stress", "Cosserat glide", GetLabel("y", "m"), GetLabel("stress", "Pa"))
	stress.Plot("ana-couple", fld.Y, fld.M32, Style{C: "k", Ls: "-", Lw: 1, L: "expected couple stress"})
	stress.Plot("ana-shear", fld.Y, fld.S21, Style{C: "r", Ls: "-", Lw: 1, L: "expected shear stress"})
	stress.Plot("num-couple", X(smp.Couple), smp.Couple, Style{C: "k", M: "s", Ms: 10, L: "MOOSE couple stress"})
	stress.Plot("num-shear", X(smp.Shear), smp.Shear, Style{C: "r", M: "^", Ms: 10, L: "MOOSE shear stress"})
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// placeLegend sets legend position. gonum/plot only anchors legends at the top
// or bottom of the data area, thus "center" is approximated with an offset
func (o SplotDat) placeLegend(p *plot.Plot, nleg int) {
	switch o.LegLoc {
	case "upper left", "upper right", "best":
		p.Legend.Top = true
	case "center left", "center right", "center":
		rowh := p.Legend.TextStyle.Font.Size * 1.2
		p.Legend.YOffs = FigHeight*0.35 - vg.Length(nleg)*rowh/2
	}
	switch o.LegLoc {
	case "upper left", "lower left", "center left":
		p.Legend.Left = true
	}
	p.Legend.XOffs = -vg.Points(5)
}
