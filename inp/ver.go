// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a verification (.ver) file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// ColKey selects one column of the gold file
//  Name -- column name in header; takes precedence over Idx if not empty
//  Idx  -- column index
type ColKey struct {
	Name string `json:"name"` // name of column in header
	Idx  int    `json:"idx"`  // index of column
}

// ColsData holds the column keys of the four simulated fields
type ColsData struct {
	Couple ColKey `json:"couple"` // couple stress m32
	Disp   ColKey `json:"disp"`   // displacement
	Shear  ColKey `json:"shear"`  // shear stress σ21
	Rot    ColKey `json:"rot"`    // Cosserat rotation
}

// GridData defines the dense grid for analytical curves
type GridData struct {
	Ymin float64 `json:"ymin"` // first coordinate
	Ymax float64 `json:"ymax"` // last coordinate
	Npts int     `json:"npts"` // number of points
}

// SamplesData defines the coordinates of simulated samples
type SamplesData struct {
	X0 float64 `json:"x0"` // first coordinate
	Dx float64 `json:"dx"` // increment
	N  int     `json:"n"`  // number of samples
}

// Ver holds all verification data
type Ver struct {

	// input
	Desc      string      `json:"desc"`      // description of verification
	Gold      string      `json:"gold"`      // gold (reference) results file
	Nrows     int         `json:"nrows"`     // max number of data rows to read from gold file
	DirOut    string      `json:"dirout"`    // directory for output figures
	Prms      dbf.Params  `json:"prms"`      // material parameters
	Grid      GridData    `json:"grid"`      // grid for analytical solution
	Samples   SamplesData `json:"samples"`   // coordinates of simulated samples
	Columns   ColsData    `json:"columns"`   // columns in gold file
	FigDisp   string      `json:"figdisp"`   // filename of displacement figure
	FigStress string      `json:"figstress"` // filename of stress figure
	Report    string      `json:"report"`    // filename of comparison report; "" means no report

	// derived
	Key string // filename key; e.g. "glide" from "glide.ver"
}

// SetDefault sets default values corresponding to the MOOSE cosserat_glide test
func (o *Ver) SetDefault() {
	o.Desc = "Cosserat glide"
	o.Gold = "../../tests/static_deformations/gold/cosserat_glide_out_soln_0001.csv"
	o.Nrows = 11
	o.DirOut = "."
	o.Prms = nil
	o.Grid = GridData{Ymin: 0, Ymax: 1.04, Npts: 105}
	o.Samples = SamplesData{X0: 0, Dx: 0.1, N: 11}
	o.Columns = ColsData{
		Couple: ColKey{Idx: 0},
		Disp:   ColKey{Idx: 1},
		Shear:  ColKey{Idx: 3},
		Rot:    ColKey{Idx: 4},
	}
	o.FigDisp = "cosserat_glide_disp.pdf"
	o.FigStress = "cosserat_glide_stress.pdf"
	o.Report = ""
	o.Key = "cosserat_glide"
}

// DefaultVer returns verification data with default values
func DefaultVer() *Ver {
	o := new(Ver)
	o.SetDefault()
	return o
}

// ReadVer reads verification data from a .ver JSON file
//  Note: a relative gold file path is taken with respect to the directory of the .ver file
func ReadVer(verfilepath string) (o *Ver, err error) {

	// read file
	b, err := os.ReadFile(verfilepath)
	if err != nil {
		return nil, chk.Err("ReadVer: cannot read verification file %q:\n%v", verfilepath, err)
	}

	// decode
	o = DefaultVer()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadVer: cannot unmarshal verification file %q:\n%v", verfilepath, err)
	}

	// filename key
	o.Key = io.FnKey(filepath.Base(verfilepath))

	// paths
	dir := os.ExpandEnv(filepath.Dir(verfilepath))
	o.Gold = os.ExpandEnv(o.Gold)
	if !filepath.IsAbs(o.Gold) {
		o.Gold = filepath.Join(dir, o.Gold)
	}
	o.DirOut = os.ExpandEnv(o.DirOut)
	if o.DirOut == "" {
		o.DirOut = "."
	}
	return
}

// GridY returns the coordinates for the analytical curves
func (o Ver) GridY() []float64 {
	return utl.LinSpace(o.Grid.Ymin, o.Grid.Ymax, o.Grid.Npts)
}

// SampleX returns the coordinates of simulated samples
func (o Ver) SampleX() []float64 {
	X := make([]float64, o.Samples.N)
	for i := 0; i < o.Samples.N; i++ {
		X[i] = o.Samples.X0 + o.Samples.Dx*float64(i)
	}
	return X
}
