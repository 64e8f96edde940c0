// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/alcoae/moose/ana"
	"github.com/cpmech/gosl/chk"
	gio "github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// tolerances for EqualToTol
const (
	TolZero = 1e-10 // values smaller than this are taken as zero
	TolRel  = 1e-5  // max relative difference
)

// EqualToTol tells whether a and b are both nearly zero or nearly equal in the relative sense
func EqualToTol(a, b float64) bool {
	if math.Abs(a) < TolZero && math.Abs(b) < TolZero {
		return true
	}
	return math.Abs(a-b) < TolRel*math.Abs(a+b)
}

// Samples holds the simulated values of the four glide fields
type Samples struct {
	X      []float64 // coordinates
	Rot    []float64 // Cosserat rotation
	Disp   []float64 // displacement
	Couple []float64 // couple stress
	Shear  []float64 // shear stress
}

// FieldReport holds the comparison results of one field
type FieldReport struct {
	Name    string  `yaml:"name"`    // field name
	Npts    int     `yaml:"npts"`    // number of samples
	Nok     int     `yaml:"nok"`     // number of samples satisfying EqualToTol
	MaxAbs  float64 `yaml:"maxabs"`  // max absolute difference
	MaxRel  float64 `yaml:"maxrel"`  // max relative difference (skipping near zeros)
	WorstAt float64 `yaml:"worstat"` // coordinate of max absolute difference
}

// Report holds the comparison between analytical solution and simulated samples
type Report struct {
	Desc   string         `yaml:"desc"`   // description
	Gold   string         `yaml:"gold"`   // gold filename
	Fields []*FieldReport `yaml:"fields"` // results for each field
}

// Compare compares simulated samples against the analytical solution
func Compare(sol *ana.CosseratGlide, smp *Samples) (o *Report, err error) {
	for _, v := range [][]float64{smp.Rot, smp.Disp, smp.Couple, smp.Shear} {
		if len(v) > len(smp.X) {
			return nil, chk.Err("Compare: there are %d samples but only %d coordinates", len(v), len(smp.X))
		}
	}
	o = new(Report)
	fields := []struct {
		name string
		vals []float64
	}{
		{"rot", smp.Rot},
		{"disp", smp.Disp},
		{"couple", smp.Couple},
		{"shear", smp.Shear},
	}
	for k, f := range fields {
		r := &FieldReport{Name: f.name, Npts: len(f.vals)}
		for i, num := range f.vals {
			x := smp.X[i]
			var res [4]float64
			res[0], res[1], res[2], res[3] = sol.Calc(x)
			a := res[k]
			if EqualToTol(a, num) {
				r.Nok++
			}
			dif := math.Abs(a - num)
			if dif > r.MaxAbs || i == 0 {
				r.MaxAbs = dif
				r.WorstAt = x
			}
			if math.Abs(a) >= TolZero {
				r.MaxRel = math.Max(r.MaxRel, dif/math.Abs(a))
			}
		}
		o.Fields = append(o.Fields, r)
	}
	return
}

// Print prints a summary table
func (o Report) Print() {
	gio.Pf("%-8s%6s%6s%23s%23s%12s\n", "field", "npts", "nok", "max|ana-num|", "max rel", "worst @ y")
	for _, f := range o.Fields {
		l := gio.Sf("%-8s%6d%6d%23.15e%23.15e%12g\n", f.Name, f.Npts, f.Nok, f.MaxAbs, f.MaxRel, f.WorstAt)
		if f.Nok == f.Npts {
			gio.Pfgreen("%s", l)
		} else {
			gio.Pforan("%s", l)
		}
	}
}

// WriteYaml writes the report in YAML format
func (o Report) WriteYaml(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(o); err != nil {
		return err
	}
	return enc.Close()
}

// SaveYaml saves the report to dirout/fn
func (o Report) SaveYaml(dirout, fn string) (err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return
	}
	f, err := os.Create(filepath.Join(dirout, fn))
	if err != nil {
		return
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	return o.WriteYaml(f)
}
