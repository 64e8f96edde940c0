// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/alcoae/moose/ana"
	"github.com/alcoae/moose/inp"
	"github.com/alcoae/moose/out"
	"github.com/cpmech/gosl/chk"
	log "github.com/sirupsen/logrus"
)

// run computes the analytical solution, loads the gold results and saves the
// displacement and stress figures. The comparison report never changes the outcome
func run(ver *inp.Ver, verbose bool) (err error) {

	// analytical solution
	var sol ana.CosseratGlide
	sol.Init(ver.Prms)
	fld := sol.Fields(ver.GridY())
	log.WithFields(log.Fields{
		"mu":    sol.Mu,
		"mu_c":  sol.MuC,
		"beta":  sol.Beta,
		"b":     sol.B,
		"omega": sol.Omega(),
		"npts":  len(fld.Y),
	}).Debug("analytical solution")

	// simulated results
	gold, err := out.ReadGold(ver.Gold, ver.Nrows)
	if err != nil {
		return
	}
	log.WithFields(log.Fields{
		"file": ver.Gold,
		"rows": len(gold.Rows),
	}).Info("gold results loaded")
	smp := &out.Samples{X: ver.SampleX()}
	for _, c := range []struct {
		key inp.ColKey
		dst *[]float64
	}{
		{ver.Columns.Rot, &smp.Rot},
		{ver.Columns.Disp, &smp.Disp},
		{ver.Columns.Couple, &smp.Couple},
		{ver.Columns.Shear, &smp.Shear},
	} {
		*c.dst, err = gold.Get(c.key)
		if err != nil {
			return
		}
	}

	// comparison
	if verbose || ver.Report != "" {
		rpt, err := out.Compare(&sol, smp)
		if err != nil {
			return err
		}
		rpt.Desc = ver.Desc
		rpt.Gold = ver.Gold
		if verbose {
			rpt.Print()
		}
		if ver.Report != "" {
			err = rpt.SaveYaml(ver.DirOut, ver.Report)
			if err != nil {
				return chk.Err("cannot save report:\n%v", err)
			}
		}
	}

	// figures
	disp, stress, err := out.GlideFigures(fld, smp)
	if err != nil {
		return
	}
	err = disp.Draw(ver.DirOut, ver.FigDisp)
	if err != nil {
		return
	}
	return stress.Draw(ver.DirOut, ver.FigStress)
}
