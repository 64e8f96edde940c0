// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_glide01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("glide01. Cosserat glide: constants and values at y=0")

	sol := NewCosseratGlide()
	io.Pforan("ω = %v\n", sol.Omega())
	chk.Float64(tst, "ω", 1e-15, sol.Omega(), 2.0)
	chk.Float64(tst, "ω (formula)", 1e-15, sol.Omega(), math.Sqrt(2*2.0*3.0/(0.6*(2.0+3.0))))

	φ, u, m32, σ21 := sol.Calc(0)
	chk.Float64(tst, "φ @ y=0", 1e-17, φ, 0)
	chk.Float64(tst, "u @ y=0", 1e-17, u, 0)
	chk.Float64(tst, "σ21 @ y=0", 1e-17, σ21, 0)
	chk.Float64(tst, "m32 @ y=0", 1e-15, m32, 2*sol.B*sol.Beta*sol.Omega())
	chk.Float64(tst, "m32 @ y=0 (value)", 1e-15, m32, 2.4)
}

func Test_glide02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("glide02. Cosserat glide: reference values at y=0.5")

	var sol CosseratGlide
	sol.Init(nil)

	φ, u, m32, σ21 := sol.Calc(0.5)
	io.Pforan("φ=%v u=%v m32=%v σ21=%v\n", φ, u, m32, σ21)
	chk.Float64(tst, "u @ y=0.5", 1e-8, u, -0.32584838088914625)
	chk.Float64(tst, "φ @ y=0.5", 1e-14, φ, 1.1752011936438014)
	chk.Float64(tst, "m32 @ y=0.5", 1e-14, m32, 3.703393523556585)
	chk.Float64(tst, "σ21 @ y=0.5", 1e-14, σ21, -5.640965729490246)
}

func Test_glide03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("glide03. Cosserat glide: symmetry")

	sol := NewCosseratGlide()
	for _, y := range []float64{0.01, 0.25, 0.5, 0.77, 1.04} {
		φp, up, mp, sp := sol.Calc(y)
		φm, um, mm, sm := sol.Calc(-y)
		chk.Float64(tst, io.Sf("φ(%g) odd", y), 1e-14, φm, -φp)
		chk.Float64(tst, io.Sf("σ21(%g) odd", y), 1e-13, sm, -sp)
		chk.Float64(tst, io.Sf("m32(%g) even", y), 1e-13, mm, mp)
		chk.Float64(tst, io.Sf("u(%g) even", y), 1e-14, um, up)
	}
}

func Test_glide04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("glide04. Cosserat glide: parameters and fields")

	var sol CosseratGlide
	sol.Init(dbf.Params{
		&dbf.P{N: "mu", V: 1.0},
		&dbf.P{N: "mu_c", V: 1.0},
		&dbf.P{N: "beta", V: 0.5},
		&dbf.P{N: "b", V: 2.0},
	})
	chk.Float64(tst, "ω", 1e-15, sol.Omega(), math.Sqrt(2.0))

	Y := utl.LinSpace(0, 1.04, 105)
	fld := sol.Fields(Y)
	chk.Int(tst, "len(Phi)", len(fld.Phi), 105)
	chk.Int(tst, "len(U)", len(fld.U), 105)
	chk.Int(tst, "len(M32)", len(fld.M32), 105)
	chk.Int(tst, "len(S21)", len(fld.S21), 105)
	for i, y := range Y {
		φ, u, m32, σ21 := sol.Calc(y)
		chk.Float64(tst, "φ", 1e-17, fld.Phi[i], φ)
		chk.Float64(tst, "u", 1e-17, fld.U[i], u)
		chk.Float64(tst, "m32", 1e-17, fld.M32[i], m32)
		chk.Float64(tst, "σ21", 1e-17, fld.S21[i], σ21)
	}
	chk.Float64(tst, "y[104]", 1e-15, fld.Y[104], 1.04)
}
