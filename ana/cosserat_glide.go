// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// CosseratGlide computes the solution to the Cosserat glide problem: a layer of
// Cosserat (micropolar) elastic material under shearing, with fields depending
// on the vertical coordinate y only
//
//     y ^  ---> ---> ---> --->
//       |  +-----------------+
//       |  |   μ, μc, β, b   |      φ   = b・sinh(ω・y)
//       |  |                 |      u   = 2・μc・b・(1 - cosh(ω・y)) / (ω・(μ + μc))
//       |  +-----------------+      m32 = 2・b・β・ω・cosh(ω・y)
//       o-------> x                 σ21 = -4・μ・μc / (μ + μc)・b・sinh(ω・y)
//
//  with ω = sqrt(2・μ・μc / (β・(μ + μc)))
type CosseratGlide struct {
	// input
	Mu   float64 // shear modulus μ
	MuC  float64 // Cosserat coupling modulus μc
	Beta float64 // bending parameter β
	B    float64 // amplitude of micro-rotation b

	// derived
	ω float64 // characteristic wave number
}

// GlideFields holds the analytical fields evaluated along y
type GlideFields struct {
	Y   []float64 // coordinates
	Phi []float64 // micro-rotation φ
	U   []float64 // displacement u
	M32 []float64 // couple stress m32
	S21 []float64 // shear stress σ21
}

// NewCosseratGlide returns a solution initialised with default parameters
func NewCosseratGlide() *CosseratGlide {
	o := new(CosseratGlide)
	o.Init(nil)
	return o
}

// Init initialises this structure
func (o *CosseratGlide) Init(prms dbf.Params) {

	// default values
	o.Mu = 2.0
	o.MuC = 3.0
	o.Beta = 0.6
	o.B = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.Mu = p.V
		case "mu_c":
			o.MuC = p.V
		case "beta":
			o.Beta = p.V
		case "b":
			o.B = p.V
		}
	}

	// derived
	o.ω = math.Sqrt(2 * o.Mu * o.MuC / o.Beta / (o.Mu + o.MuC))
}

// Omega returns the characteristic wave number ω
func (o CosseratGlide) Omega() float64 {
	return o.ω
}

// Calc computes micro-rotation, displacement, couple stress and shear stress at y
func (o CosseratGlide) Calc(y float64) (φ, u, m32, σ21 float64) {
	sh, ch := math.Sinh(o.ω*y), math.Cosh(o.ω*y)
	φ = o.B * sh
	u = 2 * o.MuC * o.B * (1 - ch) / o.ω / (o.Mu + o.MuC)
	m32 = 2 * o.B * o.Beta * o.ω * ch
	σ21 = -4 * o.Mu * o.MuC / (o.Mu + o.MuC) * o.B * sh
	return
}

// Fields evaluates all fields at each coordinate in Y
func (o CosseratGlide) Fields(Y []float64) (res *GlideFields) {
	n := len(Y)
	res = &GlideFields{
		Y:   Y,
		Phi: make([]float64, n),
		U:   make([]float64, n),
		M32: make([]float64, n),
		S21: make([]float64, n),
	}
	for i, y := range Y {
		res.Phi[i], res.U[i], res.M32[i], res.S21[i] = o.Calc(y)
	}
	return
}
