// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// OrthoElast implements plane-stress orthotropic linear elasticity. The
// material axes may be rotated by the per-element orientation angle phi
// given to CalcD; the rotation follows the engineering Voigt convention:
//
//   D_global = Tσ(-phi) * D_material * Tε(phi)
type OrthoElast struct {
	Ex   float64 // Young's modulus along the material x-axis
	Ey   float64 // Young's modulus along the material y-axis
	Nuxy float64 // major Poisson's coefficient
	Gxy  float64 // shear modulus
}

// add model to factory
func init() {
	allocators["ortho-elast"] = func() Model { return new(OrthoElast) }
}

// Init initialises model
func (o *OrthoElast) Init(ndim int, prms fun.Prms) (err error) {
	if ndim != 2 {
		return chk.Err("ortho-elast models are only available for 2D analyses; ndim=%d is invalid", ndim)
	}
	for _, p := range prms {
		switch p.N {
		case "Ex":
			o.Ex = p.V
		case "Ey":
			o.Ey = p.V
		case "nuxy":
			o.Nuxy = p.V
		case "Gxy":
			o.Gxy = p.V
		default:
			return chk.Err("ortho-elast: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OrthoElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "Ex", V: 1.5000e+08},
		&fun.Prm{N: "Ey", V: 1.0000e+07},
		&fun.Prm{N: "nuxy", V: 0.3},
		&fun.Prm{N: "Gxy", V: 5.0000e+06},
	}
}

// Nsig returns the number of stress/strain components
func (o OrthoElast) Nsig() int { return 3 }

// CalcD computes the 3x3 constitutive matrix in the global frame
func (o OrthoElast) CalcD(D [][]float64, phi float64) (err error) {

	// material frame matrix
	nuyx := o.Nuxy * o.Ey / o.Ex
	den := 1.0 - o.Nuxy*nuyx
	if den < 1e-14 {
		return chk.Err("ortho-elast: invalid parameters: 1 - nuxy*nuyx = %g must be positive", den)
	}
	d00 := o.Ex / den
	d01 := o.Nuxy * o.Ey / den
	d11 := o.Ey / den
	d22 := o.Gxy
	if phi == 0 {
		la.MatFill(D, 0)
		D[0][0], D[0][1] = d00, d01
		D[1][0], D[1][1] = d01, d11
		D[2][2] = d22
		return
	}

	// rotate to global frame
	c := math.Cos(phi)
	s := math.Sin(phi)
	Ts := [][]float64{ // inverse stress transformation: Tσ(-phi)
		{c * c, s * s, -2.0 * c * s},
		{s * s, c * c, 2.0 * c * s},
		{c * s, -c * s, c*c - s*s},
	}
	Te := [][]float64{ // strain transformation: Tε(phi)
		{c * c, s * s, c * s},
		{s * s, c * c, -c * s},
		{-2.0 * c * s, 2.0 * c * s, c*c - s*s},
	}
	Dm := [][]float64{
		{d00, d01, 0},
		{d01, d11, 0},
		{0, 0, d22},
	}
	DmTe := la.MatAlloc(3, 3)
	la.MatMul(DmTe, 1, Dm, Te)
	la.MatMul(D, 1, Ts, DmTe)
	return
}
