// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// PlaneElast implements isotropic linear elasticity for planar (2D) problems,
// either in the plane-stress or plane-strain regime
type PlaneElast struct {
	E       float64 // Young's modulus
	Nu      float64 // Poisson's coefficient
	Pstress bool    // plane-stress instead of plane-strain
}

// add model to factory
func init() {
	allocators["plane-elast"] = func() Model { return new(PlaneElast) }
}

// Init initialises model
func (o *PlaneElast) Init(ndim int, prms fun.Prms) (err error) {
	if ndim != 2 {
		return chk.Err("plane-elast models are only available for 2D analyses; ndim=%d is invalid", ndim)
	}
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "pstress":
			o.Pstress = p.V > 0
		default:
			return chk.Err("plane-elast: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PlaneElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 2.0000e+08},
		&fun.Prm{N: "nu", V: 0.3},
		&fun.Prm{N: "pstress", V: 1},
	}
}

// Nsig returns the number of stress/strain components
func (o PlaneElast) Nsig() int { return 3 }

// CalcD computes the 3x3 constitutive matrix; phi is ignored (isotropy)
func (o PlaneElast) CalcD(D [][]float64, phi float64) (err error) {
	la.MatFill(D, 0)
	if o.Pstress {
		c := o.E / (1.0 - o.Nu*o.Nu)
		D[0][0], D[0][1] = c, c*o.Nu
		D[1][0], D[1][1] = c*o.Nu, c
		D[2][2] = c * (1.0 - o.Nu) / 2.0
		return
	}
	c := o.E / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	D[0][0], D[0][1] = c*(1.0-o.Nu), c*o.Nu
	D[1][0], D[1][1] = c*o.Nu, c*(1.0-o.Nu)
	D[2][2] = c * (1.0 - 2.0*o.Nu) / 2.0
	return
}
