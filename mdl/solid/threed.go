// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// ThreedElast implements isotropic linear elasticity for solid (3D) problems
type ThreedElast struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient
}

// add model to factory
func init() {
	allocators["threed-elast"] = func() Model { return new(ThreedElast) }
}

// Init initialises model
func (o *ThreedElast) Init(ndim int, prms fun.Prms) (err error) {
	if ndim != 3 {
		return chk.Err("threed-elast models are only available for 3D analyses; ndim=%d is invalid", ndim)
	}
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		default:
			return chk.Err("threed-elast: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o ThreedElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 2.0000e+08},
		&fun.Prm{N: "nu", V: 0.3},
	}
}

// Nsig returns the number of stress/strain components
func (o ThreedElast) Nsig() int { return 6 }

// CalcD computes the 6x6 constitutive matrix; phi is ignored (isotropy).
// Shear rows use engineering strains, hence the G (not 2G) diagonal terms.
func (o ThreedElast) CalcD(D [][]float64, phi float64) (err error) {
	la.MatFill(D, 0)
	c := o.E / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	g := o.E / (2.0 * (1.0 + o.Nu))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				D[i][j] = c * (1.0 - o.Nu)
			} else {
				D[i][j] = c * o.Nu
			}
		}
		D[3+i][3+i] = g
	}
	return
}
