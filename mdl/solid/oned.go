// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// OnedElast implements the linear elastic model for 1D (truss/rod) elements
type OnedElast struct {
	E float64 // Young's modulus
}

// add model to factory
func init() {
	allocators["oned-elast"] = func() Model { return new(OnedElast) }
}

// Init initialises model
func (o *OnedElast) Init(ndim int, prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		default:
			return chk.Err("oned-elast: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 2.0000e+08},
	}
}

// Nsig returns the number of stress/strain components
func (o OnedElast) Nsig() int { return 1 }

// CalcD computes the 1x1 constitutive matrix; phi is ignored
func (o OnedElast) CalcD(D [][]float64, phi float64) (err error) {
	D[0][0] = o.E
	return
}
