// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements linear elastic constitutive models for solids.
//
// All models use the engineering Voigt convention shared with package fem:
//
//   1D (nsig=1):  (εxx)
//   2D (nsig=3):  (εxx, εyy, γxy)
//   3D (nsig=6):  (εxx, εyy, εzz, γyz, γzx, γxy)
//
// with engineering (doubled) shear strains. The constitutive matrix D maps
// the strain vector to the stress vector in the same ordering. Symmetry and
// positive semi-definiteness of D are the model's responsibility and are not
// validated by the engine.
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines the interface for linear elastic constitutive models
type Model interface {
	Init(ndim int, prms fun.Prms) error     // initialises model
	GetPrms() fun.Prms                      // gets (an example) of parameters
	Nsig() int                              // number of stress/strain components
	CalcD(D [][]float64, phi float64) error // computes constitutive matrix for material orientation phi [rad]
}

// New returns a new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
