// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// elemK integrates the stiffness matrix K[nu][nu] of cell j:
//
//   K = Σip w * prop * detJ * tr(D) * C * D
//
// All inputs are explicit; nothing is read from mutable problem fields.
func (o *Problem) elemK(K [][]float64, j int, x [][]float64, prop, phi float64) (err error) {
	la.MatFill(K, 0)
	err = o.Mdl.CalcD(o.cmat, phi)
	if err != nil {
		return
	}
	for _, ip := range o.Shp.Ips {
		err = o.Shp.CalcAtIp(x, ip, true)
		if err != nil {
			return chk.Err("cell %d: cannot compute Jacobian:\n%v", j, err)
		}
		if o.Shp.J <= 0 {
			return chk.Err("cell %d: Jacobian is not positive = %g; check vertex numbering", j, o.Shp.J)
		}
		o.strainOp(o.dop, x)
		coef := ip.W * prop * o.Shp.J
		la.MatTrMulAdd3(K, coef, o.dop, o.cmat, o.dop) // K += coef * tr(D) * C * D
	}
	return
}

// elemF integrates the inelastic force vector f[nu] of cell j for a given
// eigenstrain eps0[nsig]:
//
//   f = Σip w * prop * detJ * tr(D) * C * eps0
func (o *Problem) elemF(f []float64, j int, x [][]float64, prop, phi float64, eps0 []float64) (err error) {
	la.VecFill(f, 0)
	err = o.Mdl.CalcD(o.cmat, phi)
	if err != nil {
		return
	}
	la.MatVecMul(o.sig, 1, o.cmat, eps0) // σ0 := C * eps0
	for _, ip := range o.Shp.Ips {
		err = o.Shp.CalcAtIp(x, ip, true)
		if err != nil {
			return chk.Err("cell %d: cannot compute Jacobian:\n%v", j, err)
		}
		if o.Shp.J <= 0 {
			return chk.Err("cell %d: Jacobian is not positive = %g; check vertex numbering", j, o.Shp.J)
		}
		o.strainOp(o.dop, x)
		coef := ip.W * prop * o.Shp.J
		la.MatTrVecMulAdd(f, coef, o.dop, o.sig) // f += coef * tr(D) * σ0
	}
	return
}

// Measure integrates the Jacobian determinant over cell j, yielding its
// length (truss), area (planar) or volume (solid). Section properties and
// material are not involved.
func (o *Problem) Measure(j int) (m float64, err error) {
	x := o.Msh.CoordsMatrix(j)
	for _, ip := range o.Shp.Ips {
		err = o.Shp.CalcAtIp(x, ip, true)
		if err != nil {
			return 0, chk.Err("cell %d: cannot compute Jacobian:\n%v", j, err)
		}
		if o.Shp.J <= 0 {
			return 0, chk.Err("cell %d: Jacobian is not positive = %g; check vertex numbering", j, o.Shp.J)
		}
		m += ip.W * o.Shp.J
	}
	return
}

// Measures returns the measures of all cells
func (o *Problem) Measures() (ms []float64, err error) {
	ms = make([]float64, len(o.Msh.Cells))
	for j := 0; j < len(o.Msh.Cells); j++ {
		ms[j], err = o.Measure(j)
		if err != nil {
			return nil, err
		}
	}
	return
}
