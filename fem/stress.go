// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Stresses recovers the stress vectors at the integration points of all
// cells for a displacement field u[nverts][ndim]:
//
//   σ = C * (D*u_e - eps0)
//
// Output layout: sig[ncells][nip][nsig]. This is an output quantity only;
// it is not part of the solve path.
func (o *Problem) Stresses(u [][]float64) (sig [][][]float64, err error) {
	ndim := o.Msh.Ndim
	nip := len(o.Shp.Ips)
	ue := make([]float64, o.Nu)
	eps := make([]float64, o.Nsig)
	sig = make([][][]float64, len(o.Msh.Cells))
	for j := range o.Msh.Cells {
		x := o.Msh.CoordsMatrix(j)
		err = o.Mdl.CalcD(o.cmat, o.phi(j))
		if err != nil {
			return nil, err
		}
		for i, I := range o.Umap[j] {
			ue[i] = u[I/ndim][I%ndim]
		}
		sig[j] = la.MatAlloc(nip, o.Nsig)
		for idx, ip := range o.Shp.Ips {
			err = o.Shp.CalcAtIp(x, ip, true)
			if err != nil {
				return nil, chk.Err("cell %d: cannot compute Jacobian:\n%v", j, err)
			}
			if o.Shp.J <= 0 {
				return nil, chk.Err("cell %d: Jacobian is not positive = %g; check vertex numbering", j, o.Shp.J)
			}
			o.strainOp(o.dop, x)
			la.MatVecMul(eps, 1, o.dop, ue) // ε := D * u_e
			if o.ExtStrain != nil {
				for k := 0; k < o.Nsig; k++ {
					eps[k] -= o.ExtStrain[j][k]
				}
			}
			la.MatVecMul(sig[j][idx], 1, o.cmat, eps) // σ := C * ε
		}
	}
	return
}

// NodalStresses extrapolates the integration point stresses of each cell to
// its own vertices (no averaging between cells). Output layout:
// sig[ncells][cellNverts][nsig].
func (o *Problem) NodalStresses(u [][]float64) (sig [][][]float64, err error) {
	sigIps, err := o.Stresses(u)
	if err != nil {
		return nil, err
	}
	nip := len(o.Shp.Ips)
	E := la.MatAlloc(o.Shp.Nverts, nip)
	err = o.Shp.Extrapolator(E)
	if err != nil {
		return nil, chk.Err("cannot compute extrapolation matrix:\n%v", err)
	}
	sig = make([][][]float64, len(o.Msh.Cells))
	for j := range o.Msh.Cells {
		sig[j] = la.MatAlloc(o.Shp.Nverts, o.Nsig)
		for m := 0; m < o.Shp.Nverts; m++ {
			for i := 0; i < nip; i++ {
				for k := 0; k < o.Nsig; k++ {
					sig[j][m][k] += E[m][i] * sigIps[j][i][k]
				}
			}
		}
	}
	return
}
