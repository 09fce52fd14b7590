// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// strainOp fills D[nsig][nu], the operator mapping nodal displacements to the
// strain vector at the current integration point. It must be called right
// after Shp.CalcAtIp so that the Cartesian gradients in the shape scratchpad
// correspond to that point.
//
// Voigt ordering (shared with mdl/solid): (εxx) for trusses;
// (εxx, εyy, γxy) for planar; (εxx, εyy, εzz, γyz, γzx, γxy) for solids,
// with engineering shear strains.
func (o *Problem) strainOp(D [][]float64, x [][]float64) {
	ndim := o.Msh.Ndim
	nverts := o.Shp.Nverts
	la.MatFill(D, 0)
	switch o.Fam {

	case Truss:
		// direction cosines from the two end vertices
		c := make([]float64, ndim)
		L := 0.0
		for i := 0; i < ndim; i++ {
			c[i] = x[i][1] - x[i][0]
			L += c[i] * c[i]
		}
		L = math.Sqrt(L)
		for i := 0; i < ndim; i++ {
			c[i] /= L
		}
		// single row: axial strain from the projected gradient
		for m := 0; m < nverts; m++ {
			for i := 0; i < ndim; i++ {
				D[0][m*ndim+i] = o.Shp.Gvec[m] * c[i]
			}
		}

	case Planar:
		G := o.Shp.G
		for m := 0; m < nverts; m++ {
			D[0][m*2] = G[m][0]
			D[1][m*2+1] = G[m][1]
			D[2][m*2] = G[m][1]
			D[2][m*2+1] = G[m][0]
		}

	case Solid:
		G := o.Shp.G
		for m := 0; m < nverts; m++ {
			D[0][m*3] = G[m][0]
			D[1][m*3+1] = G[m][1]
			D[2][m*3+2] = G[m][2]
			D[3][m*3+1] = G[m][2] // γyz = dv/dz + dw/dy
			D[3][m*3+2] = G[m][1]
			D[4][m*3] = G[m][2] // γzx = du/dz + dw/dx
			D[4][m*3+2] = G[m][0]
			D[5][m*3] = G[m][1] // γxy = du/dy + dv/dx
			D[5][m*3+1] = G[m][0]
		}
	}
}
