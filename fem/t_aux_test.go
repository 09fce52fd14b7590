// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// checkSymmetry checks K ≈ tr(K)
func checkSymmetry(tst *testing.T, K [][]float64, tol float64) {
	for i := 0; i < len(K); i++ {
		for j := i + 1; j < len(K); j++ {
			if diff := K[i][j] - K[j][i]; diff > tol || diff < -tol {
				tst.Errorf("K is not symmetric: K[%d][%d]-K[%d][%d] = %g\n", i, j, j, i, diff)
				return
			}
		}
	}
}

// checkRigidMode checks that a uniform translation produces no force and no
// strain energy for an unconstrained structure
func checkRigidMode(tst *testing.T, p *Problem, tol float64) {
	K, err := p.StiffnessMatrix(p.Props, p.Phi)
	if err != nil {
		tst.Errorf("StiffnessMatrix failed:\n%v", err)
		return
	}
	ndim := p.Msh.Ndim
	for i := 0; i < ndim; i++ {
		t := make([]float64, p.Ny)
		for n := 0; n < len(p.Msh.Verts); n++ {
			t[n*ndim+i] = 1.0
		}
		energy := 0.0
		for a := 0; a < p.Ny; a++ {
			row := 0.0
			for b := 0; b < p.Ny; b++ {
				row += K[a][b] * t[b]
			}
			if row > tol || row < -tol {
				tst.Errorf("K times translation along %d is nonzero at dof %d: %g\n", i, a, row)
				return
			}
			energy += t[a] * row
		}
		chk.Scalar(tst, io.Sf("energy of translation along %d", i), tol, energy, 0)
	}
}
