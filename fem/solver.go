// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Solve computes the equilibrium displacement and force fields for the
// current field values and boundary conditions:
//
//  1. assemble K and the inelastic force F
//  2. partition DOFs into constrained (Fixed) and free sets
//  3. reduce:  f_red = (Forces + F - K[:,con]*Disps[con])[free]
//  4. solve the dense reduced system
//  5. reconstruct u and compute f = K*u (reactions at constrained DOFs)
//
// Both fields are returned in vertex-by-dimension layout [nverts][ndim].
// A zero reduced load yields the zero solution without factorising, so an
// unconstrained and unloaded structure solves trivially. Otherwise a singular
// reduced system, a non-positive Jacobian or inconsistent inputs abort the
// solve with an error; there is no partial result. Solve holds no
// state across calls: it may be called repeatedly after mutating Props, Phi,
// ExtStrain or the boundary conditions.
func (o *Problem) Solve() (u, f [][]float64, err error) {

	// global stiffness and inelastic force from the current field values
	K, err := o.StiffnessMatrix(o.Props, o.Phi)
	if err != nil {
		return nil, nil, err
	}
	F, err := o.InelasticForce(o.Props, o.Phi, o.ExtStrain)
	if err != nil {
		return nil, nil, err
	}

	// partition DOFs
	ndim := o.Msh.Ndim
	var con, free []int
	for n := range o.Fixed {
		for i := 0; i < ndim; i++ {
			if o.Fixed[n][i] {
				con = append(con, n*ndim+i)
			} else {
				free = append(free, n*ndim+i)
			}
		}
	}

	// reduced load and stiffness
	nf := len(free)
	fred := make([]float64, nf)
	Kred := la.MatAlloc(nf, nf)
	for a, A := range free {
		v := o.Forces[A/ndim][A%ndim] + F[A]
		for _, B := range con {
			v -= K[A][B] * o.Disps[B/ndim][B%ndim]
		}
		fred[a] = v
		for b, B := range free {
			Kred[a][b] = K[A][B]
		}
	}

	// solve reduced system. a zero reduced load has the zero solution for
	// any structure, including an unconstrained one
	ured := make([]float64, nf)
	if nf > 0 && la.VecNorm(fred) > 0 {
		Kinv := la.MatAlloc(nf, nf)
		err = la.MatInvG(Kinv, Kred, 1e-10)
		if err != nil {
			return nil, nil, chk.Err("reduced stiffness system is singular or cannot be solved:\n%v", err)
		}
		// Kinv*Kred equals the identity iff Kred has full rank; the
		// generalised inverse of a rank deficient system projects instead
		P := la.MatAlloc(nf, nf)
		la.MatMul(P, 1, Kinv, Kred)
		for a := 0; a < nf; a++ {
			P[a][a] -= 1.0
			for b := 0; b < nf; b++ {
				if math.Abs(P[a][b]) > 1e-8 {
					return nil, nil, chk.Err("reduced stiffness system is singular: structure has unconstrained rigid body modes")
				}
			}
		}
		la.MatVecMul(ured, 1, Kinv, fred)
	}

	// reconstruct full displacement vector
	uv := make([]float64, o.Ny)
	for _, B := range con {
		uv[B] = o.Disps[B/ndim][B%ndim]
	}
	for a, A := range free {
		uv[A] = ured[a]
	}

	// full force vector: reactions at constrained DOFs, applied loads elsewhere
	fv := make([]float64, o.Ny)
	la.MatVecMul(fv, 1, K, uv)

	// reshape to vertex-by-dimension layout
	nverts := len(o.Msh.Verts)
	u = la.MatAlloc(nverts, ndim)
	f = la.MatAlloc(nverts, ndim)
	for n := 0; n < nverts; n++ {
		for i := 0; i < ndim; i++ {
			u[n][i] = uv[n*ndim+i]
			f[n][i] = fv[n*ndim+i]
		}
	}
	return
}
