// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// StiffnessMatrix assembles the global stiffness matrix K[ny][ny] from the
// given section properties and orientation angles. A fresh matrix is
// allocated on every call; previously returned matrices are never mutated.
func (o *Problem) StiffnessMatrix(props, phi []float64) (K [][]float64, err error) {
	if len(props) != len(o.Msh.Cells) {
		return nil, chk.Err("props has %d values; need one per cell (%d)", len(props), len(o.Msh.Cells))
	}
	if phi != nil && len(phi) != len(o.Msh.Cells) {
		return nil, chk.Err("phi has %d values; need one per cell (%d)", len(phi), len(o.Msh.Cells))
	}
	K = la.MatAlloc(o.Ny, o.Ny)
	k := la.MatAlloc(o.Nu, o.Nu)
	for j := range o.Msh.Cells {
		p := 0.0
		if phi != nil {
			p = phi[j]
		}
		err = o.elemK(k, j, o.Msh.CoordsMatrix(j), props[j], p)
		if err != nil {
			return nil, err
		}
		for i, I := range o.Umap[j] {
			for l, L := range o.Umap[j] {
				K[I][L] += k[i][l]
			}
		}
	}
	return
}

// InelasticForce assembles the global force vector F[ny] due to the given
// per-cell eigenstrains. A nil extStrain yields a zero vector. As with
// StiffnessMatrix, a fresh vector is allocated on every call.
func (o *Problem) InelasticForce(props []float64, phi []float64, extStrain [][]float64) (F []float64, err error) {
	F = make([]float64, o.Ny)
	if extStrain == nil {
		return
	}
	if len(extStrain) != len(o.Msh.Cells) {
		return nil, chk.Err("extStrain has %d values; need one per cell (%d)", len(extStrain), len(o.Msh.Cells))
	}
	if len(props) != len(o.Msh.Cells) {
		return nil, chk.Err("props has %d values; need one per cell (%d)", len(props), len(o.Msh.Cells))
	}
	if phi != nil && len(phi) != len(o.Msh.Cells) {
		return nil, chk.Err("phi has %d values; need one per cell (%d)", len(phi), len(o.Msh.Cells))
	}
	f := make([]float64, o.Nu)
	for j := range o.Msh.Cells {
		p := 0.0
		if phi != nil {
			p = phi[j]
		}
		err = o.elemF(f, j, o.Msh.CoordsMatrix(j), props[j], p, extStrain[j])
		if err != nil {
			return nil, err
		}
		for i, I := range o.Umap[j] {
			F[I] += f[i]
		}
	}
	return
}
