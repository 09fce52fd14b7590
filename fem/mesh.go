// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the assembly and solution of linear static
// finite element problems over truss, planar and solid meshes
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Mesh holds the vertices and cells of one finite element mesh. All cells
// must have the same number of vertices; the number of vertices of the
// first cell selects the element family variant.
type Mesh struct {
	Ndim  int         // space dimension
	Verts [][]float64 // [nverts][ndim] vertex coordinates
	Cells [][]int     // [ncells][cellNverts] connectivity
}

// NewMesh returns a mesh with the space dimension taken from the first vertex
func NewMesh(verts [][]float64, cells [][]int) (o *Mesh, err error) {
	if len(verts) < 1 || len(cells) < 1 {
		return nil, chk.Err("mesh must have at least one vertex and one cell")
	}
	o = &Mesh{Ndim: len(verts[0]), Verts: verts, Cells: cells}
	err = o.Check()
	if err != nil {
		return nil, err
	}
	return
}

// Check verifies coordinate arities, connectivity bounds and that all cells
// share the arity of the first cell (mixed-arity meshes are unsupported)
func (o *Mesh) Check() (err error) {
	for i, x := range o.Verts {
		if len(x) != o.Ndim {
			return chk.Err("vertex %d has %d coordinates; mesh is %dD", i, len(x), o.Ndim)
		}
	}
	cellNverts := len(o.Cells[0])
	for j, cell := range o.Cells {
		if len(cell) != cellNverts {
			return chk.Err("cell %d has %d vertices; all cells must have %d vertices as cell 0", j, len(cell), cellNverts)
		}
		for _, v := range cell {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d refers to inexistent vertex %d", j, v)
			}
		}
	}
	return
}

// CoordsMatrix returns the coordinates matrix x[ndim][cellNverts] of cell j
func (o *Mesh) CoordsMatrix(j int) (x [][]float64) {
	cell := o.Cells[j]
	x = la.MatAlloc(o.Ndim, len(cell))
	for i := 0; i < o.Ndim; i++ {
		for m, v := range cell {
			x[i][m] = o.Verts[v][i]
		}
	}
	return
}
