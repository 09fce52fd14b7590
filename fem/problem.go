// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/linfem/mdl/solid"
	"github.com/cpmech/linfem/shp"
)

// Family selects one structural family. All cells of a problem belong to a
// single family; the variant within the family (e.g. tri3 vs qua8) comes
// from the number of vertices of the first cell.
type Family int

const (
	Truss  Family = iota + 1 // axial bars in 1D, 2D or 3D space
	Planar                   // 2D continuum (plane stress/strain)
	Solid                    // 3D continuum
)

// String returns the name of this family
func (o Family) String() string {
	switch o {
	case Truss:
		return "truss"
	case Planar:
		return "planar"
	case Solid:
		return "solid"
	}
	return "unknown"
}

// Problem holds one linear static FEM problem: the fixed topology and
// operators, the current field values and the boundary conditions.
//
// Topology (mesh, family, DOF maps) is fixed at construction. Props, Phi and
// ExtStrain may be updated between calls to Solve; the engine recomputes
// stiffness and force from scratch on every call and caches nothing, so each
// solve is a pure function of the current field values. A Problem must not
// be shared by concurrent solves without external synchronisation.
type Problem struct {

	// topology and operators (fixed at construction)
	Fam  Family      // structural family
	Msh  *Mesh       // the mesh
	Shp  *shp.Shape  // element shape structure
	Mdl  solid.Model // constitutive model
	Nsig int         // number of stress/strain components (1, 3 or 6)
	Nu   int         // number of DOFs per element
	Ny   int         // total number of DOFs
	Umap [][]int     // [ncells][nu] local to global DOF maps

	// current field values (mutable between solves)
	Props     []float64   // [ncells] section property: area (truss), thickness (planar), unity (solid)
	Phi       []float64   // [ncells] material orientation angles; nil means zero
	ExtStrain [][]float64 // [ncells][nsig] inelastic (eigen) strains; nil means zero

	// boundary conditions
	Forces [][]float64 // [nverts][ndim] external nodal forces
	Disps  [][]float64 // [nverts][ndim] prescribed displacements (where Fixed)
	Fixed  [][]bool    // [nverts][ndim] constraint flags; true means displacement prescribed

	// scratchpad. computed @ each ip
	dop  [][]float64 // [nsig][nu] strain-displacement operator
	cmat [][]float64 // [nsig][nsig] constitutive matrix
	sig  []float64   // [nsig] stress vector
}

// NewTruss returns a problem over bar elements (2 or 3 vertices per cell)
func NewTruss(msh *Mesh, mdl solid.Model) (o *Problem, err error) {
	if msh.Ndim < 1 || msh.Ndim > 3 {
		return nil, chk.Err("truss problems require a 1D, 2D or 3D mesh; ndim=%d is invalid", msh.Ndim)
	}
	return newProblem(Truss, 1, 1, msh, mdl)
}

// NewPlanar returns a problem over 2D continuum elements (3, 4, 6 or 8
// vertices per cell)
func NewPlanar(msh *Mesh, mdl solid.Model) (o *Problem, err error) {
	if msh.Ndim != 2 {
		return nil, chk.Err("planar problems require a 2D mesh; ndim=%d is invalid", msh.Ndim)
	}
	return newProblem(Planar, 2, 3, msh, mdl)
}

// NewSolid returns a problem over 3D continuum elements (4 or 8 vertices
// per cell)
func NewSolid(msh *Mesh, mdl solid.Model) (o *Problem, err error) {
	if msh.Ndim != 3 {
		return nil, chk.Err("solid problems require a 3D mesh; ndim=%d is invalid", msh.Ndim)
	}
	return newProblem(Solid, 3, 6, msh, mdl)
}

// newProblem builds the common problem structure for all families
func newProblem(fam Family, gndim, nsig int, msh *Mesh, mdl solid.Model) (o *Problem, err error) {

	// check input
	err = msh.Check()
	if err != nil {
		return
	}
	if mdl.Nsig() != nsig {
		return nil, chk.Err("constitutive model with %d components cannot be used in %v problems (%d components)", mdl.Nsig(), fam, nsig)
	}

	// find element variant from the number of vertices of the first cell
	cellNverts := len(msh.Cells[0])
	shape := shp.GetByNverts(gndim, cellNverts)
	if shape == nil {
		return nil, chk.Err("%v elements with %d vertices are not available", fam, cellNverts)
	}

	// basic data
	o = new(Problem)
	o.Fam = fam
	o.Msh = msh
	o.Shp = shape
	o.Mdl = mdl
	o.Nsig = nsig
	o.Nu = msh.Ndim * cellNverts
	o.Ny = msh.Ndim * len(msh.Verts)

	// global DOF index maps
	ncells := len(msh.Cells)
	o.Umap = make([][]int, ncells)
	for j, cell := range msh.Cells {
		o.Umap[j] = make([]int, o.Nu)
		for m, v := range cell {
			for i := 0; i < msh.Ndim; i++ {
				o.Umap[j][m*msh.Ndim+i] = v*msh.Ndim + i
			}
		}
	}

	// default field values
	o.Props = make([]float64, ncells)
	for j := 0; j < ncells; j++ {
		o.Props[j] = 1.0
	}

	// boundary conditions
	nverts := len(msh.Verts)
	o.Forces = la.MatAlloc(nverts, msh.Ndim)
	o.Disps = la.MatAlloc(nverts, msh.Ndim)
	o.Fixed = make([][]bool, nverts)
	for i := 0; i < nverts; i++ {
		o.Fixed[i] = make([]bool, msh.Ndim)
	}

	// scratchpad
	o.dop = la.MatAlloc(nsig, o.Nu)
	o.cmat = la.MatAlloc(nsig, nsig)
	o.sig = make([]float64, nsig)
	return
}

// phi returns the orientation angle of cell j from the mutable Phi field
func (o *Problem) phi(j int) float64 {
	if o.Phi == nil {
		return 0
	}
	return o.Phi[j]
}
