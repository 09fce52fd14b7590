// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/linfem/mdl/solid"
)

// newSolidModel returns an initialised 3D isotropic elastic model
func newSolidModel(tst *testing.T, E, nu float64) solid.Model {
	mdl, err := solid.New("threed-elast")
	if err != nil {
		tst.Fatalf("cannot allocate model:\n%v", err)
	}
	err = mdl.Init(3, fun.Prms{&fun.Prm{N: "E", V: E}, &fun.Prm{N: "nu", V: nu}})
	if err != nil {
		tst.Fatalf("cannot initialise model:\n%v", err)
	}
	return mdl
}

// unitCube returns the mesh of a single hex8 unit cube
func unitCube(tst *testing.T) *Mesh {
	msh, err := NewMesh(
		[][]float64{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
		[][]int{{0, 1, 2, 3, 4, 5, 6, 7}},
	)
	if err != nil {
		tst.Fatalf("NewMesh failed:\n%v", err)
	}
	return msh
}

func Test_solid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid01. hex8 unit cube under uniaxial tension")

	E, nu, sig := 1000.0, 0.3, 4.0
	msh := unitCube(tst)
	p, err := NewSolid(msh, newSolidModel(tst, E, nu))
	if err != nil {
		tst.Errorf("NewSolid failed:\n%v", err)
		return
	}

	// symmetry planes: x=0 fixes ux, y=0 fixes uy, z=0 fixes uz
	for _, n := range []int{0, 3, 4, 7} {
		p.Fixed[n][0] = true
	}
	for _, n := range []int{0, 1, 4, 5} {
		p.Fixed[n][1] = true
	}
	for _, n := range []int{0, 1, 2, 3} {
		p.Fixed[n][2] = true
	}

	// consistent loads on the top face
	for _, n := range []int{4, 5, 6, 7} {
		p.Forces[n][2] = sig / 4.0
	}

	u, f, err := p.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	io.Pforan("u = %v\n", u)

	// uniform strain state
	for _, n := range []int{4, 5, 6, 7} {
		chk.Scalar(tst, io.Sf("u%dz", n), 1e-12, u[n][2], sig/E)
	}
	for _, n := range []int{1, 2, 5, 6} {
		chk.Scalar(tst, io.Sf("u%dx", n), 1e-12, u[n][0], -nu*sig/E)
	}

	// reaction balance on the bottom face
	sumRz := f[0][2] + f[1][2] + f[2][2] + f[3][2]
	chk.Scalar(tst, "ΣRz", 1e-11, sumRz, -sig)

	// recovered stresses are uniform
	sigIps, err := p.Stresses(u)
	if err != nil {
		tst.Errorf("Stresses failed:\n%v", err)
		return
	}
	for _, s := range sigIps[0] {
		chk.Vector(tst, "σ @ ip", 1e-10, s, []float64{0, 0, sig, 0, 0, 0})
	}

	// volume and stiffness properties
	vols, err := p.Measures()
	if err != nil {
		tst.Errorf("Measures failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "volume", 1e-14, vols[0], 1.0)
	K, err := p.StiffnessMatrix(p.Props, nil)
	if err != nil {
		tst.Errorf("StiffnessMatrix failed:\n%v", err)
		return
	}
	checkSymmetry(tst, K, 1e-10)
	checkRigidMode(tst, p, 1e-10)
}

func Test_solid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid02. tet4 trivial solve and measure")

	msh, err := NewMesh(
		[][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[][]int{{0, 1, 2, 3}},
	)
	if err != nil {
		tst.Errorf("NewMesh failed:\n%v", err)
		return
	}
	p, err := NewSolid(msh, newSolidModel(tst, 1000.0, 0.3))
	if err != nil {
		tst.Errorf("NewSolid failed:\n%v", err)
		return
	}

	// statically determinate support, no loads: all fields are exactly zero
	p.Fixed[0][0], p.Fixed[0][1], p.Fixed[0][2] = true, true, true
	p.Fixed[1][1], p.Fixed[1][2] = true, true
	p.Fixed[2][2] = true

	u, f, err := p.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	for n := 0; n < 4; n++ {
		chk.Vector(tst, io.Sf("u%d", n), 1e-15, u[n], []float64{0, 0, 0})
		chk.Vector(tst, io.Sf("f%d", n), 1e-15, f[n], []float64{0, 0, 0})
	}

	// volume of the reference tetrahedron
	vol, err := p.Measure(0)
	if err != nil {
		tst.Errorf("Measure failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "volume", 1e-15, vol, 1.0/6.0)

	// swapping two vertices inverts the Jacobian
	mshBad, err := NewMesh(
		[][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[][]int{{1, 0, 2, 3}},
	)
	if err != nil {
		tst.Errorf("NewMesh failed:\n%v", err)
		return
	}
	pBad, err := NewSolid(mshBad, newSolidModel(tst, 1000.0, 0.3))
	if err != nil {
		tst.Errorf("NewSolid failed:\n%v", err)
		return
	}
	if _, err := pBad.StiffnessMatrix(pBad.Props, nil); err == nil {
		tst.Errorf("stiffness with inverted tetrahedron must fail\n")
		return
	} else {
		io.Pf("OK: %v\n", err)
	}
}

func Test_solid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid03. eigenstrain expansion of a cube")

	E, nu, eps0 := 1000.0, 0.3, 0.002
	msh := unitCube(tst)
	p, err := NewSolid(msh, newSolidModel(tst, E, nu))
	if err != nil {
		tst.Errorf("NewSolid failed:\n%v", err)
		return
	}
	p.ExtStrain = [][]float64{{eps0, eps0, eps0, 0, 0, 0}}

	// minimal supports allowing free expansion
	for _, n := range []int{0, 3, 4, 7} {
		p.Fixed[n][0] = true
	}
	for _, n := range []int{0, 1, 4, 5} {
		p.Fixed[n][1] = true
	}
	for _, n := range []int{0, 1, 2, 3} {
		p.Fixed[n][2] = true
	}

	u, _, err := p.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	for _, n := range []int{4, 5, 6, 7} {
		chk.Scalar(tst, io.Sf("u%dz", n), 1e-12, u[n][2], eps0)
	}
	for _, n := range []int{1, 2, 5, 6} {
		chk.Scalar(tst, io.Sf("u%dx", n), 1e-12, u[n][0], eps0)
	}

	// free expansion is stress free
	sigIps, err := p.Stresses(u)
	if err != nil {
		tst.Errorf("Stresses failed:\n%v", err)
		return
	}
	for _, s := range sigIps[0] {
		chk.Vector(tst, "σ @ ip", 1e-10, s, []float64{0, 0, 0, 0, 0, 0})
	}
}
