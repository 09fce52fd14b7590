// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_models01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models01. database and initialisation")

	if _, err := New("unknown-model"); err == nil {
		tst.Errorf("allocation of unknown model must fail\n")
		return
	}

	for _, name := range []string{"oned-elast", "plane-elast", "ortho-elast", "threed-elast"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("cannot allocate %q:\n%v", name, err)
			return
		}
		ndim := 2
		switch name {
		case "oned-elast":
			ndim = 1
		case "threed-elast":
			ndim = 3
		}
		err = mdl.Init(ndim, mdl.GetPrms())
		if err != nil {
			tst.Errorf("cannot initialise %q:\n%v", name, err)
			return
		}
	}
}

func Test_models02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models02. plane stress/strain matrices")

	E, nu := 1000.0, 0.25
	prms := fun.Prms{
		&fun.Prm{N: "E", V: E},
		&fun.Prm{N: "nu", V: nu},
		&fun.Prm{N: "pstress", V: 1},
	}

	var psMdl PlaneElast
	err := psMdl.Init(2, prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	D := la.MatAlloc(3, 3)
	psMdl.CalcD(D, 0)
	c := E / (1.0 - nu*nu)
	chk.Matrix(tst, "D (plane stress)", 1e-12, D, [][]float64{
		{c, c * nu, 0},
		{c * nu, c, 0},
		{0, 0, c * (1.0 - nu) / 2.0},
	})

	var peMdl PlaneElast
	err = peMdl.Init(2, fun.Prms{&fun.Prm{N: "E", V: E}, &fun.Prm{N: "nu", V: nu}})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	peMdl.CalcD(D, 0)
	c = E / ((1.0 + nu) * (1.0 - 2.0*nu))
	chk.Matrix(tst, "D (plane strain)", 1e-12, D, [][]float64{
		{c * (1.0 - nu), c * nu, 0},
		{c * nu, c * (1.0 - nu), 0},
		{0, 0, c * (1.0 - 2.0*nu) / 2.0},
	})
}

func Test_models03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models03. orthotropic rotation")

	var mdl OrthoElast
	err := mdl.Init(2, mdl.GetPrms())
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// phi == 0 equals the material frame matrix
	D0 := la.MatAlloc(3, 3)
	Dr := la.MatAlloc(3, 3)
	mdl.CalcD(D0, 0)
	mdl.CalcD(Dr, 2.0*math.Pi)
	chk.Matrix(tst, "D(2π) == D(0)", 1e-6, Dr, D0)

	// rotation by π/2 swaps the axial entries
	mdl.CalcD(Dr, math.Pi/2.0)
	chk.Scalar(tst, "D00(π/2) == D11(0)", 1e-8, Dr[0][0], D0[1][1])
	chk.Scalar(tst, "D11(π/2) == D00(0)", 1e-8, Dr[1][1], D0[0][0])

	// symmetry holds for any angle
	for _, phi := range utl.LinSpace(0, math.Pi, 7) {
		mdl.CalcD(Dr, phi)
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				chk.Scalar(tst, io.Sf("phi=%g: D%d%d == D%d%d", phi, i, j, j, i), 1e-8, Dr[i][j], Dr[j][i])
			}
		}
	}
}
