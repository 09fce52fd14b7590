// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions, their derivatives and quadrature rules
package shp

import (
	"github.com/cpmech/gosl/la"
)

// MINDET is the minimum determinant of the coordinates Jacobian allowed for dxdR
const MINDET = 1.0e-14

// ShpFunc is the shape functions callback; it evaluates S and dSdR at natural coordinates r
type ShpFunc func(S []float64, dSdR [][]float64, r []float64)

// Ipoint holds the natural coordinates and the weight of one integration point
type Ipoint struct {
	R, S, T float64 // natural coordinates
	W       float64 // weight
}

// Coords returns the natural coordinates of this integration point as a vector
func (o Ipoint) Coords() []float64 { return []float64{o.R, o.S, o.T} }

// Shape holds geometry data of one element family
type Shape struct {

	// geometry
	Type      string      // name; e.g. "qua8"
	Func      ShpFunc     // shape/derivs callback function
	Gndim     int         // geometry dimension; e.g. "lin3" => gnd == 1 (even in 3D simulations)
	Nverts    int         // number of vertices; e.g. "qua8" => 8
	NatCoords [][]float64 // natural coordinates of vertices [gndim][nverts]
	Ips       []Ipoint    // integration (Gauss) points

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdR (or norm of Jvec for lines)

	// scratchpad: line
	Jvec []float64 // [3] Jacobian vector: dxdR for line elements
	Gvec []float64 // [nverts] G == dSdx for line elements
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// register allocates the scratchpad of a Shape and adds it to the factory
func register(s *Shape) {
	s.S = make([]float64, s.Nverts)
	s.DSdR = la.MatAlloc(s.Nverts, s.Gndim)
	s.DxdR = la.MatAlloc(s.Gndim, s.Gndim)
	s.DRdx = la.MatAlloc(s.Gndim, s.Gndim)
	s.G = la.MatAlloc(s.Nverts, s.Gndim)
	s.Jvec = make([]float64, 3)
	s.Gvec = make([]float64, s.Nverts)
	factory[s.Type] = s
}

// Get returns an existent Shape structure
//  Note: returns nil if geoType is unavailable
func Get(geoType string) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s
}

// GetByNverts finds the Shape with given geometry dimension and number of vertices.
//  Note: returns nil if the combination is unavailable
func GetByNverts(gndim, nverts int) *Shape {
	for _, s := range factory {
		if s.Gndim == gndim && s.Nverts == nverts {
			return s
		}
	}
	return nil
}

// CalcAtIp calculates volume data such as S and G at the natural coordinates of an
// integration point
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element
//   ip              -- integration point
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {
	return o.CalcAtR(x, ip.Coords(), derivs)
}

// CalcAtR calculates volume data such as S and G at natural coordinates r
func (o *Shape) CalcAtR(x [][]float64, r []float64, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, r)
	if !derivs {
		return
	}

	// line element in multi-dimensional space
	if o.Gndim == 1 {

		// calculate Jvec == dxdR
		for i := 0; i < len(x); i++ {
			o.Jvec[i] = 0.0
			for m := 0; m < o.Nverts; m++ {
				o.Jvec[i] += x[i][m] * o.DSdR[m][0] // dxdR := x * dSdR
			}
		}

		// calculate J = norm of Jvec
		o.J = la.VecNorm(o.Jvec[:len(x)])

		// calculate G
		for m := 0; m < o.Nverts; m++ {
			o.Gvec[m] = o.DSdR[m][0] / o.J
		}
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	o.J, err = la.MatInv(o.DRdx, o.DxdR, MINDET)
	if err != nil {
		return
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	la.MatMul(o.G, 1, o.DSdR, o.DRdx)
	return
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip.Coords())
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}
