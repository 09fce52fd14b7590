// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// lin2 and lin3 are line (bar/rod) elements with 2 and 3 vertices, respectively.
// The third vertex of lin3 is the middle one.

func init() {

	register(&Shape{
		Type:   "lin2",
		Gndim:  1,
		Nverts: 2,
		NatCoords: [][]float64{
			{-1, 1},
		},
		Ips: []Ipoint{
			{0, 0, 0, 2},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64) {
			S[0] = 0.5 * (1.0 - r[0])
			S[1] = 0.5 * (1.0 + r[0])
			dSdR[0][0] = -0.5
			dSdR[1][0] = 0.5
		},
	})

	register(&Shape{
		Type:   "lin3",
		Gndim:  1,
		Nverts: 3,
		NatCoords: [][]float64{
			{-1, 1, 0},
		},
		Ips: []Ipoint{
			{-GP1D, 0, 0, 1},
			{GP1D, 0, 0, 1},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64) {
			S[0] = 0.5 * r[0] * (r[0] - 1.0)
			S[1] = 0.5 * r[0] * (r[0] + 1.0)
			S[2] = 1.0 - r[0]*r[0]
			dSdR[0][0] = r[0] - 0.5
			dSdR[1][0] = r[0] + 0.5
			dSdR[2][0] = -2.0 * r[0]
		},
	})
}
