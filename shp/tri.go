// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// tri3 and tri6 are plane triangles with straight edges. Vertices of tri6 are
// ordered as the 3 corners followed by the mid-edge nodes of edges 0-1, 1-2
// and 2-0.

func init() {

	register(&Shape{
		Type:   "tri3",
		Gndim:  2,
		Nverts: 3,
		NatCoords: [][]float64{
			{0, 1, 0},
			{0, 0, 1},
		},
		Ips: []Ipoint{
			{1.0 / 3.0, 1.0 / 3.0, 0, 0.5},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64) {
			S[0] = 1.0 - r[0] - r[1]
			S[1] = r[0]
			S[2] = r[1]
			dSdR[0][0], dSdR[0][1] = -1.0, -1.0
			dSdR[1][0], dSdR[1][1] = 1.0, 0.0
			dSdR[2][0], dSdR[2][1] = 0.0, 1.0
		},
	})

	register(&Shape{
		Type:   "tri6",
		Gndim:  2,
		Nverts: 6,
		NatCoords: [][]float64{
			{0, 1, 0, 0.5, 0.5, 0},
			{0, 0, 1, 0, 0.5, 0.5},
		},
		Ips: []Ipoint{
			{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
			{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
			{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64) {
			u := 1.0 - r[0] - r[1]
			S[0] = u * (2.0*u - 1.0)
			S[1] = r[0] * (2.0*r[0] - 1.0)
			S[2] = r[1] * (2.0*r[1] - 1.0)
			S[3] = 4.0 * r[0] * u
			S[4] = 4.0 * r[0] * r[1]
			S[5] = 4.0 * r[1] * u
			dSdR[0][0], dSdR[0][1] = 1.0-4.0*u, 1.0-4.0*u
			dSdR[1][0], dSdR[1][1] = 4.0*r[0]-1.0, 0.0
			dSdR[2][0], dSdR[2][1] = 0.0, 4.0*r[1]-1.0
			dSdR[3][0], dSdR[3][1] = 4.0*(u-r[0]), -4.0*r[0]
			dSdR[4][0], dSdR[4][1] = 4.0*r[1], 4.0*r[0]
			dSdR[5][0], dSdR[5][1] = -4.0*r[1], 4.0*(u-r[1])
		},
	})
}
