// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// tet4 is the linear tetrahedron.

func init() {

	register(&Shape{
		Type:   "tet4",
		Gndim:  3,
		Nverts: 4,
		NatCoords: [][]float64{
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		Ips: []Ipoint{
			{0.25, 0.25, 0.25, 1.0 / 6.0},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64) {
			S[0] = 1.0 - r[0] - r[1] - r[2]
			S[1] = r[0]
			S[2] = r[1]
			S[3] = r[2]
			dSdR[0][0], dSdR[0][1], dSdR[0][2] = -1.0, -1.0, -1.0
			dSdR[1][0], dSdR[1][1], dSdR[1][2] = 1.0, 0.0, 0.0
			dSdR[2][0], dSdR[2][1], dSdR[2][2] = 0.0, 1.0, 0.0
			dSdR[3][0], dSdR[3][1], dSdR[3][2] = 0.0, 0.0, 1.0
		},
	})
}
