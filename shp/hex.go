// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// hex8 is the trilinear hexahedron (brick) with the bottom face vertices
// (counter-clockwise) followed by the top face vertices.

func init() {

	hex8nat := [][]float64{
		{-1, 1, 1, -1, -1, 1, 1, -1},
		{-1, -1, 1, 1, -1, -1, 1, 1},
		{-1, -1, -1, -1, 1, 1, 1, 1},
	}

	hex8ips := make([]Ipoint, 0, 8)
	for _, t := range []float64{-GP1D, GP1D} {
		for _, s := range []float64{-GP1D, GP1D} {
			for _, r := range []float64{-GP1D, GP1D} {
				hex8ips = append(hex8ips, Ipoint{r, s, t, 1})
			}
		}
	}

	register(&Shape{
		Type:      "hex8",
		Gndim:     3,
		Nverts:    8,
		NatCoords: hex8nat,
		Ips:       hex8ips,
		Func: func(S []float64, dSdR [][]float64, r []float64) {
			for m := 0; m < 8; m++ {
				rm, sm, tm := hex8nat[0][m], hex8nat[1][m], hex8nat[2][m]
				S[m] = 0.125 * (1.0 + r[0]*rm) * (1.0 + r[1]*sm) * (1.0 + r[2]*tm)
				dSdR[m][0] = 0.125 * rm * (1.0 + r[1]*sm) * (1.0 + r[2]*tm)
				dSdR[m][1] = 0.125 * sm * (1.0 + r[0]*rm) * (1.0 + r[2]*tm)
				dSdR[m][2] = 0.125 * tm * (1.0 + r[0]*rm) * (1.0 + r[1]*sm)
			}
		},
	})
}
