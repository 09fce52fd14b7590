// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// qua4 and qua8 are plane quadrilaterals. qua8 is the serendipity element with
// vertices ordered as the 4 corners followed by the mid-edge nodes of edges
// 0-1, 1-2, 2-3 and 3-0.

func init() {

	qua4nat := [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	}

	qua4ips := make([]Ipoint, 0, 4)
	for _, s := range []float64{-GP1D, GP1D} {
		for _, r := range []float64{-GP1D, GP1D} {
			qua4ips = append(qua4ips, Ipoint{r, s, 0, 1})
		}
	}

	register(&Shape{
		Type:      "qua4",
		Gndim:     2,
		Nverts:    4,
		NatCoords: qua4nat,
		Ips:       qua4ips,
		Func: func(S []float64, dSdR [][]float64, r []float64) {
			for m := 0; m < 4; m++ {
				rm, sm := qua4nat[0][m], qua4nat[1][m]
				S[m] = 0.25 * (1.0 + r[0]*rm) * (1.0 + r[1]*sm)
				dSdR[m][0] = 0.25 * rm * (1.0 + r[1]*sm)
				dSdR[m][1] = 0.25 * sm * (1.0 + r[0]*rm)
			}
		},
	})

	qua8nat := [][]float64{
		{-1, 1, 1, -1, 0, 1, 0, -1},
		{-1, -1, 1, 1, -1, 0, 1, 0},
	}

	qua8ips := make([]Ipoint, 0, 9)
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			qua8ips = append(qua8ips, Ipoint{gp3[i], gp3[j], 0, gw3[i] * gw3[j]})
		}
	}

	register(&Shape{
		Type:      "qua8",
		Gndim:     2,
		Nverts:    8,
		NatCoords: qua8nat,
		Ips:       qua8ips,
		Func: func(S []float64, dSdR [][]float64, r []float64) {
			for m := 0; m < 4; m++ {
				rm, sm := qua8nat[0][m], qua8nat[1][m]
				S[m] = 0.25 * (1.0 + r[0]*rm) * (1.0 + r[1]*sm) * (r[0]*rm + r[1]*sm - 1.0)
				dSdR[m][0] = 0.25 * rm * (1.0 + r[1]*sm) * (2.0*r[0]*rm + r[1]*sm)
				dSdR[m][1] = 0.25 * sm * (1.0 + r[0]*rm) * (r[0]*rm + 2.0*r[1]*sm)
			}
			for _, m := range []int{4, 6} { // mid-edge nodes with rm == 0
				sm := qua8nat[1][m]
				S[m] = 0.5 * (1.0 - r[0]*r[0]) * (1.0 + r[1]*sm)
				dSdR[m][0] = -r[0] * (1.0 + r[1]*sm)
				dSdR[m][1] = 0.5 * sm * (1.0 - r[0]*r[0])
			}
			for _, m := range []int{5, 7} { // mid-edge nodes with sm == 0
				rm := qua8nat[0][m]
				S[m] = 0.5 * (1.0 + r[0]*rm) * (1.0 - r[1]*r[1])
				dSdR[m][0] = 0.5 * rm * (1.0 - r[1]*r[1])
				dSdR[m][1] = -r[1] * (1.0 + r[0]*rm)
			}
		},
	})
}
