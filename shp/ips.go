// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// Gauss point abscissae shared by the registered quadrature rules
var (
	GP1D = 1.0 / math.Sqrt(3.0) // 2-point Gauss rule on [-1,1]
	GP3D = math.Sqrt(0.6)       // 3-point Gauss rule on [-1,1]
)

// 3-point Gauss weights on [-1,1]
var gw3 = []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
var gp3 = []float64{-GP3D, 0, GP3D}
