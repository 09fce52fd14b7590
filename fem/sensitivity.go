// Copyright 2016 The Linfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// SensProp computes the derivative of the displacement component (vert,dim)
// with respect to the section property of cell j by central differences.
// Repeated solves are exact re-evaluations because Solve caches nothing, so
// the difference quotient sees a pure function of Props[j]. The property
// value is restored before returning.
func (o *Problem) SensProp(j, vert, dim int) (dudp float64, err error) {
	if j < 0 || j >= len(o.Props) {
		return 0, chk.Err("cell index %d is out of range", j)
	}
	old := o.Props[j]
	defer func() { o.Props[j] = old }()
	dudp, _ = num.DerivCentral(func(t float64, args ...interface{}) float64 {
		o.Props[j] = t
		u, _, e := o.Solve()
		if e != nil {
			err = e
			return 0
		}
		return u[vert][dim]
	}, old, 1e-3*(1.0+old))
	if err != nil {
		return 0, chk.Err("sensitivity solve failed:\n%v", err)
	}
	return
}
