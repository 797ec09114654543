// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transform converts element quantities between the local (t-n) and the
// global (x-y) frames. It is a concrete value built from the member
// orientation; there is exactly one transform law, so no abstraction is used.
//
//	           n      y
//	            \     |
//	             \    +---x        ut_local = c*ux + s*uy
//	    (0)---t   \                un_local = -s*ux + c*uy
//	      \        \               rz_local = rz
//	       \       (1)
//
// The 6x6 matrix T is orthogonal (two repeated cos/sin blocks for the
// translations, identity for the rotation dof), hence inv(T) = trans(T)
type Transform struct {
	c, s float64    // direction cosines of the t-axis
	t    *mat.Dense // 6x6 global-to-local matrix
}

// NewTransform builds the transform for a member with direction cosines
// c = dx/L and s = dy/L
func NewTransform(c, s float64) (o Transform) {
	o.c, o.s = c, s
	o.t = mat.NewDense(6, 6, nil)
	for k := 0; k < 2; k++ {
		o.t.Set(3*k+0, 3*k+0, c)
		o.t.Set(3*k+0, 3*k+1, s)
		o.t.Set(3*k+1, 3*k+0, -s)
		o.t.Set(3*k+1, 3*k+1, c)
		o.t.Set(3*k+2, 3*k+2, 1)
	}
	return
}

// Theta returns the member orientation angle in radians
func (o Transform) Theta() float64 { return math.Atan2(o.s, o.c) }

// ToGlobalMat computes k = trans(T) * kl * T
func (o Transform) ToGlobalMat(kl *mat.Dense) *mat.Dense {
	var k mat.Dense
	k.Product(o.t.T(), kl, o.t)
	return &k
}

// ToLocalMat computes kl = T * k * trans(T); the inverse of ToGlobalMat
func (o Transform) ToLocalMat(k *mat.Dense) *mat.Dense {
	var kl mat.Dense
	kl.Product(o.t, k, o.t.T())
	return &kl
}

// ToGlobalVec computes v = trans(T) * vl
func (o Transform) ToGlobalVec(vl *mat.VecDense) *mat.VecDense {
	v := mat.NewVecDense(6, nil)
	v.MulVec(o.t.T(), vl)
	return v
}

// ToLocalVec computes vl = T * v
func (o Transform) ToLocalVec(v *mat.VecDense) *mat.VecDense {
	vl := mat.NewVecDense(6, nil)
	vl.MulVec(o.t, v)
	return vl
}
