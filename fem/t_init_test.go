// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func vecVals(v *mat.VecDense) (res []float64) {
	res = make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		res[i] = v.AtVec(i)
	}
	return
}
