// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"testing"

	"github.com/cesarep/goframe/inp"
	"github.com/cpmech/gosl/chk"
)

func Test_frame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame01. local stiffness matrix")

	cell := &inp.Elem{Id: 0, Verts: [2]int{0, 1}, Mat: "m"}
	m := &inp.Material{Name: "m", E: 2.0, A: 3.0, I: 4.0}
	e, err := NewFrame(cell, m, 0, 0, 2, 0)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "L", 1e-15, e.L, 2.0)

	// EA/l = 3, EI/l³ = 1
	chk.Float64(tst, "k00", 1e-15, e.Kl.At(0, 0), 3.0)
	chk.Float64(tst, "k03", 1e-15, e.Kl.At(0, 3), -3.0)
	chk.Float64(tst, "k11", 1e-15, e.Kl.At(1, 1), 12.0)
	chk.Float64(tst, "k12", 1e-15, e.Kl.At(1, 2), 12.0)
	chk.Float64(tst, "k22", 1e-15, e.Kl.At(2, 2), 16.0)
	chk.Float64(tst, "k25", 1e-15, e.Kl.At(2, 5), 8.0)
	chk.Float64(tst, "k45", 1e-15, e.Kl.At(4, 5), -12.0)
	chk.Float64(tst, "k55", 1e-15, e.Kl.At(5, 5), 16.0)

	// symmetry
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			chk.Float64(tst, "Kl symmetry", 1e-15, e.Kl.At(i, j), e.Kl.At(j, i))
		}
	}

	// global matrix of a horizontal member equals the local one
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			chk.Float64(tst, "K == Kl for horizontal member", 1e-14, e.K.At(i, j), e.Kl.At(i, j))
		}
	}
}

func Test_frame02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame02. formulation rejects bad input")

	m := &inp.Material{Name: "m", E: 1, A: 1, I: 1}
	cell := &inp.Elem{Id: 7, Verts: [2]int{0, 1}, Mat: "m"}

	var verr *ValidationError
	_, err := NewFrame(cell, m, 1, 1, 1, 1) // zero length
	if !errors.As(err, &verr) {
		tst.Errorf("zero-length element must fail with ValidationError; got %v", err)
		return
	}
	if verr.Elem != 7 {
		tst.Errorf("error must identify element 7; got %d", verr.Elem)
	}

	bad := &inp.Material{Name: "m", E: 1, A: -1, I: 1}
	_, err = NewFrame(cell, bad, 0, 0, 1, 0)
	if !errors.As(err, &verr) {
		tst.Errorf("negative area must fail with ValidationError; got %v", err)
	}
}

func Test_frame03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame03. consistent fixed-end forces")

	m := &inp.Material{Name: "m", E: 1, A: 1, I: 1}
	cell := &inp.Elem{Id: 0, Verts: [2]int{0, 1}, Mat: "m"}

	// uniform load: qL/2 and qL²/12 at each end
	l, q := 4.0, -12.0
	e, err := NewFrame(cell, m, 0, 0, l, 0)
	if err != nil {
		tst.Fatal(err)
	}
	e.SetDist(q, q, 0)
	chk.Array(tst, "uniform fixed-end", 1e-13, vecVals(e.Fl), []float64{
		0, q * l / 2.0, q * l * l / 12.0, 0, q * l / 2.0, -q * l * l / 12.0,
	})

	// central point load: P/2 and PL/8 at each end
	p := -20.0
	e, err = NewFrame(cell, m, 0, 0, l, 0)
	if err != nil {
		tst.Fatal(err)
	}
	if err = e.AddPoint(p, 0, l/2.0); err != nil {
		tst.Fatal(err)
	}
	chk.Array(tst, "central point fixed-end", 1e-13, vecVals(e.Fl), []float64{
		0, p / 2.0, p * l / 8.0, 0, p / 2.0, -p * l / 8.0,
	})

	// axial point load at thirds: Pb/L and Pa/L
	e, err = NewFrame(cell, m, 0, 0, l, 0)
	if err != nil {
		tst.Fatal(err)
	}
	if err = e.AddPoint(0, 9.0, l/3.0); err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "axial start share", 1e-14, e.Fl.AtVec(0), 6.0)
	chk.Float64(tst, "axial end share", 1e-14, e.Fl.AtVec(3), 3.0)

	// position outside member
	if err = e.AddPoint(1, 0, 2.0*l); err == nil {
		tst.Errorf("out-of-member load position must fail")
	}
}
