// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cesarep/goframe/inp"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Frame represents a planar frame (beam-column) element: Euler-Bernoulli
// bending with cubic Hermite shape functions plus linear axial behaviour
//
//	2D     n
//	       ^
//	       |                              Props:  Nodes:
//	       o--------------------------o    E, A    0 and 1
//	       |                          |    I
//	       |                          |
//	      (0)------------------------(1)------> t
//
// Local dof order: (axial, shear, rotation) at node 0, then at node 1
type Frame struct {

	// basic data
	Cell *inp.Elem     // element definition
	Mat  *inp.Material // material and section
	X    [2][2]float64 // nodal coordinates [nnode][ndim]
	L    float64       // (derived) member length
	T    Transform     // global-to-local transform

	// stiffness
	Kl *mat.Dense // 6x6 local stiffness matrix
	K  *mat.Dense // 6x6 global stiffness matrix

	// element loads (local frame)
	Hasq bool          // has distributed load
	QnL  float64       // normal load ordinate at start node
	QnR  float64       // normal load ordinate at end node
	Qt   float64       // uniform tangential load
	Pts  []PtLoad      // concentrated loads along the member
	Fl   *mat.VecDense // 6 local consistent fixed-end forces

	// assembly
	Umap [6]int // global equation numbers of the 6 local dofs
}

// PtLoad is a concentrated load applied along the member, in the local frame
type PtLoad struct {
	N float64 // normal (transverse) component
	T float64 // tangential (axial) component
	S float64 // position from start node, 0 <= S <= L
}

// NewFrame formulates one frame element. x0,y0 and x1,y1 are the coordinates
// of the start and end nodes. Fails with ValidationError on non-positive
// length, area, inertia or modulus
func NewFrame(cell *inp.Elem, m *inp.Material, x0, y0, x1, y1 float64) (*Frame, error) {

	// basic data
	o := &Frame{Cell: cell, Mat: m}
	o.X[0][0], o.X[0][1] = x0, y0
	o.X[1][0], o.X[1][1] = x1, y1

	// length and orientation
	dx := x1 - x0
	dy := y1 - y0
	o.L = math.Sqrt(dx*dx + dy*dy)
	ϵp := 1e-9
	if o.L < ϵp {
		return nil, &ValidationError{cell.Id, "zero-length element"}
	}
	if m.E < ϵp || m.A < ϵp || m.I < ϵp {
		return nil, &ValidationError{cell.Id, "E, A and I parameters must be all positive"}
	}
	o.T = NewTransform(dx/o.L, dy/o.L)

	// stiffness matrix in local system
	l := o.L
	ll := l * l
	ma := m.E * m.A / l
	n := m.E * m.I / (ll * l)
	o.Kl = mat.NewDense(6, 6, nil)
	o.Kl.Set(0, 0, ma)
	o.Kl.Set(0, 3, -ma)
	o.Kl.Set(1, 1, 12*n)
	o.Kl.Set(1, 2, 6*l*n)
	o.Kl.Set(1, 4, -12*n)
	o.Kl.Set(1, 5, 6*l*n)
	o.Kl.Set(2, 1, 6*l*n)
	o.Kl.Set(2, 2, 4*ll*n)
	o.Kl.Set(2, 4, -6*l*n)
	o.Kl.Set(2, 5, 2*ll*n)
	o.Kl.Set(3, 0, -ma)
	o.Kl.Set(3, 3, ma)
	o.Kl.Set(4, 1, -12*n)
	o.Kl.Set(4, 2, -6*l*n)
	o.Kl.Set(4, 4, 12*n)
	o.Kl.Set(4, 5, -6*l*n)
	o.Kl.Set(5, 1, 6*l*n)
	o.Kl.Set(5, 2, 2*ll*n)
	o.Kl.Set(5, 4, -6*l*n)
	o.Kl.Set(5, 5, 4*ll*n)

	// stiffness matrix in global system
	o.K = o.T.ToGlobalMat(o.Kl)

	// fixed-end forces start empty
	o.Fl = mat.NewVecDense(6, nil)
	return o, nil
}

// SetEqs sets the global equation numbers of the 6 local dofs.
// eqs0 and eqs1 are the (ux, uy, rz) equations of the start and end nodes
func (o *Frame) SetEqs(eqs0, eqs1 [3]int) {
	for i := 0; i < 3; i++ {
		o.Umap[i] = eqs0[i]
		o.Umap[3+i] = eqs1[i]
	}
}

// SetDist adds a distributed load: trapezoidal normal load with ordinates
// qnL and qnR at the two ends and uniform tangential load qt
func (o *Frame) SetDist(qnL, qnR, qt float64) {
	o.Hasq = true
	o.QnL += qnL
	o.QnR += qnR
	o.Qt += qt
	o.recomputeFixedEnd()
}

// AddPoint adds a concentrated load at distance s from the start node
func (o *Frame) AddPoint(n, t, s float64) error {
	if s < 0 || s > o.L {
		return &ValidationError{o.Cell.Id, io.Sf("concentrated load position %g outside member length %g", s, o.L)}
	}
	o.Pts = append(o.Pts, PtLoad{n, t, s})
	o.recomputeFixedEnd()
	return nil
}

// recomputeFixedEnd recomputes the local consistent fixed-end force vector from the
// current element loads. The distributed-load terms use the Hermite shape
// functions as weights (consistent lumping), so the post-processing step can
// reconstruct the exact internal-force distribution
func (o *Frame) recomputeFixedEnd() {
	l := o.L
	ll := l * l
	f := o.Fl
	for i := 0; i < 6; i++ {
		f.SetVec(i, 0)
	}

	// trapezoidal normal + uniform tangential load
	if o.Hasq {
		f.SetVec(0, o.Qt*l/2.0)
		f.SetVec(1, l*(7.0*o.QnL+3.0*o.QnR)/20.0)
		f.SetVec(2, ll*(3.0*o.QnL+2.0*o.QnR)/60.0)
		f.SetVec(3, o.Qt*l/2.0)
		f.SetVec(4, l*(3.0*o.QnL+7.0*o.QnR)/20.0)
		f.SetVec(5, -ll*(2.0*o.QnL+3.0*o.QnR)/60.0)
	}

	// concentrated loads
	for _, p := range o.Pts {
		a := p.S
		b := l - a
		f.SetVec(0, f.AtVec(0)+p.T*b/l)
		f.SetVec(1, f.AtVec(1)+p.N*b*b*(3.0*a+b)/(ll*l))
		f.SetVec(2, f.AtVec(2)+p.N*a*b*b/ll)
		f.SetVec(3, f.AtVec(3)+p.T*a/l)
		f.SetVec(4, f.AtVec(4)+p.N*a*a*(a+3.0*b)/(ll*l))
		f.SetVec(5, f.AtVec(5)-p.N*a*a*b/ll)
	}
}

// FixedEndGlobal returns the equivalent nodal force vector in global axes,
// ready to be scattered into the global load vector
func (o *Frame) FixedEndGlobal() *mat.VecDense {
	return o.T.ToGlobalVec(o.Fl)
}

// ueLocal gathers the element nodal displacements from the global solution
// and rotates them to the local frame
func (o *Frame) ueLocal(u *mat.VecDense) *mat.VecDense {
	ue := mat.NewVecDense(6, nil)
	for i, I := range o.Umap {
		ue.SetVec(i, u.AtVec(I))
	}
	return o.T.ToLocalVec(ue)
}

// EndForces recovers the local member end-forces from the global solution:
// f = Kl*ue_local - fixed_end. Order: (N, V, M) at node 0 then node 1
func (o *Frame) EndForces(sol *Solution) (f [6]float64) {
	fl := mat.NewVecDense(6, nil)
	fl.MulVec(o.Kl, o.ueLocal(sol.U))
	for i := 0; i < 6; i++ {
		f[i] = fl.AtVec(i) - o.Fl.AtVec(i)
	}
	return
}
