// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/utl"
)

// Station holds internal forces sampled at one point along a member.
// S is the distance from the start node, 0 <= S <= L
type Station struct {
	S float64 // position along member
	N float64 // axial force; positive in tension
	V float64 // shear force
	M float64 // bending moment; sagging positive
}

// InternalForces evaluates the internal force distributions of one member.
// It is a pure value derived from the recovered local end-forces and the
// element load parameters: sampling is restartable and retains no state.
//
// With f = (N0, V0, M0, ...) the local end-forces at the start node and
// q(x) the distributed normal load,
//
//	N(s) = -N0 - Qt*s         - sum of tangential point loads before s
//	V(s) =  V0 + int[0,s] q   + sum of normal point loads before s
//	M(s) = -M0 + V0*s + int[0,s] q(x)*(s-x) dx + point-load terms
//
// so that dM/ds = V(s) identically
type InternalForces struct {
	L          float64  // member length
	N0, V0, M0 float64  // local end-forces at the start node
	QnL, QnR   float64  // distributed normal load ordinates
	Qt         float64  // uniform tangential load
	Pts        []PtLoad // concentrated loads along the member
}

// Forces builds the internal force distributions of this element from the
// solved displacements
func (o *Frame) Forces(sol *Solution) *InternalForces {
	f := o.EndForces(sol)
	return &InternalForces{
		L:  o.L,
		N0: f[0], V0: f[1], M0: f[2],
		QnL: o.QnL, QnR: o.QnR, Qt: o.Qt,
		Pts: o.Pts,
	}
}

// At evaluates the axial force, shear force and bending moment at distance s
// from the start node
func (o *InternalForces) At(s float64) (n, v, m float64) {
	dq := (o.QnR - o.QnL) / o.L
	n = -o.N0 - o.Qt*s
	v = o.V0 + o.QnL*s + dq*s*s/2.0
	m = -o.M0 + o.V0*s + o.QnL*s*s/2.0 + dq*s*s*s/6.0
	for _, p := range o.Pts {
		if s > p.S {
			n -= p.T
			v += p.N
			m += p.N * (s - p.S)
		}
	}
	return
}

// Stations samples the internal forces at nsta equally spaced points,
// including both member ends. nsta must be at least 2
func (o *InternalForces) Stations(nsta int) []Station {
	res := make([]Station, nsta)
	for i, s := range utl.LinSpace(0, o.L, nsta) {
		n, v, m := o.At(s)
		res[i] = Station{s, n, v, m}
	}
	return res
}

// Deflected holds the local displaced shape sampled at one point
type Deflected struct {
	S float64 // position along member
	U float64 // local axial displacement
	V float64 // local transverse displacement
}

// Deflection interpolates the displaced shape of this element in the local
// frame: linear interpolation for the axial displacement and cubic Hermite
// interpolation for the transverse one. This is the finite element field,
// exact at the nodes; between nodes of members carrying element loads it is
// the interpolated (homogeneous) shape, which is what deformed-shape plots
// use
func (o *Frame) Deflection(sol *Solution, nsta int) []Deflected {
	ue := o.ueLocal(sol.U)
	u0, v0, r0 := ue.AtVec(0), ue.AtVec(1), ue.AtVec(2)
	u1, v1, r1 := ue.AtVec(3), ue.AtVec(4), ue.AtVec(5)
	l := o.L
	res := make([]Deflected, nsta)
	for i, s := range utl.LinSpace(0, l, nsta) {
		ξ := s / l
		h1 := 1.0 - 3.0*ξ*ξ + 2.0*ξ*ξ*ξ
		h2 := l * ξ * (1.0 - ξ) * (1.0 - ξ)
		h3 := 3.0*ξ*ξ - 2.0*ξ*ξ*ξ
		h4 := l * ξ * ξ * (ξ - 1.0)
		res[i] = Deflected{
			S: s,
			U: (1.0-ξ)*u0 + ξ*u1,
			V: h1*v0 + h2*r0 + h3*v1 + h4*r1,
		}
	}
	return res
}
