// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// condMax flags the reduced stiffness matrix as numerically ill-conditioned.
// A sound frame model sits many orders of magnitude below this
const condMax = 1e12

// Solution holds the outcome of one analysis: the full displacement vector,
// the reaction vector (zero at free dofs) and access to per-node and
// per-element results. It is the only artifact handed to consumers
type Solution struct {
	Dom  *Domain       // the solved domain
	U    *mat.VecDense // [Ny] nodal displacements
	R    *mat.VecDense // [Ny] support reactions; zero at free dofs
	Cond float64       // condition number estimate of the reduced matrix
}

// Solve partitions the global system into free and prescribed dofs, solves
// the reduced system
//
//	Kff*uf = Ff - Kfc*uc
//
// for the free displacements and back-computes the reactions
//
//	Rc = Kcf*uf + Kcc*uc - Fc
//
// Fails with InstabilityError if the reduced matrix is singular or
// ill-conditioned (under-constrained structure)
func (o *Domain) Solve() (*Solution, error) {

	// partition dofs
	var free, pre []int
	for i := 0; i < o.Ny; i++ {
		if o.Fixed[i] {
			pre = append(pre, i)
		} else {
			free = append(free, i)
		}
	}
	nf := len(free)
	if o.Verbose {
		io.Pf("solve: %d free dofs, %d prescribed dofs\n", nf, len(pre))
	}

	sol := &Solution{Dom: o, U: mat.NewVecDense(o.Ny, nil), R: mat.NewVecDense(o.Ny, nil)}
	for _, i := range pre {
		sol.U.SetVec(i, o.Upre[i])
	}

	// reduced system: kff*uf = ff - kfc*uc
	if nf > 0 {
		kff := mat.NewDense(nf, nf, nil)
		ff := mat.NewVecDense(nf, nil)
		for i, I := range free {
			for j, J := range free {
				kff.Set(i, j, o.K.At(I, J))
			}
			v := o.F.AtVec(I)
			for _, J := range pre {
				v -= o.K.At(I, J) * o.Upre[J]
			}
			ff.SetVec(i, v)
		}

		// dense solve with condition check
		var lu mat.LU
		lu.Factorize(kff)
		sol.Cond = lu.Cond()
		if math.IsNaN(sol.Cond) || math.IsInf(sol.Cond, 1) || sol.Cond > condMax {
			return nil, &InstabilityError{sol.Cond}
		}
		uf := mat.NewVecDense(nf, nil)
		if err := lu.SolveVecTo(uf, false, ff); err != nil {
			return nil, &InstabilityError{sol.Cond}
		}
		for i, I := range free {
			sol.U.SetVec(I, uf.AtVec(i))
		}
	}

	// reactions: R = K*u - F at prescribed dofs
	ku := mat.NewVecDense(o.Ny, nil)
	ku.MulVec(o.K, sol.U)
	for _, I := range pre {
		sol.R.SetVec(I, ku.AtVec(I)-o.F.AtVec(I))
	}
	if o.Verbose {
		io.Pf("solve: done (cond = %g)\n", sol.Cond)
	}
	return sol, nil
}

// NodeU returns the (ux, uy, rz) displacements of one node
func (o *Solution) NodeU(nodeId int) (u [3]float64) {
	eqs := o.Dom.NodeEqs[nodeId]
	for d := 0; d < 3; d++ {
		u[d] = o.U.AtVec(eqs[d])
	}
	return
}

// NodeR returns the (fx, fy, mz) reactions of one node; zero components at
// unrestrained dofs
func (o *Solution) NodeR(nodeId int) (r [3]float64) {
	eqs := o.Dom.NodeEqs[nodeId]
	for d := 0; d < 3; d++ {
		r[d] = o.R.AtVec(eqs[d])
	}
	return
}
