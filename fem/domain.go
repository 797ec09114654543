// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements the finite element engine for static linear-elastic
// analysis of planar frames: element formulation, coordinate transforms,
// global assembly, constrained solution and internal-force recovery.
package fem

import (
	"strconv"

	"github.com/cesarep/goframe/inp"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Domain holds the nodes and elements of one analysis together with the
// assembled global system. A Domain is built fresh per analysis run and owns
// its matrices exclusively; the input Model is never mutated
type Domain struct {

	// input
	Model   *inp.Model // read-only model data
	Verbose bool       // print assembly/solve messages

	// nodes and elements
	Nodes []*inp.Node // active nodes, in declaration order
	Elems []*Frame    // formulated frame elements, in declaration order

	// equations
	Ny      int            // total number of equations (3 per node)
	NodeEqs map[int][3]int // node id => (ux, uy, rz) equation numbers

	// prescribed dofs
	Fixed []bool    // [Ny] dof is restrained
	Upre  []float64 // [Ny] prescribed displacement at restrained dofs

	// global system
	K *mat.Dense    // [Ny][Ny] global stiffness matrix
	F *mat.VecDense // [Ny] global load vector
}

// NewDomain formulates all elements and assembles the global system.
// Ordering: equations are numbered in node-declaration order, 3 consecutive
// per node. Element contributions are accumulated (superposition), so the
// result does not depend on element processing order
func NewDomain(m *inp.Model, verbose bool) (o *Domain, err error) {

	o = &Domain{Model: m, Verbose: verbose}

	// equation numbers
	o.Nodes = m.Nodes
	o.Ny = 3 * len(m.Nodes)
	o.NodeEqs = make(map[int][3]int)
	for i, nod := range m.Nodes {
		o.NodeEqs[nod.Id] = [3]int{3 * i, 3*i + 1, 3*i + 2}
	}
	if o.Verbose {
		io.Pf("domain: %d nodes, %d elements, %d equations\n", len(m.Nodes), len(m.Elems), o.Ny)
	}

	// formulate elements
	o.Elems = make([]*Frame, 0, len(m.Elems))
	frames := make(map[int]*Frame)
	for _, cell := range m.Elems {
		mdat := m.Materials.Get(cell.Mat)
		if mdat == nil {
			return nil, &IndexError{"material", cell.Mat, io.Sf("element %d", cell.Id)}
		}
		n0 := m.GetNode(cell.Verts[0])
		n1 := m.GetNode(cell.Verts[1])
		if n0 == nil {
			return nil, &IndexError{"node", strconv.Itoa(cell.Verts[0]), io.Sf("element %d", cell.Id)}
		}
		if n1 == nil {
			return nil, &IndexError{"node", strconv.Itoa(cell.Verts[1]), io.Sf("element %d", cell.Id)}
		}
		e, err := NewFrame(cell, mdat, n0.X, n0.Y, n1.X, n1.Y)
		if err != nil {
			return nil, err
		}
		e.SetEqs(o.NodeEqs[n0.Id], o.NodeEqs[n1.Id])
		o.Elems = append(o.Elems, e)
		frames[cell.Id] = e
	}

	// element loads
	for _, ld := range m.DistLoads {
		e, ok := frames[ld.Elem]
		if !ok {
			return nil, &IndexError{"element", strconv.Itoa(ld.Elem), "distributed load"}
		}
		e.SetDist(ld.QnL, ld.QnR, ld.Qt)
	}
	for _, ld := range m.PointLoads {
		e, ok := frames[ld.Elem]
		if !ok {
			return nil, &IndexError{"element", strconv.Itoa(ld.Elem), "concentrated load"}
		}
		if err := e.AddPoint(ld.N, ld.T, ld.S); err != nil {
			return nil, err
		}
	}

	// supports
	o.Fixed = make([]bool, o.Ny)
	o.Upre = make([]float64, o.Ny)
	for _, sup := range m.Supports {
		eqs, ok := o.NodeEqs[sup.Node]
		if !ok {
			return nil, &IndexError{"node", strconv.Itoa(sup.Node), "support"}
		}
		for d := 0; d < 3; d++ {
			if sup.Fix[d] {
				o.Fixed[eqs[d]] = true
				o.Upre[eqs[d]] = sup.U[d]
			}
		}
	}

	// assemble K and F
	o.K = mat.NewDense(o.Ny, o.Ny, nil)
	o.F = mat.NewVecDense(o.Ny, nil)
	for _, e := range o.Elems {
		for i, I := range e.Umap {
			for j, J := range e.Umap {
				o.K.Set(I, J, o.K.At(I, J)+e.K.At(i, j))
			}
		}
		if e.Hasq || len(e.Pts) > 0 {
			fx := e.FixedEndGlobal()
			for i, I := range e.Umap {
				o.F.SetVec(I, o.F.AtVec(I)+fx.AtVec(i))
			}
		}
	}

	// nodal loads
	for _, ld := range m.NodalLoads {
		eqs, ok := o.NodeEqs[ld.Node]
		if !ok {
			return nil, &IndexError{"node", strconv.Itoa(ld.Node), "nodal load"}
		}
		o.F.SetVec(eqs[0], o.F.AtVec(eqs[0])+ld.Fx)
		o.F.SetVec(eqs[1], o.F.AtVec(eqs[1])+ld.Fy)
		o.F.SetVec(eqs[2], o.F.AtVec(eqs[2])+ld.Mz)
	}
	return o, nil
}

// GetElem returns the formulated element with the given id or nil
func (o *Domain) GetElem(id int) *Frame {
	for _, e := range o.Elems {
		if e.Cell.Id == id {
			return e
		}
	}
	return nil
}
