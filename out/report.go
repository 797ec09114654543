// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out formats analysis results as plain-text tables. It only consumes
// the fem result interface; it performs no numerical work
package out

import (
	"bytes"
	goio "io"

	"github.com/cesarep/goframe/fem"
	"github.com/cpmech/gosl/io"
)

// Report writes nodal displacements, support reactions, member end-forces and
// internal-force station tables to wr. nsta is the number of stations per
// member; use 0 to skip the station tables
func Report(wr goio.Writer, dom *fem.Domain, sol *fem.Solution, nsta int) (err error) {
	w := new(bytes.Buffer)

	// displacements
	io.Ff(w, "Nodal displacements:\n")
	io.Ff(w, "%6s%15s%15s%15s\n", "node", "ux", "uy", "rz")
	for _, nod := range dom.Nodes {
		u := sol.NodeU(nod.Id)
		io.Ff(w, "%6d%15.6e%15.6e%15.6e\n", nod.Id, u[0], u[1], u[2])
	}

	// reactions
	io.Ff(w, "\nSupport reactions:\n")
	io.Ff(w, "%6s%15s%15s%15s\n", "node", "fx", "fy", "mz")
	for _, sup := range dom.Model.Supports {
		r := sol.NodeR(sup.Node)
		io.Ff(w, "%6d%15.6e%15.6e%15.6e\n", sup.Node, r[0], r[1], r[2])
	}

	// member end forces
	io.Ff(w, "\nMember end forces (local axes):\n")
	io.Ff(w, "%6s%12s%12s%12s%12s%12s%12s\n", "elem", "N0", "V0", "M0", "N1", "V1", "M1")
	for _, e := range dom.Elems {
		f := e.EndForces(sol)
		io.Ff(w, "%6d%12.4e%12.4e%12.4e%12.4e%12.4e%12.4e\n", e.Cell.Id, f[0], f[1], f[2], f[3], f[4], f[5])
	}

	// internal force diagrams
	if nsta >= 2 {
		for _, e := range dom.Elems {
			io.Ff(w, "\nInternal forces along member %d (L = %g):\n", e.Cell.Id, e.L)
			io.Ff(w, "%12s%15s%15s%15s\n", "s", "N", "V", "M")
			for _, st := range e.Forces(sol).Stations(nsta) {
				io.Ff(w, "%12.4f%15.6e%15.6e%15.6e\n", st.S, st.N, st.V, st.M)
			}
		}
	}

	_, err = wr.Write(w.Bytes())
	return
}
