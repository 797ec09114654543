// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the structural model input data, read from a JSON file
// or constructed programmatically. The model is a passive description; all
// numerical work happens in package fem.
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// Node holds a vertex of the structure. Each node carries 3 dofs:
// ux, uy and rz, numbered in node-declaration order
type Node struct {
	Id int     `json:"id"` // identifier
	X  float64 `json:"x"`  // x-coordinate
	Y  float64 `json:"y"`  // y-coordinate
}

// Elem holds a frame (beam-column) element definition. The order of the two
// vertices defines the local t-axis: from Verts[0] towards Verts[1]
type Elem struct {
	Id    int    `json:"id"`    // identifier
	Verts [2]int `json:"verts"` // ids of start and end nodes
	Mat   string `json:"mat"`   // material name
}

// Support holds the constrained dofs of one node. Fix selects which of
// (ux, uy, rz) are restrained; U holds prescribed displacement values
// (usually zero; nonzero models support settlement)
type Support struct {
	Node int        `json:"node"` // node id
	Fix  [3]bool    `json:"fix"`  // restrained dof mask: ux, uy, rz
	U    [3]float64 `json:"u"`    // prescribed displacements at restrained dofs
}

// NodalLoad holds a force/moment applied directly at a node, in global axes
type NodalLoad struct {
	Node int     `json:"node"` // node id
	Fx   float64 `json:"fx"`   // horizontal force
	Fy   float64 `json:"fy"`   // vertical force
	Mz   float64 `json:"mz"`   // moment
}

// DistLoad holds a distributed load on one element, in the local frame.
// QnL and QnR are the normal load ordinates at the start and end nodes
// (equal values give a uniform load, different values a trapezoidal one);
// Qt is a uniform tangential (axial) load
type DistLoad struct {
	Elem int     `json:"elem"` // element id
	QnL  float64 `json:"qnl"`  // normal load ordinate at start node
	QnR  float64 `json:"qnr"`  // normal load ordinate at end node
	Qt   float64 `json:"qt"`   // uniform tangential load
}

// PointLoad holds a concentrated load applied along one element, in the
// local frame, at distance S from the start node
type PointLoad struct {
	Elem int     `json:"elem"` // element id
	N    float64 `json:"n"`    // normal (transverse) component
	T    float64 `json:"t"`    // tangential (axial) component
	S    float64 `json:"s"`    // position measured from start node
}

// Model holds the complete structural model. It is read-only input to the
// analysis; package fem never mutates it
type Model struct {
	Desc       string       `json:"desc"`       // description
	Materials  MatsData     `json:"materials"`  // materials and sections
	Nodes      []*Node      `json:"nodes"`      // vertices
	Elems      []*Elem      `json:"elems"`      // frame elements
	Supports   []*Support   `json:"supports"`   // constrained nodes
	NodalLoads []*NodalLoad `json:"nodalloads"` // loads applied at nodes
	DistLoads  []*DistLoad  `json:"distloads"`  // distributed element loads
	PointLoads []*PointLoad `json:"pointloads"` // concentrated element loads
}

// GetNode returns the node with the given id or nil
func (o *Model) GetNode(id int) *Node {
	for _, n := range o.Nodes {
		if n.Id == id {
			return n
		}
	}
	return nil
}

// GetElem returns the element with the given id or nil
func (o *Model) GetElem(id int) *Elem {
	for _, e := range o.Elems {
		if e.Id == id {
			return e
		}
	}
	return nil
}

// Check verifies id uniqueness and element shape. Reference resolution
// (loads/supports pointing to existing entities) happens at assembly time
func (o *Model) Check() (err error) {
	nids := make(map[int]bool)
	for _, n := range o.Nodes {
		if nids[n.Id] {
			return chk.Err("duplicate node id %d", n.Id)
		}
		nids[n.Id] = true
	}
	eids := make(map[int]bool)
	for _, e := range o.Elems {
		if eids[e.Id] {
			return chk.Err("duplicate element id %d", e.Id)
		}
		eids[e.Id] = true
		if e.Verts[0] == e.Verts[1] {
			return chk.Err("element %d connects node %d to itself", e.Id, e.Verts[0])
		}
	}
	mnames := make(map[string]bool)
	for _, m := range o.Materials {
		if mnames[m.Name] {
			return chk.Err("duplicate material %q", m.Name)
		}
		mnames[m.Name] = true
	}
	return
}

// ReadModel reads a model from a JSON file
func ReadModel(fn string) (m *Model, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read model file %q: %v", fn, err)
	}
	m = new(Model)
	if err = json.Unmarshal(b, m); err != nil {
		return nil, chk.Err("cannot parse model file %q: %v", fn, err)
	}
	if err = m.Check(); err != nil {
		return nil, err
	}
	return
}
