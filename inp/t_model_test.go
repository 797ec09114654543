// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const modelJSON = `{
  "desc": "two-member test model",
  "materials": [
    { "name": "steel", "e": 200e9, "a": 0.01, "i": 4e-6 }
  ],
  "nodes": [
    { "id": 0, "x": 0, "y": 0 },
    { "id": 1, "x": 2, "y": 0 },
    { "id": 2, "x": 2, "y": 1.5 }
  ],
  "elems": [
    { "id": 0, "verts": [0, 1], "mat": "steel" },
    { "id": 1, "verts": [1, 2], "mat": "steel" }
  ],
  "supports": [
    { "node": 0, "fix": [true, true, true] },
    { "node": 2, "fix": [true, false, false], "u": [0.001, 0, 0] }
  ],
  "nodalloads": [
    { "node": 1, "fy": -5000 }
  ],
  "distloads": [
    { "elem": 0, "qnl": -1200, "qnr": -800, "qt": 100 }
  ],
  "pointloads": [
    { "elem": 1, "n": -300, "s": 0.75 }
  ]
}`

func TestReadModel(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(fn, []byte(modelJSON), 0644))

	m, err := ReadModel(fn)
	require.NoError(t, err)
	require.Equal(t, "two-member test model", m.Desc)
	require.Len(t, m.Nodes, 3)
	require.Len(t, m.Elems, 2)

	mat := m.Materials.Get("steel")
	require.NotNil(t, mat)
	require.Equal(t, 200e9, mat.E)
	require.Equal(t, 2e9, mat.EA())
	require.InDelta(t, 800e3, mat.EI(), 1e-9)
	require.Nil(t, m.Materials.Get("rubber"))

	n := m.GetNode(2)
	require.NotNil(t, n)
	require.Equal(t, 1.5, n.Y)
	require.Nil(t, m.GetNode(42))

	e := m.GetElem(1)
	require.NotNil(t, e)
	require.Equal(t, [2]int{1, 2}, e.Verts)

	require.Equal(t, [3]bool{true, false, false}, m.Supports[1].Fix)
	require.Equal(t, 0.001, m.Supports[1].U[0])
	require.Equal(t, -1200.0, m.DistLoads[0].QnL)
	require.Equal(t, 0.75, m.PointLoads[0].S)
}

func TestReadModelErrors(t *testing.T) {
	_, err := ReadModel(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot read model file")

	fn := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(fn, []byte("{not json"), 0644))
	_, err = ReadModel(fn)
	require.Error(t, err)
}

func TestModelCheck(t *testing.T) {
	m := &Model{
		Nodes: []*Node{{Id: 0}, {Id: 0}},
	}
	require.ErrorContains(t, m.Check(), "duplicate node id 0")

	m = &Model{
		Nodes: []*Node{{Id: 0}, {Id: 1}},
		Elems: []*Elem{{Id: 3, Verts: [2]int{0, 1}}, {Id: 3, Verts: [2]int{1, 0}}},
	}
	require.ErrorContains(t, m.Check(), "duplicate element id 3")

	m = &Model{
		Nodes: []*Node{{Id: 0}, {Id: 1}},
		Elems: []*Elem{{Id: 0, Verts: [2]int{1, 1}}},
	}
	require.ErrorContains(t, m.Check(), "connects node 1 to itself")

	m = &Model{
		Materials: MatsData{{Name: "steel"}, {Name: "steel"}},
	}
	require.ErrorContains(t, m.Check(), `duplicate material "steel"`)
}
