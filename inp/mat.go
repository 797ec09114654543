// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// Material holds linear-elastic material and cross-section data for frame members
type Material struct {
	Name string  `json:"name"` // name of material
	E    float64 `json:"e"`    // Young's modulus
	A    float64 `json:"a"`    // cross-sectional area
	I    float64 `json:"i"`    // second moment of area about the out-of-plane axis
}

// EA returns the axial rigidity
func (o *Material) EA() float64 { return o.E * o.A }

// EI returns the flexural rigidity
func (o *Material) EI() float64 { return o.E * o.I }

// MatsData holds materials
type MatsData []*Material

// Get returns the material with the given name or nil
func (o MatsData) Get(name string) *Material {
	for _, m := range o {
		if m.Name == name {
			return m
		}
	}
	return nil
}
