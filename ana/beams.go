// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana provides closed-form solutions of elementary structural
// problems. These are the oracles used to verify the finite element engine
package ana

// AxialRod computes the response of a bar fixed at one end and pulled by an
// axial force P at the other
type AxialRod struct {

	// input
	P float64 // axial force
	L float64 // length
	E float64 // Young's modulus
	A float64 // cross-sectional area

	// derived
	Delta float64 // end elongation = P*L/(E*A)
	N     float64 // axial force along the bar = P
}

// Init initialises the structure and computes the derived values
func (o *AxialRod) Init(p, l, e, a float64) {
	o.P, o.L, o.E, o.A = p, l, e, a
	o.Delta = p * l / (e * a)
	o.N = p
}

// CantileverEndLoad computes the response of a cantilever with a transverse
// point load P at the tip (downward positive input gives downward deflection)
type CantileverEndLoad struct {

	// input
	P float64 // tip load
	L float64 // length
	E float64 // Young's modulus
	I float64 // second moment of area

	// derived
	Wtip float64 // tip deflection = P*L³/(3*E*I)
	Mfix float64 // moment magnitude at the fixed end = P*L
	Vfix float64 // shear magnitude at the fixed end = P
}

// Init initialises the structure and computes the derived values
func (o *CantileverEndLoad) Init(p, l, e, i float64) {
	o.P, o.L, o.E, o.I = p, l, e, i
	o.Wtip = p * l * l * l / (3.0 * e * i)
	o.Mfix = p * l
	o.Vfix = p
}

// CantileverUniform computes the response of a cantilever under a uniform
// transverse load q
type CantileverUniform struct {

	// input
	Q float64 // distributed load intensity
	L float64 // length
	E float64 // Young's modulus
	I float64 // second moment of area

	// derived
	Wtip float64 // tip deflection = q*L⁴/(8*E*I)
	Mfix float64 // moment magnitude at the fixed end = q*L²/2
	Vfix float64 // shear magnitude at the fixed end = q*L
}

// Init initialises the structure and computes the derived values
func (o *CantileverUniform) Init(q, l, e, i float64) {
	o.Q, o.L, o.E, o.I = q, l, e, i
	o.Wtip = q * l * l * l * l / (8.0 * e * i)
	o.Mfix = q * l * l / 2.0
	o.Vfix = q * l
}

// SimpleBeamPointLoad computes the response of a simply supported beam with
// a transverse point load P at midspan
type SimpleBeamPointLoad struct {

	// input
	P float64 // central load
	L float64 // span
	E float64 // Young's modulus
	I float64 // second moment of area

	// derived
	Mmax float64 // midspan moment = P*L/4
	R    float64 // end reactions = P/2
	Wmax float64 // midspan deflection = P*L³/(48*E*I)
}

// Init initialises the structure and computes the derived values
func (o *SimpleBeamPointLoad) Init(p, l, e, i float64) {
	o.P, o.L, o.E, o.I = p, l, e, i
	o.Mmax = p * l / 4.0
	o.R = p / 2.0
	o.Wmax = p * l * l * l / (48.0 * e * i)
}

// SimpleBeamUniform computes the response of a simply supported beam under a
// uniform transverse load q
type SimpleBeamUniform struct {

	// input
	Q float64 // distributed load intensity
	L float64 // span
	E float64 // Young's modulus
	I float64 // second moment of area

	// derived
	Mmax float64 // midspan moment = q*L²/8
	R    float64 // end reactions = q*L/2
	Wmax float64 // midspan deflection = 5*q*L⁴/(384*E*I)
}

// Init initialises the structure and computes the derived values
func (o *SimpleBeamUniform) Init(q, l, e, i float64) {
	o.Q, o.L, o.E, o.I = q, l, e, i
	o.Mmax = q * l * l / 8.0
	o.R = q * l / 2.0
	o.Wmax = 5.0 * q * l * l * l * l / (384.0 * e * i)
}
