// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/io"

// ValidationError reports malformed element geometry or properties, detected
// at formulation time, before assembly
type ValidationError struct {
	Elem int    // offending element id
	Msg  string // what is wrong
}

func (e *ValidationError) Error() string {
	return io.Sf("element %d: %s", e.Elem, e.Msg)
}

// IndexError reports a load, support or element referring to a nonexistent
// entity, detected at assembly time
type IndexError struct {
	Kind string // "node", "element" or "material"
	Ref  string // the dangling reference
	Use  string // where the reference appears
}

func (e *IndexError) Error() string {
	return io.Sf("%s refers to unknown %s %s", e.Use, e.Kind, e.Ref)
}

// InstabilityError reports a singular or ill-conditioned reduced stiffness
// system, typically an under-constrained structure with rigid-body motion.
// The analysis aborts; no partial result is produced
type InstabilityError struct {
	Cond float64 // condition number estimate of the reduced matrix
}

func (e *InstabilityError) Error() string {
	return io.Sf("structure is unstable: reduced stiffness matrix is singular or ill-conditioned (cond = %g); check supports", e.Cond)
}
