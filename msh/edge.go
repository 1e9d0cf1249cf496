// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "github.com/cpmech/gosl/utl"

// Edge holds a directed half-edge. Every undirected edge appears as two
// half-edges related by Pair.
type Edge struct {
	Id               int  // id
	From             int  // origin vertex id
	To               int  // head vertex id
	Pair             int  // id of the opposite half-edge (-1 until Postprocess)
	Next             int  // id of the next half-edge in the same face, counterclockwise
	Face             int  // owning face id (-1 until face discovery)
	Dual             int  // dual vertex handle (owning face centre id)
	Boundary         bool // belongs to a hole-face contour
	Visited          bool // face discovery flag
	AttemptedRemoval bool // obtuse pruning reentry guard
}

// String returns a JSON representation of *Edge
func (o *Edge) String() string {
	return utl.Sf("{\"id\":%4d, \"from\":%d, \"to\":%d, \"pair\":%d, \"next\":%d, \"face\":%d, \"boundary\":%v }",
		o.Id, o.From, o.To, o.Pair, o.Next, o.Face, o.Boundary)
}
