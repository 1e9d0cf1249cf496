// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "github.com/cpmech/gosl/utl"

// Vert holds vertex data. Position and outward normal are written by the
// driver between steps; the star lists are derived and stay aligned by
// index after OrderStar.
type Vert struct {
	Id       int         // id
	R        []float64   // position (size==3)
	N        []float64   // outward unit normal (size==3)
	Boundary bool        // sits on a hole-face contour
	Attached bool        // has at least one incident edge
	Ordered  bool        // star lists have been sorted
	Area     float64     // cached dual cell area (signed)
	Perim    float64     // cached dual cell perimeter
	Edges    []int       // outgoing half-edge ids
	Neigh    []int       // neighbour vertex ids, aligned with Edges
	Faces    []int       // incident face ids, aligned with Edges
	Dual     []int       // non-hole face ids whose centres bound the dual cell
	AngleDef [][]float64 // angle-factor gradients: [0] wrt self, [e+1] wrt To(Edges[e])
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := utl.Sf("{\"id\":%4d, \"boundary\":%v, \"r\":[", o.Id, o.Boundary)
	for i, x := range o.R {
		if i > 0 {
			l += ", "
		}
		l += utl.Sf("%23.15e", x)
	}
	l += "], \"neigh\":["
	for i, n := range o.Neigh {
		if i > 0 {
			l += ", "
		}
		l += utl.Sf("%d", n)
	}
	l += "] }"
	return l
}
