// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Face holds face data. One designated hole face per boundary component
// absorbs all boundary half-edges; its geometric fields are meaningless.
type Face struct {
	Id       int           // id
	Verts    []int         // vertex ids, counterclockwise as seen along the vertex normals
	Edges    []int         // bounding half-edge ids, aligned with Verts
	Nsides   int           // number of sides
	Rc       []float64     // centre (size==3)
	Angles   []float64     // cosines of interior angles, aligned with Verts
	Area     float64       // cached area
	Radius   float64       // circumradius (triangles only)
	IsHole   bool          // outer non-physical face absorbing boundary edges
	Boundary bool          // touches a hole face
	Obtuse   bool          // boundary triangle with an obtuse apex angle
	DrcDr    [][][]float64 // [3] 3x3 matrices: DrcDr[p] = dRc/dR(Verts[p]) (triangles only)
}

// GetAngle returns the cached interior angle cosine at vertex v
func (o *Face) GetAngle(v int) float64 {
	for i, w := range o.Verts {
		if w == v {
			return o.Angles[i]
		}
	}
	chk.Panic("vertex %d does not belong to face %d", v, o.Id)
	return 0
}

// VertIndex returns the local index of vertex v within the face, or -1
func (o *Face) VertIndex(v int) int {
	for i, w := range o.Verts {
		if w == v {
			return i
		}
	}
	return -1
}

// String returns a JSON representation of *Face
func (o *Face) String() string {
	l := utl.Sf("{\"id\":%4d, \"hole\":%v, \"verts\":[", o.Id, o.IsHole)
	for i, v := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += utl.Sf("%d", v)
	}
	l += "], \"edges\":["
	for i, e := range o.Edges {
		if i > 0 {
			l += ", "
		}
		l += utl.Sf("%d", e)
	}
	l += "] }"
	return l
}
