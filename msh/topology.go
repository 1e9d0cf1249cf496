// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"
)

// EdgeFlip flips the shared edge of two adjacent triangles so that it
// connects the previously opposite vertices. Silent no-op on
// non-triangulations and when either half-edge is boundary. The stars
// of the four involved vertices are reordered and their dual area and
// perimeter refreshed; other derived quantities stay stale until the
// next UpdateDualMesh.
func (o *Mesh) EdgeFlip(e int) {
	if !o.IsTriangulation {
		return
	}
	E := o.Edges[e]
	EP := o.Edges[E.Pair]
	if E.Boundary || EP.Boundary {
		return
	}
	F := o.Faces[E.Face]
	FP := o.Faces[EP.Face]

	// surrounding ring
	E1 := o.Edges[E.Next]
	E2 := o.Edges[E1.Next]
	E3 := o.Edges[EP.Next]
	E4 := o.Edges[E3.Next]
	chk.IntAssert(E2.Next, E.Id)
	chk.IntAssert(E4.Next, EP.Id)
	V1 := o.Verts[E.From]
	V2 := o.Verts[EP.From]
	V3 := o.Verts[o.OppositeVertex(E.Id)]
	V4 := o.Verts[o.OppositeVertex(EP.Id)]

	// reconnect the diagonal and rewire the two triangles
	E.From, E.To = V4.Id, V3.Id
	EP.From, EP.To = V3.Id, V4.Id
	E.Next, E2.Next, E3.Next = E2.Id, E3.Id, E.Id
	EP.Next, E4.Next, E1.Next = E4.Id, E1.Id, EP.Id
	E3.Face = F.Id
	E1.Face = FP.Id
	E3.Dual = E.Dual
	E1.Dual = EP.Dual

	// rebuild the face arrays counterclockwise
	F.Verts = F.Verts[:0]
	F.Edges = F.Edges[:0]
	for _, ed := range []*Edge{E, E2, E3} {
		F.Verts = append(F.Verts, ed.From)
		F.Edges = append(F.Edges, ed.Id)
	}
	FP.Verts = FP.Verts[:0]
	FP.Edges = FP.Edges[:0]
	for _, ed := range []*Edge{EP, E4, E1} {
		FP.Verts = append(FP.Verts, ed.From)
		FP.Edges = append(FP.Edges, ed.Id)
	}
	o.ComputeCentre(F.Id)
	o.ComputeAngles(F.Id)
	o.ComputeCentre(FP.Id)
	o.ComputeAngles(FP.Id)

	// vertex memberships and the lookup map
	V1.Edges = removeInt(V1.Edges, E.Id)
	V2.Edges = removeInt(V2.Edges, EP.Id)
	V4.Edges = append(V4.Edges, E.Id)
	V3.Edges = append(V3.Edges, EP.Id)
	delete(o.EdgeMap, [2]int{V1.Id, V2.Id})
	delete(o.EdgeMap, [2]int{V2.Id, V1.Id})
	o.EdgeMap[[2]int{V4.Id, V3.Id}] = E.Id
	o.EdgeMap[[2]int{V3.Id, V4.Id}] = EP.Id

	// restore the aligned stars and refresh their duals
	for _, V := range []*Vert{V1, V2, V3, V4} {
		o.OrderStar(V.Id)
		o.DualArea(V.Id)
		o.DualPerimeter(V.Id)
	}
}

// Equiangulate flips interior edges until every pair of triangles
// sharing an edge satisfies the local Delaunay criterion: the interior
// angles at the two opposite vertices sum below pi, i.e. their cosines
// sum above zero. Passes repeat until none flips; a safety cap aborts
// with a diagnostic on meshes that refuse to settle.
func (o *Mesh) Equiangulate() {
	if !o.IsTriangulation {
		return
	}
	maxPasses := 10 * len(o.Edges)
	for pass := 0; ; pass++ {
		if pass > maxPasses {
			LogErrCond(true, "equiangulation still flipping after %d passes; giving up", pass)
			return
		}
		flipped := false
		for e := 0; e < len(o.Edges); e++ {
			E := o.Edges[e]
			EP := o.Edges[E.Pair]
			if E.Boundary || EP.Boundary {
				continue
			}
			α := o.Faces[E.Face].GetAngle(o.OppositeVertex(e))
			β := o.Faces[EP.Face].GetAngle(o.OppositeVertex(E.Pair))
			if α+β < 0 {
				o.EdgeFlip(e)
				flipped = true
			}
		}
		if !flipped {
			return
		}
	}
}

// RemoveObtuseBoundary prunes boundary triangles whose apex angle
// (opposite the boundary edge) is obtuse, repeating until no new
// candidate appears. Each edge pair is attempted at most once.
func (o *Mesh) RemoveObtuseBoundary() {
	for _, E := range o.Edges {
		E.AttemptedRemoval = false
	}
	for {
		o.ObtuseBoundary = o.ObtuseBoundary[:0]
		o.UpdateFaceProperties()
		if len(o.ObtuseBoundary) == 0 {
			return
		}
		for len(o.ObtuseBoundary) > 0 {
			e := o.ObtuseBoundary[0]
			o.ObtuseBoundary = o.ObtuseBoundary[1:]
			o.RemoveEdgePair(e)
		}
	}
}

// RemoveEdgePair removes a boundary edge pair and absorbs its triangle
// into the hole face. Silent no-op on non-boundary pairs; aborts when
// every vertex of the triangle already sits on the boundary (removal
// would detach an interior region). Surviving edge and face ids are
// compacted: references above the removed ids are decremented once or
// twice as appropriate. Next pointers along the resurrected hole
// contour are left inconsistent; callers needing them must rebuild
// faces.
func (o *Mesh) RemoveEdgePair(e int) {
	E := o.Edges[e]
	EP := o.Edges[E.Pair]
	E.AttemptedRemoval = true
	EP.AttemptedRemoval = true
	if !E.Boundary && !EP.Boundary {
		return
	}

	// the face to remove sits on the physical side
	if o.Faces[E.Face].IsHole {
		E, EP = EP, E
	}
	F := o.Faces[E.Face]
	FP := o.Faces[EP.Face]
	if F.IsHole || !FP.IsHole {
		chk.Panic("boundary half-edge pair %d/%d does not border exactly one hole face", E.Id, EP.Id)
	}

	// refuse to detach an interior region
	allBoundary := true
	for _, v := range F.Verts {
		if !o.Verts[v].Boundary {
			allBoundary = false
		}
	}
	if allBoundary {
		LogErrCond(true, "cannot remove half-edge pair %d/%d: face %d is fully on the boundary", E.Id, EP.Id, F.Id)
		return
	}

	// detach the endpoints from each other and from the doomed face
	V1 := o.Verts[E.From]
	V2 := o.Verts[E.To]
	V1.Edges = removeInt(V1.Edges, E.Id)
	V2.Edges = removeInt(V2.Edges, EP.Id)
	V1.Neigh = removeInt(V1.Neigh, V2.Id)
	V2.Neigh = removeInt(V2.Neigh, V1.Id)
	V1.Faces = removeInt(V1.Faces, F.Id)
	V2.Faces = removeInt(V2.Faces, F.Id)
	V1.Dual = removeInt(V1.Dual, F.Id)
	V2.Dual = removeInt(V2.Dual, F.Id)
	delete(o.EdgeMap, [2]int{V1.Id, V2.Id})
	delete(o.EdgeMap, [2]int{V2.Id, V1.Id})
	delete(o.BoundaryPairs, [2]int{V1.Id, V2.Id})
	delete(o.BoundaryPairs, [2]int{V2.Id, V1.Id})
	o.BoundaryEdges = removeInt(o.BoundaryEdges, EP.Id)
	FP.Edges = removeInt(FP.Edges, EP.Id)

	// remaining vertices and edges of the triangle join the hole
	affected := []int{V1.Id, V2.Id}
	for _, v := range F.Verts {
		if v == V1.Id || v == V2.Id {
			continue
		}
		W := o.Verts[v]
		W.Faces = removeInt(W.Faces, F.Id)
		W.Faces = append(W.Faces, FP.Id)
		W.Dual = removeInt(W.Dual, F.Id)
		W.Boundary = true
		FP.Verts = append(FP.Verts, v)
		affected = append(affected, v)
	}
	for _, ed := range F.Edges {
		if ed == E.Id {
			continue
		}
		D := o.Edges[ed]
		D.Face = FP.Id
		D.Boundary = true
		D.Dual = -1 // hole edges carry no dual vertex handle
		FP.Edges = append(FP.Edges, ed)
		o.BoundaryEdges = append(o.BoundaryEdges, ed)
		o.BoundaryPairs[[2]int{D.From, D.To}] = true
		o.BoundaryPairs[[2]int{D.To, D.From}] = true
	}
	FP.Nsides = len(FP.Verts)

	// compact the arrays and renumber every surviving reference
	e1, e2 := E.Id, EP.Id
	if e1 > e2 {
		e1, e2 = e2, e1
	}
	fid := F.Id
	o.Edges = append(o.Edges[:e2], o.Edges[e2+1:]...)
	o.Edges = append(o.Edges[:e1], o.Edges[e1+1:]...)
	o.Faces = append(o.Faces[:fid], o.Faces[fid+1:]...)
	shiftE := func(x int) int {
		if x > e2 {
			return x - 2
		}
		if x > e1 {
			return x - 1
		}
		return x
	}
	shiftF := func(x int) int {
		if x > fid {
			return x - 1
		}
		return x
	}
	for i, D := range o.Edges {
		D.Id = i
		D.Pair = shiftE(D.Pair)
		D.Next = shiftE(D.Next)
		D.Face = shiftF(D.Face)
		if D.Dual >= 0 {
			D.Dual = shiftF(D.Dual)
		}
	}
	for i, G := range o.Faces {
		G.Id = i
		for k, ed := range G.Edges {
			G.Edges[k] = shiftE(ed)
		}
	}
	for _, W := range o.Verts {
		for k, ed := range W.Edges {
			W.Edges[k] = shiftE(ed)
		}
		for k, fd := range W.Faces {
			W.Faces[k] = shiftF(fd)
		}
		for k, fd := range W.Dual {
			W.Dual[k] = shiftF(fd)
		}
	}
	for key, id := range o.EdgeMap {
		o.EdgeMap[key] = shiftE(id)
	}
	for k, ed := range o.BoundaryEdges {
		o.BoundaryEdges[k] = shiftE(ed)
	}
	for k, ed := range o.ObtuseBoundary {
		o.ObtuseBoundary[k] = shiftE(ed)
	}

	// restore the stars around the wound
	for _, v := range affected {
		o.OrderStar(v)
		o.DualArea(v)
		o.DualPerimeter(v)
	}
}
