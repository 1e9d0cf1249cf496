// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements a half-edge surface mesh engine for tissue
// simulations: a topological store of vertices, half-edges and faces
// embedded in 3D, a dual tessellation with one cell per vertex, the
// geometry of those cells (centres, areas, perimeters, circumradii,
// boundary angle factors), closed-form Jacobians of face centres, and
// topological remeshing (edge flips, equiangulation, pruning of obtuse
// boundary triangles).
package msh

import (
	"log"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Mesh holds the half-edge mesh: the three entity tables plus the
// lookup and boundary bookkeeping derived from them. Entities are owned
// by the mesh (held by pointer) and identified by integer ids; removal operations
// compact the tables and renumber surviving references.
type Mesh struct {

	// entities
	Verts []*Vert // vertices
	Edges []*Edge // half-edges
	Faces []*Face // faces, including hole sentinels

	// derived: lookup and boundary bookkeeping
	EdgeMap        map[[2]int]int  // (from,to) => half-edge id
	BoundaryEdges  []int           // hole-owned half-edge ids
	BoundaryPairs  map[[2]int]bool // boundary (from,to) pairs, both orientations
	ObtuseBoundary []int           // half-edge ids queued for removal

	// flags
	IsTriangulation bool // all non-hole faces are triangles
	AlwaysGeometric bool // use geometric centres even for triangles

	// scratchpad
	plot *PlotData // reused plot buffer
}

// New returns an empty mesh ready for construction
func New() *Mesh {
	o := new(Mesh)
	o.Reset()
	return o
}

// Reset tears the mesh down to the empty state
func (o *Mesh) Reset() {
	o.Verts = nil
	o.Edges = nil
	o.Faces = nil
	o.EdgeMap = make(map[[2]int]int)
	o.BoundaryEdges = nil
	o.BoundaryPairs = make(map[[2]int]bool)
	o.ObtuseBoundary = nil
	o.IsTriangulation = true
}

// NumVerts returns the number of vertices
func (o *Mesh) NumVerts() int { return len(o.Verts) }

// NumEdges returns the number of half-edges
func (o *Mesh) NumEdges() int { return len(o.Edges) }

// NumFaces returns the number of faces, hole sentinels included
func (o *Mesh) NumFaces() int { return len(o.Faces) }

// AddVertex appends a vertex with position x and outward unit normal n,
// returning its id
func (o *Mesh) AddVertex(x, n []float64) int {
	v := &Vert{
		Id: len(o.Verts),
		R:  []float64{x[0], x[1], x[2]},
		N:  []float64{n[0], n[1], n[2]},
	}
	o.Verts = append(o.Verts, v)
	return v.Id
}

// AddEdge inserts the directed half-edge (from,to) and returns its id.
// Idempotent per ordered pair; the opposite direction is added by a
// separate call.
func (o *Mesh) AddEdge(from, to int) int {
	if id, ok := o.EdgeMap[[2]int{from, to}]; ok {
		return id
	}
	id := len(o.Edges)
	o.Edges = append(o.Edges, &Edge{Id: id, From: from, To: to, Pair: -1, Next: -1, Face: -1, Dual: -1})
	V := o.Verts[from]
	V.Edges = append(V.Edges, id)
	V.Neigh = append(V.Neigh, to)
	V.Attached = true
	o.Verts[to].Attached = true
	o.EdgeMap[[2]int{from, to}] = id
	return id
}

// AddFace creates a face from an externally supplied vertex list,
// inserting any missing half-edges and wiring their next cycle. A
// supplied non-hole face with more than three sides clears the
// triangulation flag.
func (o *Mesh) AddFace(verts []int, hole bool) int {
	f := &Face{Id: len(o.Faces), Rc: make([]float64, 3), IsHole: hole}
	n := len(verts)
	for i, v := range verts {
		w := verts[(i+1)%n]
		e := o.AddEdge(v, w)
		f.Verts = append(f.Verts, v)
		f.Edges = append(f.Edges, e)
		o.Edges[e].Face = f.Id
		o.Edges[e].Visited = true
		o.Verts[v].Faces = append(o.Verts[v].Faces, f.Id)
	}
	for i, e := range f.Edges {
		o.Edges[e].Next = f.Edges[(i+1)%n]
	}
	f.Nsides = n
	if n > 3 && !hole {
		o.IsTriangulation = false
	}
	o.Faces = append(o.Faces, f)
	return f.Id
}

// GenerateFaces discovers faces by walking unvisited half-edges; at
// each head the walk turns onto the unvisited outgoing edge with the
// smallest value of pi minus the signed turn about the vertex normal,
// i.e. the sharpest left turn. Any discovered face
// with more than three sides is a hole sentinel.
func (o *Mesh) GenerateFaces() {
	for _, E := range o.Edges {
		if !E.Visited {
			o.traceFace(E)
		}
	}
}

// traceFace walks one face starting from the unvisited half-edge E
func (o *Mesh) traceFace(E *Edge) {
	f := &Face{Id: len(o.Faces), Rc: make([]float64, 3)}
	o.Faces = append(o.Faces, f)
	seed := E.From
	E.Visited = true
	E.Face = f.Id
	f.Verts = append(f.Verts, seed)
	f.Edges = append(f.Edges, E.Id)
	a := make([]float64, 3)
	b := make([]float64, 3)
	prev := E
	vp, vn := seed, E.To
	for vn != seed {
		f.Verts = append(f.Verts, vn)
		V := o.Verts[vn]
		V3Sub(a, V.R, o.Verts[vp].R)
		best, bestVal := -1, math.MaxFloat64
		for _, ei := range V.Edges {
			Ej := o.Edges[ei]
			if Ej.Visited || Ej.To == vp {
				continue
			}
			V3Sub(b, o.Verts[Ej.To].R, V.R)
			val := math.Pi - SignedAngle(a, b, V.N)
			if val < bestVal {
				bestVal, best = val, ei
			}
		}
		if best < 0 {
			chk.Panic("face walk cannot continue at vertex %d", vn)
		}
		En := o.Edges[best]
		En.Visited = true
		En.Face = f.Id
		prev.Next = En.Id
		f.Edges = append(f.Edges, En.Id)
		prev = En
		vp, vn = vn, En.To
	}
	prev.Next = E.Id
	f.Nsides = len(f.Verts)
	if f.Nsides > 3 {
		f.IsHole = true
	}
	for _, v := range f.Verts {
		o.Verts[v].Faces = append(o.Verts[v].Faces, f.Id)
	}
}

// Postprocess finalises the topology: rebuilds the boundary
// bookkeeping from the hole faces, pairs every half-edge with its
// opposite, and, if order is true, sorts the star of every vertex.
func (o *Mesh) Postprocess(order bool) {
	o.BoundaryEdges = o.BoundaryEdges[:0]
	o.BoundaryPairs = make(map[[2]int]bool)
	nhole := 0
	for _, f := range o.Faces {
		if !f.IsHole {
			continue
		}
		nhole++
		for _, v := range f.Verts {
			o.Verts[v].Boundary = true
		}
		for _, e := range f.Edges {
			E := o.Edges[e]
			E.Boundary = true
			o.BoundaryPairs[[2]int{E.From, E.To}] = true
			o.BoundaryPairs[[2]int{E.To, E.From}] = true
			o.BoundaryEdges = append(o.BoundaryEdges, e)
		}
	}
	for _, E := range o.Edges {
		p, ok := o.EdgeMap[[2]int{E.To, E.From}]
		if !ok {
			chk.Panic("half-edge %d (%d->%d) has no opposite", E.Id, E.From, E.To)
		}
		E.Pair = p
	}
	if order {
		for _, V := range o.Verts {
			o.OrderStar(V.Id)
		}
	}
	log.Printf("msh: nverts=%d nedges=%d nfaces=%d nholes=%d nboundary=%d triangulation=%v\n",
		len(o.Verts), len(o.Edges), len(o.Faces), nhole, len(o.BoundaryEdges), o.IsTriangulation)
}

// OrderStar sorts the star of vertex v so that consecutive outgoing
// half-edges share a face, rebuilds the aligned neighbour/face/dual
// lists, and fixes chirality so the dual cell area comes out positive.
// For boundary vertices the hole face is rotated to the last slot.
func (o *Mesh) OrderStar(v int) {
	V := o.Verts[v]
	if !V.Attached {
		return
	}
	if len(V.Edges) == 0 {
		V.Attached = false
		return
	}
	n := len(V.Edges)
	ordered := make([]int, 0, n)
	used := make([]bool, n)
	ordered = append(ordered, V.Edges[0])
	used[0] = true
	for len(ordered) < n {
		cur := o.Edges[ordered[len(ordered)-1]]
		found := false
		for i, ei := range V.Edges {
			if used[i] {
				continue
			}
			if o.Edges[o.Edges[ei].Pair].Face == cur.Face {
				ordered = append(ordered, ei)
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			chk.Panic("star of vertex %d is not a closed fan", v)
		}
	}
	copy(V.Edges, ordered)
	o.alignStar(V)
	V.Ordered = true
	for _, fid := range V.Dual {
		o.ComputeCentre(fid)
	}
	if V.Boundary {
		o.rotateHoleLast(V)
	}
	if o.DualArea(v) < 0 {
		reverseInts(V.Edges)
		o.alignStar(V)
		if V.Boundary {
			o.rotateHoleLast(V)
		}
		o.DualArea(v)
	}
}

// alignStar rebuilds the neighbour, face and dual lists from the
// (ordered) outgoing edge list
func (o *Mesh) alignStar(V *Vert) {
	V.Neigh = V.Neigh[:0]
	V.Faces = V.Faces[:0]
	V.Dual = V.Dual[:0]
	for _, e := range V.Edges {
		E := o.Edges[e]
		V.Neigh = append(V.Neigh, E.To)
		V.Faces = append(V.Faces, E.Face)
		if !o.Faces[E.Face].IsHole {
			V.Dual = append(V.Dual, E.Face)
		}
	}
}

// rotateHoleLast rotates the aligned star lists so the hole face sits
// in the last slot
func (o *Mesh) rotateHoleLast(V *Vert) {
	for i, fid := range V.Faces {
		if o.Faces[fid].IsHole {
			rotateInts(V.Edges, i+1)
			o.alignStar(V)
			return
		}
	}
}

// String returns a JSON representation of *Mesh
func (o *Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += utl.Sf("    %v", x)
	}
	l += "\n  ],\n  \"edges\" : [\n"
	for i, x := range o.Edges {
		if i > 0 {
			l += ",\n"
		}
		l += utl.Sf("    %v", x)
	}
	l += "\n  ],\n  \"faces\" : [\n"
	for i, x := range o.Faces {
		if i > 0 {
			l += ",\n"
		}
		l += utl.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}

// CheckTopology panics on the first broken structural invariant: pair
// involution, edge-map coverage, next-cycle closure of non-hole faces,
// and star list alignment. Intended for tests and cautious drivers.
func (o *Mesh) CheckTopology() {
	for i, E := range o.Edges {
		chk.IntAssert(E.Id, i)
		if E.Pair == E.Id {
			chk.Panic("half-edge %d is its own pair", E.Id)
		}
		if o.Edges[E.Pair].Pair != E.Id {
			chk.Panic("pair involution broken at half-edge %d", E.Id)
		}
		if o.EdgeMap[[2]int{E.From, E.To}] != E.Id {
			chk.Panic("edge map does not resolve half-edge %d (%d->%d)", E.Id, E.From, E.To)
		}
	}
	if len(o.EdgeMap) != len(o.Edges) {
		chk.Panic("edge map holds %d entries for %d half-edges", len(o.EdgeMap), len(o.Edges))
	}
	for i, F := range o.Faces {
		chk.IntAssert(F.Id, i)
		if F.IsHole {
			continue // next cycles on a resurrected hole contour may be stale
		}
		e := F.Edges[0]
		for k := 0; k < F.Nsides; k++ {
			if o.Edges[e].Face != F.Id {
				chk.Panic("half-edge %d in the cycle of face %d belongs to face %d", e, F.Id, o.Edges[e].Face)
			}
			e = o.Edges[e].Next
		}
		if e != F.Edges[0] {
			chk.Panic("next cycle of face %d does not close in %d steps", F.Id, F.Nsides)
		}
	}
	for _, V := range o.Verts {
		if !V.Ordered {
			continue
		}
		chk.IntAssert(len(V.Neigh), len(V.Edges))
		chk.IntAssert(len(V.Faces), len(V.Edges))
		for k, e := range V.Edges {
			E := o.Edges[e]
			if E.From != V.Id || E.To != V.Neigh[k] || E.Face != V.Faces[k] {
				chk.Panic("star of vertex %d is misaligned at slot %d", V.Id, k)
			}
		}
	}
}
