// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// edgeKeys returns the sorted (from,to) pairs currently in the mesh
func edgeKeys(o *Mesh) [][2]int {
	keys := make([][2]int, 0, len(o.EdgeMap))
	for k := range o.EdgeMap {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	return keys
}

// sortedNeigh returns the sorted neighbour list of vertex v
func sortedNeigh(o *Mesh, v int) []int {
	n := append([]int{}, o.Verts[v].Neigh...)
	sort.Ints(n)
	return n
}

// faceVertSet reports whether some non-hole face holds exactly the
// given vertices
func faceVertSet(o *Mesh, want []int) bool {
	w := append([]int{}, want...)
	sort.Ints(w)
	for _, F := range o.Faces {
		if F.IsHole || F.Nsides != len(w) {
			continue
		}
		vs := append([]int{}, F.Verts...)
		sort.Ints(vs)
		same := true
		for i := range w {
			if vs[i] != w[i] {
				same = false
			}
		}
		if same {
			return true
		}
	}
	return false
}

func Test_flip01(tst *testing.T) {

	chk.PrintTitle("flip01. equiangulation of a flat diamond")

	o := diamondMesh()

	// the shared diagonal a-b violates the Delaunay criterion: the
	// interior angles at c and d are both obtuse
	o.Equiangulate()
	o.CheckTopology()

	if _, ok := o.EdgeMap[[2]int{0, 1}]; ok {
		tst.Errorf("diagonal (a,b) must be gone after equiangulation\n")
		return
	}
	if _, ok := o.EdgeMap[[2]int{2, 3}]; !ok {
		tst.Errorf("diagonal (c,d) missing after equiangulation\n")
		return
	}
	if !faceVertSet(o, []int{0, 3, 2}) || !faceVertSet(o, []int{3, 1, 2}) {
		tst.Errorf("triangles after the flip are wrong\n")
		return
	}

	// fixpoint: a second call changes nothing
	before := edgeKeys(o)
	o.Equiangulate()
	after := edgeKeys(o)
	chk.IntAssert(len(after), len(before))
	for i := range before {
		if before[i] != after[i] {
			tst.Errorf("equiangulation is not idempotent at %v\n", before[i])
			return
		}
	}
}

func Test_flip02(tst *testing.T) {

	chk.PrintTitle("flip02. flip involution on a hexagon spoke")

	o := hexagonMesh()
	o.UpdateDualMesh()

	keys := edgeKeys(o)
	neigh := make([][]int, o.NumVerts())
	for v := range o.Verts {
		neigh[v] = sortedNeigh(o, v)
	}

	e := o.EdgeMap[[2]int{0, 1}]
	o.EdgeFlip(e)
	o.CheckTopology()
	if _, ok := o.EdgeMap[[2]int{0, 1}]; ok {
		tst.Errorf("spoke (0,1) must be gone after one flip\n")
		return
	}
	if _, ok := o.EdgeMap[[2]int{6, 2}]; !ok {
		tst.Errorf("flipped diagonal (6,2) missing\n")
		return
	}

	o.EdgeFlip(e)
	o.CheckTopology()
	io.Pforan("edge %d after double flip: %v\n", e, o.Edges[e])
	chk.IntAssert(len(edgeKeys(o)), len(keys))
	for i, k := range edgeKeys(o) {
		if k != keys[i] {
			tst.Errorf("adjacency not restored at %v\n", k)
			return
		}
	}
	for v := range o.Verts {
		chk.Ints(tst, io.Sf("neigh %d", v), sortedNeigh(o, v), neigh[v])
	}

	// boundary edges are silent no-ops
	b := o.BoundaryEdges[0]
	o.EdgeFlip(b)
	o.CheckTopology()
	chk.IntAssert(len(edgeKeys(o)), len(keys))
}

// spikeMesh builds three triangles around an interior apex r, with an
// obtuse boundary triangle (p,q,r) along the long boundary edge p-q
func spikeMesh() *Mesh {
	o := New()
	z := []float64{0, 0, 1}
	o.AddVertex([]float64{0, 0, 0}, z)   // p
	o.AddVertex([]float64{2, 0, 0}, z)   // q
	o.AddVertex([]float64{1, 0.1, 0}, z) // r
	o.AddVertex([]float64{1, 1.5, 0}, z) // s
	o.AddFace([]int{0, 1, 2}, false)
	o.AddFace([]int{1, 3, 2}, false)
	o.AddFace([]int{3, 0, 2}, false)
	o.AddFace([]int{0, 3, 1}, true)
	o.Postprocess(true)
	o.GenerateDualMesh()
	return o
}

func Test_obtuse01(tst *testing.T) {

	chk.PrintTitle("obtuse01. removal of an obtuse boundary triangle")

	o := spikeMesh()
	chk.IntAssert(o.NumEdges(), 12)
	chk.IntAssert(o.NumFaces(), 4)
	if o.Verts[2].Boundary {
		tst.Errorf("apex must start interior\n")
		return
	}

	o.RemoveObtuseBoundary()

	// the long boundary pair p-q is gone and its triangle was absorbed
	// into the hole
	if _, ok := o.EdgeMap[[2]int{0, 1}]; ok {
		tst.Errorf("boundary pair (p,q) must be gone\n")
		return
	}
	if _, ok := o.EdgeMap[[2]int{1, 0}]; ok {
		tst.Errorf("boundary pair (q,p) must be gone\n")
		return
	}
	chk.IntAssert(o.NumEdges(), 10)
	chk.IntAssert(o.NumFaces(), 3)
	if !o.Verts[2].Boundary {
		tst.Errorf("apex must end up on the boundary\n")
		return
	}
	if !faceVertSet(o, []int{1, 3, 2}) || !faceVertSet(o, []int{3, 0, 2}) {
		tst.Errorf("surviving triangles are wrong\n")
		return
	}

	// the two surviving triangles are also obtuse at the apex but
	// fully boundary now: removal refuses to detach them
	nhole := 0
	for _, F := range o.Faces {
		if F.IsHole {
			nhole++
		}
	}
	chk.IntAssert(nhole, 1)
	o.CheckTopology()

	// new hole contour pairs present in both orientations
	for _, pr := range [][2]int{{1, 2}, {2, 1}, {0, 2}, {2, 0}} {
		if !o.BoundaryPairs[pr] {
			tst.Errorf("boundary pair %v missing after removal\n", pr)
			return
		}
	}

	// dual vertex handles survive the renumbering: hole edges carry
	// none, physical edges point at their own face centre
	for _, E := range o.Edges {
		if E.Boundary {
			chk.IntAssert(E.Dual, -1)
			continue
		}
		if E.Dual >= 0 {
			chk.IntAssert(E.Dual, E.Face)
		}
	}
}

func Test_obtuse02(tst *testing.T) {

	chk.PrintTitle("obtuse02. acute boundary triangles are kept")

	o := hexagonMesh()
	o.UpdateDualMesh()
	nv, ne, nf := o.NumVerts(), o.NumEdges(), o.NumFaces()

	o.RemoveObtuseBoundary()
	chk.IntAssert(o.NumVerts(), nv)
	chk.IntAssert(o.NumEdges(), ne)
	chk.IntAssert(o.NumFaces(), nf)
	o.CheckTopology()
}
