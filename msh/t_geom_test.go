// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_geom01(tst *testing.T) {

	chk.PrintTitle("geom01. hexagonal fan: dual cell geometry")

	o := hexagonMesh()
	o.UpdateDualMesh()

	// circumradius of every unit equilateral triangle is 1/sqrt(3)
	for _, F := range o.Faces {
		if F.IsHole {
			continue
		}
		chk.Scalar(tst, io.Sf("radius f%d", F.Id), 1e-14, o.CircumRadius(F.Id), 1.0/math.Sqrt(3.0))
		chk.Scalar(tst, io.Sf("area   f%d", F.Id), 1e-14, F.Area, math.Sqrt(3.0)/4.0)
	}

	// the interior dual cell is the hexagon through the six centroids
	// (circumradius 1/sqrt(3))
	chk.Scalar(tst, "A interior", 1e-14, o.DualArea(0), math.Sqrt(3.0)/2.0)
	chk.Scalar(tst, "P interior", 1e-14, o.DualPerimeter(0), 2.0*math.Sqrt(3.0))

	// boundary dual cells close through the vertex itself
	for k := 1; k <= 6; k++ {
		chk.Scalar(tst, io.Sf("A ring %d", k), 1e-14, math.Abs(o.DualArea(k)), math.Sqrt(3.0)/12.0)
		chk.Scalar(tst, io.Sf("P ring %d", k), 1e-14, o.DualPerimeter(k), math.Sqrt(3.0))
	}

	// the dual cells tile the fan: hexagon of centroids plus six
	// boundary triangles
	sum := 0.0
	for _, V := range o.Verts {
		sum += math.Abs(V.Area)
	}
	chk.Scalar(tst, "sum dual areas", 1e-14, sum, math.Sqrt(3.0))

	// the primal faces cover the full hexagon
	sum = 0.0
	for _, F := range o.Faces {
		sum += o.FaceArea(F.Id)
	}
	chk.Scalar(tst, "sum face areas", 1e-14, sum, 3.0*math.Sqrt(3.0)/2.0)
}

func Test_geom02(tst *testing.T) {

	chk.PrintTitle("geom02. angle factors")

	o := hexagonMesh()
	o.UpdateDualMesh()

	// interior vertices consume the full turn
	chk.Scalar(tst, "af interior", 1e-15, o.AngleFactor(0), 1.0)

	// at a ring vertex the two adjacent centroid directions span a
	// sixth of the full turn
	for k := 1; k <= 6; k++ {
		af := o.AngleFactor(k)
		chk.Scalar(tst, io.Sf("af ring %d", k), 1e-14, af, 1.0/6.0)
		if af < 0 || af > 1 {
			tst.Errorf("angle factor out of [0,1]: %g\n", af)
			return
		}
	}

	// a lone triangle has under-connected corners: factor zero
	p := New()
	z := []float64{0, 0, 1}
	p.AddVertex([]float64{0, 0, 0}, z)
	p.AddVertex([]float64{1, 0, 0}, z)
	p.AddVertex([]float64{0, 1, 0}, z)
	p.AddFace([]int{0, 1, 2}, false)
	p.AddFace([]int{0, 2, 1}, true)
	p.Postprocess(true)
	p.GenerateDualMesh()
	for _, V := range p.Verts {
		chk.Scalar(tst, io.Sf("af corner %d", V.Id), 1e-15, p.AngleFactor(V.Id), 0)
	}
}

func Test_geom03(tst *testing.T) {

	chk.PrintTitle("geom03. geometric centre dispatch")

	o := hexagonMesh()

	// forcing geometric centres moves triangle centres to the
	// centroid; for equilateral triangles both coincide
	F := o.Faces[0]
	o.ComputeCentre(F.Id)
	rc := []float64{F.Rc[0], F.Rc[1], F.Rc[2]}
	o.AlwaysGeometric = true
	o.ComputeCentre(F.Id)
	chk.Vector(tst, "rc", 1e-15, F.Rc, rc)
	o.AlwaysGeometric = false

	// scalene: circumcentre is equidistant from the three vertices,
	// the geometric centre is not
	p := New()
	z := []float64{0, 0, 1}
	p.AddVertex([]float64{0, 0, 0}, z)
	p.AddVertex([]float64{1.3, 0, 0}, z)
	p.AddVertex([]float64{0.2, 0.9, 0}, z)
	p.AddFace([]int{0, 1, 2}, false)
	p.AddFace([]int{0, 2, 1}, true)
	p.Postprocess(true)
	p.GenerateDualMesh()
	G := p.Faces[0]
	d0 := V3Dist(G.Rc, p.Verts[0].R)
	d1 := V3Dist(G.Rc, p.Verts[1].R)
	d2 := V3Dist(G.Rc, p.Verts[2].R)
	chk.Scalar(tst, "|rc-r0| == |rc-r1|", 1e-14, d0, d1)
	chk.Scalar(tst, "|rc-r0| == |rc-r2|", 1e-14, d0, d2)
	chk.Scalar(tst, "radius", 1e-14, p.CircumRadius(G.Id), d0)

	// interior angle cosines sum consistently: acos values of a
	// triangle add to pi
	p.ComputeAngles(G.Id)
	sum := 0.0
	for _, c := range G.Angles {
		sum += math.Acos(c)
	}
	chk.Scalar(tst, "sum angles", 1e-14, sum, math.Pi)
}
