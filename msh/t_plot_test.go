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

func Test_plot01(tst *testing.T) {

	chk.PrintTitle("plot01. dual tessellation flattening")

	o := hexagonMesh()
	o.UpdateDualMesh()

	// interior cells only: six unique centres, one hexagonal cell
	d := o.PlotArea(false)
	chk.IntAssert(len(d.Points), 6)
	chk.IntAssert(len(d.Cells), 1)
	chk.IntAssert(len(d.Cells[0]), 6)
	chk.IntAssert(len(d.Areas), 1)
	chk.Scalar(tst, "area interior cell", 1e-14, d.Areas[0], math.Sqrt(3.0)/2.0)
	chk.Scalar(tst, "perim interior cell", 1e-14, d.Perims[0], 2.0*math.Sqrt(3.0))

	// with the boundary: six vertex points first, then the centres,
	// and one cell per attached vertex
	d = o.PlotArea(true)
	chk.IntAssert(len(d.Points), 12)
	chk.IntAssert(len(d.Cells), 7)
	nb := 0
	for i, cell := range d.Cells {
		io.Pforan("cell %d: %v\n", i, cell)
		if len(cell) == 3 {
			// boundary cell: leads with the vertex point, which sits
			// on the unit circle
			p := d.Points[cell[0]]
			chk.Scalar(tst, io.Sf("|r| cell %d", i), 1e-14, math.Sqrt(V3Dot(p, p)), 1.0)
			nb++
		} else {
			chk.IntAssert(len(cell), 6)
		}
	}
	chk.IntAssert(nb, 6)

	// the buffer is reused
	d2 := o.PlotArea(true)
	if d2 != d {
		tst.Errorf("plot buffer must be reused between calls\n")
		return
	}
}
