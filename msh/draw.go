// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Draw renders the primal edges and the dual tessellation (xy
// projection). With show=false the figure goes to dirout/fnkey.eps.
func (o *Mesh) Draw(dirout, fnkey string, includeBoundary, show bool) {
	d := o.PlotArea(includeBoundary)
	plt.Reset()
	for _, E := range o.Edges {
		if E.Boundary {
			continue
		}
		a := o.Verts[E.From].R
		b := o.Verts[E.To].R
		plt.Plot([]float64{a[0], b[0]}, []float64{a[1], b[1]}, "'k-', lw=0.5")
	}
	for _, cell := range d.Cells {
		n := len(cell)
		x := make([]float64, n+1)
		y := make([]float64, n+1)
		for i, p := range cell {
			x[i] = d.Points[p][0]
			y[i] = d.Points[p][1]
		}
		x[n], y[n] = x[0], y[0]
		plt.Plot(x, y, "'b-', lw=1")
	}
	plt.Gll("x", "y", "")
	if show {
		plt.Show()
		return
	}
	plt.SaveD(dirout, utl.Sf("%s.eps", fnkey))
}
