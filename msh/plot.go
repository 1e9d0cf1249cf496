// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "math"

// PlotData holds the dual tessellation flattened for external
// rendering: a point list and one polygon per dual cell, with the cell
// areas and perimeters alongside. The buffer is owned by the mesh and
// reused between calls; callers may only read it, and the point slices
// alias live vertex/centre coordinates.
type PlotData struct {
	Points [][]float64 // unique dual points (size==3 each)
	Cells  [][]int     // per dual cell: indices into Points
	Areas  []float64   // per dual cell
	Perims []float64   // per dual cell
}

// PlotArea flattens the dual cells. Interior cells list their ordered
// face-centre indices; boundary cells (emitted only when requested)
// lead with the index of the vertex itself, through which the contour
// closes.
func (o *Mesh) PlotArea(includeBoundary bool) *PlotData {
	if o.plot == nil {
		o.plot = new(PlotData)
	}
	d := o.plot
	d.Points = d.Points[:0]
	d.Cells = d.Cells[:0]
	d.Areas = d.Areas[:0]
	d.Perims = d.Perims[:0]
	vidx := make(map[int]int)
	if includeBoundary {
		for _, V := range o.Verts {
			if V.Boundary && V.Attached {
				vidx[V.Id] = len(d.Points)
				d.Points = append(d.Points, V.R)
			}
		}
	}
	fidx := make(map[int]int)
	for _, F := range o.Faces {
		if F.IsHole {
			continue
		}
		fidx[F.Id] = len(d.Points)
		d.Points = append(d.Points, F.Rc)
	}
	for _, V := range o.Verts {
		if !V.Attached || !V.Ordered {
			continue
		}
		if V.Boundary && !includeBoundary {
			continue
		}
		var cell []int
		if V.Boundary {
			cell = append(cell, vidx[V.Id])
		}
		for _, f := range V.Dual {
			cell = append(cell, fidx[f])
		}
		d.Cells = append(d.Cells, cell)
		d.Areas = append(d.Areas, math.Abs(V.Area))
		d.Perims = append(d.Perims, V.Perim)
	}
	return d
}
