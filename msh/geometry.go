// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ComputeCentre computes the centre of face f: the circumcentre for
// triangles, the geometric centre for polygons (or for everything when
// AlwaysGeometric is set)
func (o *Mesh) ComputeCentre(f int) {
	F := o.Faces[f]
	if F.Nsides == 3 && !o.AlwaysGeometric {
		o.circumCentre(F)
		return
	}
	o.geometricCentre(F)
}

// circumCentre computes the circumcentre of a triangle in the
// barycentric form, which coincides with the Cartesian circumcentre for
// non-degenerate triangles and admits closed-form derivatives
func (o *Mesh) circumCentre(F *Face) {
	ri := o.Verts[F.Verts[0]].R
	rj := o.Verts[F.Verts[1]].R
	rk := o.Verts[F.Verts[2]].R
	rjk := make([]float64, 3)
	rki := make([]float64, 3)
	rij := make([]float64, 3)
	V3Sub(rjk, rj, rk)
	V3Sub(rki, rk, ri)
	V3Sub(rij, ri, rj)
	α2 := V3Dot(rjk, rjk)
	β2 := V3Dot(rki, rki)
	γ2 := V3Dot(rij, rij)
	L2 := α2 + β2 + γ2
	λ1 := α2 * (L2 - 2.0*α2)
	λ2 := β2 * (L2 - 2.0*β2)
	λ3 := γ2 * (L2 - 2.0*γ2)
	Λ := λ1 + λ2 + λ3
	for c := 0; c < 3; c++ {
		F.Rc[c] = (λ1*ri[c] + λ2*rj[c] + λ3*rk[c]) / Λ
	}
}

// geometricCentre computes the arithmetic mean of the face vertex
// positions
func (o *Mesh) geometricCentre(F *Face) {
	la.VecFill(F.Rc, 0)
	for _, v := range F.Verts {
		r := o.Verts[v].R
		for c := 0; c < 3; c++ {
			F.Rc[c] += r[c]
		}
	}
	for c := 0; c < 3; c++ {
		F.Rc[c] /= float64(F.Nsides)
	}
}

// ComputeAngles caches the cosine of the interior angle at every face
// vertex, aligned with the vertex list
func (o *Mesh) ComputeAngles(f int) {
	F := o.Faces[f]
	n := F.Nsides
	if len(F.Angles) != n {
		F.Angles = make([]float64, n)
	}
	u := make([]float64, 3)
	w := make([]float64, 3)
	for i := 0; i < n; i++ {
		ri := o.Verts[F.Verts[i]].R
		rn := o.Verts[F.Verts[(i+1)%n]].R
		rp := o.Verts[F.Verts[(i-1+n)%n]].R
		V3Sub(u, rn, ri)
		V3Sub(w, rp, ri)
		F.Angles[i] = V3Dot(u, w) / (la.VecNorm(u) * la.VecNorm(w))
	}
}

// DualArea computes the signed area of the dual cell of vertex v and
// caches it on the vertex. The contour runs through the ordered
// incident face centres; on the boundary it closes through the vertex
// itself. The sign encodes chirality during OrderStar; consumers want
// the absolute value.
func (o *Mesh) DualArea(v int) float64 {
	V := o.Verts[v]
	if !V.Ordered {
		chk.Panic("dual area requested for vertex %d with unordered star", v)
	}
	w := make([]float64, 3)
	area := 0.0
	m := len(V.Dual)
	if V.Boundary {
		if m < 2 {
			V.Area = 0
			return 0
		}
		V3Cross(w, V.R, o.Faces[V.Dual[0]].Rc)
		area += V3Dot(w, V.N)
		for μ := 0; μ < m-1; μ++ {
			V3Cross(w, o.Faces[V.Dual[μ]].Rc, o.Faces[V.Dual[μ+1]].Rc)
			area += V3Dot(w, V.N)
		}
		V3Cross(w, o.Faces[V.Dual[m-1]].Rc, V.R)
		area += V3Dot(w, V.N)
	} else {
		for μ := 0; μ < m; μ++ {
			V3Cross(w, o.Faces[V.Dual[μ]].Rc, o.Faces[V.Dual[(μ+1)%m]].Rc)
			area += V3Dot(w, V.N)
		}
	}
	V.Area = 0.5 * area
	return V.Area
}

// DualPerimeter computes the perimeter of the dual cell of vertex v,
// with the same contour conventions as DualArea, and caches it on the
// vertex
func (o *Mesh) DualPerimeter(v int) float64 {
	V := o.Verts[v]
	if !V.Ordered {
		chk.Panic("dual perimeter requested for vertex %d with unordered star", v)
	}
	perim := 0.0
	m := len(V.Dual)
	if V.Boundary {
		if m < 1 {
			V.Perim = 0
			return 0
		}
		perim += V3Dist(V.R, o.Faces[V.Dual[0]].Rc)
		for μ := 0; μ < m-1; μ++ {
			perim += V3Dist(o.Faces[V.Dual[μ]].Rc, o.Faces[V.Dual[μ+1]].Rc)
		}
		perim += V3Dist(o.Faces[V.Dual[m-1]].Rc, V.R)
	} else {
		for μ := 0; μ < m; μ++ {
			perim += V3Dist(o.Faces[V.Dual[μ]].Rc, o.Faces[V.Dual[(μ+1)%m]].Rc)
		}
	}
	V.Perim = perim
	return perim
}

// CircumRadius computes the circumradius of triangle f (zero for other
// faces) and caches it on the face
func (o *Mesh) CircumRadius(f int) float64 {
	F := o.Faces[f]
	if F.Nsides != 3 {
		F.Radius = 0
		return 0
	}
	F.Radius = V3Dist(F.Rc, o.Verts[F.Verts[0]].R)
	return F.Radius
}

// FaceArea computes the area of face f (zero for hole sentinels) and
// caches it on the face
func (o *Mesh) FaceArea(f int) float64 {
	F := o.Faces[f]
	if F.IsHole {
		F.Area = 0
		return 0
	}
	a := make([]float64, 3)
	b := make([]float64, 3)
	w := make([]float64, 3)
	s := make([]float64, 3)
	n := F.Nsides
	for i := 0; i < n; i++ {
		V3Sub(a, o.Verts[F.Verts[i]].R, F.Rc)
		V3Sub(b, o.Verts[F.Verts[(i+1)%n]].R, F.Rc)
		V3Cross(w, a, b)
		for c := 0; c < 3; c++ {
			s[c] += w[c]
		}
	}
	F.Area = 0.5 * la.VecNorm(s)
	return F.Area
}

// AngleFactor returns the fraction of the full turn occupied by the
// dual cell at vertex v: 1 in the interior, (2pi-theta)/(2pi) on the
// boundary with theta the turn from the first to the last non-hole
// face centre about the vertex, and 0 for detached or under-connected
// boundary corners
func (o *Mesh) AngleFactor(v int) float64 {
	V := o.Verts[v]
	if !V.Boundary {
		return 1
	}
	if !V.Attached || len(V.Faces) < 3 {
		return 0
	}
	n := len(V.Faces)
	u1 := make([]float64, 3)
	u2 := make([]float64, 3)
	w := make([]float64, 3)
	V3Sub(u1, o.Faces[V.Faces[0]].Rc, V.R)
	V3Sub(u2, o.Faces[V.Faces[n-2]].Rc, V.R)
	c := V3Dot(u1, u2) / (la.VecNorm(u1) * la.VecNorm(u2))
	if c > 1 {
		c = 1
	}
	if c < -1 {
		c = -1
	}
	θ := math.Acos(c)
	V3Cross(w, u1, u2)
	if V3Dot(w, V.N) > 0 {
		θ = 2.0*math.Pi - θ
	}
	return (2.0*math.Pi - θ) / (2.0 * math.Pi)
}

// GenerateDualMesh computes centres and interior angles for every
// physical face, hands the dual vertex handles to the half-edges, and
// caches the dual area and perimeter of every attached ordered vertex
func (o *Mesh) GenerateDualMesh() {
	for _, F := range o.Faces {
		if F.IsHole {
			continue
		}
		o.ComputeCentre(F.Id)
		o.ComputeAngles(F.Id)
		for _, e := range F.Edges {
			o.Edges[e].Dual = F.Id
		}
	}
	for _, V := range o.Verts {
		if V.Attached && V.Ordered {
			o.DualArea(V.Id)
			o.DualPerimeter(V.Id)
		}
	}
}

// UpdateDualMesh refreshes every derived quantity after the driver has
// moved the vertices: face centres, angles, areas, circumradii and
// Jacobians, then dual areas, perimeters and boundary angle-factor
// gradients
func (o *Mesh) UpdateDualMesh() {
	for _, F := range o.Faces {
		if F.IsHole {
			continue
		}
		o.ComputeCentre(F.Id)
		o.ComputeAngles(F.Id)
		if F.Nsides == 3 {
			o.FcJacobian(F.Id)
			o.CircumRadius(F.Id)
		}
		o.FaceArea(F.Id)
	}
	for _, V := range o.Verts {
		if !V.Attached || !V.Ordered {
			continue
		}
		o.DualArea(V.Id)
		o.DualPerimeter(V.Id)
		if V.Boundary {
			o.AngleFactorDeriv(V.Id)
		}
	}
}

// UpdateFaceProperties recomputes the boundary and obtuse flags of
// every physical face and queues the interior half-edge of each obtuse
// boundary triangle for removal, unless removal was already attempted
func (o *Mesh) UpdateFaceProperties() {
	for _, F := range o.Faces {
		if F.IsHole {
			continue
		}
		F.Boundary = false
		F.Obtuse = false
		for _, e := range F.Edges {
			E := o.Edges[e]
			if !o.Edges[E.Pair].Boundary {
				continue
			}
			F.Boundary = true
			if F.Nsides != 3 {
				continue
			}
			o.ComputeAngles(F.Id)
			if F.GetAngle(o.OppositeVertex(e)) < 0 {
				F.Obtuse = true
				if !E.AttemptedRemoval {
					o.ObtuseBoundary = append(o.ObtuseBoundary, e)
				}
			}
		}
	}
}

// OppositeVertex returns the vertex of the owning triangle opposite to
// half-edge e
func (o *Mesh) OppositeVertex(e int) int {
	E := o.Edges[e]
	if E.Boundary {
		chk.Panic("opposite vertex requested for boundary half-edge %d", e)
	}
	F := o.Faces[E.Face]
	if F.Nsides != 3 {
		chk.Panic("opposite vertex requires a triangle; face %d has %d sides", F.Id, F.Nsides)
	}
	for _, v := range F.Verts {
		if v != E.From && v != E.To {
			return v
		}
	}
	chk.Panic("no vertex opposite to half-edge %d in face %d", e, F.Id)
	return -1
}
