// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// FcJacobian computes the exact Jacobian of the circumcentre of
// triangle f with respect to its three vertex positions:
//  DrcDr[p][α][β] = d(rc)_α / d(r_p)_β
// from the differentiation of the barycentric weights
//  λ1 = α²(β²+γ²-α²)  (and cyclic),  rc = Σ_q λ_q r_q / Λ
// The caller must ensure the triangle is not degenerate (Λ != 0).
func (o *Mesh) FcJacobian(f int) {
	F := o.Faces[f]
	if F.Nsides != 3 {
		chk.Panic("face centre Jacobian requires a triangle; face %d has %d sides", f, F.Nsides)
	}
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
	λ := []float64{
		α2 * (β2 + γ2 - α2),
		β2 * (γ2 + α2 - β2),
		γ2 * (α2 + β2 - γ2),
	}
	Λ := λ[0] + λ[1] + λ[2]

	// the nine vector gradients dλ[q][p] = dλ_q/dr_p, from
	//  dα²/dr_j = 2 rjk, dα²/dr_k = -2 rjk, dα²/dr_i = 0 (and cyclic)
	dλ := make([][][]float64, 3)
	for q := 0; q < 3; q++ {
		dλ[q] = [][]float64{make([]float64, 3), make([]float64, 3), make([]float64, 3)}
	}
	for c := 0; c < 3; c++ {
		dλ[0][0][c] = 2.0 * α2 * (rij[c] - rki[c])
		dλ[0][1][c] = 2.0*(β2+γ2-2.0*α2)*rjk[c] - 2.0*α2*rij[c]
		dλ[0][2][c] = -2.0*(β2+γ2-2.0*α2)*rjk[c] + 2.0*α2*rki[c]
		dλ[1][1][c] = 2.0 * β2 * (rjk[c] - rij[c])
		dλ[1][2][c] = 2.0*(γ2+α2-2.0*β2)*rki[c] - 2.0*β2*rjk[c]
		dλ[1][0][c] = -2.0*(γ2+α2-2.0*β2)*rki[c] + 2.0*β2*rij[c]
		dλ[2][2][c] = 2.0 * γ2 * (rki[c] - rjk[c])
		dλ[2][0][c] = 2.0*(α2+β2-2.0*γ2)*rij[c] - 2.0*γ2*rki[c]
		dλ[2][1][c] = -2.0*(α2+β2-2.0*γ2)*rij[c] + 2.0*γ2*rjk[c]
	}
	dΛ := [][]float64{make([]float64, 3), make([]float64, 3), make([]float64, 3)}
	for p := 0; p < 3; p++ {
		for c := 0; c < 3; c++ {
			dΛ[p][c] = dλ[0][p][c] + dλ[1][p][c] + dλ[2][p][c]
		}
	}

	// assemble via the quotient rule, with the weight itself on the
	// main diagonal
	if F.DrcDr == nil {
		F.DrcDr = [][][]float64{M3alloc(), M3alloc(), M3alloc()}
	}
	r := [][]float64{ri, rj, rk}
	for p := 0; p < 3; p++ {
		M := F.DrcDr[p]
		la.MatFill(M, 0)
		for q := 0; q < 3; q++ {
			for β := 0; β < 3; β++ {
				g := (Λ*dλ[q][p][β] - λ[q]*dΛ[p][β]) / (Λ * Λ)
				for α := 0; α < 3; α++ {
					M[α][β] += r[q][α] * g
				}
			}
		}
		for α := 0; α < 3; α++ {
			M[α][α] += λ[p] / Λ
		}
	}
}

// AngleFactorDeriv computes the gradient of the boundary angle factor
// of vertex v with respect to its own position and its neighbours'.
// The result goes to AngleDef: entry 0 is the self gradient, entry e+1
// aligns with Edges[e] and holds the gradient with respect to that
// neighbour (zero for neighbours outside the first and last non-hole
// faces). Interior vertices store nothing; so do degenerate corners
// and stars whose extreme faces are not triangles.
func (o *Mesh) AngleFactorDeriv(v int) {
	V := o.Verts[v]
	if !V.Boundary {
		return
	}
	V.AngleDef = V.AngleDef[:0]
	n := len(V.Faces)
	if !V.Attached || n < 3 {
		return
	}
	F1 := o.Faces[V.Faces[0]]
	Fn := o.Faces[V.Faces[n-2]]
	if F1.Nsides != 3 || Fn.Nsides != 3 {
		return
	}
	o.FcJacobian(F1.Id)
	o.FcJacobian(Fn.Id)

	u1 := make([]float64, 3)
	un := make([]float64, 3)
	w := make([]float64, 3)
	V3Sub(u1, F1.Rc, V.R)
	V3Sub(un, Fn.Rc, V.R)
	l1 := la.VecNorm(u1)
	ln := la.VecNorm(un)
	c := V3Dot(u1, un) / (l1 * ln)
	if c > 1 {
		c = 1
	}
	if c < -1 {
		c = -1
	}
	s := -1.0
	V3Cross(w, u1, un)
	if V3Dot(w, V.N) < 0 {
		s = 1.0
	}
	k := 0.0
	if 1.0-c*c > 0 {
		k = s / (2.0 * math.Pi * math.Sqrt(1.0-c*c))
	}
	hat1 := []float64{u1[0] / l1, u1[1] / l1, u1[2] / l1}
	hatn := []float64{un[0] / ln, un[1] / ln, un[2] / ln}

	// dcdr evaluates res := k dc/dr_p with J1, Jn the centre Jacobians
	// of the extreme faces with respect to r_p (nil when p does not
	// participate) and self marking p == v
	tmp := make([]float64, 3)
	dcdr := func(res []float64, J1, Jn [][]float64, self bool) {
		la.VecFill(res, 0)
		if J1 != nil {
			la.MatTrVecMulAdd(res, 1, J1, un)
		}
		if Jn != nil {
			la.MatTrVecMulAdd(res, 1, Jn, u1)
		}
		if self {
			for i := 0; i < 3; i++ {
				res[i] -= un[i] + u1[i]
			}
		}
		for i := 0; i < 3; i++ {
			res[i] /= l1 * ln
		}
		la.VecFill(tmp, 0)
		if Jn != nil {
			la.MatTrVecMulAdd(tmp, 1.0/ln, Jn, hatn)
		}
		if J1 != nil {
			la.MatTrVecMulAdd(tmp, 1.0/l1, J1, hat1)
		}
		if self {
			for i := 0; i < 3; i++ {
				tmp[i] -= hatn[i]/ln + hat1[i]/l1
			}
		}
		for i := 0; i < 3; i++ {
			res[i] = k * (res[i] - c*tmp[i])
		}
	}

	jac := func(F *Face, p int) [][]float64 {
		idx := F.VertIndex(p)
		if idx < 0 {
			return nil
		}
		return F.DrcDr[idx]
	}

	V.AngleDef = make([][]float64, 1+len(V.Edges))
	for i := range V.AngleDef {
		V.AngleDef[i] = make([]float64, 3)
	}
	dcdr(V.AngleDef[0], jac(F1, v), jac(Fn, v), true)
	for e, p := range V.Neigh {
		dcdr(V.AngleDef[e+1], jac(F1, p), jac(Fn, p), false)
	}
}
