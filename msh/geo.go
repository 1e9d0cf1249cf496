// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// V3Dot returns the dot product between two 3-vectors
func V3Dot(u, v []float64) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// V3Cross computes the cross product w := u cross v
func V3Cross(w, u, v []float64) {
	w[0] = u[1]*v[2] - u[2]*v[1]
	w[1] = u[2]*v[0] - u[0]*v[2]
	w[2] = u[0]*v[1] - u[1]*v[0]
}

// V3Sub computes the difference w := u - v
func V3Sub(w, u, v []float64) {
	w[0] = u[0] - v[0]
	w[1] = u[1] - v[1]
	w[2] = u[2] - v[2]
}

// V3Outer computes the outer product M += u dyad v
func V3Outer(M [][]float64, u, v []float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			M[i][j] += u[i] * v[j]
		}
	}
}

// V3Dist returns the Euclidean distance between two points
func V3Dist(u, v []float64) float64 {
	dx := u[0] - v[0]
	dy := u[1] - v[1]
	dz := u[2] - v[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// SignedAngle returns the angle between u and v measured about the axis n,
// in (-pi, pi]
func SignedAngle(u, v, n []float64) float64 {
	w := make([]float64, 3)
	V3Cross(w, u, v)
	return math.Atan2(V3Dot(w, n), V3Dot(u, v))
}

// M3alloc allocates a 3x3 matrix
func M3alloc() [][]float64 {
	return la.MatAlloc(3, 3)
}
