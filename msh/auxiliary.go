// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

// removeInt removes the first occurrence of x from s
func removeInt(s []int, x int) []int {
	for i, v := range s {
		if v == x {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// rotateInts rotates s to the left by k positions
func rotateInts(s []int, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k = k % n
	if k == 0 {
		return
	}
	t := make([]int, n)
	copy(t, s[k:])
	copy(t[n-k:], s[:k])
	copy(s, t)
}

// reverseInts reverses s in place
func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// containsInt reports whether x occurs in s
func containsInt(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}
	return false
}
