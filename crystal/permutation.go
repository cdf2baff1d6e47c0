// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

// Permutation is a bijection on {0, …, n-1}. A symmetry candidate that
// maps the i-th site onto the p[i]-th site is recorded as the
// permutation p.
type Permutation []int

// IdentityPermutation returns the identity on n elements.
func IdentityPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Apply returns the image of i.
func (p Permutation) Apply(i int) int { return p[i] }

// Inverse returns the inverse permutation.
func (p Permutation) Inverse() Permutation {
	inv := make(Permutation, len(p))
	for i, j := range p {
		inv[j] = i
	}
	return inv
}

// Mul returns the composition p∘q, applying q first.
func (p Permutation) Mul(q Permutation) Permutation {
	r := make(Permutation, len(p))
	for i := range r {
		r[i] = p[q[i]]
	}
	return r
}

// Equal reports whether p and q are the same permutation.
func (p Permutation) Equal(q Permutation) bool {
	if len(p) != len(q) {
		return false
	}
	for i, v := range p {
		if q[i] != v {
			return false
		}
	}
	return true
}

// Orbits returns, for each of n sites, the smallest index in its orbit
// under the given permutations. orbits[i] == orbits[j] exactly when i
// and j are equivalent, and orbits[i] == i for each representative.
func Orbits(n int, perms []Permutation) []int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(i, j int) {
		ri, rj := find(i), find(j)
		if ri != rj {
			parent[rj] = ri
		}
	}
	for _, p := range perms {
		for i := 0; i < n; i++ {
			union(i, p.Apply(i))
		}
	}

	rep := make(map[int]int)
	orbits := make([]int, n)
	for i := 0; i < n; i++ {
		r := find(i)
		if _, ok := rep[r]; !ok {
			rep[r] = i
		}
		orbits[i] = rep[r]
	}
	return orbits
}
