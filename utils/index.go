package utils

import "sort"

// Index is a list of DOF (degree of freedom) numbers, used to address
// rows/columns of the global system and to carry free/prescribed partitions.
type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

// NewRange returns the inclusive range [rmin, rmax].
func NewRange(rmin, rmax int) (I Index) {
	var (
		size = rmax - rmin + 1
	)
	if size < 0 {
		size = 0
	}
	I = make(Index, size)
	for i := range I {
		I[i] = i + rmin
	}
	return
}

func (I Index) Copy() (R Index) {
	R = make(Index, len(I))
	copy(R, I)
	return
}

func (I Index) Contains(val int) bool {
	for _, ival := range I {
		if ival == val {
			return true
		}
	}
	return false
}

// Complement returns the indices of [0, N) not present in I, in increasing
// order. The ordering is load-bearing: row k of a condensed system maps to
// the k-th smallest free DOF.
func (I Index) Complement(N int) (R Index) {
	var (
		member = make([]bool, N)
	)
	for _, ival := range I {
		member[ival] = true
	}
	for i := 0; i < N; i++ {
		if !member[i] {
			R = append(R, i)
		}
	}
	return
}

// HasDuplicates reports whether any value appears more than once.
func (I Index) HasDuplicates() bool {
	seen := make(map[int]struct{}, len(I))
	for _, ival := range I {
		if _, ok := seen[ival]; ok {
			return true
		}
		seen[ival] = struct{}{}
	}
	return false
}

func (I Index) Min() (min int) {
	min = I[0]
	for _, ival := range I {
		if ival < min {
			min = ival
		}
	}
	return
}

func (I Index) Max() (max int) {
	max = I[0]
	for _, ival := range I {
		if ival > max {
			max = ival
		}
	}
	return
}

func (I Index) Sorted() (R Index) {
	R = I.Copy()
	sort.Ints(R)
	return
}

func (I Index) Apply(f func(val int) int) (R Index) {
	R = make(Index, len(I))
	for i, val := range I {
		R[i] = f(val)
	}
	return
}
