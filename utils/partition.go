package utils

// SplitRange partitions [0, n) into np near-equal contiguous chunks and
// returns the np+1 chunk boundaries. Chunk k is [bounds[k], bounds[k+1]).
// The first n%np chunks carry one extra item.
func SplitRange(n, np int) (bounds []int) {
	bounds = make([]int, np+1)
	var (
		base = n / np
		rem  = n % np
	)
	for k := 0; k < np; k++ {
		sz := base
		if k < rem {
			sz++
		}
		bounds[k+1] = bounds[k] + sz
	}
	return
}
