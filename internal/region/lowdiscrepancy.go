package region

import "math/bits"

// vanDerCorput returns the base-2 radical inverse of i in [0, 1).
func vanDerCorput(i uint64) float64 {
	return float64(bits.Reverse64(i)>>11) * 0x1p-53
}

// gray maps i to its reflected binary code; it permutes every [0, 2^k) range.
func gray(i uint64) uint64 {
	return i ^ i>>1
}

// portionSize is the number of cells a fraction of total selects.
func portionSize(total int, fraction float64) int {
	switch {
	case fraction <= 0 || total == 0:
		return 0
	case fraction >= 1:
		return total
	}
	return int(fraction * float64(total))
}
