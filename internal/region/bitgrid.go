package region

import "math/bits"

// wordBits is the width of one storage section.
const wordBits = 64

// sections returns the number of words that hold one column of the given height.
func sections(height int) int {
	return (height + wordBits - 1) / wordBits
}

// endMask returns the mask of valid bits in the last section of a column.
func endMask(height int) uint64 {
	if rem := height % wordBits; rem != 0 {
		return (uint64(1) << rem) - 1
	}
	return ^uint64(0)
}

// word returns the section s of column x.
func (r *Region) word(x, s int) uint64 {
	return r.data[x*r.ySections+s]
}

// column returns the words of column x as a subslice of data.
func (r *Region) column(x int) []uint64 {
	return r.data[x*r.ySections : (x+1)*r.ySections]
}

// maskPadding clears the bits past height in the last section of every column.
func (r *Region) maskPadding() {
	if r.yEndMask == ^uint64(0) {
		return
	}
	last := r.ySections - 1
	for x := 0; x < r.width; x++ {
		r.data[x*r.ySections+last] &= r.yEndMask
	}
}

// popcount counts set bits across all words.
func popcount(words []uint64) int {
	n := 0
	for _, w := range words {
		n += bits.OnesCount64(w)
	}
	return n
}

// selectBit returns the position of the n-th (0-based) set bit of w.
// w must hold more than n set bits.
func selectBit(w uint64, n int) int {
	for ; n > 0; n-- {
		w &= w - 1
	}
	return bits.TrailingZeros64(w)
}

// shiftUp moves every bit of col one position toward higher y, carrying across sections.
// dst and col may not alias.
func shiftUp(dst, col []uint64) {
	var carry uint64
	for s, w := range col {
		dst[s] = w<<1 | carry
		carry = w >> (wordBits - 1)
	}
}

// shiftDown moves every bit of col one position toward lower y, carrying across sections.
func shiftDown(dst, col []uint64) {
	var carry uint64
	for s := len(col) - 1; s >= 0; s-- {
		w := col[s]
		dst[s] = w>>1 | carry
		carry = w << (wordBits - 1)
	}
}
