package region

import "fmt"

// And keeps only the cells that are on in both r and other.
func (r *Region) And(other *Region) (*Region, error) {
	if err := r.checkSize(other); err != nil {
		return r, fmt.Errorf("and: %w", err)
	}
	for i, w := range other.data {
		r.data[i] &= w
	}
	return r, nil
}

// Or switches on every cell that is on in other.
func (r *Region) Or(other *Region) (*Region, error) {
	if err := r.checkSize(other); err != nil {
		return r, fmt.Errorf("or: %w", err)
	}
	for i, w := range other.data {
		r.data[i] |= w
	}
	return r, nil
}

// Xor keeps the cells that are on in exactly one of r and other.
func (r *Region) Xor(other *Region) (*Region, error) {
	if err := r.checkSize(other); err != nil {
		return r, fmt.Errorf("xor: %w", err)
	}
	for i, w := range other.data {
		r.data[i] ^= w
	}
	return r, nil
}

// AndNot switches off every cell that is on in other.
func (r *Region) AndNot(other *Region) (*Region, error) {
	if err := r.checkSize(other); err != nil {
		return r, fmt.Errorf("and not: %w", err)
	}
	for i, w := range other.data {
		r.data[i] &^= w
	}
	return r, nil
}

// Not inverts every cell.
func (r *Region) Not() *Region {
	for i, w := range r.data {
		r.data[i] = ^w
	}
	r.maskPadding()
	return r
}

// Equals reports whether other has the same size and the same cells on.
func (r *Region) Equals(other *Region) bool {
	if other == nil || r.width != other.width || r.height != other.height {
		return false
	}
	for i, w := range r.data {
		if other.data[i] != w {
			return false
		}
	}
	return true
}

// Intersects reports whether any cell is on in both regions.
// Regions of different size never intersect.
func (r *Region) Intersects(other *Region) bool {
	if r.checkSize(other) != nil {
		return false
	}
	for i, w := range r.data {
		if w&other.data[i] != 0 {
			return true
		}
	}
	return false
}

// Sum counts, per cell, how many of the given regions have it on.
// The result is indexed [x][y]. All regions must share one size.
func Sum(regions ...*Region) ([][]int, error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("sum of no regions: %w", ErrInvalidArgument)
	}
	first := regions[0]
	for _, r := range regions[1:] {
		if err := first.checkSize(r); err != nil {
			return nil, fmt.Errorf("sum: %w", err)
		}
	}
	out := make([][]int, first.width)
	for x := range out {
		out[x] = make([]int, first.height)
	}
	for _, r := range regions {
		for c := range r.All() {
			out[c.X][c.Y]++
		}
	}
	return out, nil
}
