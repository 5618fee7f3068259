// Package region implements a fixed-size rectangular Boolean grid packed into 64-bit words.
//
// Storage is column-major: column x occupies ySections consecutive words and cell (x, y)
// is bit y%64 of word x*ySections + y/64. Bits of the last section that lie at or past
// the height are always zero.
//
// Mutating methods change the receiver in place and return it so calls can be chained:
//
//	r.Expand().Retract8Way()
//
// Use Copy before an operation when the original must survive. A single Region must not
// be mutated from several goroutines; distinct Regions share no state.
package region

import (
	"fmt"
	"math/bits"
)

// Region is a packed Boolean grid of width×height cells.
type Region struct {
	width, height int
	ySections     int
	yEndMask      uint64
	data          []uint64
}

// New creates an empty region of the given size.
func New(width, height int) (*Region, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new region %dx%d: %w", width, height, ErrInvalidArgument)
	}
	ys := sections(height)
	return &Region{
		width:     width,
		height:    height,
		ySections: ys,
		yEndMask:  endMask(height),
		data:      make([]uint64, width*ys),
	}, nil
}

// MustNew is New for sizes known to be valid; it panics otherwise.
func MustNew(width, height int) *Region {
	r, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return r
}

// Copy returns a deep copy of r.
func (r *Region) Copy() *Region {
	c := *r
	c.data = make([]uint64, len(r.data))
	copy(c.data, r.data)
	return &c
}

// emptyLike returns an empty region of the same size.
func (r *Region) emptyLike() *Region {
	c := *r
	c.data = make([]uint64, len(r.data))
	return &c
}

// Remake overwrites r with the contents of other.
func (r *Region) Remake(other *Region) (*Region, error) {
	if err := r.checkSize(other); err != nil {
		return r, err
	}
	copy(r.data, other.data)
	return r, nil
}

// Width returns the number of columns.
func (r *Region) Width() int { return r.width }

// Height returns the number of rows.
func (r *Region) Height() int { return r.height }

// InBounds reports whether (x, y) is a valid cell.
func (r *Region) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.width && y < r.height
}

// Contains reports whether cell (x, y) is on. Out-of-bounds cells are off.
func (r *Region) Contains(x, y int) bool {
	if !r.InBounds(x, y) {
		return false
	}
	return r.data[x*r.ySections+y/wordBits]&(1<<(uint(y)&63)) != 0
}

// Set switches cell (x, y) on or off. Out-of-bounds cells are ignored.
func (r *Region) Set(x, y int, on bool) *Region {
	if !r.InBounds(x, y) {
		return r
	}
	idx := x*r.ySections + y/wordBits
	bit := uint64(1) << (uint(y) & 63)
	if on {
		r.data[idx] |= bit
	} else {
		r.data[idx] &^= bit
	}
	return r
}

// Insert switches cell (x, y) on.
func (r *Region) Insert(x, y int) *Region {
	return r.Set(x, y, true)
}

// InsertCoords switches every given cell on, skipping cells outside the grid.
func (r *Region) InsertCoords(coords ...Coord) *Region {
	for _, c := range coords {
		r.Set(c.X, c.Y, true)
	}
	return r
}

// Remove switches cell (x, y) off.
func (r *Region) Remove(x, y int) *Region {
	return r.Set(x, y, false)
}

// Count returns the number of cells that are on.
func (r *Region) Count() int {
	return popcount(r.data)
}

// IsEmpty reports whether no cell is on.
func (r *Region) IsEmpty() bool {
	for _, w := range r.data {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clear switches every cell off.
func (r *Region) Clear() *Region {
	clear(r.data)
	return r
}

// Fill switches every cell on.
func (r *Region) Fill() *Region {
	for i := range r.data {
		r.data[i] = ^uint64(0)
	}
	r.maskPadding()
	return r
}

// Bounds returns the smallest rectangle holding every on cell as origin plus size.
// ok is false for an empty region.
func (r *Region) Bounds() (x, y, w, h int, ok bool) {
	minX, maxX := -1, -1
	rows := make([]uint64, r.ySections)
	for cx := 0; cx < r.width; cx++ {
		nonEmpty := false
		for s, v := range r.column(cx) {
			rows[s] |= v
			nonEmpty = nonEmpty || v != 0
		}
		if nonEmpty {
			if minX < 0 {
				minX = cx
			}
			maxX = cx
		}
	}
	if minX < 0 {
		return 0, 0, 0, 0, false
	}
	minY, maxY := -1, -1
	for s, v := range rows {
		if v == 0 {
			continue
		}
		if minY < 0 {
			minY = s*wordBits + bits.TrailingZeros64(v)
		}
		maxY = s*wordBits + bits.Len64(v) - 1
	}
	return minX, minY, maxX - minX + 1, maxY - minY + 1, true
}

func (r *Region) checkSize(other *Region) error {
	if other == nil || r.width != other.width || r.height != other.height {
		ow, oh := 0, 0
		if other != nil {
			ow, oh = other.width, other.height
		}
		return fmt.Errorf("%dx%d vs %dx%d: %w", r.width, r.height, ow, oh, ErrDimensionMismatch)
	}
	return nil
}
