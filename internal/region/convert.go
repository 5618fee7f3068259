package region

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// All yields every on cell in column-major order: x ascending, then y ascending.
func (r *Region) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for x := 0; x < r.width; x++ {
			for s, w := range r.column(x) {
				for w != 0 {
					y := s*wordBits + bits.TrailingZeros64(w)
					if !yield(Coord{X: x, Y: y}) {
						return
					}
					w &= w - 1
				}
			}
		}
	}
}

// Coords returns every on cell in the order of All.
func (r *Region) Coords() []Coord {
	out := make([]Coord, 0, r.Count())
	for c := range r.All() {
		out = append(out, c)
	}
	return out
}

// Nth returns the on cell with the given ordinal in the order of All.
func (r *Region) Nth(index int) (Coord, bool) {
	if index < 0 {
		return Coord{}, false
	}
	for i, w := range r.data {
		n := bits.OnesCount64(w)
		if index < n {
			x, s := i/r.ySections, i%r.ySections
			return Coord{X: x, Y: s*wordBits + selectBit(w, index)}, true
		}
		index -= n
	}
	return Coord{}, false
}

// ToChars renders the region as a grid indexed [x][y].
func (r *Region) ToChars(on, off rune) [][]rune {
	out := make([][]rune, r.width)
	for x := range out {
		col := make([]rune, r.height)
		for y := range col {
			if r.Contains(x, y) {
				col[y] = on
			} else {
				col[y] = off
			}
		}
		out[x] = col
	}
	return out
}

// Lines renders the region as text rows, line y holding cells (0..w-1, y).
func (r *Region) Lines(on, off rune) []string {
	out := make([]string, r.height)
	var sb strings.Builder
	for y := range out {
		sb.Reset()
		for x := 0; x < r.width; x++ {
			if r.Contains(x, y) {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
		out[y] = sb.String()
	}
	return out
}

func (r *Region) String() string {
	return strings.Join(r.Lines('#', '.'), "\n")
}

// Fit projects a numeric field indexed [x][y] through the region: on cells take
// their value from numbers, off cells get fallback.
func (r *Region) Fit(numbers [][]int, fallback int) ([][]int, error) {
	if len(numbers) != r.width {
		return nil, fmt.Errorf("fit: field has %d columns, region %d: %w", len(numbers), r.width, ErrDimensionMismatch)
	}
	out := make([][]int, r.width)
	for x, col := range numbers {
		if len(col) != r.height {
			return nil, fmt.Errorf("fit: field column %d has %d rows, region %d: %w", x, len(col), r.height, ErrDimensionMismatch)
		}
		dst := make([]int, r.height)
		for y := range dst {
			if r.Contains(x, y) {
				dst[y] = col[y]
			} else {
				dst[y] = fallback
			}
		}
		out[x] = dst
	}
	return out, nil
}
