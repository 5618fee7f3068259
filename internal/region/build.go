package region

import "fmt"

// InsertRectangle switches on the half-open rectangle [x, x+w) × [y, y+h), clipped to the grid.
// Rectangles with a non-positive extent or entirely outside the grid change nothing.
func (r *Region) InsertRectangle(x, y, w, h int) *Region {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, r.width), min(y+h, r.height)
	if w <= 0 || h <= 0 || x0 >= x1 || y0 >= y1 {
		return r
	}
	for s := y0 / wordBits; s <= (y1-1)/wordBits; s++ {
		m := spanMask(s, y0, y1)
		for cx := x0; cx < x1; cx++ {
			r.data[cx*r.ySections+s] |= m
		}
	}
	return r
}

// RemoveRectangle switches off the half-open rectangle [x, x+w) × [y, y+h), clipped to the grid.
func (r *Region) RemoveRectangle(x, y, w, h int) *Region {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, r.width), min(y+h, r.height)
	if w <= 0 || h <= 0 || x0 >= x1 || y0 >= y1 {
		return r
	}
	for s := y0 / wordBits; s <= (y1-1)/wordBits; s++ {
		m := spanMask(s, y0, y1)
		for cx := x0; cx < x1; cx++ {
			r.data[cx*r.ySections+s] &^= m
		}
	}
	return r
}

// spanMask returns the bits of section s that fall inside rows [lo, hi).
func spanMask(s, lo, hi int) uint64 {
	base := s * wordBits
	from := max(lo-base, 0)
	to := min(hi-base, wordBits)
	if from >= to {
		return 0
	}
	var m uint64
	if to == wordBits {
		m = ^uint64(0)
	} else {
		m = (uint64(1) << to) - 1
	}
	return m &^ ((uint64(1) << from) - 1)
}

// Rect creates a width×height region holding one rectangle.
// Unlike InsertRectangle it rejects rectangles that would leave the region empty.
func Rect(width, height, x, y, w, h int) (*Region, error) {
	r, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rectangle %dx%d at (%d,%d): zero extent: %w", w, h, x, y, ErrInvalidArgument)
	}
	if x >= width || y >= height || x+w <= 0 || y+h <= 0 {
		return nil, fmt.Errorf("rectangle %dx%d at (%d,%d) outside %dx%d: %w", w, h, x, y, width, height, ErrInvalidArgument)
	}
	return r.InsertRectangle(x, y, w, h), nil
}

// FromCoords creates a width×height region with the given cells on.
func FromCoords(width, height int, coords ...Coord) (*Region, error) {
	r, err := New(width, height)
	if err != nil {
		return nil, err
	}
	return r.InsertCoords(coords...), nil
}

// FromChars creates a region from a grid indexed [x][y]; a cell is on iff its rune equals on.
// Every column must have the same length.
func FromChars(chars [][]rune, on rune) (*Region, error) {
	if len(chars) == 0 {
		return nil, fmt.Errorf("char grid has no columns: %w", ErrInvalidArgument)
	}
	height := len(chars[0])
	r, err := New(len(chars), height)
	if err != nil {
		return nil, fmt.Errorf("char grid: %w", err)
	}
	for x, col := range chars {
		if len(col) != height {
			return nil, fmt.Errorf("char grid column %d has %d cells, want %d: %w", x, len(col), height, ErrInvalidArgument)
		}
		for y, ch := range col {
			if ch == on {
				r.Insert(x, y)
			}
		}
	}
	return r, nil
}

// ParseLines creates a region from text rows, line y holding cells (0..w-1, y).
// A cell is on iff its rune equals on. Every line must have the same rune count.
func ParseLines(lines []string, on rune) (*Region, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("no lines: %w", ErrInvalidArgument)
	}
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
		if len(rows[y]) != len(rows[0]) {
			return nil, fmt.Errorf("line %d has %d cells, want %d: %w", y, len(rows[y]), len(rows[0]), ErrInvalidArgument)
		}
	}
	r, err := New(len(rows[0]), len(rows))
	if err != nil {
		return nil, fmt.Errorf("parse lines: %w", err)
	}
	for y, row := range rows {
		for x, ch := range row {
			if ch == on {
				r.Insert(x, y)
			}
		}
	}
	return r, nil
}
