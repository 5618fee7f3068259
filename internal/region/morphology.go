package region

import "fmt"

// Cells outside the grid count as off for every operator in this file.

// Expand grows the region by one cell in the four orthogonal directions.
func (r *Region) Expand() *Region {
	ys := r.ySections
	src := r.snapshot()
	up := make([]uint64, ys)
	down := make([]uint64, ys)
	for x := 0; x < r.width; x++ {
		col := src[x*ys : (x+1)*ys]
		dst := r.column(x)
		shiftUp(up, col)
		shiftDown(down, col)
		for s := range dst {
			w := col[s] | up[s] | down[s]
			if x > 0 {
				w |= src[(x-1)*ys+s]
			}
			if x < r.width-1 {
				w |= src[(x+1)*ys+s]
			}
			dst[s] = w
		}
	}
	r.maskPadding()
	return r
}

// Expand8Way grows the region by one cell in all eight directions.
func (r *Region) Expand8Way() *Region {
	ys := r.ySections
	vert := r.vertical(func(c, u, d uint64) uint64 { return c | u | d })
	for x := 0; x < r.width; x++ {
		dst := r.column(x)
		for s := range dst {
			w := vert[x*ys+s]
			if x > 0 {
				w |= vert[(x-1)*ys+s]
			}
			if x < r.width-1 {
				w |= vert[(x+1)*ys+s]
			}
			dst[s] = w
		}
	}
	r.maskPadding()
	return r
}

// Retract keeps only cells whose four orthogonal neighbors are all on.
// Cells touching the grid edge are always removed.
func (r *Region) Retract() *Region {
	ys := r.ySections
	src := r.snapshot()
	up := make([]uint64, ys)
	down := make([]uint64, ys)
	for x := 0; x < r.width; x++ {
		dst := r.column(x)
		if x == 0 || x == r.width-1 {
			clear(dst)
			continue
		}
		col := src[x*ys : (x+1)*ys]
		shiftUp(up, col)
		shiftDown(down, col)
		for s := range dst {
			dst[s] = col[s] & up[s] & down[s] & src[(x-1)*ys+s] & src[(x+1)*ys+s]
		}
	}
	r.maskPadding()
	return r
}

// Retract8Way keeps only cells whose eight neighbors are all on.
// Cells touching the grid edge are always removed.
func (r *Region) Retract8Way() *Region {
	ys := r.ySections
	vert := r.vertical(func(c, u, d uint64) uint64 { return c & u & d })
	for x := 0; x < r.width; x++ {
		dst := r.column(x)
		if x == 0 || x == r.width-1 {
			clear(dst)
			continue
		}
		for s := range dst {
			dst[s] = vert[(x-1)*ys+s] & vert[x*ys+s] & vert[(x+1)*ys+s]
		}
	}
	r.maskPadding()
	return r
}

// ExpandN applies Expand n times.
func (r *Region) ExpandN(n int) *Region {
	for range n {
		r.Expand()
	}
	return r
}

// Expand8WayN applies Expand8Way n times.
func (r *Region) Expand8WayN(n int) *Region {
	for range n {
		r.Expand8Way()
	}
	return r
}

// RetractN applies Retract n times.
func (r *Region) RetractN(n int) *Region {
	for range n {
		r.Retract()
	}
	return r
}

// Retract8WayN applies Retract8Way n times.
func (r *Region) Retract8WayN(n int) *Region {
	for range n {
		r.Retract8Way()
	}
	return r
}

// Fringe replaces the region with the cells Expand would add to it.
func (r *Region) Fringe() *Region {
	orig := r.snapshot()
	r.Expand()
	for i, w := range orig {
		r.data[i] &^= w
	}
	return r
}

// Fringe8Way replaces the region with the cells Expand8Way would add to it.
func (r *Region) Fringe8Way() *Region {
	orig := r.snapshot()
	r.Expand8Way()
	for i, w := range orig {
		r.data[i] &^= w
	}
	return r
}

// Surface replaces the region with the cells Retract would remove from it.
func (r *Region) Surface() *Region {
	orig := r.snapshot()
	r.Retract()
	for i, w := range orig {
		r.data[i] = w &^ r.data[i]
	}
	return r
}

// Surface8Way replaces the region with the cells Retract8Way would remove from it.
func (r *Region) Surface8Way() *Region {
	orig := r.snapshot()
	r.Retract8Way()
	for i, w := range orig {
		r.data[i] = w &^ r.data[i]
	}
	return r
}

// RemoveCorners smooths single-cell notches: Expand followed by Retract8Way.
func (r *Region) RemoveCorners() *Region {
	return r.Expand().Retract8Way()
}

// Flood grows the receiver (the seed) orthogonally for steps rounds without leaving bound.
// Each round is Expand followed by And(bound); it stops early once a round adds nothing.
func (r *Region) Flood(bound *Region, steps int) (*Region, error) {
	return r.flood(bound, steps, (*Region).Expand)
}

// Flood8Way is Flood using Expand8Way.
func (r *Region) Flood8Way(bound *Region, steps int) (*Region, error) {
	return r.flood(bound, steps, (*Region).Expand8Way)
}

func (r *Region) flood(bound *Region, steps int, grow func(*Region) *Region) (*Region, error) {
	if err := r.checkSize(bound); err != nil {
		return r, fmt.Errorf("flood: %w", err)
	}
	prev := -1
	for i := 0; i < steps; i++ {
		grow(r)
		for j, w := range bound.data {
			r.data[j] &= w
		}
		// From the second round on the region only grows, so an unchanged count is a fixed point.
		n := r.Count()
		if i > 0 && n == prev {
			break
		}
		prev = n
	}
	return r, nil
}

// snapshot returns a copy of the words of r.
func (r *Region) snapshot() []uint64 {
	out := make([]uint64, len(r.data))
	copy(out, r.data)
	return out
}

// vertical combines every column with its one-cell up and down shifts.
func (r *Region) vertical(op func(c, u, d uint64) uint64) []uint64 {
	ys := r.ySections
	out := make([]uint64, len(r.data))
	up := make([]uint64, ys)
	down := make([]uint64, ys)
	for x := 0; x < r.width; x++ {
		col := r.column(x)
		shiftUp(up, col)
		shiftDown(down, col)
		for s := range col {
			out[x*ys+s] = op(col[s], up[s], down[s])
		}
	}
	return out
}
