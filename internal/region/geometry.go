package region

import "fmt"

// Translate moves every on cell by (dx, dy). Cells leaving the grid are dropped; nothing wraps.
func (r *Region) Translate(dx, dy int) *Region {
	if dx == 0 && dy == 0 {
		return r
	}
	if dx <= -r.width || dx >= r.width || dy <= -r.height || dy >= r.height {
		return r.Clear()
	}
	ys := r.ySections
	out := make([]uint64, len(r.data))
	for x := 0; x < r.width; x++ {
		sx := x - dx
		if sx < 0 || sx >= r.width {
			continue
		}
		shiftColumn(out[x*ys:(x+1)*ys], r.column(sx), dy)
	}
	copy(r.data, out)
	r.maskPadding()
	return r
}

// shiftColumn writes src moved by dy rows into dst. Positive dy moves toward higher y.
func shiftColumn(dst, src []uint64, dy int) {
	n := len(src)
	if dy >= 0 {
		q, b := dy/wordBits, uint(dy%wordBits)
		for s := q; s < n; s++ {
			w := src[s-q] << b
			if b != 0 && s-q-1 >= 0 {
				w |= src[s-q-1] >> (wordBits - b)
			}
			dst[s] = w
		}
		return
	}
	d := -dy
	q, b := d/wordBits, uint(d%wordBits)
	for s := 0; s+q < n; s++ {
		w := src[s+q] >> b
		if b != 0 && s+q+1 < n {
			w |= src[s+q+1] << (wordBits - b)
		}
		dst[s] = w
	}
}

// Zoom is ZoomBy with a factor of 2.
func (r *Region) Zoom(anchorX, anchorY int) *Region {
	return r.ZoomBy(anchorX, anchorY, 2)
}

// ZoomBy magnifies the region in place by an integer factor around (anchorX, anchorY).
// Source cell (anchorX+i, anchorY+j) becomes the factor×factor block whose top-left cell is
// (anchorX+i*factor, anchorY+j*factor); the anchor cell therefore stays put and grows toward
// higher x and y. The grid keeps its size, so blocks landing outside it are clipped.
// Factors below 2 leave the region unchanged.
func (r *Region) ZoomBy(anchorX, anchorY, factor int) *Region {
	if factor < 2 {
		return r
	}
	src := r.Copy()
	r.Clear()
	for x := 0; x < r.width; x++ {
		sx := anchorX + floorDiv(x-anchorX, factor)
		if sx < 0 || sx >= r.width {
			continue
		}
		for y := 0; y < r.height; y++ {
			if src.Contains(sx, anchorY+floorDiv(y-anchorY, factor)) {
				r.data[x*r.ySections+y/wordBits] |= 1 << (uint(y) & 63)
			}
		}
	}
	return r
}

// Scale returns a new region factor times wider and taller, each on cell becoming a
// factor×factor block anchored at the origin.
func (r *Region) Scale(factor int) (*Region, error) {
	if factor < 1 {
		return nil, fmt.Errorf("scale by %d: %w", factor, ErrInvalidArgument)
	}
	out, err := New(r.width*factor, r.height*factor)
	if err != nil {
		return nil, fmt.Errorf("scale by %d: %w", factor, err)
	}
	for c := range r.All() {
		out.InsertRectangle(c.X*factor, c.Y*factor, factor, factor)
	}
	return out, nil
}

// Downsample returns a new region with one cell per factor×factor block of r;
// a cell is on when any cell of its block is on. It inverts Scale exactly.
func (r *Region) Downsample(factor int) (*Region, error) {
	if factor < 1 {
		return nil, fmt.Errorf("downsample by %d: %w", factor, ErrInvalidArgument)
	}
	out, err := New((r.width+factor-1)/factor, (r.height+factor-1)/factor)
	if err != nil {
		return nil, fmt.Errorf("downsample by %d: %w", factor, err)
	}
	for c := range r.All() {
		out.Insert(c.X/factor, c.Y/factor)
	}
	return out, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
