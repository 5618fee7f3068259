package region

import (
	"fmt"
	"math/rand/v2"
)

// SingleRandom returns one on cell, every on cell being equally likely.
func (r *Region) SingleRandom(rng *rand.Rand) (Coord, error) {
	ct := r.Count()
	if ct == 0 {
		return Coord{}, fmt.Errorf("single random: %w", ErrEmptyRegion)
	}
	c, _ := r.Nth(rng.IntN(ct))
	return c, nil
}

// MultipleRandom returns up to n distinct on cells chosen uniformly, in draw order.
func (r *Region) MultipleRandom(n int, rng *rand.Rand) ([]Coord, error) {
	coords := r.Coords()
	if len(coords) == 0 {
		return nil, fmt.Errorf("multiple random: %w", ErrEmptyRegion)
	}
	n = min(max(n, 0), len(coords))
	out := make([]Coord, n)
	for i, idx := range rng.Perm(len(coords))[:n] {
		out[i] = coords[idx]
	}
	return out, nil
}

// SeparatedPortion keeps about fraction of the on cells, picked by walking the base-2
// van der Corput sequence over the cells' column-major ordinals. The same input always
// yields the same output.
func (r *Region) SeparatedPortion(fraction float64) *Region {
	return r.lowDiscrepancyPortion(fraction, func(i uint64) uint64 { return i })
}

// QuasiRandomSeparated is SeparatedPortion with the sequence indices taken in Gray-code
// order, which interleaves the picks differently across small portions.
func (r *Region) QuasiRandomSeparated(fraction float64) *Region {
	return r.lowDiscrepancyPortion(fraction, gray)
}

func (r *Region) lowDiscrepancyPortion(fraction float64, index func(uint64) uint64) *Region {
	ct := r.Count()
	want := portionSize(ct, fraction)
	if want >= ct {
		return r
	}
	if want == 0 {
		return r.Clear()
	}
	chosen := make([]bool, ct)
	for i := range want {
		idx := int(vanDerCorput(index(uint64(i))) * float64(ct))
		for chosen[idx] {
			idx++
			if idx == ct {
				idx = 0
			}
		}
		chosen[idx] = true
	}
	r.keepOrdinals(chosen)
	return r
}

// RandomPortion keeps about fraction of the on cells, chosen uniformly without replacement.
func (r *Region) RandomPortion(fraction float64, rng *rand.Rand) *Region {
	ct := r.Count()
	want := portionSize(ct, fraction)
	if want >= ct {
		return r
	}
	chosen := make([]bool, ct)
	for _, idx := range rng.Perm(ct)[:want] {
		chosen[idx] = true
	}
	r.keepOrdinals(chosen)
	return r
}

// keepOrdinals switches off every on cell whose column-major ordinal is not chosen.
func (r *Region) keepOrdinals(chosen []bool) {
	ord := 0
	for i, w := range r.data {
		keep := w
		for w != 0 {
			bit := w & -w
			if !chosen[ord] {
				keep &^= bit
			}
			ord++
			w &^= bit
		}
		r.data[i] = keep
	}
}

// Disperse removes cells until no two on cells are orthogonally adjacent.
// Cells are visited in column-major order and kept when no kept neighbor precedes them,
// so every connected group keeps at least its first cell.
func (r *Region) Disperse() *Region {
	return r.disperseOrdered(false)
}

// Disperse8Way is Disperse with diagonal adjacency counted too.
func (r *Region) Disperse8Way() *Region {
	return r.disperseOrdered(true)
}

func (r *Region) disperseOrdered(diagonal bool) *Region {
	kept := r.emptyLike()
	for c := range r.All() {
		if kept.Contains(c.X-1, c.Y) || kept.Contains(c.X, c.Y-1) {
			continue
		}
		if diagonal && (kept.Contains(c.X-1, c.Y-1) || kept.Contains(c.X-1, c.Y+1)) {
			continue
		}
		kept.Insert(c.X, c.Y)
	}
	copy(r.data, kept.data)
	return r
}

// DisperseRandom is Disperse with the visiting order shuffled by rng.
func (r *Region) DisperseRandom(rng *rand.Rand) *Region {
	return r.disperseShuffled(rng, false)
}

// DisperseRandom8Way is Disperse8Way with the visiting order shuffled by rng.
func (r *Region) DisperseRandom8Way(rng *rand.Rand) *Region {
	return r.disperseShuffled(rng, true)
}

func (r *Region) disperseShuffled(rng *rand.Rand, diagonal bool) *Region {
	coords := r.Coords()
	rng.Shuffle(len(coords), func(i, j int) { coords[i], coords[j] = coords[j], coords[i] })
	r.Clear()
	for _, c := range coords {
		if r.Contains(c.X-1, c.Y) || r.Contains(c.X+1, c.Y) || r.Contains(c.X, c.Y-1) || r.Contains(c.X, c.Y+1) {
			continue
		}
		if diagonal && (r.Contains(c.X-1, c.Y-1) || r.Contains(c.X+1, c.Y-1) ||
			r.Contains(c.X-1, c.Y+1) || r.Contains(c.X+1, c.Y+1)) {
			continue
		}
		r.Insert(c.X, c.Y)
	}
	return r
}
