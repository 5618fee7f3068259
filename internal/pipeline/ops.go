package pipeline

import (
	"fmt"
	"math/rand/v2"

	"github.com/udisondev/bitregion/internal/region"
)

type op struct {
	minArgs, maxArgs int
	apply            func(r *region.Region, args []int, rng *rand.Rand) error
}

// unary wraps an argument-free in-place operator.
func unary(f func(*region.Region) *region.Region) op {
	return op{apply: func(r *region.Region, _ []int, _ *rand.Rand) error {
		f(r)
		return nil
	}}
}

// portion wraps a fraction-taking sampler; the single argument is per-mille.
func portion(f func(r *region.Region, fraction float64, rng *rand.Rand)) op {
	return op{minArgs: 1, maxArgs: 1, apply: func(r *region.Region, args []int, rng *rand.Rand) error {
		if args[0] < 0 || args[0] > 1000 {
			return fmt.Errorf("fraction %d‰ out of 0..1000: %w", args[0], ErrBadArgs)
		}
		f(r, float64(args[0])/1000, rng)
		return nil
	}}
}

var ops = map[string]op{
	"expand":   unary((*region.Region).Expand),
	"expand8":  unary((*region.Region).Expand8Way),
	"retract":  unary((*region.Region).Retract),
	"retract8": unary((*region.Region).Retract8Way),
	"fringe":   unary((*region.Region).Fringe),
	"fringe8":  unary((*region.Region).Fringe8Way),
	"surface":  unary((*region.Region).Surface),
	"surface8": unary((*region.Region).Surface8Way),
	"corners":  unary((*region.Region).RemoveCorners),
	"not":      unary((*region.Region).Not),
	"disperse": unary((*region.Region).Disperse),

	"disperse8": unary((*region.Region).Disperse8Way),

	"translate": {minArgs: 2, maxArgs: 2, apply: func(r *region.Region, a []int, _ *rand.Rand) error {
		r.Translate(a[0], a[1])
		return nil
	}},
	"zoom": {minArgs: 2, maxArgs: 3, apply: func(r *region.Region, a []int, _ *rand.Rand) error {
		factor := 2
		if len(a) == 3 {
			factor = a[2]
		}
		r.ZoomBy(a[0], a[1], factor)
		return nil
	}},
	"rect": {minArgs: 4, maxArgs: 4, apply: func(r *region.Region, a []int, _ *rand.Rand) error {
		r.InsertRectangle(a[0], a[1], a[2], a[3])
		return nil
	}},
	"line": {minArgs: 4, maxArgs: 4, apply: func(r *region.Region, a []int, _ *rand.Rand) error {
		r.InsertLine(a[0], a[1], a[2], a[3])
		return nil
	}},
	"flood": {minArgs: 3, maxArgs: 3, apply: func(r *region.Region, a []int, _ *rand.Rand) error {
		if !r.InBounds(a[0], a[1]) {
			return fmt.Errorf("seed (%d,%d) outside %dx%d: %w", a[0], a[1], r.Width(), r.Height(), ErrBadArgs)
		}
		seed := region.MustNew(r.Width(), r.Height()).Insert(a[0], a[1])
		if _, err := seed.Flood(r, a[2]); err != nil {
			return err
		}
		_, err := r.Remake(seed)
		return err
	}},
	"disperse_random": {apply: func(r *region.Region, _ []int, rng *rand.Rand) error {
		r.DisperseRandom(rng)
		return nil
	}},
	"disperse_random8": {apply: func(r *region.Region, _ []int, rng *rand.Rand) error {
		r.DisperseRandom8Way(rng)
		return nil
	}},
	"separated": portion(func(r *region.Region, f float64, _ *rand.Rand) { r.SeparatedPortion(f) }),
	"quasi":     portion(func(r *region.Region, f float64, _ *rand.Rand) { r.QuasiRandomSeparated(f) }),
	"random":    portion(func(r *region.Region, f float64, rng *rand.Rand) { r.RandomPortion(f, rng) }),
}
