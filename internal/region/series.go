package region

// Series methods leave the receiver unchanged and return fresh regions.

// ExpandSeries returns n regions, the i-th being the receiver expanded i+1 times.
func (r *Region) ExpandSeries(n int) []*Region {
	return r.series(n, (*Region).Expand)
}

// ExpandSeries8Way is ExpandSeries using Expand8Way.
func (r *Region) ExpandSeries8Way(n int) []*Region {
	return r.series(n, (*Region).Expand8Way)
}

// FringeSeries returns n concentric outward layers, innermost first.
// Layer i holds the cells added by the (i+1)-th Expand; layers may be empty.
func (r *Region) FringeSeries(n int) []*Region {
	return layers(r, r.series(n, (*Region).Expand), false)
}

// FringeSeries8Way is FringeSeries using Expand8Way.
func (r *Region) FringeSeries8Way(n int) []*Region {
	return layers(r, r.series(n, (*Region).Expand8Way), false)
}

// FringeSeriesToLimit collects outward layers until one comes out empty or limit layers exist.
// A limit of zero or less means no cap; the grid is finite, so growth always saturates.
func (r *Region) FringeSeriesToLimit(limit int) []*Region {
	return r.fringeToLimit(limit, (*Region).Expand)
}

// FringeSeriesToLimit8Way is FringeSeriesToLimit using Expand8Way.
func (r *Region) FringeSeriesToLimit8Way(limit int) []*Region {
	return r.fringeToLimit(limit, (*Region).Expand8Way)
}

// RetractSeries returns successive retractions of the receiver, stopping before the first
// empty one or after limit regions. A limit of zero or less means until empty.
func (r *Region) RetractSeries(limit int) []*Region {
	return r.retractToLimit(limit, (*Region).Retract)
}

// RetractSeries8Way is RetractSeries using Retract8Way.
func (r *Region) RetractSeries8Way(limit int) []*Region {
	return r.retractToLimit(limit, (*Region).Retract8Way)
}

// SurfaceSeries returns n concentric inward layers, outermost first.
// Layer i holds the cells removed by the (i+1)-th Retract.
func (r *Region) SurfaceSeries(n int) []*Region {
	return layers(r, r.series(n, (*Region).Retract), true)
}

// SurfaceSeries8Way is SurfaceSeries using Retract8Way.
func (r *Region) SurfaceSeries8Way(n int) []*Region {
	return layers(r, r.series(n, (*Region).Retract8Way), true)
}

// FloodSeries returns the state of a Flood after each of steps rounds.
func (r *Region) FloodSeries(bound *Region, steps int) ([]*Region, error) {
	if err := r.checkSize(bound); err != nil {
		return nil, err
	}
	out := make([]*Region, 0, max(steps, 0))
	cur := r.Copy()
	for range steps {
		cur.Expand()
		for j, w := range bound.data {
			cur.data[j] &= w
		}
		out = append(out, cur.Copy())
	}
	return out, nil
}

func (r *Region) series(n int, step func(*Region) *Region) []*Region {
	if n <= 0 {
		return nil
	}
	out := make([]*Region, n)
	cur := r.Copy()
	for i := range out {
		step(cur)
		out[i] = cur.Copy()
	}
	return out
}

// layers turns nested stages into the differences between consecutive stages.
// For shrinking stages the earlier stage minus the later one is kept.
func layers(base *Region, stages []*Region, shrinking bool) []*Region {
	prev := base
	for _, st := range stages {
		next := st.Copy()
		for i, w := range prev.data {
			if shrinking {
				st.data[i] = w &^ st.data[i]
			} else {
				st.data[i] &^= w
			}
		}
		prev = next
	}
	return stages
}

func (r *Region) fringeToLimit(limit int, step func(*Region) *Region) []*Region {
	var out []*Region
	cur := r.Copy()
	for limit <= 0 || len(out) < limit {
		prev := cur.snapshot()
		step(cur)
		layer := cur.Copy()
		for i, w := range prev {
			layer.data[i] &^= w
		}
		if layer.IsEmpty() {
			break
		}
		out = append(out, layer)
	}
	return out
}

func (r *Region) retractToLimit(limit int, step func(*Region) *Region) []*Region {
	var out []*Region
	cur := r.Copy()
	for limit <= 0 || len(out) < limit {
		step(cur)
		if cur.IsEmpty() {
			break
		}
		out = append(out, cur.Copy())
	}
	return out
}
