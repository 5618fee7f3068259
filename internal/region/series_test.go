package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counts(rs []*Region) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.Count()
	}
	return out
}

func TestFringeSeriesToLimit8Way(t *testing.T) {
	center := MustNew(7, 7).Insert(3, 3)

	all := center.FringeSeriesToLimit8Way(0)
	assert.Equal(t, []int{8, 16, 24}, counts(all))

	capped := center.FringeSeriesToLimit8Way(2)
	require.Len(t, capped, 2)
	assert.True(t, capped[1].Equals(all[1]))

	assert.Equal(t, 1, center.Count(), "receiver untouched")
	assert.Empty(t, MustNew(7, 7).FringeSeriesToLimit8Way(5))
	assert.Empty(t, MustNew(3, 3).Fill().FringeSeriesToLimit8Way(5))
}

func TestFringeSeriesToLimit(t *testing.T) {
	corner := MustNew(3, 3).Insert(0, 0)
	assert.Equal(t, []int{2, 3, 2, 1}, counts(corner.FringeSeriesToLimit(0)))
}

func TestFringeSeriesLayersAreDisjoint(t *testing.T) {
	a := randomRegion(7, 40, 70, 0.02)
	layers := a.FringeSeries(4)
	require.Len(t, layers, 4)

	union := a.Copy()
	for i, l := range layers {
		assert.False(t, l.Intersects(union), "layer %d overlaps inner cells", i)
		_, err := union.Or(l)
		require.NoError(t, err)
	}
	assert.True(t, union.Equals(a.Copy().ExpandN(4)))

	layers8 := a.FringeSeries8Way(2)
	assert.True(t, layers8[0].Equals(a.Copy().Fringe8Way()))
}

func TestExpandSeries(t *testing.T) {
	r := MustNew(9, 9).Insert(4, 4)
	assert.Equal(t, []int{5, 13}, counts(r.ExpandSeries(2)))
	assert.Equal(t, []int{9, 25}, counts(r.ExpandSeries8Way(2)))
	assert.Nil(t, r.ExpandSeries(0))
}

func TestRetractSeries8Way(t *testing.T) {
	full := MustNew(7, 7).Fill()

	series := full.RetractSeries8Way(0)
	assert.Equal(t, []int{25, 9, 1}, counts(series))
	assert.Equal(t, []int{25}, counts(full.RetractSeries8Way(1)))

	assert.Equal(t, []int{25, 9, 1}, counts(full.RetractSeries(0)))
	assert.Empty(t, MustNew(2, 2).Fill().RetractSeries8Way(3))
}

func TestSurfaceSeries(t *testing.T) {
	full := MustNew(7, 7).Fill()

	assert.Equal(t, []int{24, 16, 8}, counts(full.SurfaceSeries8Way(3)))
	assert.Equal(t, []int{24, 16}, counts(full.SurfaceSeries(2)))
}

func TestDistanceFieldFromRetractSeries(t *testing.T) {
	full := MustNew(7, 7).Fill()
	layers := append([]*Region{full}, full.RetractSeries8Way(0)...)

	field, err := Sum(layers...)
	require.NoError(t, err)
	assert.Equal(t, 4, field[3][3])
	assert.Equal(t, 1, field[0][6])
	assert.Equal(t, 2, field[1][3])

	// outside cells, via the inverse, count distance to the mask
	mask := MustNew(7, 7).InsertRectangle(2, 2, 3, 3)
	outer := mask.Copy().Not()
	outLayers := append([]*Region{outer}, outer.RetractSeries8Way(0)...)
	outField, err := Sum(outLayers...)
	require.NoError(t, err)
	assert.Equal(t, 0, outField[3][3])
	assert.Equal(t, 1, outField[1][1])
}

func TestFloodSeries(t *testing.T) {
	bound := MustNew(10, 1).Fill()
	seed := MustNew(10, 1).Insert(0, 0)

	steps, err := seed.FloodSeries(bound, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, counts(steps))
	assert.Equal(t, 1, seed.Count())

	_, err = seed.FloodSeries(MustNew(2, 2), 1)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
