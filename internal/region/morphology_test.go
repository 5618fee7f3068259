package region

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orthogonal = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	allEight   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// naiveExpand is the per-cell definition of dilation.
func naiveExpand(r *Region, dirs [][2]int) *Region {
	out := r.Copy()
	for c := range r.All() {
		for _, d := range dirs {
			out.Insert(c.X+d[0], c.Y+d[1])
		}
	}
	return out
}

// naiveRetract is the per-cell definition of erosion with an off border.
func naiveRetract(r *Region, dirs [][2]int) *Region {
	out := MustNew(r.Width(), r.Height())
	for c := range r.All() {
		keep := true
		for _, d := range dirs {
			if !r.Contains(c.X+d[0], c.Y+d[1]) {
				keep = false
				break
			}
		}
		if keep {
			out.Insert(c.X, c.Y)
		}
	}
	return out
}

func TestMorphologyMatchesCellDefinition(t *testing.T) {
	ops := []struct {
		name  string
		fast  func(*Region) *Region
		naive func(*Region) *Region
	}{
		{"expand", (*Region).Expand, func(r *Region) *Region { return naiveExpand(r, orthogonal) }},
		{"expand8", (*Region).Expand8Way, func(r *Region) *Region { return naiveExpand(r, allEight) }},
		{"retract", (*Region).Retract, func(r *Region) *Region { return naiveRetract(r, orthogonal) }},
		{"retract8", (*Region).Retract8Way, func(r *Region) *Region { return naiveRetract(r, allEight) }},
	}

	for _, op := range ops {
		for i, sz := range testSizes {
			for _, density := range []float64{0.1, 0.6, 0.95} {
				t.Run(fmt.Sprintf("%s/%dx%d/%.2f", op.name, sz.w, sz.h, density), func(t *testing.T) {
					a := randomRegion(uint64(100+i), sz.w, sz.h, density)
					got := op.fast(a.Copy())
					want := op.naive(a)

					assert.True(t, paddingClean(got))
					assert.True(t, got.Equals(want), "got\n%s\nwant\n%s", got, want)
				})
			}
		}
	}
}

func TestExpandSingleCell(t *testing.T) {
	r, err := ParseLines([]string{
		".....",
		"..#..",
		".....",
	}, '#')
	require.NoError(t, err)

	assert.Equal(t, []string{
		"..#..",
		".###.",
		"..#..",
	}, r.Copy().Expand().Lines('#', '.'))

	assert.Equal(t, []string{
		".###.",
		".###.",
		".###.",
	}, r.Copy().Expand8Way().Lines('#', '.'))
}

func TestRetractClearsEdges(t *testing.T) {
	full := MustNew(5, 5).Fill()

	assert.Equal(t, []string{
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	}, full.Copy().Retract().Lines('#', '.'))

	// a full-height column on the bottom word boundary
	tall := MustNew(3, 128).Fill().Retract()
	assert.Equal(t, 126, tall.Count())
	assert.False(t, tall.Contains(1, 127))
	assert.False(t, tall.Contains(1, 0))
}

func TestRetractDiagonalHole(t *testing.T) {
	r := MustNew(5, 5).Fill().Remove(1, 1)

	assert.False(t, r.Copy().Retract8Way().Contains(2, 2))
	assert.True(t, r.Copy().Retract().Contains(2, 2))
}

func TestExpandMinusFringeIsIdentity(t *testing.T) {
	cross := crossRegion(t)
	got, err := cross.Copy().Expand().AndNot(cross.Copy().Fringe())
	require.NoError(t, err)
	assert.True(t, got.Equals(cross))

	for i, sz := range testSizes {
		a := randomRegion(uint64(200+i), sz.w, sz.h, 0.3)

		got, err := a.Copy().Expand().AndNot(a.Copy().Fringe())
		require.NoError(t, err)
		assert.True(t, got.Equals(a), "4-way %dx%d", sz.w, sz.h)

		got, err = a.Copy().Expand8Way().AndNot(a.Copy().Fringe8Way())
		require.NoError(t, err)
		assert.True(t, got.Equals(a), "8-way %dx%d", sz.w, sz.h)
	}
}

func TestRetractOrSurfaceIsIdentity(t *testing.T) {
	for i, sz := range testSizes {
		a := randomRegion(uint64(300+i), sz.w, sz.h, 0.8)

		got, err := a.Copy().Retract().Or(a.Copy().Surface())
		require.NoError(t, err)
		assert.True(t, got.Equals(a), "4-way %dx%d", sz.w, sz.h)

		got, err = a.Copy().Retract8Way().Or(a.Copy().Surface8Way())
		require.NoError(t, err)
		assert.True(t, got.Equals(a), "8-way %dx%d", sz.w, sz.h)

		assert.False(t, a.Copy().Surface().Intersects(a.Copy().Retract()))
	}
}

func TestFringeOfBox(t *testing.T) {
	box := MustNew(10, 10).InsertRectangle(3, 3, 3, 3)

	assert.Equal(t, 12, box.Copy().Fringe().Count())
	assert.Equal(t, 16, box.Copy().Fringe8Way().Count())
	assert.Equal(t, 8, box.Copy().Surface().Count())
	assert.Equal(t, 8, box.Copy().Surface8Way().Count())
}

func TestRemoveCornersIsClosing(t *testing.T) {
	for i, sz := range testSizes {
		a := randomRegion(uint64(400+i), sz.w, sz.h, 0.5)
		want := a.Copy().Expand().Retract8Way()
		assert.True(t, a.Copy().RemoveCorners().Equals(want), "%dx%d", sz.w, sz.h)
	}

	box := MustNew(9, 9).InsertRectangle(2, 2, 5, 5).RemoveCorners()
	assert.Equal(t, 21, box.Count())
	for _, c := range []Coord{{2, 2}, {6, 2}, {2, 6}, {6, 6}} {
		assert.False(t, box.Contains(c.X, c.Y), "corner %v", c)
	}
	assert.True(t, box.Contains(3, 2))
	assert.True(t, box.Contains(4, 4))
}

func TestFloodInsideCross(t *testing.T) {
	cross := crossRegion(t)
	seed := MustNew(64, 64).Insert(26, 2)

	got, err := seed.Flood(cross, 2)
	require.NoError(t, err)

	want := []Coord{
		{25, 2}, {25, 3},
		{26, 2}, {26, 3}, {26, 4},
		{27, 2}, {27, 3},
		{28, 2},
	}
	assert.Equal(t, want, got.Coords())
}

func TestFloodStaysInBound(t *testing.T) {
	bound, err := ParseLines([]string{
		"###.###",
		"..#.#..",
		"..###..",
	}, '#')
	require.NoError(t, err)

	seed := MustNew(7, 3).Insert(0, 0)
	got, err := seed.Copy().Flood(bound, 100)
	require.NoError(t, err)
	assert.True(t, got.Equals(bound))

	got, err = seed.Copy().Flood(bound, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count())

	diag := MustNew(3, 3).Insert(0, 0).Insert(1, 1).Insert(2, 2)
	got, err = MustNew(3, 3).Insert(0, 0).Flood(diag, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count(), "diagonal steps are not orthogonal")

	got, err = MustNew(3, 3).Insert(0, 0).Flood8Way(diag, 5)
	require.NoError(t, err)
	assert.True(t, got.Equals(diag))

	_, err = seed.Flood(MustNew(3, 3), 1)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestRepeatedOps(t *testing.T) {
	r := MustNew(21, 21).Insert(10, 10)
	assert.Equal(t, 2*3*3+2*3+1, r.Copy().ExpandN(3).Count())
	assert.Equal(t, 49, r.Copy().Expand8WayN(3).Count())

	box := MustNew(21, 21).InsertRectangle(2, 2, 17, 17)
	assert.Equal(t, 13*13, box.Copy().Retract8WayN(2).Count())
	assert.True(t, box.Copy().RetractN(2).Contains(10, 10))
}
