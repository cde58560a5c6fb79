package trend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// at builds a timestamp sec seconds after a fixed base, so tests can talk
// about timelines in small integers.
func at(sec int) time.Time {
	return base.Add(time.Duration(sec) * time.Second)
}

func assertAscending(t *testing.T, tl *Timeline) {
	t.Helper()
	stamps := tl.Through(at(1 << 30))
	for i := 1; i < len(stamps); i++ {
		assert.False(t, stamps[i].Before(stamps[i-1]), "timestamps out of order at index %d", i)
	}
}

func TestNewTimeline_SortsInput(t *testing.T) {
	tl := NewTimeline(at(5), at(1), at(3))

	assert.Equal(t, 3, tl.Len())
	assert.Equal(t, []time.Time{at(1), at(3), at(5)}, tl.Through(at(5)))
}

func TestTimelineRank_Empty(t *testing.T) {
	tl := NewTimeline()
	assert.Equal(t, 0, tl.Rank(at(5)))
}

func TestTimelineRank_CountsAtOrBefore(t *testing.T) {
	tl := NewTimeline(at(1), at(2), at(3), at(5), at(6), at(7), at(8))

	tests := []struct{ key, want int }{
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 3},
		{5, 4}, {6, 5}, {7, 6}, {8, 7}, {9, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tl.Rank(at(tt.key)), "rank of %d", tt.key)
	}
}

func TestTimelineRank_DuplicateRun(t *testing.T) {
	tl := NewTimeline(at(1), at(3), at(3), at(5))

	tests := []struct{ key, want int }{
		{0, 0}, {1, 1}, {3, 3}, {4, 3}, {5, 4}, {6, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tl.Rank(at(tt.key)), "rank of %d", tt.key)
	}
}

func TestTimelineRank_AllEqual(t *testing.T) {
	tl := NewTimeline(at(2), at(2), at(2))

	assert.Equal(t, 0, tl.Rank(at(1)))
	assert.Equal(t, 3, tl.Rank(at(2)))
	assert.Equal(t, 3, tl.Rank(at(3)))
}

func TestTimelineInsert_KeepsAscendingOrder(t *testing.T) {
	tl := NewTimeline()

	for _, sec := range []int{5, 1, 9, 3, 3, 7, 1, 5, 5} {
		tl.Insert(at(sec))
		assertAscending(t, tl)
	}
	assert.Equal(t, 9, tl.Len())
}

func TestTimelinePosition(t *testing.T) {
	tl := NewTimeline(at(1), at(5), at(4))

	pos, ok := tl.Position(at(1))
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = tl.Position(at(4))
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	pos, ok = tl.Position(at(5))
	require.True(t, ok)
	assert.Equal(t, 2, pos)

	_, ok = tl.Position(at(3))
	assert.False(t, ok)
}

func TestTimelinePosition_LastOfEqualRun(t *testing.T) {
	tl := NewTimeline(at(2), at(2), at(2))

	pos, ok := tl.Position(at(2))
	require.True(t, ok)
	assert.Equal(t, 2, pos)
}

func TestTimelineThrough_PrefixView(t *testing.T) {
	tl := NewTimeline(at(1), at(3), at(3), at(5))

	assert.Empty(t, tl.Through(at(0)))
	assert.Equal(t, []time.Time{at(1), at(3), at(3)}, tl.Through(at(4)))
	assert.Len(t, tl.Through(at(5)), 4)
}

func TestTimelineDropThrough(t *testing.T) {
	tl := NewTimeline(at(1), at(2), at(3), at(4), at(5), at(6), at(7), at(8), at(9))

	removed := tl.DropThrough(at(6))
	assert.Equal(t, 6, removed)
	assert.Equal(t, []time.Time{at(7), at(8), at(9)}, tl.Through(at(9)))
}

func TestTimelineDropThrough_Idempotent(t *testing.T) {
	tl := NewTimeline(at(1), at(2), at(3))

	assert.Equal(t, 2, tl.DropThrough(at(2)))
	assert.Equal(t, 0, tl.DropThrough(at(2)))
	assert.Equal(t, 1, tl.Len())
}

func TestTimelineDropThrough_IncludesBoundary(t *testing.T) {
	tl := NewTimeline(at(5))

	assert.Equal(t, 1, tl.DropThrough(at(5)))
	assert.True(t, tl.Empty())
}

func TestTimelineLast(t *testing.T) {
	tl := NewTimeline()

	_, ok := tl.Last()
	assert.False(t, ok)

	tl.Insert(at(3))
	tl.Insert(at(1))

	last, ok := tl.Last()
	require.True(t, ok)
	assert.Equal(t, at(3), last)
}
