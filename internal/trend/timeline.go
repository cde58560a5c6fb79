package trend

import (
	"sort"
	"time"
)

// Timeline is the observation history of a single word: timestamps in
// ascending order, duplicates allowed. New observations of an already-seen
// instant land behind the existing run of equal timestamps, so insertion
// order is preserved among equals.
//
// The backing is a plain sorted slice. Rank is a binary search plus a short
// forward scan over the duplicate run at the boundary; Insert and
// DropThrough shift with copy.
type Timeline struct {
	stamps []time.Time
}

// NewTimeline builds a timeline from the given timestamps. The input is
// copied and sorted, so callers keep ownership of their slice.
func NewTimeline(stamps ...time.Time) *Timeline {
	owned := make([]time.Time, len(stamps))
	copy(owned, stamps)
	sort.Slice(owned, func(i, j int) bool { return owned[i].Before(owned[j]) })
	return &Timeline{stamps: owned}
}

// Rank returns how many stored timestamps are at or before key. That is
// also the index where Insert would place key.
func (t *Timeline) Rank(key time.Time) int {
	if len(t.stamps) == 0 {
		return 0
	}

	// Narrow down to the neighborhood of key. When the search lands inside
	// a run of equal timestamps it stops there, and the scan below walks to
	// the end of the run.
	lo, hi := 0, len(t.stamps)-1
	mid := 0
	for lo < hi {
		mid = (lo + hi) / 2
		if t.stamps[mid].Before(key) {
			lo = mid + 1
		} else if t.stamps[mid].After(key) {
			hi = mid
		} else {
			break
		}
	}

	n := mid
	for n < len(t.stamps) && !t.stamps[n].After(key) {
		n++
	}
	return n
}

// Insert adds key to the timeline, behind every stored timestamp at or
// before it.
func (t *Timeline) Insert(key time.Time) {
	i := t.Rank(key)
	t.stamps = append(t.stamps, time.Time{})
	copy(t.stamps[i+1:], t.stamps[i:])
	t.stamps[i] = key
}

// Position returns the index of the last stored timestamp equal to key,
// or false when key is not present.
func (t *Timeline) Position(key time.Time) (int, bool) {
	r := t.Rank(key)
	if r > 0 && t.stamps[r-1].Equal(key) {
		return r - 1, true
	}
	return 0, false
}

// Through returns the timestamps at or before key. The result is a view
// into the timeline, valid only until the next mutation.
func (t *Timeline) Through(key time.Time) []time.Time {
	return t.stamps[:t.Rank(key)]
}

// DropThrough removes every timestamp at or before key and reports how many
// were removed. Dropping the same key again removes nothing.
func (t *Timeline) DropThrough(key time.Time) int {
	i := t.Rank(key)
	if i == 0 {
		return 0
	}
	n := copy(t.stamps, t.stamps[i:])
	clear(t.stamps[n:])
	t.stamps = t.stamps[:n]
	return i
}

// Len returns the number of stored timestamps.
func (t *Timeline) Len() int { return len(t.stamps) }

// Empty reports whether the timeline holds no timestamps.
func (t *Timeline) Empty() bool { return len(t.stamps) == 0 }

// Last returns the most recent timestamp, or false on an empty timeline.
func (t *Timeline) Last() (time.Time, bool) {
	if len(t.stamps) == 0 {
		return time.Time{}, false
	}
	return t.stamps[len(t.stamps)-1], true
}
