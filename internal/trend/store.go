package trend

import (
	"sort"
	"sync"
	"time"
)

// WordCount is one row of a Store snapshot.
type WordCount struct {
	Word     string    `json:"word"`
	Count    int       `json:"count"`
	LastSeen time.Time `json:"last_seen"`
}

// Store maps words to their observation timelines. It also remembers the
// order in which words were first observed, which gives Pick a stable
// iteration order and makes tie-breaking deterministic.
//
// A single mutex serializes every operation: ingestion records words while
// the selection cycle reads and ages the same state. An observation that
// finishes recording before a cycle takes the lock is part of that cycle;
// a racing one lands in a later cycle.
type Store struct {
	mu    sync.Mutex
	words map[string]*Timeline
	order []string // first-observation order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{words: make(map[string]*Timeline)}
}

// Record adds one observation of word at the given time. Words are expected
// to be validated and case-folded by the caller.
func (s *Store) Record(word string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tl, ok := s.words[word]; ok {
		tl.Insert(at)
		return
	}
	s.words[word] = NewTimeline(at)
	s.order = append(s.order, word)
}

// Evict drops every observation at or before cutoff from all timelines and
// reports how many were dropped. Words whose history became empty stay
// tracked until Compact runs.
func (s *Store) Evict(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for _, tl := range s.words {
		dropped += tl.DropThrough(cutoff)
	}
	return dropped
}

// Compact forgets words with no remaining observations and reports how many
// were forgotten. Afterwards every tracked word has at least one
// observation.
func (s *Store) Compact() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	removed := 0
	for _, word := range s.order {
		if s.words[word].Empty() {
			delete(s.words, word)
			removed++
			continue
		}
		kept = append(kept, word)
	}
	clear(s.order[len(kept):])
	s.order = kept
	return removed
}

// Pick returns the word with the highest boosted score, where a word scores
// its observation count plus a fresh draw from boost. Each tracked word is
// scored exactly once per call, in first-observation order, and ties keep
// the earlier word. With a fixed boost source the result is deterministic.
//
// When no words are tracked, Pick falls back to fallback if it is non-empty
// and reports false otherwise.
func (s *Store) Pick(boost func() int, fallback string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	word, best, found := "", -1, false
	for _, w := range s.order {
		if score := s.words[w].Len() + boost(); score > best {
			word, best, found = w, score, true
		}
	}
	if !found && fallback != "" {
		return fallback, true
	}
	return word, found
}

// Len returns the number of tracked words.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

// Snapshot lists the tracked words by descending observation count; equal
// counts keep first-observation order.
func (s *Store) Snapshot() []WordCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]WordCount, 0, len(s.order))
	for _, w := range s.order {
		tl := s.words[w]
		last, _ := tl.Last()
		out = append(out, WordCount{Word: w, Count: tl.Len(), LastSeen: last})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
