// Package retry provides the backoff schedule used when re-establishing
// the chat session.
package retry

import "time"

// Backoff produces waits that double after every failed attempt, capped at
// Max. Reset snaps the schedule back to Initial after a successful attempt.
// It is not safe for concurrent use; the reconnect loop is a single
// goroutine.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration

	next time.Duration
}

// NewBackoff creates a schedule starting at initial and capped at max.
func NewBackoff(initial, max time.Duration) *Backoff {
	return &Backoff{Initial: initial, Max: max}
}

// Next returns the wait before the upcoming attempt and advances the
// schedule.
func (b *Backoff) Next() time.Duration {
	if b.next == 0 {
		b.next = b.Initial
	}
	wait := b.next
	b.next *= 2
	if b.next > b.Max {
		b.next = b.Max
	}
	return wait
}

// Reset starts the schedule over from Initial.
func (b *Backoff) Reset() {
	b.next = 0
}
