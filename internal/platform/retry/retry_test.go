package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_DoublesUntilCap(t *testing.T) {
	b := NewBackoff(time.Second, 10*time.Second)

	var waits []time.Duration
	for range 6 {
		waits = append(waits, b.Next())
	}

	want := []time.Duration{
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		10 * time.Second,
		10 * time.Second,
	}
	assert.Equal(t, want, waits)
}

func TestBackoff_ResetStartsOver(t *testing.T) {
	b := NewBackoff(time.Second, time.Minute)

	b.Next()
	b.Next()
	b.Reset()

	assert.Equal(t, time.Second, b.Next())
}
