package bot

import "sync"

// Destination remembers the channel that most recently showed activity.
// The zero value is usable and reports no destination until the first Set.
type Destination struct {
	mu      sync.RWMutex
	channel string
}

// Set records channel as the current emission target.
func (d *Destination) Set(channel string) {
	d.mu.Lock()
	d.channel = channel
	d.mu.Unlock()
}

// Get returns the current emission target and whether one is known yet.
func (d *Destination) Get() (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.channel, d.channel != ""
}
