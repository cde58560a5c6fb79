package bot

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/chatparrot/internal/config"
	"github.com/pscheid92/chatparrot/internal/metrics"
	"github.com/pscheid92/chatparrot/internal/platform/correlation"
	"github.com/pscheid92/chatparrot/internal/trend"
)

// Sayer sends one line of text to a chat channel.
type Sayer interface {
	Say(ctx context.Context, channel, text string) error
}

// Cycle is the periodic actor behind the bot's voice. Each pass waits a
// random interval, picks a trending word, says it in the most recently
// active channel, and evicts observations older than the retention window.
// Passes run strictly one after another on a single goroutine.
type Cycle struct {
	store *trend.Store
	dest  *Destination
	sayer Sayer

	intervalLow  time.Duration
	intervalHigh time.Duration
	maxAge       time.Duration
	maxBoost     int
	defaultWord  string

	clock clockwork.Clock
	rng   *rand.Rand
}

func NewCycle(cfg *config.Config, store *trend.Store, dest *Destination, sayer Sayer, clock clockwork.Clock, rng *rand.Rand) *Cycle {
	return &Cycle{
		store:        store,
		dest:         dest,
		sayer:        sayer,
		intervalLow:  cfg.IntervalLow,
		intervalHigh: cfg.IntervalHigh,
		maxAge:       cfg.MaxAge,
		maxBoost:     cfg.MaxBoost,
		defaultWord:  cfg.DefaultWord,
		clock:        clock,
		rng:          rng,
	}
}

// Run executes passes until ctx is cancelled. The wait is the only blocking
// point; a pass itself never blocks on anything but the store lock.
func (c *Cycle) Run(ctx context.Context) error {
	for {
		wait := c.nextWait()
		slog.Info("Cycle: waiting before next pass", "wait", wait)

		timer := c.clock.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.Chan():
		}

		c.runOnce(ctx)
	}
}

// runOnce performs one select/emit/evict pass under a fresh correlation ID.
func (c *Cycle) runOnce(ctx context.Context) {
	ctx = correlation.WithID(ctx, correlation.NewID())
	started := c.clock.Now()

	word, ok := c.store.Pick(c.boost, c.defaultWord)
	if ok {
		metrics.SelectionsTotal.WithLabelValues("picked").Inc()
		c.emit(ctx, word)
	} else {
		metrics.SelectionsTotal.WithLabelValues("empty").Inc()
		slog.DebugContext(ctx, "Cycle: nothing to say, store empty and no default word")
	}

	c.evict(ctx)

	metrics.CycleDuration.Observe(c.clock.Since(started).Seconds())
}

func (c *Cycle) emit(ctx context.Context, word string) {
	channel, ok := c.dest.Get()
	if !ok {
		metrics.EmissionsTotal.WithLabelValues("no_destination").Inc()
		slog.InfoContext(ctx, "Cycle: no active channel yet, skipping emission", "word", word)
		return
	}

	if err := c.sayer.Say(ctx, channel, word); err != nil {
		metrics.EmissionsTotal.WithLabelValues("error").Inc()
		slog.WarnContext(ctx, "Cycle: emission failed", "channel", channel, "word", word, "error", err)
		return
	}

	metrics.EmissionsTotal.WithLabelValues("sent").Inc()
	slog.InfoContext(ctx, "Cycle: word emitted", "channel", channel, "word", word)
}

func (c *Cycle) evict(ctx context.Context) {
	cutoff := c.clock.Now().Add(-c.maxAge)

	observations := c.store.Evict(cutoff)
	words := c.store.Compact()

	metrics.ObservationsEvictedTotal.Add(float64(observations))
	metrics.WordsTracked.Set(float64(c.store.Len()))

	slog.DebugContext(ctx, "Cycle: history aged out", "cutoff", cutoff, "observations", observations, "words", words)
}

// nextWait draws the pause before the next pass, uniform over the closed
// interval [intervalLow, intervalHigh].
func (c *Cycle) nextWait() time.Duration {
	span := c.intervalHigh - c.intervalLow
	if span <= 0 {
		return c.intervalLow
	}
	return c.intervalLow + time.Duration(c.rng.Int63n(int64(span)+1))
}

// boost draws a fresh score bonus in [0, maxBoost] for one candidate.
func (c *Cycle) boost() int {
	if c.maxBoost <= 0 {
		return 0
	}
	return c.rng.Intn(c.maxBoost + 1)
}
