// Package trend tracks how often words appear in chat and when.
//
// A Timeline is the per-word history: an ascending slice of observation
// timestamps with duplicates allowed. A Store maps words to their timelines
// behind a single mutex and offers the operations the bot needs: record an
// observation, age out old ones, and pick the current trending word with a
// random boost so that low-traffic words occasionally win.
package trend
