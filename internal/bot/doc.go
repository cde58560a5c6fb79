// Package bot connects chat to the trend store. The Listener ingests
// incoming messages, recording accepted words and remembering which channel
// spoke last, while the Cycle periodically picks a trending word, says it in
// that channel, and ages stale observations out of the store.
package bot
