// Package server exposes the bot's operational HTTP surface: health probes,
// Prometheus metrics, build information, and a read-only view of the words
// currently trending. It carries no chat traffic.
package server
