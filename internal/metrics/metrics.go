package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion Metrics
var (
	// MessagesSeenTotal counts chat messages handled, excluding the bot's own
	MessagesSeenTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_messages_seen_total",
			Help: "Total chat messages handled, excluding the bot's own",
		},
	)

	// WordsRecordedTotal counts word observations written to the store
	WordsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "words_recorded_total",
			Help: "Total word observations recorded",
		},
	)

	// WordsTracked tracks how many distinct words currently have history
	WordsTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "words_tracked",
			Help: "Distinct words currently tracked in the store",
		},
	)
)

// Selection Cycle Metrics
var (
	// SelectionsTotal counts selection attempts by result (picked/empty)
	SelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "selections_total",
			Help: "Selection attempts by result",
		},
		[]string{"result"},
	)

	// EmissionsTotal counts emission attempts by result (sent/error/no_destination)
	EmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emissions_total",
			Help: "Emission attempts by result",
		},
		[]string{"result"},
	)

	// ObservationsEvictedTotal counts timestamps aged out of the store
	ObservationsEvictedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "observations_evicted_total",
			Help: "Total word observations evicted by age",
		},
	)

	// CycleDuration tracks how long one selection cycle takes
	CycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "selection_cycle_duration_seconds",
			Help:    "Duration of one selection cycle in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)
)

// Chat Connection Metrics
var (
	// ChatConnected is 1 while the chat session is past login, 0 otherwise
	ChatConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_connected",
			Help: "Whether the chat session is established (1) or down (0)",
		},
	)

	// ChatReconnectsTotal counts chat session re-establishment attempts
	ChatReconnectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_reconnects_total",
			Help: "Total chat session reconnect attempts",
		},
	)
)

// Build Information Metrics
var (
	// BuildInfo is a gauge that always returns 1, with build metadata as labels
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "build_info",
			Help: "Build information with version, commit, build time and Go version as labels",
		},
		[]string{"version", "commit", "build_time", "go_version"},
	)
)
