package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	EventsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsCreated,
			Help: HelpTextEventsCreated,
		},
		[]string{LabelFormat},
	)

	PicksSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePicksSubmitted,
			Help: HelpTextPicksSubmitted,
		},
		[]string{LabelFormat},
	)

	EntriesRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEntriesRejected,
			Help: HelpTextEntriesRejected,
		},
	)

	ResultsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResultsRecorded,
			Help: HelpTextResultsRecorded,
		},
		[]string{LabelFormat, LabelFinishType},
	)

	PointsAwarded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNamePointsAwarded,
			Help: HelpTextPointsAwarded,
		},
		[]string{LabelFormat},
	)

	PicksScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePicksScored,
			Help: HelpTextPicksScored,
		},
		[]string{LabelFormat, LabelOutcome},
	)

	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStatusTransitions,
			Help: HelpTextStatusTransitions,
		},
		[]string{LabelFrom, LabelTo},
	)

	PotentialCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePotentialCacheHits,
			Help: HelpTextPotentialCacheHits,
		},
	)

	PotentialCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePotentialCacheMiss,
			Help: HelpTextPotentialCacheMiss,
		},
	)

	SelectionsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSelectionsScored,
			Help: HelpTextSelectionsScored,
		},
		[]string{LabelOutcome},
	)
)
