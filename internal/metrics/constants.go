package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameEventsCreated      = "events_created_total"
	MetricNamePicksSubmitted     = "picks_submitted_total"
	MetricNamePicksScored        = "picks_scored_total"
	MetricNameEntriesRejected    = "entries_rejected_total"
	MetricNameResultsRecorded    = "match_results_recorded_total"
	MetricNamePointsAwarded      = "points_awarded"
	MetricNameStatusTransitions  = "event_status_transitions_total"
	MetricNamePotentialCacheHits = "potential_cache_hits_total"
	MetricNamePotentialCacheMiss = "potential_cache_misses_total"
	MetricNameSelectionsScored   = "selections_scored_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextEventsCreated      = "Total number of event cards created"
	HelpTextPicksSubmitted     = "Total number of picks stored"
	HelpTextPicksScored        = "Total number of picks scored against a recorded result"
	HelpTextEntriesRejected    = "Total number of entries that failed validation"
	HelpTextResultsRecorded    = "Total number of match results recorded"
	HelpTextPointsAwarded      = "Points currently held by scored picks"
	HelpTextStatusTransitions  = "Total number of event status transitions"
	HelpTextPotentialCacheHits = "Event potential lookups served from cache"
	HelpTextPotentialCacheMiss = "Event potential lookups that were recomputed"
	HelpTextSelectionsScored   = "Total number of ad-hoc selections scored through the API"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "route"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelFormat     = "format"
	LabelFinishType = "finish_type"
	LabelFrom       = "from"
	LabelTo         = "to"
	LabelOutcome    = "outcome"
)

// Outcome label values for scored picks and selections
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// RouteUnmatched labels requests that did not match a registered route
const RouteUnmatched = "unmatched"

// FinishTypeNone labels results recorded without a finish
const FinishTypeNone = "none"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
