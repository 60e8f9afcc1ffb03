package metrics

import (
	"context"

	"github.com/osse101/Pickem_Go/internal/event"
	"github.com/osse101/Pickem_Go/internal/logger"
)

// EventMetricsCollector subscribes to contest events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all contest events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.EventCreated,
		event.PicksSubmitted,
		event.EntryRejected,
		event.MatchResultRecorded,
		event.EventStatusChanged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.EventCreated:
		var p event.EventCreatedPayloadV1
		if p, err = event.DecodePayload[event.EventCreatedPayloadV1](evt.Payload); err == nil {
			EventsCreated.WithLabelValues(string(p.Format)).Inc()
		}

	case event.PicksSubmitted:
		var p event.PicksSubmittedPayloadV1
		if p, err = event.DecodePayload[event.PicksSubmittedPayloadV1](evt.Payload); err == nil {
			PicksSubmitted.WithLabelValues(string(p.Format)).Add(float64(p.PickCount))
		}

	case event.EntryRejected:
		EntriesRejected.Inc()

	case event.MatchResultRecorded:
		var p event.MatchResultRecordedPayloadV1
		if p, err = event.DecodePayload[event.MatchResultRecordedPayloadV1](evt.Payload); err == nil {
			finish := string(p.FinishType)
			if finish == "" {
				finish = FinishTypeNone
			}
			ResultsRecorded.WithLabelValues(string(p.Format), finish).Inc()
			PicksScored.WithLabelValues(string(p.Format), OutcomeWon).Add(float64(p.PicksWon))
			PicksScored.WithLabelValues(string(p.Format), OutcomeLost).Add(float64(p.PicksScored - p.PicksWon))
			// a corrected result replaces the earlier scores, so only the change is applied
			PointsAwarded.WithLabelValues(string(p.Format)).Add(p.PointsDelta)
		}

	case event.EventStatusChanged:
		var p event.EventStatusChangedPayloadV1
		if p, err = event.DecodePayload[event.EventStatusChangedPayloadV1](evt.Payload); err == nil {
			StatusTransitions.WithLabelValues(string(p.From), string(p.To)).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
