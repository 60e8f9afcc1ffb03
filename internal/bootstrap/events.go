package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Pickem_Go/internal/event"
	"github.com/osse101/Pickem_Go/internal/logger"
	"github.com/osse101/Pickem_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and registers its
// subscribers: the metrics collector and the event audit log.
func InitializeEventSystem() (event.Bus, error) {
	bus := event.NewMemoryBus()

	if err := RegisterEventHandlers(bus); err != nil {
		return nil, err
	}

	slog.Info(LogMsgEventSystemInitialized)
	return bus, nil
}

// RegisterEventHandlers subscribes the metrics collector and audit logger to bus
func RegisterEventHandlers(bus event.Bus) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range auditedEventTypes {
		bus.Subscribe(t, auditEvent)
	}
	slog.Info(LogMsgEventAuditRegistered, "types", len(auditedEventTypes))

	return nil
}

var auditedEventTypes = []event.Type{
	event.EventCreated,
	event.PicksSubmitted,
	event.EntryRejected,
	event.MatchResultRecorded,
	event.EventStatusChanged,
}

// auditEvent writes every contest event to the request-scoped log
func auditEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Info(LogMsgContestEvent,
		"type", evt.Type,
		"version", evt.Version,
		"payload", evt.Payload)
	return nil
}
