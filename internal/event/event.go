package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Pickem_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Contest event types
const (
	PicksSubmitted      Type = "picks.submitted"
	EntryRejected       Type = "entry.rejected"
	MatchResultRecorded Type = "match.result_recorded"
	EventStatusChanged  Type = "event.status_changed"
	EventCreated        Type = "event.created"
)

// EventCreatedPayloadV1 is published after an event card is stored
type EventCreatedPayloadV1 struct {
	EventID    uuid.UUID            `json:"event_id"`
	Format     domain.ContestFormat `json:"format"`
	MatchCount int                  `json:"match_count"`
	Timestamp  int64                `json:"timestamp"`
}

// PicksSubmittedPayloadV1 is published after a user's picks are stored
type PicksSubmittedPayloadV1 struct {
	EventID   uuid.UUID            `json:"event_id"`
	UserID    string               `json:"user_id"`
	Format    domain.ContestFormat `json:"format"`
	PickCount int                  `json:"pick_count"`
	Timestamp int64                `json:"timestamp"`
}

// EntryRejectedPayloadV1 is published when an entry fails validation
type EntryRejectedPayloadV1 struct {
	EventID   uuid.UUID `json:"event_id"`
	UserID    string    `json:"user_id"`
	Errors    []string  `json:"errors"`
	Timestamp int64     `json:"timestamp"`
}

// ScoreTally summarises one scoring pass over a match's picks.
// PointsDelta is the change against the points the picks held before,
// so a corrected result can lower it.
type ScoreTally struct {
	PicksScored  int     `json:"picks_scored"`
	PicksWon     int     `json:"picks_won"`
	PointsEarned float64 `json:"points_earned"`
	PointsDelta  float64 `json:"points_delta"`
}

// MatchResultRecordedPayloadV1 is published after a match is rescored
type MatchResultRecordedPayloadV1 struct {
	EventID    uuid.UUID            `json:"event_id"`
	MatchID    uuid.UUID            `json:"match_id"`
	Format     domain.ContestFormat `json:"format"`
	Winner     domain.Side          `json:"winner"`
	FinishType domain.FinishType    `json:"finish_type,omitempty"`
	ScoreTally
	Timestamp int64 `json:"timestamp"`
}

// EventStatusChangedPayloadV1 is published on every status transition
type EventStatusChangedPayloadV1 struct {
	EventID   uuid.UUID          `json:"event_id"`
	From      domain.EventStatus `json:"from"`
	To        domain.EventStatus `json:"to"`
	Timestamp int64              `json:"timestamp"`
}

// NewEventCreatedEvent creates an event created event
func NewEventCreatedEvent(evt domain.Event) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EventCreated,
		Payload: EventCreatedPayloadV1{
			EventID:    evt.ID,
			Format:     evt.Format,
			MatchCount: len(evt.Matches),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewPicksSubmittedEvent creates a picks submitted event
func NewPicksSubmittedEvent(eventID uuid.UUID, userID string, format domain.ContestFormat, pickCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PicksSubmitted,
		Payload: PicksSubmittedPayloadV1{
			EventID:   eventID,
			UserID:    userID,
			Format:    format,
			PickCount: pickCount,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewEntryRejectedEvent creates an entry rejected event
func NewEntryRejectedEvent(eventID uuid.UUID, userID string, errs []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EntryRejected,
		Payload: EntryRejectedPayloadV1{
			EventID:   eventID,
			UserID:    userID,
			Errors:    errs,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewMatchResultRecordedEvent creates a match result event
func NewMatchResultRecordedEvent(match domain.Match, format domain.ContestFormat, tally ScoreTally) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MatchResultRecorded,
		Payload: MatchResultRecordedPayloadV1{
			EventID:    match.EventID,
			MatchID:    match.ID,
			Format:     format,
			Winner:     match.Winner,
			FinishType: match.FinishType,
			ScoreTally: tally,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewEventStatusChangedEvent creates a status change event
func NewEventStatusChangedEvent(eventID uuid.UUID, from, to domain.EventStatus) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EventStatusChanged,
		Payload: EventStatusChangedPayloadV1{
			EventID:   eventID,
			From:      from,
			To:        to,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
