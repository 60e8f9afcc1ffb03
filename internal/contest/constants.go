package contest

import "time"

// ============================================================================
// Defaults
// ============================================================================

// DefaultCacheSize is the number of event potentials kept when no size is configured
const DefaultCacheSize = 256

// DefaultCacheTTL is how long a cached event potential stays valid
const DefaultCacheTTL = 5 * time.Minute

// DefaultListLimit and MaxListLimit bound event listings
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Lock key prefixes for serialized writes
const (
	LockPrefixEntry = "entry:"
	LockPrefixMatch = "match:"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventCreated        = "Event created"
	LogMsgPicksSubmitted      = "Picks submitted"
	LogMsgEntryRejected       = "Entry rejected"
	LogMsgEntryClosed         = "Entry arrived after the event locked"
	LogMsgResultRecorded      = "Match result recorded"
	LogMsgStatusChanged       = "Event status changed"
	LogMsgEventCardImported   = "Event card imported"
	LogMsgPotentialCacheHit   = "Event potential served from cache"
	LogMsgPublishFailed       = "Failed to publish contest event"
	LogMsgFailedToCreateEvent = "Failed to create event"
	LogMsgFailedToStorePicks  = "Failed to store picks"
	LogMsgFailedToStoreResult = "Failed to store match result"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgEventNameRequired   = "event name is required"
	ErrMsgUserIDRequired      = "user id is required"
	ErrMsgNoMatches           = "event needs at least one match"
	ErrMsgNoPicks             = "at least one pick is required"
	ErrMsgWrestlerRequired    = "match %d: both competitors are required"
	ErrMsgMatchOddsFmt        = "match %d: %s"
	ErrMsgMatchFavoriteFmt    = "match %d: favorite must be A or B"
	ErrMsgPickCountRequired   = "pick count must be positive for pick6 events"
	ErrMsgPickCountTooHigh    = "pick count %d exceeds the %d matches on the card"
	ErrMsgDoubleDownNotPick6  = "double down is only available in pick6 events"
	ErrMsgResultNeedsLock     = "results can only be recorded once the event is locked"
	ErrMsgTransitionFmt       = "%s -> %s"
	ErrMsgPotentialNotPick6   = "event potential uses legacy match points and does not apply to pick6 events"
	ErrMsgFailedToReadCard    = "failed to read event card %s: %w"
	ErrMsgFailedToDecodeCard  = "%w: failed to decode event card %s: %v"
	ErrMsgFailedToCreateEvent = "failed to create event: %w"
	ErrMsgFailedToStorePicks  = "failed to store picks: %w"
	ErrMsgFailedToStoreResult = "failed to store match result: %w"
)
