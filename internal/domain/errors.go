package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Event errors
	ErrMsgEventNotFound     = "event not found"
	ErrMsgEventLocked       = "event is not accepting picks"
	ErrMsgInvalidStatus     = "invalid event status transition"
	ErrMsgInvalidFormat     = "invalid contest format"
	ErrMsgInvalidPointsRule = "invalid points rule"

	// Match errors
	ErrMsgMatchNotFound      = "match not found"
	ErrMsgMatchNotInEvent    = "match does not belong to event"
	ErrMsgInvalidSide        = "invalid side"
	ErrMsgInvalidFinishType  = "invalid finish type"
	ErrMsgDuplicateMatchPick = "match picked more than once"

	// Odds errors
	ErrMsgInvalidOdds     = "invalid odds"
	ErrMsgUnknownOddsTier = "unknown odds tier"

	// Entry errors
	ErrMsgInvalidEntry = "invalid entry"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Event errors
	ErrEventNotFound     = errors.New(ErrMsgEventNotFound)
	ErrEventLocked       = errors.New(ErrMsgEventLocked)
	ErrInvalidStatus     = errors.New(ErrMsgInvalidStatus)
	ErrInvalidFormat     = errors.New(ErrMsgInvalidFormat)
	ErrInvalidPointsRule = errors.New(ErrMsgInvalidPointsRule)

	// Match errors
	ErrMatchNotFound      = errors.New(ErrMsgMatchNotFound)
	ErrMatchNotInEvent    = errors.New(ErrMsgMatchNotInEvent)
	ErrInvalidSide        = errors.New(ErrMsgInvalidSide)
	ErrInvalidFinishType  = errors.New(ErrMsgInvalidFinishType)
	ErrDuplicateMatchPick = errors.New(ErrMsgDuplicateMatchPick)

	// Odds errors
	ErrInvalidOdds     = errors.New(ErrMsgInvalidOdds)
	ErrUnknownOddsTier = errors.New(ErrMsgUnknownOddsTier)

	// Entry errors
	ErrInvalidEntry = errors.New(ErrMsgInvalidEntry)

	// Database/System errors
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
