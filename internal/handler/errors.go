package handler

// Generic HTTP error messages for client responses.
// Server-side failures never expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s"
	ErrMsgOneOfParams       = "Exactly one of %s or %s is required"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."

	ErrMsgEventNotFoundError = "Event not found"
	ErrMsgMatchNotFoundError = "Match not found"
	ErrMsgEventLockedError   = "This event is no longer accepting picks"
)

// Operation names used in logs
const (
	OpConvertOdds     = "Convert odds"
	OpSuggestOdds     = "Suggest odds"
	OpCreateEvent     = "Create event"
	OpListEvents      = "List events"
	OpGetEvent        = "Get event"
	OpSetEventStatus  = "Set event status"
	OpSubmitPicks     = "Submit picks"
	OpRecordResult    = "Record result"
	OpEventPotential  = "Event potential"
	OpEntryPotential  = "Entry potential"
	OpGetLeaderboard  = "Get leaderboard"
	OpRatioPoints     = "Ratio match points"
	OpAmericanPoints  = "American match points"
	OpScoreSelection  = "Score selection"
	OpValidatePick6   = "Validate entry"
	OpPotentialPoints = "Potential points"
	OpDescribeOdds    = "Describe odds"
	OpValidateOdds    = "Validate odds"
)
