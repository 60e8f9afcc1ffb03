package postgres

// Error message prefixes
const (
	ErrMsgFailedToBeginTx       = "failed to begin transaction"
	ErrMsgFailedToCommitTx      = "failed to commit transaction"
	ErrMsgFailedToInsertEvent   = "failed to insert event"
	ErrMsgFailedToInsertMatch   = "failed to insert match"
	ErrMsgFailedToQueryEvent    = "failed to query event"
	ErrMsgFailedToQueryMatches  = "failed to query matches"
	ErrMsgFailedToQueryPicks    = "failed to query picks"
	ErrMsgFailedToUpdateStatus  = "failed to update event status"
	ErrMsgFailedToDeletePicks   = "failed to delete picks"
	ErrMsgFailedToInsertPicks   = "failed to insert picks"
	ErrMsgFailedToUpdateResult  = "failed to update match result"
	ErrMsgFailedToUpdatePoints  = "failed to update pick points"
	ErrMsgFailedToQueryStanding = "failed to query leaderboard"
)

// Log messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
