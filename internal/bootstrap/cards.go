package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/osse101/Pickem_Go/internal/contest"
)

// ImportEventCards loads every card in dir through the contest service.
// A missing directory is not an error; the first bad card stops the import.
func ImportEventCards(ctx context.Context, svc contest.Service, dir string) (int, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		slog.Info(LogMsgEventCardsSkipped, "dir", dir)
		return 0, nil
	}

	events, err := svc.ImportEventCardDir(ctx, dir)
	if err != nil {
		return len(events), fmt.Errorf("%s: %w", ErrMsgFailedImportCards, err)
	}

	for _, evt := range events {
		slog.Info(LogMsgEventCardsImported, "event_id", evt.ID, "name", evt.Name, "format", evt.Format, "matches", len(evt.Matches))
	}
	return len(events), nil
}
