package contest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/osse101/Pickem_Go/internal/config"
	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/logger"
)

// ImportEventCard loads a JSON event card, checks it against the card
// schema and creates the event it describes
func (s *service) ImportEventCard(ctx context.Context, path string) (*domain.Event, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToReadCard, path, err)
	}

	if s.schema != nil {
		if err := s.schema.ValidateBytes(data, s.schemaPath()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	var in NewEvent
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToDecodeCard, domain.ErrInvalidInput, path, err)
	}

	evt, err := s.CreateEvent(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Info(LogMsgEventCardImported, "path", path, "event_id", evt.ID)
	return evt, nil
}

// ImportEventCardDir imports every *.json card in dir in name order.
// It stops at the first card that fails.
func (s *service) ImportEventCardDir(ctx context.Context, dir string) ([]*domain.Event, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	events := make([]*domain.Event, 0, len(paths))
	for _, p := range paths {
		evt, err := s.ImportEventCard(ctx, p)
		if err != nil {
			return events, err
		}
		events = append(events, evt)
	}
	return events, nil
}

func (s *service) schemaPath() string {
	if s.opts.SchemaPath != "" {
		return s.opts.SchemaPath
	}
	return config.ConfigPathEventCardSchema
}
