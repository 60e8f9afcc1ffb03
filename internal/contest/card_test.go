package contest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/validation"
)

const sampleCardDir = "../../configs/events"

func newCardService(repo *MockRepository) Service {
	return NewService(repo, nil, validation.NewSchemaValidator(), Options{BasePoints: 1000})
}

func TestImportEventCard_Samples(t *testing.T) {
	tests := []struct {
		file    string
		format  domain.ContestFormat
		matches int
	}{
		{"sample_match_picks.json", domain.FormatMatchPicks, 4},
		{"sample_pick6.json", domain.FormatPick6, 7},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("CreateEvent", mock.Anything, mock.AnythingOfType("*domain.Event")).Run(assignIDs).Return(nil)

			evt, err := newCardService(repo).ImportEventCard(context.Background(), filepath.Join(sampleCardDir, tt.file))

			require.NoError(t, err)
			assert.Equal(t, tt.format, evt.Format)
			assert.Len(t, evt.Matches, tt.matches)
			assert.False(t, evt.StartsAt.IsZero())
			repo.AssertExpectations(t)
		})
	}
}

func TestImportEventCard_BalancedSampleIsPriced(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateEvent", mock.Anything, mock.Anything).Run(assignIDs).Return(nil)

	evt, err := newCardService(repo).ImportEventCard(context.Background(), filepath.Join(sampleCardDir, "sample_match_picks.json"))

	require.NoError(t, err)
	assert.Equal(t, domain.PointsRuleBalanced, evt.PointsRule)
	assert.Equal(t, domain.SideA, evt.Matches[0].Favorite)
	assert.Equal(t, domain.SideB, evt.Matches[1].Favorite)
	assert.Equal(t, domain.SideNone, evt.Matches[2].Favorite)
	for _, m := range evt.Matches {
		assert.LessOrEqual(t, m.FavoritePoints, m.UnderdogPoints)
	}
}

func TestImportEventCard_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	card := `{"name": "Bad", "format": "pick6", "matches": [{"wrestler_a": "A", "wrestler_b": "B", "side_a_odds": 120, "purse": 5}]}`
	require.NoError(t, os.WriteFile(path, []byte(card), 0o600))

	repo := new(MockRepository)
	_, err := newCardService(repo).ImportEventCard(context.Background(), path)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "bad.json")
	repo.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}

func TestImportEventCard_MissingFile(t *testing.T) {
	repo := new(MockRepository)

	_, err := newCardService(repo).ImportEventCard(context.Background(), filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImportEventCardDir(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateEvent", mock.Anything, mock.Anything).Run(assignIDs).Return(nil)

	events, err := newCardService(repo).ImportEventCardDir(context.Background(), sampleCardDir)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.FormatMatchPicks, events[0].Format, "cards load in file name order")
	assert.Equal(t, domain.FormatPick6, events[1].Format)
}
