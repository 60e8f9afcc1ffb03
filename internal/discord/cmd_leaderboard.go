package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/osse101/Pickem_Go/internal/domain"
)

// LeaderboardCommand ranks the entries of one event
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLimit := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Top scorers for an event",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "event_id",
				Description: "Event ID",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "limit",
				Description: fmt.Sprintf("Number of entries to show (default: %d)", domain.DefaultLeaderboardLimit),
				Required:    false,
				MinValue:    &minLimit,
				MaxValue:    float64(domain.MaxLeaderboardLimit),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(i)
		raw, ok := opts["event_id"]
		if !ok {
			respondError(s, i, fmt.Sprintf(MsgMissingArgument, "event_id"))
			return
		}
		eventID, err := uuid.Parse(raw.StringValue())
		if err != nil {
			respondError(s, i, MsgEventNotFound)
			return
		}
		limit := domain.DefaultLeaderboardLimit
		if l, ok := opts["limit"]; ok {
			limit = int(l.IntValue())
		}

		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		evt, err := client.GetEvent(ctx, eventID)
		if err != nil {
			respondFriendlyError(s, i, "Get event", err)
			return
		}
		entries, err := client.GetLeaderboard(ctx, eventID, limit)
		if err != nil {
			respondFriendlyError(s, i, "Get leaderboard", err)
			return
		}

		sendEmbed(s, i, createEmbed(leaderboardTitle(evt), formatLeaderboard(entries), ColorLeaderboard))
	}

	return cmd, handler
}
