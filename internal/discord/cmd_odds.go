package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// OddsCommand shows a line in every notation the contests use
func OddsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "odds",
		Description: "Explain an American odds line and what it is worth",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "american",
				Description: "American odds, e.g. -150 or +200 (0 for pick'em)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		opt, ok := optionMap(i)["american"]
		if !ok {
			respondError(s, i, fmt.Sprintf(MsgMissingArgument, "american"))
			return
		}
		american := int(opt.IntValue())

		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		conv, err := client.ConvertOdds(ctx, american)
		if err != nil {
			respondFriendlyError(s, i, "Convert odds", err)
			return
		}
		balanced, err := client.AmericanPoints(ctx, american)
		if err != nil {
			respondFriendlyError(s, i, "Balanced points", err)
			return
		}
		pick6, err := client.Pick6Potential(ctx, american, false)
		if err != nil {
			respondFriendlyError(s, i, "Pick 6 potential", err)
			return
		}

		sendEmbed(s, i, createEmbed("📊 Odds "+conv.Formatted, formatOdds(conv, balanced, pick6), ColorOdds))
	}

	return cmd, handler
}

// PotentialCommand shows the best case for a Pick 6 selection
func PotentialCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "potential",
		Description: "Best-case Pick 6 points for a fighter",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "american",
				Description: "The fighter's American odds",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "double_down",
				Description: "Is this your double down?",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(i)
		opt, ok := opts["american"]
		if !ok {
			respondError(s, i, fmt.Sprintf(MsgMissingArgument, "american"))
			return
		}
		doubleDown := false
		if dd, ok := opts["double_down"]; ok {
			doubleDown = dd.BoolValue()
		}

		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		p, err := client.Pick6Potential(ctx, int(opt.IntValue()), doubleDown)
		if err != nil {
			respondFriendlyError(s, i, "Pick 6 potential", err)
			return
		}

		sendEmbed(s, i, createEmbed("🎯 Pick 6 Potential", formatPotential(p), ColorPotential))
	}

	return cmd, handler
}
