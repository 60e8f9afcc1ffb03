package discord

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/Pickem_Go/internal/domain"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		RecordCommand()
		h(s, i, client)
	}
}

// RegisterCommands pushes the registry to Discord. Unless forceUpdate is set,
// it only overwrites when the definitions differ from Discord's copy.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	desired := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desired = append(desired, cmd)
	}

	if !forceUpdate {
		existing, err := b.Session.ApplicationCommands(b.AppID, "")
		if err != nil {
			return fmt.Errorf("failed to fetch existing commands: %w", err)
		}
		if commandsEqual(existing, desired) {
			slog.Info("Commands unchanged, skipping registration", "count", len(existing))
			return nil
		}
		slog.Info("Commands changed, updating", "existing", len(existing), "desired", len(desired))
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands registered", "count", len(desired), "forced", forceUpdate)
	return nil
}

// commandsEqual compares command sets by name, ignoring order
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	byName := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		byName[cmd.Name] = cmd
	}

	for _, want := range desired {
		have, ok := byName[want.Name]
		if !ok || !commandEqual(have, want) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if !ptrEqual(a.DefaultMemberPermissions, b.DefaultMemberPermissions) {
		return false
	}
	return slices.EqualFunc(a.Options, b.Options, optionEqual)
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	// Discord echoes bounds back, so a changed limit range must trigger an update
	if !ptrEqual(a.MinValue, b.MinValue) || a.MaxValue != b.MaxValue {
		return false
	}
	return slices.EqualFunc(a.Choices, b.Choices, func(x, y *discordgo.ApplicationCommandOptionChoice) bool {
		return x.Name == y.Name && x.Value == y.Value
	})
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// deferResponse acknowledges the interaction so the handler can take
// longer than Discord's three second window
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// optionMap indexes the command options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// respondError replaces the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError logs err and answers with formatFriendlyError's text
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, action string, err error) {
	slog.Error(action+" failed", "error", err)
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError turns API failures into something a viewer can act on
func formatFriendlyError(err error) string {
	if err == nil {
		return MsgGenericError
	}

	msg := strings.TrimPrefix(err.Error(), "API error: ")
	switch {
	case statusOf(err) == http.StatusNotFound:
		return MsgEventNotFound
	case statusOf(err) >= http.StatusInternalServerError,
		strings.Contains(msg, "max retries exceeded"):
		return MsgAPIUnavailable
	case strings.Contains(msg, domain.ErrMsgInvalidOdds), strings.Contains(msg, "Invalid American odds"):
		return MsgInvalidOdds
	default:
		return "❌ " + msg
	}
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterPickem},
	}
}
