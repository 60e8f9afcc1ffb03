package main

import (
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/osse101/Pickem_Go/internal/config"
	"github.com/osse101/Pickem_Go/internal/discord"
	"github.com/osse101/Pickem_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
	DefaultAPIURL     = "http://localhost:8080"
)

// CommandFactory creates a Discord command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	_ = godotenv.Load()

	logger.InitLogger(logger.NewConfig(
		getEnv("LOG_LEVEL", "info"),
		getEnv("LOG_FORMAT", "text"),
		"pickem-discord",
		getEnv("VERSION", "dev"),
		getEnv("ENVIRONMENT", logger.EnvironmentDev),
		false,
	))

	if err := config.ValidateDiscordEnv(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	cfg := discord.Config{
		Token:  os.Getenv("DISCORD_TOKEN"),
		AppID:  os.Getenv("DISCORD_APP_ID"),
		APIURL: getEnv("API_URL", DefaultAPIURL),
		APIKey: os.Getenv("API_KEY"),
	}
	if cfg.APIKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(getEnv("DISCORD_HEALTH_PORT", DefaultHealthPort), bot)
	httpServer.Start()
	defer httpServer.Stop()

	for _, factory := range commandFactories() {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// commands already registered with Discord keep working
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func commandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.OddsCommand,
		discord.PotentialCommand,
		discord.LeaderboardCommand,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
