package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LootForge_Go/internal/config"
	"github.com/osse101/LootForge_Go/internal/discord"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// DefaultHealthPort is where the bot serves /health and /metrics
const DefaultHealthPort = "8082"

// CommandFactory creates a Discord command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	if err := config.ValidateDiscordEnv(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.LoadDiscord()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, "text", "lootforge-discord", os.Getenv("VERSION"), os.Getenv("ENVIRONMENT"), false))
	slog.Info("Configured API URL", "url", cfg.APIURL, "guild_id", cfg.GuildID, "default_scene", cfg.Scene)

	bot, err := discord.New(discord.Config{
		Token:   cfg.Token,
		AppID:   cfg.AppID,
		GuildID: cfg.GuildID,
		APIURL:  cfg.APIURL,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthPort := os.Getenv("DISCORD_HEALTH_PORT")
	if healthPort == "" {
		healthPort = DefaultHealthPort
	}
	httpServer := discord.NewHTTPServer(healthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	for _, factory := range commandFactories(cfg.Scene) {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(context.Background()); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func commandFactories(defaultScene string) []CommandFactory {
	return []CommandFactory{
		func() (*discordgo.ApplicationCommand, discord.CommandHandler) { return discord.LootCommand(defaultScene) },
		discord.LootBudgetCommand,
		discord.PingCommand,
	}
}
