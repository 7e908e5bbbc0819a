package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"go-modwatch/internal/audit"
	"go-modwatch/internal/bot"
	"go-modwatch/internal/config"
	"go-modwatch/internal/logging"
	"go-modwatch/internal/logstore"
	"go-modwatch/internal/notifier"
	"go-modwatch/internal/reactors"
	"go-modwatch/internal/watchdog"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using process environment")
	}

	cfg := config.Load()
	if cfg.Token == "" {
		fmt.Fprintln(os.Stderr, "DISCORD_TOKEN is required")
		os.Exit(1)
	}

	if err := logging.Init(logging.LevelInfo, cfg.BotLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	session, err := bot.New(cfg.Token)
	if err != nil {
		logging.Error("Session creation failed: %v", err)
		os.Exit(1)
	}

	store := logstore.New(cfg.AlertLogPath)
	fetcher := audit.NewRESTFetcher(cfg.Token)
	sender := notifier.NewDiscordSender(session.Discord())

	dog := watchdog.New(time.Minute)
	dog.Register("gateway", 15*time.Minute)
	dog.Register("reactors", 30*time.Minute)
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Event) {
		dog.Heartbeat("gateway")
	})

	r := reactors.New(cfg, fetcher, sender, store, dog)
	r.Register(session.Discord())

	if err := session.Connect(); err != nil {
		logging.Error("Gateway connection failed: %v", err)
		os.Exit(1)
	}

	dog.Start()

	logging.Info("modwatch running (bot-add=%t role=%t webhook=%t link=%t, alert channel=%s)",
		cfg.EnableBotAddAlerts, cfg.EnableRoleAlerts, cfg.EnableWebhookAlerts,
		cfg.EnableLinkAlerts, cfg.AlertChannelID)

	waitForShutdown()

	dog.Stop()
	session.Close()
	logging.Info("Shutdown complete")
	logging.Close()
}

func waitForShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nShutdown signal received")
}
