// Package main contains the entrypoint for the shop Telegram bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"

	"github.com/edgard/shopbot/internal/bot"
	"github.com/edgard/shopbot/internal/bot/handlers"
	"github.com/edgard/shopbot/internal/bot/tasks"
	"github.com/edgard/shopbot/internal/config"
	"github.com/edgard/shopbot/internal/logger"
	"github.com/edgard/shopbot/internal/telegram"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to optional configuration file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx, *configPath)
	stop()
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger, telegram client,
// scheduler), handles graceful shutdown, and returns an exit code (0 for success, 1 for failure).
func run(ctx context.Context, configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(handlers.DefaultHandler(log)),
		tgbot.WithErrorsHandler(logger.ErrorsHandler(log)),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	cmds := handlers.RegisterAllCommands(handlers.HandlerDeps{Logger: log, Content: &cfg.Content})
	if err := telegram.RegisterHandlers(tg, log, cmds, cfg.Telegram.BotInfo.Username); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}

	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tasks.TaskDeps{Logger: log, Telegram: tg}))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}
	app := bot.NewBot(log, cfg, tg, sched, cmds)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		time.Sleep(time.Second)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
