package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/api/fantasy"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/api/sleeper"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/bot"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/config"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/repository/memory"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/scheduler"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/server"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	sleeperClient := sleeper.NewClient(cfg.SleeperAPI)
	sleeperAPI := sleeper.NewAPI(sleeperClient)
	fantasyAPI := fantasy.NewAPI(sleeperAPI)

	repo := memory.NewRepository()
	fantasyService := service.NewFantasyService(fantasyAPI, repo, cfg.Lottery.Slots)

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, fantasyService, cfg.Lottery.RevealDelay)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(fantasyService, telegramBot.SendMessage)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	apiServer := server.New(fantasyService)
	go func() {
		if err := apiServer.Run(cfg.Server.Addr); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}
