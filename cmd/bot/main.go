package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"tg_account_bot/internal/api"
	"tg_account_bot/internal/bot"
	"tg_account_bot/internal/repository"
	"tg_account_bot/internal/scheduler"
	"tg_account_bot/internal/service"
	"tg_account_bot/internal/telegram"
	"tg_account_bot/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	registry := telegram.NewRegistry(cfg.Telegram, repo, repo)
	defer registry.Close()

	svc := service.NewService(
		service.NewSubmissionService(repo, registry, cfg.AccountPassword),
		service.NewAccountService(repo),
		service.NewWithdrawalService(repo),
		service.NewAdminService(repo, registry),
		service.NewReceiptService(repo),
	)

	sched, err := scheduler.New(cfg.Scheduler, repo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize scheduler", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	opsServer := api.NewServer(cfg.Server, repo)
	opsServer.Start()

	b, err := bot.New(cfg.Bot, svc)
	if err != nil {
		zapLogger.Fatal("Failed to initialize bot", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zapLogger.Info("bot starting")
	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zapLogger.Error("bot stopped with error", zap.Error(err))
	}

	if err := opsServer.Shutdown(context.Background()); err != nil {
		zapLogger.Error("ops server shutdown failed", zap.Error(err))
	}
	zapLogger.Info("bot stopped")
}
