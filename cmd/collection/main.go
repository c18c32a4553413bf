package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/szabodaniel/boardgame-collection/config"
	"github.com/szabodaniel/boardgame-collection/internal/app"
	"github.com/szabodaniel/boardgame-collection/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.NewConfig()
	log := logger.NewLogger(cfg.Log, "collection")
	defer log.Sync() //nolint:errcheck

	a, err := app.New(log, cfg)
	if err != nil {
		log.Fatal("app init", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := app.NewRootCommand(a)
	if err := root.ExecuteContext(ctx); err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
