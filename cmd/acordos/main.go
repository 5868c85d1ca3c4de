package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err := app.Start(ctx); err != nil {
		log.Error().Err(err).Msg("Can't start application")
		cancel()
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		zap.L().Debug("command failed", zap.Error(err))
		cancel()
		os.Exit(1)
	}
}
