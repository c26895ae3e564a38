package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	ulidapp "github.com/go-ulid/internal/application/ulid"
	"github.com/go-ulid/internal/config"
	"github.com/go-ulid/internal/pkg/id"
	"github.com/go-ulid/internal/pkg/logger"
	"github.com/go-ulid/internal/transport/cli"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(log)
	if envErr != nil {
		log.Debug("no .env file found, reading from environment")
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svc := ulidapp.NewService(id.NewGenerator(), loc, log)
	root := cli.NewRoot(svc, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Debug("command failed", "env", cfg.AppEnv, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
