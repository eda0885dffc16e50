package main

import (
	"context"
	"ctchen222/tictactoe-engine/internal/cli"
	"ctchen222/tictactoe-engine/internal/config"
	"ctchen222/tictactoe-engine/internal/logger"
	"ctchen222/tictactoe-engine/internal/telemetry"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml config file")
	mode := flag.String("mode", "", "two_player or computer (overrides config)")
	difficulty := flag.String("difficulty", "", "easy, medium or hard (overrides config)")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *mode != "" {
		conf.Mode = *mode
	}
	if *difficulty != "" {
		conf.Difficulty = *difficulty
	}

	logger.Init(os.Stderr, conf.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, conf.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	app := cli.NewApp(conf, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "tictactoe exited with error", "error", err)
		stop()
		os.Exit(1)
	}
}
