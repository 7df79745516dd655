package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"gamehelpers/internal/config"
	"gamehelpers/internal/game"
	"gamehelpers/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting helper demo",
		zap.Int32("width", cfg.WindowWidth),
		zap.Int32("height", cfg.WindowHeight),
		zap.Duration("waitResolution", cfg.WaitResolution),
	)

	if err := game.New(cfg, log).Run(); err != nil {
		log.Error("demo failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}
