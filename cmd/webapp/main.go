package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	coreconfig "restobot/internal/config"
	"restobot/internal/logger"
	"restobot/internal/webapp"
)

func main() {
	_ = godotenv.Load()

	var cfg coreconfig.WebappConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Printf("fatal: invalid environment: %v", err)
		os.Exit(1)
	}
	if cfg.Port <= 0 {
		cfg.Port = 8000
	}
	if cfg.Dir == "" {
		cfg.Dir = "webapp"
	}

	if err := logger.InitLogger(&coreconfig.Config{}); err != nil {
		log.Printf("fatal: logger init: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := webapp.Run(ctx, cfg); err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}
}
