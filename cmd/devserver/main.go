package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/myrecords/internal/buildinfo"
	"github.com/dmitrijs2005/myrecords/internal/devserver"
	"github.com/dmitrijs2005/myrecords/internal/devserver/config"
	"github.com/dmitrijs2005/myrecords/internal/devserver/store"
	"github.com/dmitrijs2005/myrecords/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.LoadConfig(os.Args[1:], os.Environ())
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}

	srv := devserver.New(store.NewMemory(0), []byte(cfg.SecretKey), logger,
		devserver.WithTokenTTL(cfg.TokenValidity),
		devserver.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
	)
	if err := srv.Run(ctx, cfg.Addr); err != nil {
		logger.Error(ctx, "devserver stopped", "error", err)
		os.Exit(1)
	}
}
