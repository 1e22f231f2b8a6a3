package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/myrecords/internal/buildinfo"
	"github.com/dmitrijs2005/myrecords/internal/client/cli"
	"github.com/dmitrijs2005/myrecords/internal/client/client"
	"github.com/dmitrijs2005/myrecords/internal/client/config"
	"github.com/dmitrijs2005/myrecords/internal/logging"
	"github.com/dmitrijs2005/myrecords/internal/metrics"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(os.Args[1:], os.Environ())
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var opts []client.Option
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, client.WithRecorder(metrics.NewCollector(reg)))
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: metrics.Handler(reg), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "metrics listener", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
		defer srv.Close()
	}

	app, err := cli.NewApp(ctx, cfg, logger, opts...)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
