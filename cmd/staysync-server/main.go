package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mahadevpnair10/STAYSYNC/internal/bootstrap"
	"github.com/mahadevpnair10/STAYSYNC/internal/config"
	"github.com/mahadevpnair10/STAYSYNC/internal/logger"
	"github.com/mahadevpnair10/STAYSYNC/internal/metrics"
	"github.com/mahadevpnair10/STAYSYNC/internal/profiles"
	"github.com/mahadevpnair10/STAYSYNC/internal/server"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		println("config load failed:", err.Error())
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		println("logger setup failed:", err.Error())
		os.Exit(1)
	}
	log.Info().Str("env", cfg.Environment).Msg("starting staysync server")

	forecaster, err := bootstrap.BuildForecaster(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	client := profiles.NewClient(cfg.Supabase.URL, cfg.Supabase.APIKey, cfg.Supabase.Timeout)
	profileSvc := profiles.NewService(client, forecaster.Catalog(), log)

	h := server.NewHandler(forecaster, profileSvc, m, log, cfg.SupabaseConfigured())
	srv := server.New(h, server.Options{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		CORSOrigins:     cfg.Server.CORSOrigins,
		MetricsEnabled:  cfg.Metrics.Enabled,
		MetricsPath:     cfg.Metrics.Path,
	}, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}
}
