package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/clock"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/store"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/transport"
)

var config struct {
	Addr           string        `long:"addr" env:"API_GATEWAY_ADDR" description:"listen address" default:":8000"`
	SnapshotPath   string        `long:"snapshot-path" env:"API_GATEWAY_SNAPSHOT_PATH" description:"store snapshot file written by the syncer" default:"auctions.json"`
	ReloadInterval time.Duration `long:"reload-interval" env:"API_GATEWAY_RELOAD_INTERVAL" description:"snapshot reload interval" default:"15s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	st, err := store.Load(config.SnapshotPath, logger.Named("store"))
	if err != nil {
		logger.Fatal("failed to load snapshot", zap.Error(err))
	}

	go func() {
		for {
			if err := clock.SleepWithContext(ctx, config.ReloadInterval); err != nil {
				return
			}
			if err := st.Reload(config.SnapshotPath); err != nil {
				logger.Warn("snapshot reload failed", zap.Error(err))
			}
		}
	}()

	mux := http.NewServeMux()
	transport.NewAPIHandler(st, logger.Named("api")).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to listen and serve", zap.Error(err))
	}
}
