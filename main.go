package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"saju-lab/internal/apiversion"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	address := flag.String("address", "", "Address to bind the API server (host:port)")
	dbPath := flag.String("db", "", "Path to SQLite database")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	enableNAT := flag.Bool("nat", false, "Map the API port on the gateway via UPnP/NAT-PMP")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *address != "" {
		cfg.Server.Address = *address
	}
	if *dbPath != "" {
		cfg.Storage.Driver = "sqlite"
		cfg.Storage.Path = *dbPath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *enableNAT {
		cfg.NAT.Enabled = true
	}
	if err := cfg.validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer closeLog()

	// Initialize storage
	store, err := NewStore(cfg.Storage)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize storage")
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := newIPRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	if limiter != nil {
		go limiter.cleanup(ctx)
	}

	api := NewAPI(store, logger, NewMetrics(), limiter)
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      api.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	logger.WithFields(logrus.Fields{
		"address": cfg.Server.Address,
		"storage": cfg.Storage.Driver,
		"api":     apiversion.Current.String(),
	}).Info("saju-lab is now online")

	if cfg.NAT.Enabled {
		if natCfg, err := natConfigFor(cfg.Server.Address, cfg.NAT); err != nil {
			logger.WithError(err).Warn("NAT disabled")
		} else {
			traversal := NewNATTraversal(logger)
			if external, err := traversal.Setup(ctx, natCfg); err != nil {
				logger.WithError(err).Warn("NAT port mapping unavailable")
			} else {
				logger.Infof("NAT (%s): reachable at http://%s", traversal.GetProtocol(), external)
				defer traversal.Close()
			}
		}
	}

	if cfg.Storage.RetentionDays > 0 {
		schedulePruning(ctx, store, logger, time.Duration(cfg.Storage.RetentionDays)*24*time.Hour)
	}

	// Wait for shutdown signal or a listener failure
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			logger.WithError(err).Error("API server failed")
		}
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("Graceful shutdown incomplete")
	}
	logger.Info("Goodbye!")
}

// schedulePruning removes stale store entries daily at 3 AM
func schedulePruning(ctx context.Context, store Store, logger *logrus.Logger, retention time.Duration) {
	now := time.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), 3, 0, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}

	duration := next.Sub(now)
	logger.Infof("Next pruning scheduled for %s (in %v)", next.Format(time.RFC3339), duration.Round(time.Second))

	go func() {
		timer := time.NewTimer(duration)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			n, err := store.Prune(ctx, retention)
			if err != nil {
				logger.WithError(err).Error("Pruning error")
			} else {
				logger.Infof("Pruning complete: %d stale entries removed", n)
			}
			timer.Reset(24 * time.Hour)
		}
	}()
}
