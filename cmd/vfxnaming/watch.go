package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/obrakeo/vfxnaming/pkg/cli"
	"github.com/obrakeo/vfxnaming/pkg/manager"
	"github.com/obrakeo/vfxnaming/pkg/telemetry/logging"
	"github.com/obrakeo/vfxnaming/pkg/telemetry/metrics"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run a live session that follows repository edits",
	Long: `Load the session and keep it running until interrupted, reloading
whenever token, rule or settings files change in the session
repository. Autosaving and a Prometheus metrics endpoint start too
when configured.

Examples:
  vfxnaming watch
  vfxnaming watch --repo /studio/shared/naming

  # With metrics
  VFXNAMING_METRICS_ENABLED=true vfxnaming watch`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, store, repo, err := openEnvironment()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := cli.SetupSignalHandler()
	defer stop()
	ctx = logging.WithLogger(ctx, logger)
	ctx, _ = logging.WithOperationID(ctx)
	logger = logging.FromContext(ctx)
	logger.Info("starting watch mode", "repo", repo, "backend", store.Backend())

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Metrics, nil)
	}

	session := newSession(logger)
	m := manager.New(session, store, logger, collector)
	if err := m.Reload(ctx); err != nil {
		return err
	}

	watcherCfg := manager.DefaultWatcherConfig(repo)
	if cfg.Watch.DebounceInterval > 0 {
		watcherCfg.DebounceInterval = cfg.Watch.DebounceInterval
	}
	watcher, err := manager.NewWatcher(watcherCfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Stop() }()

	autosaver := manager.NewAutosaver(m, cfg.Autosave.Schedule, logger)
	if err := autosaver.Start(ctx); err != nil {
		return err
	}
	defer autosaver.Stop()

	var metricsSrv *http.Server
	if collector != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		metricsSrv = &http.Server{
			Addr:    cfg.Metrics.ListenAddress,
			Handler: mux,
		}
		go func() {
			logger.Info("metrics endpoint listening", "address", cfg.Metrics.ListenAddress)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsSrv.Shutdown(shutdownCtx)
		}()
	}

	err = watcher.Watch(ctx, func() error {
		return m.Reload(ctx)
	})
	logger.Info("watch mode stopped")
	return err
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
