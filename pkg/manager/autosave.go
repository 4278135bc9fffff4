package manager

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Autosaver persists the managed session on a cron schedule so long
// running watch sessions never lose registry edits.
type Autosaver struct {
	manager  *Manager
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewAutosaver creates an autosaver for the manager. The schedule uses
// standard five-field cron syntax, for example "*/5 * * * *" to save
// every five minutes. An empty schedule disables autosaving.
func NewAutosaver(m *Manager, schedule string, logger *slog.Logger) *Autosaver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Autosaver{
		manager:  m,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "autosaver"),
	}
}

// Start schedules the save job and stops it when the context is
// cancelled. With an empty schedule it returns immediately.
func (a *Autosaver) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.schedule == "" {
		a.logger.Debug("autosave schedule not configured, skipping")
		return nil
	}

	if _, err := cron.ParseStandard(a.schedule); err != nil {
		return fmt.Errorf("invalid autosave schedule %q: %w", a.schedule, err)
	}

	if _, err := a.cron.AddFunc(a.schedule, func() {
		a.runSave(ctx)
	}); err != nil {
		return fmt.Errorf("schedule autosave: %w", err)
	}

	a.cron.Start()
	a.running = true
	a.logger.Info("autosaver started", "schedule", a.schedule)

	go func() {
		<-ctx.Done()
		a.Stop()
	}()

	return nil
}

func (a *Autosaver) runSave(ctx context.Context) {
	if err := a.manager.Save(ctx); err != nil {
		a.logger.Error("scheduled save failed", "error", err)
		return
	}
	a.logger.Debug("scheduled save completed")
}

// Stop stops the scheduler and waits for a running save to finish.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cron != nil && a.running {
		ctx := a.cron.Stop()
		<-ctx.Done()
		a.running = false
		a.logger.Info("autosaver stopped")
	}
}

// IsRunning reports whether the scheduler is active.
func (a *Autosaver) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// NextRun returns the next scheduled save time, or nil when no save
// is scheduled.
func (a *Autosaver) NextRun() *time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()

	entries := a.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}
