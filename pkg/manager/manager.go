package manager

import (
	"context"
	"log/slog"
	"sync"

	"github.com/obrakeo/vfxnaming/pkg/naming"
	"github.com/obrakeo/vfxnaming/pkg/storage"
	"github.com/obrakeo/vfxnaming/pkg/telemetry/metrics"
)

// Manager owns a live session and its storage backend.
type Manager struct {
	mu      sync.Mutex
	session *naming.Session
	store   storage.Store
	logger  *slog.Logger
	metrics *metrics.Collector
}

// New creates a manager. The collector may be nil when metrics are
// disabled.
func New(session *naming.Session, store storage.Store, logger *slog.Logger, collector *metrics.Collector) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		session: session,
		store:   store,
		logger:  logger,
		metrics: collector,
	}
}

// Session returns the managed session. Callers that mutate it while
// watch mode is running must hold no expectations about concurrent
// reloads; one-shot tools are fine.
func (m *Manager) Session() *naming.Session { return m.session }

// Reload resets the session registries and loads them back from the
// store.
func (m *Manager) Reload(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session.ResetTokens()
	m.session.ResetRules()
	err := m.store.Load(ctx, m.session)
	m.recordStoreOp("load", err)
	if err != nil {
		return err
	}
	m.logger.Info("session reloaded",
		"backend", m.store.Backend(),
		"tokens", len(m.session.Tokens()),
		"rules", len(m.session.Rules()),
		"active_rule", m.session.ActiveRuleName(),
	)
	if m.metrics != nil {
		m.metrics.RecordReload()
	}
	return nil
}

// Save persists the live session to the store.
func (m *Manager) Save(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.store.Save(ctx, m.session)
	m.recordStoreOp("save", err)
	if err != nil {
		return err
	}
	m.logger.Debug("session saved", "backend", m.store.Backend())
	return nil
}

// Solve builds a name through the session's active rule, recording
// the attempt in the metrics collector.
func (m *Manager) Solve(named naming.Values, positional ...any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name, err := m.session.Solve(named, positional...)
	if m.metrics != nil {
		m.metrics.RecordSolve(m.session.ActiveRuleName(), statusOf(err))
	}
	return name, err
}

// Parse inverts a name through the session's active rule, recording
// the attempt in the metrics collector.
func (m *Manager) Parse(name string) (naming.Values, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	values, err := m.session.Parse(name)
	if m.metrics != nil {
		m.metrics.RecordParse(m.session.ActiveRuleName(), statusOf(err))
	}
	return values, err
}

func (m *Manager) recordStoreOp(op string, err error) {
	if m.metrics == nil {
		return
	}
	m.metrics.RecordStoreOp(op, m.store.Backend(), statusOf(err))
	if err == nil {
		m.metrics.SetRegistrySizes(len(m.session.Tokens()), len(m.session.Rules()))
	}
}

func statusOf(err error) string {
	if err != nil {
		return metrics.StatusError
	}
	return metrics.StatusOK
}
