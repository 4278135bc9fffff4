package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/obrakeo/vfxnaming/pkg/config"
)

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	cfg := config.DefaultConfig()
	return NewCollector(&cfg.Metrics, nil)
}

func TestCollector_Counters(t *testing.T) {
	c := newTestCollector(t)

	c.RecordSolve("asset", StatusOK)
	c.RecordSolve("asset", StatusOK)
	c.RecordSolve("asset", StatusError)
	c.RecordParse("asset", StatusOK)
	c.RecordStoreOp("save", "file", StatusOK)
	c.RecordReload()

	if got := testutil.ToFloat64(c.solvesTotal.WithLabelValues("asset", StatusOK)); got != 2 {
		t.Errorf("solves ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.solvesTotal.WithLabelValues("asset", StatusError)); got != 1 {
		t.Errorf("solves error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.parsesTotal.WithLabelValues("asset", StatusOK)); got != 1 {
		t.Errorf("parses ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.sessionOpsTotal.WithLabelValues("save", "file", StatusOK)); got != 1 {
		t.Errorf("store ops = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.reloadsTotal); got != 1 {
		t.Errorf("reloads = %v, want 1", got)
	}
}

func TestCollector_Gauges(t *testing.T) {
	c := newTestCollector(t)
	c.SetRegistrySizes(4, 2)

	if got := testutil.ToFloat64(c.tokensRegistered); got != 4 {
		t.Errorf("tokens gauge = %v, want 4", got)
	}
	if got := testutil.ToFloat64(c.rulesRegistered); got != 2 {
		t.Errorf("rules gauge = %v, want 2", got)
	}
}

func TestCollector_Handler(t *testing.T) {
	c := newTestCollector(t)
	c.RecordSolve("asset", StatusOK)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "vfxnaming_session_solves_total") {
		t.Error("exposition output is missing the solves counter")
	}
}
