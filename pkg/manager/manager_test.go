package manager

import (
	"context"
	"testing"

	"github.com/obrakeo/vfxnaming/pkg/config"
	"github.com/obrakeo/vfxnaming/pkg/naming"
	"github.com/obrakeo/vfxnaming/pkg/storage"
	"github.com/obrakeo/vfxnaming/pkg/telemetry/metrics"
)

func buildShotSession(t *testing.T) *naming.Session {
	t.Helper()

	s := naming.NewSession()
	s.AddToken("category",
		naming.Opt{Key: "character", Abbr: "char"},
		naming.Opt{Key: "prop", Abbr: "prop"},
	)
	s.AddToken("name")
	s.AddTokenNumber("version", "v", 3, "")
	if _, err := s.AddRule("asset", "category", "name", "version"); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestManagerSaveReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := t.TempDir()
	store := storage.NewFileStore(repo)
	defer store.Close()

	m := New(buildShotSession(t), store, nil, nil)
	if err := m.Save(ctx); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// A fresh session reloaded from the same store must behave the
	// same as the original.
	restored := New(naming.NewSession(), store, nil, nil)
	if err := restored.Reload(ctx); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	got, err := restored.Solve(naming.Values{"category": "prop"}, "table", 12)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if want := "prop_table_v012"; got != want {
		t.Errorf("Solve() = %q, want %q", got, want)
	}
}

func TestManagerReloadReplacesRegistries(t *testing.T) {
	ctx := context.Background()
	repo := t.TempDir()
	store := storage.NewFileStore(repo)
	defer store.Close()

	m := New(buildShotSession(t), store, nil, nil)
	if err := m.Save(ctx); err != nil {
		t.Fatal(err)
	}

	// Local edits not present in the store must not survive a reload.
	m.Session().AddToken("side", naming.Opt{Key: "left", Abbr: "L"})
	if err := m.Reload(ctx); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if m.Session().HasToken("side") {
		t.Error("token added after save survived Reload()")
	}
	if !m.Session().HasToken("category") {
		t.Error("stored token missing after Reload()")
	}
}

func TestManagerSolveParse(t *testing.T) {
	m := New(buildShotSession(t), storage.NewFileStore(t.TempDir()), nil, nil)

	name, err := m.Solve(naming.Values{"category": "character"}, "hero", 25)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if name != "char_hero_v025" {
		t.Errorf("Solve() = %q, want %q", name, "char_hero_v025")
	}

	values, err := m.Parse(name)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if values["category"] != "character" || values["name"] != "hero" || values["version"] != 25 {
		t.Errorf("Parse() = %v", values)
	}
}

func TestManagerRecordsMetrics(t *testing.T) {
	ctx := context.Background()
	collector := metrics.NewCollector(&config.MetricsConfig{}, nil)
	store := storage.NewFileStore(t.TempDir())
	m := New(buildShotSession(t), store, nil, collector)

	if _, err := m.Solve(naming.Values{"category": "character"}, "hero", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Solve(nil); err == nil {
		t.Fatal("Solve() with no values expected error")
	}
	if err := m.Save(ctx); err != nil {
		t.Fatal(err)
	}

	counts := map[string]float64{}
	families, err := collector.Registry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, mf := range families {
		var sum float64
		for _, metric := range mf.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				sum += c.GetValue()
			}
		}
		counts[mf.GetName()] = sum
	}

	if got := counts["vfxnaming_session_solves_total"]; got != 2 {
		t.Errorf("solves_total = %v, want 2", got)
	}
	if got := counts["vfxnaming_session_store_operations_total"]; got != 1 {
		t.Errorf("store_operations_total = %v, want 1", got)
	}
}
