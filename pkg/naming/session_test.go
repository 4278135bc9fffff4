package naming

import (
	"reflect"
	"testing"
)

// buildAssetSession creates the session used across registry tests:
// a required category/name, an optional side vocabulary, and a padded
// version number under an "asset" rule.
func buildAssetSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	s.AddToken("category")
	s.AddToken("name")
	s.AddToken("side", Opt{Key: "left", Abbr: "L"}, Opt{Key: "right", Abbr: "R"})
	s.AddTokenNumber("version", "v", 3, "")
	if _, err := s.AddRule("asset", "category", "name", "side", "version"); err != nil {
		t.Fatalf("AddRule failed: %v", err)
	}
	return s
}

func TestSession_AddRuleAutoActivates(t *testing.T) {
	s := NewSession()
	if s.ActiveRule() != nil {
		t.Fatal("fresh session must have no active rule")
	}
	if _, err := s.AddRule("first", "a"); err != nil {
		t.Fatalf("AddRule failed: %v", err)
	}
	if got := s.ActiveRuleName(); got != "first" {
		t.Errorf("first rule should auto-activate, active = %q", got)
	}

	// A second rule must not steal activation.
	if _, err := s.AddRule("second", "b"); err != nil {
		t.Fatalf("AddRule failed: %v", err)
	}
	if got := s.ActiveRuleName(); got != "first" {
		t.Errorf("adding a second rule changed the active rule to %q", got)
	}
}

func TestSession_RemoveActiveRuleLeavesStalePointer(t *testing.T) {
	s := NewSession()
	if _, err := s.AddRule("only", "a"); err != nil {
		t.Fatalf("AddRule failed: %v", err)
	}
	if !s.RemoveRule("only") {
		t.Fatal("RemoveRule returned false for an existing rule")
	}
	if s.ActiveRule() != nil {
		t.Error("ActiveRule must return nil after the active rule is removed")
	}
	if got := s.ActiveRuleName(); got != "" {
		t.Errorf("ActiveRuleName = %q, want empty for stale pointer", got)
	}
}

func TestSession_SetActiveRuleRequiresExistence(t *testing.T) {
	s := NewSession()
	if s.SetActiveRule("ghost") {
		t.Error("SetActiveRule must return false for an unknown rule")
	}
}

func TestSession_TokenRegistry(t *testing.T) {
	s := NewSession()
	s.AddToken("side", Opt{Key: "left", Abbr: "L"})

	if !s.HasToken("side") {
		t.Error("HasToken(side) = false after add")
	}
	if s.HasToken("ghost") {
		t.Error("HasToken(ghost) = true")
	}
	if !s.RemoveToken("side") {
		t.Error("RemoveToken(side) = false for an existing token")
	}
	if s.RemoveToken("side") {
		t.Error("RemoveToken(side) = true for a removed token")
	}

	s.AddToken("a")
	s.AddToken("b")
	s.ResetTokens()
	if len(s.Tokens()) != 0 {
		t.Error("ResetTokens left tokens behind")
	}
}

func TestSession_SolveParseRoundTrip(t *testing.T) {
	s := buildAssetSession(t)

	name, err := s.Solve(Values{
		"category": "char",
		"name":     "hero",
		"side":     "left",
		"version":  1,
	})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if name != "char_hero_L_v001" {
		t.Fatalf("Solve = %q, want char_hero_L_v001", name)
	}

	fields, err := s.Parse(name)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := Values{"category": "char", "name": "hero", "side": "left", "version": 1}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("Parse = %v, want %v", fields, want)
	}
}

func TestSession_SolvePositional(t *testing.T) {
	s := buildAssetSession(t)

	// Positional values feed required fields in rule order; the
	// optional side falls back to its default.
	name, err := s.Solve(nil, "char", "hero", 25)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if name != "char_hero_L_v025" {
		t.Errorf("Solve = %q, want char_hero_L_v025", name)
	}

	// Named values win over positional consumption.
	name, err = s.Solve(Values{"version": 2}, "char", "hero")
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if name != "char_hero_L_v002" {
		t.Errorf("Solve = %q, want char_hero_L_v002", name)
	}
}

func TestSession_SolveErrors(t *testing.T) {
	s := buildAssetSession(t)

	tests := []struct {
		name       string
		named      Values
		positional []any
		kind       ErrorKind
	}{
		{"positionals run out", nil, []any{"char"}, KindUsage},
		{"unknown side option", Values{"side": "center", "version": 1}, []any{"char", "hero"}, KindLookup},
		{"wrong type for number", Values{"version": "one"}, []any{"char", "hero"}, KindUsage},
		{"wrong type for optional word", Values{"side": 3, "version": 1}, []any{"char", "hero"}, KindUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Solve(tt.named, tt.positional...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsKind(err, tt.kind) {
				t.Errorf("expected %s error, got %v", tt.kind, err)
			}
		})
	}
}

func TestSession_NoActiveRule(t *testing.T) {
	s := NewSession()

	if _, err := s.Solve(nil, "x"); !IsKind(err, KindLookup) {
		t.Errorf("Solve without active rule: got %v, want lookup error", err)
	}
	if _, err := s.Parse("x"); !IsKind(err, KindLookup) {
		t.Errorf("Parse without active rule: got %v, want lookup error", err)
	}
}

func TestSession_SolveUnregisteredRuleField(t *testing.T) {
	s := NewSession()
	if _, err := s.AddRule("r", "ghost"); err != nil {
		t.Fatalf("AddRule failed: %v", err)
	}
	_, err := s.Solve(nil, "x")
	if !IsKind(err, KindLookup) {
		t.Errorf("expected lookup error for unregistered token, got %v", err)
	}
}
