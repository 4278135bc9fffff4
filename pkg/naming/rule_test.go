package naming

import (
	"reflect"
	"testing"
)

func TestNewRule_NeedsFields(t *testing.T) {
	if _, err := NewRule("empty"); err == nil {
		t.Fatal("expected usage error for a rule with no fields")
	}
}

func TestRule_Pattern(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   string
	}{
		{"three fields", []string{"a", "b", "c"}, "{a}_{b}_{c}"},
		{"single field", []string{"name"}, "{name}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewRule("r", tt.fields...)
			if err != nil {
				t.Fatalf("NewRule failed: %v", err)
			}
			if got := rule.Pattern(); got != tt.want {
				t.Errorf("Pattern() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRule_AddFieldsAppends(t *testing.T) {
	rule, err := NewRule("r", "a")
	if err != nil {
		t.Fatalf("NewRule failed: %v", err)
	}
	rule.AddFields("b", "c")
	if got := rule.Pattern(); got != "{a}_{b}_{c}" {
		t.Errorf("Pattern() = %q after AddFields", got)
	}
}

func TestRule_Solve(t *testing.T) {
	rule, err := NewRule("asset", "category", "name", "version")
	if err != nil {
		t.Fatalf("NewRule failed: %v", err)
	}

	got, err := rule.Solve(map[string]string{
		"category": "char",
		"name":     "hero",
		"version":  "v001",
	})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if got != "char_hero_v001" {
		t.Errorf("Solve = %q, want char_hero_v001", got)
	}

	_, err = rule.Solve(map[string]string{"category": "char", "name": "hero"})
	if err == nil {
		t.Fatal("expected usage error for missing field")
	}
	if !IsKind(err, KindUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestRule_Parse(t *testing.T) {
	s := NewSession()
	s.AddToken("category")
	s.AddToken("side", Opt{Key: "left", Abbr: "L"}, Opt{Key: "right", Abbr: "R"})
	s.AddTokenNumber("version", "v", 3, "")
	rule, err := NewRule("asset", "category", "side", "version")
	if err != nil {
		t.Fatalf("NewRule failed: %v", err)
	}

	got, err := rule.Parse("char_L_v025", s)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := Values{"category": "char", "side": "left", "version": 25}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestRule_ParseArityMismatch(t *testing.T) {
	s := NewSession()
	s.AddToken("a")
	s.AddToken("b")
	rule, err := NewRule("r", "a", "b")
	if err != nil {
		t.Fatalf("NewRule failed: %v", err)
	}

	for _, name := range []string{"one", "one_two_three"} {
		_, err := rule.Parse(name, s)
		if err == nil {
			t.Fatalf("Parse(%q) should fail on arity mismatch", name)
		}
		if !IsKind(err, KindParse) {
			t.Errorf("expected parse error, got %v", err)
		}
	}
}

func TestRule_ParseUnknownToken(t *testing.T) {
	s := NewSession()
	rule, err := NewRule("r", "ghost")
	if err != nil {
		t.Fatalf("NewRule failed: %v", err)
	}

	_, err = rule.Parse("anything", s)
	if err == nil {
		t.Fatal("expected lookup error for unregistered token")
	}
	if !IsKind(err, KindLookup) {
		t.Errorf("expected lookup error, got %v", err)
	}
}
