package main

import (
	"testing"

	"github.com/obrakeo/vfxnaming/pkg/naming"
)

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"token":   false,
		"rule":    false,
		"solve":   false,
		"parse":   false,
		"session": false,
		"watch":   false,
		"sync":    false,
		"version": false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestParseOptionFlags(t *testing.T) {
	opts, err := parseOptionFlags([]string{"left=L", "right=R"})
	if err != nil {
		t.Fatalf("parseOptionFlags() error = %v", err)
	}
	if len(opts) != 2 || opts[0].Key != "left" || opts[0].Abbr != "L" {
		t.Errorf("parseOptionFlags() = %v", opts)
	}

	for _, bad := range []string{"noequals", "=L", "left="} {
		if _, err := parseOptionFlags([]string{bad}); err == nil {
			t.Errorf("parseOptionFlags(%q) error = nil", bad)
		}
	}
}

func TestSolveArguments(t *testing.T) {
	session := naming.NewSession()
	session.AddToken("category",
		naming.Opt{Key: "character", Abbr: "char"},
		naming.Opt{Key: "prop", Abbr: "prop"},
	)
	session.AddToken("name")
	session.AddToken("side",
		naming.Opt{Key: "left", Abbr: "L"},
		naming.Opt{Key: "right", Abbr: "R"},
	)
	session.AddTokenNumber("version", "v", 3, "")
	if _, err := session.AddRule("asset", "category", "name", "side", "version"); err != nil {
		t.Fatal(err)
	}

	named, positional, err := solveArguments(session,
		[]string{"side=left"}, []string{"hero", "25"})
	if err != nil {
		t.Fatalf("solveArguments() error = %v", err)
	}
	if named["side"] != "left" {
		t.Errorf("named = %v", named)
	}
	// "name" is required text, "version" numeric: the second bare
	// argument must arrive as an int.
	if len(positional) != 2 || positional[0] != "hero" || positional[1] != 25 {
		t.Errorf("positional = %v", positional)
	}

	got, err := session.Solve(named, positional...)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if want := "char_hero_L_v025"; got != want {
		t.Errorf("Solve() = %q, want %q", got, want)
	}
}

func TestSolveArgumentsNoActiveRule(t *testing.T) {
	session := naming.NewSession()
	if _, _, err := solveArguments(session, nil, nil); err == nil {
		t.Error("solveArguments() error = nil without an active rule")
	}
}

func TestSolveArgumentsBadBinding(t *testing.T) {
	session := naming.NewSession()
	session.AddToken("name")
	if _, err := session.AddRule("simple", "name"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := solveArguments(session, []string{"nameonly"}, nil); err == nil {
		t.Error("solveArguments() error = nil for a binding without '='")
	}
}
