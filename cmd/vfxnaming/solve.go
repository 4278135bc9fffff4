package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obrakeo/vfxnaming/pkg/naming"
)

var solveFlags struct {
	set []string
}

var solveCmd = &cobra.Command{
	Use:   "solve [VALUE...]",
	Short: "Build a name with the active rule",
	Long: `Build a name from the active rule.

Values given with --set bind by field name; bare arguments fill the
remaining required fields in rule order. Numeric fields take integers,
word fields take option keys (or free text for required tokens).

Examples:
  # Fill required fields in order, side falls back to its default
  vfxnaming solve character hero 25

  # Bind explicitly
  vfxnaming solve --set category=prop --set name=table --set version=12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		named, positional, err := solveArguments(session, solveFlags.set, args)
		if err != nil {
			return err
		}
		name, err := session.Solve(named, positional...)
		if err != nil {
			return err
		}
		fmt.Println(name)
		return nil
	},
}

// solveArguments converts command-line strings into typed solve
// inputs: values bound to numeric fields become ints, everything else
// stays a string. Positional values are matched against the required
// fields of the active rule in order, mirroring how the session
// consumes them.
func solveArguments(session *naming.Session, set, args []string) (naming.Values, []any, error) {
	rule := session.ActiveRule()
	if rule == nil {
		return nil, nil, fmt.Errorf("no active rule set")
	}

	named := make(naming.Values, len(set))
	for _, pair := range set {
		field, value, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, nil, fmt.Errorf("invalid binding %q, want field=value", pair)
		}
		named[field] = convertValue(session, field, value)
	}

	// Replay the session's positional assignment to know which field
	// each bare argument lands on.
	positional := make([]any, 0, len(args))
	next := 0
	for _, field := range rule.Fields() {
		if _, ok := named[field]; ok {
			continue
		}
		tok, ok := session.Token(field)
		if !ok || (!tok.Required() && !tok.IsNumber()) {
			continue
		}
		if next >= len(args) {
			break
		}
		positional = append(positional, convertValue(session, field, args[next]))
		next++
	}
	for ; next < len(args); next++ {
		positional = append(positional, args[next])
	}
	return named, positional, nil
}

func convertValue(session *naming.Session, field, value string) any {
	if tok, ok := session.Token(field); ok && tok.IsNumber() {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return value
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringArrayVar(&solveFlags.set, "set", nil, "field=value binding (repeatable)")
}
