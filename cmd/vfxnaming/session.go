package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect and move whole sessions",
	Long: `Inspect the persisted session and move it between repositories and
storage backends.`,
}

// sessionSummary is the show output.
type sessionSummary struct {
	Repo       string   `json:"repo"`
	Backend    string   `json:"backend"`
	Tokens     []string `json:"tokens"`
	Rules      []string `json:"rules"`
	ActiveRule string   `json:"active_rule,omitempty"`
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, store, repo, err := openEnvironment()
		if err != nil {
			return err
		}
		defer store.Close()

		session := newSession(logger)
		if err := store.Load(cmd.Context(), session); err != nil {
			return err
		}

		summary := sessionSummary{
			Repo:       repo,
			Backend:    store.Backend(),
			ActiveRule: session.ActiveRuleName(),
		}
		for _, tok := range session.Tokens() {
			summary.Tokens = append(summary.Tokens, tok.Name())
		}
		for _, rule := range session.Rules() {
			summary.Rules = append(summary.Rules, rule.Name())
		}

		if outputFormat == "json" {
			return formatter().FormatTo(os.Stdout, summary)
		}
		fmt.Printf("Repository: %s\n", summary.Repo)
		fmt.Printf("Backend:    %s\n", summary.Backend)
		fmt.Printf("Tokens:     %d %v\n", len(summary.Tokens), summary.Tokens)
		fmt.Printf("Rules:      %d %v\n", len(summary.Rules), summary.Rules)
		if summary.ActiveRule != "" {
			fmt.Printf("Active:     %s\n", summary.ActiveRule)
		}
		return nil
	},
}

var sessionExportCmd = &cobra.Command{
	Use:     "export DIR",
	Aliases: []string{"save"},
	Short:   "Export the session to a repository directory",
	Long: `Write the persisted session as plain token, rule and naming.conf
files under DIR, regardless of the configured storage backend.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := session.Save(args[0]); err != nil {
			return err
		}
		fmt.Printf("Exported session to %s\n", args[0])
		return nil
	},
}

var sessionImportCmd = &cobra.Command{
	Use:     "import DIR",
	Aliases: []string{"load"},
	Short:   "Import a repository directory into the configured store",
	Long: `Read the token, rule and naming.conf files under DIR and persist them
through the configured storage backend, replacing its contents. Use
this to migrate a file session into sqlite or to adopt a synced git
checkout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, store, _, err := openEnvironment()
		if err != nil {
			return err
		}
		defer store.Close()

		session := newSession(logger)
		if err := session.Load(args[0]); err != nil {
			return err
		}
		if err := store.Save(cmd.Context(), session); err != nil {
			return err
		}
		fmt.Printf("Imported %d tokens and %d rules into the %s backend\n",
			len(session.Tokens()), len(session.Rules()), store.Backend())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionExportCmd)
	sessionCmd.AddCommand(sessionImportCmd)
}
