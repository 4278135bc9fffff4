package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/obrakeo/vfxnaming/pkg/cli"
	"github.com/obrakeo/vfxnaming/pkg/config"
	"github.com/obrakeo/vfxnaming/pkg/naming"
	"github.com/obrakeo/vfxnaming/pkg/storage"
	"github.com/obrakeo/vfxnaming/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile      string
	repoOverride string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "vfxnaming",
	Short: "vfxnaming - naming convention manager for digital assets",
	Long: `vfxnaming manages naming conventions for digital assets.

Conventions are built from tokens (abbreviation vocabularies and
zero-padded counters) composed into underscore-joined rules. Sessions
persist to a repository directory, a sqlite database or a git-hosted
conventions repository, so whole teams share one vocabulary.

Typical workflow:
  vfxnaming token add side --option left=L --option right=R
  vfxnaming rule add asset category name side version
  vfxnaming session save
  vfxnaming solve --set side=left hero 25`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "vfxnaming.yaml", "config file path")
	rootCmd.PersistentFlags().StringVarP(&repoOverride, "repo", "r", "", "session repository directory (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file (falling back to defaults
// when it does not exist) and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if repoOverride != "" {
		cfg.Repo = repoOverride
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the logger configured by cfg and installs it as the
// process default.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// openEnvironment loads configuration, builds the logger, resolves the
// session repository and opens the configured store.
func openEnvironment() (*config.Config, *slog.Logger, storage.Store, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, "", err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, "", err
	}
	repo, err := naming.ResolveRepo(cfg.Repo)
	if err != nil {
		return nil, nil, nil, "", err
	}
	store, err := storage.Open(&cfg.Storage, repo)
	if err != nil {
		return nil, nil, nil, "", err
	}
	return cfg, logger, store, repo, nil
}

// newSession creates an empty session logging through the command's
// logger.
func newSession(logger *slog.Logger) *naming.Session {
	session := naming.NewSession()
	session.SetLogger(logger)
	return session
}

// loadSession opens the environment and restores the persisted session
// from the store. Commands that mutate the session save it back
// through the same store.
func loadSession(cmd *cobra.Command) (*naming.Session, storage.Store, error) {
	_, logger, store, _, err := openEnvironment()
	if err != nil {
		return nil, nil, err
	}
	session := newSession(logger)
	if err := store.Load(cmd.Context(), session); err != nil {
		store.Close()
		return nil, nil, err
	}
	return session, store, nil
}

func formatter() cli.Formatter {
	return cli.NewFormatter(cli.OutputFormat(outputFormat))
}
