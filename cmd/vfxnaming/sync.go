package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/obrakeo/vfxnaming/pkg/manager"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync conventions from a git repository",
	Long: `Clone or update the configured git conventions repository, then
import its contents into the configured storage backend.

The git section of the configuration names the remote, branch and
authentication. The local clone doubles as a session repository
directory, so "vfxnaming watch --repo <local_path>" follows it live.

Example config:
  git:
    repository: https://github.com/studio/naming-conventions.git
    branch: main
    auth:
      method: token`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, store, _, err := openEnvironment()
		if err != nil {
			return err
		}
		defer store.Close()

		if cfg.Git.Repository == "" {
			return fmt.Errorf("no git repository configured, set git.repository or VFXNAMING_GIT_REPOSITORY")
		}

		repo, err := manager.NewGitRepo(&cfg.Git)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := repo.Clone(ctx); err != nil {
			return err
		}
		result, err := repo.Pull(ctx)
		if err != nil {
			return err
		}
		if result.HadChanges {
			logger.Info("conventions updated",
				"from", result.FromSHA, "to", result.ToSHA)
		} else {
			logger.Info("conventions already up to date", "head", result.ToSHA)
		}

		session := newSession(logger)
		if err := session.Load(repo.LocalPath()); err != nil {
			return err
		}
		if err := store.Save(ctx, session); err != nil {
			return err
		}
		fmt.Printf("Synced %d tokens and %d rules from %s\n",
			len(session.Tokens()), len(session.Rules()), cfg.Git.Repository)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
