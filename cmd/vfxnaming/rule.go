package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ruleCmd = &cobra.Command{
	Use:   "rule",
	Short: "Manage naming rules",
	Long: `Manage the rules of the session. A rule is an ordered list of token
names joined by underscores; the active rule drives solve and parse.`,
}

var ruleAddCmd = &cobra.Command{
	Use:   "add NAME FIELD...",
	Short: "Add a rule",
	Long: `Add a rule over the given ordered token names and persist it. The
first rule added to a session becomes the active rule.

Example:
  vfxnaming rule add asset category name side version`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		rule, err := session.AddRule(args[0], args[1:]...)
		if err != nil {
			return err
		}
		if err := store.Save(cmd.Context(), session); err != nil {
			return err
		}
		fmt.Printf("Added rule %q (%s)\n", rule.Name(), rule.Pattern())
		return nil
	},
}

var ruleRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if !session.RemoveRule(args[0]) {
			return fmt.Errorf("rule %q not found", args[0])
		}
		if err := store.Save(cmd.Context(), session); err != nil {
			return err
		}
		fmt.Printf("Removed rule %q\n", args[0])
		return nil
	},
}

var ruleActivateCmd = &cobra.Command{
	Use:   "activate NAME",
	Short: "Make a rule the active rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if !session.SetActiveRule(args[0]) {
			return fmt.Errorf("rule %q not found", args[0])
		}
		if err := store.Save(cmd.Context(), session); err != nil {
			return err
		}
		fmt.Printf("Active rule is now %q\n", args[0])
		return nil
	},
}

// ruleInfo is the list entry rendered for one rule.
type ruleInfo struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Active  bool   `json:"active"`
}

var ruleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		active := session.ActiveRuleName()
		infos := make([]ruleInfo, 0)
		for _, rule := range session.Rules() {
			infos = append(infos, ruleInfo{
				Name:    rule.Name(),
				Pattern: rule.Pattern(),
				Active:  rule.Name() == active,
			})
		}

		if outputFormat == "json" {
			return formatter().FormatTo(os.Stdout, infos)
		}
		for _, info := range infos {
			marker := " "
			if info.Active {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, info.Name, info.Pattern)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ruleCmd)
	ruleCmd.AddCommand(ruleAddCmd)
	ruleCmd.AddCommand(ruleRemoveCmd)
	ruleCmd.AddCommand(ruleActivateCmd)
	ruleCmd.AddCommand(ruleListCmd)
}
