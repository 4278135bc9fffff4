package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse NAME",
	Short: "Invert a name with the active rule",
	Long: `Split a name with the active rule and report the value of each field.
Abbreviations resolve back to their full option names, numeric fields
back to integers.

Example:
  vfxnaming parse char_hero_L_v025`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		values, err := session.Parse(args[0])
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return formatter().FormatTo(os.Stdout, values)
		}
		rule := session.ActiveRule()
		for _, field := range rule.Fields() {
			fmt.Printf("%s: %v\n", field, values[field])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
