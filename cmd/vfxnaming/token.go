package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obrakeo/vfxnaming/pkg/naming"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage token vocabularies",
	Long: `Manage the tokens of the session: word tokens carrying full-name to
abbreviation vocabularies, and numeric tokens carrying zero-padded
counters.`,
}

var tokenAddFlags struct {
	options    []string
	defaultKey string
}

var tokenAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a word token",
	Long: `Add a word token to the session and persist it.

A token without options is required: every solve must supply a value
for it. Options map full names to the abbreviations used inside built
names; a token with options falls back to its default (the explicitly
chosen option, else the first added) when no value is supplied.

Examples:
  # Required free-form token
  vfxnaming token add name

  # Vocabulary with a default
  vfxnaming token add side --option left=L --option right=R --default right`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		opts, err := parseOptionFlags(tokenAddFlags.options)
		if err != nil {
			return err
		}
		tok := session.AddToken(args[0], opts...)
		if tokenAddFlags.defaultKey != "" {
			if err := tok.SetDefault(tokenAddFlags.defaultKey); err != nil {
				return err
			}
		}
		if err := store.Save(cmd.Context(), session); err != nil {
			return err
		}
		fmt.Printf("Added token %q (%d options)\n", args[0], len(opts))
		return nil
	},
}

var tokenAddNumberFlags struct {
	prefix  string
	suffix  string
	padding int
}

var tokenAddNumberCmd = &cobra.Command{
	Use:   "add-number NAME",
	Short: "Add a numeric token",
	Long: `Add a numeric token to the session and persist it.

Numeric tokens format integers with a fixed prefix, zero padding and
suffix, for example v025 for prefix "v" and padding 3.

Examples:
  vfxnaming token add-number version --prefix v --padding 3
  vfxnaming token add-number frame --padding 4 --suffix f`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		session.AddTokenNumber(args[0],
			tokenAddNumberFlags.prefix,
			tokenAddNumberFlags.padding,
			tokenAddNumberFlags.suffix,
		)
		if err := store.Save(cmd.Context(), session); err != nil {
			return err
		}
		fmt.Printf("Added numeric token %q\n", args[0])
		return nil
	},
}

var tokenRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if !session.RemoveToken(args[0]) {
			return fmt.Errorf("token %q not found", args[0])
		}
		if err := store.Save(cmd.Context(), session); err != nil {
			return err
		}
		fmt.Printf("Removed token %q\n", args[0])
		return nil
	},
}

// tokenInfo is the list entry rendered for one token.
type tokenInfo struct {
	Name     string            `json:"name"`
	Kind     string            `json:"kind"`
	Required bool              `json:"required"`
	Default  any               `json:"default,omitempty"`
	Options  map[string]string `json:"options,omitempty"`
}

var tokenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := loadSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		infos := make([]tokenInfo, 0)
		for _, tok := range session.Tokens() {
			info := tokenInfo{
				Name:     tok.Name(),
				Kind:     "word",
				Required: tok.Required(),
			}
			if word, ok := tok.(*naming.Token); ok {
				if d := word.Default(); d != "" {
					info.Default = d
				}
				if opts := word.Options(); len(opts) > 0 {
					info.Options = make(map[string]string, len(opts))
					for _, o := range opts {
						info.Options[o.Key] = o.Abbr
					}
				}
			}
			if tok.IsNumber() {
				info.Kind = "number"
			}
			infos = append(infos, info)
		}

		if outputFormat == "json" {
			return formatter().FormatTo(os.Stdout, infos)
		}
		for _, info := range infos {
			fmt.Printf("%s (%s", info.Name, info.Kind)
			if info.Required {
				fmt.Print(", required")
			}
			fmt.Println(")")
		}
		return nil
	},
}

// parseOptionFlags splits repeated --option key=abbr flags.
func parseOptionFlags(raw []string) ([]naming.Opt, error) {
	opts := make([]naming.Opt, 0, len(raw))
	for _, pair := range raw {
		key, abbr, ok := strings.Cut(pair, "=")
		if !ok || key == "" || abbr == "" {
			return nil, fmt.Errorf("invalid option %q, want key=abbreviation", pair)
		}
		opts = append(opts, naming.Opt{Key: key, Abbr: abbr})
	}
	return opts, nil
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenAddCmd)
	tokenCmd.AddCommand(tokenAddNumberCmd)
	tokenCmd.AddCommand(tokenRemoveCmd)
	tokenCmd.AddCommand(tokenListCmd)

	tokenAddCmd.Flags().StringArrayVar(&tokenAddFlags.options, "option", nil, "full-name=abbreviation option (repeatable)")
	tokenAddCmd.Flags().StringVar(&tokenAddFlags.defaultKey, "default", "", "default option key")

	tokenAddNumberCmd.Flags().StringVar(&tokenAddNumberFlags.prefix, "prefix", "", "string prepended to the number")
	tokenAddNumberCmd.Flags().StringVar(&tokenAddNumberFlags.suffix, "suffix", "", "string appended to the number")
	tokenAddNumberCmd.Flags().IntVar(&tokenAddNumberFlags.padding, "padding", 3, "minimum digit count, zero padded")
}
