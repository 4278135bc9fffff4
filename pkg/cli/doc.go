/*
Package cli provides command-line interface utilities for the vfxnaming
command: output formatters and signal-aware contexts.

Output Formatting:

Command results can be rendered as plain text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Signals:

Long-running commands such as watch mode derive their context from
SetupSignalHandler, which cancels on SIGINT or SIGTERM.
*/
package cli
