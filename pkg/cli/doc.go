/*
Package cli provides command-line utilities for the bedrock command.

It includes output formatters (text and JSON) for command results, colored
rendering for located diagnostics, and signal-based context cancellation for
long-running modes such as --watch:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, results); err != nil {
		return err
	}

	ctx := cli.SetupSignalHandler()
	// ctx is cancelled on SIGINT/SIGTERM
*/
package cli
