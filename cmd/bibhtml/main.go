// Package main provides the bibhtml CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bibhtml [flags] abb.bib main.bib",
	Short: "BibTeX to HTML bibliography renderer",
	Long: `bibhtml renders BibTeX bibliography files into the HTML publication
list of a personal academic website.

Invoked with .bib paths it runs the render smoke test (see "bibhtml
render"); the serve subcommand runs the website itself.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRender,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
