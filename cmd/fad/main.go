// Package main is the entry point for the fad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fad",
	Short: "fad - fuzzy-select and stage one file at a time",
	Long: `fad stages git working-tree files selected by fuzzy matching.

Give it a few words from the path you mean and it picks the single
unstaged or untracked file whose path matches all of them, then stages
exactly that file. Tokens containing glob characters (*, ?, [) are
matched as shell-style patterns over the full path instead.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Set version template
	rootCmd.SetVersionTemplate("fad version {{.Version}}\n")
}
