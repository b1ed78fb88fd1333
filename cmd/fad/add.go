package main

import (
	"fmt"
	"os"

	"github.com/fad-dev/fad/internal/cli"
	"github.com/fad-dev/fad/internal/gitrepo"
	"github.com/fad-dev/fad/internal/match"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <query tokens...>",
	Short: "Stage the file best matching the query tokens",
	Long: `Stage the single working-tree file whose path best matches ALL of
the query tokens.

Each token matches independently: plain tokens are case-insensitive
fuzzy subsequences of the path, tokens containing *, ? or [ are
shell-style globs over the full path. A file must match every token;
per-token scores are summed and the best total wins. Ties prefer the
shorter path, then the lexicographically smaller one.

Examples:
  fad add config
  fad add internal match token
  fad add "*.md" guide`,
	Args: cobra.ArbitraryArgs,
	RunE: runAdd,
}

var addDryRun bool

func init() {
	addCmd.Flags().BoolVarP(&addDryRun, "dry-run", "n", false, "show the match but do not stage it")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	tokens := match.Tokenize(args)
	if len(tokens) == 0 {
		printAddUsage()
		return nil
	}

	repo, err := gitrepo.Open(".")
	if err != nil {
		return err
	}

	cfg, err := repo.LoadConfig()
	if err != nil {
		return err
	}
	applyColorConfig(cfg)

	candidates, err := repo.Candidates()
	if err != nil {
		return err
	}
	candidates = cfg.Apply(candidates)

	if len(candidates) == 0 {
		fmt.Printf("No unstaged or untracked files found in repository %s\n", repo.Root())
		return nil
	}

	paths := gitrepo.Paths(candidates)
	cumulative, failed := match.Aggregate(tokens, paths)
	if failed != "" {
		fmt.Printf("No matches (token '%s' matched nothing)\n", failed)
		return nil
	}
	if len(cumulative) == 0 {
		fmt.Printf("No matches after applying tokens: %s\n", match.Join(tokens, " "))
		return nil
	}

	best, ok := match.Select(cumulative, paths)
	if !ok {
		fmt.Printf("No matches for query tokens: %s\n", match.Join(tokens, " "))
		return nil
	}

	fmt.Printf("Best match: %s (aggregate_score=%d, tokens=%s)\n",
		best.Path, best.Score, match.Join(tokens, "+"))

	if addDryRun {
		fmt.Println("Dry run: index left unchanged")
		return nil
	}

	if err := repo.Stage(best.Path); err != nil {
		return fmt.Errorf("staging %s in repo %s: %w", best.Path, repo.Root(), err)
	}

	fmt.Printf("Staged %s\n", best.Path)
	return nil
}

func printAddUsage() {
	fmt.Fprintln(os.Stderr, "Usage: fad add <query tokens...>")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  fad add config")
	fmt.Fprintln(os.Stderr, "  fad add internal match token")
	fmt.Fprintln(os.Stderr, "  fad add src main go")
}

// applyColorConfig applies the user color preference. "auto" keeps the
// terminal detection.
func applyColorConfig(cfg *gitrepo.Config) {
	switch cfg.Color {
	case "always":
		cli.SetColorEnabled(true)
	case "never":
		cli.SetColorEnabled(false)
	}
}
