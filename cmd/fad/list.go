package main

import (
	"fmt"
	"os"

	"github.com/fad-dev/fad/internal/cli"
	"github.com/fad-dev/fad/internal/gitrepo"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the files fad can stage",
	Long: `List the unstaged and untracked working-tree files, with their
worktree status:

  ?  untracked
  M  modified
  D  deleted
  R  renamed

These are exactly the candidates 'fad add' matches against, after the
exclude patterns from .fadconfig.yaml are applied.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
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

	table := cli.NewTable()
	for _, c := range candidates {
		table.AddRow(formatStatusCode(c.Code), c.Path)
	}
	table.Render(os.Stdout)
	return nil
}

func formatStatusCode(code byte) string {
	switch code {
	case '?':
		return cli.Green("?")
	case 'M':
		return cli.Yellow("M")
	case 'D':
		return cli.Red("D")
	case 'R':
		return cli.Yellow("R")
	default:
		return string(code)
	}
}
