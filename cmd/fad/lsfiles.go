package main

import (
	"fmt"
	"os"

	"github.com/fad-dev/fad/internal/cli"
	"github.com/fad-dev/fad/internal/gitrepo"
	"github.com/spf13/cobra"
)

var lsFilesCmd = &cobra.Command{
	Use:   "ls-files",
	Short: "List files tracked in the index",
	Long: `List every path recorded in the git index along with its file mode
(regular, executable, symlink, or submodule). These files are already
tracked; 'fad add' never matches against them unless they also carry
unstaged changes.`,
	Args: cobra.NoArgs,
	RunE: runLsFiles,
}

func init() {
	rootCmd.AddCommand(lsFilesCmd)
}

func runLsFiles(cmd *cobra.Command, args []string) error {
	repo, err := gitrepo.Open(".")
	if err != nil {
		return err
	}

	cfg, err := repo.LoadConfig()
	if err != nil {
		return err
	}
	applyColorConfig(cfg)

	entries, err := repo.IndexEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No files tracked in the index.")
		return nil
	}

	table := cli.NewTable()
	for _, e := range entries {
		table.AddRow(cli.Gray(string(e.Mode)), e.Path)
	}
	table.Render(os.Stdout)
	return nil
}
