package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/checkpress-dev/checkpress/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "checkpress",
		Short:   "Spreadsheet-driven check printing",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newTemplatesCommand())
	rootCmd.AddCommand(newInputsCommand())

	return rootCmd
}
