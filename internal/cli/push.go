package cli

import (
	"github.com/spf13/cobra"
)

var pushBooksCmd = &cobra.Command{
	Use:   "push-books",
	Short: "Print a shell script that pushes your books to Kindle",
	Long: `Print a shell script with one curl call per purchased book against the
Kindle push endpoint. Nothing is pushed until the script is run.

Examples:
  ituring push-books > push.sh
  sh push.sh`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.PushBooks(cmd.Context())
	},
}
