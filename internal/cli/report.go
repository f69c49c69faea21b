package cli

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print shelf and favourite books as CSV",
	Long: `Print every purchased book followed by every favourite book as CSV with
the columns id,name,kind. Each block is sorted by id.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.Report(cmd.Context())
	},
}
