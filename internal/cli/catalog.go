package cli

import (
	"github.com/spf13/cobra"
)

var allBooksCmd = &cobra.Command{
	Use:   "all-books",
	Short: "Scan the whole catalog as CSV",
	Long: `Look up book ids 1, 2, 3, ... and print every book found as CSV with the
columns id,name,published,flags. Missing ids are noted on stderr. The scan
ends after catalog.max_misses (default 1000) consecutive missing ids.

Rows are flushed as they are found, so the output can be followed live:
  ituring all-books | tee catalog.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.AllBooks(cmd.Context())
	},
}
