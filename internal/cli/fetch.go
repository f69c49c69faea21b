package cli

import (
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Print an aria2c input file for your ebooks",
	Long: `Print one download block per available format (PDF, EPUB, MOBI) of every
purchased book. The output is an aria2c input file; nothing is downloaded.

Examples:
  ituring fetch > ebooks.txt
  aria2c -i ebooks.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.Fetch(cmd.Context())
	},
}
