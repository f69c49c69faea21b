package cli

import (
	"github.com/spf13/cobra"
)

var cleanFavouriteCmd = &cobra.Command{
	Use:   "clean-favourite",
	Short: "Unfavourite books you already own",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.CleanFavourite(cmd.Context())
	},
}
