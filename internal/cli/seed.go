package cli

import (
	"github.com/spf13/cobra"

	"topicboard/internal/store"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the seed catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{"data": store.Seed()})
		},
	}
}
