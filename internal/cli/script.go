package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"topicboard/internal/script"
	"topicboard/internal/store"
)

func newScriptCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Apply an op script to the seed catalog and print the result",
		Long: `Reads ops (add/rm/rename/find) from a file or stdin, applies them to
the seed catalog in order, and prints the final topic list plus one
outcome per op. State is volatile: every invocation starts from the seed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return writeErr(cmd, err)
				}
				defer f.Close()
				in = f
			}

			ops, err := script.Parse(in)
			if err != nil {
				return writeErr(cmd, err)
			}

			catalog := store.NewSeedCatalog()
			col, ok := catalog.Collection(category)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown category: %q (see `topicboard seed`)", category))
			}

			outcomes := script.Run(col, ops)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"category": category,
				"outcomes": outcomes,
				"topics":   col.Topics(),
			}})
		},
	}

	cmd.Flags().StringVar(&category, "category", "cat-webdev", "Category id the script operates on")

	return cmd
}
