package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"topicboard/internal/docs"
)

func newGuideCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the embedded guide (usage, keys, patterns)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := docs.Topics()
				sort.Strings(topics)
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": topics}})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown guide topic: %q (run `topicboard guide` to list topics)", topic))
			}

			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}

			out, err := renderMarkdown(body)
			if err != nil {
				// Styling is best-effort; fall back to the raw markdown.
				out = body
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no terminal styling)")

	return cmd
}
