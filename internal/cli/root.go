package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"topicboard/internal/format"
	"topicboard/internal/store"
	"topicboard/internal/tui"
)

// App carries the persistent flag state shared by all commands.
type App struct {
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "topicboard",
		Short:        "In-memory topic catalog editor (TUI + scripts)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  topicboard

  # Apply an op script to the seed catalog and print the result
  topicboard script ops.tb
  cat ops.tb | topicboard script

  # Shortcut for the above
  topicboard ops.tb

  # Inspect the seed catalog
  topicboard seed --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI()
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TOPICBOARD_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newGuideCmd(app))
	cmd.AddCommand(newScriptCmd(app))
	cmd.AddCommand(newSeedCmd(app))

	return cmd
}

func runTUI() error {
	return tui.Run(store.NewSeedCatalog())
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
