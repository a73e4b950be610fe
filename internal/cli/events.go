package cli

import (
	"portfolio-cli/internal/store"

	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List the project mutation journal (oldest first; needs --persist)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.cfg.Persist {
				return writeErr(cmd, errPersistOff)
			}
			dir, err := app.cfg.DataPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			evs, err := store.Store{Dir: dir}.ReadEvents(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, envelope{Data: evs})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 200, "Max events to return, most recent kept (0 = all)")
	return cmd
}
