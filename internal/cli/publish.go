package cli

import (
	"strings"

	"portfolio-cli/internal/content"
	"portfolio-cli/internal/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPublishCmd(app *App) *cobra.Command {
	var to string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Export the portfolio as markdown files",
		Long: strings.TrimSpace(`
Write index.md and one page per project under --to.

With --persist the export reflects the saved projects; otherwise it uses the
built-in seed projects.
`),
		Example: strings.TrimSpace(`
portfolio publish --to ./site
portfolio --persist publish --to ./site --overwrite
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.logger(false)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := app.openSession(cmd.Context(), log)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := publish.WriteSite(to, publish.Site{
				Profile:  content.Profile(),
				Stats:    content.Stats(),
				Projects: sess.Projects.List(),
			}, publish.WriteOptions{Overwrite: overwrite})
			if err != nil {
				return writeErr(cmd, err)
			}
			log.Info("portfolio published", zap.String("dir", to), zap.Int("files", len(res.Written)))
			return writeOut(cmd, app, envelope{Data: res})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Output directory")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing files")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
