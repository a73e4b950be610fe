package cli

import (
	"portfolio-cli/internal/model"
	"portfolio-cli/internal/projects"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	cmd.AddCommand(newProjectsAddCmd(app))
	cmd.AddCommand(newProjectsUpdateCmd(app))
	cmd.AddCommand(newProjectsDeleteCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.logger(false)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := app.openSession(cmd.Context(), log)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, envelope{Data: projectRows(sess.Projects.List())})
		},
	}
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProjectID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			log, err := app.logger(false)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := app.openSession(cmd.Context(), log)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, ok := sess.Projects.Get(id)
			if !ok {
				return writeErr(cmd, &projects.NotFoundError{ID: id})
			}
			return writeOut(cmd, app, envelope{Data: p})
		},
	}
}

func newProjectsAddCmd(app *App) *cobra.Command {
	var d projects.Draft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project (it goes to the top of the list)",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.logger(false)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := app.openSession(cmd.Context(), log)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := sess.AddProject(d)
			if err != nil {
				return writeErr(cmd, err)
			}
			log.Info("project added", zapProject(p)...)
			return writeOut(cmd, app, envelope{Data: p, Hints: app.persistHints()})
		},
	}

	cmd.Flags().StringVar(&d.Title, "title", "", "Project title")
	cmd.Flags().StringVar(&d.Desc, "desc", "", "Description")
	cmd.Flags().StringVar(&d.Tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&d.Live, "live", "", "Live demo URL")
	cmd.Flags().StringVar(&d.Repo, "repo", "", "Source repository URL")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newProjectsUpdateCmd(app *App) *cobra.Command {
	var title, desc, tags, live, repo string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a project (only the flags you pass change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProjectID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			var patch projects.Patch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				patch.Desc = &desc
			}
			if cmd.Flags().Changed("tags") {
				patch.Tags = &tags
			}
			if cmd.Flags().Changed("live") {
				patch.Live = &live
			}
			if cmd.Flags().Changed("repo") {
				patch.Repo = &repo
			}

			log, err := app.logger(false)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := app.openSession(cmd.Context(), log)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := sess.UpdateProject(id, patch)
			if err != nil {
				return writeErr(cmd, err)
			}
			log.Info("project updated", zapProject(p)...)
			return writeOut(cmd, app, envelope{Data: p, Hints: app.persistHints()})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().StringVar(&tags, "tags", "", "New comma-separated tags")
	cmd.Flags().StringVar(&live, "live", "", "New live demo URL")
	cmd.Flags().StringVar(&repo, "repo", "", "New source repository URL")
	return cmd
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProjectID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			log, err := app.logger(false)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := app.openSession(cmd.Context(), log)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sess.DeleteProject(id); err != nil {
				return writeErr(cmd, err)
			}
			log.Info("project deleted", zap.Int("id", id))
			return writeOut(cmd, app, envelope{
				Data:  map[string]any{"id": id, "deleted": true},
				Hints: app.persistHints(),
			})
		},
	}
}

func zapProject(p model.Project) []zap.Field {
	return []zap.Field{zap.Int("id", p.ID), zap.String("title", p.Title)}
}
