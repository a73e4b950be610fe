package cli

import (
	"fmt"
	"strings"

	"portfolio-cli/internal/content"
	"portfolio-cli/internal/model"
	"portfolio-cli/internal/projects"

	"github.com/spf13/cobra"
)

type statsDoc struct {
	Stats     model.Stats          `json:"stats"`
	Visitors  []model.VisitorPoint `json:"visitors"`
	TagCounts []projects.TagCount  `json:"tagCounts"`
}

func (d statsDoc) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Models Deployed  %d\n", d.Stats.ModelsDeployed)
	fmt.Fprintf(&b, "Datasets         %d\n", d.Stats.Datasets)
	fmt.Fprintf(&b, "Accuracy         %.1f%%\n", d.Stats.Accuracy)
	fmt.Fprintf(&b, "Publications     %d\n", d.Stats.Publications)
	b.WriteString("\nWeekly visitors\n")
	for _, p := range d.Visitors {
		fmt.Fprintf(&b, "  %-4s %5d\n", p.Day, p.Visitors)
	}
	b.WriteString("\nTags per project\n")
	for _, c := range d.TagCounts {
		fmt.Fprintf(&b, "  %-10s %d\n", c.Name, c.Count)
	}
	return b.String()
}

type skillRows []string

func (s skillRows) Text() string { return strings.Join(s, "\n") }

type profileDoc model.Profile

func (p profileDoc) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n%s\n\n", p.Name, p.Role, p.Tagline)
	fmt.Fprintf(&b, "Education    %s\n", p.Education)
	fmt.Fprintf(&b, "Focus areas  %s\n", p.FocusAreas)
	fmt.Fprintf(&b, "LinkedIn     %s\n", p.LinkedInURL)
	return b.String()
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show headline numbers, weekly visitors and tags per project",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.logger(false)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := app.openSession(cmd.Context(), log)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, envelope{Data: statsDoc{
				Stats:     content.Stats(),
				Visitors:  content.Visitors(),
				TagCounts: sess.Projects.TagCounts(),
			}})
		},
	}
}

func newSkillsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List core skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, envelope{Data: skillRows(content.Skills())})
		},
	}
}

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, envelope{Data: profileDoc(content.Profile())})
		},
	}
}
