package cli

import (
	"fmt"
	"strings"

	"portfolio-cli/internal/content"
	"portfolio-cli/internal/model"
	"portfolio-cli/internal/projects"
	"portfolio-cli/internal/session"

	"github.com/spf13/cobra"
)

type viewDoc struct {
	View  model.View `json:"view"`
	Title string     `json:"title"`
	Body  string     `json:"body"`
}

func (d viewDoc) Text() string {
	return "== " + d.Title + " ==\n\n" + d.Body
}

func newViewCmd(app *App) *cobra.Command {
	names := make([]string, 0, len(model.Views()))
	for _, v := range model.Views() {
		names = append(names, string(v))
	}

	return &cobra.Command{
		Use:       "view <" + strings.Join(names, "|") + ">",
		Short:     "Print a plain-text rendition of one dashboard view",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := model.ParseView(args[0])
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
			if err := sess.Navigate(v); err != nil {
				return writeErr(cmd, err)
			}
			cur := sess.View()
			return writeOut(cmd, app, envelope{Data: viewDoc{View: cur, Title: cur.Title(), Body: renderViewText(sess, cur)}})
		},
	}
}

func renderViewText(sess *session.Session, v model.View) string {
	profile := content.Profile()
	var b strings.Builder

	switch v {
	case model.ViewHome:
		fmt.Fprintf(&b, "Hi, I'm %s\n%s\n%s\n\n", profile.Name, profile.Role, profile.Tagline)
		if sess.ShowFeatured {
			b.WriteString("Featured Project\n")
			if p, ok := sess.Projects.Featured(); ok {
				writeProjectText(&b, p, "  ")
			} else {
				b.WriteString("  No projects yet. Add one to get started!\n")
			}
			b.WriteString("\n")
		}
		b.WriteString("Core Skills\n")
		for _, s := range profile.Skills {
			fmt.Fprintf(&b, "  - %s\n", s)
		}

	case model.ViewDashboard:
		b.WriteString(statsDoc{
			Stats:     content.Stats(),
			Visitors:  content.Visitors(),
			TagCounts: sess.Projects.TagCounts(),
		}.Text())

	case model.ViewProjects:
		ps := sess.Projects.List()
		if len(ps) == 0 {
			b.WriteString("No projects yet. Add one to get started!\n")
		}
		for i, p := range ps {
			if i > 0 {
				b.WriteString("\n")
			}
			writeProjectText(&b, p, "")
		}

	case model.ViewAbout:
		b.WriteString(content.AboutMarkdown(profile))

	case model.ViewContact:
		b.WriteString("Get in touch\n")
		b.WriteString("Interested in working together or discussing AI/ML? Reach out.\n\n")
		fmt.Fprintf(&b, "LinkedIn  %s\n", profile.LinkedInURL)
	}
	return b.String()
}

func writeProjectText(b *strings.Builder, p model.Project, indent string) {
	fmt.Fprintf(b, "%s#%d %s\n", indent, p.ID, p.Title)
	if strings.TrimSpace(p.Desc) != "" {
		fmt.Fprintf(b, "%s%s\n", indent, p.Desc)
	}
	if tags := projects.FormatTags(p.Tags); tags != "" {
		fmt.Fprintf(b, "%sTags: %s\n", indent, tags)
	}
}
