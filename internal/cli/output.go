package cli

import (
	"fmt"
	"strings"

	"portfolio-cli/internal/format"
	"portfolio-cli/internal/model"
	"portfolio-cli/internal/projects"
)

// envelope is the shape of every command result: {"data": ..., "_hints": [...]}.
type envelope struct {
	Data  any      `json:"data"`
	Hints []string `json:"_hints,omitempty"`
}

func (e envelope) Text() string {
	var b strings.Builder
	if t, ok := e.Data.(format.Texter); ok {
		b.WriteString(strings.TrimRight(t.Text(), "\n"))
		b.WriteString("\n")
	} else {
		_ = format.WriteText(&b, e.Data)
	}
	for _, h := range e.Hints {
		fmt.Fprintf(&b, "hint: %s\n", h)
	}
	return b.String()
}

type projectRows []model.Project

func (ps projectRows) Text() string {
	if len(ps) == 0 {
		return "No projects yet. Add one to get started!"
	}
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "#%d  %s\n", p.ID, p.Title)
		if tags := projects.FormatTags(p.Tags); tags != "" {
			fmt.Fprintf(&b, "    %s\n", tags)
		}
	}
	return b.String()
}
