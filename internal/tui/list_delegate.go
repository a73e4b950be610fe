package tui

import (
	"fmt"
	"io"
	"strings"

	"portfolio-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type projectItem struct {
	p model.Project
}

func (i projectItem) FilterValue() string { return i.p.Title }
func (i projectItem) Title() string       { return i.p.Title }
func (i projectItem) Description() string { return i.p.TagsText() }

func projectItems(ps []model.Project) []list.Item {
	items := make([]list.Item, 0, len(ps))
	for _, p := range ps {
		items = append(items, projectItem{p: p})
	}
	return items
}

// projectDelegate renders each project as a title row plus a muted tag row.
type projectDelegate struct{}

func (d projectDelegate) Height() int                             { return 2 }
func (d projectDelegate) Spacing() int                            { return 1 }
func (d projectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(projectItem)
	contentW := m.Width()
	if !ok || contentW < 4 {
		return
	}

	title := fmt.Sprintf("#%d  %s", it.p.ID, it.p.Title)
	tags := it.Description()
	if tags == "" {
		tags = "no tags"
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	tagStyle := styleMuted()
	marker := "  "
	if index == m.Index() {
		titleStyle = titleStyle.Foreground(colorSelectedFg).Background(colorSelectedBg)
		tagStyle = tagStyle.Background(colorSelectedBg)
		marker = lipgloss.NewStyle().Foreground(colorAccent).Render("▌ ")
	}

	fmt.Fprint(w, marker+titleStyle.Render(fitWidth(title, contentW-2))+"\n")
	fmt.Fprint(w, "  "+tagStyle.Render(fitWidth(tags, contentW-2)))
}

// fitWidth pads or cuts s to exactly w cells.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	sw := xansi.StringWidth(s)
	switch {
	case sw < w:
		return s + strings.Repeat(" ", w-sw)
	case sw > w:
		if w == 1 {
			return "…"
		}
		return xansi.Truncate(s, w, "…")
	}
	return s
}

func newProjectList(ps []model.Project, width, height int) list.Model {
	l := list.New(projectItems(ps), projectDelegate{}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.KeyMap.Quit.SetEnabled(false)
	l.SetStatusBarItemName("project", "projects")
	return l
}
