package tui

import (
	"fmt"
	"strings"

	"portfolio-cli/internal/content"
	"portfolio-cli/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const emptyProjectsText = "No projects yet. Add one to get started!"

func (m appModel) View() string {
	if m.mode == modeConfirmDelete {
		body := fmt.Sprintf("Delete %q? This cannot be undone.", m.pendingDelete.Title)
		modal := renderConfirmModal(m.width, "Delete project", body, "Delete", "Cancel", m.confirmFocus)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	footer := m.viewFooter()
	paneH := m.height - lipgloss.Height(footer)
	if paneH < 1 {
		paneH = 1
	}

	mainW := m.mainWidth()
	main := m.viewHeader(mainW) + "\n\n" + m.viewBody(mainW)
	screen := lipgloss.NewStyle().PaddingLeft(1).Render(normalizePane(main, mainW, paneH))
	if m.sidebarVisible() {
		screen = lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(paneH), screen)
	}
	return screen + "\n" + footer
}

func (m appModel) viewSidebar(height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.profile.Name) + "\n")
	b.WriteString(styleMuted().Render(m.profile.Role) + "\n\n")

	active := lipgloss.NewStyle().Bold(true).Foreground(colorNavActiveFg).Background(colorNavActiveBg)
	for i, v := range model.Views() {
		label := fitWidth(fmt.Sprintf(" %d %s", i+1, v.Title()), sidebarWidth-3)
		if v == m.sess.View() {
			b.WriteString(active.Render(label) + "\n")
			continue
		}
		b.WriteString(label + "\n")
	}
	b.WriteString("\n" + styleMuted().Render("theme: "+themeName(m.sess.Dark)))

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(colorBorder).
		PaddingLeft(1).
		Render(normalizePane(b.String(), sidebarWidth-2, height))
}

func (m appModel) viewHeader(width int) string {
	title := styleHeading().Render(m.sess.View().Title())
	chips := []string{
		styleChip().Render(fmt.Sprintf("Models %d", m.stats.ModelsDeployed)),
		styleChip().Render(fmt.Sprintf("Datasets %d", m.stats.Datasets)),
		styleChip().Render(fmt.Sprintf("Accuracy %.1f%%", m.stats.Accuracy)),
	}
	right := strings.Join(chips, " ")
	gap := width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 2 {
		return title + "\n" + right
	}
	return title + strings.Repeat(" ", gap) + right
}

func (m appModel) viewBody(width int) string {
	switch m.sess.View() {
	case model.ViewDashboard:
		return m.viewDashboard(width)
	case model.ViewProjects:
		return m.viewProjects(width)
	case model.ViewAbout:
		return renderMarkdown(content.AboutMarkdown(m.profile), width, m.sess.Dark)
	case model.ViewContact:
		return m.viewContact(width)
	default:
		return m.viewHome(width)
	}
}

func (m appModel) viewHome(width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Hi, I'm " + m.profile.Name),
		lipgloss.NewStyle().Foreground(colorAccent).Render(m.profile.Role),
		wrap.Render(m.profile.Tagline),
		"",
		styleChip().Render("p View Projects") + "  " + styleChip().Render("c Contact Me"),
		"",
	}

	toggle := "f: hide"
	if !m.sess.ShowFeatured {
		toggle = "f: show"
	}
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Featured Project")+"  "+styleMuted().Render(toggle))
	if m.sess.ShowFeatured {
		if p, ok := m.sess.Projects.Featured(); ok {
			lines = append(lines, renderProjectCard(p, width))
		} else {
			lines = append(lines, styleMuted().Render(emptyProjectsText))
		}
	}

	lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render("Core Skills"))
	skills := make([]string, 0, len(m.profile.Skills))
	for _, s := range m.profile.Skills {
		skills = append(skills, styleChip().Render(s))
	}
	lines = append(lines, wrap.Render(strings.Join(skills, " ")))
	return strings.Join(lines, "\n")
}

func renderProjectCard(p model.Project, width int) string {
	body := lipgloss.NewStyle().Bold(true).Render(p.Title)
	if strings.TrimSpace(p.Desc) != "" {
		body += "\n" + p.Desc
	}
	if tags := renderTags(p.Tags); tags != "" {
		body += "\n" + tags
	}
	w := width - 4
	if w < 10 {
		w = 10
	}
	return styleCard().Width(w).Render(body)
}

func renderTags(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, styleTag().Render(t))
	}
	return strings.Join(out, " ")
}

func (m appModel) viewDashboard(width int) string {
	bold := lipgloss.NewStyle().Bold(true)
	stats := []string{
		styleChip().Render(fmt.Sprintf("Models Deployed %d", m.stats.ModelsDeployed)),
		styleChip().Render(fmt.Sprintf("Datasets %d", m.stats.Datasets)),
		styleChip().Render(fmt.Sprintf("Accuracy %.1f%%", m.stats.Accuracy)),
		styleChip().Render(fmt.Sprintf("Publications %d", m.stats.Publications)),
	}
	lines := []string{
		lipgloss.NewStyle().Width(width).Render(strings.Join(stats, " ")),
		"",
	}

	visitors := content.Visitors()
	spark := lipgloss.NewStyle().Foreground(colorChartLine).Render(sparkline(visitorValues(visitors)))
	lines = append(lines, bold.Render("Weekly Visitors")+"  "+spark)
	lines = append(lines, hbars(visitorRows(visitors), width)...)

	lines = append(lines, "", bold.Render("Tags per Project"))
	if counts := m.sess.Projects.TagCounts(); len(counts) > 0 {
		lines = append(lines, hbars(tagRows(counts), width)...)
	} else {
		lines = append(lines, styleMuted().Render(emptyProjectsText))
	}

	lines = append(lines, "", bold.Render("Recent Projects")+"  "+styleMuted().Render("enter: open"))
	ps := m.sess.Projects.List()
	if len(ps) == 0 {
		lines = append(lines, styleMuted().Render(emptyProjectsText))
	}
	for i, p := range ps {
		row := fmt.Sprintf("#%d  %s", p.ID, p.Title)
		if i == m.dashCursor {
			lines = append(lines, lipgloss.NewStyle().Foreground(colorAccent).Render("▌ ")+
				lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Render(fitWidth(row, width-2)))
			continue
		}
		lines = append(lines, "  "+row)
	}
	return strings.Join(lines, "\n")
}

func (m appModel) viewProjects(width int) string {
	if m.mode == modeProjectForm {
		return m.viewProjectForm(width)
	}
	if len(m.projectList.Items()) == 0 {
		return styleMuted().Render(emptyProjectsText) + "\n\n" + styleMuted().Render("a: add project")
	}

	out := m.projectList.View()
	if p, ok := m.selectedListProject(); ok {
		out += "\n" + renderMarkdown(projectDetailMarkdown(p), width, m.sess.Dark)
	}
	return out
}

func projectDetailMarkdown(p model.Project) string {
	var b strings.Builder
	b.WriteString(p.Desc)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Live: %s · Code: %s\n", linkLabel(p.Live), linkLabel(p.Repo))
	return b.String()
}

func linkLabel(u string) string {
	if u == "" || u == model.LinkPlaceholder {
		return "not published"
	}
	return u
}

func (m appModel) viewProjectForm(width int) string {
	bodyW := modalBodyWidth(width + 16)
	heading := "Add Project"
	if m.editingID != 0 {
		heading = fmt.Sprintf("Edit Project #%d", m.editingID)
	}

	descLabel := styleMuted().Render("Description")
	if m.formField == fieldDesc {
		descLabel = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Description")
	}

	return strings.Join([]string{
		styleHeading().Render(heading),
		"",
		renderField(bodyW, "Title", m.formField == fieldTitle, m.titleInput.View()),
		"",
		descLabel,
		m.descInput.View(),
		"",
		renderField(bodyW, "Tags", m.formField == fieldTags, m.tagsInput.View()),
		"",
		styleMuted().Render("ctrl+s: save   tab: next field   esc: cancel"),
	}, "\n")
}

func (m appModel) viewContact(width int) string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Get in touch"),
		lipgloss.NewStyle().Width(width).Render("Interested in working together or discussing AI/ML? Reach out."),
		"",
		"LinkedIn  " + lipgloss.NewStyle().Foreground(colorAccent).Underline(true).Render(m.profile.LinkedInURL),
		"",
	}
	if m.mode != modeContactForm {
		lines = append(lines, styleChip().Render("o Open LinkedIn")+"  "+styleChip().Render("m Write a message"))
		return strings.Join(lines, "\n")
	}

	bodyW := modalBodyWidth(width + 16)
	msgLabel := styleMuted().Render("Message")
	if m.contactField == fieldMessage {
		msgLabel = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Message")
	}
	lines = append(lines,
		renderField(bodyW, "Name", m.contactField == fieldName, m.contactName.View()),
		"",
		renderField(bodyW, "Email", m.contactField == fieldEmail, m.contactEmail.View()),
		"",
		msgLabel,
		m.contactMessage.View(),
		"",
		styleMuted().Render("ctrl+s: send   tab: next field   esc: cancel"),
	)
	return strings.Join(lines, "\n")
}

func (m appModel) viewFooter() string {
	if m.flashText != "" {
		c := colorFlashOK
		if m.flashError {
			c = colorFlashError
		}
		return lipgloss.NewStyle().Foreground(c).Render(m.flashText)
	}
	return m.help.View(m.contextHelp())
}

func (m appModel) contextHelp() helpKeys {
	k := m.keys
	switch m.mode {
	case modeProjectForm, modeContactForm:
		b := []key.Binding{k.Submit, k.NextField, k.PrevField, k.Cancel}
		return helpKeys{short: b, full: [][]key.Binding{b}}
	}

	global := []key.Binding{k.NextView, k.PrevView, k.Jump, k.Theme, k.Sidebar, k.Help, k.Quit}
	var local []key.Binding
	switch m.sess.View() {
	case model.ViewHome:
		local = []key.Binding{k.GoProjects, k.GoContact, k.Featured}
	case model.ViewDashboard:
		local = []key.Binding{k.Up, k.Down, k.Open}
	case model.ViewProjects:
		local = []key.Binding{k.Up, k.Down, k.Add, k.Edit, k.Delete, k.Reset}
	case model.ViewContact:
		local = []key.Binding{k.LinkedIn, k.Compose}
	}
	short := append(append([]key.Binding{}, local...), k.NextView, k.Help, k.Quit)
	return helpKeys{short: short, full: [][]key.Binding{local, global}}
}
