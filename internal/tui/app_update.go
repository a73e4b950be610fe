package tui

import (
	"fmt"

	"portfolio-cli/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case flashDoneMsg:
		// Only the latest flash clears; older ticks are stale.
		if msg.seq == m.flashSeq {
			m.flashText = ""
			m.flashError = false
		}
		return m, nil

	case urlOpenDoneMsg:
		if msg.err != nil {
			m.log.Warn("open url failed", zap.String("url", msg.url), zap.Error(msg.err))
			cmd := m.flash(fmt.Sprintf("Could not open %s: %v", msg.url, msg.err), true)
			return m, cmd
		}
		cmd := m.flash("Opened "+msg.url, false)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case modeProjectForm:
			return m.updateProjectForm(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeContactForm:
			return m.updateContactForm(msg)
		}
		return m.updateBrowse(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		dark := m.sess.ToggleTheme()
		applyDark(dark)
		cmd := m.flash("Theme: "+themeName(dark), false)
		return m, cmd
	case key.Matches(msg, m.keys.Sidebar):
		m.sess.ToggleSidebar()
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.NextView):
		m.sess.NextView()
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.PrevView):
		m.sess.PrevView()
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Jump):
		views := model.Views()
		if idx := int(msg.String()[0] - '1'); idx >= 0 && idx < len(views) {
			_ = m.sess.Navigate(views[idx])
			m.resize()
		}
		return m, nil
	}

	switch m.sess.View() {
	case model.ViewHome:
		return m.updateHome(msg)
	case model.ViewDashboard:
		return m.updateDashboard(msg)
	case model.ViewProjects:
		return m.updateProjects(msg)
	case model.ViewContact:
		return m.updateContact(msg)
	}
	return m, nil
}

func (m appModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.GoProjects):
		_ = m.sess.Navigate(model.ViewProjects)
		m.resize()
	case key.Matches(msg, m.keys.GoContact):
		_ = m.sess.Navigate(model.ViewContact)
		m.resize()
	case key.Matches(msg, m.keys.Featured):
		m.sess.ToggleFeatured()
	}
	return m, nil
}

func (m appModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ps := m.sess.Projects.List()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.dashCursor > 0 {
			m.dashCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.dashCursor < len(ps)-1 {
			m.dashCursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.dashCursor < 0 || m.dashCursor >= len(ps) {
			return m, nil
		}
		p := ps[m.dashCursor]
		if err := m.sess.OpenProject(p.ID); err != nil {
			cmd := m.flash(err.Error(), true)
			return m, cmd
		}
		m.syncProjects()
		m.selectListProject(p.ID)
		cmd := m.startEditForm(p)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateProjects(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.sess.ResetForm()
		cmd := m.startAddForm()
		return m, cmd
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Open):
		p, ok := m.selectedListProject()
		if !ok {
			return m, nil
		}
		id := p.ID
		if err := m.sess.Projects.Select(&id); err != nil {
			cmd := m.flash(err.Error(), true)
			return m, cmd
		}
		cmd := m.startEditForm(p)
		return m, cmd
	case key.Matches(msg, m.keys.Delete):
		p, ok := m.selectedListProject()
		if !ok {
			return m, nil
		}
		m.pendingDelete = p
		m.confirmFocus = confirmFocusCancel
		m.mode = modeConfirmDelete
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.sess.ResetForm()
		cmd := m.flash("Form reset", false)
		return m, cmd
	}

	var cmd tea.Cmd
	m.projectList, cmd = m.projectList.Update(msg)
	return m, cmd
}

func (m appModel) updateContact(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.LinkedIn):
		return m, m.openURLCmd(m.profile.LinkedInURL)
	case key.Matches(msg, m.keys.Compose):
		cmd := m.startContactForm()
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.confirmFocus = m.confirmFocus.toggle()
		return m, nil
	case "y":
		return m.confirmDelete()
	case "n", "esc":
		m.mode = modeBrowse
		m.pendingDelete = model.Project{}
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.confirmDelete()
		}
		m.mode = modeBrowse
		m.pendingDelete = model.Project{}
		return m, nil
	}
	return m, nil
}

func (m appModel) confirmDelete() (tea.Model, tea.Cmd) {
	p := m.pendingDelete
	m.mode = modeBrowse
	m.pendingDelete = model.Project{}
	if err := m.sess.DeleteProject(p.ID); err != nil {
		cmd := m.flash(err.Error(), true)
		return m, cmd
	}
	m.log.Info("project deleted", zap.Int("id", p.ID))
	m.syncProjects()
	cmd := m.flash(fmt.Sprintf("Deleted %q", p.Title), false)
	return m, cmd
}

// updateFocusedInput forwards non-key messages (cursor blink) to whichever
// input currently has focus.
func (m appModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeProjectForm:
		switch m.formField {
		case fieldTitle:
			m.titleInput, cmd = m.titleInput.Update(msg)
		case fieldDesc:
			m.descInput, cmd = m.descInput.Update(msg)
		case fieldTags:
			m.tagsInput, cmd = m.tagsInput.Update(msg)
		}
	case modeContactForm:
		switch m.contactField {
		case fieldName:
			m.contactName, cmd = m.contactName.Update(msg)
		case fieldEmail:
			m.contactEmail, cmd = m.contactEmail.Update(msg)
		case fieldMessage:
			m.contactMessage, cmd = m.contactMessage.Update(msg)
		}
	}
	return m, cmd
}

func (m *appModel) selectListProject(id int) {
	for i, it := range m.projectList.Items() {
		if pi, ok := it.(projectItem); ok && pi.p.ID == id {
			m.projectList.Select(i)
			return
		}
	}
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
