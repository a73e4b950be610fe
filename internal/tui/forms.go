package tui

import (
	"errors"
	"fmt"
	"strings"

	"portfolio-cli/internal/model"
	"portfolio-cli/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var errContactIncomplete = errors.New("name and message are required")

func (m *appModel) startAddForm() tea.Cmd {
	m.editingID = 0
	m.fillProjectForm(session.Form{})
	return m.openProjectForm()
}

func (m *appModel) startEditForm(p model.Project) tea.Cmd {
	m.editingID = p.ID
	m.fillProjectForm(session.FormFor(p))
	return m.openProjectForm()
}

func (m *appModel) fillProjectForm(f session.Form) {
	m.titleInput.SetValue(f.Title)
	m.descInput.SetValue(f.Desc)
	m.tagsInput.SetValue(f.Tags)
	m.titleInput.CursorEnd()
	m.tagsInput.CursorEnd()
}

func (m *appModel) openProjectForm() tea.Cmd {
	m.mode = modeProjectForm
	m.formField = fieldTitle
	return m.focusProjectField()
}

func (m *appModel) focusProjectField() tea.Cmd {
	m.titleInput.Blur()
	m.descInput.Blur()
	m.tagsInput.Blur()
	switch m.formField {
	case fieldDesc:
		return m.descInput.Focus()
	case fieldTags:
		return m.tagsInput.Focus()
	default:
		return m.titleInput.Focus()
	}
}

func (m appModel) projectForm() session.Form {
	return session.Form{
		Title: m.titleInput.Value(),
		Desc:  m.descInput.Value(),
		Tags:  m.tagsInput.Value(),
	}
}

func (m *appModel) closeProjectForm() {
	m.mode = modeBrowse
	m.editingID = 0
	m.titleInput.Blur()
	m.descInput.Blur()
	m.tagsInput.Blur()
}

func (m appModel) updateProjectForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.sess.ResetForm()
		m.closeProjectForm()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.formField = (m.formField + 1) % projectFieldCount
		cmd := m.focusProjectField()
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		m.formField = (m.formField + projectFieldCount - 1) % projectFieldCount
		cmd := m.focusProjectField()
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m.submitProjectForm()
	}

	var cmd tea.Cmd
	switch m.formField {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldDesc:
		m.descInput, cmd = m.descInput.Update(msg)
	case fieldTags:
		m.tagsInput, cmd = m.tagsInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitProjectForm() (tea.Model, tea.Cmd) {
	editing := m.editingID != 0
	p, err := m.sess.SubmitProject(m.projectForm())
	if err != nil {
		// Keep the form open so the user can fix the input.
		cmd := m.flash(err.Error(), true)
		return m, cmd
	}
	m.closeProjectForm()
	m.syncProjects()
	m.selectListProject(p.ID)
	if editing {
		m.log.Info("project updated", zap.Int("id", p.ID))
		cmd := m.flash(fmt.Sprintf("Updated %q", p.Title), false)
		return m, cmd
	}
	m.log.Info("project added", zap.Int("id", p.ID))
	cmd := m.flash(fmt.Sprintf("Added %q", p.Title), false)
	return m, cmd
}

func (m *appModel) startContactForm() tea.Cmd {
	m.mode = modeContactForm
	m.contactField = fieldName
	return m.focusContactField()
}

func (m *appModel) focusContactField() tea.Cmd {
	m.contactName.Blur()
	m.contactEmail.Blur()
	m.contactMessage.Blur()
	switch m.contactField {
	case fieldEmail:
		return m.contactEmail.Focus()
	case fieldMessage:
		return m.contactMessage.Focus()
	default:
		return m.contactName.Focus()
	}
}

func (m *appModel) closeContactForm() {
	m.mode = modeBrowse
	m.contactName.Blur()
	m.contactEmail.Blur()
	m.contactMessage.Blur()
}

func (m appModel) updateContactForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.closeContactForm()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.contactField = (m.contactField + 1) % contactFieldCount
		cmd := m.focusContactField()
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		m.contactField = (m.contactField + contactFieldCount - 1) % contactFieldCount
		cmd := m.focusContactField()
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m.sendContact()
	}

	var cmd tea.Cmd
	switch m.contactField {
	case fieldName:
		m.contactName, cmd = m.contactName.Update(msg)
	case fieldEmail:
		m.contactEmail, cmd = m.contactEmail.Update(msg)
	case fieldMessage:
		m.contactMessage, cmd = m.contactMessage.Update(msg)
	}
	return m, cmd
}

// sendContact validates the message and clears the form. Nothing leaves the
// process.
func (m appModel) sendContact() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.contactName.Value())
	body := strings.TrimSpace(m.contactMessage.Value())
	if name == "" || body == "" {
		cmd := m.flash(errContactIncomplete.Error(), true)
		return m, cmd
	}
	m.contactName.Reset()
	m.contactEmail.Reset()
	m.contactMessage.Reset()
	m.closeContactForm()
	m.log.Info("contact message composed", zap.Int("chars", len(body)))
	cmd := m.flash("Thanks "+name+", your message is ready.", false)
	return m, cmd
}
