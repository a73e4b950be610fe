package tui

import (
	"errors"
	"strings"
	"testing"

	"portfolio-cli/internal/model"
	"portfolio-cli/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) (appModel, *session.Session) {
	t.Helper()
	sess := session.NewDefault()
	m := newAppModel(sess, Options{OpenURL: func(string) error { return nil }})
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return mm.(appModel), sess
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m appModel, msgs ...tea.Msg) appModel {
	t.Helper()
	for _, msg := range msgs {
		mm, _ := m.Update(msg)
		m = mm.(appModel)
	}
	return m
}

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNavigation_JumpAndCycle(t *testing.T) {
	m, sess := newTestModel(t)

	m = press(t, m, keyRunes("3"))
	if got := sess.View(); got != model.ViewProjects {
		t.Fatalf("expected projects view, got %q", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := sess.View(); got != model.ViewAbout {
		t.Fatalf("expected about view after tab, got %q", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := sess.View(); got != model.ViewDashboard {
		t.Fatalf("expected dashboard view, got %q", got)
	}

	_ = press(t, m, keyRunes("5"), tea.KeyMsg{Type: tea.KeyTab})
	if got := sess.View(); got != model.ViewHome {
		t.Fatalf("expected wrap to home, got %q", got)
	}
}

func TestNavigation_ClosesSidebar(t *testing.T) {
	m, sess := newTestModel(t)

	m = press(t, m, keyRunes("b"))
	if !sess.SidebarOpen {
		t.Fatalf("expected sidebar open")
	}
	_ = press(t, m, keyRunes("2"))
	if sess.SidebarOpen {
		t.Fatalf("expected navigation to close the sidebar")
	}
}

func TestThemeToggle_FlipsSessionAndFlashes(t *testing.T) {
	m, sess := newTestModel(t)

	m = press(t, m, keyRunes("t"))
	if sess.Dark {
		t.Fatalf("expected light theme after toggle")
	}
	if !strings.Contains(m.flashText, "light") {
		t.Fatalf("expected theme flash, got %q", m.flashText)
	}
}

func TestFlashDone_IgnoresStaleSeq(t *testing.T) {
	m, _ := newTestModel(t)

	_ = (&m).flash("first", false)
	stale := m.flashSeq
	_ = (&m).flash("second", false)

	m = press(t, m, flashDoneMsg{seq: stale})
	if m.flashText != "second" {
		t.Fatalf("stale tick cleared the flash: %q", m.flashText)
	}
	m = press(t, m, flashDoneMsg{seq: m.flashSeq})
	if m.flashText != "" {
		t.Fatalf("expected flash cleared, got %q", m.flashText)
	}
}

func TestHome_FeaturedToggleAndShortcuts(t *testing.T) {
	m, sess := newTestModel(t)

	if !strings.Contains(m.View(), "Neural Style Transfer Engine") {
		t.Fatalf("expected featured project on home view")
	}

	m = press(t, m, keyRunes("f"))
	if sess.ShowFeatured {
		t.Fatalf("expected featured hidden")
	}
	if strings.Contains(m.View(), "Neural Style Transfer Engine") {
		t.Fatalf("featured project still rendered after hide")
	}

	m = press(t, m, keyRunes("c"))
	if sess.View() != model.ViewContact {
		t.Fatalf("expected contact view, got %q", sess.View())
	}
	_ = press(t, m, keyRunes("1"), keyRunes("p"))
	if sess.View() != model.ViewProjects {
		t.Fatalf("expected projects view, got %q", sess.View())
	}
}

func TestProjects_AddViaForm(t *testing.T) {
	m, sess := newTestModel(t)

	m = press(t, m, keyRunes("3"), keyRunes("a"))
	if m.mode != modeProjectForm || m.editingID != 0 {
		t.Fatalf("expected add form, mode=%v editing=%d", m.mode, m.editingID)
	}

	m = typeText(t, m, "Graph Net")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "GNN experiments")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "GNN, PyTorch")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.mode != modeBrowse {
		t.Fatalf("expected form closed after save")
	}
	ps := sess.Projects.List()
	if len(ps) != 4 {
		t.Fatalf("expected 4 projects, got %d", len(ps))
	}
	got := ps[0]
	if got.ID != 4 || got.Title != "Graph Net" || got.Desc != "GNN experiments" {
		t.Fatalf("unexpected new project: %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "GNN" || got.Tags[1] != "PyTorch" {
		t.Fatalf("unexpected tags: %#v", got.Tags)
	}
	if len(m.projectList.Items()) != 4 {
		t.Fatalf("list not refreshed: %d items", len(m.projectList.Items()))
	}
}

func TestProjects_BlankTitleKeepsFormOpen(t *testing.T) {
	m, sess := newTestModel(t)

	m = press(t, m, keyRunes("3"), keyRunes("a"), tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.mode != modeProjectForm {
		t.Fatalf("expected form to stay open on validation error")
	}
	if !m.flashError || !strings.Contains(m.flashText, "title") {
		t.Fatalf("expected validation flash, got %q (error=%v)", m.flashText, m.flashError)
	}
	if sess.Projects.Len() != 3 {
		t.Fatalf("store changed on invalid add")
	}
}

func TestProjects_EditSelected(t *testing.T) {
	m, sess := newTestModel(t)

	m = press(t, m, keyRunes("3"), keyRunes("e"))
	if m.editingID != 1 {
		t.Fatalf("expected editing project 1, got %d", m.editingID)
	}
	if got := m.titleInput.Value(); got != "Neural Style Transfer Engine" {
		t.Fatalf("form not prefilled: %q", got)
	}

	m = typeText(t, m, " v2")
	_ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	p, ok := sess.Projects.Get(1)
	if !ok || p.Title != "Neural Style Transfer Engine v2" {
		t.Fatalf("update not applied: %+v", p)
	}
	if _, selected := sess.Projects.Selected(); selected {
		t.Fatalf("expected selection cleared after save")
	}
	if sess.Projects.Len() != 3 {
		t.Fatalf("edit changed collection size")
	}
}

func TestProjects_EscCancelsEditAndClearsSelection(t *testing.T) {
	m, sess := newTestModel(t)

	m = press(t, m, keyRunes("3"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode after esc")
	}
	if _, selected := sess.Projects.Selected(); selected {
		t.Fatalf("expected selection cleared")
	}
}

func TestProjects_DeleteConfirm(t *testing.T) {
	m, sess := newTestModel(t)

	m = press(t, m, keyRunes("3"), keyRunes("d"))
	if m.mode != modeConfirmDelete {
		t.Fatalf("expected confirm modal")
	}
	if !strings.Contains(m.View(), "Delete project") {
		t.Fatalf("confirm modal not rendered")
	}

	// Cancel is focused by default.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if sess.Projects.Len() != 3 || m.mode != modeBrowse {
		t.Fatalf("enter on cancel should keep the project")
	}

	m = press(t, m, keyRunes("d"), keyRunes("y"))
	if sess.Projects.Len() != 2 {
		t.Fatalf("expected project deleted, have %d", sess.Projects.Len())
	}
	if _, ok := sess.Projects.Get(1); ok {
		t.Fatalf("project 1 still present")
	}
	if len(m.projectList.Items()) != 2 {
		t.Fatalf("list not refreshed after delete")
	}
}

func TestProjects_EmptyState(t *testing.T) {
	sess := session.New(nil)
	m := newAppModel(sess, Options{})
	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40}, keyRunes("3"))

	if !strings.Contains(m.View(), emptyProjectsText) {
		t.Fatalf("expected empty-state text")
	}
	m = press(t, m, keyRunes("d"))
	if m.mode != modeBrowse {
		t.Fatalf("delete with no projects should do nothing")
	}
}

func TestDashboard_OpenSelectsAndEdits(t *testing.T) {
	m, sess := newTestModel(t)

	m = press(t, m, keyRunes("2"), keyRunes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	if sess.View() != model.ViewProjects {
		t.Fatalf("expected projects view, got %q", sess.View())
	}
	p, ok := sess.Projects.Selected()
	if !ok || p.ID != 2 {
		t.Fatalf("expected project 2 selected, got %+v (ok=%v)", p, ok)
	}
	if m.mode != modeProjectForm || m.editingID != 2 {
		t.Fatalf("expected edit form for project 2")
	}
}

func TestContact_OpenLinkedIn(t *testing.T) {
	var opened string
	sess := session.NewDefault()
	m := newAppModel(sess, Options{OpenURL: func(u string) error {
		opened = u
		return errors.New("no browser")
	}})

	m = press(t, m, keyRunes("5"))
	_, cmd := m.Update(keyRunes("o"))
	if cmd == nil {
		t.Fatalf("expected open command")
	}
	msg := cmd()
	if !strings.Contains(opened, "linkedin.com") {
		t.Fatalf("unexpected url %q", opened)
	}

	m = press(t, m, msg)
	if !m.flashError {
		t.Fatalf("expected error flash when the browser fails")
	}
}

func TestContact_FormValidatesAndClears(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, keyRunes("5"), keyRunes("m"))
	if m.mode != modeContactForm {
		t.Fatalf("expected contact form")
	}

	m = typeText(t, m, "Ada")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.flashError {
		t.Fatalf("expected error without a message")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "Hello there")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.flashError || m.mode != modeBrowse {
		t.Fatalf("expected successful send, flash=%q", m.flashText)
	}
	if m.contactName.Value() != "" || m.contactMessage.Value() != "" {
		t.Fatalf("expected form cleared")
	}
}

func TestView_SidebarFollowsWidth(t *testing.T) {
	m, sess := newTestModel(t)
	if !strings.Contains(m.View(), "2 Dashboard") {
		t.Fatalf("expected sidebar on a wide terminal")
	}

	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if strings.Contains(m.View(), "2 Dashboard") {
		t.Fatalf("sidebar should hide on a narrow terminal")
	}

	m = press(t, m, keyRunes("b"))
	if !sess.SidebarOpen || !strings.Contains(m.View(), "2 Dashboard") {
		t.Fatalf("sidebar should show when toggled open")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
