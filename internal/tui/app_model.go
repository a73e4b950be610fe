package tui

import (
	"time"

	"portfolio-cli/internal/browser"
	"portfolio-cli/internal/content"
	"portfolio-cli/internal/model"
	"portfolio-cli/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	flashDuration = 2500 * time.Millisecond

	sidebarWidth = 26
	// Below this width the sidebar only shows when toggled open.
	wideLayoutMin = 100
)

type appModel struct {
	sess    *session.Session
	profile model.Profile
	stats   model.Stats
	log     *zap.Logger
	openURL func(string) error

	keys     keyMap
	help     help.Model
	showHelp bool

	width  int
	height int

	mode mode

	projectList list.Model
	dashCursor  int

	// Project form. editingID is 0 while adding.
	titleInput textinput.Model
	descInput  textarea.Model
	tagsInput  textinput.Model
	formField  projectField
	editingID  int

	confirmFocus  confirmModalFocus
	pendingDelete model.Project

	contactName    textinput.Model
	contactEmail   textinput.Model
	contactMessage textarea.Model
	contactField   contactField

	flashText  string
	flashError bool
	flashSeq   int
}

func newAppModel(sess *session.Session, opts Options) appModel {
	if sess == nil {
		sess = session.NewDefault()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	open := opts.OpenURL
	if open == nil {
		open = browser.Open
	}
	if opts.Theme != "" {
		sess.Dark = resolveDark(opts.Theme, sess.Dark)
	}
	applyDark(sess.Dark)

	m := appModel{
		sess:    sess,
		profile: content.Profile(),
		stats:   content.Stats(),
		log:     log,
		openURL: open,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   wideLayoutMin,
		height:  32,
	}

	m.titleInput = newTextInput("Project title", 80)
	m.tagsInput = newTextInput("Tags, comma separated", 200)
	m.descInput = newTextArea("Description")
	m.contactName = newTextInput("Your name", 80)
	m.contactEmail = newTextInput("you@example.com", 120)
	m.contactMessage = newTextArea("Your message")

	m.projectList = newProjectList(sess.Projects.List(), m.mainWidth(), m.listHeight())
	m.resize()
	return m
}

func newTextInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

func newTextArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 2000
	ta.SetHeight(4)
	return ta
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) sidebarVisible() bool {
	return m.width >= wideLayoutMin || m.sess.SidebarOpen
}

func (m appModel) mainWidth() int {
	w := m.width - 2
	if m.sidebarVisible() {
		w -= sidebarWidth
	}
	if w < 30 {
		w = 30
	}
	return w
}

// bodyHeight is the room left for the active view under the header and
// above the footer.
func (m appModel) bodyHeight() int {
	h := m.height - 5
	if h < 8 {
		h = 8
	}
	return h
}

func (m appModel) listHeight() int {
	h := m.bodyHeight() - 9
	if h < 6 {
		h = 6
	}
	return h
}

func (m *appModel) resize() {
	w := m.mainWidth()
	m.projectList.SetSize(w, m.listHeight())
	m.help.Width = m.width

	inputW := modalBodyWidth(w + 16)
	m.titleInput.Width = inputW - 2
	m.tagsInput.Width = inputW - 2
	m.contactName.Width = inputW - 2
	m.contactEmail.Width = inputW - 2
	m.descInput.SetWidth(inputW)
	m.contactMessage.SetWidth(inputW)
}

// syncProjects reloads the list after a mutation, keeping the cursor in range.
func (m *appModel) syncProjects() {
	ps := m.sess.Projects.List()
	idx := m.projectList.Index()
	m.projectList.SetItems(projectItems(ps))
	if idx >= len(ps) {
		idx = len(ps) - 1
	}
	if idx >= 0 {
		m.projectList.Select(idx)
	}
	if m.dashCursor >= len(ps) {
		m.dashCursor = max(len(ps)-1, 0)
	}
}

func (m *appModel) selectedListProject() (model.Project, bool) {
	it, ok := m.projectList.SelectedItem().(projectItem)
	if !ok {
		return model.Project{}, false
	}
	return it.p, true
}

func (m *appModel) flash(text string, isErr bool) tea.Cmd {
	m.flashText = text
	m.flashError = isErr
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}
