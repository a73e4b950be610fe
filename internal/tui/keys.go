package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextView key.Binding
	PrevView key.Binding
	Jump     key.Binding
	Theme    key.Binding
	Sidebar  key.Binding
	Help     key.Binding
	Quit     key.Binding

	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Reset  key.Binding

	GoProjects key.Binding
	GoContact  key.Binding
	Featured   key.Binding
	LinkedIn   key.Binding
	Compose    key.Binding

	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevView: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "jump")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Sidebar:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "sidebar")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Reset:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "reset")),

		GoProjects: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "view projects")),
		GoContact:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact me")),
		Featured:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "show/hide featured")),
		LinkedIn:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open linkedin")),
		Compose:    key.NewBinding(key.WithKeys("m", "enter"), key.WithHelp("m", "write message")),

		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// helpKeys adapts the key map to help.KeyMap for the current context.
type helpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding  { return h.short }
func (h helpKeys) FullHelp() [][]key.Binding { return h.full }
