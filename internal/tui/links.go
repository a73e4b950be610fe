package tui

import tea "github.com/charmbracelet/bubbletea"

func (m appModel) openURLCmd(u string) tea.Cmd {
	open := m.openURL
	return func() tea.Msg {
		return urlOpenDoneMsg{url: u, err: open(u)}
	}
}
