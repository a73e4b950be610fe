package tui

import (
	"portfolio-cli/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type Options struct {
	// Theme is dark|light|auto. Empty keeps the session's own flag.
	Theme  string
	Logger *zap.Logger
	// OpenURL replaces the platform browser launcher (tests).
	OpenURL func(string) error
}

func Run(sess *session.Session, opts Options) error {
	applyColorProfilePreference()
	m := newAppModel(sess, opts)
	m.log.Info("tui start", zap.String("view", string(sess.View())), zap.Bool("dark", sess.Dark))
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	m.log.Info("tui stop", zap.Error(err))
	return err
}
