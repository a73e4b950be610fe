package store

import (
	"context"

	"portfolio-cli/internal/session"

	"go.uber.org/zap"
)

// Restore loads the saved project list into a new session, falling back to
// seed when nothing has been saved yet. The view and theme are never restored.
func (s Store) Restore(ctx context.Context, fallback func() *session.Session) (*session.Session, error) {
	ps, ok, err := s.LoadProjects(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return fallback(), nil
	}
	return session.New(ps), nil
}

// Track saves a snapshot and journals an event after every project mutation
// in sess. Failures are logged; the in-memory state stays authoritative.
func (s Store) Track(ctx context.Context, sess *session.Session, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	sess.OnChange(func(c session.Change) {
		if err := s.SaveProjects(ctx, sess.Projects.List()); err != nil {
			log.Error("save projects", zap.Error(err))
			return
		}
		ev, err := s.AppendEvent(ctx, string(c.Kind), c.Project.ID, c.Project)
		if err != nil {
			log.Error("append event", zap.String("type", string(c.Kind)), zap.Error(err))
			return
		}
		log.Debug("journaled", zap.String("event", ev.ID), zap.String("type", ev.Type), zap.Int("project", ev.ProjectID))
	})
}
