package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"portfolio-cli/internal/model"
	"portfolio-cli/internal/projects"
	"portfolio-cli/internal/session"

	"github.com/google/go-cmp/cmp"
)

func TestLoadProjects_EmptyStoreReportsNotSaved(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	ps, ok, err := s.LoadProjects(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok || ps != nil {
		t.Fatalf("expected nothing saved, got ok=%v ps=%v", ok, ps)
	}
}

func TestSaveLoadProjects_RoundTripKeepsOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	want := []model.Project{
		{ID: 4, Title: "Newest", Desc: "d", Tags: []string{"a"}, Live: "#", Repo: "#"},
		{ID: 1, Title: "Oldest", Tags: []string{}, Live: "https://x", Repo: "#"},
	}
	if err := s.SaveProjects(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := s.LoadProjects(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}

	// An empty list is a saved state too.
	if err := s.SaveProjects(ctx, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	got, ok, err = s.LoadProjects(ctx)
	if err != nil || !ok || len(got) != 0 {
		t.Fatalf("expected saved empty list, got ok=%v len=%d err=%v", ok, len(got), err)
	}
}

func TestAppendReadEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	for i, typ := range []string{"project.add", "project.update", "project.delete"} {
		if _, err := s.AppendEvent(ctx, typ, i+1, map[string]any{"n": i}); err != nil {
			t.Fatalf("append %s: %v", typ, err)
		}
	}
	if _, err := s.AppendEvent(ctx, " ", 1, nil); err == nil {
		t.Fatalf("expected error for blank type")
	}

	all, err := s.ReadEvents(ctx, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(all) != 3 || all[0].Type != "project.add" || all[2].Type != "project.delete" {
		t.Fatalf("unexpected events: %+v", all)
	}
	if all[0].ID == all[1].ID || all[0].ID == "" {
		t.Fatalf("event ids must be unique: %q %q", all[0].ID, all[1].ID)
	}

	tail, err := s.ReadEvents(ctx, 2)
	if err != nil {
		t.Fatalf("read tail: %v", err)
	}
	if len(tail) != 2 || tail[0].Type != "project.update" || tail[1].ProjectID != 3 {
		t.Fatalf("unexpected tail: %+v", tail)
	}
}

func TestTrackAndRestore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	seeded := func() *session.Session { return session.New([]model.Project{{ID: 1, Title: "Seed"}}) }
	sess, err := s.Restore(ctx, seeded)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	s.Track(ctx, sess, nil)

	if _, err := sess.AddProject(projects.Draft{Title: "Added", Tags: "x"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := sess.DeleteProject(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_ = sess.Navigate(model.ViewAbout)

	again, err := s.Restore(ctx, seeded)
	if err != nil {
		t.Fatalf("restore again: %v", err)
	}
	if diff := cmp.Diff(sess.Projects.List(), again.Projects.List()); diff != "" {
		t.Fatalf("restored projects differ (-live +restored):\n%s", diff)
	}
	if again.View() != model.ViewHome {
		t.Fatalf("view must not be restored, got %q", again.View())
	}

	evs, err := s.ReadEvents(ctx, 0)
	if err != nil {
		t.Fatalf("read events: %v", err)
	}
	if len(evs) != 2 || evs[0].Type != string(session.ChangeAdd) || evs[1].ProjectID != 1 {
		t.Fatalf("unexpected journal: %+v", evs)
	}
}

func TestLoadProjects_ReadErrorIsNotTreatedAsUnsaved(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	// No migration ran, so state_meta does not exist and the read fails.
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "bare.sqlite"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ps, ok, err := loadProjects(ctx, db)
	if err == nil {
		t.Fatalf("expected read error, got ok=%v ps=%v", ok, ps)
	}
	if ok {
		t.Fatalf("expected ok=false on error")
	}
}

func TestRestore_PropagatesLoadError(t *testing.T) {
	t.Parallel()

	// A regular file where the data dir should be makes the open fail.
	parent := t.TempDir()
	blocker := filepath.Join(parent, "data")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := Store{Dir: blocker}
	called := false
	_, err := s.Restore(context.Background(), func() *session.Session {
		called = true
		return session.NewDefault()
	})
	if err == nil {
		t.Fatalf("expected restore error")
	}
	if called {
		t.Fatalf("fallback must not run when loading fails")
	}
}

func TestReadEvents_CorruptPayloadIsAnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	db, err := s.openSQLite(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO events(event_id, seq, type, project_id, payload_json, issued_at_unixms) VALUES('ev-bad', 1, 'project.add', 1, '{bad', 0)`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	_ = db.Close()

	if _, err := s.ReadEvents(ctx, 0); err == nil {
		t.Fatalf("expected payload decode error")
	}
}
