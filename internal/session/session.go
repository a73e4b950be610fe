// Package session is the single container for one user's portfolio state:
// the view router, the project store and the transient UI flags.
//
// Every surface (TUI, HTML server, CLI) receives a *Session explicitly;
// nothing here is package-global.
package session

import (
	"portfolio-cli/internal/content"
	"portfolio-cli/internal/model"
	"portfolio-cli/internal/projects"
	"portfolio-cli/internal/router"
)

type ChangeKind string

const (
	ChangeAdd    ChangeKind = "project.add"
	ChangeUpdate ChangeKind = "project.update"
	ChangeDelete ChangeKind = "project.delete"
)

// Change describes one successful project mutation. For deletes, Project is
// the record as it was before removal.
type Change struct {
	Kind    ChangeKind
	Project model.Project
}

// Form is the project form as typed by the user (tags as raw text).
type Form struct {
	Title string
	Desc  string
	Tags  string
}

// FormFor prefills a form from an existing project.
func FormFor(p model.Project) Form {
	return Form{Title: p.Title, Desc: p.Desc, Tags: p.TagsText()}
}

type Session struct {
	Router   *router.Router
	Projects *projects.Store

	Dark         bool
	SidebarOpen  bool
	ShowFeatured bool

	observers []func(Change)
}

func New(seed []model.Project) *Session {
	return &Session{
		Router:       router.New(),
		Projects:     projects.New(seed...),
		Dark:         true,
		SidebarOpen:  false,
		ShowFeatured: true,
	}
}

// NewDefault returns a session seeded with the built-in portfolio projects.
func NewDefault() *Session {
	return New(content.InitialProjects())
}

func (s *Session) View() model.View { return s.Router.Current() }

// Navigate switches the active view and closes the sidebar, as a nav click does.
func (s *Session) Navigate(v model.View) error {
	if err := s.Router.Navigate(v); err != nil {
		return err
	}
	s.SidebarOpen = false
	return nil
}

// NextView and PrevView cycle through the views in navigation order.
func (s *Session) NextView() model.View {
	s.SidebarOpen = false
	return s.Router.Next()
}

func (s *Session) PrevView() model.View {
	s.SidebarOpen = false
	return s.Router.Prev()
}

func (s *Session) ToggleTheme() bool {
	s.Dark = !s.Dark
	return s.Dark
}

func (s *Session) ToggleSidebar() bool {
	s.SidebarOpen = !s.SidebarOpen
	return s.SidebarOpen
}

func (s *Session) ToggleFeatured() bool {
	s.ShowFeatured = !s.ShowFeatured
	return s.ShowFeatured
}

// OnChange registers fn to run after every successful project mutation.
func (s *Session) OnChange(fn func(Change)) {
	if fn == nil {
		return
	}
	s.observers = append(s.observers, fn)
}

func (s *Session) notify(c Change) {
	for _, fn := range s.observers {
		fn(c)
	}
}

func (s *Session) AddProject(d projects.Draft) (model.Project, error) {
	p, err := s.Projects.Add(d)
	if err != nil {
		return model.Project{}, err
	}
	s.notify(Change{Kind: ChangeAdd, Project: p})
	return p, nil
}

func (s *Session) UpdateProject(id int, patch projects.Patch) (model.Project, error) {
	p, err := s.Projects.Update(id, patch)
	if err != nil {
		return model.Project{}, err
	}
	s.notify(Change{Kind: ChangeUpdate, Project: p})
	return p, nil
}

func (s *Session) DeleteProject(id int) error {
	prev, _ := s.Projects.Get(id)
	if err := s.Projects.Delete(id); err != nil {
		return err
	}
	s.notify(Change{Kind: ChangeDelete, Project: prev})
	return nil
}

// OpenProject selects a project for editing and shows the projects view.
func (s *Session) OpenProject(id int) error {
	if err := s.Projects.Select(&id); err != nil {
		return err
	}
	return s.Navigate(model.ViewProjects)
}

// SubmitProject saves the form: it updates the selected project when there is
// one (and clears the selection on success), otherwise it adds a new project.
func (s *Session) SubmitProject(f Form) (model.Project, error) {
	if sel, ok := s.Projects.Selected(); ok {
		title, desc, tags := f.Title, f.Desc, f.Tags
		p, err := s.UpdateProject(sel.ID, projects.Patch{Title: &title, Desc: &desc, Tags: &tags})
		if err != nil {
			return model.Project{}, err
		}
		_ = s.Projects.Select(nil)
		return p, nil
	}
	return s.AddProject(projects.Draft{Title: f.Title, Desc: f.Desc, Tags: f.Tags})
}

// ResetForm drops the current edit selection.
func (s *Session) ResetForm() {
	_ = s.Projects.Select(nil)
}
