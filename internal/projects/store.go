// Package projects holds the ordered, in-memory collection of portfolio
// projects for one session.
//
// Ids are assigned as max(existing ids, 0)+1 under the store mutex, new
// projects are prepended, and every failed precondition leaves the
// collection untouched while returning a typed error.
package projects

import (
	"strings"
	"sync"

	"portfolio-cli/internal/model"
)

// Draft is the input for Add. Tags is the raw comma-separated form text.
type Draft struct {
	Title string
	Desc  string
	Tags  string
	Live  string
	Repo  string
}

// Patch is the input for Update. Nil fields are left as they are.
type Patch struct {
	Title *string
	Desc  *string
	Tags  *string
	Live  *string
	Repo  *string
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Desc == nil && p.Tags == nil && p.Live == nil && p.Repo == nil
}

type Store struct {
	mu       sync.Mutex
	items    []model.Project
	selected int
}

// New returns a store seeded with the given projects in order.
// Seed records keep their ids; empty tags and links are normalized.
func New(seed ...model.Project) *Store {
	s := &Store{items: make([]model.Project, 0, len(seed))}
	seen := map[int]bool{}
	for _, p := range seed {
		if p.ID <= 0 || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		p = p.Clone()
		p.Tags = cleanTags(p.Tags)
		p.Live = linkOrPlaceholder(p.Live)
		p.Repo = linkOrPlaceholder(p.Repo)
		s.items = append(s.items, p)
	}
	return s
}

func (s *Store) Add(d Draft) (model.Project, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return model.Project{}, &ValidationError{Field: "title", Reason: "title is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Project{
		ID:    s.nextIDLocked(),
		Title: title,
		Desc:  d.Desc,
		Tags:  ParseTags(d.Tags),
		Live:  linkOrPlaceholder(d.Live),
		Repo:  linkOrPlaceholder(d.Repo),
	}
	s.items = append([]model.Project{p}, s.items...)
	return p.Clone(), nil
}

func (s *Store) Update(id int, patch Patch) (model.Project, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return model.Project{}, &ValidationError{Field: "title", Reason: "title must not be blank"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return model.Project{}, &NotFoundError{ID: id}
	}
	p := s.items[idx].Clone()
	if patch.Title != nil {
		p.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Desc != nil {
		p.Desc = *patch.Desc
	}
	if patch.Tags != nil {
		p.Tags = ParseTags(*patch.Tags)
	}
	if patch.Live != nil {
		p.Live = linkOrPlaceholder(*patch.Live)
	}
	if patch.Repo != nil {
		p.Repo = linkOrPlaceholder(*patch.Repo)
	}
	s.items[idx] = p
	return p.Clone(), nil
}

func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}
	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	if s.selected == id {
		s.selected = 0
	}
	return nil
}

// Select marks a project as the one being edited. Select(nil) clears it.
func (s *Store) Select(id *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == nil {
		s.selected = 0
		return nil
	}
	if s.indexLocked(*id) < 0 {
		return &NotFoundError{ID: *id}
	}
	s.selected = *id
	return nil
}

func (s *Store) Selected() (model.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == 0 {
		return model.Project{}, false
	}
	idx := s.indexLocked(s.selected)
	if idx < 0 {
		return model.Project{}, false
	}
	return s.items[idx].Clone(), true
}

func (s *Store) List() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Project, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p.Clone())
	}
	return out
}

func (s *Store) Get(id int) (model.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return model.Project{}, false
	}
	return s.items[idx].Clone(), true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Featured returns the first project in display order.
func (s *Store) Featured() (model.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return model.Project{}, false
	}
	return s.items[0].Clone(), true
}

type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TagCounts pairs each project (title cut to 10 runes) with its tag count,
// in display order.
func (s *Store) TagCounts() []TagCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]TagCount, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, TagCount{Name: shortTitle(p.Title, 10), Count: len(p.Tags)})
	}
	return out
}

func (s *Store) nextIDLocked() int {
	max := 0
	for _, p := range s.items {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func (s *Store) indexLocked(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

func linkOrPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.LinkPlaceholder
	}
	return s
}

func shortTitle(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
