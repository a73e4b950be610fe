package model

import (
	"fmt"
	"strings"
	"time"
)

// LinkPlaceholder is used for live/repo links that were never set.
const LinkPlaceholder = "#"

type Project struct {
	ID    int      `json:"id"`
	Title string   `json:"title"`
	Desc  string   `json:"desc"`
	Tags  []string `json:"tags"`
	Live  string   `json:"live"`
	Repo  string   `json:"repo"`
}

// Clone returns a copy that does not share the Tags backing array.
func (p Project) Clone() Project {
	out := p
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	return out
}

// TagsText joins the tags for editing, the inverse of splitting on commas.
func (p Project) TagsText() string {
	return strings.Join(p.Tags, ", ")
}

type View string

const (
	ViewHome      View = "home"
	ViewDashboard View = "dashboard"
	ViewProjects  View = "projects"
	ViewAbout     View = "about"
	ViewContact   View = "contact"
)

// Views lists every view in navigation order.
func Views() []View {
	return []View{ViewHome, ViewDashboard, ViewProjects, ViewAbout, ViewContact}
}

func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewDashboard, ViewProjects, ViewAbout, ViewContact:
		return true
	default:
		return false
	}
}

// Title is the capitalized label shown in headers and nav menus.
func (v View) Title() string {
	s := string(v)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("invalid view: %q (expected home|dashboard|projects|about|contact)", s)
	}
	return v, nil
}

type Stats struct {
	ModelsDeployed int     `json:"modelsDeployed"`
	Datasets       int     `json:"datasets"`
	Accuracy       float64 `json:"accuracy"`
	Publications   int     `json:"publications"`
}

type VisitorPoint struct {
	Day      string `json:"day"`
	Visitors int    `json:"visitors"`
}

type Profile struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Tagline     string   `json:"tagline"`
	About       string   `json:"about"`
	Education   string   `json:"education"`
	FocusAreas  string   `json:"focusAreas"`
	LinkedInURL string   `json:"linkedinUrl"`
	Skills      []string `json:"skills"`
}

// Event is a journal row describing one project mutation.
type Event struct {
	ID        string    `json:"id"`
	TS        time.Time `json:"ts"`
	Type      string    `json:"type"`
	ProjectID int       `json:"projectId"`
	Payload   any       `json:"payload"`
}
