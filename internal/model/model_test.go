package model

import "testing"

func TestParseView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{in: "home", want: ViewHome},
		{in: " Dashboard ", want: ViewDashboard},
		{in: "PROJECTS", want: ViewProjects},
		{in: "about", want: ViewAbout},
		{in: "contact", want: ViewContact},
		{in: "", wantErr: true},
		{in: "settings", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseView(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseView(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseView(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseView(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestViewTitle(t *testing.T) {
	t.Parallel()

	if got := ViewDashboard.Title(); got != "Dashboard" {
		t.Fatalf("Title() = %q", got)
	}
	if got := View("").Title(); got != "" {
		t.Fatalf("empty Title() = %q", got)
	}
}

func TestProjectClone_DoesNotShareTags(t *testing.T) {
	t.Parallel()

	p := Project{ID: 1, Title: "A", Tags: []string{"x", "y"}}
	c := p.Clone()
	c.Tags[0] = "changed"
	if p.Tags[0] != "x" {
		t.Fatalf("clone mutated original tags: %v", p.Tags)
	}
}

func TestProjectTagsText(t *testing.T) {
	t.Parallel()

	p := Project{Tags: []string{"NLP", "BERT", "FastAPI"}}
	if got := p.TagsText(); got != "NLP, BERT, FastAPI" {
		t.Fatalf("TagsText() = %q", got)
	}
	if got := (Project{}).TagsText(); got != "" {
		t.Fatalf("empty TagsText() = %q", got)
	}
}
