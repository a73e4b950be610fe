package publish

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"portfolio-cli/internal/content"
	"portfolio-cli/internal/model"
)

// Site is everything a static export needs. Callers snapshot it from a
// session so the export never reads live state.
type Site struct {
	Profile  model.Profile
	Stats    model.Stats
	Projects []model.Project
}

func projectFile(id int) string {
	return strconv.Itoa(id) + ".md"
}

// RenderIndexMarkdown renders the landing page: profile, headline numbers,
// skills and links to every project page.
func RenderIndexMarkdown(s Site) string {
	var buf bytes.Buffer
	writeLn := func(line string) {
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	writeLn("# " + strings.TrimSpace(s.Profile.Name))
	writeLn("")
	if role := strings.TrimSpace(s.Profile.Role); role != "" {
		writeLn("**" + role + "**")
		writeLn("")
	}
	if tag := strings.TrimSpace(s.Profile.Tagline); tag != "" {
		writeLn(tag)
		writeLn("")
	}

	writeLn("## At a glance")
	writeLn("")
	writeLn("| Metric | Value |")
	writeLn("| --- | --- |")
	writeLn(fmt.Sprintf("| Models Deployed | %d |", s.Stats.ModelsDeployed))
	writeLn(fmt.Sprintf("| Datasets | %d |", s.Stats.Datasets))
	writeLn(fmt.Sprintf("| Accuracy | %.1f%% |", s.Stats.Accuracy))
	writeLn(fmt.Sprintf("| Publications | %d |", s.Stats.Publications))
	writeLn("")

	if len(s.Profile.Skills) > 0 {
		writeLn("## Core Skills")
		writeLn("")
		for _, sk := range s.Profile.Skills {
			writeLn("- " + sk)
		}
		writeLn("")
	}

	writeLn("## Projects")
	writeLn("")
	if len(s.Projects) == 0 {
		writeLn("_No projects yet._")
	}
	for _, p := range s.Projects {
		writeLn(fmt.Sprintf("- [%s](projects/%s)", escapeLinkText(p.Title), projectFile(p.ID)))
	}
	writeLn("")

	buf.WriteString(strings.Replace(content.AboutMarkdown(s.Profile), "# About Me", "## About Me", 1))
	if u := strings.TrimSpace(s.Profile.LinkedInURL); u != "" {
		writeLn("")
		writeLn("## Contact")
		writeLn("")
		writeLn("[LinkedIn](" + u + ")")
	}
	return buf.String()
}

// RenderProjectMarkdown renders one project page. Placeholder links are
// left out.
func RenderProjectMarkdown(p model.Project) string {
	var buf bytes.Buffer
	writeLn := func(line string) {
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	writeLn("# " + strings.TrimSpace(p.Title))
	writeLn("")
	writeLn(fmt.Sprintf("- ID: `%d`", p.ID))
	if len(p.Tags) > 0 {
		tags := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			tags = append(tags, "`"+t+"`")
		}
		writeLn("- Tags: " + strings.Join(tags, ", "))
	}
	if hasLink(p.Live) {
		writeLn("- Live: " + p.Live)
	}
	if hasLink(p.Repo) {
		writeLn("- Repo: " + p.Repo)
	}
	writeLn("")

	if desc := strings.TrimSpace(p.Desc); desc != "" {
		writeLn(desc)
		writeLn("")
	}
	writeLn("[Back to index](../index.md)")
	return buf.String()
}

func hasLink(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != model.LinkPlaceholder
}

func escapeLinkText(s string) string {
	r := strings.NewReplacer("[", `\[`, "]", `\]`)
	return r.Replace(strings.TrimSpace(s))
}
