package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio-cli/internal/projects"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// isolate points the config dir at a temp dir and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PORTFOLIO_CONFIG_DIR", dir)
	for _, k := range []string{"PORTFOLIO_THEME", "PORTFOLIO_PERSIST", "PORTFOLIO_DATA_DIR", "PORTFOLIO_LOG_LEVEL", "PORTFOLIO_LOG_FILE", "PORTFOLIO_FORMAT"} {
		t.Setenv(k, "")
	}
	return dir
}

func mustEnv(t *testing.T, args ...string) map[string]any {
	t.Helper()
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: portfolio %v\nerr: %v\nstderr:\n%s\nstdout:\n%s", args, err, stderr, stdout)
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s\nargs: %v", err, stdout, args)
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected JSON envelope to contain data key; got: %v", env)
	}
	if hints, ok := env["_hints"]; ok && hints != nil {
		if _, ok := hints.([]any); !ok {
			t.Fatalf("expected _hints to be list; got %T", hints)
		}
	}
	return env
}

func dataList(t *testing.T, env map[string]any) []any {
	t.Helper()
	xs, ok := env["data"].([]any)
	if !ok {
		t.Fatalf("expected data list, got %T", env["data"])
	}
	return xs
}

func dataMap(t *testing.T, env map[string]any) map[string]any {
	t.Helper()
	m, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", env["data"])
	}
	return m
}

func TestProjectsList_Seeded(t *testing.T) {
	isolate(t)

	xs := dataList(t, mustEnv(t, "projects", "list"))
	if len(xs) != 3 {
		t.Fatalf("expected 3 seeded projects, got %d", len(xs))
	}
	first := xs[0].(map[string]any)
	if first["id"].(float64) != 1 || first["title"] != "Neural Style Transfer Engine" {
		t.Fatalf("unexpected first project: %#v", first)
	}
}

func TestProjectsAdd_InMemoryByDefault(t *testing.T) {
	isolate(t)

	env := mustEnv(t, "projects", "add", "--title", "Graph Net", "--tags", "GNN, , PyTorch")
	p := dataMap(t, env)
	if p["id"].(float64) != 4 {
		t.Fatalf("expected id 4, got %v", p["id"])
	}
	tags := p["tags"].([]any)
	if len(tags) != 2 || tags[0] != "GNN" || tags[1] != "PyTorch" {
		t.Fatalf("unexpected tags: %#v", tags)
	}
	if p["live"] != "#" || p["repo"] != "#" {
		t.Fatalf("expected placeholder links, got live=%v repo=%v", p["live"], p["repo"])
	}
	if hints, _ := env["_hints"].([]any); len(hints) == 0 {
		t.Fatalf("expected a not-persisted hint")
	}

	if xs := dataList(t, mustEnv(t, "projects", "list")); len(xs) != 3 {
		t.Fatalf("in-memory add leaked into the next process: %d projects", len(xs))
	}
}

func TestProjectsAdd_BlankTitleRejected(t *testing.T) {
	isolate(t)

	_, stderr, err := runCLI(t, []string{"projects", "add", "--title", "   "})
	if !errors.Is(err, projects.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if !strings.Contains(string(stderr), "title is required") {
		t.Fatalf("expected validation message on stderr, got %q", stderr)
	}
}

func TestProjectsShowAndErrors(t *testing.T) {
	isolate(t)

	p := dataMap(t, mustEnv(t, "projects", "show", "2"))
	if p["title"] != "Sentiment Analysis API" {
		t.Fatalf("unexpected project: %#v", p)
	}

	if _, _, err := runCLI(t, []string{"projects", "show", "99"}); !errors.Is(err, projects.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"projects", "show", "abc"}); err == nil {
		t.Fatalf("expected invalid id error")
	}
	if _, _, err := runCLI(t, []string{"projects", "delete", "99"}); !errors.Is(err, projects.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"projects", "update", "1", "--title", ""}); !errors.Is(err, projects.ErrInvalid) {
		t.Fatalf("expected ErrInvalid on blank update, got %v", err)
	}
}

func TestProjectsUpdate_OnlyChangesPassedFlags(t *testing.T) {
	isolate(t)

	p := dataMap(t, mustEnv(t, "projects", "update", "1", "--desc", "New desc"))
	if p["title"] != "Neural Style Transfer Engine" {
		t.Fatalf("title changed unexpectedly: %v", p["title"])
	}
	if p["desc"] != "New desc" {
		t.Fatalf("desc not updated: %v", p["desc"])
	}
	if tags := p["tags"].([]any); len(tags) != 3 {
		t.Fatalf("tags changed unexpectedly: %#v", tags)
	}
}

func TestPersist_RoundTripAndEvents(t *testing.T) {
	isolate(t)
	data := t.TempDir()

	if _, _, err := runCLI(t, []string{"events"}); !errors.Is(err, errPersistOff) {
		t.Fatalf("expected persistence-off error, got %v", err)
	}

	mustEnv(t, "--persist", "--dir", data, "projects", "add", "--title", "Graph Net")
	mustEnv(t, "--persist", "--dir", data, "projects", "delete", "2")

	xs := dataList(t, mustEnv(t, "--persist", "--dir", data, "projects", "list"))
	if len(xs) != 3 {
		t.Fatalf("expected 3 projects after add+delete, got %d", len(xs))
	}
	ids := []float64{}
	for _, x := range xs {
		ids = append(ids, x.(map[string]any)["id"].(float64))
	}
	if ids[0] != 4 || ids[1] != 1 || ids[2] != 3 {
		t.Fatalf("unexpected order: %v", ids)
	}

	if _, err := os.Stat(filepath.Join(data, "portfolio.sqlite")); err != nil {
		t.Fatalf("expected sqlite file: %v", err)
	}

	evs := dataList(t, mustEnv(t, "--persist", "--dir", data, "events"))
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if typ := evs[0].(map[string]any)["type"]; typ != "project.add" {
		t.Fatalf("expected first event project.add, got %v", typ)
	}
	if typ := evs[1].(map[string]any)["type"]; typ != "project.delete" {
		t.Fatalf("expected second event project.delete, got %v", typ)
	}
}

func TestView_TextRendition(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, []string{"--format", "text", "view", "dashboard"})
	if err != nil {
		t.Fatalf("view dashboard: %v", err)
	}
	out := string(stdout)
	for _, want := range []string{"== Dashboard ==", "Models Deployed  15", "Accuracy         94.5%", "Fri   2000", "Neural Sty"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	stdout, _, err = runCLI(t, []string{"--format", "text", "view", "HOME"})
	if err != nil {
		t.Fatalf("view home: %v", err)
	}
	if !strings.Contains(string(stdout), "Featured Project") {
		t.Fatalf("expected featured project on home:\n%s", stdout)
	}

	if _, _, err := runCLI(t, []string{"view", "settings"}); err == nil {
		t.Fatalf("expected unknown view error")
	}
}

func TestFormats(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, []string{"--format", "edn", "projects", "show", "1"})
	if err != nil {
		t.Fatalf("edn: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "{:data {") {
		t.Fatalf("unexpected edn output: %s", stdout)
	}

	stdout, _, err = runCLI(t, []string{"--format", "text", "projects", "list"})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "#1  Neural Style Transfer Engine\n") {
		t.Fatalf("unexpected text output: %s", stdout)
	}

	if _, _, err := runCLI(t, []string{"--format", "yaml", "skills"}); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestConfigCommands(t *testing.T) {
	dir := isolate(t)

	p := dataMap(t, mustEnv(t, "config", "path"))
	if p["path"] != filepath.Join(dir, "config.toml") {
		t.Fatalf("unexpected config path: %v", p["path"])
	}

	mustEnv(t, "config", "init")
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if _, _, err := runCLI(t, []string{"config", "init"}); err == nil {
		t.Fatalf("expected error when config exists")
	}
	mustEnv(t, "config", "init", "--force")

	cfg := dataMap(t, mustEnv(t, "--theme", "LIGHT", "config", "show"))
	if cfg["theme"] != "light" {
		t.Fatalf("flag did not override theme: %v", cfg["theme"])
	}

	t.Setenv("PORTFOLIO_THEME", "auto")
	cfg = dataMap(t, mustEnv(t, "config", "show"))
	if cfg["theme"] != "auto" {
		t.Fatalf("env did not override theme: %v", cfg["theme"])
	}

	if _, _, err := runCLI(t, []string{"--theme", "neon", "skills"}); err == nil {
		t.Fatalf("expected invalid theme error")
	}
}

func TestProfileSkillsStats(t *testing.T) {
	isolate(t)

	prof := dataMap(t, mustEnv(t, "profile"))
	if prof["name"] != "Jinto Johnson C" {
		t.Fatalf("unexpected profile: %#v", prof)
	}
	if xs := dataList(t, mustEnv(t, "skills")); len(xs) != 4 {
		t.Fatalf("expected 4 skills, got %d", len(xs))
	}
	st := dataMap(t, mustEnv(t, "stats"))
	if visitors := st["visitors"].([]any); len(visitors) != 7 {
		t.Fatalf("expected 7 visitor points, got %d", len(visitors))
	}
}

func TestPublish_WritesMarkdown(t *testing.T) {
	isolate(t)
	out := t.TempDir()

	res := dataMap(t, mustEnv(t, "publish", "--to", out))
	if written := res["written"].([]any); len(written) != 4 {
		t.Fatalf("expected 4 files, got %v", written)
	}
	b, err := os.ReadFile(filepath.Join(out, "projects", "3.md"))
	if err != nil {
		t.Fatalf("read project page: %v", err)
	}
	if !strings.HasPrefix(string(b), "# Computer Vision Object Detector\n") {
		t.Fatalf("unexpected page:\n%s", b)
	}

	if _, _, err := runCLI(t, []string{"publish", "--to", out}); err == nil {
		t.Fatalf("expected error when files exist")
	}
	mustEnv(t, "publish", "--to", out, "--overwrite")
}
