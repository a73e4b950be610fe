// Package publish exports the portfolio as a tree of markdown files:
//
//	<dir>/index.md
//	<dir>/projects/<id>.md
package publish

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type WriteOptions struct {
	Overwrite bool
}

type WriteResult struct {
	Written []string `json:"written"`
}

// WriteSite writes the index and one page per project under toDir. It stops
// on the first error; files written before it are left in place.
func WriteSite(toDir string, s Site, opt WriteOptions) (WriteResult, error) {
	toDir = strings.TrimSpace(toDir)
	if toDir == "" {
		return WriteResult{}, errors.New("missing --to")
	}

	projectsDir := filepath.Join(toDir, "projects")
	if err := os.MkdirAll(projectsDir, 0o755); err != nil {
		return WriteResult{}, err
	}

	indexPath := filepath.Join(toDir, "index.md")
	if err := writeFile(indexPath, []byte(RenderIndexMarkdown(s)), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}

	written := []string{indexPath}
	for _, p := range s.Projects {
		path := filepath.Join(projectsDir, projectFile(p.ID))
		if err := writeFile(path, []byte(RenderProjectMarkdown(p)), opt.Overwrite); err != nil {
			return WriteResult{}, err
		}
		written = append(written, path)
	}
	return WriteResult{Written: written}, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
