// Package browser hands a URL or path to the platform opener.
package browser

import (
	"errors"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

var errEmptyTarget = errors.New("empty url")

func command(goos, target string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", target)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", target)
	default:
		return exec.Command("xdg-open", target)
	}
}

// Open launches the default handler for target and waits for the launcher
// to exit. The launcher's own output is discarded so it cannot corrupt a
// terminal UI.
func Open(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return errEmptyTarget
	}
	cmd := command(runtime.GOOS, target)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Wait()
}
