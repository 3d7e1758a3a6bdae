package compress

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"docdesk/internal/apperr"
	"docdesk/internal/dispatch"

	"github.com/google/uuid"
)

// Ghostscript runs the pdfwrite device directly.
type Ghostscript struct {
	path   string
	appDir string
	goos   string

	lookPath func(string) (string, error)
}

// NewGhostscript returns a runner. An explicit path wins; otherwise the copy
// bundled under appDir is preferred over the one on PATH.
func NewGhostscript(path, appDir string) *Ghostscript {
	return &Ghostscript{path: path, appDir: appDir, goos: runtime.GOOS, lookPath: exec.LookPath}
}

func (g *Ghostscript) binary() (string, error) {
	if g.path != "" {
		return g.lookPath(g.path)
	}
	if g.appDir != "" {
		bundled := filepath.Join(g.appDir, "resources", "ghostscript", "bin", "gswin64c.exe")
		if fi, err := os.Stat(bundled); err == nil && !fi.IsDir() {
			return bundled, nil
		}
	}
	name := "gs"
	if g.goos == "windows" {
		name = "gswin64c"
	}
	return g.lookPath(name)
}

// Args returns the ghostscript command line for one run.
func Args(profile, input, output string) []string {
	return []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=" + profile,
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile=" + output,
		input,
	}
}

// Run writes into a temporary sibling of output and renames it into place
// only when ghostscript exits cleanly, so a failed run leaves output untouched.
func (g *Ghostscript) Run(ctx context.Context, profile, input, output string) error {
	const op = "compress.native"

	bin, err := g.binary()
	if err != nil {
		return apperr.ToolUnavailable(op, err, "ghostscript not found")
	}

	tmp := filepath.Join(filepath.Dir(output), "."+filepath.Base(output)+"."+uuid.NewString()+".tmp")
	defer os.Remove(tmp)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, Args(profile, input, tmp)...)
	cmd.Stderr = &stderr
	dispatch.HideConsole(cmd)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return apperr.ExecutionFailure(op, exitErr.ExitCode(), stderr.String(), nil)
		}
		if ctx.Err() != nil {
			return apperr.ExecutionFailure(op, -1, stderr.String(), ctx.Err())
		}
		return apperr.ToolUnavailable(op, err, "could not start %s", bin)
	}

	if _, err := os.Stat(tmp); err != nil {
		return apperr.ExecutionFailure(op, 0, "no output produced", err)
	}
	return os.Rename(tmp, output)
}
