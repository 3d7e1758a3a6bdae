package dispatch

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"docdesk/internal/apperr"
)

// Mode selects how scripts are turned into executables.
type Mode string

const (
	// ModeDevelopment runs scripts from ScriptsDir through an interpreter.
	ModeDevelopment Mode = "development"
	// ModePackaged runs standalone executables shipped next to the application.
	ModePackaged Mode = "packaged"
)

// Target is a resolved executable plus the leading arguments it needs
// (the script path in development mode).
type Target struct {
	Path string
	Args []string
}

// Resolver maps a script identity to an execution target for one mode.
type Resolver struct {
	mode        Mode
	interpreter string
	scriptsDir  string
	appDir      string
	goos        string

	lookPath func(string) (string, error)
	stat     func(string) (os.FileInfo, error)
}

// NewResolver builds a Resolver. An empty appDir defaults to the directory of
// the running executable.
func NewResolver(mode Mode, interpreter, scriptsDir, appDir string) *Resolver {
	if appDir == "" {
		appDir = executableDir()
	}
	return &Resolver{
		mode:        mode,
		interpreter: interpreter,
		scriptsDir:  scriptsDir,
		appDir:      appDir,
		goos:        runtime.GOOS,
		lookPath:    exec.LookPath,
		stat:        os.Stat,
	}
}

func (r *Resolver) Resolve(script string) (Target, error) {
	const op = "dispatch.resolve"

	if script == "" || filepath.Base(script) != script {
		return Target{}, apperr.ConstraintViolation(op, "invalid script name %q", script)
	}

	switch r.mode {
	case ModeDevelopment:
		interp, err := r.findInterpreter()
		if err != nil {
			return Target{}, err
		}
		path := filepath.Join(r.scriptsDir, script)
		if err := r.requireFile(path); err != nil {
			return Target{}, apperr.ToolUnavailable(op, err, "script %s not found", path)
		}
		return Target{Path: interp, Args: []string{path}}, nil

	case ModePackaged:
		name := strings.TrimSuffix(script, ".py")
		if r.goos == "windows" {
			name += ".exe"
		}
		path := filepath.Join(r.appDir, name)
		if err := r.requireFile(path); err != nil {
			return Target{}, apperr.ToolUnavailable(op, err, "executable %s not found", path)
		}
		return Target{Path: path}, nil

	default:
		return Target{}, apperr.ToolUnavailable(op, nil, "unknown dispatch mode %q", r.mode)
	}
}

func (r *Resolver) findInterpreter() (string, error) {
	candidates := []string{"python3"}
	if r.goos == "windows" {
		candidates = []string{"py", "python"}
	}
	if r.interpreter != "" {
		candidates = []string{r.interpreter}
	}

	var lastErr error
	for _, c := range candidates {
		p, err := r.lookPath(c)
		if err == nil {
			return p, nil
		}
		lastErr = err
	}
	return "", apperr.ToolUnavailable("dispatch.resolve", lastErr, "no interpreter found (tried %s)", strings.Join(candidates, ", "))
}

func (r *Resolver) requireFile(path string) error {
	fi, err := r.stat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return &os.PathError{Op: "stat", Path: path, Err: os.ErrInvalid}
	}
	return nil
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
