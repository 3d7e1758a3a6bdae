package compress

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"docdesk/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	assert.Equal(t, []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=/printer",
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile=/tmp/out.pdf",
		"/tmp/in.pdf",
	}, Args("/printer", "/tmp/in.pdf", "/tmp/out.pdf"))
}

func TestGhostscript_Binary(t *testing.T) {
	onPath := func(names ...string) func(string) (string, error) {
		return func(n string) (string, error) {
			for _, x := range names {
				if x == n {
					return "/usr/bin/" + n, nil
				}
			}
			return "", errors.New("not found")
		}
	}

	t.Run("unix name", func(t *testing.T) {
		g := &Ghostscript{goos: "linux", lookPath: onPath("gs")}
		bin, err := g.binary()
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/gs", bin)
	})

	t.Run("windows name", func(t *testing.T) {
		g := &Ghostscript{goos: "windows", lookPath: onPath("gswin64c")}
		bin, err := g.binary()
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/gswin64c", bin)
	})

	t.Run("bundled copy preferred", func(t *testing.T) {
		app := t.TempDir()
		bundled := filepath.Join(app, "resources", "ghostscript", "bin", "gswin64c.exe")
		require.NoError(t, os.MkdirAll(filepath.Dir(bundled), 0o755))
		require.NoError(t, os.WriteFile(bundled, []byte("x"), 0o755))

		g := &Ghostscript{appDir: app, goos: "windows", lookPath: onPath("gswin64c")}
		bin, err := g.binary()
		require.NoError(t, err)
		assert.Equal(t, bundled, bin)
	})

	t.Run("missing is tool unavailable", func(t *testing.T) {
		g := &Ghostscript{goos: "linux", lookPath: onPath()}
		err := g.Run(context.Background(), "/ebook", "in.pdf", filepath.Join(t.TempDir(), "out.pdf"))
		assert.ErrorIs(t, err, apperr.ErrToolUnavailable)
	})
}

// fakeGS writes a shell script that behaves like gs for the given exit code.
func fakeGS(t *testing.T, exit string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}
	p := filepath.Join(t.TempDir(), "gs")
	script := `#!/bin/sh
for a in "$@"; do
  case "$a" in
    -sOutputFile=*) out="${a#-sOutputFile=}" ;;
  esac
done
printf 'partial' > "$out"
echo "gs stderr" >&2
exit ` + exit + "\n"
	require.NoError(t, os.WriteFile(p, []byte(script), 0o755))
	return p
}

func TestGhostscript_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("success renames into place", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(dir, "out.pdf")

		g := NewGhostscript(fakeGS(t, "0"), "")
		require.NoError(t, g.Run(ctx, "/ebook", "in.pdf", out))

		b, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "partial", string(b))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("failure leaves no output", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(dir, "out.pdf")

		g := NewGhostscript(fakeGS(t, "1"), "")
		err := g.Run(ctx, "/ebook", "in.pdf", out)

		var ae *apperr.Error
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, apperr.KindExecutionFailure, ae.Kind)
		assert.Equal(t, 1, ae.ExitCode)
		assert.Contains(t, ae.Detail, "gs stderr")

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
