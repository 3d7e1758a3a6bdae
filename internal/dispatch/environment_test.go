package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_Build(t *testing.T) {
	base := []string{"HOME=/home/u", "PATH=/usr/bin:/bin", "TESSDATA_PREFIX=/old"}
	snapshot := append([]string(nil), base...)

	e := Environment{
		ToolDirs:   []string{"/app/poppler", "/app/tesseract"},
		DataDir:    "/app/tesseract/tessdata",
		DataDirVar: "TESSDATA_PREFIX",
		goos:       "linux",
	}
	got := e.Build(base)

	assert.Equal(t, snapshot, base)
	assert.ElementsMatch(t, []string{
		"HOME=/home/u",
		"PATH=/app/poppler:/app/tesseract:/usr/bin:/bin",
		"TESSDATA_PREFIX=/app/tesseract/tessdata",
	}, got)
}

func TestEnvironment_BuildWindows(t *testing.T) {
	e := Environment{
		ToolDirs:   []string{`C:\app\poppler`},
		DataDir:    `C:\app\tesseract\tessdata`,
		DataDirVar: "TESSDATA_PREFIX",
		goos:       "windows",
	}
	got := e.Build([]string{`Path=C:\Windows`, `tessdata_prefix=C:\old`})

	assert.ElementsMatch(t, []string{
		`Path=C:\app\poppler;C:\Windows`,
		`TESSDATA_PREFIX=C:\app\tesseract\tessdata`,
	}, got)
}

func TestEnvironment_BuildWithoutPath(t *testing.T) {
	e := Environment{ToolDirs: []string{"/opt/tools"}, goos: "linux"}
	assert.Equal(t, []string{"PATH=/opt/tools"}, e.Build(nil))
}

func TestDefaultEnvironment(t *testing.T) {
	e := DefaultEnvironment("app")
	assert.Len(t, e.ToolDirs, 2)
	assert.Equal(t, "TESSDATA_PREFIX", e.DataDirVar)
}
