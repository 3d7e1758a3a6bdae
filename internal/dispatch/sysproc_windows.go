//go:build windows

package dispatch

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// hiddenConsole keeps spawned backends from opening a console window.
func hiddenConsole() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
