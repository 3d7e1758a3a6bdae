//go:build !windows

package dispatch

import "syscall"

func hiddenConsole() *syscall.SysProcAttr { return nil }
