package dispatch

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"sync/atomic"
	"time"

	"docdesk/internal/apperr"
)

// State is the lifecycle position of one invocation.
type State int32

const (
	StateResolving State = iota
	StateSpawning
	StateRunning
	StateSucceeded
	StateFailedExit
	StateFailedToSpawn
	StateCanceled
)

func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateSpawning:
		return "spawning"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailedExit:
		return "failed_exit"
	case StateFailedToSpawn:
		return "failed_to_spawn"
	case StateCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (s State) Terminal() bool { return s >= StateSucceeded }

// Handle is one running (or finished) backend invocation.
type Handle struct {
	script  string
	cmd     *exec.Cmd
	ctx     context.Context
	cancel  context.CancelFunc
	stdout  bytes.Buffer
	stderr  bytes.Buffer
	state   atomic.Int32
	started time.Time
	done    chan struct{}
	out     string
	err     error

	onFinish func(h *Handle, elapsed time.Duration)
}

func newHandle(script string) *Handle {
	h := &Handle{script: script, done: make(chan struct{})}
	h.state.Store(int32(StateResolving))
	return h
}

func (h *Handle) setState(s State) { h.state.Store(int32(s)) }

// State returns the current lifecycle state.
func (h *Handle) State() State { return State(h.state.Load()) }

// Script returns the script identity this handle runs.
func (h *Handle) Script() string { return h.script }

// Start spawns the prepared command. A spawn failure moves the handle to
// StateFailedToSpawn and is reported as ToolUnavailable.
func (h *Handle) Start() error {
	if !h.state.CompareAndSwap(int32(StateResolving), int32(StateSpawning)) {
		return apperr.ConstraintViolation("dispatch.spawn", "%s already started", h.script)
	}
	h.started = time.Now()
	if err := h.ctx.Err(); err != nil {
		h.cancel()
		h.finish(StateCanceled, "", apperr.ExecutionFailure("dispatch.exec", -1, "", err))
		return h.err
	}
	if err := h.cmd.Start(); err != nil {
		h.cancel()
		h.finish(StateFailedToSpawn, "", apperr.ToolUnavailable("dispatch.spawn", err, "could not start %s", h.script))
		return h.err
	}
	h.setState(StateRunning)
	go h.wait()
	return nil
}

func (h *Handle) wait() {
	err := h.cmd.Wait()
	defer h.cancel()

	switch {
	case err == nil:
		h.finish(StateSucceeded, h.stdout.String(), nil)
	case h.ctx.Err() != nil:
		h.finish(StateCanceled, "", apperr.ExecutionFailure("dispatch.exec", -1, h.stderr.String(), h.ctx.Err()))
	default:
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
			err = nil
		}
		h.finish(StateFailedExit, "", apperr.ExecutionFailure("dispatch.exec", code, h.stderr.String(), err))
	}
}

func (h *Handle) finish(s State, out string, err error) {
	h.out, h.err = out, err
	h.setState(s)
	if h.onFinish != nil {
		var elapsed time.Duration
		if !h.started.IsZero() {
			elapsed = time.Since(h.started)
		}
		h.onFinish(h, elapsed)
	}
	close(h.done)
}

// Wait blocks until the handle is terminal and returns stdout on success.
// It must not be called before Start.
func (h *Handle) Wait() (string, error) {
	<-h.done
	return h.out, h.err
}

// Stdout returns everything the process wrote to stdout. Valid once Done is closed.
func (h *Handle) Stdout() string {
	<-h.done
	return h.stdout.String()
}

// Done is closed once the handle reaches a terminal state.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Cancel kills the process if it is still running. The handle ends in StateCanceled.
func (h *Handle) Cancel() {
	if h.cancel != nil {
		h.cancel()
	}
}
