package dispatch

import (
	"context"
	"os"
	"os/exec"
	"time"

	"docdesk/internal/config"
	"docdesk/internal/metrics"

	"go.uber.org/zap"
)

// Executor runs a script with arguments and returns its stdout.
type Executor interface {
	Exec(ctx context.Context, script string, args []string) (string, error)
}

// Gateway launches external processing backends.
// Invocations are independent; the gateway never retries.
type Gateway struct {
	resolver *Resolver
	env      Environment
	timeout  time.Duration
	environ  func() []string
	log      *zap.Logger
	metrics  *metrics.Collectors
}

// NewGateway builds a Gateway from configuration. log and m may be nil.
func NewGateway(cfg config.DispatchConfig, log *zap.Logger, m *metrics.Collectors) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	appDir := cfg.AppDir
	if appDir == "" {
		appDir = executableDir()
	}

	env := DefaultEnvironment(appDir)
	if len(cfg.ToolDirs) > 0 {
		env.ToolDirs = cfg.ToolDirs
	}
	if cfg.DataDir != "" {
		env.DataDir = cfg.DataDir
	}
	if cfg.DataDirVar != "" {
		env.DataDirVar = cfg.DataDirVar
	}

	return &Gateway{
		resolver: NewResolver(Mode(cfg.Mode), cfg.Interpreter, cfg.ScriptsDir, appDir),
		env:      env,
		timeout:  cfg.Timeout,
		environ:  os.Environ,
		log:      log,
		metrics:  m,
	}
}

// Prepare resolves script and builds its command without spawning it.
// On a resolve failure the returned handle is already in StateFailedToSpawn.
func (g *Gateway) Prepare(ctx context.Context, script string, args []string) (*Handle, error) {
	h := newHandle(script)
	h.onFinish = g.finished

	target, err := g.resolver.Resolve(script)
	if err != nil {
		h.finish(StateFailedToSpawn, "", err)
		return h, err
	}

	if g.timeout > 0 {
		h.ctx, h.cancel = context.WithTimeout(ctx, g.timeout)
	} else {
		h.ctx, h.cancel = context.WithCancel(ctx)
	}

	argv := make([]string, 0, len(target.Args)+len(args))
	argv = append(argv, target.Args...)
	argv = append(argv, args...)

	cmd := exec.CommandContext(h.ctx, target.Path, argv...)
	cmd.Env = g.env.Build(g.environ())
	cmd.Stdout = &h.stdout
	cmd.Stderr = &h.stderr
	HideConsole(cmd)
	cmd.WaitDelay = 2 * time.Second
	h.cmd = cmd

	g.log.Debug("dispatch_prepare",
		zap.String("script", script),
		zap.String("target", target.Path),
		zap.Int("args", len(args)),
	)
	return h, nil
}

// Exec runs script to completion. A zero exit returns the full stdout; a
// nonzero exit is an ExecutionFailure carrying stderr; a target that cannot
// be located or started is ToolUnavailable.
func (g *Gateway) Exec(ctx context.Context, script string, args []string) (string, error) {
	h, err := g.Prepare(ctx, script, args)
	if err != nil {
		return "", err
	}
	if err := h.Start(); err != nil {
		return "", err
	}
	return h.Wait()
}

func (g *Gateway) finished(h *Handle, elapsed time.Duration) {
	state := h.State()
	g.metrics.ObserveDispatch(h.script, outcome(state), elapsed)

	fields := []zap.Field{
		zap.String("script", h.script),
		zap.String("state", state.String()),
		zap.Duration("elapsed", elapsed),
	}
	if h.err != nil {
		g.log.Warn("dispatch_finish", append(fields, zap.Error(h.err))...)
		return
	}
	g.log.Info("dispatch_finish", fields...)
}

// HideConsole stops cmd from opening a console window on platforms that would.
func HideConsole(cmd *exec.Cmd) {
	cmd.SysProcAttr = hiddenConsole()
}

func outcome(s State) string {
	switch s {
	case StateSucceeded:
		return metrics.OutcomeSucceeded
	case StateFailedToSpawn:
		return metrics.OutcomeFailedToSpawn
	case StateCanceled:
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeFailedExit
	}
}
