// Package bindgen drives the fixture-bindings pipeline: preflight the build
// artifacts, reset the output directory, invoke uniffi-bindgen-php against
// the fixtures cdylib.
package bindgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/uniffi-php/fixturegen/platform"
	"github.com/uniffi-php/fixturegen/workspace"
)

// ToolError reports a binding-generator run that started and exited non-zero.
// The exit code is surfaced so the process can propagate it.
type ToolError struct {
	ExitCode int
	Err      error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("uniffi-bindgen-php exited with status %d", e.ExitCode)
}

func (e *ToolError) Unwrap() error { return e.Err }

type Runner struct {
	Workspace  workspace.Workspace
	Platform   platform.Platform
	SkipChecks bool

	// exec spawns the external tool; replaced in tests to record the
	// argument vector.
	exec func(ctx context.Context, name string, args ...string) error
}

func NewRunner(ws workspace.Workspace, p platform.Platform) *Runner {
	return &Runner{Workspace: ws, Platform: p, exec: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Generate executes the pipeline sequentially. The first failing step aborts
// the run; the external tool is never spawned after a failure.
func (r *Runner) Generate(ctx context.Context) error {
	if !r.SkipChecks {
		if err := r.preflight(); err != nil {
			return err
		}
	}

	slog.Info("resetting bindings directory", "dir", r.Workspace.BindingsDir())
	if err := r.Workspace.ResetBindingsDir(); err != nil {
		return err
	}

	exe := r.Workspace.BindgenExe(r.Platform)
	args := []string{
		r.Workspace.LibraryFile(r.Platform),
		"--out-dir", r.Workspace.BindingsDir(),
		"--library",
		"--config", r.Workspace.ConfigFile(),
	}

	slog.Info("running binding generator", "cmd", exe+" "+strings.Join(args, " "))
	if err := r.exec(ctx, exe, args...); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return &ToolError{ExitCode: ee.ExitCode(), Err: err}
		}
		return fmt.Errorf("run %s: %w", exe, err)
	}
	return nil
}
