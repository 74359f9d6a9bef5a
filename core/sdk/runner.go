package sdk

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner executes the post-install commands of an SDK.
type Runner interface {
	// Run starts name in dir, feeds it stdin and waits for it to exit.
	Run(ctx context.Context, dir, stdin, name string, args ...string) error
	// LookPath finds a prerequisite tool on PATH.
	LookPath(file string) (string, error)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, dir, stdin, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// LookPath implements Runner.
func (ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
