package project

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/modu-ai/ngfs/internal/ui"
)

// CommandRunner runs an external command in dir and returns its combined output.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// Installer installs the dependencies of a generated project.
type Installer interface {
	Install(ctx context.Context, root string) error
}

// NpmInstaller runs `npm install` behind a spinner.
type NpmInstaller struct {
	runner   CommandRunner
	theme    *ui.Theme
	headless *ui.HeadlessManager
	out      io.Writer
	logger   *slog.Logger
}

// NewNpmInstaller creates an NpmInstaller drawing its spinner on out.
func NewNpmInstaller(runner CommandRunner, theme *ui.Theme, hm *ui.HeadlessManager, out io.Writer, logger *slog.Logger) *NpmInstaller {
	return &NpmInstaller{runner: runner, theme: theme, headless: hm, out: out, logger: logger}
}

// Install runs `npm install` in root.
func (i *NpmInstaller) Install(ctx context.Context, root string) error {
	spin := ui.NewSpinner(i.theme, i.headless, i.out, "Installing npm dependencies...")
	out, err := i.runner.Run(ctx, root, "npm", "install")
	spin.Stop()

	if err != nil {
		i.logger.Debug("npm install output", "output", string(out))
		return fmt.Errorf("%w: npm install: %v%s", ErrInstallFailed, err, outputTail(out))
	}
	i.logger.Info("dependencies installed", "root", root)
	return nil
}

// outputTail returns the last lines of a command output for error messages.
func outputTail(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return ""
	}
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return "\n" + strings.Join(lines, "\n")
}
