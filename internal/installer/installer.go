// Package installer runs the project's package manager to install
// development dependencies.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	oerrors "github.com/extinit/extinit/internal/errors"
	"github.com/extinit/extinit/internal/options"
	"github.com/extinit/extinit/internal/output"
)

// PackageManager installs dependencies with npm, yarn or pnpm.
// The subprocess shares the terminal: nothing is captured.
type PackageManager struct {
	Name options.PackageManager

	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a PackageManager wired to the terminal.
func New(name options.PackageManager) *PackageManager {
	return &PackageManager{
		Name:   name,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Args returns the argv that installs deps as development dependencies.
func (p *PackageManager) Args(deps []string) []string {
	var args []string
	switch p.Name {
	case options.PackageManagerYarn:
		args = []string{"yarn", "add", "--dev"}
	case options.PackageManagerPNPM:
		args = []string{"pnpm", "add", "--save-dev"}
	default:
		args = []string{"npm", "install", "--save-dev"}
	}
	return append(args, deps...)
}

// Command returns the install command line as the user would type it.
func (p *PackageManager) Command(deps []string) string {
	return strings.Join(p.Args(deps), " ")
}

// Install runs the package manager in dir and blocks until it exits.
// Cancelling ctx kills the subprocess.
func (p *PackageManager) Install(ctx context.Context, dir string, deps []string) error {
	args := p.Args(deps)
	command := strings.Join(args, " ")

	bin, err := exec.LookPath(args[0])
	if err != nil {
		return installError(command, dir, fmt.Errorf("%s not found in PATH: %w", args[0], err))
	}

	output.Debug("running package manager", "command", command, "dir", dir)

	cmd := exec.CommandContext(ctx, bin, args[1:]...)
	cmd.Dir = dir
	cmd.Stdin = p.Stdin
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Run(); err != nil {
		return installError(command, dir, err)
	}

	return nil
}

func installError(command, dir string, cause error) error {
	return &oerrors.DetailError{
		Type:     "dependency install failed",
		Message:  fmt.Sprintf("`%s` failed: %v", command, cause),
		Location: dir,
		Context:  map[string]string{"Command": command},
		Hint:     "Fix the problem above, then run the command again inside the project directory.",
		Cause:    fmt.Errorf("%w: %w", oerrors.ErrDependencyInstall, cause),
	}
}
