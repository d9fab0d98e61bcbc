// Package shell runs the reload hooks configured for sprite targets.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/sprite/internal/core/domain"
	"go.trai.ch/sprite/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// OutputEnvVar names the variable holding the changed sprite path.
	OutputEnvVar = "SPRITE_OUTPUT"
	// DeclarationEnvVar names the variable holding the declaration path, when one is configured.
	DeclarationEnvVar = "SPRITE_DECLARATION"
)

var _ ports.ReloadNotifier = (*Notifier)(nil)

// Notifier implements ports.ReloadNotifier by running the target's reload
// command. Output is streamed line by line to the logger.
type Notifier struct {
	logger ports.Logger
}

// NewNotifier creates a new Notifier.
func NewNotifier(logger ports.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Notify runs the reload command of target and waits for it to complete.
// Targets without a reload command are a no-op.
func (n *Notifier) Notify(ctx context.Context, target domain.Target) error {
	if len(target.Reload) == 0 {
		return nil
	}

	out := &logWriter{logger: n.logger}
	defer func() { _ = out.Close() }()

	env := resolveEnvironment(os.Environ(), target)
	if err := run(ctx, target.Reload, env, out); err != nil {
		var exitCode int
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
		wrapped := zerr.With(zerr.Wrap(domain.ErrReloadFailed, err.Error()), "output", target.Output)
		return zerr.With(wrapped, "exit_code", exitCode)
	}
	return nil
}

// run starts the command in a PTY so that tools keep their terminal output.
// Where no PTY is available it falls back to plain pipes.
func run(ctx context.Context, command, env []string, out io.Writer) error {
	cmd := newCommand(ctx, command, env)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		cmd = newCommand(ctx, command, env)
		cmd.Stdout = out
		cmd.Stderr = out
		if err := cmd.Start(); err != nil {
			return err
		}
		return cmd.Wait()
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master returns EIO once the child side closes.
		_, _ = io.Copy(out, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	_ = ptmx.Close()
	return err
}

func newCommand(ctx context.Context, command, env []string) *exec.Cmd {
	name := command[0]

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command[1:]...) //nolint:gosec // user provided command
	cmd.Args[0] = name
	cmd.Env = env
	return cmd
}

// resolveEnvironment passes the process environment through and exposes the
// paths of the changed target.
func resolveEnvironment(sysEnv []string, target domain.Target) []string {
	envMap := make(map[string]string, len(sysEnv)+2)
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	envMap[OutputEnvVar] = target.Output
	if target.Declaration != nil {
		envMap[DeclarationEnvVar] = target.Declaration.Path
	} else {
		delete(envMap, DeclarationEnvVar)
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
