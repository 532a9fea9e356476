package desktop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bnema/humanos-cli/internal/ports"
)

var ErrUnavailable = errors.New("desktop notification command unavailable")

const appName = "hos"

type runFunc func(ctx context.Context, name string, args ...string) (stderr string, err error)

// Notifier raises a desktop notification through notify-send, or osascript
// on macOS.
type Notifier struct {
	goos string
	run  runFunc
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier() *Notifier {
	return &Notifier{goos: runtime.GOOS, run: runCommand}
}

func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, args := n.command(title, body)
	stderr, err := n.run(ctx, name, args...)
	if err != nil {
		return formatError(name, err, stderr)
	}

	return nil
}

func (n *Notifier) command(title, body string) (string, []string) {
	if n.goos == "darwin" {
		script := fmt.Sprintf("display notification %s with title %s", appleScriptString(body), appleScriptString(title))
		return "osascript", []string{"-e", script}
	}

	return "notify-send", []string{"--app-name=" + appName, "--urgency=normal", title, body}
}

func appleScriptString(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + replacer.Replace(value) + `"`
}

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrUnavailable
		}
		return "", fmt.Errorf("locate %s command: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

func formatError(name string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("%s notify: %w", name, err)
	}

	return fmt.Errorf("%s notify: %w: %s", name, err, stderr)
}
