package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/ports"
	"github.com/mattn/go-isatty"
)

const question = "Allow hos to show a notification when a focus session ends? [y/N]: "

// Prompter asks for notification permission on a terminal. When in is not a
// terminal it answers domain.PermissionDefault without asking.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

var _ ports.PermissionPrompter = (*Prompter)(nil)

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, interactive: isTerminal(in)}
}

func (p *Prompter) RequestPermission(ctx context.Context) (domain.NotificationPermission, error) {
	if !p.interactive {
		return domain.PermissionDefault, nil
	}

	if _, err := fmt.Fprint(p.out, question); err != nil {
		return domain.PermissionDefault, fmt.Errorf("write permission prompt: %w", err)
	}

	type answer struct {
		line string
		err  error
	}
	answers := make(chan answer, 1)
	go func() {
		line, err := bufio.NewReader(p.in).ReadString('\n')
		answers <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return domain.PermissionDefault, ctx.Err()
	case a := <-answers:
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return domain.PermissionDefault, fmt.Errorf("read permission answer: %w", a.err)
		}
		return parseAnswer(a.line), nil
	}
}

func parseAnswer(line string) domain.NotificationPermission {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return domain.PermissionGranted
	case "n", "no":
		return domain.PermissionDenied
	default:
		// Leave the decision open so the next live view asks again.
		return domain.PermissionDefault
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
