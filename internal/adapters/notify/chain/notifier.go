package chain

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/humanos-cli/internal/adapters/notify/desktop"
	"github.com/bnema/humanos-cli/internal/adapters/notify/terminal"
	"github.com/bnema/humanos-cli/internal/ports"
)

type Notifier struct {
	primary  ports.Notifier
	fallback ports.Notifier
}

var _ ports.Notifier = (*Notifier)(nil)

var (
	errNilPrimaryNotifier  = errors.New("primary notifier is nil")
	errNilFallbackNotifier = errors.New("fallback notifier is nil")
)

func NewNotifier(primary ports.Notifier, fallback ports.Notifier) (*Notifier, error) {
	if primary == nil {
		return nil, errNilPrimaryNotifier
	}
	if fallback == nil {
		return nil, errNilFallbackNotifier
	}

	return &Notifier{primary: primary, fallback: fallback}, nil
}

// NewDesktopFirstWithTerminalFallback rings the terminal on w when no desktop
// notification daemon is reachable.
func NewDesktopFirstWithTerminalFallback(w io.Writer) *Notifier {
	return &Notifier{primary: desktop.NewNotifier(), fallback: terminal.NewNotifier(w)}
}

func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	err := n.primary.Notify(ctx, title, body)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := n.fallback.Notify(ctx, title, body)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary notifier failed: %w; fallback notifier failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
