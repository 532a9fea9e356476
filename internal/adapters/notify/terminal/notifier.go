package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/humanos-cli/internal/ports"
)

const bell = "\a"

// Notifier rings the terminal bell and prints the alert on w.
type Notifier struct {
	mu sync.Mutex
	w  io.Writer
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(w io.Writer) *Notifier {
	if w == nil {
		w = io.Discard
	}

	return &Notifier{w: w}
}

func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintf(n.w, "%s%s: %s\n", bell, title, body); err != nil {
		return fmt.Errorf("write terminal notification: %w", err)
	}

	return nil
}
