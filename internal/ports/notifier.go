package ports

import (
	"context"

	"github.com/bnema/humanos-cli/internal/domain"
)

type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// PermissionPrompter asks the user whether alerts may be shown. Prompters that
// cannot ask return domain.PermissionDefault.
type PermissionPrompter interface {
	RequestPermission(ctx context.Context) (domain.NotificationPermission, error)
}
