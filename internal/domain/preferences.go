package domain

import (
	"fmt"
	"strings"
	"time"
)

type NotificationPermission string

const (
	PermissionDefault NotificationPermission = "default"
	PermissionGranted NotificationPermission = "granted"
	PermissionDenied  NotificationPermission = "denied"
)

func ParseNotificationPermission(raw string) (NotificationPermission, error) {
	switch p := NotificationPermission(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return PermissionDefault, nil
	case PermissionDefault, PermissionGranted, PermissionDenied:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q", ErrInvalidPermission, raw)
	}
}

func (p NotificationPermission) Determined() bool {
	return p == PermissionGranted || p == PermissionDenied
}

// Preferences is the small amount of local state the client keeps between
// runs. Domain records are never stored here.
type Preferences struct {
	NotificationPermission NotificationPermission
	APIURL                 string
	PollInterval           time.Duration
	UpdatedAt              time.Time
}
