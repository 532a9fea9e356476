package domain

import "time"

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastWarning ToastKind = "warning"
	ToastInfo    ToastKind = "info"
)

type Toast struct {
	ID        string
	Kind      ToastKind
	Text      string
	TTL       time.Duration
	CreatedAt time.Time
}

func (t Toast) ExpiresAt() time.Time {
	return t.CreatedAt.Add(t.TTL)
}
