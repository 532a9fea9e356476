package application

import (
	"testing"
	"time"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastsExpireAfterTTL(t *testing.T) {
	store := NewStore(nil)
	toasts := NewToasts(store, newMovableClock(t, testNow), 10*time.Millisecond)
	defer toasts.Close()

	toast := toasts.Success("Focus set")
	require.NotEmpty(t, toast.ID)
	assert.Equal(t, domain.ToastSuccess, toast.Kind)
	assert.Equal(t, testNow.Add(10*time.Millisecond), toast.ExpiresAt())
	assert.Len(t, store.Snapshot().Toasts, 1)

	assert.Eventually(t, func() bool { return len(store.Snapshot().Toasts) == 0 }, time.Second, 2*time.Millisecond)
}

func TestToastsDismissAndClose(t *testing.T) {
	store := NewStore(nil)
	toasts := NewToasts(store, nil, time.Hour)

	first := toasts.Error("boom")
	toasts.Info("hello")
	toasts.Dismiss(first.ID)

	snap := store.Snapshot()
	require.Len(t, snap.Toasts, 1)
	assert.Equal(t, "hello", snap.Toasts[0].Text)

	toasts.Close()
	toasts.Info("after close")
	assert.Len(t, store.Snapshot().Toasts, 1)
}
