package desktop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyUsesNotifySendOnLinux(t *testing.T) {
	t.Parallel()

	called := false
	notifier := &Notifier{
		goos: "linux",
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			called = true
			assert.Equal(t, "notify-send", name)
			assert.Equal(t, []string{"--app-name=hos", "--urgency=normal", "Focus Session Complete", `Your focus session on "write" has ended.`}, args)
			return "", nil
		},
	}

	err := notifier.Notify(context.Background(), "Focus Session Complete", `Your focus session on "write" has ended.`)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestNotifyEscapesAppleScriptOnDarwin(t *testing.T) {
	t.Parallel()

	notifier := &Notifier{
		goos: "darwin",
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			assert.Equal(t, "osascript", name)
			assert.Equal(t, []string{"-e", `display notification "on \"write\"" with title "Done"`}, args)
			return "", nil
		},
	}

	require.NoError(t, notifier.Notify(context.Background(), "Done", `on "write"`))
}

func TestNotifyReturnsUnavailableWhenCommandMissing(t *testing.T) {
	t.Parallel()

	notifier := &Notifier{
		goos: "linux",
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", ErrUnavailable
		},
	}

	err := notifier.Notify(context.Background(), "title", "body")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNotifyIncludesStderr(t *testing.T) {
	t.Parallel()

	notifier := &Notifier{
		goos: "linux",
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			return "no dbus session", errors.New("exit status 1")
		},
	}

	err := notifier.Notify(context.Background(), "title", "body")
	require.Error(t, err)
	assert.EqualError(t, err, "notify-send notify: exit status 1: no dbus session")
}

func TestNotifyHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	notifier := &Notifier{
		goos: "linux",
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			t.Fatal("run should not be called")
			return "", nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifier.Notify(ctx, "title", "body")
	assert.ErrorIs(t, err, context.Canceled)
}
