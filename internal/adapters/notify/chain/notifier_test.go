package chain

import (
	"bytes"
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/humanos-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifyUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockNotifier(t)
	fallback := portmocks.NewMockNotifier(t)
	notifier, err := NewNotifier(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Notify(mock.Anything, "title", "body").Return(nil).Once()

	require.NoError(t, notifier.Notify(context.Background(), "title", "body"))
}

func TestNotifyFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockNotifier(t)
	fallback := portmocks.NewMockNotifier(t)
	notifier, err := NewNotifier(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Notify(mock.Anything, "title", "body").Return(errors.New("notify-send missing")).Once()
	fallback.EXPECT().Notify(mock.Anything, "title", "body").Return(nil).Once()

	require.NoError(t, notifier.Notify(context.Background(), "title", "body"))
}

func TestNotifyReturnsCombinedErrorWhenBothFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockNotifier(t)
	fallback := portmocks.NewMockNotifier(t)
	notifier, err := NewNotifier(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Notify(mock.Anything, "title", "body").Return(errors.New("desktop failed")).Once()
	fallback.EXPECT().Notify(mock.Anything, "title", "body").Return(errors.New("terminal failed")).Once()

	err = notifier.Notify(context.Background(), "title", "body")
	require.Error(t, err)
	assert.ErrorContains(t, err, "desktop failed")
	assert.ErrorContains(t, err, "terminal failed")
}

func TestNotifySkipsFallbackOnDeadline(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockNotifier(t)
	fallback := portmocks.NewMockNotifier(t)
	notifier, err := NewNotifier(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Notify(mock.Anything, "title", "body").Return(context.DeadlineExceeded).Once()

	err = notifier.Notify(context.Background(), "title", "body")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewNotifierRejectsNil(t *testing.T) {
	t.Parallel()

	_, err := NewNotifier(nil, portmocks.NewMockNotifier(t))
	assert.ErrorIs(t, err, errNilPrimaryNotifier)

	_, err = NewNotifier(portmocks.NewMockNotifier(t), nil)
	assert.ErrorIs(t, err, errNilFallbackNotifier)
}

func TestDesktopFirstFallbackWritesToTerminal(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	notifier := NewDesktopFirstWithTerminalFallback(&out)
	notifier.primary = failingNotifier{}

	require.NoError(t, notifier.Notify(context.Background(), "title", "body"))
	assert.Equal(t, "\atitle: body\n", out.String())
}

type failingNotifier struct{}

func (failingNotifier) Notify(context.Context, string, string) error {
	return errors.New("no daemon")
}
