package terminal

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestNotifyWritesBellAndMessage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	notifier := NewNotifier(&out)

	require.NoError(t, notifier.Notify(context.Background(), "Focus Session Complete", "done"))
	assert.Equal(t, "\aFocus Session Complete: done\n", out.String())
}

func TestNotifyWrapsWriteError(t *testing.T) {
	t.Parallel()

	err := NewNotifier(failingWriter{}).Notify(context.Background(), "title", "body")
	require.Error(t, err)
	assert.ErrorContains(t, err, "write terminal notification")
}

func TestNotifyWithNilWriterDiscards(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewNotifier(nil).Notify(context.Background(), "title", "body"))
}
