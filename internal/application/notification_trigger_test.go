package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsurePermissionPromptsOnceAndPersists(t *testing.T) {
	prefs := mocks.NewMockPreferencesRepository(t)
	prompter := mocks.NewMockPermissionPrompter(t)
	trigger := NewNotificationTrigger(prefs, prompter, nil, nil)

	prefs.EXPECT().Load(mockAnyContext()).Return(domain.Preferences{}, nil).Once()
	prompter.EXPECT().RequestPermission(mockAnyContext()).Return(domain.PermissionGranted, nil).Once()
	prefs.EXPECT().Save(mockAnyContext(), domain.Preferences{NotificationPermission: domain.PermissionGranted}).Return(nil).Once()

	got, err := trigger.EnsurePermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionGranted, got)
}

func TestEnsurePermissionNeverReasksAfterDenial(t *testing.T) {
	prefs := mocks.NewMockPreferencesRepository(t)
	prompter := mocks.NewMockPermissionPrompter(t)
	trigger := NewNotificationTrigger(prefs, prompter, nil, nil)

	prefs.EXPECT().Load(mockAnyContext()).Return(domain.Preferences{NotificationPermission: domain.PermissionDenied}, nil)

	for range 3 {
		got, err := trigger.EnsurePermission(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.PermissionDenied, got)
	}
}

func TestEnsurePermissionUndecidedIsNotPersisted(t *testing.T) {
	prefs := mocks.NewMockPreferencesRepository(t)
	prompter := mocks.NewMockPermissionPrompter(t)
	trigger := NewNotificationTrigger(prefs, prompter, nil, nil)

	prefs.EXPECT().Load(mockAnyContext()).Return(domain.Preferences{NotificationPermission: domain.PermissionDefault}, nil)
	prompter.EXPECT().RequestPermission(mockAnyContext()).Return(domain.PermissionDefault, nil)

	got, err := trigger.EnsurePermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionDefault, got)
}

func TestEnsurePermissionPropagatesLoadError(t *testing.T) {
	prefs := mocks.NewMockPreferencesRepository(t)
	trigger := NewNotificationTrigger(prefs, nil, nil, nil)
	prefs.EXPECT().Load(mockAnyContext()).Return(domain.Preferences{}, errors.New("decode preferences file"))

	_, err := trigger.EnsurePermission(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load preferences")
}

func TestOnCompleteNotifiesWhenGranted(t *testing.T) {
	prefs := mocks.NewMockPreferencesRepository(t)
	notifier := mocks.NewMockNotifier(t)
	trigger := NewNotificationTrigger(prefs, nil, notifier, nil)

	prefs.EXPECT().Load(mockAnyContext()).Return(domain.Preferences{NotificationPermission: domain.PermissionGranted}, nil)
	notifier.EXPECT().Notify(mockAnyContext(), "Focus Session Complete", `Your focus session on "Write" has ended.`).Return(nil).Once()

	trigger.OnComplete(domain.Focus{TaskName: "Write"})
	trigger.Wait()
}

func TestOnCompleteIsSilentWithoutPermission(t *testing.T) {
	for _, permission := range []domain.NotificationPermission{domain.PermissionDefault, domain.PermissionDenied, ""} {
		t.Run(string(permission), func(t *testing.T) {
			prefs := mocks.NewMockPreferencesRepository(t)
			notifier := mocks.NewMockNotifier(t)
			trigger := NewNotificationTrigger(prefs, nil, notifier, nil)
			prefs.EXPECT().Load(mockAnyContext()).Return(domain.Preferences{NotificationPermission: permission}, nil)

			trigger.OnComplete(domain.Focus{TaskName: "Write"})
			trigger.Wait()
		})
	}
}

func TestOnCompleteSwallowsNotifierErrors(t *testing.T) {
	prefs := mocks.NewMockPreferencesRepository(t)
	notifier := mocks.NewMockNotifier(t)
	trigger := NewNotificationTrigger(prefs, nil, notifier, nil)
	prefs.EXPECT().Load(mockAnyContext()).Return(domain.Preferences{NotificationPermission: domain.PermissionGranted}, nil)
	notifier.EXPECT().Notify(mockAnyContext(), CompletionTitle, CompletionBody(domain.Focus{TaskName: "x"})).Return(errors.New("no display"))

	assert.NotPanics(t, func() {
		trigger.OnComplete(domain.Focus{TaskName: "x"})
		trigger.Wait()
	})
}

func TestSetPermissionRejectsUnknownValue(t *testing.T) {
	trigger := NewNotificationTrigger(mocks.NewMockPreferencesRepository(t), nil, nil, nil)

	err := trigger.SetPermission(context.Background(), "sometimes")
	assert.ErrorIs(t, err, domain.ErrInvalidPermission)
}

func TestExpiringSessionNotifiesExactlyOnce(t *testing.T) {
	prefs := mocks.NewMockPreferencesRepository(t)
	notifier := mocks.NewMockNotifier(t)
	trigger := NewNotificationTrigger(prefs, nil, notifier, nil)
	sc := NewSessionClock(newMovableClock(t, testNow), nil)
	trigger.Attach(sc)

	prefs.EXPECT().Load(mockAnyContext()).Return(domain.Preferences{NotificationPermission: domain.PermissionGranted}, nil)
	notifier.EXPECT().Notify(mockAnyContext(), CompletionTitle, `Your focus session on "Deep work" has ended.`).Return(nil).Once()

	focus := &domain.Focus{
		ID:        "f-1",
		TaskName:  "Deep work",
		Duration:  "25m",
		StartedAt: testNow.Add(-(24*time.Minute + 59*time.Second)),
	}
	sc.Load(focus)
	sc.Tick()
	sc.Tick()
	sc.Load(focus)
	trigger.Wait()

	assert.Equal(t, ClockComplete, sc.Snapshot().State)
}
