package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/ports"
)

const (
	CompletionTitle      = "Focus Session Complete"
	defaultNotifyTimeout = 5 * time.Second
)

// NotificationTrigger shows one alert per completed session, and only when
// the user has granted permission. The decision is asked for once and kept
// in the preferences file.
type NotificationTrigger struct {
	prefs    ports.PreferencesRepository
	prompter ports.PermissionPrompter
	notifier ports.Notifier
	logger   *slog.Logger
	timeout  time.Duration

	wg sync.WaitGroup
}

func NewNotificationTrigger(prefs ports.PreferencesRepository, prompter ports.PermissionPrompter, notifier ports.Notifier, logger *slog.Logger) *NotificationTrigger {
	return &NotificationTrigger{
		prefs:    prefs,
		prompter: prompter,
		notifier: notifier,
		logger:   componentLogger(logger, "notification_trigger"),
		timeout:  defaultNotifyTimeout,
	}
}

// Attach subscribes the trigger to the clock's completion transition.
func (n *NotificationTrigger) Attach(clock *SessionClock) {
	clock.OnComplete(n.OnComplete)
}

// EnsurePermission asks for a decision when none has been made. A denial is
// final until reset explicitly.
func (n *NotificationTrigger) EnsurePermission(ctx context.Context) (domain.NotificationPermission, error) {
	prefs, err := n.prefs.Load(ctx)
	if err != nil {
		return domain.PermissionDefault, fmt.Errorf("load preferences: %w", err)
	}
	if prefs.NotificationPermission.Determined() || n.prompter == nil {
		return normalizePermission(prefs.NotificationPermission), nil
	}

	decision, err := n.prompter.RequestPermission(ctx)
	if err != nil {
		return domain.PermissionDefault, fmt.Errorf("request notification permission: %w", err)
	}
	if !decision.Determined() {
		return domain.PermissionDefault, nil
	}

	prefs.NotificationPermission = decision
	if err := n.prefs.Save(ctx, prefs); err != nil {
		return decision, fmt.Errorf("save notification permission: %w", err)
	}

	n.logger.Info("notification permission recorded", slog.String("permission", string(decision)))
	return decision, nil
}

func (n *NotificationTrigger) Permission(ctx context.Context) (domain.NotificationPermission, error) {
	prefs, err := n.prefs.Load(ctx)
	if err != nil {
		return domain.PermissionDefault, fmt.Errorf("load preferences: %w", err)
	}
	return normalizePermission(prefs.NotificationPermission), nil
}

func (n *NotificationTrigger) SetPermission(ctx context.Context, permission domain.NotificationPermission) error {
	if _, err := domain.ParseNotificationPermission(string(permission)); err != nil {
		return err
	}

	prefs, err := n.prefs.Load(ctx)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	prefs.NotificationPermission = permission
	if err := n.prefs.Save(ctx, prefs); err != nil {
		return fmt.Errorf("save notification permission: %w", err)
	}
	return nil
}

// OnComplete delivers the alert in the background so the ticking clock is
// never held up. Wait blocks until pending deliveries finish.
func (n *NotificationTrigger) OnComplete(focus domain.Focus) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.deliver(focus)
	}()
}

func (n *NotificationTrigger) Wait() {
	n.wg.Wait()
}

func (n *NotificationTrigger) deliver(focus domain.Focus) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	permission, err := n.Permission(ctx)
	if err != nil {
		n.logger.Warn("read notification permission", slog.Any("error", err))
		return
	}
	if permission != domain.PermissionGranted {
		n.logger.Debug("notification suppressed", slog.String("permission", string(permission)))
		return
	}
	if n.notifier == nil {
		return
	}

	if err := n.notifier.Notify(ctx, CompletionTitle, CompletionBody(focus)); err != nil {
		n.logger.Warn("send completion notification", slog.Any("error", err))
	}
}

func CompletionBody(focus domain.Focus) string {
	return fmt.Sprintf("Your focus session on %q has ended.", focus.TaskName)
}

func normalizePermission(p domain.NotificationPermission) domain.NotificationPermission {
	if p == "" {
		return domain.PermissionDefault
	}
	return p
}
