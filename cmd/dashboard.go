package cmd

import (
	"context"
	"log/slog"

	"github.com/bnema/humanos-cli/internal/adapters/render/dashboard"
	"github.com/bnema/humanos-cli/internal/application"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the live dashboard (same as status --watch)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, app)
		},
	}
}

// runDashboard mounts the live view: the poller and the countdown run until
// the user quits, then both are torn down.
func runDashboard(cmd *cobra.Command, app *app) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app.enableAlerts(ctx)

	if _, err := app.reconciler.LoadSession(ctx); err != nil {
		app.logger.Warn("load focus session", slog.Any("error", err))
		app.toasts.Error("Could not load the focus session")
	}
	if _, err := app.reconciler.RefreshLoops(ctx, ""); err != nil {
		app.logger.Warn("load loops", slog.Any("error", err))
	}
	if _, err := app.reconciler.RefreshThreads(ctx); err != nil {
		app.logger.Warn("load threads", slog.Any("error", err))
	}

	app.poller.Start(ctx, app.pollInterval)
	defer app.poller.Stop()

	go app.clock.Run(ctx, application.DefaultTickInterval)

	updates, unsubscribe := app.store.Subscribe()
	defer unsubscribe()

	model := dashboard.NewLiveModel(ctx, app.view, updates, liveActions{app: app})
	return dashboard.RunLive(ctx, model, cmd.InOrStdin(), cmd.OutOrStdout())
}

// enableAlerts asks for notification permission when none is stored and
// subscribes the trigger to session completion.
func (a *app) enableAlerts(ctx context.Context) {
	if _, err := a.trigger.EnsurePermission(ctx); err != nil {
		a.logger.Warn("notification permission", slog.Any("error", err))
	}
	a.trigger.Attach(a.clock)
}

type liveActions struct {
	app *app
}

var _ dashboard.Actions = liveActions{}

func (l liveActions) TogglePause() bool {
	if l.app.clock.Pause() {
		l.app.toasts.Info("Timer paused")
		return true
	}
	if l.app.clock.Resume() {
		l.app.toasts.Info("Timer resumed")
	}
	return false
}

func (l liveActions) ClearFocus(ctx context.Context) error {
	if err := l.app.reconciler.ClearSession(ctx); err != nil {
		l.app.toasts.Error("Failed to clear focus")
		return err
	}

	l.app.toasts.Success("Focus cleared")
	if err := l.app.poller.Refresh(ctx); err != nil {
		l.app.logger.Debug("refresh after clear", slog.Any("error", err))
	}
	return nil
}

func (l liveActions) Refresh(ctx context.Context) error {
	if err := l.app.poller.Refresh(ctx); err != nil {
		l.app.toasts.Error("Refresh failed")
		return err
	}
	return nil
}
