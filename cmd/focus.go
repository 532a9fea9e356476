package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bnema/humanos-cli/internal/application"
	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/duration"
	"github.com/spf13/cobra"
)

var errNoActiveFocus = errors.New("no active focus session")

func newFocusCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Manage the deep-work focus session",
	}

	cmd.AddCommand(
		newFocusSetCmd(app),
		newFocusLockCmd(app),
		newFocusClearCmd(app),
		newFocusShowCmd(app),
		newFocusTimerCmd(app),
	)

	return cmd
}

func newFocusSetCmd(app *app) *cobra.Command {
	var in domain.FocusSetInput

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Start a focus session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var focus domain.Focus
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Setting focus...", func(ctx context.Context) error {
				var err error
				focus, err = app.reconciler.SetSession(ctx, in)
				return err
			})
			if err != nil {
				return err
			}

			return printLine(cmd, "Focus set: %s (%s)", focus.TaskName, duration.Format(app.clock.Snapshot().Remaining))
		},
	}

	cmd.Flags().StringVar(&in.TaskName, "task", "", "Task to focus on")
	cmd.Flags().StringVar(&in.Duration, "duration", "", "Session length, e.g. 25m, 1h, 90s")
	cmd.Flags().StringVar(&in.SuccessCriteria, "criteria", "", "What done looks like")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("duration")
	_ = cmd.MarkFlagRequired("criteria")

	return cmd
}

func newFocusLockCmd(app *app) *cobra.Command {
	var in domain.FocusLockInput

	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Lock focus on a task for a timebox",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var focus domain.Focus
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Locking focus...", func(ctx context.Context) error {
				var err error
				focus, err = app.reconciler.LockSession(ctx, in)
				return err
			})
			if err != nil {
				return err
			}

			return printLine(cmd, "Focus locked: %s (%s)", focus.TaskName, duration.Format(app.clock.Snapshot().Remaining))
		},
	}

	cmd.Flags().StringVar(&in.TaskName, "task", "", "Task to lock")
	cmd.Flags().StringVar(&in.Timebox, "timebox", "", "Timebox, e.g. 50m")
	cmd.Flags().StringVar(&in.Fallback, "fallback", "", "Fallback when the timebox runs out")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("timebox")
	_ = cmd.MarkFlagRequired("fallback")

	return cmd
}

func newFocusClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "End the active focus session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cleared bool
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Clearing focus...", func(ctx context.Context) error {
				focus, err := app.reconciler.LoadSession(ctx)
				if err != nil || focus == nil {
					return err
				}
				cleared = true
				return app.reconciler.ClearSession(ctx)
			})
			if err != nil {
				return err
			}

			if !cleared {
				return printLine(cmd, "No active focus session.")
			}
			return printLine(cmd, "Focus cleared.")
		},
	}
}

func newFocusShowCmd(app *app) *cobra.Command {
	var output outputFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active focus session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			focus, err := app.reconciler.LoadSession(cmd.Context())
			if err != nil {
				return err
			}

			if output.structured() {
				return output.write(cmd.OutOrStdout(), focus)
			}
			if focus == nil {
				return printLine(cmd, "No active focus session.")
			}

			return writeFocus(cmd.OutOrStdout(), app.clock.Snapshot())
		},
	}

	output.register(cmd)
	return cmd
}

func writeFocus(w io.Writer, snap application.ClockSnapshot) error {
	focus := snap.Focus
	lock := ""
	if focus.IsLocked {
		lock = " [locked]"
	}

	lines := []string{
		fmt.Sprintf("task:      %s%s", focus.TaskName, lock),
		fmt.Sprintf("remaining: %s (%.0f%%)", duration.Format(snap.Remaining), snap.Percent()),
	}
	if focus.SuccessCriteria != "" {
		lines = append(lines, "done when: "+focus.SuccessCriteria)
	}
	if focus.Fallback != "" {
		lines = append(lines, "fallback:  "+focus.Fallback)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func newFocusTimerCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Count down the active session and alert when it completes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFocusTimer(cmd, app)
		},
	}
}

func runFocusTimer(cmd *cobra.Command, app *app) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	done := make(chan domain.Focus, 1)
	var once sync.Once
	app.clock.OnComplete(func(focus domain.Focus) {
		once.Do(func() { done <- focus })
	})
	app.enableAlerts(ctx)

	focus, err := app.reconciler.LoadSession(ctx)
	if err != nil {
		return err
	}
	if focus == nil {
		return errNoActiveFocus
	}

	go app.clock.Run(ctx, application.DefaultTickInterval)

	out := cmd.OutOrStdout()
	live := isTerminalWriter(out)
	ticker := time.NewTicker(application.DefaultTickInterval)
	defer ticker.Stop()

	if !live {
		if err := printLine(cmd, "%s: %s remaining", focus.TaskName, duration.Format(app.clock.Snapshot().Remaining)); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case completed := <-done:
			if live {
				_, _ = fmt.Fprint(out, "\r\033[K")
			}
			return printLine(cmd, "Focus session complete: %s", completed.TaskName)
		case <-ticker.C:
			if !live {
				continue
			}
			snap := app.clock.Snapshot()
			state := ""
			if snap.Paused {
				state = " (paused)"
			}
			_, _ = fmt.Fprintf(out, "\r\033[K%s  %s  %.0f%%%s", focus.TaskName, duration.Format(snap.Remaining), snap.Percent(), state)
		}
	}
}
