package cmd

import (
	"context"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newThreadCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thread",
		Short: "Spawn, background and terminate threads",
	}

	cmd.AddCommand(
		newThreadSpawnCmd(app),
		newThreadBackgroundCmd(app),
		newThreadTerminateCmd(app),
		newThreadListCmd(app),
	)

	return cmd
}

func newThreadSpawnCmd(app *app) *cobra.Command {
	var (
		in   domain.ThreadSpawnInput
		mode string
	)

	cmd := &cobra.Command{
		Use:   "spawn",
		Short: "Start a new thread",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.Mode, err = domain.ParseThreadMode(mode); err != nil {
				return err
			}

			var thread domain.Thread
			err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Spawning thread...", func(ctx context.Context) error {
				var err error
				thread, err = app.reconciler.SpawnThread(ctx, in)
				return err
			})
			if err != nil {
				return err
			}

			return printLine(cmd, "Thread spawned: %s [%s] (%s)", thread.Name, thread.Mode, thread.ID)
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Thread name")
	cmd.Flags().StringVar(&mode, "mode", string(domain.ThreadModeForeground), "foreground or background")
	cmd.Flags().StringVar(&in.TimeScope, "scope", "today", "Time scope, e.g. today, this week")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newThreadBackgroundCmd(app *app) *cobra.Command {
	var in domain.ThreadBackgroundInput

	cmd := &cobra.Command{
		Use:   "background",
		Short: "Park a thread in the background with a goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Moving thread...", func(ctx context.Context) error {
				return app.reconciler.MoveThreadToBackground(ctx, in)
			})
			if err != nil {
				return err
			}

			return printLine(cmd, "Thread %s moved to the background.", in.Name)
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Thread name")
	cmd.Flags().StringVar(&in.Goal, "goal", "", "What the thread works toward")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func newThreadTerminateCmd(app *app) *cobra.Command {
	var rule string

	cmd := &cobra.Command{
		Use:   "terminate",
		Short: "Terminate threads matching a rule",
		Long:  "Terminate threads matching a rule. The rule \"keep only today's tasks\" ends every thread created before today; any other rule ends threads whose name or time scope contains it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Terminating threads...", func(ctx context.Context) error {
				return app.reconciler.TerminateThreads(ctx, rule)
			})
			if err != nil {
				return err
			}

			return printLine(cmd, "Threads terminated by rule %q. %d active.", rule, len(app.store.Snapshot().Threads))
		},
	}

	cmd.Flags().StringVar(&rule, "rule", "", "Termination rule")
	_ = cmd.MarkFlagRequired("rule")

	return cmd
}

func newThreadListCmd(app *app) *cobra.Command {
	var output outputFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active threads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			threads, err := app.reconciler.RefreshThreads(cmd.Context())
			if err != nil {
				return err
			}

			if output.structured() {
				return output.write(cmd.OutOrStdout(), threads)
			}
			if len(threads) == 0 {
				return printLine(cmd, "No active threads.")
			}

			rows := make([][]string, 0, len(threads))
			for _, thread := range threads {
				detail := thread.TimeScope
				if thread.Goal != "" {
					detail = thread.Goal
				}
				rows = append(rows, []string{thread.ID, thread.Name, string(thread.Mode), detail, thread.CreatedAt.Local().Format(timeLayout)})
			}
			return printLine(cmd, "%s", renderTable([]string{"ID", "NAME", "MODE", "SCOPE/GOAL", "CREATED"}, rows))
		},
	}

	output.register(cmd)
	return cmd
}
