package cmd

import (
	"context"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoopCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loop",
		Short: "Authorize, close and list open loops",
	}

	cmd.AddCommand(
		newLoopAuthorizeCmd(app),
		newLoopCloseCmd(app),
		newLoopKillCmd(app),
		newLoopListCmd(app),
	)

	return cmd
}

func newLoopAuthorizeCmd(app *app) *cobra.Command {
	var (
		in       domain.LoopAuthorizeInput
		priority string
		queue    string
	)

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Open a new loop",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.Priority, err = domain.ParsePriority(priority); err != nil {
				return err
			}
			if in.Queue, err = domain.ParseQueueType(queue); err != nil {
				return err
			}

			var loop domain.Loop
			err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Authorizing loop...", func(ctx context.Context) error {
				var err error
				loop, err = app.reconciler.AuthorizeLoop(ctx, in)
				return err
			})
			if err != nil {
				return err
			}

			return printLine(cmd, "Loop authorized: %s (%s)", loop.Description, loop.ID)
		},
	}

	cmd.Flags().StringVar(&in.Description, "description", "", "What the loop is about")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "high, medium or low")
	cmd.Flags().StringVar(&queue, "queue", string(domain.QueueAction), "action, reference or backburner")
	cmd.Flags().StringVar(&in.Owner, "owner", "me", "Who owns the next step")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newLoopCloseCmd(app *app) *cobra.Command {
	var (
		in      domain.LoopCloseInput
		closure string
	)

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close a loop by id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.ClosureType, err = domain.ParseClosureType(closure); err != nil {
				return err
			}

			err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Closing loop...", func(ctx context.Context) error {
				return app.reconciler.CloseLoop(ctx, in)
			})
			if err != nil {
				return err
			}

			return printLine(cmd, "Loop %s closed (%s).", in.LoopID, in.ClosureType)
		},
	}

	cmd.Flags().StringVar(&in.LoopID, "id", "", "Loop id")
	cmd.Flags().StringVar(&closure, "closure", string(domain.ClosureDone), "done, paused or abandoned")
	cmd.Flags().StringVar(&in.NextStep, "next-step", "", "Optional next step")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newLoopKillCmd(app *app) *cobra.Command {
	var in domain.LoopKillInput

	cmd := &cobra.Command{
		Use:   "kill",
		Short: "Kill every open loop whose description matches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Killing loops...", func(ctx context.Context) error {
				return app.reconciler.KillLoop(ctx, in)
			})
			if err != nil {
				return err
			}

			return printLine(cmd, "Killed loops matching %q. %d open.", in.Description, len(app.store.Snapshot().Loops))
		},
	}

	cmd.Flags().StringVar(&in.Description, "description", "", "Text the loop description contains")
	cmd.Flags().StringVar(&in.Reason, "reason", "", "Why the loops are killed")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func newLoopListCmd(app *app) *cobra.Command {
	var (
		output outputFlags
		queue  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open loops",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter domain.QueueType
			if queue != "" {
				var err error
				if filter, err = domain.ParseQueueType(queue); err != nil {
					return err
				}
			}

			loops, err := app.reconciler.RefreshLoops(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if output.structured() {
				return output.write(cmd.OutOrStdout(), loops)
			}
			if len(loops) == 0 {
				return printLine(cmd, "No open loops.")
			}

			rows := make([][]string, 0, len(loops))
			for _, loop := range loops {
				rows = append(rows, []string{loop.ID, loop.Description, string(loop.Priority), string(loop.Queue), loop.Owner, loop.CreatedAt.Local().Format(timeLayout)})
			}
			return printLine(cmd, "%s", renderTable([]string{"ID", "DESCRIPTION", "PRIORITY", "QUEUE", "OWNER", "CREATED"}, rows))
		},
	}

	output.register(cmd)
	cmd.Flags().StringVar(&queue, "queue", "", "Only list loops in this queue")
	return cmd
}
