package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/humanos-cli/internal/adapters/render/dashboard"
	"github.com/spf13/cobra"
)

// staleFactor scales the poll interval into the age after which a status
// snapshot is marked stale.
const staleFactor = 3

func newStatusCmd(app *app) *cobra.Command {
	var (
		output outputFlags
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the cognitive status snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch {
				if output.structured() {
					return errors.New("--watch cannot be combined with --json or --yaml")
				}
				return runDashboard(cmd, app)
			}

			fetch := func(ctx context.Context) error {
				if err := app.poller.Refresh(ctx); err != nil {
					return err
				}
				if output.structured() {
					return nil
				}
				if _, err := app.reconciler.LoadSession(ctx); err != nil {
					app.logger.Warn("load focus for status", slog.Any("error", err))
				}
				if _, err := app.reconciler.RefreshLoops(ctx, ""); err != nil {
					app.logger.Warn("load loops for status", slog.Any("error", err))
				}
				if _, err := app.reconciler.RefreshThreads(ctx); err != nil {
					app.logger.Warn("load threads for status", slog.Any("error", err))
				}
				return nil
			}

			var err error
			if output.structured() {
				err = fetch(cmd.Context())
			} else {
				err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching status...", fetch)
			}
			if err != nil {
				return err
			}

			if output.structured() {
				return output.write(cmd.OutOrStdout(), app.store.Snapshot().Status)
			}

			rendered, err := dashboard.Render(app.view())
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}
			return printLine(cmd, "%s", rendered)
		},
	}

	output.register(cmd)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep polling and show the live dashboard")
	return cmd
}

func (a *app) view() dashboard.View {
	return dashboard.View{
		State:      a.store.Snapshot(),
		Clock:      a.clock.Snapshot(),
		Now:        a.now(),
		StaleAfter: staleFactor * a.pollInterval,
	}
}
