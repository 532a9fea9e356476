package cmd

import (
	"context"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newModeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Reset cognitive state",
	}

	cmd.AddCommand(
		newResetCmd(app, "reset-soft", "Clear focus, loops, threads and predictions; keep archives", domain.ResetSoft),
		newResetCmd(app, "reset-hard", "Wipe all cognitive state", domain.ResetHard),
	)

	return cmd
}

func newResetCmd(app *app, use, short string, kind domain.ResetKind) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReceipt(cmd, "Resetting...", func(ctx context.Context) (domain.Receipt, error) {
				return app.capture.Reset(ctx, kind)
			})
		},
	}
}
