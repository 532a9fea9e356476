package cmd

import (
	"fmt"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newNotifyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Manage session completion alerts",
	}

	cmd.AddCommand(newNotifyPermissionCmd(app))
	return cmd
}

func newNotifyPermissionCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "permission [grant|deny|reset]",
		Short:     "Show or change the stored alert permission",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"grant", "deny", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				permission, err := app.trigger.Permission(cmd.Context())
				if err != nil {
					return err
				}
				return printLine(cmd, "notifications: %s (%s)", permission, app.prefs.Path())
			}

			var permission domain.NotificationPermission
			switch args[0] {
			case "grant":
				permission = domain.PermissionGranted
			case "deny":
				permission = domain.PermissionDenied
			case "reset":
				permission = domain.PermissionDefault
			default:
				return fmt.Errorf("unknown permission action %q", args[0])
			}

			if err := app.trigger.SetPermission(cmd.Context(), permission); err != nil {
				return err
			}
			return printLine(cmd, "notifications: %s", permission)
		},
	}
}
