package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd, cleanup := newRootCmd()
	defer cleanup()

	return rootCmd.ExecuteContext(ctx)
}

// newRootCmd wires the app and returns the command tree with a cleanup that
// must run once execution returns, whether or not the command failed.
func newRootCmd() (*cobra.Command, func()) {
	app, err := wireApp(os.Stderr)
	return buildRootCmd(app, err)
}

func buildRootCmd(app *app, wireErr error) (*cobra.Command, func()) {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "hos",
		Short:         "Human OS (hos): focus sessions, open loops and threads from the terminal",
		Long:          "hos is a terminal client for the Human OS API. It tracks the active focus session with a local countdown, polls the cognitive status snapshot, and manages open loops, threads and captures.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	if wireErr != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return wireErr
		}
		return rootCmd, func() {}
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			app.logLevel.Set(slog.LevelDebug)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStatusCmd(app),
		newDashboardCmd(app),
		newFocusCmd(app),
		newLoopCmd(app),
		newThreadCmd(app),
		newIngestCmd(app),
		newArchiveCmd(app),
		newEmotionCmd(app),
		newPredictCmd(app),
		newAICmd(app),
		newModeCmd(app),
		newNotifyCmd(app),
	)

	var once sync.Once
	return rootCmd, func() { once.Do(app.close) }
}
