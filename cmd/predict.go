package cmd

import (
	"context"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPredictCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Run and stop scenario predictions",
	}

	cmd.AddCommand(
		newPredictRunCmd(app),
		newPredictStopCmd(app),
	)

	return cmd
}

func newPredictRunCmd(app *app) *cobra.Command {
	var (
		in    domain.PredictionInput
		depth string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start a prediction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.Depth, err = domain.ParsePredictionDepth(depth); err != nil {
				return err
			}

			var prediction domain.Prediction
			err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Starting prediction...", func(ctx context.Context) error {
				var err error
				prediction, err = app.capture.RunPrediction(ctx, in)
				return err
			})
			if err != nil {
				return err
			}

			return printLine(cmd, "Prediction %s: %s (%s)", prediction.Status, prediction.Scenario, prediction.ID)
		},
	}

	cmd.Flags().StringVar(&in.Scenario, "scenario", "", "Scenario to predict")
	cmd.Flags().StringVar(&in.TimeHorizon, "horizon", "", "Time horizon, e.g. 3 months")
	cmd.Flags().StringVar(&depth, "depth", string(domain.DepthMedium), "low, medium or deep")
	_ = cmd.MarkFlagRequired("scenario")
	_ = cmd.MarkFlagRequired("horizon")

	return cmd
}

func newPredictStopCmd(app *app) *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop running predictions whose scenario matches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Stopping predictions...", func(ctx context.Context) error {
				return app.capture.StopPrediction(ctx, topic)
			})
			if err != nil {
				return err
			}

			return printLine(cmd, "Stopped predictions matching %q.", topic)
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Text the scenario contains")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func newAICmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Hand work to the AI assistant",
	}

	cmd.AddCommand(
		newAIOffloadCmd(app),
		newAIAssistCmd(app),
	)

	return cmd
}

func newAIOffloadCmd(app *app) *cobra.Command {
	var in domain.OffloadInput

	cmd := &cobra.Command{
		Use:   "offload",
		Short: "Offload a task to the AI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReceipt(cmd, "Offloading...", func(ctx context.Context) (domain.Receipt, error) {
				return app.capture.Offload(ctx, in)
			})
		},
	}

	cmd.Flags().StringVar(&in.TaskType, "type", "", "Task type, e.g. summarize")
	cmd.Flags().StringVar(&in.Scope, "scope", "", "What the task covers")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("scope")

	return cmd
}

func newAIAssistCmd(app *app) *cobra.Command {
	var in domain.AssistInput

	cmd := &cobra.Command{
		Use:   "assist",
		Short: "Ask the AI for help executing a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReceipt(cmd, "Requesting assistance...", func(ctx context.Context) (domain.Receipt, error) {
				return app.capture.Assist(ctx, in)
			})
		},
	}

	cmd.Flags().StringVar(&in.Task, "task", "", "Task to get help with")
	cmd.Flags().StringVar(&in.AssistanceType, "type", "", "Kind of help, e.g. outline")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
