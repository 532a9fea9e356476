package cmd

import (
	"context"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newEmotionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emotion",
		Short: "Tag emotional state and decompress",
	}

	cmd.AddCommand(
		newEmotionTagCmd(app),
		newEmotionDecompressCmd(app),
		newEmotionListCmd(app),
	)

	return cmd
}

func newEmotionTagCmd(app *app) *cobra.Command {
	var in domain.EmotionInput

	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Tag the current emotion and its likely source",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var emotion domain.EmotionalState
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Tagging emotion...", func(ctx context.Context) error {
				var err error
				emotion, err = app.capture.TagEmotion(ctx, in)
				return err
			})
			if err != nil {
				return err
			}

			return printLine(cmd, "Emotion tagged: %s (%s)", emotion.Label, emotion.ID)
		},
	}

	cmd.Flags().StringVar(&in.Label, "label", "", "Emotion label, e.g. anxious")
	cmd.Flags().StringVar(&in.SourceGuess, "source", "", "Best guess at the source")
	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func newEmotionDecompressCmd(app *app) *cobra.Command {
	var in domain.DecompressInput

	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Start a decompression routine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReceipt(cmd, "Starting decompression...", func(ctx context.Context) (domain.Receipt, error) {
				return app.capture.Decompress(ctx, in)
			})
		},
	}

	cmd.Flags().StringVar(&in.Method, "method", "", "Method, e.g. walk, breathing")
	cmd.Flags().StringVar(&in.Duration, "duration", "", "How long, e.g. 10m")
	_ = cmd.MarkFlagRequired("method")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func newEmotionListCmd(app *app) *cobra.Command {
	var output outputFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tagged emotions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			emotions, err := app.capture.ListEmotions(cmd.Context())
			if err != nil {
				return err
			}

			if output.structured() {
				return output.write(cmd.OutOrStdout(), emotions)
			}
			if len(emotions) == 0 {
				return printLine(cmd, "No emotions tagged.")
			}

			rows := make([][]string, 0, len(emotions))
			for _, emotion := range emotions {
				rows = append(rows, []string{emotion.Label, emotion.SourceGuess, emotion.CreatedAt.Local().Format(timeLayout)})
			}
			return printLine(cmd, "%s", renderTable([]string{"LABEL", "SOURCE", "TAGGED"}, rows))
		},
	}

	output.register(cmd)
	return cmd
}
