package cmd

import (
	"context"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newIngestCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Capture tasks and ideas",
	}

	cmd.AddCommand(
		newIngestTaskCmd(app),
		newIngestIdeaCmd(app),
	)

	return cmd
}

func newIngestTaskCmd(app *app) *cobra.Command {
	var (
		in         domain.TaskInput
		urgency    string
		importance string
	)

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Ingest a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.Urgency, err = domain.ParsePriority(urgency); err != nil {
				return err
			}
			if in.Importance, err = domain.ParsePriority(importance); err != nil {
				return err
			}

			return runReceipt(cmd, "Ingesting task...", func(ctx context.Context) (domain.Receipt, error) {
				return app.capture.IngestTask(ctx, in)
			})
		},
	}

	cmd.Flags().StringVar(&in.Description, "description", "", "Task description")
	cmd.Flags().StringVar(&in.Category, "category", "", "Task category")
	cmd.Flags().StringVar(&urgency, "urgency", string(domain.PriorityMedium), "high, medium or low")
	cmd.Flags().StringVar(&importance, "importance", string(domain.PriorityMedium), "high, medium or low")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newIngestIdeaCmd(app *app) *cobra.Command {
	var in domain.IdeaInput

	cmd := &cobra.Command{
		Use:   "idea",
		Short: "Capture an idea",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReceipt(cmd, "Capturing idea...", func(ctx context.Context) (domain.Receipt, error) {
				return app.capture.IngestIdea(ctx, in)
			})
		},
	}

	cmd.Flags().StringVar(&in.Summary, "summary", "", "One-line idea summary")
	cmd.Flags().StringVar(&in.Storage, "storage", "", "Where the idea is kept")
	cmd.Flags().BoolVar(&in.ActionNow, "now", false, "Act on the idea right away")
	_ = cmd.MarkFlagRequired("summary")
	_ = cmd.MarkFlagRequired("storage")

	return cmd
}

func newArchiveCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Commit finished work to the archive",
	}

	cmd.AddCommand(
		newArchiveCommitCmd(app),
		newArchiveListCmd(app),
	)

	return cmd
}

func newArchiveCommitCmd(app *app) *cobra.Command {
	var in domain.ArchiveInput

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Archive an object with a summary and lesson",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReceipt(cmd, "Archiving...", func(ctx context.Context) (domain.Receipt, error) {
				return app.capture.CommitArchive(ctx, in)
			})
		},
	}

	cmd.Flags().StringVar(&in.Object, "object", "", "What is archived")
	cmd.Flags().StringVar(&in.Summary, "summary", "", "Outcome summary")
	cmd.Flags().StringVar(&in.Lesson, "lesson", "", "Lesson learned")
	_ = cmd.MarkFlagRequired("object")
	_ = cmd.MarkFlagRequired("summary")

	return cmd
}

func newArchiveListCmd(app *app) *cobra.Command {
	var output outputFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived objects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			archives, err := app.capture.ListArchives(cmd.Context())
			if err != nil {
				return err
			}

			if output.structured() {
				return output.write(cmd.OutOrStdout(), archives)
			}
			if len(archives) == 0 {
				return printLine(cmd, "Archive is empty.")
			}

			rows := make([][]string, 0, len(archives))
			for _, archive := range archives {
				rows = append(rows, []string{archive.ID, archive.Object, archive.Summary, archive.Lesson, archive.CreatedAt.Local().Format(timeLayout)})
			}
			return printLine(cmd, "%s", renderTable([]string{"ID", "OBJECT", "SUMMARY", "LESSON", "CREATED"}, rows))
		},
	}

	output.register(cmd)
	return cmd
}

// runReceipt performs a plain mutation and prints the collaborator's
// acknowledgement.
func runReceipt(cmd *cobra.Command, label string, mutate func(context.Context) (domain.Receipt, error)) error {
	var receipt domain.Receipt
	err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), label, func(ctx context.Context) error {
		var err error
		receipt, err = mutate(ctx)
		return err
	})
	if err != nil {
		return err
	}

	if receipt.ID == "" {
		return printLine(cmd, "%s", receipt.Message)
	}
	return printLine(cmd, "%s (%s)", receipt.Message, receipt.ID)
}
