package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"taskport/internal/asana"
	"taskport/internal/convert"
	"taskport/internal/logging"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		output           string
		assignee         string
		language         string
		includeCompleted bool
		flattenSubtasks  bool
		dryRun           bool
		verbose          bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a reminder JSON export (or a directory of them) to Asana CSV",
		Long: `Convert exported reminder JSON files to the Asana CSV import format.

The input may be a single JSON file (bulk export or single record) or a
directory, in which case every *.json file inside is converted and a summary
tally is printed. Defaults for assignee, language, and output behaviour come
from the configuration file; flags override it per run.

Examples:
  taskport convert reminders_export.json -o asana_tasks.csv
  taskport convert reminders_export.json --assignee john.doe@example.com --language de
  taskport convert exports/ -o converted/ --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			opts := convert.Options{
				AssigneeEmail:    cfg.Output.Assignee,
				Language:         cfg.Output.Language,
				IncludeCompleted: cfg.Output.IncludeCompleted,
				FlattenSubtasks:  cfg.Output.FlattenSubtasks,
				BOM:              cfg.Output.BOM,
				DryRun:           dryRun,
			}
			if cmd.Flags().Changed("assignee") {
				opts.AssigneeEmail = strings.TrimSpace(assignee)
			}
			if cmd.Flags().Changed("language") {
				opts.Language = strings.ToLower(strings.TrimSpace(language))
			}
			if cmd.Flags().Changed("include-completed") {
				opts.IncludeCompleted = includeCompleted
			}
			if cmd.Flags().Changed("flatten-subtasks") {
				opts.FlattenSubtasks = flattenSubtasks
			}
			switch opts.Language {
			case "en", "de":
			default:
				return fmt.Errorf("unsupported language %q (expected en or de)", opts.Language)
			}

			logger, err := logging.New(logging.Options{
				Level:   cfg.Logging.Level,
				Format:  cfg.Logging.Format,
				Writer:  cmd.ErrOrStderr(),
				Verbose: verbose,
			})
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			logger = logger.With(logging.String("run_id", uuid.NewString()))
			opts.Logger = logger

			if opts.AssigneeEmail != "" {
				logger.Debug("assignee resolved",
					logging.String("email", opts.AssigneeEmail),
					logging.String("name", asana.DisplayName(opts.AssigneeEmail)),
				)
			}

			input := args[0]
			info, err := os.Stat(input)
			if err != nil {
				return fmt.Errorf("stat input: %w", err)
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(out, "[dry run] no files will be written")
			}

			if info.IsDir() {
				return runBatch(cmd, input, output, opts)
			}

			target := strings.TrimSpace(output)
			if target == "" {
				target = cfg.Output.DefaultFile
			}
			result, err := convert.File(input, target, opts)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(out, "Would write %d rows to %s\n", result.Rows, target)
				return nil
			}
			fmt.Fprintf(out, "Converted %s: %d rows written to %s (%d skipped, %d duplicates)\n",
				input, result.Rows, target, result.Skipped, result.Duplicates)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file, or output directory for batch input")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Email address stamped into the Assignee Email column")
	cmd.Flags().StringVar(&language, "language", "", "Language for Asana field names and values (en or de)")
	cmd.Flags().BoolVar(&includeCompleted, "include-completed", false, "Include completed tasks in the output")
	cmd.Flags().BoolVar(&flattenSubtasks, "flatten-subtasks", true, "Emit subtasks as their own rows linked by Parent task")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the pipeline without writing files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose per-record output")

	return cmd
}

func runBatch(cmd *cobra.Command, dir, outDir string, opts convert.Options) error {
	batch, err := convert.Batch(dir, strings.TrimSpace(outDir), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderBatchSummary(out, batch))
	fmt.Fprintf(out, "%d succeeded, %d failed, %d rows, %d skipped, %d duplicates\n",
		batch.Succeeded, batch.Failed, batch.Rows, batch.Skipped, batch.Duplicates)

	if batch.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", batch.Failed, len(batch.Outcomes))
	}
	return nil
}
