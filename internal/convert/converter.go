package convert

import (
	"encoding/json"
	"log/slog"
	"os"

	"taskport/internal/asana"
	"taskport/internal/csvout"
	"taskport/internal/logging"
	"taskport/internal/reminder"
)

// Options carries every knob one conversion run needs. The zero value is a
// usable English, flatten-enabled, BOM-less dry configuration; callers
// normally populate it from config plus flags.
type Options struct {
	AssigneeEmail    string
	Language         string
	IncludeCompleted bool
	FlattenSubtasks  bool
	BOM              bool
	DryRun           bool
	Logger           *slog.Logger
}

// Result summarizes one converted file.
type Result struct {
	Input      string
	Output     string
	Format     reminder.Format
	Rows       int
	Skipped    int
	Duplicates int
}

// File runs the full pipeline for one input document and writes (or, in dry
// run, pretends to write) the CSV to outputPath.
//
// Deduplication runs before completion filtering so the skip count reflects
// genuinely distinct tasks.
func File(inputPath, outputPath string, opts Options) (Result, error) {
	logger := logging.NewComponentLogger(opts.Logger, "convert")

	result := Result{Input: inputPath, Output: outputPath}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return result, Wrap(ErrIO, inputPath, "read input", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return result, Wrap(ErrMalformedInput, inputPath, "parse json", err)
	}

	result.Format = reminder.DetectFormat(doc)
	if result.Format == reminder.FormatUnknown {
		return result, Wrap(ErrUnusableInput, inputPath, "detect format", nil)
	}
	logger.Debug("detected input format",
		logging.String("path", inputPath),
		logging.String("format", result.Format.String()),
	)

	tasks := reminder.NormalizeAll(reminder.Records(doc))
	deduped := reminder.Deduplicate(tasks)
	result.Duplicates = len(tasks) - len(deduped)
	if result.Duplicates > 0 {
		logger.Debug("dropped duplicate tasks", logging.Int("count", result.Duplicates))
	}

	built := asana.BuildRows(deduped, asana.Options{
		AssigneeEmail:    opts.AssigneeEmail,
		Language:         opts.Language,
		IncludeCompleted: opts.IncludeCompleted,
		FlattenSubtasks:  opts.FlattenSubtasks,
		Logger:           logger,
	})
	result.Skipped = built.Skipped

	rows := make([]map[string]string, len(built.Rows))
	for i, row := range built.Rows {
		rows[i] = row
	}

	columns := asana.Columns(opts.Language, opts.FlattenSubtasks)
	count, err := csvout.Write(outputPath, columns, rows, csvout.Options{
		BOM:    opts.BOM,
		DryRun: opts.DryRun,
	})
	if err != nil {
		return result, Wrap(ErrIO, outputPath, "write csv", err)
	}
	result.Rows = count

	logger.Info("converted file",
		logging.String("input", inputPath),
		logging.String("output", outputPath),
		logging.Int("rows", result.Rows),
		logging.Int("skipped", result.Skipped),
		logging.Int("duplicates", result.Duplicates),
		logging.Bool("dry_run", opts.DryRun),
	)
	return result, nil
}
