package convert

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"taskport/internal/logging"
)

// FileOutcome records how one file of a batch run fared.
type FileOutcome struct {
	Result Result
	Err    error
}

// BatchResult aggregates a directory run.
type BatchResult struct {
	Outcomes   []FileOutcome
	Succeeded  int
	Failed     int
	Rows       int
	Skipped    int
	Duplicates int
}

// Batch converts every *.json file in dir sequentially, writing each CSV next
// to its input (or into outDir when given) with the extension swapped. A
// failing file is counted and logged; the remaining files still run. The
// returned error is only non-nil when the directory itself cannot be read or
// contains no JSON files.
func Batch(dir, outDir string, opts Options) (BatchResult, error) {
	logger := logging.NewComponentLogger(opts.Logger, "batch")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return BatchResult{}, Wrap(ErrIO, dir, "read directory", err)
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			inputs = append(inputs, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(inputs)
	if len(inputs) == 0 {
		return BatchResult{}, Wrap(ErrUnusableInput, dir, "no JSON files found", nil)
	}

	batch := BatchResult{}
	for _, input := range inputs {
		output := batchOutputPath(input, outDir)
		result, err := File(input, output, opts)
		batch.Outcomes = append(batch.Outcomes, FileOutcome{Result: result, Err: err})
		if err != nil {
			batch.Failed++
			logger.Error("file conversion failed",
				logging.String("input", input),
				logging.Error(err),
			)
			continue
		}
		batch.Succeeded++
		batch.Rows += result.Rows
		batch.Skipped += result.Skipped
		batch.Duplicates += result.Duplicates
	}
	return batch, nil
}

func batchOutputPath(input, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".csv"
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}
