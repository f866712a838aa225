package csvout

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/flock"
)

// utf8BOM is prepended so Excel and friends detect UTF-8 instead of guessing
// a legacy codepage.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options controls emitter behaviour.
type Options struct {
	BOM    bool
	DryRun bool
}

// Write serializes rows to path in column order, header first. Every field is
// quoted. A header-only file is still produced when rows is empty. The row
// count written (excluding the header) is returned; in dry-run mode nothing
// is touched and the count reflects what would have been written.
func Write(path string, columns []string, rows []map[string]string, opts Options) (int, error) {
	if opts.DryRun {
		return len(rows), nil
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return 0, fmt.Errorf("lock output file: %w", err)
	}
	if !locked {
		return 0, fmt.Errorf("output file %s is locked by another taskport run", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if opts.BOM {
		if _, err := writer.Write(utf8BOM); err != nil {
			return 0, fmt.Errorf("write BOM: %w", err)
		}
	}

	if err := writeLine(writer, columns); err != nil {
		return 0, err
	}
	for _, row := range rows {
		fields := make([]string, len(columns))
		for i, column := range columns {
			fields[i] = row[column]
		}
		if err := writeLine(writer, fields); err != nil {
			return 0, err
		}
	}

	if err := writer.Flush(); err != nil {
		return 0, fmt.Errorf("flush output file: %w", err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("close output file: %w", err)
	}
	return len(rows), nil
}

// writeLine emits one CSV record with every field quoted, CRLF-terminated to
// match what Asana's own exports produce.
func writeLine(writer *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := writer.WriteByte(','); err != nil {
				return err
			}
		}
		if err := writer.WriteByte('"'); err != nil {
			return err
		}
		if _, err := writer.WriteString(strings.ReplaceAll(field, `"`, `""`)); err != nil {
			return err
		}
		if err := writer.WriteByte('"'); err != nil {
			return err
		}
	}
	_, err := writer.WriteString("\r\n")
	return err
}
