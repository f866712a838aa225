// Package convert wires the conversion pipeline end to end: read a JSON
// export, detect its shape, normalize records, drop duplicates, build Asana
// rows, and emit the CSV.
//
// Per-record anomalies (missing fields, unparseable dates) are absorbed inside
// the lower layers and never surface here. What does surface is classified by
// the sentinel errors in this package: malformed or unusable documents and
// I/O failures. Batch mode maps the single-file pipeline over a directory and
// keeps going when individual files fail, so one bad export cannot sink the
// rest of the run.
package convert
