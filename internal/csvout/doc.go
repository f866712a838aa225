// Package csvout serializes ordered row maps to a delimited file.
//
// The emitter quotes every field so embedded commas, quotes, and newlines
// survive the round trip into Asana, and prefixes the file with a UTF-8
// byte-order marker by default so spreadsheet tools pick the right encoding.
// An advisory file lock guards the output path against two concurrent
// invocations interleaving writes. Dry-run mode touches nothing and reports
// the row count that would have been written.
package csvout
