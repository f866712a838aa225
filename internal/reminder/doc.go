// Package reminder models exported reminder records and turns them into a
// schema-agnostic form.
//
// Two historical export schemas coexist: the legacy exporter used capitalized
// English keys ("Title", "Is Completed"), while the current shortcut-based
// export uses lowercase keys with German yes/no markers ("done" == "Ja") and
// adds tags, subtasks, and extended metadata. This package detects the
// document shape (bulk vs single record), resolves the schema per record, and
// normalizes everything into the Task type consumed by the row builder.
//
// Hashtag extraction, tag merging, and cross-schema deduplication live here
// because they operate on source semantics rather than output formatting.
package reminder
