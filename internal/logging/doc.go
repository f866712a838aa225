// Package logging assembles the structured slog loggers used across taskport.
//
// It centralizes level and format parsing, exposes typed attribute aliases so
// call sites stay terse, and provides a no-op logger for tests and wiring code
// that cannot fail. Prefer these constructors over hand-rolled slog setup so
// every component emits log lines with the same shape.
package logging
