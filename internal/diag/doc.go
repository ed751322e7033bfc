// Package diag defines the diagnostic model shared by the lexer and the
// driver layer.
//
// Diagnostic is the central record: Severity, Code, Message, and the
// primary source.Span. Producers emit through a Reporter so they never
// couple to storage; BagReporter aggregates into a Bag, which supports
// sorting, deduplication, and a hard cap.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
package diag
