// Package errors provides the structured error type used across the engine.
//
// Every error carries a stable code and a category so that logs, the error
// view, and tests can identify failures without string matching. Ordinary
// negative outcomes (no route matched, no transition yet) are represented as
// values, not errors; only genuinely exceptional conditions use this package.
package errors
