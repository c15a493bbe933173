// Package logger sets up the log/slog JSON logger shared by the server and
// the studygen CLI. The server logs to stdout; the CLI passes stderr to
// SetupWithWriter so stdout carries only generated material. Callers pass
// error values through the redact package before logging them, and the
// caller's API key is never a log attribute.
//
// NewTestLogger and TestLogBuffer capture JSON output for assertions in
// other packages' tests.
package logger
