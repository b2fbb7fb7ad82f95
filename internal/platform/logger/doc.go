// Package logger provides structured logging functionality for the application
// using Go's standard library log/slog package. Logs are JSON lines; the
// HTTP shell writes them to stdout and the terminal commands to stderr so
// they do not mix with command output.
package logger
