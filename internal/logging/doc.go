// Package logging builds the log/slog loggers used by sixcities.
//
// Records are formatted by lmittmann/tint: without colors when they go to
// the client log file (the terminal belongs to the UI), with colors on
// stderr for the development server. When fluentd forwarding is enabled,
// a FluentHandler is teed next to the file handler and posts every record
// as a flat map tagged "<tag>.<level>".
package logging
