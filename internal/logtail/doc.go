// Package logtail reads the end of the client log file for the in-app log
// view.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays proportional to the number of lines shown rather than the
// size of the file. Lines come back oldest first.
//
//	lines, err := logtail.Read(cfg.LogFile, 400)
//	if err != nil {
//		logger.Warn("read log", "error", err)
//	}
//
// # Parsing
//
// The client writes records through tint without colors:
//
//	2026-10-16 09:12:44 WRN flow failed flow=fetchComments offer_id=42 error="timeout"
//
// Parse splits such a line into time, level, message and the trailing
// key=value attributes so the view can style each part. Abbreviated levels
// are expanded (WRN becomes WARN). Lines that do not match are returned as a
// bare message.
//
// # Error handling
//
// Read returns nil, nil for a missing file. Other I/O errors are wrapped.
// Parse never fails.
package logtail
