// Package logging provides opt-in structured logging for minigrep.
//
// stdout carries match results and stderr carries the error description, so
// nothing is logged unless --debug is passed or a log file is configured in
// the user settings. Logs are JSON lines written to a size-rotated file,
// by default ~/.minigrep/logs/minigrep.log.
package logging
