// Package runner executes one minigrep invocation: load the file, filter its
// lines and emit the matches.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/Aman-CERP/minigrep/internal/config"
	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/output"
	"github.com/Aman-CERP/minigrep/internal/search"
)

// ReadFileFunc loads a whole file. os.ReadFile satisfies it.
type ReadFileFunc func(name string) ([]byte, error)

// Option configures a Runner.
type Option func(*Runner)

// WithReadFile replaces the file loader.
func WithReadFile(fn ReadFileFunc) Option {
	return func(r *Runner) {
		r.readFile = fn
	}
}

// WithLogger sets the logger for run events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// Runner loads, searches and emits. It keeps no state between runs.
type Runner struct {
	out      *output.Writer
	readFile ReadFileFunc
	logger   *slog.Logger
}

// New creates a Runner that writes matching lines to out.
func New(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:      output.New(out),
		readFile: os.ReadFile,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run searches cfg.FilePath() for cfg.Query() and writes each matching line.
//
// The file is read completely before any line is evaluated. Load failures are
// returned as IO errors and nothing is written. ctx is only checked before the
// load; the read itself cannot be interrupted. A done ctx yields an internal
// error wrapping ctx.Err().
func (r *Runner) Run(ctx context.Context, cfg config.Config) error {
	if err := ctx.Err(); err != nil {
		return mgerrors.Wrap(mgerrors.ErrCodeInternal, err)
	}

	start := time.Now()
	mode := "case_sensitive"
	if cfg.IgnoreCase() {
		mode = "case_insensitive"
	}
	r.logger.Debug("search_started",
		slog.String("file", cfg.FilePath()),
		slog.Int("query_len", len(cfg.Query())),
		slog.String("mode", mode))

	contents, err := r.load(cfg.FilePath())
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "load_failed", mgerrors.FormatForLog(err)...)
		return err
	}

	var find search.Func = search.Search
	if cfg.IgnoreCase() {
		find = search.SearchCaseInsensitive
	}
	lines := find(cfg.Query(), contents)

	r.logger.Info("search_complete",
		slog.String("mode", mode),
		slog.Int("bytes", len(contents)),
		slog.Int("matches", len(lines)),
		slog.Duration("duration", time.Since(start)))

	if err := r.out.Lines(lines); err != nil {
		return mgerrors.IOError(mgerrors.ErrCodeOutputWrite, "failed to write results", err)
	}
	return nil
}

// load reads path fully and checks it is valid UTF-8 text.
func (r *Runner) load(path string) (string, error) {
	data, err := r.readFile(path)
	if err != nil {
		return "", loadError(path, err)
	}
	if !utf8.Valid(data) {
		return "", mgerrors.IOError(mgerrors.ErrCodeFileEncoding,
			fmt.Sprintf("cannot read %s: stream did not contain valid UTF-8", path), nil).
			WithDetail("path", path)
	}
	return string(data), nil
}

// loadError classifies a read failure.
func loadError(path string, err error) error {
	code := mgerrors.ErrCodeFileRead
	var suggestion string
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = mgerrors.ErrCodeFileNotFound
		suggestion = "check the file path"
	case errors.Is(err, fs.ErrPermission):
		code = mgerrors.ErrCodeFilePermission
	}

	reason := err.Error()
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		reason = pathErr.Err.Error()
	}

	ce := mgerrors.IOError(code, fmt.Sprintf("cannot read %s: %s", path, reason), err).
		WithDetail("path", path)
	if suggestion != "" {
		ce = ce.WithSuggestion(suggestion)
	}
	return ce
}
