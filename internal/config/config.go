// Package config builds the run configuration for a single minigrep
// invocation and loads optional user settings.
package config

import (
	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
)

// IgnoreCaseEnv is the environment variable whose presence enables
// case-insensitive search. Its value is never inspected.
const IgnoreCaseEnv = "IGNORE_CASE"

// LookupEnvFunc reports the value of an environment variable and whether it
// is set. os.LookupEnv satisfies it.
type LookupEnvFunc func(key string) (string, bool)

// Sentinel errors for errors.Is; they match any error with the same code.
var (
	ErrMissingQuery    = mgerrors.ArgumentError(mgerrors.ErrCodeMissingQuery, "missing query argument")
	ErrMissingFilePath = mgerrors.ArgumentError(mgerrors.ErrCodeMissingFilePath, "missing file path argument")
)

// Config is the validated configuration of one run.
// The zero value is not useful; use Build.
type Config struct {
	query      string
	filePath   string
	ignoreCase bool
}

// Query returns the text to search for.
func (c Config) Query() string { return c.query }

// FilePath returns the path of the file to search.
func (c Config) FilePath() string { return c.filePath }

// IgnoreCase reports whether matching ignores letter case.
func (c Config) IgnoreCase() bool { return c.ignoreCase }

// Build assembles a Config from raw process arguments.
//
// args[0] is the program's invocation name and is skipped. The next two
// elements are the query and the file path; anything after them is ignored.
// IgnoreCase is true when lookupEnv reports IGNORE_CASE as set, whatever its
// value. A nil lookupEnv means an empty environment.
func Build(args []string, lookupEnv LookupEnvFunc) (Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) < 1 {
		return Config{}, mgerrors.ArgumentError(mgerrors.ErrCodeMissingQuery,
			"failed to parse query argument").
			WithSuggestion(Usage)
	}
	query := args[0]

	if len(args) < 2 {
		return Config{}, mgerrors.ArgumentError(mgerrors.ErrCodeMissingFilePath,
			"failed to parse file path argument").
			WithSuggestion(Usage)
	}
	filePath := args[1]

	var ignoreCase bool
	if lookupEnv != nil {
		_, ignoreCase = lookupEnv(IgnoreCaseEnv)
	}

	return Config{
		query:      query,
		filePath:   filePath,
		ignoreCase: ignoreCase,
	}, nil
}

// Usage is the one-line synopsis shown with argument errors.
const Usage = "usage: minigrep <query> <file_path>"
