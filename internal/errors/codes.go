// Package errors provides structured error handling for minigrep.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Argument errors (command line)
//   - 2XX: IO errors (input file, output stream)
//   - 3XX: Configuration errors (settings file)
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryArgument indicates a defect in the command line arguments.
	CategoryArgument Category = "ARGUMENT"
	// CategoryIO indicates file and stream I/O errors.
	CategoryIO Category = "IO"
	// CategoryConfig indicates settings-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Error codes organized by category.
const (
	// Argument errors (100-199)
	ErrCodeMissingQuery    = "ERR_101_MISSING_QUERY"
	ErrCodeMissingFilePath = "ERR_102_MISSING_FILE_PATH"
	ErrCodeInvalidFlag     = "ERR_103_INVALID_FLAG"

	// IO errors (200-299)
	ErrCodeFileNotFound   = "ERR_201_FILE_NOT_FOUND"
	ErrCodeFilePermission = "ERR_202_FILE_PERMISSION"
	ErrCodeFileEncoding   = "ERR_203_FILE_ENCODING"
	ErrCodeFileRead       = "ERR_204_FILE_READ"
	ErrCodeOutputWrite    = "ERR_205_OUTPUT_WRITE"

	// Config errors (300-399)
	ErrCodeSettingsInvalid = "ERR_301_SETTINGS_INVALID"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// Process exit statuses reported to the shell.
const (
	ExitOK       = 0
	ExitArgument = 1
	ExitFailure  = 2
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Numeric portion, e.g. "101" from "ERR_101_MISSING_QUERY"
	switch code[4] {
	case '1':
		return CategoryArgument
	case '2':
		return CategoryIO
	case '3':
		return CategoryConfig
	default:
		return CategoryInternal
	}
}
