package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/shelf/internal/launch"
	"github.com/roach88/shelf/internal/marks"
	"github.com/roach88/shelf/internal/store"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (unknown mark, non-text path) or usage error
	ExitCommandError = 2 // Environment failure (store unreadable, malformed, unwritable, launch failed)
)

// Error codes shown in text output and in the JSON error envelope.
const (
	ErrCodeGeneric   = "E001" // Generic/unknown error, including usage errors
	ErrCodeNotFound  = "E002" // Mark id not found
	ErrCodeEncoding  = "E003" // Path is not valid text
	ErrCodeIO        = "E004" // Store directory or file could not be read or written
	ErrCodeParse     = "E005" // Store file is malformed
	ErrCodeSerialize = "E006" // Store could not be encoded
	ErrCodeLaunch    = "E007" // Default application could not be started
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classify maps an operation error to its error code and exit code.
func classify(err error) (string, int) {
	code, exit, _ := describe(err)
	return code, exit
}

// describe is classify plus the structured details reported alongside the message.
func describe(err error) (string, int, map[string]string) {
	var (
		notFound  *marks.NotFoundError
		encErr    *marks.EncodingError
		ioErr     *store.IOError
		parseErr  *store.ParseError
		serErr    *store.SerializeError
		launchErr *launch.LaunchError
	)

	switch {
	case errors.As(err, &notFound):
		return ErrCodeNotFound, ExitFailure, map[string]string{"id": notFound.ID}
	case errors.As(err, &encErr):
		return ErrCodeEncoding, ExitFailure, map[string]string{"path": encErr.Path}
	case errors.As(err, &ioErr):
		return ErrCodeIO, ExitCommandError, map[string]string{"op": ioErr.Op, "path": ioErr.Path}
	case errors.As(err, &parseErr):
		return ErrCodeParse, ExitCommandError, map[string]string{"path": parseErr.Path}
	case errors.As(err, &serErr):
		return ErrCodeSerialize, ExitCommandError, nil
	case errors.As(err, &launchErr):
		return ErrCodeLaunch, ExitCommandError, map[string]string{"path": launchErr.Path}
	default:
		return ErrCodeGeneric, GetExitCode(err), nil
	}
}

// commandError wraps an operation failure with the exit code its kind maps to.
func commandError(command string, err error) error {
	_, code := classify(err)
	return WrapExitError(code, command+" failed", err)
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Destination for text-mode errors (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E002", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in JSON mode.
// Text mode prints nothing: mutating commands succeed silently and list
// writes its own lines through Line.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format != "json" {
		return nil
	}
	return json.NewEncoder(f.Writer).Encode(CLIResponse{
		Status: "ok",
		Data:   data,
	})
}

// Line writes one line of text output. It is a no-op in JSON mode.
func (f *OutputFormatter) Line(s string) {
	if f.Format == "json" {
		return
	}
	fmt.Fprintln(f.Writer, s)
}

// Error outputs an error in the configured format.
// JSON errors go to Writer so the envelope stays parseable; text errors go to ErrWriter.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	w := f.GetErrWriter()
	fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(w, "Details: %v\n", details)
	}
	return nil
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
