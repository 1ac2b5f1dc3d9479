// error_messages.go maps technical errors to coded user messages.
//
// # Error Codes Reference
//
// This file defines user-facing error messages with codes, so a failed run
// can be diagnosed from the console output alone.
//
//	FILE001 - Input not found: the input file does not exist
//	FILE002 - Invalid CSV: unterminated quote, wrong field count
//	FILE004 - Output directory missing: parent directory of the output path
//	FILE005 - Permission denied: input unreadable or output unwritable
//	VAL004  - Missing column: a transform needs a column the input lacks
//	CFG001  - Unknown profile
//	CFG002  - Unknown transform
//	RUN001  - Run cancelled
//	ERR000  - Unknown error; the technical error is logged alongside
//
// Typed checks (errors.Is / errors.As) run first. The pattern table is
// matched case-insensitively with strings.Contains, first match wins.

package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// StageError records which pipeline phase failed.
type StageError struct {
	Stage Phase
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var (
	msgInputNotFound = UserMessage{
		Message: "Input file not found",
		Action:  "Check INPUT_FILE or --input",
		Code:    "FILE001",
	}
	msgInvalidCSV = UserMessage{
		Message: "File is not a valid CSV",
		Action:  "Check for unterminated quotes and rows with a different column count than the header",
		Code:    "FILE002",
	}
	msgOutputDirMissing = UserMessage{
		Message: "Output directory does not exist",
		Action:  "Create the directory for OUTPUT_FILE before running",
		Code:    "FILE004",
	}
	msgPermission = UserMessage{
		Message: "Permission denied",
		Action:  "Check that the input is readable and the output directory is writable",
		Code:    "FILE005",
	}
	msgMissingColumn = UserMessage{
		Message: "Required column is missing from CSV",
		Action:  "Check that the input header contains every column the transforms use",
		Code:    "VAL004",
	}
	msgCancelled = UserMessage{
		Message: "Run was cancelled",
		Action:  "Start the run again",
		Code:    "RUN001",
	}
)

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error text to user messages.
var errorPatterns = []errorPattern{
	{pattern: "missing required column", msg: msgMissingColumn},
	{pattern: "invalid csv", msg: msgInvalidCSV},
	{
		pattern: "unknown profile",
		msg: UserMessage{
			Message: "Unknown profile",
			Action:  "Set CSV_PROFILE to a registered profile",
			Code:    "CFG001",
		},
	},
	{
		pattern: "unknown transform",
		msg: UserMessage{
			Message: "Unknown transform",
			Action:  "Check the names listed in CSV_TRANSFORMS",
			Code:    "CFG002",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log for the technical error",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var stage Phase
	var se *StageError
	if errors.As(err, &se) {
		stage = se.Stage
	}

	var pe *csv.ParseError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return msgCancelled
	case errors.Is(err, ErrMissingColumn):
		return msgMissingColumn
	case errors.As(err, &pe):
		return msgInvalidCSV
	case errors.Is(err, fs.ErrPermission):
		return msgPermission
	case errors.Is(err, fs.ErrNotExist):
		if stage == PhaseWriting {
			return msgOutputDirMissing
		}
		return msgInputNotFound
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
