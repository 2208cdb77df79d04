// Package errors provides structured error handling for gravctl.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes reported to the shell.
const (
	ExitSuccess  = 0 // Successful execution
	ExitGeneral  = 1 // General/unknown error
	ExitInput    = 2 // Invalid input
	ExitNotFound = 4 // Resource not found
)

// GravError is the structured error type for gravctl.
type GravError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *GravError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *GravError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for GravError.
func (e *GravError) Is(target error) bool {
	var t *GravError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &GravError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &GravError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	ErrNotFound = &GravError{
		Code:     "NOT_FOUND",
		Message:  "resource not found",
		ExitCode: ExitNotFound,
	}

	// Key derivation errors.
	ErrInvalidEntropyLength = &GravError{
		Code:     "INVALID_ENTROPY_LENGTH",
		Message:  "entropy length must be 128, 160, 192, 224 or 256 bits",
		ExitCode: ExitInput,
	}

	ErrUnknownWord = &GravError{
		Code:     "UNKNOWN_WORD",
		Message:  "mnemonic contains a word outside the wordlist",
		ExitCode: ExitInput,
	}

	ErrChecksumMismatch = &GravError{
		Code:     "CHECKSUM_MISMATCH",
		Message:  "mnemonic checksum verification failed",
		ExitCode: ExitInput,
	}

	ErrInvalidPathSyntax = &GravError{
		Code:     "INVALID_PATH_SYNTAX",
		Message:  "invalid derivation path",
		ExitCode: ExitInput,
	}

	ErrDerivationArithmetic = &GravError{
		Code:     "DERIVATION_ARITHMETIC",
		Message:  "derived scalar is outside the valid curve range",
		ExitCode: ExitGeneral,
	}

	ErrInvalidKeyMaterial = &GravError{
		Code:     "INVALID_KEY_MATERIAL",
		Message:  "private key scalar is zero or exceeds the curve order",
		ExitCode: ExitGeneral,
	}

	ErrEncoding = &GravError{
		Code:     "ENCODING_ERROR",
		Message:  "key or address encoding failed",
		ExitCode: ExitGeneral,
	}

	// Chain client errors.
	ErrInvalidAddress = &GravError{
		Code:     "INVALID_ADDRESS",
		Message:  "invalid account address",
		ExitCode: ExitInput,
	}

	ErrInvalidAmount = &GravError{
		Code:     "INVALID_AMOUNT",
		Message:  "invalid token amount",
		ExitCode: ExitInput,
	}

	ErrNetwork = &GravError{
		Code:     "NETWORK_ERROR",
		Message:  "network communication failed",
		ExitCode: ExitGeneral,
	}

	ErrTxRejected = &GravError{
		Code:     "TX_REJECTED",
		Message:  "transaction rejected by network",
		ExitCode: ExitGeneral,
	}

	ErrAccountNotFound = &GravError{
		Code:     "ACCOUNT_NOT_FOUND",
		Message:  "account not found on chain",
		ExitCode: ExitNotFound,
	}

	// Config errors.
	ErrConfigNotFound = &GravError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitNotFound,
	}

	ErrConfigInvalid = &GravError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}

	ErrInvalidFormat = &GravError{
		Code:     "INVALID_FORMAT",
		Message:  "invalid output format",
		ExitCode: ExitInput,
	}
)

// New creates a new GravError with the given code and message.
func New(code, message string) *GravError {
	return &GravError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var ge *GravError
	if errors.As(err, &ge) {
		return &GravError{
			Code:       ge.Code,
			Message:    fmt.Sprintf("%s: %s", msg, ge.Message),
			Details:    ge.Details,
			Suggestion: ge.Suggestion,
			Cause:      err,
			ExitCode:   ge.ExitCode,
		}
	}

	return &GravError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var ge *GravError
	if errors.As(err, &ge) {
		return &GravError{
			Code:       ge.Code,
			Message:    ge.Message,
			Details:    details,
			Suggestion: ge.Suggestion,
			Cause:      ge.Cause,
			ExitCode:   ge.ExitCode,
		}
	}

	return &GravError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var ge *GravError
	if errors.As(err, &ge) {
		return &GravError{
			Code:       ge.Code,
			Message:    ge.Message,
			Details:    ge.Details,
			Suggestion: suggestion,
			Cause:      ge.Cause,
			ExitCode:   ge.ExitCode,
		}
	}

	return &GravError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ge *GravError
	if errors.As(err, &ge) {
		return ge.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var ge *GravError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
