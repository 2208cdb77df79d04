package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	graverr "github.com/gravnet/gravctl/pkg/errors"
)

// ErrorOutput represents a structured error for machine-readable output.
type ErrorOutput struct {
	Error ErrorDetail `json:"error" yaml:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code       string            `json:"code" yaml:"code"`
	Message    string            `json:"message" yaml:"message"`
	Details    map[string]string `json:"details,omitempty" yaml:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
	ExitCode   int               `json:"exit_code" yaml:"exit_code"`
}

// FormatError formats an error for display.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}

	switch format {
	case FormatJSON, FormatPrettyJSON, FormatYAML:
		return formatErrorStructured(w, err, format)
	default:
		return formatErrorText(w, err)
	}
}

// formatErrorStructured outputs an error in a machine-readable format.
func formatErrorStructured(w io.Writer, err error, format Format) error {
	detail := ErrorDetail{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		ExitCode: graverr.ExitGeneral,
	}

	var ge *graverr.GravError
	if errors.As(err, &ge) {
		detail = ErrorDetail{
			Code:       ge.Code,
			Message:    ge.Message,
			Details:    ge.Details,
			Suggestion: ge.Suggestion,
			ExitCode:   ge.ExitCode,
		}
	}

	output := ErrorOutput{Error: detail}
	return NewFormatter(format, w).Print(output)
}

// formatErrorText outputs an error in text format.
func formatErrorText(w io.Writer, err error) error {
	var sb strings.Builder

	var ge *graverr.GravError
	if errors.As(err, &ge) {
		sb.WriteString(fmt.Sprintf("Error: %s\n", ge.Message))

		if len(ge.Details) > 0 {
			sb.WriteString("\nDetails:\n")
			for k, v := range ge.Details {
				sb.WriteString(fmt.Sprintf("  %s: %s\n", k, v))
			}
		}

		if ge.Suggestion != "" {
			sb.WriteString(fmt.Sprintf("\nSuggestion: %s\n", ge.Suggestion))
		}
	} else {
		sb.WriteString(fmt.Sprintf("Error: %s\n", err.Error()))
	}

	_, writeErr := w.Write([]byte(sb.String()))
	return writeErr
}

// FormatSuccess formats a success message.
func FormatSuccess(w io.Writer, message string, format Format) error {
	switch format {
	case FormatJSON, FormatPrettyJSON, FormatYAML:
		output := map[string]string{"status": "success", "message": message}
		return NewFormatter(format, w).Print(output)
	default:
		_, err := fmt.Fprintln(w, message)
		return err
	}
}
