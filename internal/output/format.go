// Package output provides output formatting for the gravctl CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

// Output format constants.
const (
	FormatYAML       Format = "yaml"
	FormatJSON       Format = "json"
	FormatPrettyJSON Format = "prettyjson"
	FormatText       Format = "text"
	FormatAuto       Format = "auto"
)

// Formatter handles output formatting.
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter with the specified format.
func NewFormatter(format Format, w io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: w,
	}
}

// Format returns the current output format.
func (f *Formatter) Format() Format {
	return f.format
}

// Writer returns the output writer.
func (f *Formatter) Writer() io.Writer {
	return f.writer
}

// IsMachine returns true for machine-readable formats.
func (f *Formatter) IsMachine() bool {
	return f.format == FormatJSON || f.format == FormatPrettyJSON || f.format == FormatYAML
}

// Print writes a value in the configured format.
func (f *Formatter) Print(v any) error {
	switch f.format {
	case FormatJSON:
		return f.printJSON(v, false)
	case FormatPrettyJSON:
		return f.printJSON(v, true)
	case FormatText:
		return f.printText(v)
	default:
		return f.printYAML(v)
	}
}

// Printf writes formatted text output.
func (f *Formatter) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(f.writer, format, args...)
	return err
}

// Println writes a line of text output.
func (f *Formatter) Println(args ...any) error {
	_, err := fmt.Fprintln(f.writer, args...)
	return err
}

// printYAML outputs YAML format.
func (f *Formatter) printYAML(v any) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// printJSON outputs JSON format, optionally indented.
func (f *Formatter) printJSON(v any, pretty bool) error {
	encoder := json.NewEncoder(f.writer)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

// printText outputs text format.
func (f *Formatter) printText(v any) error {
	switch val := v.(type) {
	case string:
		_, err := fmt.Fprintln(f.writer, val)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.writer, val.String())
		return err
	default:
		_, err := fmt.Fprintf(f.writer, "%v\n", val)
		return err
	}
}

// DetectFormat determines the appropriate format based on context.
// Returns YAML for TTY output, compact JSON for pipes, unless explicitly
// overridden.
func DetectFormat(w io.Writer, explicit Format) Format {
	if explicit != FormatAuto {
		return explicit
	}

	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) { //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
			return FormatYAML
		}
	}

	return FormatJSON
}

// ParseFormat parses a format string.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	case "prettyjson", "pretty-json":
		return FormatPrettyJSON
	case "text":
		return FormatText
	default:
		return FormatAuto
	}
}
