package formatter

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	FormatPlain OutputFormat = "plain" // fields joined by the separator, one line per record
	FormatJSON  OutputFormat = "json"  // one JSON array per line
	FormatYAML  OutputFormat = "yaml"  // a YAML sequence of sequences
	FormatCSV   OutputFormat = "csv"
)

// DefaultSeparator joins fields in plain output
const DefaultSeparator = " "

// Formats lists every supported format
var Formats = []OutputFormat{FormatPlain, FormatJSON, FormatYAML, FormatCSV}

// IsValidOutputFormat checks if the output format is valid
func IsValidOutputFormat(format string) bool {
	f := OutputFormat(strings.ToLower(format))
	return f == FormatPlain || f == FormatJSON || f == FormatYAML || f == FormatCSV
}

// Formatter writes records as they are produced. Call Flush when done.
type Formatter struct {
	Format    OutputFormat
	Separator string

	output *bufio.Writer
	csv    *csv.Writer
	json   *json.Encoder
}

// NewFormatter creates a new record formatter
func NewFormatter(format OutputFormat, output io.Writer, separator string) (*Formatter, error) {
	format = OutputFormat(strings.ToLower(string(format)))
	if !IsValidOutputFormat(string(format)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOutputFormat, format)
	}

	f := &Formatter{
		Format:    format,
		Separator: separator,
		output:    bufio.NewWriter(output),
	}

	switch format {
	case FormatCSV:
		f.csv = csv.NewWriter(f.output)
	case FormatJSON:
		f.json = json.NewEncoder(f.output)
		f.json.SetEscapeHTML(false)
	}

	return f, nil
}

// Write formats one record
func (f *Formatter) Write(fields []string) error {
	switch f.Format {
	case FormatJSON:
		return f.formatAsJSON(fields)
	case FormatYAML:
		return f.formatAsYAML(fields)
	case FormatCSV:
		return f.formatAsCSV(fields)
	default:
		return f.formatAsPlain(fields)
	}
}

// Flush writes any buffered output
func (f *Formatter) Flush() error {
	if f.csv != nil {
		f.csv.Flush()
		if err := f.csv.Error(); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	return f.output.Flush()
}

func (f *Formatter) formatAsPlain(fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if _, err := f.output.WriteString(f.Separator); err != nil {
				return err
			}
		}
		if _, err := f.output.WriteString(field); err != nil {
			return err
		}
	}

	return f.output.WriteByte('\n')
}

func (f *Formatter) formatAsJSON(fields []string) error {
	if fields == nil {
		fields = []string{}
	}

	return f.json.Encode(fields)
}

// formatAsYAML writes each record as one item so that the concatenated
// output forms a single sequence.
func (f *Formatter) formatAsYAML(fields []string) error {
	if fields == nil {
		fields = []string{}
	}

	data, err := yaml.Marshal([][]string{fields})
	if err != nil {
		return fmt.Errorf("failed to marshal record to YAML: %w", err)
	}
	_, err = f.output.Write(data)

	return err
}

func (f *Formatter) formatAsCSV(fields []string) error {
	if err := f.csv.Write(fields); err != nil {
		return fmt.Errorf("failed to write CSV record: %w", err)
	}

	return nil
}
