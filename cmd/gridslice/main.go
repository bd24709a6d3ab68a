package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/shibukawa/gridslice"
	"github.com/shibukawa/gridslice/formatter"
	"github.com/shibukawa/gridslice/parser"
	"github.com/shibukawa/gridslice/slicer"
)

const version = "gridslice v0.1.0"

// ErrNoExpression is returned when the expression argument is missing
var ErrNoExpression = errors.New("missing slice expression")

// CLI represents the command-line interface
type CLI struct {
	Expression string `arg:"" help:"Slice expression, e.g. 'l1:L4' or '!f0:F-1:2'"`
	File       string `arg:"" optional:"" help:"Input file (default: standard input)" type:"path"`

	Format    string           `help:"Output format (plain, json, yaml, csv)"`
	Separator *string          `help:"Field separator for plain output"`
	Graphemes bool             `help:"Treat grapheme clusters as characters"`
	Compose   bool             `help:"Convert fields to Unicode NFC before counting characters" name:"nfc"`
	Strict    bool             `help:"Fail on a read error in the middle of the input"`
	Explain   bool             `help:"Print the resolved filter and exit" short:"x"`
	Verbose   bool             `help:"Enable verbose output" short:"v"`
	Config    string           `help:"Configuration file path"`
	Version   kong.VersionFlag `help:"Show version information"`
}

// options merges the config file with the command line. Flags win.
func (cli *CLI) options(config *gridslice.Config) (formatter.OutputFormat, string, slicer.Options, bool) {
	format := config.Output.Format
	if cli.Format != "" {
		format = cli.Format
	}

	separator := config.Output.FieldSeparator()
	if cli.Separator != nil {
		separator = *cli.Separator
	}

	opts := slicer.Options{
		Graphemes: cli.Graphemes || config.Input.Graphemes,
		Compose:   cli.Compose || config.Input.Compose,
	}

	return formatter.OutputFormat(format), separator, opts, cli.Strict || config.Input.Strict
}

// Run slices the input and writes the retained records to stdout
func (cli *CLI) Run(stdin io.Reader, stdout, stderr io.Writer) error {
	if cli.Expression == "" {
		return ErrNoExpression
	}

	config, err := gridslice.LoadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	filter, err := parser.ParseFilter(cli.Expression)
	if err != nil {
		return err
	}

	if cli.Explain {
		fmt.Fprintln(stderr, filter)
		return nil
	}

	format, separator, opts, strict := cli.options(config)

	out, err := formatter.NewFormatter(format, stdout, separator)
	if err != nil {
		return err
	}

	input := stdin
	if cli.File != "" {
		f, err := os.Open(cli.File)
		if err != nil {
			return fmt.Errorf("%w: %w", gridslice.ErrOpenInput, err)
		}
		defer f.Close()

		input = f
	}

	s := slicer.New(filter, input, opts)

	if cli.Verbose {
		info := color.New(color.FgBlue)
		info.Fprintf(stderr, "Filter: %s\n", filter)
		info.Fprintf(stderr, "Input mode: %s\n", inputMode(s))
	}

	for record := range s.Records() {
		if err := out.Write(record); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := s.Err(); err != nil {
		if strict {
			return err
		}
		if cli.Verbose {
			color.New(color.FgYellow).Fprintf(stderr, "Warning: output ended early: %v\n", err)
		}
	}

	return nil
}

func inputMode(s *slicer.Slicer) string {
	if s.Buffered() {
		return "buffered"
	}
	return "streaming"
}

func main() {
	var cli CLI

	kong.Parse(&cli,
		kong.Name("gridslice"),
		kong.Description("Select lines, fields and characters from text."),
		kong.Vars{"version": version},
	)

	if err := cli.Run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
