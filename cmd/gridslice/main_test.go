package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/shibukawa/gridslice"
	"github.com/shibukawa/gridslice/formatter"
	"github.com/shibukawa/gridslice/parser"
	"github.com/shibukawa/gridslice/slicer"
)

const grid3x3 = "a b c\nd e f\ng h i\n"

func parseArgs(t *testing.T, args ...string) *CLI {
	t.Helper()

	var cli CLI
	p, err := kong.New(&cli, kong.Vars{"version": version}, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	assert.NoError(t, err)

	_, err = p.Parse(args)
	assert.NoError(t, err)

	return &cli
}

func run(t *testing.T, cli *CLI, input string) (string, string, error) {
	t.Helper()

	color.NoColor = true

	var stdout, stderr bytes.Buffer
	err := cli.Run(strings.NewReader(input), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestParseArgs(t *testing.T) {
	cli := parseArgs(t, "--format", "json", "--separator", ",", "--strict", "-v", "F1", "input.txt")

	assert.Equal(t, "F1", cli.Expression)
	assert.True(t, strings.HasSuffix(cli.File, "input.txt"))
	assert.Equal(t, "json", cli.Format)
	assert.NotZero(t, cli.Separator)
	assert.Equal(t, ",", *cli.Separator)
	assert.True(t, cli.Strict)
	assert.True(t, cli.Verbose)
	assert.False(t, cli.Explain)

	cli = parseArgs(t, "--nfc", "--graphemes", "C0")
	assert.True(t, cli.Compose)
	assert.True(t, cli.Graphemes)

	cli = parseArgs(t, ":")
	assert.Equal(t, ":", cli.Expression)
	assert.Equal(t, "", cli.File)
	assert.Zero(t, cli.Separator)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		cli      CLI
		expected string
	}{
		{
			name:     "identity",
			cli:      CLI{Expression: ":"},
			expected: grid3x3,
		},
		{
			name:     "pinned field",
			cli:      CLI{Expression: "F1"},
			expected: "b\ne\nh\n",
		},
		{
			name:     "top left corner",
			cli:      CLI{Expression: "l0f0:l1f1"},
			expected: "a b\nd e\n",
		},
		{
			name:     "reversed lines",
			cli:      CLI{Expression: "::l-1"},
			expected: "g h i\nd e f\na b c\n",
		},
		{
			name:     "json",
			cli:      CLI{Expression: "L0", Format: "json"},
			expected: "[\"a\",\"b\",\"c\"]\n",
		},
		{
			name:     "csv",
			cli:      CLI{Expression: "f1", Format: "csv"},
			expected: "b,c\ne,f\nh,i\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, &tt.cli, grid3x3)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
			assert.Equal(t, "", stderr)
		})
	}
}

func TestRunSeparator(t *testing.T) {
	separator := "\t"
	stdout, _, err := run(t, &CLI{Expression: "L1", Separator: &separator}, grid3x3)
	assert.NoError(t, err)
	assert.Equal(t, "d\te\tf\n", stdout)
}

func TestRunExplain(t *testing.T) {
	stdout, stderr, err := run(t, &CLI{Expression: "F1", Explain: true}, grid3x3)
	assert.NoError(t, err)
	assert.Equal(t, "", stdout)
	assert.Equal(t, "line[0:*:1] field[1:1:1] character[0:*:1]\n", stderr)
}

func TestRunVerbose(t *testing.T) {
	_, stderr, err := run(t, &CLI{Expression: "l-1", Verbose: true}, grid3x3)
	assert.NoError(t, err)
	assert.Contains(t, stderr, "Filter: line[-1:*:1]")
	assert.Contains(t, stderr, "Input mode: buffered")

	_, stderr, err = run(t, &CLI{Expression: "l1", Verbose: true}, grid3x3)
	assert.NoError(t, err)
	assert.Contains(t, stderr, "Input mode: streaming")
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	assert.NoError(t, os.WriteFile(path, []byte(grid3x3), 0644))

	stdout, _, err := run(t, &CLI{Expression: "L2", File: path}, "ignored\n")
	assert.NoError(t, err)
	assert.Equal(t, "g h i\n", stdout)

	stdout, _, err = run(t, &CLI{Expression: ":", File: filepath.Join(t.TempDir(), "missing.txt")}, "")
	assert.IsError(t, err, gridslice.ErrOpenInput)
	assert.Equal(t, "", stdout)
}

func TestRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridslice.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("output:\n  format: csv\n"), 0644))

	stdout, _, err := run(t, &CLI{Expression: "L0", Config: path}, grid3x3)
	assert.NoError(t, err)
	assert.Equal(t, "a,b,c\n", stdout)

	// flags override the config file
	stdout, _, err = run(t, &CLI{Expression: "L0", Config: path, Format: "json"}, grid3x3)
	assert.NoError(t, err)
	assert.Equal(t, "[\"a\",\"b\",\"c\"]\n", stdout)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		cli      CLI
		expected error
	}{
		{"missing expression", CLI{}, ErrNoExpression},
		{"syntax", CLI{Expression: "x"}, parser.ErrSyntax},
		{"ambiguous", CLI{Expression: "l1:L2"}, parser.ErrAmbiguousRange},
		{"pinned step", CLI{Expression: "::L1"}, parser.ErrInvalidStep},
		{"format", CLI{Expression: ":", Format: "table"}, formatter.ErrInvalidOutputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, &tt.cli, grid3x3)
			assert.IsError(t, err, tt.expected)
			assert.Equal(t, "", stdout)
		})
	}
}

func TestRunReadError(t *testing.T) {
	color.NoColor = true

	newInput := func() io.Reader {
		return io.MultiReader(strings.NewReader("a b\nc"), iotest.ErrReader(errors.New("boom")))
	}

	var stdout, stderr bytes.Buffer
	err := (&CLI{Expression: ":"}).Run(newInput(), &stdout, &stderr)
	assert.NoError(t, err)
	assert.Equal(t, "a b\n", stdout.String())
	assert.Equal(t, "", stderr.String())

	stdout.Reset()
	err = (&CLI{Expression: ":", Verbose: true}).Run(newInput(), &stdout, &stderr)
	assert.NoError(t, err)
	assert.Contains(t, stderr.String(), "Warning: output ended early")

	stdout.Reset()
	err = (&CLI{Expression: ":", Strict: true}).Run(newInput(), &stdout, &stderr)
	assert.IsError(t, err, slicer.ErrRead)
	assert.Equal(t, "a b\n", stdout.String())
}
