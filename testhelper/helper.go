package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var leadingSpaces = regexp.MustCompile(`^[ \t]*`)

// Text turns an indented raw string literal into line-oriented input.
// The line holding the opening backquote and the line holding the closing
// one are dropped, the indent of the first content line is removed from
// every line and each line ends with a newline.
func Text(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 3 {
		t.Fatalf("testhelper.Text needs the content on its own lines: %q", src)
	}
	lines = lines[1 : len(lines)-1]

	indent := leadingSpaces.FindString(lines[0])

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strings.TrimPrefix(line, indent))
		b.WriteByte('\n')
	}

	return b.String()
}
