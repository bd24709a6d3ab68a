package slicer

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/shibukawa/gridslice/grid"
	"golang.org/x/text/unicode/norm"
)

// Record is one retained line: its kept fields, each with its kept characters
type Record []string

// String joins the fields with a single space
func (r Record) String() string {
	return strings.Join(r, " ")
}

// characterMode filters the characters of one field
type characterMode func(r grid.Range, field string) string

func runeCharacters(r grid.Range, field string) string {
	return string(grid.Select(r, []rune(field)))
}

func graphemeCharacters(r grid.Range, field string) string {
	return strings.Join(grid.Select(r, graphemes(field)), "")
}

// graphemes splits s into user-perceived characters
func graphemes(s string) []string {
	result := make([]string, 0, len(s))

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		result = append(result, g.Str())
	}

	return result
}

// composed counts characters after converting the field to NFC
func composed(chars characterMode) characterMode {
	return func(r grid.Range, field string) string {
		return chars(r, norm.NFC.String(field))
	}
}

// filterFields applies the field range to one line and the character range to
// every kept field.
func filterFields(f grid.Filter, chars characterMode, fields []string) Record {
	kept := grid.Select(f.Field, fields)
	if f.Character.IsDefault() {
		return kept
	}

	for i, field := range kept {
		kept[i] = chars(f.Character, field)
	}

	return kept
}
