package display

import (
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultWidth is the column the transport wraps output at.
const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// Capitalize uppercases the first word of s, leaving the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first := s
	rest := ""
	for i, r := range s {
		if r == ' ' {
			first, rest = s[:i], s[i:]
			break
		}
	}
	return titleCaser.String(first) + rest
}
