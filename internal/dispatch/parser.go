package dispatch

import "strings"

// ParsedCommand is the structured form of one raw command line.
type ParsedCommand struct {
	Verb string
	Args []string

	// Text is everything after the verb, unsplit, for handlers that take
	// free text (say, shout).
	Text string
}

// Parser turns a raw command string into a structured command. The full
// natural-language grammar is an external collaborator; the core only
// depends on this seam.
type Parser interface {
	Parse(raw string) (*ParsedCommand, error)
}

// FieldsParser is the built-in parser: whitespace-separated verb and
// arguments, verb lowercased.
type FieldsParser struct{}

func (FieldsParser) Parse(raw string) (*ParsedCommand, error) {
	raw = strings.TrimSpace(raw)
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, nil
	}

	verb := strings.ToLower(fields[0])
	return &ParsedCommand{
		Verb: verb,
		Args: fields[1:],
		Text: strings.TrimSpace(strings.TrimPrefix(raw, fields[0])),
	}, nil
}
