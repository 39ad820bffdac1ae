package cli

import (
	"regexp"
	"strings"
)

// Input is one interactive line split into a command and its arguments.
type Input struct {
	Command string
	Args    []string
}

var (
	doubleQuoted = regexp.MustCompile(`^(\w+)\s+"([^"]+)"$`)
	singleQuoted = regexp.MustCompile(`^(\w+)\s+'([^']+)'$`)
)

// ParseInput splits a line typed at the prompt. A line of the form
// `word "some text"` (or single-quoted) yields the quoted text as a single
// argument; anything else is split on whitespace. The command is lowercased.
// Embedded quotes cannot be escaped.
func ParseInput(line string) Input {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Input{Command: "", Args: []string{}}
	}

	m := doubleQuoted.FindStringSubmatch(trimmed)
	if m == nil {
		m = singleQuoted.FindStringSubmatch(trimmed)
	}
	if m != nil {
		return Input{Command: strings.ToLower(m[1]), Args: []string{m[2]}}
	}

	parts := strings.Fields(trimmed)
	return Input{Command: strings.ToLower(parts[0]), Args: parts[1:]}
}
