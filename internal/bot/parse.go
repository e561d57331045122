package bot

import (
	"strings"
	"unicode"
)

// ParseCommand splits a message of the form "<prefix><name> <args>".
// ok is false when content does not start with prefix directly followed by
// a command name. Leading whitespace is trimmed from args.
func ParseCommand(prefix, content string) (name, args string, ok bool) {
	rest, found := strings.CutPrefix(content, prefix)
	if !found {
		return "", "", false
	}

	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end == -1 {
		end = len(rest)
	}
	name = rest[:end]
	if name == "" {
		return "", "", false
	}

	return name, strings.TrimLeftFunc(rest[end:], unicode.IsSpace), true
}
