package domain

import "strings"

// MaxChannelNameLength is the longest input, in bytes, considered when
// deriving a channel name.
const MaxChannelNameLength = 100

// SanitizeChannelName converts free text to a kebab-case channel name.
//
// The input is cut to MaxChannelNameLength bytes, lower-cased (ASCII only),
// every character outside [a-z0-9] becomes a space, surrounding spaces are
// trimmed and the remaining spaces become hyphens. The result may be empty.
func SanitizeChannelName(s string) string {
	if len(s) > MaxChannelNameLength {
		s = s[:MaxChannelNameLength]
	}

	// Invalid UTF-8 left by the cut is decoded as one RuneError per byte,
	// so the output is never longer than the input.
	s = strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			return r
		}
		return ' '
	}, s)

	s = strings.Trim(s, " ")
	return strings.ReplaceAll(s, " ", "-")
}
