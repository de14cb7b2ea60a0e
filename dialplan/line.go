package dialplan

import "strings"

// isCommentOrBlank reports whether a raw line carries no content: empty,
// all whitespace, or a ';' / '#' comment after optional leading whitespace.
func isCommentOrBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			continue
		case ';', '#':
			return true
		default:
			return false
		}
	}
	return true
}

// hasPrefixFold reports whether s starts with prefix, case-insensitively.
// A longer word sharing the prefix still matches, mirroring the classifier
// this dialect grew up with.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
