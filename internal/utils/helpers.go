package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/google/shlex"
)

// TruncateString truncates a string to the specified number of runes and adds "..." if necessary
func TruncateString(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	if length <= 3 {
		return string([]rune(s)[:length])
	}
	return string([]rune(s)[:length-3]) + "..."
}

// FormatCount formats a count with its noun, e.g. "1,204 jobs"
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), plural)
}

// SplitArgs splits a command line into words using shell quoting rules.
// Single or double quotes group words containing spaces; a backslash escapes
// the next character. Unterminated quotes and trailing escapes are errors.
func SplitArgs(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("invalid command line: %w", err)
	}
	if len(args) == 0 {
		return nil, nil
	}
	return args, nil
}

// NormalizeSpace collapses runs of whitespace into single spaces
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
