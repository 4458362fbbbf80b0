package slug

import (
	"regexp"
	"strings"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Make joins parts with spaces and reduces the result to a lowercase,
// dash-separated token.
func Make(parts ...string) string {
	s := strings.ToLower(strings.TrimSpace(strings.Join(parts, " ")))
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}
