// Package sanitize is the free-text boundary shared by user input and
// backup import: it strips markup and control characters and repairs
// text that was mangled by a wrong-charset round trip.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Text normalizes a free-text field: mojibake repair first, then HTML
// tag removal, control-character removal and trimming. The result may
// be empty; whether that is acceptable is the caller's decision.
func Text(s string) string {
	s = RepairMojibake(s)
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
