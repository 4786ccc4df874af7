package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// NormalizeName folds and trims a raw player name, resolves it through
// aliases (keyed by the folded form) and capitalizes it for display.
func NormalizeName(raw string, aliases map[string]string) string {
	name := strings.TrimSpace(lower.String(raw))
	if canonical, ok := aliases[name]; ok && strings.TrimSpace(canonical) != "" {
		name = strings.TrimSpace(lower.String(canonical))
	}
	return capitalize(name)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(r)) + s[size:]
}
