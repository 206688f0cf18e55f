package store

import "strings"

var blockedWords = []string{
	"damn",
	"crap",
	"stupid",
	"idiot",
	"bullshit",
}

// ContainsProfanity screens comment text before it enters a thread. The text
// is lowered and stripped to letters and digits so spacing or punctuation
// tricks don't slip a blocked word through.
func ContainsProfanity(text string) bool {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	for _, w := range blockedWords {
		if strings.Contains(normalized, w) {
			return true
		}
	}
	return false
}
