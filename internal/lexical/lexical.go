// Package lexical holds the surface-text counters shared by every scorer:
// markup stripping, word counting and a syllable estimate.
package lexical

import (
	"regexp"
	"strings"
)

// markupChars are the markdown characters removed before counting. Each one
// is replaced by a space so "**bold**" and "[link](url)" split cleanly.
const markupChars = "#*`_[]()"

var markupReplacer = strings.NewReplacer(
	"#", " ", "*", " ", "`", " ", "_", " ",
	"[", " ", "]", " ", "(", " ", ")", " ",
)

// StripMarkup replaces markdown punctuation with spaces.
func StripMarkup(text string) string {
	if !strings.ContainsAny(text, markupChars) {
		return text
	}
	return markupReplacer.Replace(text)
}

// Words returns the whitespace separated tokens of text after markup has
// been stripped.
func Words(text string) []string {
	return strings.Fields(StripMarkup(text))
}

// CountWords returns the number of non-empty tokens in text. Markup
// characters never count as words.
func CountWords(text string) int {
	return len(Words(text))
}

var (
	nonLetterRe  = regexp.MustCompile(`[^a-z]`)
	silentTailRe = regexp.MustCompile(`(?:[^aeiouy]es|ed|[^aeiouy]e)$`)
	leadingYRe   = regexp.MustCompile(`^y`)
	vowelRunRe   = regexp.MustCompile(`[aeiouy]+`)
)

// CountSyllables estimates the syllables in a single word. It is a heuristic:
// short words count as one, a silent trailing "e"/"es"/"ed" and a leading "y"
// are dropped, then runs of vowels are counted. The result is at least 1.
func CountSyllables(word string) int {
	w := nonLetterRe.ReplaceAllString(strings.ToLower(word), "")
	if len(w) <= 3 {
		return 1
	}
	w = silentTailRe.ReplaceAllString(w, "")
	w = leadingYRe.ReplaceAllString(w, "")
	n := len(vowelRunRe.FindAllString(w, -1))
	if n == 0 {
		return 1
	}
	return n
}
