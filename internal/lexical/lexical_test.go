package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords_IgnoresMarkup(t *testing.T) {
	assert.Equal(t, 4, CountWords("# Title\n\n## Intro\nHello world.\n"))
	assert.Equal(t, 3, CountWords("# Title\n\nHello world.\n"))
	assert.Equal(t, 0, CountWords("## ** __ `` [] ()"))
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords(" \n\t "))
}

func TestCountWords_LinksAndEmphasis(t *testing.T) {
	assert.Equal(t, 4, CountWords("**bold** and [link](url)"))
	assert.Equal(t, 2, CountWords("snake_case"))
}

func TestWords_SplitsOnWhitespaceRuns(t *testing.T) {
	assert.Equal(t, []string{"one", "two", "three"}, Words("one   two\n\nthree"))
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"a", 1},
		{"the", 1},
		{"", 1},
		{"123", 1},
		{"named", 1},
		{"syllable", 2},
		{"reading", 2},
		{"yellow", 2},
		{"beautiful", 3},
		{"Implementation!", 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CountSyllables(c.word), "word %q", c.word)
	}
}

func TestCountSyllables_AtLeastOne(t *testing.T) {
	assert.Equal(t, 1, CountSyllables("rhythm"))
	assert.GreaterOrEqual(t, CountSyllables("syllable"), 2)
}
