// Package document turns raw draft text into the structures the scorers work
// on: a Document carrying the text and its content type, and a Parsed view
// splitting the text into a title and ordered sections.
package document

import "strings"

// ContentType selects the word-count profile for a draft.
type ContentType string

const (
	Tech        ContentType = "tech"
	PersonalDev ContentType = "personal-dev"
	Default     ContentType = "default"
)

// ParseContentType maps a user supplied name onto a ContentType. The empty
// string and unknown names report ok=false.
func ParseContentType(s string) (ContentType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tech", "technical":
		return Tech, true
	case "personal-dev", "personal", "dev":
		return PersonalDev, true
	case "default":
		return Default, true
	}
	return "", false
}

// Document is one draft held in memory. It is never mutated after
// construction.
type Document struct {
	// Path is where the draft came from. It may be empty for in-memory input
	// and is only used for content-type hints and reporting.
	Path        string
	Text        string
	ContentType ContentType
}

// New builds a Document from text already in memory. When override is empty
// the content type is classified from the path and text.
func New(path, text string, override ContentType, hints ClassifierRules) Document {
	ct := override
	if ct == "" {
		ct = Classify(path, text, hints)
	}
	return Document{Path: path, Text: text, ContentType: ct}
}
