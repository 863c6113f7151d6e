package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Input errors. They abort a run before any scoring happens.
var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")
)

// LoadOptions control how a draft file becomes a Document.
type LoadOptions struct {
	// ContentType, when set, skips classification.
	ContentType ContentType
	Classifier  ClassifierRules
}

// Load reads a draft from disk. HTML drafts are converted to markdown first.
// The text is BOM-stripped and NFC-normalized so identical drafts always
// produce identical reports.
func Load(path string, opts LoadOptions) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	text, err := Decode(raw)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	if IsHTMLPath(path) {
		text, err = FromHTML(text)
		if err != nil {
			return Document{}, fmt.Errorf("convert %s: %w", path, err)
		}
	}
	return New(path, text, opts.ContentType, opts.Classifier), nil
}

// Decode validates raw bytes as UTF-8, drops a leading byte order mark and
// normalizes to NFC.
func Decode(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}
	s, _, err := transform.String(xunicode.BOMOverride(xunicode.UTF8.NewDecoder()), string(raw))
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return norm.NFC.String(s), nil
}

// IsHTMLPath reports whether path names an HTML draft.
func IsHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
