package document

import (
	"path/filepath"
	"strings"
)

// ClassifierRules holds the static hints used to pick a content type.
type ClassifierRules struct {
	TechFileHints      []string `yaml:"techFileHints" json:"techFileHints" validate:"dive,required"`
	PersonalFileHints  []string `yaml:"personalFileHints" json:"personalFileHints" validate:"dive,required"`
	TechIndicators     []string `yaml:"techIndicators" json:"techIndicators" validate:"dive,required"`
	PersonalIndicators []string `yaml:"personalIndicators" json:"personalIndicators" validate:"dive,required"`
}

// DefaultClassifierRules returns the built-in hint tables.
func DefaultClassifierRules() ClassifierRules {
	return ClassifierRules{
		TechFileHints:      []string{"tech", "technical"},
		PersonalFileHints:  []string{"personal", "dev"},
		TechIndicators:     []string{"code", "implementation", "api", "function", "class", "programming"},
		PersonalIndicators: []string{"journey", "learned", "experience", "growth", "reflection"},
	}
}

// Classify picks a content type. Hints in the file name (not the directory)
// win; otherwise the body is scanned for tech and personal indicators and the
// majority wins. A tie, including zero hits on both sides, yields Default.
func Classify(path, text string, r ClassifierRules) ContentType {
	name := ""
	if path != "" {
		name = strings.ToLower(filepath.Base(path))
	}
	if containsAny(name, r.TechFileHints) {
		return Tech
	}
	if containsAny(name, r.PersonalFileHints) {
		return PersonalDev
	}

	low := strings.ToLower(text)
	tech := countPresent(low, r.TechIndicators)
	personal := countPresent(low, r.PersonalIndicators)
	switch {
	case tech > personal:
		return Tech
	case personal > tech:
		return PersonalDev
	default:
		return Default
	}
}

func containsAny(s string, hints []string) bool {
	for _, h := range hints {
		if h != "" && strings.Contains(s, strings.ToLower(h)) {
			return true
		}
	}
	return false
}

// countPresent counts indicators that occur at least once.
func countPresent(low string, indicators []string) int {
	n := 0
	for _, ind := range indicators {
		if ind != "" && strings.Contains(low, strings.ToLower(ind)) {
			n++
		}
	}
	return n
}
