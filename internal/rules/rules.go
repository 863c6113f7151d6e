// Package rules holds the static tables the scorers are configured with:
// word-count profiles, the brand-voice lexicon, structure and readability
// thresholds and the aggregate scoring weights.
//
// Rules are plain values. Default returns a fresh copy on every call, and
// scorers receive the pieces they need as arguments, so tests can swap in
// alternate tables without touching process-wide state.
package rules

import (
	"github.com/hyperifyio/styleguard/internal/document"
)

// Profile is the word-count target range for one content type.
type Profile struct {
	Min    int `yaml:"min" json:"min" validate:"gte=0"`
	Max    int `yaml:"max" json:"max" validate:"gtefield=Min"`
	Target int `yaml:"target" json:"target" validate:"gtefield=Min,ltefield=Max"`
}

// Lexicon lists indicator phrases per brand-voice category. Matching is a
// case-insensitive substring test.
type Lexicon struct {
	Professional []string `yaml:"professional" json:"professional" validate:"dive,required"`
	Friendly     []string `yaml:"friendly" json:"friendly" validate:"dive,required"`
	Authentic    []string `yaml:"authentic" json:"authentic" validate:"dive,required"`
}

// MaxSize is the size of the largest category. It is the shared denominator
// when category hits are turned into percentages.
func (l Lexicon) MaxSize() int {
	n := len(l.Professional)
	if len(l.Friendly) > n {
		n = len(l.Friendly)
	}
	if len(l.Authentic) > n {
		n = len(l.Authentic)
	}
	return n
}

// Structure describes the required layout of a post.
type Structure struct {
	RequireTitle            bool     `yaml:"requireTitle" json:"requireTitle"`
	RequireIntroduction     bool     `yaml:"requireIntroduction" json:"requireIntroduction"`
	RequireConclusion       bool     `yaml:"requireConclusion" json:"requireConclusion"`
	MinSections             int      `yaml:"minSections" json:"minSections" validate:"gte=0"`
	MaxSections             int      `yaml:"maxSections" json:"maxSections" validate:"gtefield=MinSections"`
	MaxConclusionParagraphs int      `yaml:"maxConclusionParagraphs" json:"maxConclusionParagraphs" validate:"gte=0"`
	ConclusionKeywords      []string `yaml:"conclusionKeywords" json:"conclusionKeywords" validate:"min=1,dive,required"`
}

// Readability holds the issue thresholds for the Flesch analysis.
type Readability struct {
	MaxAvgSentenceWords float64 `yaml:"maxAvgSentenceWords" json:"maxAvgSentenceWords" validate:"gt=0"`
	MinFlesch           float64 `yaml:"minFlesch" json:"minFlesch"`
	MaxFlesch           float64 `yaml:"maxFlesch" json:"maxFlesch" validate:"gtefield=MinFlesch"`
	WordsPerMinute      int     `yaml:"wordsPerMinute" json:"wordsPerMinute" validate:"gt=0"`
}

// Scoring configures the brand-voice normalization and the aggregate
// deductions.
type Scoring struct {
	WordCountPenalty        int     `yaml:"wordCountPenalty" json:"wordCountPenalty" validate:"gte=0"`
	StructureIssuePenalty   int     `yaml:"structureIssuePenalty" json:"structureIssuePenalty" validate:"gte=0"`
	VoicePenalty            int     `yaml:"voicePenalty" json:"voicePenalty" validate:"gte=0"`
	VoiceMinScore           int     `yaml:"voiceMinScore" json:"voiceMinScore" validate:"gte=0"`
	ReadabilityIssuePenalty int     `yaml:"readabilityIssuePenalty" json:"readabilityIssuePenalty" validate:"gte=0"`
	PassScore               int     `yaml:"passScore" json:"passScore" validate:"gte=0,lte=100"`
	VoiceCap                float64 `yaml:"voiceCap" json:"voiceCap" validate:"gt=0"`
	VoiceBalanceSpread      float64 `yaml:"voiceBalanceSpread" json:"voiceBalanceSpread" validate:"gte=0"`
	VoiceSuggestBelow       float64 `yaml:"voiceSuggestBelow" json:"voiceSuggestBelow" validate:"gte=0"`
}

// Rules is the complete table set.
type Rules struct {
	Profiles    map[document.ContentType]Profile `yaml:"profiles" json:"profiles" validate:"required,dive"`
	Lexicon     Lexicon                          `yaml:"lexicon" json:"lexicon"`
	Structure   Structure                        `yaml:"structure" json:"structure"`
	Readability Readability                      `yaml:"readability" json:"readability"`
	Scoring     Scoring                          `yaml:"scoring" json:"scoring"`
	Classifier  document.ClassifierRules         `yaml:"classifier" json:"classifier"`
}

// Default returns the built-in tables.
func Default() Rules {
	return Rules{
		Profiles: map[document.ContentType]Profile{
			document.Tech:        {Min: 1000, Max: 1200, Target: 1100},
			document.PersonalDev: {Min: 1200, Max: 1500, Target: 1350},
			document.Default:     {Min: 800, Max: 1500, Target: 1100},
		},
		Lexicon: Lexicon{
			Professional: []string{
				"implement", "solution", "approach", "strategy", "optimize", "efficient",
				"framework", "methodology", "best practice", "recommend", "analysis",
			},
			Friendly: []string{
				"let's", "you'll", "we", "together", "enjoy", "love", "excited",
				"awesome", "great", "amazing", "isn't it", "right?", "imagine",
			},
			Authentic: []string{
				"honestly", "personally", "in my experience", "I learned", "I found",
				"real", "genuine", "truth", "admit", "struggle", "challenge",
			},
		},
		Structure: Structure{
			RequireTitle:            true,
			RequireIntroduction:     true,
			RequireConclusion:       true,
			MinSections:             5,
			MaxSections:             9,
			MaxConclusionParagraphs: 3,
			ConclusionKeywords:      []string{"conclusion", "summary", "wrap"},
		},
		Readability: Readability{
			MaxAvgSentenceWords: 25,
			MinFlesch:           50,
			MaxFlesch:           80,
			WordsPerMinute:      200,
		},
		Scoring: Scoring{
			WordCountPenalty:        15,
			StructureIssuePenalty:   5,
			VoicePenalty:            15,
			VoiceMinScore:           50,
			ReadabilityIssuePenalty: 5,
			PassScore:               70,
			VoiceCap:                25,
			VoiceBalanceSpread:      15,
			VoiceSuggestBelow:       10,
		},
		Classifier: document.DefaultClassifierRules(),
	}
}

// ProfileFor returns the profile for ct, falling back to the default
// profile when ct has no entry.
func (r Rules) ProfileFor(ct document.ContentType) Profile {
	if p, ok := r.Profiles[ct]; ok {
		return p
	}
	return r.Profiles[document.Default]
}
