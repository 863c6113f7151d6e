// Package aggregate runs the four scorers over one document and folds their
// reports into a single pass/fail score.
package aggregate

import (
	"github.com/hyperifyio/styleguard/internal/document"
	"github.com/hyperifyio/styleguard/internal/rules"
	"github.com/hyperifyio/styleguard/internal/validate"
)

// Report is the combined verdict for one document.
type Report struct {
	Valid       bool     `json:"valid"`
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Analysis bundles every report produced for one document.
type Analysis struct {
	Path        string                     `json:"path,omitempty"`
	ContentType document.ContentType       `json:"contentType"`
	WordCount   validate.WordCountReport   `json:"wordCount"`
	Structure   validate.StructureReport   `json:"structure"`
	BrandVoice  validate.VoiceReport       `json:"brandVoice"`
	Readability validate.ReadabilityReport `json:"readability"`
	Overall     Report                     `json:"overall"`
}

// Analyze parses doc once and runs every scorer against it. Word count and
// structure work on the parsed sections; brand voice and readability read
// the raw text. The scorers share no state, so the result only depends on
// doc and r.
func Analyze(doc document.Document, r rules.Rules) Analysis {
	parsed := document.Parse(doc.Text)
	a := Analysis{
		Path:        doc.Path,
		ContentType: doc.ContentType,
		WordCount:   validate.WordCount(parsed, doc.ContentType, r.ProfileFor(doc.ContentType), r.Readability.WordsPerMinute),
		Structure:   validate.Structure(parsed, r.Structure),
		BrandVoice:  validate.BrandVoice(doc.Text, r.Lexicon, r.Scoring),
		Readability: validate.Readability(doc.Text, r.Readability),
	}
	a.Overall = Combine(a.WordCount, a.Structure, a.BrandVoice, a.Readability, r.Scoring)
	return a
}

// Combine starts from 100 and deducts per failed category. Issues are
// concatenated in word count, structure, brand voice, readability order.
// Only the brand-voice scorer contributes suggestions.
func Combine(wc validate.WordCountReport, st validate.StructureReport, bv validate.VoiceReport, rd validate.ReadabilityReport, sc rules.Scoring) Report {
	rep := Report{Issues: []string{}, Suggestions: []string{}}
	score := 100

	if !wc.WithinRange {
		score -= sc.WordCountPenalty
	}
	rep.Issues = append(rep.Issues, wc.Issues...)

	score -= len(st.Issues) * sc.StructureIssuePenalty
	rep.Issues = append(rep.Issues, st.Issues...)

	if bv.Score < sc.VoiceMinScore {
		score -= sc.VoicePenalty
	}
	rep.Issues = append(rep.Issues, bv.Issues...)
	rep.Suggestions = append(rep.Suggestions, bv.Suggestions...)

	score -= len(rd.Issues) * sc.ReadabilityIssuePenalty
	rep.Issues = append(rep.Issues, rd.Issues...)

	if score < 0 {
		score = 0
	}
	rep.Score = score
	rep.Valid = score >= sc.PassScore
	return rep
}
