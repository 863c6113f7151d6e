package validate

import (
    "fmt"
    "regexp"
    "strings"

    "github.com/hyperifyio/styleguard/internal/lexical"
    "github.com/hyperifyio/styleguard/internal/rules"
)

// GradeNotApplicable is reported when a draft has nothing to measure.
const GradeNotApplicable = "n/a"

// ReadabilityReport holds sentence statistics and the Flesch Reading Ease
// score. Averages are rounded for display; issues use the exact values.
type ReadabilityReport struct {
    Findings
    SentenceCount       int     `json:"sentenceCount"`
    WordCount           int     `json:"wordCount"`
    AvgWordsPerSentence float64 `json:"avgWordsPerSentence"`
    AvgSyllablesPerWord float64 `json:"avgSyllablesPerWord"`
    FleschReadingEase   float64 `json:"fleschReadingEase"`
    GradeLevel          string  `json:"gradeLevel"`
}

var (
    newlinesRe      = regexp.MustCompile(`\n+`)
    sentenceBreakRe = regexp.MustCompile(`[.!?]+`)
)

// Flesch returns the Flesch Reading Ease score.
func Flesch(avgWordsPerSentence, avgSyllablesPerWord float64) float64 {
    return 206.835 - 1.015*avgWordsPerSentence - 84.6*avgSyllablesPerWord
}

// GradeLevel maps a Flesch score to a school grade label.
func GradeLevel(score float64) string {
    switch {
    case score >= 90:
        return "5th grade"
    case score >= 80:
        return "6th grade"
    case score >= 70:
        return "7th grade"
    case score >= 60:
        return "8th-9th grade"
    case score >= 50:
        return "10th-12th grade"
    case score >= 30:
        return "College"
    default:
        return "College graduate"
    }
}

// Readability strips markup, splits the text into sentences on runs of
// . ! ? and into words on whitespace, then applies the Flesch formula.
// A draft with no sentences or no words gets zeroed statistics and a single
// issue instead of NaN values.
func Readability(text string, th rules.Readability) ReadabilityReport {
    rep := ReadabilityReport{Findings: newFindings()}
    content := newlinesRe.ReplaceAllString(lexical.StripMarkup(text), " ")

    for _, s := range sentenceBreakRe.Split(content, -1) {
        if strings.TrimSpace(s) != "" {
            rep.SentenceCount++
        }
    }
    words := strings.Fields(content)
    rep.WordCount = len(words)

    if rep.SentenceCount == 0 || rep.WordCount == 0 {
        rep.GradeLevel = GradeNotApplicable
        rep.addIssue("No measurable content: document has no sentences or words")
        return rep
    }

    syllables := 0
    for _, w := range words {
        syllables += lexical.CountSyllables(w)
    }
    wps := float64(rep.WordCount) / float64(rep.SentenceCount)
    spw := float64(syllables) / float64(rep.WordCount)
    score := Flesch(wps, spw)

    rep.AvgWordsPerSentence = roundTo(wps, 1)
    rep.AvgSyllablesPerWord = roundTo(spw, 2)
    rep.FleschReadingEase = roundTo(score, 0)
    rep.GradeLevel = GradeLevel(score)

    if wps > th.MaxAvgSentenceWords {
        rep.addIssue(fmt.Sprintf("Sentences too long (avg > %g words)", th.MaxAvgSentenceWords))
    }
    if score < th.MinFlesch {
        rep.addIssue("Content may be too complex for general audience")
    }
    if score > th.MaxFlesch {
        rep.addIssue("Content may be too simple for technical audience")
    }
    rep.Valid = len(rep.Issues) == 0
    return rep
}
