package validate

import (
    "fmt"

    "github.com/hyperifyio/styleguard/internal/document"
    "github.com/hyperifyio/styleguard/internal/lexical"
    "github.com/hyperifyio/styleguard/internal/rules"
)

// SectionWords is the word count of one section body.
type SectionWords struct {
    Heading string `json:"heading"`
    Words   int    `json:"words"`
}

// WordCountReport compares the draft length with its content-type profile.
type WordCountReport struct {
    Findings
    Total       int                  `json:"total"`
    PerSection  []SectionWords       `json:"perSection"`
    ReadingTime int                  `json:"readingTime"`
    ContentType document.ContentType `json:"contentType"`
    Target      rules.Profile        `json:"target"`
    WithinRange bool                 `json:"withinRange"`
}

// WordCount totals the words of the title and every section body. Section
// headings do not count. Reading time is rounded up to whole minutes.
func WordCount(doc document.Parsed, ct document.ContentType, profile rules.Profile, wordsPerMinute int) WordCountReport {
    rep := WordCountReport{
        Findings:    newFindings(),
        PerSection:  make([]SectionWords, 0, len(doc.Sections)),
        ContentType: ct,
        Target:      profile,
    }
    rep.Total = lexical.CountWords(doc.Title)
    for _, s := range doc.Sections {
        n := lexical.CountWords(s.Body)
        rep.PerSection = append(rep.PerSection, SectionWords{Heading: s.Heading, Words: n})
        rep.Total += n
    }
    if wordsPerMinute > 0 {
        rep.ReadingTime = (rep.Total + wordsPerMinute - 1) / wordsPerMinute
    }
    rep.WithinRange = rep.Total >= profile.Min && rep.Total <= profile.Max
    rep.Valid = rep.WithinRange
    switch {
    case rep.Total < profile.Min:
        rep.addIssue(fmt.Sprintf("Word count too low: %d (min: %d)", rep.Total, profile.Min))
    case rep.Total > profile.Max:
        rep.addIssue(fmt.Sprintf("Word count too high: %d (max: %d)", rep.Total, profile.Max))
    }
    return rep
}
