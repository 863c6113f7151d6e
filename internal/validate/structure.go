package validate

import (
    "fmt"
    "regexp"
    "strings"

    "github.com/hyperifyio/styleguard/internal/document"
    "github.com/hyperifyio/styleguard/internal/rules"
)

// StructureReport describes the layout checks for a draft.
type StructureReport struct {
    Findings
    Sections             []string `json:"sections"`
    SectionCount         int      `json:"sectionCount"`
    HasTitle             bool     `json:"hasTitle"`
    HasIntroduction      bool     `json:"hasIntroduction"`
    HasConclusion        bool     `json:"hasConclusion"`
    ConclusionParagraphs int      `json:"conclusionParagraphs"`
}

// Structure validates, in order: title, introduction, conclusion, section
// count bounds and conclusion length. Each failed check adds one issue.
//
// Any first section counts as the introduction, so HasIntroduction is false
// only when there are no sections at all. The conclusion is the first section
// whose heading contains a conclusion keyword.
func Structure(doc document.Parsed, req rules.Structure) StructureReport {
    rep := StructureReport{
        Findings:     newFindings(),
        Sections:     doc.SectionHeadings(),
        SectionCount: len(doc.Sections),
        HasTitle:     doc.Title != "",
    }

    rep.HasIntroduction = len(doc.Sections) > 0
    for _, s := range doc.Sections {
        if containsAnyFold(s.Heading, req.ConclusionKeywords) {
            rep.HasConclusion = true
            rep.ConclusionParagraphs = CountParagraphs(s.Body)
            break
        }
    }

    if req.RequireTitle && !rep.HasTitle {
        rep.addIssue("Missing title (H1)")
    }
    if req.RequireIntroduction && !rep.HasIntroduction {
        rep.addIssue("Missing introduction section")
    }
    if req.RequireConclusion && !rep.HasConclusion {
        rep.addIssue("Missing conclusion section")
    }
    if rep.SectionCount < req.MinSections {
        rep.addIssue(fmt.Sprintf("Too few sections: %d (min: %d)", rep.SectionCount, req.MinSections))
    }
    if rep.SectionCount > req.MaxSections {
        rep.addIssue(fmt.Sprintf("Too many sections: %d (max: %d)", rep.SectionCount, req.MaxSections))
    }
    if rep.ConclusionParagraphs > req.MaxConclusionParagraphs {
        rep.addIssue(fmt.Sprintf("Conclusion too long: %d paragraphs (max: %d)", rep.ConclusionParagraphs, req.MaxConclusionParagraphs))
    }
    rep.Valid = len(rep.Issues) == 0
    return rep
}

var paragraphBreakRe = regexp.MustCompile(`\n\n+`)

// CountParagraphs counts the non-blank pieces left after splitting body on
// runs of two or more newlines. A whitespace-only line between two newlines
// does not break a paragraph.
func CountParagraphs(body string) int {
    n := 0
    for _, p := range paragraphBreakRe.Split(body, -1) {
        if strings.TrimSpace(p) != "" {
            n++
        }
    }
    return n
}
