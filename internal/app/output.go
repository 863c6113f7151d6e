package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperifyio/styleguard/internal/aggregate"
)

// Result is the part of an analysis a command prints for one input.
type Result struct {
	Path   string `json:"path"`
	Valid  bool   `json:"-"`
	Score  *int   `json:"-"`
	Report any    `json:"report"`

	issues      []string
	suggestions []string
}

// SuggestionsReport is printed by the suggestions command.
type SuggestionsReport struct {
	Suggestions []string `json:"suggestions"`
}

// Select picks the report for cmd out of an analysis. A suggestions query
// has no pass/fail notion and is always valid.
func Select(cmd string, an aggregate.Analysis) Result {
	res := Result{Path: an.Path}
	switch cmd {
	case CommandWordCount:
		res.Report, res.Valid = an.WordCount, an.WordCount.WithinRange
		res.issues, res.suggestions = an.WordCount.Issues, an.WordCount.Suggestions
	case CommandStructure:
		res.Report, res.Valid = an.Structure, an.Structure.Valid
		res.issues, res.suggestions = an.Structure.Issues, an.Structure.Suggestions
	case CommandBrandVoice:
		res.Report, res.Valid = an.BrandVoice, an.BrandVoice.Valid
		res.issues, res.suggestions = an.BrandVoice.Issues, an.BrandVoice.Suggestions
		score := an.BrandVoice.Score
		res.Score = &score
	case CommandReadability:
		res.Report, res.Valid = an.Readability, an.Readability.Valid
		res.issues, res.suggestions = an.Readability.Issues, an.Readability.Suggestions
	case CommandSuggestions:
		res.Report, res.Valid = SuggestionsReport{Suggestions: an.Overall.Suggestions}, true
		res.suggestions = an.Overall.Suggestions
	default:
		res.Report, res.Valid = an.Overall, an.Overall.Valid
		res.issues, res.suggestions = an.Overall.Issues, an.Overall.Suggestions
		score := an.Overall.Score
		res.Score = &score
	}
	return res
}

// WriteResults prints results in the requested format. A single JSON result
// is printed as the bare report; several are printed as a list of
// {path, report} objects.
func WriteResults(w io.Writer, format string, results []Result) error {
	if format == FormatText {
		return writeText(w, results)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(results) == 1 {
		return enc.Encode(results[0].Report)
	}
	return enc.Encode(results)
}

func writeText(w io.Writer, results []Result) error {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		verdict := "PASS"
		if !r.Valid {
			verdict = "FAIL"
		}
		fmt.Fprintf(&b, "%s: %s", r.Path, verdict)
		if r.Score != nil {
			fmt.Fprintf(&b, " (score %d)", *r.Score)
		}
		b.WriteString("\n")
		for _, s := range r.issues {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
		for _, s := range r.suggestions {
			fmt.Fprintf(&b, "  * %s\n", s)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
