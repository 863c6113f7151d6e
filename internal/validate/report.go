package validate

import (
    "math"
    "strings"
)

// Findings is the part shared by every scorer report. Issues and Suggestions
// are never nil so they serialize as empty JSON arrays.
type Findings struct {
    Valid       bool     `json:"valid"`
    Issues      []string `json:"issues"`
    Suggestions []string `json:"suggestions"`
}

func newFindings() Findings {
    return Findings{Issues: []string{}, Suggestions: []string{}}
}

func (f *Findings) addIssue(s string) {
    f.Issues = append(f.Issues, s)
}

func (f *Findings) addSuggestion(s string) {
    f.Suggestions = append(f.Suggestions, s)
}

// containsAnyFold reports whether s contains any of the keywords,
// ignoring case.
func containsAnyFold(s string, keywords []string) bool {
    low := strings.ToLower(s)
    for _, k := range keywords {
        if k != "" && strings.Contains(low, strings.ToLower(k)) {
            return true
        }
    }
    return false
}

func roundTo(x float64, decimals int) float64 {
    p := math.Pow(10, float64(decimals))
    return math.Round(x*p) / p
}
