package validate

import (
    "fmt"
    "math"
    "strings"

    "github.com/hyperifyio/styleguard/internal/rules"
)

// Balance verdicts for the brand-voice categories.
const (
    BalanceGood            = "good"
    BalanceNeedsAdjustment = "needs_adjustment"
)

// CategoryScore is the result for one brand-voice category. Matched is the
// number of distinct indicators found; Percent is the normalized, capped
// contribution to the total.
type CategoryScore struct {
    Matched    int      `json:"matched"`
    Percent    float64  `json:"percent"`
    Indicators []string `json:"indicators"`
}

// VoiceBreakdown holds the three category scores.
type VoiceBreakdown struct {
    Professional CategoryScore `json:"professional"`
    Friendly     CategoryScore `json:"friendly"`
    Authentic    CategoryScore `json:"authentic"`
}

// VoiceReport scores the presence and balance of the brand-voice categories.
type VoiceReport struct {
    Findings
    Score     int            `json:"score"`
    Breakdown VoiceBreakdown `json:"breakdown"`
    Balance   string         `json:"balance"`
}

// BrandVoice tests every indicator phrase against the text with a
// case-insensitive substring match; each indicator counts at most once.
//
// All categories are normalized against the size of the largest category,
// not their own size, so a category with a shorter list needs relatively
// more hits to reach the cap.
func BrandVoice(text string, lex rules.Lexicon, sc rules.Scoring) VoiceReport {
    low := strings.ToLower(text)
    denom := lex.MaxSize()

    score := func(indicators []string) (CategoryScore, float64) {
        cs := CategoryScore{Indicators: []string{}}
        for _, ind := range indicators {
            if ind != "" && strings.Contains(low, strings.ToLower(ind)) {
                cs.Matched++
                cs.Indicators = append(cs.Indicators, ind)
            }
        }
        pct := 0.0
        if denom > 0 {
            pct = math.Min(sc.VoiceCap, float64(cs.Matched)/float64(denom)*100)
        }
        cs.Percent = roundTo(pct, 2)
        return cs, pct
    }

    rep := VoiceReport{Findings: newFindings()}
    var pro, fri, aut float64
    rep.Breakdown.Professional, pro = score(lex.Professional)
    rep.Breakdown.Friendly, fri = score(lex.Friendly)
    rep.Breakdown.Authentic, aut = score(lex.Authentic)

    rep.Score = int(math.Round(pro + fri + aut))

    hi := math.Max(pro, math.Max(fri, aut))
    lo := math.Min(pro, math.Min(fri, aut))
    if hi-lo < sc.VoiceBalanceSpread {
        rep.Balance = BalanceGood
    } else {
        rep.Balance = BalanceNeedsAdjustment
    }

    if pro < sc.VoiceSuggestBelow {
        rep.addSuggestion("Add more professional terminology and structured language")
    }
    if fri < sc.VoiceSuggestBelow {
        rep.addSuggestion(`Use more conversational phrases and second-person ("you")`)
    }
    if aut < sc.VoiceSuggestBelow {
        rep.addSuggestion("Include personal experiences and honest reflections")
    }

    rep.Valid = rep.Score >= sc.VoiceMinScore
    if !rep.Valid {
        rep.addIssue(fmt.Sprintf("Brand voice score low: %d%%", rep.Score))
    }
    return rep
}
