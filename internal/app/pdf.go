package app

import (
    "fmt"

    "github.com/jung-kurt/gofpdf"

    "github.com/hyperifyio/styleguard/internal/aggregate"
)

// writeReportPDF renders one page block per analysis: verdict, key metrics,
// issues and suggestions. Layout is deliberately plain.
func writeReportPDF(analyses []aggregate.Analysis, outPath string) error {
    pdf := gofpdf.New("P", "mm", "A4", "")
    tr := pdf.UnicodeTranslatorFromDescriptor("")
    pdf.SetTitle("styleguard report", true)
    pdf.SetFont("Helvetica", "", 11)
    pdf.AddPage()

    heading := func(size float64, text string) {
        pdf.SetFont("Helvetica", "B", size)
        pdf.CellFormat(0, 8, tr(text), "", 1, "L", false, 0, "")
        pdf.SetFont("Helvetica", "", 11)
    }
    line := func(text string) {
        pdf.MultiCell(0, 5, tr(text), "", "L", false)
    }

    heading(16, "Content validation report")
    pdf.Ln(4)

    for i, an := range analyses {
        if i > 0 {
            pdf.Ln(6)
        }
        name := an.Path
        if name == "" {
            name = "(draft)"
        }
        heading(14, name)

        verdict := "PASS"
        if !an.Overall.Valid {
            verdict = "FAIL"
        }
        line(fmt.Sprintf("Score: %d/100 (%s)", an.Overall.Score, verdict))
        line(fmt.Sprintf("Content type: %s", an.ContentType))
        line(fmt.Sprintf("Words: %d (target %d-%d), reading time %d min",
            an.WordCount.Total, an.WordCount.Target.Min, an.WordCount.Target.Max, an.WordCount.ReadingTime))
        line(fmt.Sprintf("Sections: %d", an.Structure.SectionCount))
        line(fmt.Sprintf("Brand voice: %d%% (%s)", an.BrandVoice.Score, an.BrandVoice.Balance))
        line(fmt.Sprintf("Readability: Flesch %.0f, %s", an.Readability.FleschReadingEase, an.Readability.GradeLevel))

        if len(an.Overall.Issues) > 0 {
            pdf.Ln(2)
            heading(12, "Issues")
            for _, s := range an.Overall.Issues {
                line("- " + s)
            }
        }
        if len(an.Overall.Suggestions) > 0 {
            pdf.Ln(2)
            heading(12, "Suggestions")
            for _, s := range an.Overall.Suggestions {
                line("- " + s)
            }
        }
    }

    return pdf.OutputFileAndClose(outPath)
}
