package app

import (
    "bytes"
    "context"
    "encoding/json"
    "os"
    "path/filepath"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/hyperifyio/styleguard/internal/aggregate"
    "github.com/hyperifyio/styleguard/internal/document"
    "github.com/hyperifyio/styleguard/internal/watch"
)

const wellStructured = `# Shipping Faster

## Introduction
We ship small changes.

## Setup
Install the tools.

## Build
Run the build.

## Test
Run the tests.

## Release
Tag the release.

## Conclusion
Ship it.
`

func newApp(t *testing.T, cfg Config) *App {
    t.Helper()
    ApplyDefaults(&cfg)
    a, err := New(cfg)
    require.NoError(t, err)
    return a
}

func TestExpand(t *testing.T) {
    dir := t.TempDir()
    a := writeFile(t, dir, "posts/a.md", "# A\n")
    b := writeFile(t, dir, "posts/nested/b.md", "# B\n")
    writeFile(t, dir, "posts/nested/c.txt", "C")

    got, err := Expand([]string{filepath.Join(dir, "posts", "**", "*.md"), a})
    require.NoError(t, err)
    assert.Equal(t, []string{a, b}, got, "glob expanded, duplicates dropped")

    missing := filepath.Join(dir, "missing.md")
    got, err = Expand([]string{missing})
    require.NoError(t, err, "plain paths pass through")
    assert.Equal(t, []string{missing}, got)

    _, err = Expand([]string{filepath.Join(dir, "*.html")})
    assert.ErrorIs(t, err, ErrNoInputs)

    _, err = Expand(nil)
    assert.ErrorIs(t, err, ErrNoInputs)
}

func TestRun_StructureCommandPasses(t *testing.T) {
    p := writeFile(t, t.TempDir(), "post.md", wellStructured)
    a := newApp(t, Config{Command: CommandStructure, Inputs: []string{p}})

    var out bytes.Buffer
    valid, err := a.Run(context.Background(), &out)
    require.NoError(t, err)
    assert.True(t, valid)
    assert.Equal(t, 0, ExitCode(valid, err))

    var rep map[string]any
    require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
    assert.Equal(t, true, rep["valid"])
    assert.Equal(t, float64(6), rep["sectionCount"])
    assert.Equal(t, []any{}, rep["issues"])
}

func TestRun_CheckFailsShortDraft(t *testing.T) {
    p := writeFile(t, t.TempDir(), "post.md", wellStructured)
    a := newApp(t, Config{Command: CommandCheck, Inputs: []string{p}})

    var out bytes.Buffer
    valid, err := a.Run(context.Background(), &out)
    require.NoError(t, err)
    assert.False(t, valid)
    assert.Equal(t, 1, ExitCode(valid, err))

    var rep aggregate.Report
    require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
    require.NotEmpty(t, rep.Issues)
    assert.True(t, strings.HasPrefix(rep.Issues[0], "Word count too low:"))
}

func TestRun_SuggestionsAlwaysValid(t *testing.T) {
    p := writeFile(t, t.TempDir(), "post.md", "# Empty-ish\n")
    a := newApp(t, Config{Command: CommandSuggestions, Inputs: []string{p}})

    var out bytes.Buffer
    valid, err := a.Run(context.Background(), &out)
    require.NoError(t, err)
    assert.True(t, valid)

    var rep SuggestionsReport
    require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
    assert.Len(t, rep.Suggestions, 3)
}

func TestRun_BatchJSONAndOrder(t *testing.T) {
    dir := t.TempDir()
    var paths []string
    for _, name := range []string{"c.md", "a.md", "b.md"} {
        paths = append(paths, writeFile(t, dir, name, wellStructured))
    }
    a := newApp(t, Config{Command: CommandWordCount, Inputs: paths, Workers: 2})

    var out bytes.Buffer
    _, err := a.Run(context.Background(), &out)
    require.NoError(t, err)

    var list []struct {
        Path   string          `json:"path"`
        Report json.RawMessage `json:"report"`
    }
    require.NoError(t, json.Unmarshal(out.Bytes(), &list))
    require.Len(t, list, 3)
    for i := range paths {
        assert.Equal(t, paths[i], list[i].Path)
    }
}

func TestRun_TextFormat(t *testing.T) {
    p := writeFile(t, t.TempDir(), "post.md", wellStructured)
    a := newApp(t, Config{Command: CommandCheck, Inputs: []string{p}, Format: FormatText})

    var out bytes.Buffer
    _, err := a.Run(context.Background(), &out)
    require.NoError(t, err)
    text := out.String()
    assert.True(t, strings.HasPrefix(text, p+": FAIL (score "), text)
    assert.Contains(t, text, "  - Word count too low:")
}

func TestRun_InputErrors(t *testing.T) {
    dir := t.TempDir()

    a := newApp(t, Config{Command: CommandCheck, Inputs: []string{filepath.Join(dir, "nope.md")}})
    var out bytes.Buffer
    valid, err := a.Run(context.Background(), &out)
    assert.ErrorIs(t, err, document.ErrNotFound)
    assert.Equal(t, 2, ExitCode(valid, err))
    assert.Empty(t, out.String(), "no partial report")

    bad := filepath.Join(dir, "bad.md")
    require.NoError(t, os.WriteFile(bad, []byte{'#', ' ', 0xff, 0xfe}, 0o644))
    good := writeFile(t, dir, "good.md", wellStructured)
    a = newApp(t, Config{Command: CommandCheck, Inputs: []string{good, bad}})
    out.Reset()
    _, err = a.Run(context.Background(), &out)
    assert.ErrorIs(t, err, document.ErrInvalidUTF8)
    assert.Empty(t, out.String())
}

func TestRun_ContentTypeOverride(t *testing.T) {
    p := writeFile(t, t.TempDir(), "personal-notes.md", wellStructured)

    a := newApp(t, Config{Command: CommandWordCount, Inputs: []string{p}})
    an, err := a.AnalyzeFile(p)
    require.NoError(t, err)
    assert.Equal(t, document.PersonalDev, an.ContentType, "filename hint")

    a = newApp(t, Config{Command: CommandWordCount, Inputs: []string{p}, ContentType: "technical"})
    an, err = a.AnalyzeFile(p)
    require.NoError(t, err)
    assert.Equal(t, document.Tech, an.ContentType)
    assert.Equal(t, 1000, an.WordCount.Target.Min)
}

func TestNew_RulesFile(t *testing.T) {
    dir := t.TempDir()
    rp := writeFile(t, dir, "rules.yaml", "structure:\n  minSections: 1\n  maxSections: 2\n")
    p := writeFile(t, dir, "post.md", wellStructured)

    a := newApp(t, Config{Command: CommandStructure, Inputs: []string{p}, RulesPath: rp})
    assert.Equal(t, 2, a.Rules().Structure.MaxSections)

    an, err := a.AnalyzeFile(p)
    require.NoError(t, err)
    assert.Contains(t, an.Structure.Issues, "Too many sections: 6 (max: 2)")

    _, err = New(Config{Command: CommandCheck, RulesPath: filepath.Join(dir, "missing.yaml")})
    assert.Error(t, err)
}

func TestRun_WritesPDF(t *testing.T) {
    dir := t.TempDir()
    p := writeFile(t, dir, "post.md", wellStructured)
    pdfPath := filepath.Join(dir, "report.pdf")
    a := newApp(t, Config{Command: CommandCheck, Inputs: []string{p}, PDFPath: pdfPath})

    _, err := a.Run(context.Background(), &bytes.Buffer{})
    require.NoError(t, err)
    b, err := os.ReadFile(pdfPath)
    require.NoError(t, err)
    assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestExitCode(t *testing.T) {
    assert.Equal(t, 0, ExitCode(true, nil))
    assert.Equal(t, 1, ExitCode(false, nil))
    assert.Equal(t, 2, ExitCode(true, ErrNoInputs))
}

func TestWatchTargets(t *testing.T) {
    dir := t.TempDir()
    a := writeFile(t, dir, "drafts/a.md", "# A\n")
    b := writeFile(t, dir, "drafts/sub/b.html", "<h1>B</h1>")
    writeFile(t, dir, "drafts/notes.txt", "x")
    single := writeFile(t, dir, "other/c.md", "# C\n")
    writeFile(t, dir, "drafts/node_modules/pkg/readme.md", "# Vendored\n")
    writeFile(t, dir, "drafts/.git/notes.md", "# Hidden\n")
    writeFile(t, dir, "drafts/vendor/x.md", "# Vendored\n")

    roots, files, err := watchTargets([]string{filepath.Join(dir, "drafts"), single}, watch.DefaultConfig())
    require.NoError(t, err)
    assert.Equal(t, []string{filepath.Join(dir, "drafts"), single}, roots)
    assert.ElementsMatch(t, []string{a, b, single}, files)
}
