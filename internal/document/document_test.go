package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TitleAndSections(t *testing.T) {
	md := "# My Post\n\nPreamble text.\n\n## Introduction\nHello.\n\nMore.\n## Body\n### Detail\nText\n"
	p := Parse(md)
	assert.Equal(t, "My Post", p.Title)
	require.Len(t, p.Sections, 2)
	assert.Equal(t, "Introduction", p.Sections[0].Heading)
	assert.Equal(t, "Hello.\n\nMore.\n", p.Sections[0].Body)
	assert.Equal(t, "Body", p.Sections[1].Heading)
	assert.Equal(t, "### Detail\nText\n\n", p.Sections[1].Body)
	assert.Equal(t, []string{"Introduction", "Body"}, p.SectionHeadings())
}

func TestParse_NoSections(t *testing.T) {
	p := Parse("# Only a title\n\nSome text without headings.\n")
	assert.Equal(t, "Only a title", p.Title)
	assert.Empty(t, p.Sections)
}

func TestParse_Empty(t *testing.T) {
	p := Parse("")
	assert.Equal(t, "", p.Title)
	assert.Empty(t, p.Sections)
}

func TestParse_OnlyOneTitleClaimed(t *testing.T) {
	p := Parse("# First\n## A\n# Second\ntext\n")
	assert.Equal(t, "First", p.Title)
	require.Len(t, p.Sections, 1)
	assert.Equal(t, "# Second\ntext\n\n", p.Sections[0].Body)
}

func TestParse_EmptyTitleLineDoesNotClaim(t *testing.T) {
	p := Parse("# \n# Real Title\n## Intro\nhello\n")
	assert.Equal(t, "Real Title", p.Title)
	require.Len(t, p.Sections, 1)
	assert.Equal(t, "hello\n\n", p.Sections[0].Body)
}

func TestParse_TitleAfterSectionStillClaimed(t *testing.T) {
	p := Parse("## A\nbody\n# Late Title\nmore\n")
	assert.Equal(t, "Late Title", p.Title)
	require.Len(t, p.Sections, 1)
	assert.Equal(t, "body\nmore\n\n", p.Sections[0].Body)
}

func TestParser_StateTransitions(t *testing.T) {
	p := &parser{}
	assert.Equal(t, stateBeforeTitle, p.state)
	p.feed("preamble before anything")
	assert.Equal(t, stateBeforeTitle, p.state)
	p.feed("# Title")
	assert.Equal(t, statePreamble, p.state)
	p.feed("ignored preamble")
	assert.Equal(t, statePreamble, p.state)
	p.feed("## One")
	assert.Equal(t, stateSection, p.state)
	p.feed("body")
	out := p.finish()
	require.Len(t, out.Sections, 1)
	assert.Equal(t, "body\n", out.Sections[0].Body)
}

func TestClassify_FilenameHints(t *testing.T) {
	r := DefaultClassifierRules()
	assert.Equal(t, Tech, Classify("drafts/draft-tech.md", "", r))
	assert.Equal(t, Tech, Classify("technical-post.md", "journey growth", r))
	assert.Equal(t, PersonalDev, Classify("personal-growth.md", "code api", r))
	assert.Equal(t, PersonalDev, Classify("dev-notes.md", "", r))
	// Directory names do not count as hints.
	assert.Equal(t, Default, Classify("/home/dev/post.md", "", r))
}

func TestClassify_ContentMajorityAndTie(t *testing.T) {
	r := DefaultClassifierRules()
	assert.Equal(t, Tech, Classify("post.md", "The API function and some code.", r))
	assert.Equal(t, PersonalDev, Classify("post.md", "My journey: I learned a lot.", r))
	assert.Equal(t, Default, Classify("post.md", "code and journey", r))
	assert.Equal(t, Default, Classify("post.md", "nothing relevant here", r))
}

func TestParseContentType(t *testing.T) {
	ct, ok := ParseContentType("Technical")
	assert.True(t, ok)
	assert.Equal(t, Tech, ct)
	ct, ok = ParseContentType("personal-dev")
	assert.True(t, ok)
	assert.Equal(t, PersonalDev, ct)
	_, ok = ParseContentType("poetry")
	assert.False(t, ok)
}

func TestNew_OverrideSkipsClassification(t *testing.T) {
	d := New("draft-tech.md", "text", PersonalDev, DefaultClassifierRules())
	assert.Equal(t, PersonalDev, d.ContentType)
	d = New("draft-tech.md", "text", "", DefaultClassifierRules())
	assert.Equal(t, Tech, d.ContentType)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.md"), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoad_InvalidUTF8(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.md")
	require.NoError(t, os.WriteFile(p, []byte{'#', ' ', 0xff, 0xfe, 'x'}, 0o644))
	_, err := Load(p, LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
}

func TestLoad_StripsBOM(t *testing.T) {
	p := filepath.Join(t.TempDir(), "post.md")
	require.NoError(t, os.WriteFile(p, append([]byte{0xEF, 0xBB, 0xBF}, []byte("# Title\n")...), 0o644))
	d, err := Load(p, LoadOptions{Classifier: DefaultClassifierRules()})
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", d.Text)
	assert.Equal(t, "Title", Parse(d.Text).Title)
	assert.Equal(t, Default, d.ContentType)
}

func TestLoad_HTMLDraft(t *testing.T) {
	p := filepath.Join(t.TempDir(), "post.html")
	page := `<html><head><title>Shipping Faster</title></head><body><h2>Introduction</h2><p>Hello there.</p></body></html>`
	require.NoError(t, os.WriteFile(p, []byte(page), 0o644))
	d, err := Load(p, LoadOptions{Classifier: DefaultClassifierRules()})
	require.NoError(t, err)
	parsed := Parse(d.Text)
	assert.Equal(t, "Shipping Faster", parsed.Title)
	require.Len(t, parsed.Sections, 1)
	assert.Equal(t, "Introduction", parsed.Sections[0].Heading)
	assert.Contains(t, parsed.Sections[0].Body, "Hello there.")
}
