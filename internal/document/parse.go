package document

import "strings"

// Section is a block introduced by a level-2 heading. Body holds every line
// up to the next level-2 heading verbatim, each terminated by "\n".
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Parsed is the structural view of a draft. Sections keep source order and
// may be empty even when Title is set.
type Parsed struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

type parseState int

const (
	// stateBeforeTitle: nothing claimed yet.
	stateBeforeTitle parseState = iota
	// statePreamble: title claimed, no section open. Lines are discarded.
	statePreamble
	// stateSection: a section is open and collects body lines.
	stateSection
)

const (
	titlePrefix   = "# "
	sectionPrefix = "## "
)

// parser is the line state machine behind Parse. The title can be claimed
// from any state, but only once, and an empty "# " line does not claim it.
type parser struct {
	state        parseState
	titleClaimed bool
	title        string
	current      Section
	body         strings.Builder
	sections     []Section
}

func (p *parser) feed(line string) {
	if !p.titleClaimed && strings.HasPrefix(line, titlePrefix) {
		p.title = strings.TrimSpace(line[len(titlePrefix):])
		p.titleClaimed = p.title != ""
		if p.state == stateBeforeTitle {
			p.state = statePreamble
		}
		return
	}
	if strings.HasPrefix(line, sectionPrefix) {
		p.closeSection()
		p.current = Section{Heading: strings.TrimSpace(line[len(sectionPrefix):])}
		p.state = stateSection
		return
	}
	if p.state == stateSection {
		p.body.WriteString(line)
		p.body.WriteByte('\n')
	}
}

func (p *parser) closeSection() {
	if p.state != stateSection {
		return
	}
	p.current.Body = p.body.String()
	p.sections = append(p.sections, p.current)
	p.body.Reset()
}

func (p *parser) finish() Parsed {
	p.closeSection()
	return Parsed{Title: p.title, Sections: p.sections}
}

// Parse splits markdown into a title and level-2 sections. The first "# "
// line with a non-empty heading becomes the title; each "## " line opens a
// section. Lines before the first section that are not the title do not form
// a section.
func Parse(text string) Parsed {
	p := &parser{}
	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			p.feed(line)
		}
	}
	return p.finish()
}

// SectionHeadings returns the headings in order.
func (d Parsed) SectionHeadings() []string {
	out := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		out = append(out, s.Heading)
	}
	return out
}
