package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout controls wrapping and pagination. Vertical measurements are in
// millimetres of an A4 page; Width is in terminal cells.
type Layout struct {
	Width        int
	PageHeight   int
	TopMargin    int
	BottomMargin int
	LineHeight   int
	ParagraphGap int
	TitleGap     int
	SectionGap   int
}

// DefaultLayout matches an A4 page with a 20mm top and 30mm bottom margin.
func DefaultLayout() Layout {
	return Layout{
		Width:        80,
		PageHeight:   297,
		TopMargin:    20,
		BottomMargin: 30,
		LineHeight:   7,
		ParagraphGap: 5,
		TitleGap:     5,
		SectionGap:   10,
	}
}

// Document is the report before layout.
type Document struct {
	Title    string
	Sections []Section
}

// Section is a heading followed by one paragraph per line.
type Section struct {
	Heading string
	Lines   []string
}

// Page is one page of rendered lines.
type Page []string

// Pages is a paginated report.
type Pages []Page

// String joins pages with a form feed.
func (p Pages) String() string {
	parts := make([]string, len(p))
	for i, page := range p {
		parts[i] = strings.Join(page, "\n")
	}
	return strings.Join(parts, "\n\f\n") + "\n"
}

type pager struct {
	layout Layout
	pages  Pages
	page   Page
	y      int
}

// add writes a paragraph, then breaks the page once the cursor passes the
// bottom margin.
func (p *pager) add(text string) {
	lines := wrap(text, p.layout.Width)
	p.page = append(p.page, lines...)
	p.y += len(lines)*p.layout.LineHeight + p.layout.ParagraphGap
	if p.y > p.layout.PageHeight-p.layout.BottomMargin {
		p.pages = append(p.pages, p.page)
		p.page = nil
		p.y = p.layout.TopMargin
	}
}

// gap advances the cursor without a page check.
func (p *pager) gap(mm int) {
	p.y += mm
	if len(p.page) > 0 {
		p.page = append(p.page, "")
	}
}

// Paginate wraps and splits the document into pages.
func (l Layout) Paginate(doc Document) Pages {
	p := &pager{layout: l, y: l.TopMargin}
	p.add(doc.Title)
	p.gap(l.TitleGap)
	for i, s := range doc.Sections {
		if i > 0 {
			p.gap(l.SectionGap)
		}
		p.add(s.Heading)
		for _, line := range s.Lines {
			p.add(line)
		}
	}
	if len(p.page) > 0 {
		p.pages = append(p.pages, p.page)
	}
	return p.pages
}

func wrap(text string, width int) []string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return []string{text}
	}
	rendered := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}
