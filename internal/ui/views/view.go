package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"deckhand/internal/deck"
	"deckhand/internal/domain"
)

// FieldView is one form field as displayed
type FieldView struct {
	Label   string
	Value   string
	Kind    domain.FieldKind
	Focused bool
	Editing bool
}

// FieldGroup is a titled run of fields, optionally with a status badge
type FieldGroup struct {
	Title  string
	Badge  string
	Fields []FieldView
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	DeckTitle string
	Slide     deck.Slide
	Index     int
	Count     int
	IsFirst   bool
	IsLast    bool

	HasTimer bool
	Timer    deck.TimerUpdate
	PulseLit bool

	RevealedItems int
	Tabs          []deck.Tab
	ActiveTab     int
	FieldGroups   []FieldGroup

	TextInput      string // rendered text input while editing
	Confirming     bool
	StatusMessage  string
	SaveLabel      string
	ShowStartAgain bool

	ShowHelpBar bool
	HelpModel   help.Model
	Keys        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Confirming {
		return r.popupRender.RenderPopup(
			r.styles.Confirm.Render("Start again? This clears every clinic answer. (y/n)"),
			state.Width, state.Height)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n")

	content.WriteString(r.styles.SlideTitle.Render(state.Slide.Title))
	content.WriteString("\n")
	if state.Slide.Body != "" {
		content.WriteString(r.styles.Body.Render(state.Slide.Body))
		content.WriteString("\n")
	}

	for i, item := range state.Slide.Items {
		if i >= state.RevealedItems {
			break
		}
		content.WriteString(r.styles.Item.Render("• " + item))
		content.WriteString("\n")
	}

	if len(state.Tabs) > 0 {
		content.WriteString("\n")
		content.WriteString(r.renderTabs(state))
		content.WriteString("\n")
		if body := state.Tabs[state.ActiveTab].Body; body != "" {
			content.WriteString(r.styles.Dim.Render(body))
			content.WriteString("\n")
		}
	}

	for _, group := range state.FieldGroups {
		content.WriteString(r.renderFieldGroup(group, state.TextInput))
	}

	content.WriteString(r.renderStatusLine(state))

	if state.ShowHelpBar && state.Keys != nil {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.Keys)))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderHeader puts the deck title on the left and the timer on the right
func (r *Renderer) renderHeader(state ViewState) string {
	logo := r.styles.Title.Render(state.DeckTitle)
	if !state.HasTimer {
		return logo
	}

	timer := r.RenderTimer(state.Timer, state.PulseLit)

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(timer)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + timer
}

// RenderTimer renders MM:SS coloured by severity
func (r *Renderer) RenderTimer(u deck.TimerUpdate, pulseLit bool) string {
	text := u.Display
	if !u.Running && u.RemainingSeconds > 0 {
		text += " ⏸"
	}
	if pulseLit {
		return r.styles.TimerPulse.Render(" " + text + " ")
	}
	return r.styles.TimerStyle(u.Severity).Render(text)
}

func (r *Renderer) renderTabs(state ViewState) string {
	parts := make([]string, len(state.Tabs))
	for i, tab := range state.Tabs {
		if i == state.ActiveTab {
			parts[i] = r.styles.ActiveTab.Render(tab.Title)
		} else {
			parts[i] = r.styles.Tab.Render(tab.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) renderFieldGroup(group FieldGroup, textInput string) string {
	var b strings.Builder
	if group.Title != "" || group.Badge != "" {
		title := group.Title
		if group.Badge != "" {
			title = fmt.Sprintf("%s  %s", title, r.styles.BadgeStyle(group.Badge).Render("["+group.Badge+"]"))
		}
		b.WriteString(r.styles.GroupTitle.Render(title))
		b.WriteString("\n")
	}
	for _, f := range group.Fields {
		b.WriteString(r.renderField(f, textInput))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderField(f FieldView, textInput string) string {
	cursor := "  "
	label := r.styles.Label.Render(f.Label + ":")
	if f.Focused {
		cursor = r.styles.Focused.Render("> ")
		label = r.styles.Focused.Render(f.Label + ":")
	}

	var value string
	switch {
	case f.Editing:
		value = textInput
	case f.Kind == domain.FieldCheckbox:
		if f.Value == "true" {
			value = "[x]"
		} else {
			value = "[ ]"
		}
	case f.Value == "":
		value = r.styles.Dim.Render("-")
	default:
		value = f.Value
	}
	return fmt.Sprintf("%s%s %s", cursor, label, value)
}

func (r *Renderer) renderStatusLine(state ViewState) string {
	prev := "‹ prev"
	if state.IsFirst {
		prev = r.styles.Dim.Render(prev)
	}
	next := "next ›"
	if state.IsLast {
		next = r.styles.Dim.Render(next)
	}

	parts := []string{prev, fmt.Sprintf("%d / %d", state.Index+1, state.Count), next}
	if state.SaveLabel != "" {
		parts = append(parts, r.styles.SaveLabel.Render(state.SaveLabel))
	}
	if state.ShowStartAgain {
		parts = append(parts, r.styles.Dim.Render("n: start again"))
	}
	if state.StatusMessage != "" {
		parts = append(parts, state.StatusMessage)
	}
	return r.styles.Status.Render(strings.Join(parts, "   "))
}
