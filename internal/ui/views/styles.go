package views

import (
	"github.com/charmbracelet/lipgloss"

	"deckhand/internal/deck"
	"deckhand/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	SlideTitle   lipgloss.Style
	Body         lipgloss.Style
	Confirm      lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Item         lipgloss.Style
	Tab          lipgloss.Style
	ActiveTab    lipgloss.Style
	GroupTitle   lipgloss.Style
	Label        lipgloss.Style
	Focused      lipgloss.Style
	PopupBox     lipgloss.Style
	SaveLabel    lipgloss.Style
	TimerNormal  lipgloss.Style
	TimerWarning lipgloss.Style
	TimerDanger  lipgloss.Style
	TimerPulse   lipgloss.Style
	BadgeGood    lipgloss.Style
	BadgeBad     lipgloss.Style
	BadgePending lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		SlideTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1).
			MarginBottom(1),
		Body:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Item:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		Tab:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		ActiveTab:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Padding(0, 1),
		GroupTitle: lipgloss.NewStyle().Bold(true).MarginTop(1),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("203")),
		SaveLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		TimerNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),  // green
		TimerWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		TimerDanger:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		TimerPulse:   lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("203")).Bold(true),
		BadgeGood:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		BadgeBad:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		BadgePending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// TimerStyle picks the colour for a timer's severity
func (s *Styles) TimerStyle(sev deck.Severity) lipgloss.Style {
	switch sev {
	case deck.SeverityDanger:
		return s.TimerDanger
	case deck.SeverityWarning:
		return s.TimerWarning
	default:
		return s.TimerNormal
	}
}

// BadgeStyle picks the colour for a task or role badge
func (s *Styles) BadgeStyle(badge string) lipgloss.Style {
	switch badge {
	case string(domain.TaskOnTrack), string(domain.RoleAssigned):
		return s.BadgeGood
	case string(domain.TaskOffTrack):
		return s.BadgeBad
	default:
		return s.BadgePending
	}
}
