package state

import (
	"deckhand/internal/deck"
	"deckhand/internal/domain"
	"deckhand/internal/report"
)

// PulseState is the completion highlight of one timer
type PulseState struct {
	Slide  int
	Active bool
	Lit    bool // alternates every half period while active
}

// AppState contains all the application state
type AppState struct {
	// Presentation
	CurrentSlide  int
	SlideCount    int
	Timers        map[int]deck.TimerUpdate // slide index -> last tick update
	Pulse         PulseState
	RevealedItems int                  // timeline items shown so far
	Tabs          map[int]*deck.TabSet // slide index -> tab set

	// Fields
	VisibleFields []domain.Field // fields on the current slide or tab
	FocusedField  int

	// Report
	LastReport     *report.Result
	SaveLabel      string
	ShowStartAgain bool

	// UI state
	ShowHelpBar   bool
	InPagerMode   bool
	StatusMessage string // status bar message
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Timers:      make(map[int]deck.TimerUpdate),
		Tabs:        make(map[int]*deck.TabSet),
		ShowHelpBar: true,
	}
}

// SetTimer records a tick update
func (s *AppState) SetTimer(u deck.TimerUpdate) {
	s.Timers[u.Slide] = u
}

// Timer returns the last update of a slide's timer
func (s *AppState) Timer(slide int) (deck.TimerUpdate, bool) {
	u, ok := s.Timers[slide]
	return u, ok
}

// ActiveTabs returns the tab set of the current slide, or nil
func (s *AppState) ActiveTabs() *deck.TabSet {
	t := s.Tabs[s.CurrentSlide]
	if t == nil || t.Len() == 0 {
		return nil
	}
	return t
}

// SetVisibleFields replaces the focusable fields, keeping focus in range
func (s *AppState) SetVisibleFields(fields []domain.Field) {
	s.VisibleFields = fields
	s.clampFocus()
}

// Focused returns the field with focus
func (s *AppState) Focused() (domain.Field, bool) {
	if s.FocusedField < 0 || s.FocusedField >= len(s.VisibleFields) {
		return domain.Field{}, false
	}
	return s.VisibleFields[s.FocusedField], true
}

// MoveFocus moves field focus by delta, stopping at the ends
func (s *AppState) MoveFocus(delta int) {
	s.FocusedField += delta
	s.clampFocus()
}

func (s *AppState) clampFocus() {
	if s.FocusedField >= len(s.VisibleFields) {
		s.FocusedField = len(s.VisibleFields) - 1
	}
	if s.FocusedField < 0 {
		s.FocusedField = 0
	}
}
