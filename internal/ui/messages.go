package ui

import (
	"deckhand/internal/deck"
	"deckhand/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// timerTickMsg delivers one scheduled countdown tick
type timerTickMsg struct {
	key deck.TickKey
}

// revealMsg shows the next timeline item
type revealMsg struct {
	gen uint64
}

// pulseMsg advances the completion highlight by one frame
type pulseMsg struct {
	gen   uint64
	frame int
}

// pulseClearMsg ends the completion highlight
type pulseClearMsg struct {
	gen uint64
}

// clearStatusMsg clears the status bar if nothing newer replaced it
type clearStatusMsg struct {
	gen uint64
}

// clearSaveLabelMsg restores the save control label
type clearSaveLabelMsg struct {
	gen uint64
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
