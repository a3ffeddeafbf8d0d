package input

import (
	"deckhand/internal/domain"
	"deckhand/internal/forms"
	"deckhand/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State   *state.AppState
	Session *forms.Session
}

// CurrentSlide returns the index of the showing slide
func (c *ModelContext) CurrentSlide() int {
	return c.State.CurrentSlide
}

// SlideCount returns the number of slides
func (c *ModelContext) SlideCount() int {
	return c.State.SlideCount
}

// HasTabs reports whether the current slide has tabbed panels
func (c *ModelContext) HasTabs() bool {
	return c.State.ActiveTabs() != nil
}

// FocusedField returns the field with focus
func (c *ModelContext) FocusedField() (domain.Field, bool) {
	return c.State.Focused()
}

// FieldValue returns the current value of a field
func (c *ModelContext) FieldValue(key string) string {
	if c.Session == nil {
		return ""
	}
	return c.Session.Value(key)
}

// HasReport reports whether a report was exported this session
func (c *ModelContext) HasReport() bool {
	return c.State.LastReport != nil
}

// CanStartAgain reports whether the start again control is showing
func (c *ModelContext) CanStartAgain() bool {
	return c.State.ShowStartAgain
}
