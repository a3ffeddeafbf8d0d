package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged   EventType = "SlideChanged"
	EventTimerCompleted EventType = "TimerCompleted"
	EventTimersPaused   EventType = "TimersPaused"
	EventFieldSaved     EventType = "FieldSaved"
	EventFieldsCleared  EventType = "FieldsCleared"
	EventReportExported EventType = "ReportExported"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideChangedEvent is emitted after the presenter moves to another slide
type SlideChangedEvent struct {
	Index int
	Count int
	Title string
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// TimerCompletedEvent is emitted when a slide's countdown reaches zero
type TimerCompletedEvent struct {
	Slide int
	Title string
}

func (e TimerCompletedEvent) Type() EventType { return EventTimerCompleted }

// TimersPausedEvent is emitted when every timer is paused at once
type TimersPausedEvent struct{}

func (e TimersPausedEvent) Type() EventType { return EventTimersPaused }

// FieldSavedEvent is emitted after a form field is written to the store
type FieldSavedEvent struct {
	Key string
}

func (e FieldSavedEvent) Type() EventType { return EventFieldSaved }

// FieldsClearedEvent is emitted when form fields are wiped
type FieldsClearedEvent struct {
	Keys []string
}

func (e FieldsClearedEvent) Type() EventType { return EventFieldsCleared }

// ReportExportedEvent is emitted after a report is written to disk
type ReportExportedEvent struct {
	ReportID    string
	ReportPath  string
	AnswersPath string
	Pages       int
}

func (e ReportExportedEvent) Type() EventType { return EventReportExported }

// ErrorEvent is emitted when a collaborator fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when a deck file is loaded
type ConfigLoadedEvent struct {
	Path   string
	Slides int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when a deck file is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
