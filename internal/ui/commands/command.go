package commands

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"deckhand/internal/domain"
	"deckhand/internal/eventbus"
	"deckhand/internal/forms"
	"deckhand/internal/report"
	"deckhand/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Exporter writes clinic reports
type Exporter interface {
	Export(src report.Source) (*report.Result, error)
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx      context.Context
	State    *state.AppState
	Bus      eventbus.EventBus
	Session  *forms.Session
	Exporter Exporter
}

// StatusMsg asks the model to show a transient status message
type StatusMsg struct {
	Text string
}

// ExportedMsg carries the outcome of a report export
type ExportedMsg struct {
	Result *report.Result
	Err    error
}

// CopiedMsg carries the outcome of a clipboard copy
type CopiedMsg struct {
	Err error
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func (c *CommandContext) fail(message string, err error) tea.Cmd {
	log.Printf("%s: %v", message, err)
	if c.Bus != nil {
		c.Bus.Publish(eventbus.ErrorEvent{Message: message, Err: err})
	}
	return status(fmt.Sprintf("%s: %v", message, err))
}

// SetFieldCommand stores a text field value
type SetFieldCommand struct {
	ctx   *CommandContext
	key   string
	value string
}

// NewSetFieldCommand creates a new set field command
func NewSetFieldCommand(ctx *CommandContext, key, value string) *SetFieldCommand {
	return &SetFieldCommand{ctx: ctx, key: key, value: value}
}

// Execute writes the value through the session
func (c *SetFieldCommand) Execute() tea.Cmd {
	if c.key == "" {
		return nil
	}
	// The session reports store failures on the bus itself
	if err := c.ctx.Session.Set(c.ctx.Ctx, c.key, c.value); err != nil {
		log.Printf("Save failed: %v", err)
		return status(fmt.Sprintf("Save failed: %v", err))
	}
	return nil
}

// ActivateFieldCommand toggles a checkbox or cycles a choice field
type ActivateFieldCommand struct {
	ctx *CommandContext
	key string
}

// NewActivateFieldCommand creates a new activate field command
func NewActivateFieldCommand(ctx *CommandContext, key string) *ActivateFieldCommand {
	return &ActivateFieldCommand{ctx: ctx, key: key}
}

// Execute toggles or cycles the field
func (c *ActivateFieldCommand) Execute() tea.Cmd {
	field, ok := c.ctx.Session.Field(c.key)
	if !ok {
		return nil
	}

	var err error
	switch field.Kind {
	case domain.FieldCheckbox:
		err = c.ctx.Session.Toggle(c.ctx.Ctx, c.key)
	case domain.FieldChoice:
		err = c.ctx.Session.Cycle(c.ctx.Ctx, c.key)
	default:
		return nil
	}
	if err != nil {
		log.Printf("Save failed: %v", err)
		return status(fmt.Sprintf("Save failed: %v", err))
	}
	return nil
}

// ExportCommand writes the clinic report
type ExportCommand struct {
	ctx *CommandContext
}

// NewExportCommand creates a new export command
func NewExportCommand(ctx *CommandContext) *ExportCommand {
	return &ExportCommand{ctx: ctx}
}

// Execute exports synchronously so the answers cannot change mid-write
func (c *ExportCommand) Execute() tea.Cmd {
	if c.ctx.Exporter == nil {
		return status("Export is not configured")
	}
	res, err := c.ctx.Exporter.Export(c.ctx.Session)
	if err != nil {
		log.Printf("Export failed: %v", err)
		if c.ctx.Bus != nil {
			c.ctx.Bus.Publish(eventbus.ErrorEvent{Message: "Export failed", Err: err})
		}
	}
	return func() tea.Msg { return ExportedMsg{Result: res, Err: err} }
}

// CopyReportCommand copies the last report to the clipboard
type CopyReportCommand struct {
	ctx *CommandContext
}

// NewCopyReportCommand creates a new copy command
func NewCopyReportCommand(ctx *CommandContext) *CopyReportCommand {
	return &CopyReportCommand{ctx: ctx}
}

// Execute copies in the background
func (c *CopyReportCommand) Execute() tea.Cmd {
	res := c.ctx.State.LastReport
	return func() tea.Msg {
		return CopiedMsg{Err: report.CopyToClipboard(res)}
	}
}

// StartAgainCommand clears the clinic answers
type StartAgainCommand struct {
	ctx *CommandContext
}

// NewStartAgainCommand creates a new start again command
func NewStartAgainCommand(ctx *CommandContext) *StartAgainCommand {
	return &StartAgainCommand{ctx: ctx}
}

// Execute clears every clinic field and returns the clinic tabs to the start
func (c *StartAgainCommand) Execute() tea.Cmd {
	if err := c.ctx.Session.Clear(c.ctx.Ctx, report.ClinicKeys()...); err != nil {
		return c.ctx.fail("Clear failed", err)
	}

	c.ctx.State.ShowStartAgain = false
	for _, tabs := range c.ctx.State.Tabs {
		if !tabs.Select(report.FirstTab) {
			tabs.Reset()
		}
	}
	return status("Clinic cleared")
}
