package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx *CommandContext) *Executor {
	return &Executor{ctx: ctx}
}

// ExecuteSetField creates and executes a set field command
func (e *Executor) ExecuteSetField(key, value string) tea.Cmd {
	cmd := NewSetFieldCommand(e.ctx, key, value)
	return cmd.Execute()
}

// ExecuteActivateField creates and executes an activate field command
func (e *Executor) ExecuteActivateField(key string) tea.Cmd {
	cmd := NewActivateFieldCommand(e.ctx, key)
	return cmd.Execute()
}

// ExecuteExport creates and executes an export command
func (e *Executor) ExecuteExport() tea.Cmd {
	cmd := NewExportCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteCopyReport creates and executes a copy command
func (e *Executor) ExecuteCopyReport() tea.Cmd {
	cmd := NewCopyReportCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteStartAgain creates and executes a start again command
func (e *Executor) ExecuteStartAgain() tea.Cmd {
	cmd := NewStartAgainCommand(e.ctx)
	return cmd.Execute()
}
