package types

// Navigation actions
type NavigateAction struct {
	Direction string // "next" or "prev"
}

func (a NavigateAction) Type() string { return "navigate" }

// Timer actions
type PauseAllAction struct{}

func (a PauseAllAction) Type() string { return "pause_all" }

type ToggleTimerAction struct{}

func (a ToggleTimerAction) Type() string { return "toggle_timer" }

type ResetTimerAction struct{}

func (a ResetTimerAction) Type() string { return "reset_timer" }

type RestartTimerAction struct{}

func (a RestartTimerAction) Type() string { return "restart_timer" }

// Panel and field actions
type SwitchTabAction struct {
	Delta int
}

func (a SwitchTabAction) Type() string { return "switch_tab" }

type FocusFieldAction struct {
	Delta int
}

func (a FocusFieldAction) Type() string { return "focus_field" }

// ActivateFieldAction toggles a checkbox or cycles a choice field
type ActivateFieldAction struct {
	Key string
}

func (a ActivateFieldAction) Type() string { return "activate_field" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for edit mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Key  string
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Report actions
type ExportAction struct{}

func (a ExportAction) Type() string { return "export" }

type CopyReportAction struct{}

func (a CopyReportAction) Type() string { return "copy_report" }

type PreviewReportAction struct{}

func (a PreviewReportAction) Type() string { return "preview_report" }

type StartAgainAction struct{}

func (a StartAgainAction) Type() string { return "start_again" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
