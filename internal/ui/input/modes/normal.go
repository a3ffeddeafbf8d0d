package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"deckhand/internal/domain"
	"deckhand/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Prev):
		return []types.Action{types.NavigateAction{Direction: "prev"}}, true

	case key.Matches(msg, k.Next):
		return []types.Action{types.NavigateAction{Direction: "next"}}, true

	case key.Matches(msg, k.PauseAll):
		return []types.Action{types.PauseAllAction{}}, true

	case key.Matches(msg, k.Toggle):
		return []types.Action{types.ToggleTimerAction{}}, true

	case key.Matches(msg, k.Reset):
		return []types.Action{types.ResetTimerAction{}}, true

	case key.Matches(msg, k.Restart):
		return []types.Action{types.RestartTimerAction{}}, true

	case key.Matches(msg, k.NextTab):
		if ctx.HasTabs() {
			return []types.Action{types.SwitchTabAction{Delta: 1}}, true
		}
		return nil, true

	case key.Matches(msg, k.PrevTab):
		if ctx.HasTabs() {
			return []types.Action{types.SwitchTabAction{Delta: -1}}, true
		}
		return nil, true

	case key.Matches(msg, k.FieldUp):
		return []types.Action{types.FocusFieldAction{Delta: -1}}, true

	case key.Matches(msg, k.FieldDown):
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true

	case key.Matches(msg, k.Edit):
		field, ok := ctx.FocusedField()
		if !ok {
			return nil, true
		}
		if field.Kind == domain.FieldText {
			return []types.Action{types.ChangeModeAction{
				Mode: types.ModeEdit,
				Data: ctx.FieldValue(field.Key),
			}}, true
		}
		return []types.Action{types.ActivateFieldAction{Key: field.Key}}, true

	case key.Matches(msg, k.Export):
		return []types.Action{types.ExportAction{}}, true

	case key.Matches(msg, k.Copy):
		if !ctx.HasReport() {
			return []types.Action{types.StatusAction{Message: "No report exported yet"}}, true
		}
		return []types.Action{types.CopyReportAction{}}, true

	case key.Matches(msg, k.Preview):
		if !ctx.HasReport() {
			return []types.Action{types.StatusAction{Message: "No report exported yet"}}, true
		}
		return []types.Action{types.PreviewReportAction{}}, true

	case key.Matches(msg, k.StartAgain):
		if !ctx.CanStartAgain() {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirm}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
