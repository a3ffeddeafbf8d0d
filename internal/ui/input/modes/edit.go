package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"deckhand/internal/ui/input/types"
)

// EditMode edits the focused text field
type EditMode struct {
	TextInputMode
	key string
}

func NewEditMode(ti *textinput.Model) *EditMode {
	return &EditMode{TextInputMode: NewTextInputMode(types.ModeEdit, "edit", ti)}
}

func (m *EditMode) Enter(ctx types.Context) []types.Action {
	if field, ok := ctx.FocusedField(); ok {
		m.key = field.Key
	}
	return m.TextInputMode.Enter(ctx)
}

func (m *EditMode) Exit(ctx types.Context) []types.Action {
	m.key = ""
	return m.TextInputMode.Exit(ctx)
}

func (m *EditMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	return m.handleKey(msg, m.key)
}
