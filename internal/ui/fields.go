package ui

import (
	"strings"

	"deckhand/internal/config"
	"deckhand/internal/domain"
	"deckhand/internal/forms"
	"deckhand/internal/ui/views"
)

// fieldGroup is a run of fields shown together on a slide
type fieldGroup struct {
	title  string
	badge  string
	fields []domain.Field
}

// fieldLayout lists the field groups of the current slide in focus order
func (m *Model) fieldLayout() []fieldGroup {
	slide := m.presentation.Deck().Current()
	var groups []fieldGroup

	switch slide.Kind {
	case config.KindTasks:
		for _, task := range m.tasks {
			g := fieldGroup{title: task.Title}
			values := make([]string, len(task.Checks))
			for i := range task.Checks {
				key := forms.TaskCheckKey(task.ID, i)
				values[i] = m.session.Value(key)
				g.fields = m.appendField(g.fields, key)
			}
			g.badge = string(forms.DeriveTaskStatus(values))
			groups = append(groups, g)
		}

	case config.KindRoles:
		extraOpen := m.session.Checked(forms.KeyExtraRolesOpen)
		for _, role := range m.roles {
			if role.Extra && !extraOpen {
				continue
			}
			title := role.Title
			if custom := strings.TrimSpace(m.session.Value(forms.RoleTitleKey(role.ID))); custom != "" {
				title = custom
			}
			g := fieldGroup{
				title: title,
				badge: string(forms.DeriveRoleStatus(m.session.Value(forms.RoleKey(role.ID)))),
			}
			g.fields = m.appendField(g.fields, forms.RoleTitleKey(role.ID))
			g.fields = m.appendField(g.fields, forms.RoleKey(role.ID))
			groups = append(groups, g)
		}
	}

	if tabs := m.state.ActiveTabs(); tabs != nil {
		if tab, ok := tabs.Active(); ok {
			g := fieldGroup{}
			for _, key := range tab.Fields {
				g.fields = m.appendField(g.fields, key)
			}
			groups = append(groups, g)
		}
	}

	if len(slide.Fields) > 0 {
		g := fieldGroup{}
		for _, key := range slide.Fields {
			g.fields = m.appendField(g.fields, key)
		}
		groups = append(groups, g)
	}

	return groups
}

// appendField adds the definition for key, skipping keys the session does
// not know
func (m *Model) appendField(fields []domain.Field, key string) []domain.Field {
	if f, ok := m.session.Field(key); ok {
		return append(fields, f)
	}
	return fields
}

// refreshFields recomputes the focusable fields after anything that can
// change them
func (m *Model) refreshFields() {
	var flat []domain.Field
	for _, g := range m.fieldLayout() {
		flat = append(flat, g.fields...)
	}
	m.state.SetVisibleFields(flat)
}

// fieldGroupViews converts the layout for rendering
func (m *Model) fieldGroupViews(editing bool) []views.FieldGroup {
	layout := m.fieldLayout()
	out := make([]views.FieldGroup, 0, len(layout))
	index := 0
	for _, g := range layout {
		vg := views.FieldGroup{Title: g.title, Badge: g.badge}
		for _, f := range g.fields {
			focused := index == m.state.FocusedField
			vg.Fields = append(vg.Fields, views.FieldView{
				Label:   f.Label,
				Value:   m.session.Value(f.Key),
				Kind:    f.Kind,
				Focused: focused,
				Editing: focused && editing,
			})
			index++
		}
		out = append(out, vg)
	}
	return out
}
