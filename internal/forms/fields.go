package forms

import (
	"fmt"

	"deckhand/internal/domain"
)

// Stable store keys for the session glue.
const (
	KeyCheckinQuestion  = "checkinQuestion"
	KeyCheckoutQuestion = "checkoutQuestion"
	KeyAnnouncements    = "announcements"
	KeyTaskNotes        = "taskNotes"
	KeyExtraRolesOpen   = "extraRolesOpen"

	KeyEDIPolicyStatus              = "ediPolicyStatus"
	KeyEDIPolicyNotes               = "ediPolicyNotes"
	KeySexualHarassmentPolicyStatus = "sexualHarassmentPolicyStatus"
	KeySexualHarassmentPolicyNotes  = "sexualHarassmentPolicyNotes"
)

// PolicyStatusOptions are the values of a policy status select.
var PolicyStatusOptions = []string{"", "in-place", "in-progress", "not-started"}

// TaskCheckOptions are the values of a task status select.
var TaskCheckOptions = []string{"", domain.CheckOnTarget, domain.CheckDone, domain.CheckNotOnTarget}

// RoleKey is the store key of a role's assignee.
func RoleKey(roleID string) string { return "role-" + roleID }

// RoleTitleKey is the store key of a role's editable title.
func RoleTitleKey(roleID string) string { return "role-title-" + roleID }

// TaskCheckKey is the key of one status select on a task card.
func TaskCheckKey(taskID string, check int) string {
	return fmt.Sprintf("task-%s-%d", taskID, check)
}

// SessionFields returns every form field of a workshop session.
func SessionFields(roles []domain.Role, tasks []domain.Task) []domain.Field {
	fields := []domain.Field{
		{Key: KeyCheckinQuestion, Label: "Check-in question", Kind: domain.FieldText, Persist: true},
		{Key: KeyCheckoutQuestion, Label: "Check-out question", Kind: domain.FieldText, Persist: true},
		{Key: KeyAnnouncements, Label: "Announcements", Kind: domain.FieldText, Persist: true},
		{Key: KeyTaskNotes, Label: "Notes", Kind: domain.FieldText, Persist: true},
		{Key: KeyExtraRolesOpen, Label: "Extra roles", Kind: domain.FieldCheckbox, Persist: true},
		{Key: KeyEDIPolicyStatus, Label: "EDI policy", Kind: domain.FieldChoice, Options: PolicyStatusOptions, Persist: true},
		{Key: KeyEDIPolicyNotes, Label: "EDI policy notes", Kind: domain.FieldText, Persist: true},
		{Key: KeySexualHarassmentPolicyStatus, Label: "Sexual harassment policy", Kind: domain.FieldChoice, Options: PolicyStatusOptions, Persist: true},
		{Key: KeySexualHarassmentPolicyNotes, Label: "Sexual harassment policy notes", Kind: domain.FieldText, Persist: true},
	}

	for _, r := range roles {
		fields = append(fields,
			domain.Field{Key: RoleTitleKey(r.ID), Label: "Role title", Kind: domain.FieldText, Persist: true},
			domain.Field{Key: RoleKey(r.ID), Label: r.Title, Kind: domain.FieldText, Persist: true},
		)
	}

	// Task selects are working state for the session and are not persisted.
	for _, task := range tasks {
		for i, check := range task.Checks {
			fields = append(fields, domain.Field{
				Key:     TaskCheckKey(task.ID, i),
				Label:   check,
				Kind:    domain.FieldChoice,
				Options: TaskCheckOptions,
			})
		}
	}

	return fields
}
