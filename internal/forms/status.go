package forms

import (
	"strings"

	"deckhand/internal/domain"
)

// DeriveTaskStatus computes a task card badge from its select values.
// Any "not-on-target" wins; otherwise a blank select leaves the card pending.
func DeriveTaskStatus(values []string) domain.TaskStatus {
	allFilled := true
	hasNotOnTarget := false
	for _, v := range values {
		switch v {
		case "":
			allFilled = false
		case domain.CheckNotOnTarget:
			hasNotOnTarget = true
		}
	}

	switch {
	case hasNotOnTarget:
		return domain.TaskOffTrack
	case !allFilled:
		return domain.TaskPending
	default:
		return domain.TaskOnTrack
	}
}

// DeriveRoleStatus reports whether a role has someone's name against it.
func DeriveRoleStatus(name string) domain.RoleStatus {
	if strings.TrimSpace(name) != "" {
		return domain.RoleAssigned
	}
	return domain.RoleUnassigned
}
