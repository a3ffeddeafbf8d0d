package domain

// TaskStatus is the badge shown on a task card
type TaskStatus string

const (
	TaskPending  TaskStatus = "Pending"
	TaskOffTrack TaskStatus = "Off Track"
	TaskOnTrack  TaskStatus = "On Track"
)

// Task check values
const (
	CheckOnTarget    = "on-target"
	CheckDone        = "done"
	CheckNotOnTarget = "not-on-target"
)

// RoleStatus is the badge shown next to a role assignment
type RoleStatus string

const (
	RoleAssigned   RoleStatus = "Assigned"
	RoleUnassigned RoleStatus = "Unassigned"
)

// Role is a workshop role that can be assigned to a person
type Role struct {
	ID    string
	Title string
	Extra bool // shown only when the extra roles section is open
}

// Task is a task card with one status select per check
type Task struct {
	ID     string
	Title  string
	Checks []string
}

// FieldKind is how a form field is edited
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldChoice
	FieldCheckbox
)

// Field describes one form input
type Field struct {
	Key     string
	Label   string
	Kind    FieldKind
	Options []string // choice values; "" is the unset option
	Persist bool     // write through to the key-value store
}
