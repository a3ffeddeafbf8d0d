package report

import (
	"deckhand/internal/deck"
	"deckhand/internal/domain"
)

// Marketing Clinic field keys.
const (
	KeyVentureName    = "venture-name"
	KeyTargetAudience = "target-audience"
	KeyKeyObjectives  = "key-objectives"
	KeyBudgetTimeline = "budget-timeline"

	KeyContentBlog         = "content-blog"
	KeyContentSocial       = "content-social"
	KeyContentVideo        = "content-video"
	KeyContentInfographics = "content-infographics"
	KeyContentCalendar     = "content-calendar"

	KeyTrackingTools      = "tracking-tools"
	KeyReportingFrequency = "reporting-frequency"
	KeyKPIsDashboard      = "kpis-dashboard"

	KeyProcessPlanning     = "process-planning"
	KeyProcessExecution    = "process-execution"
	KeyProcessMonitoring   = "process-monitoring"
	KeyProcessOptimization = "process-optimization"
)

// Option is one checkbox of a multi-select group.
type Option struct {
	Key   string
	Label string
}

// Channels are the marketing channel checkboxes, in report order.
var Channels = []Option{
	{"channel-social", "Social Media"},
	{"channel-email", "Email Marketing"},
	{"channel-content", "Content Marketing"},
	{"channel-paid", "Paid Advertising"},
	{"channel-events", "Events/Networking"},
}

// Metrics are the key metric checkboxes, in report order.
var Metrics = []Option{
	{"metric-traffic", "Website Traffic"},
	{"metric-engagement", "Social Media Engagement"},
	{"metric-leads", "Lead Generation"},
	{"metric-conversion", "Conversion Rate"},
	{"metric-email", "Email Open Rate"},
	{"metric-roi", "ROI"},
}

// FirstTab is where the clinic starts and where "start again" returns to.
const FirstTab = "marketing-plans"

func text(key, label string) domain.Field {
	return domain.Field{Key: key, Label: label, Kind: domain.FieldText, Persist: true}
}

func checkboxes(opts []Option) []domain.Field {
	fields := make([]domain.Field, len(opts))
	for i, o := range opts {
		fields[i] = domain.Field{Key: o.Key, Label: o.Label, Kind: domain.FieldCheckbox, Persist: true}
	}
	return fields
}

// ClinicFields returns every Marketing Clinic form field.
func ClinicFields() []domain.Field {
	var fields []domain.Field
	fields = append(fields,
		text(KeyVentureName, "Venture Name"),
		text(KeyTargetAudience, "Target Audience"),
		text(KeyKeyObjectives, "Key Objectives"),
		text(KeyBudgetTimeline, "Budget & Timeline"),
	)
	fields = append(fields, checkboxes(Channels)...)
	fields = append(fields,
		text(KeyContentBlog, "Blog Posts"),
		text(KeyContentSocial, "Social Media Posts"),
		text(KeyContentVideo, "Video Content"),
		text(KeyContentInfographics, "Infographics"),
		text(KeyContentCalendar, "Content Calendar"),
	)
	fields = append(fields, checkboxes(Metrics)...)
	fields = append(fields,
		text(KeyTrackingTools, "Tracking Tools"),
		text(KeyReportingFrequency, "Reporting Frequency"),
		text(KeyKPIsDashboard, "KPIs Dashboard"),
		text(KeyProcessPlanning, "Planning"),
		text(KeyProcessExecution, "Execution"),
		text(KeyProcessMonitoring, "Monitoring"),
		text(KeyProcessOptimization, "Optimization"),
	)
	return fields
}

// ClinicKeys lists the keys cleared by "start again".
func ClinicKeys() []string {
	fields := ClinicFields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

func optionKeys(opts []Option) []string {
	keys := make([]string, len(opts))
	for i, o := range opts {
		keys[i] = o.Key
	}
	return keys
}

// ClinicTabs returns the four clinic panels with their fields.
func ClinicTabs() []deck.Tab {
	return []deck.Tab{
		{
			ID:    FirstTab,
			Title: "Marketing Plans",
			Body:  "Who are you reaching, and how?",
			Fields: append([]string{KeyVentureName, KeyTargetAudience, KeyKeyObjectives},
				append(optionKeys(Channels), KeyBudgetTimeline)...),
		},
		{
			ID:     "content-ideas",
			Title:  "Content Ideas",
			Body:   "What will you make?",
			Fields: []string{KeyContentBlog, KeyContentSocial, KeyContentVideo, KeyContentInfographics, KeyContentCalendar},
		},
		{
			ID:     "tracking-systems",
			Title:  "Tracking Systems",
			Body:   "How will you know it is working?",
			Fields: append(optionKeys(Metrics), KeyTrackingTools, KeyReportingFrequency, KeyKPIsDashboard),
		},
		{
			ID:     "business-process",
			Title:  "Business Process",
			Body:   "Plan, execute, monitor, optimise.",
			Fields: []string{KeyProcessPlanning, KeyProcessExecution, KeyProcessMonitoring, KeyProcessOptimization},
		},
	}
}
