package report

import (
	"strings"
	"time"
)

// Source reads form values. forms.Session satisfies it.
type Source interface {
	Value(key string) string
	Checked(key string) bool
}

// Answers is a snapshot of the clinic form, as written to the YAML export.
type Answers struct {
	ID              string          `yaml:"id"`
	GeneratedAt     time.Time       `yaml:"generated_at"`
	MarketingPlan   MarketingPlan   `yaml:"marketing_plan"`
	ContentIdeas    ContentIdeas    `yaml:"content_ideas"`
	TrackingSystems TrackingSystems `yaml:"tracking_systems"`
	BusinessProcess BusinessProcess `yaml:"business_process"`
}

type MarketingPlan struct {
	VentureName    string   `yaml:"venture_name"`
	TargetAudience string   `yaml:"target_audience"`
	KeyObjectives  string   `yaml:"key_objectives"`
	Channels       []string `yaml:"channels"`
	BudgetTimeline string   `yaml:"budget_timeline"`
}

type ContentIdeas struct {
	BlogPosts       string `yaml:"blog_posts"`
	SocialMedia     string `yaml:"social_media"`
	VideoContent    string `yaml:"video_content"`
	Infographics    string `yaml:"infographics"`
	ContentCalendar string `yaml:"content_calendar"`
}

type TrackingSystems struct {
	Metrics            []string `yaml:"metrics"`
	TrackingTools      string   `yaml:"tracking_tools"`
	ReportingFrequency string   `yaml:"reporting_frequency"`
	KPIsDashboard      string   `yaml:"kpis_dashboard"`
}

type BusinessProcess struct {
	Planning     string `yaml:"planning"`
	Execution    string `yaml:"execution"`
	Monitoring   string `yaml:"monitoring"`
	Optimization string `yaml:"optimization"`
}

// Collect snapshots the clinic form.
func Collect(src Source) Answers {
	return Answers{
		MarketingPlan: MarketingPlan{
			VentureName:    src.Value(KeyVentureName),
			TargetAudience: src.Value(KeyTargetAudience),
			KeyObjectives:  src.Value(KeyKeyObjectives),
			Channels:       checked(src, Channels),
			BudgetTimeline: src.Value(KeyBudgetTimeline),
		},
		ContentIdeas: ContentIdeas{
			BlogPosts:       src.Value(KeyContentBlog),
			SocialMedia:     src.Value(KeyContentSocial),
			VideoContent:    src.Value(KeyContentVideo),
			Infographics:    src.Value(KeyContentInfographics),
			ContentCalendar: src.Value(KeyContentCalendar),
		},
		TrackingSystems: TrackingSystems{
			Metrics:            checked(src, Metrics),
			TrackingTools:      src.Value(KeyTrackingTools),
			ReportingFrequency: src.Value(KeyReportingFrequency),
			KPIsDashboard:      src.Value(KeyKPIsDashboard),
		},
		BusinessProcess: BusinessProcess{
			Planning:     src.Value(KeyProcessPlanning),
			Execution:    src.Value(KeyProcessExecution),
			Monitoring:   src.Value(KeyProcessMonitoring),
			Optimization: src.Value(KeyProcessOptimization),
		},
	}
}

func checked(src Source, opts []Option) []string {
	var labels []string
	for _, o := range opts {
		if src.Checked(o.Key) {
			labels = append(labels, o.Label)
		}
	}
	return labels
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func joinOrNone(labels []string) string {
	if len(labels) == 0 {
		return "None selected"
	}
	return strings.Join(labels, ", ")
}

// Document lays the answers out as the report's title and sections.
func (a Answers) Document() Document {
	mp, ci, ts, bp := a.MarketingPlan, a.ContentIdeas, a.TrackingSystems, a.BusinessProcess
	return Document{
		Title: "Marketing Clinic Report",
		Sections: []Section{
			{
				Heading: "MARKETING PLAN",
				Lines: []string{
					"Venture Name: " + orNA(mp.VentureName),
					"Target Audience: " + orNA(mp.TargetAudience),
					"Key Objectives: " + orNA(mp.KeyObjectives),
					"Marketing Channels: " + joinOrNone(mp.Channels),
					"Budget & Timeline: " + orNA(mp.BudgetTimeline),
				},
			},
			{
				Heading: "CONTENT IDEAS",
				Lines: []string{
					"Blog Posts: " + orNA(ci.BlogPosts),
					"Social Media Posts: " + orNA(ci.SocialMedia),
					"Video Content: " + orNA(ci.VideoContent),
					"Infographics: " + orNA(ci.Infographics),
					"Content Calendar: " + orNA(ci.ContentCalendar),
				},
			},
			{
				Heading: "TRACKING SYSTEMS",
				Lines: []string{
					"Key Metrics: " + joinOrNone(ts.Metrics),
					"Tracking Tools: " + orNA(ts.TrackingTools),
					"Reporting Frequency: " + orNA(ts.ReportingFrequency),
					"KPIs Dashboard: " + orNA(ts.KPIsDashboard),
				},
			},
			{
				Heading: "BUSINESS PROCESS FRAMEWORK",
				Lines: []string{
					"1. Planning: " + orNA(bp.Planning),
					"2. Execution: " + orNA(bp.Execution),
					"3. Monitoring: " + orNA(bp.Monitoring),
					"4. Optimization: " + orNA(bp.Optimization),
				},
			},
		},
	}
}
