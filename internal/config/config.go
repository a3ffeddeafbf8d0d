package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"deckhand/internal/deck"
	"deckhand/internal/domain"
	"deckhand/internal/eventbus"
	"deckhand/internal/report"
)

// DefaultFileName is the deck file looked up in the working directory.
const DefaultFileName = ".deckhand.toml"

// Config represents a deck file
type Config struct {
	Title           string         `toml:"title" yaml:"title"`
	AnimatedSection string         `toml:"animated_section,omitempty" yaml:"animated_section,omitempty"`
	Slides          []SlideConfig  `toml:"slides" yaml:"slides"`
	Roles           []RoleConfig   `toml:"roles,omitempty" yaml:"roles,omitempty"`
	Tasks           []TaskConfig   `toml:"tasks,omitempty" yaml:"tasks,omitempty"`
	UISettings      UISettings     `toml:"ui" yaml:"ui"`
	Store           StoreSettings  `toml:"store" yaml:"store"`
	Export          ExportSettings `toml:"export" yaml:"export"`
}

// SlideConfig is one [[slides]] entry
type SlideConfig struct {
	Title           string      `toml:"title" yaml:"title"`
	Body            string      `toml:"body,omitempty" yaml:"body,omitempty"`
	Kind            string      `toml:"kind,omitempty" yaml:"kind,omitempty"`
	DurationMinutes int         `toml:"duration_minutes,omitempty" yaml:"duration_minutes,omitempty"`
	DurationSeconds int         `toml:"duration_seconds,omitempty" yaml:"duration_seconds,omitempty"`
	Section         string      `toml:"section,omitempty" yaml:"section,omitempty"`
	Items           []string    `toml:"items,omitempty" yaml:"items,omitempty"`
	Fields          []string    `toml:"fields,omitempty" yaml:"fields,omitempty"`
	Tabs            []TabConfig `toml:"tabs,omitempty" yaml:"tabs,omitempty"`
}

// TabConfig is one [[slides.tabs]] entry
type TabConfig struct {
	ID     string   `toml:"id" yaml:"id"`
	Title  string   `toml:"title" yaml:"title"`
	Body   string   `toml:"body,omitempty" yaml:"body,omitempty"`
	Fields []string `toml:"fields,omitempty" yaml:"fields,omitempty"`
}

// RoleConfig is one [[roles]] entry
type RoleConfig struct {
	ID    string `toml:"id" yaml:"id"`
	Title string `toml:"title" yaml:"title"`
	Extra bool   `toml:"extra,omitempty" yaml:"extra,omitempty"`
}

// TaskConfig is one [[tasks]] entry
type TaskConfig struct {
	ID     string   `toml:"id" yaml:"id"`
	Title  string   `toml:"title" yaml:"title"`
	Checks []string `toml:"checks" yaml:"checks"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpBar bool `toml:"show_help_bar" yaml:"show_help_bar"`
}

// StoreSettings locates the field store
type StoreSettings struct {
	Path string `toml:"path,omitempty" yaml:"path,omitempty"`
}

// ExportSettings locates exported reports
type ExportSettings struct {
	Dir string `toml:"dir,omitempty" yaml:"dir,omitempty"`
}

// Slide kinds with dedicated rendering.
const (
	KindClinic = "clinic"
	KindTasks  = "tasks"
	KindRoles  = "roles"
)

// Service handles deck file loading and saving
type Service interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a config service reading path, or DefaultFileName in the
// working directory when path is empty. bus may be nil.
func NewService(path string, bus eventbus.EventBus) Service {
	if path == "" {
		path = DefaultFileName
	}
	return &service{bus: bus, filePath: path}
}

// Load reads the service's deck file, falling back to the built-in workshop
// deck when the file does not exist.
func (cs *service) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{Slides: len(cfg.Slides)})
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads a deck from a specific path. Files ending in .yaml or
// .yml are read as YAML, everything else as TOML.
func (cs *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{UISettings: UISettings{ShowHelpBar: true}}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, &deck.ConfigError{Slide: -1, Reason: fmt.Sprintf("failed to parse %s: %v", path, err)}
	}
	if cfg.AnimatedSection == "" {
		cfg.AnimatedSection = deck.DefaultAnimatedSection
	}

	cs.publish(eventbus.ConfigLoadedEvent{Path: path, Slides: len(cfg.Slides)})
	return cfg, nil
}

// SaveToPath writes the deck to path in the format its extension names.
func (cs *service) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = toml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.publish(eventbus.ConfigSavedEvent{Path: path})
	return nil
}

func (cs *service) publish(e eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(e)
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// DeckSlides converts the slide entries for the presentation. A
// duration_seconds value overrides duration_minutes. Clinic slides without
// their own tabs get the standard clinic panels.
func (c *Config) DeckSlides() ([]deck.Slide, error) {
	slides := make([]deck.Slide, len(c.Slides))
	for i, s := range c.Slides {
		duration := s.DurationMinutes * 60
		if s.DurationSeconds != 0 {
			duration = s.DurationSeconds
		}

		tabs := make([]deck.Tab, 0, len(s.Tabs))
		for j, t := range s.Tabs {
			if t.ID == "" {
				return nil, &deck.ConfigError{Slide: i, Reason: fmt.Sprintf("tab %d has no id", j+1)}
			}
			tabs = append(tabs, deck.Tab{ID: t.ID, Title: t.Title, Body: t.Body, Fields: t.Fields})
		}
		if s.Kind == KindClinic && len(tabs) == 0 {
			tabs = report.ClinicTabs()
		}

		slides[i] = deck.Slide{
			Title:           s.Title,
			Body:            s.Body,
			Kind:            s.Kind,
			DurationSeconds: duration,
			SectionTag:      s.Section,
			Items:           s.Items,
			Fields:          s.Fields,
			Tabs:            tabs,
		}
	}
	return slides, nil
}

// DomainRoles returns the configured roles.
func (c *Config) DomainRoles() []domain.Role {
	roles := make([]domain.Role, len(c.Roles))
	for i, r := range c.Roles {
		roles[i] = domain.Role{ID: r.ID, Title: r.Title, Extra: r.Extra}
	}
	return roles
}

// DomainTasks returns the configured task cards.
func (c *Config) DomainTasks() []domain.Task {
	tasks := make([]domain.Task, len(c.Tasks))
	for i, t := range c.Tasks {
		tasks[i] = domain.Task{ID: t.ID, Title: t.Title, Checks: t.Checks}
	}
	return tasks
}

// DefaultStorePath returns the field store location under the user config
// directory.
func DefaultStorePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "deckhand", "fields.db")
}

// DefaultConfig returns the built-in workshop deck
func DefaultConfig() *Config {
	return &Config{
		Title:           "Workshop",
		AnimatedSection: deck.DefaultAnimatedSection,
		Slides: []SlideConfig{
			{
				Title:           "Welcome",
				Body:            "Settle in. One word on how you are arriving today.",
				DurationMinutes: 5,
				Fields:          []string{"checkinQuestion"},
			},
			{
				Title:   "Today",
				Section: "Timeline",
				Items: []string{
					"Check-in",
					"Announcements",
					"Task review",
					"Roles",
					"Policies",
					"Marketing Clinic",
					"Check-out",
				},
			},
			{
				Title:           "Announcements",
				DurationMinutes: 3,
				Fields:          []string{"announcements"},
			},
			{
				Title:           "Task Review",
				Body:            "Mark each check on target, done, or not on target.",
				Kind:            KindTasks,
				DurationMinutes: 10,
				Fields:          []string{"taskNotes"},
			},
			{
				Title:           "Roles",
				Body:            "Who is holding what this month?",
				Kind:            KindRoles,
				DurationMinutes: 5,
				Fields:          []string{"extraRolesOpen"},
			},
			{
				Title:           "Policies",
				DurationMinutes: 10,
				Fields: []string{
					"ediPolicyStatus",
					"ediPolicyNotes",
					"sexualHarassmentPolicyStatus",
					"sexualHarassmentPolicyNotes",
				},
			},
			{
				Title:           "Marketing Clinic",
				Body:            "Work through each tab, then export the report.",
				Kind:            KindClinic,
				DurationMinutes: 20,
			},
			{
				Title:           "Check-out",
				Body:            "One thing you are taking away.",
				DurationMinutes: 5,
				Fields:          []string{"checkoutQuestion"},
			},
		},
		Roles: []RoleConfig{
			{ID: "facilitator", Title: "Facilitator"},
			{ID: "timekeeper", Title: "Timekeeper"},
			{ID: "note-taker", Title: "Note Taker"},
			{ID: "greeter", Title: "Greeter", Extra: true},
			{ID: "tech", Title: "Tech Support", Extra: true},
		},
		Tasks: []TaskConfig{
			{ID: "website", Title: "Website refresh", Checks: []string{"Copy", "Design", "Launch"}},
			{ID: "newsletter", Title: "Newsletter", Checks: []string{"Audience list", "First issue"}},
			{ID: "funding", Title: "Funding bid", Checks: []string{"Budget", "Submission"}},
		},
		UISettings: UISettings{ShowHelpBar: true},
	}
}
