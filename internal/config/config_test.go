package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckhand/internal/deck"
	"deckhand/internal/eventbus"
	"deckhand/internal/report"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

const sampleDeck = `
title = "Board meeting"

[[slides]]
title = "Welcome"
duration_minutes = 2

[[slides]]
title = "Plan"
section = "Timeline"
items = ["One", "Two"]

[[slides]]
title = "Quick"
duration_minutes = 10
duration_seconds = 30

[[slides]]
title = "Clinic"
kind = "clinic"

[[slides]]
title = "Custom tabs"
[[slides.tabs]]
id = "a"
title = "A"
fields = ["venture-name"]

[[roles]]
id = "chair"
title = "Chair"

[ui]
show_help_bar = false

[store]
path = "/tmp/fields.db"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromPathTOML(t *testing.T) {
	bus := &recordingBus{}
	path := writeFile(t, "deck.toml", sampleDeck)

	cfg, err := NewService("", bus).LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "Board meeting", cfg.Title)
	assert.Equal(t, deck.DefaultAnimatedSection, cfg.AnimatedSection)
	assert.False(t, cfg.UISettings.ShowHelpBar)
	assert.Equal(t, "/tmp/fields.db", cfg.Store.Path)
	require.Len(t, cfg.Slides, 5)
	assert.Equal(t, []string{"One", "Two"}, cfg.Slides[1].Items)

	require.Len(t, bus.events, 1)
	assert.Equal(t, eventbus.ConfigLoadedEvent{Path: path, Slides: 5}, bus.events[0])
}

func TestDeckSlidesConvertsDurations(t *testing.T) {
	cfg, err := NewService("", nil).LoadFromPath(writeFile(t, "deck.toml", sampleDeck))
	require.NoError(t, err)

	slides, err := cfg.DeckSlides()
	require.NoError(t, err)

	assert.Equal(t, 120, slides[0].DurationSeconds)
	assert.Equal(t, 0, slides[1].DurationSeconds)
	assert.Equal(t, "Timeline", slides[1].SectionTag)
	assert.Equal(t, 30, slides[2].DurationSeconds, "seconds override minutes")
	assert.Equal(t, report.ClinicTabs(), slides[3].Tabs)
	require.Len(t, slides[4].Tabs, 1)
	assert.Equal(t, "a", slides[4].Tabs[0].ID)
}

func TestDeckSlidesRejectsTabWithoutID(t *testing.T) {
	cfg := &Config{Slides: []SlideConfig{{Title: "x"}, {Title: "y", Tabs: []TabConfig{{Title: "no id"}}}}}

	_, err := cfg.DeckSlides()
	require.Error(t, err)
	assert.True(t, deck.IsConfigError(err))
	assert.Contains(t, err.Error(), "slide 2")
}

func TestNegativeDurationFailsAtPresentation(t *testing.T) {
	cfg := &Config{Slides: []SlideConfig{{Title: "x", DurationMinutes: -1}}}

	slides, err := cfg.DeckSlides()
	require.NoError(t, err)
	_, err = deck.NewPresentation(slides, nil)
	assert.True(t, deck.IsConfigError(err))
}

func TestLoadFromPathYAML(t *testing.T) {
	path := writeFile(t, "deck.yaml", `
title: YAML deck
animated_section: Agenda
slides:
  - title: Only
    duration_seconds: 45
`)
	cfg, err := NewService("", nil).LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "Agenda", cfg.AnimatedSection)
	assert.True(t, cfg.UISettings.ShowHelpBar)
	slides, err := cfg.DeckSlides()
	require.NoError(t, err)
	assert.Equal(t, 45, slides[0].DurationSeconds)
}

func TestLoadFromPathErrors(t *testing.T) {
	svc := NewService("", nil)

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.False(t, deck.IsConfigError(err))

	_, err = svc.LoadFromPath(writeFile(t, "bad.toml", "[[slides]\ntitle ="))
	require.Error(t, err)
	assert.True(t, deck.IsConfigError(err))
}

func TestLoadFallsBackToDefault(t *testing.T) {
	bus := &recordingBus{}
	cfg, err := NewService(filepath.Join(t.TempDir(), DefaultFileName), bus).Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	require.Len(t, bus.events, 1)

	slides, err := cfg.DeckSlides()
	require.NoError(t, err)
	_, err = deck.NewPresentation(slides, nil)
	assert.NoError(t, err)
}

func TestSaveToPathRoundTrip(t *testing.T) {
	for _, name := range []string{"deck.toml", "deck.yml"} {
		t.Run(name, func(t *testing.T) {
			bus := &recordingBus{}
			svc := NewService("", bus)
			path := filepath.Join(t.TempDir(), "nested", name)

			require.NoError(t, svc.SaveToPath(DefaultConfig(), path))
			loaded, err := svc.LoadFromPath(path)
			require.NoError(t, err)

			assert.Equal(t, DefaultConfig(), loaded)
			require.Len(t, bus.events, 2)
			assert.Equal(t, eventbus.ConfigSavedEvent{Path: path}, bus.events[0])
		})
	}
}

func TestDomainRolesAndTasks(t *testing.T) {
	cfg := DefaultConfig()

	roles := cfg.DomainRoles()
	require.Len(t, roles, len(cfg.Roles))
	assert.True(t, roles[len(roles)-1].Extra)

	tasks := cfg.DomainTasks()
	require.Len(t, tasks, len(cfg.Tasks))
	assert.Equal(t, []string{"Copy", "Design", "Launch"}, tasks[0].Checks)
}
