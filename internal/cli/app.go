package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"deckhand/internal/config"
	"deckhand/internal/eventbus"
	"deckhand/internal/forms"
	"deckhand/internal/report"
	"deckhand/internal/storage"
)

// DefaultExportDir holds reports when neither the flag nor the deck names a
// directory.
const DefaultExportDir = "reports"

var envKeyReplacer = strings.NewReplacer("-", "_")

// loadDeck reads the deck named by path, the --deck setting, or the default
// deck file
func (a *app) loadDeck(bus eventbus.EventBus, path string) (*config.Config, error) {
	if path == "" {
		path = a.v.GetString(keyDeck)
	}
	svc := config.NewService(path, bus)
	if path == "" {
		return svc.Load()
	}
	return svc.LoadFromPath(path)
}

// openSession opens the field store and restores every field the deck uses
func (a *app) openSession(ctx context.Context, cfg *config.Config, bus eventbus.EventBus) (*forms.Session, *storage.SQLiteStore, error) {
	path := a.v.GetString(keyStore)
	if path == "" {
		path = cfg.Store.Path
	}
	if path == "" {
		path = config.DefaultStorePath()
	}

	store, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}

	session := forms.NewSession(store, bus,
		forms.SessionFields(cfg.DomainRoles(), cfg.DomainTasks()),
		report.ClinicFields(),
	)
	if err := session.Restore(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	log.Printf("Restored fields from %s", store.Path())
	return session, store, nil
}

// exportDir resolves where reports are written
func (a *app) exportDir(cfg *config.Config) string {
	if dir := a.v.GetString(keyExportDir); dir != "" {
		return dir
	}
	if cfg.Export.Dir != "" {
		return cfg.Export.Dir
	}
	return DefaultExportDir
}

// logEvents writes the glue events to the log file
func logEvents(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SlideChangedEvent); ok {
			log.Printf("Slide %d/%d: %s", ev.Index+1, ev.Count, ev.Title)
		}
	})
	bus.Subscribe(eventbus.EventTimerCompleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.TimerCompletedEvent); ok {
			log.Printf("Timer finished on slide %d (%s)", ev.Slide+1, ev.Title)
		}
	})
	bus.Subscribe(eventbus.EventTimersPaused, func(e eventbus.DomainEvent) {
		log.Printf("All timers paused")
	})
	bus.Subscribe(eventbus.EventReportExported, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ReportExportedEvent); ok {
			log.Printf("Report %s exported to %s (%d pages)", ev.ReportID, ev.ReportPath, ev.Pages)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigLoadedEvent); ok {
			if ev.Path == "" {
				log.Printf("Using built-in deck (%d slides)", ev.Slides)
				return
			}
			log.Printf("Loaded deck %s (%d slides)", ev.Path, ev.Slides)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Saved deck %s", ev.Path)
		}
	})
	bus.Subscribe(eventbus.EventFieldsCleared, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.FieldsClearedEvent); ok {
			log.Printf("Cleared fields: %s", strings.Join(ev.Keys, ", "))
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", ev.Message, ev.Err)
		}
	})
}

func closeStore(store *storage.SQLiteStore) {
	if err := store.Close(); err != nil {
		log.Printf("Failed to close store: %v", err)
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
