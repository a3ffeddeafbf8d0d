package forms

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"deckhand/internal/domain"
	"deckhand/internal/eventbus"
)

// Session holds the current value of every form field and writes persisted
// fields through to the store on each change.
type Session struct {
	store  Store
	bus    eventbus.EventBus
	fields map[string]domain.Field
	order  []string
	values map[string]string
}

// NewSession creates a session over fields. bus may be nil.
func NewSession(store Store, bus eventbus.EventBus, fields ...[]domain.Field) *Session {
	s := &Session{
		store:  store,
		bus:    bus,
		fields: make(map[string]domain.Field),
		values: make(map[string]string),
	}
	for _, group := range fields {
		for _, f := range group {
			if _, exists := s.fields[f.Key]; exists {
				continue
			}
			s.fields[f.Key] = f
			s.order = append(s.order, f.Key)
		}
	}
	return s
}

// Restore loads every persisted field that has a stored value.
func (s *Session) Restore(ctx context.Context) error {
	for _, key := range s.order {
		if !s.fields[key].Persist {
			continue
		}
		v, ok, err := s.store.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to restore %s: %w", key, err)
		}
		if ok {
			s.values[key] = v
		}
	}
	return nil
}

// Field looks up a field definition.
func (s *Session) Field(key string) (domain.Field, bool) {
	f, ok := s.fields[key]
	return f, ok
}

// Keys returns every field key in definition order.
func (s *Session) Keys() []string {
	return append([]string(nil), s.order...)
}

// Value returns the current value of a field ("" when unset).
func (s *Session) Value(key string) string {
	return s.values[key]
}

// Checked reports whether a checkbox field is ticked.
func (s *Session) Checked(key string) bool {
	b, _ := strconv.ParseBool(s.values[key])
	return b
}

// Set updates a field. Unknown keys are ignored. The in-memory value is
// updated even when the store write fails.
func (s *Session) Set(ctx context.Context, key, value string) error {
	f, ok := s.fields[key]
	if !ok {
		return nil
	}
	s.values[key] = value
	if !f.Persist {
		return nil
	}
	if err := s.store.Set(ctx, key, value); err != nil {
		s.publish(eventbus.ErrorEvent{Message: "failed to save " + key, Err: err})
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	s.publish(eventbus.FieldSavedEvent{Key: key})
	return nil
}

// Toggle flips a checkbox field.
func (s *Session) Toggle(ctx context.Context, key string) error {
	return s.Set(ctx, key, strconv.FormatBool(!s.Checked(key)))
}

// Cycle advances a choice field to its next option, wrapping around.
func (s *Session) Cycle(ctx context.Context, key string) error {
	f, ok := s.fields[key]
	if !ok || len(f.Options) == 0 {
		return nil
	}
	current := s.values[key]
	next := f.Options[0]
	for i, opt := range f.Options {
		if opt == current {
			next = f.Options[(i+1)%len(f.Options)]
			break
		}
	}
	return s.Set(ctx, key, next)
}

// Clear blanks the given fields and removes them from the store.
func (s *Session) Clear(ctx context.Context, keys ...string) error {
	var persisted []string
	for _, key := range keys {
		f, ok := s.fields[key]
		if !ok {
			continue
		}
		delete(s.values, key)
		if f.Persist {
			persisted = append(persisted, key)
		}
	}
	if len(persisted) == 0 {
		return nil
	}
	if err := s.store.Delete(ctx, persisted...); err != nil {
		return fmt.Errorf("failed to clear fields: %w", err)
	}
	log.Printf("Cleared %d fields", len(persisted))
	s.publish(eventbus.FieldsClearedEvent{Keys: persisted})
	return nil
}

func (s *Session) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
