package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckhand/internal/domain"
)

func TestDeriveTaskStatus(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   domain.TaskStatus
	}{
		{"nothing selected", []string{"", ""}, domain.TaskPending},
		{"partly selected", []string{domain.CheckDone, ""}, domain.TaskPending},
		{"not on target wins over blanks", []string{domain.CheckNotOnTarget, ""}, domain.TaskOffTrack},
		{"not on target wins over done", []string{domain.CheckDone, domain.CheckNotOnTarget}, domain.TaskOffTrack},
		{"all on target or done", []string{domain.CheckOnTarget, domain.CheckDone}, domain.TaskOnTrack},
		{"no selects", nil, domain.TaskOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTaskStatus(tt.values))
		})
	}
}

func TestDeriveRoleStatus(t *testing.T) {
	assert.Equal(t, domain.RoleAssigned, DeriveRoleStatus("Sam"))
	assert.Equal(t, domain.RoleUnassigned, DeriveRoleStatus(""))
	assert.Equal(t, domain.RoleUnassigned, DeriveRoleStatus("   "))
}

func testFields() []domain.Field {
	return SessionFields(
		[]domain.Role{{ID: "facilitator", Title: "Facilitator"}},
		[]domain.Task{{ID: "launch", Title: "Launch", Checks: []string{"Budget", "Website"}}},
	)
}

func TestSessionRestoresPersistedFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyCheckinQuestion, "How are you arriving?"))
	require.NoError(t, store.Set(ctx, RoleKey("facilitator"), "Ana"))
	require.NoError(t, store.Set(ctx, "unrelated", "ignored"))

	s := NewSession(store, nil, testFields())
	require.NoError(t, s.Restore(ctx))

	assert.Equal(t, "How are you arriving?", s.Value(KeyCheckinQuestion))
	assert.Equal(t, "Ana", s.Value(RoleKey("facilitator")))
	assert.Empty(t, s.Value(KeyCheckoutQuestion))
	assert.Empty(t, s.Value("unrelated"))
}

func TestSessionWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := NewSession(store, nil, testFields())

	require.NoError(t, s.Set(ctx, KeyTaskNotes, "Book the room"))
	require.NoError(t, s.Set(ctx, TaskCheckKey("launch", 0), domain.CheckDone))
	require.NoError(t, s.Set(ctx, "not-a-field", "x"))

	v, ok, err := store.Get(ctx, KeyTaskNotes)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Book the room", v)

	_, ok, _ = store.Get(ctx, TaskCheckKey("launch", 0))
	assert.False(t, ok, "task selects are not persisted")
	assert.Equal(t, domain.CheckDone, s.Value(TaskCheckKey("launch", 0)))

	_, ok, _ = store.Get(ctx, "not-a-field")
	assert.False(t, ok)
}

func TestSessionToggleAndCycle(t *testing.T) {
	ctx := context.Background()
	s := NewSession(NewMemoryStore(), nil, testFields())

	assert.False(t, s.Checked(KeyExtraRolesOpen))
	require.NoError(t, s.Toggle(ctx, KeyExtraRolesOpen))
	assert.True(t, s.Checked(KeyExtraRolesOpen))
	assert.Equal(t, "true", s.Value(KeyExtraRolesOpen))
	require.NoError(t, s.Toggle(ctx, KeyExtraRolesOpen))
	assert.Equal(t, "false", s.Value(KeyExtraRolesOpen))

	key := TaskCheckKey("launch", 1)
	var seen []string
	for range TaskCheckOptions {
		require.NoError(t, s.Cycle(ctx, key))
		seen = append(seen, s.Value(key))
	}
	assert.Equal(t, []string{domain.CheckOnTarget, domain.CheckDone, domain.CheckNotOnTarget, ""}, seen)
}

func TestSessionClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := NewSession(store, nil, testFields())
	require.NoError(t, s.Set(ctx, KeyAnnouncements, "Lunch at 1"))
	require.NoError(t, s.Set(ctx, TaskCheckKey("launch", 0), domain.CheckDone))

	require.NoError(t, s.Clear(ctx, KeyAnnouncements, TaskCheckKey("launch", 0), "unknown"))

	assert.Empty(t, s.Value(KeyAnnouncements))
	assert.Empty(t, s.Value(TaskCheckKey("launch", 0)))
	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

type failingStore struct {
	*MemoryStore
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestSessionKeepsValueWhenStoreFails(t *testing.T) {
	s := NewSession(failingStore{NewMemoryStore()}, nil, testFields())

	err := s.Set(context.Background(), KeyTaskNotes, "draft")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "draft", s.Value(KeyTaskNotes))
}

func TestSessionFieldCatalogue(t *testing.T) {
	s := NewSession(NewMemoryStore(), nil, testFields(), testFields())

	f, ok := s.Field(RoleTitleKey("facilitator"))
	require.True(t, ok)
	assert.True(t, f.Persist)

	f, ok = s.Field(KeyEDIPolicyStatus)
	require.True(t, ok)
	assert.Equal(t, domain.FieldChoice, f.Kind)

	keys := s.Keys()
	assert.Len(t, keys, len(testFields()), "duplicate definitions are ignored")
	assert.Equal(t, KeyCheckinQuestion, keys[0])
}
