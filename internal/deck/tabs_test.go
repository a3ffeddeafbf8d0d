package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabSet(t *testing.T) {
	ts := NewTabSet([]Tab{
		{ID: "marketing-plans", Title: "Marketing Plans"},
		{ID: "content-ideas", Title: "Content Ideas"},
		{ID: "tracking", Title: "Tracking"},
	})

	active, ok := ts.Active()
	require.True(t, ok)
	assert.Equal(t, "marketing-plans", active.ID)

	assert.True(t, ts.Select("tracking"))
	assert.Equal(t, 2, ts.ActiveIndex())

	assert.False(t, ts.Select("missing"))
	assert.Equal(t, 2, ts.ActiveIndex(), "unknown ids leave the active tab alone")

	ts.Next()
	assert.Equal(t, 0, ts.ActiveIndex())
	ts.Prev()
	assert.Equal(t, 2, ts.ActiveIndex())

	ts.Reset()
	active, _ = ts.Active()
	assert.Equal(t, "marketing-plans", active.ID)
}

func TestEmptyTabSet(t *testing.T) {
	ts := NewTabSet(nil)
	ts.Next()
	ts.Prev()
	_, ok := ts.Active()
	assert.False(t, ok)
	assert.Zero(t, ts.Len())
}
