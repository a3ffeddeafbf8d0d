package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckhand/internal/config"
	"deckhand/internal/deck"
	"deckhand/internal/forms"
	"deckhand/internal/report"
	"deckhand/internal/storage"
)

const testDeck = `title = "Test"

[[slides]]
title = "Welcome"
duration_seconds = 30
fields = ["checkinQuestion"]

[[slides]]
title = "Clinic"
kind = "clinic"
`

type testEnv struct {
	dir   string
	deck  string
	store string
}

func newTestEnv(t *testing.T, deckText string) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		dir:   dir,
		deck:  filepath.Join(dir, "deck.toml"),
		store: filepath.Join(dir, "fields.db"),
	}
	require.NoError(t, os.WriteFile(env.deck, []byte(deckText), 0o644))
	return env
}

func (e *testEnv) seed(t *testing.T, values map[string]string) {
	t.Helper()
	store, err := storage.OpenSQLite(e.store)
	require.NoError(t, err)
	defer store.Close()
	for k, v := range values {
		require.NoError(t, store.Set(t.Context(), k, v))
	}
}

func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append(args,
		"--deck", e.deck,
		"--store", e.store,
		"--log-file", filepath.Join(e.dir, "deckhand.log"),
	))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t, testDeck)
	out, err := env.run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "deckhand dev\n", out)
}

func TestFieldsList(t *testing.T) {
	env := newTestEnv(t, testDeck)
	env.seed(t, map[string]string{
		forms.KeyCheckinQuestion: "sunny",
		report.KeyVentureName:    "Acme",
	})

	out, err := env.run(t, "fields", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `checkinQuestion = "sunny"`)
	assert.Contains(t, out, `venture-name = "Acme"`)
}

func TestFieldsClear(t *testing.T) {
	env := newTestEnv(t, testDeck)
	env.seed(t, map[string]string{
		forms.KeyCheckinQuestion: "sunny",
		report.KeyVentureName:    "Acme",
	})

	_, err := env.run(t, "fields", "clear", "--clinic")
	require.NoError(t, err)

	out, err := env.run(t, "fields", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "checkinQuestion")
	assert.NotContains(t, out, "venture-name")

	_, err = env.run(t, "fields", "clear", "nope")
	assert.ErrorContains(t, err, "unknown field")

	_, err = env.run(t, "fields", "clear")
	require.NoError(t, err)
	out, err = env.run(t, "fields", "list")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExport(t *testing.T) {
	env := newTestEnv(t, testDeck)
	env.seed(t, map[string]string{report.KeyVentureName: "Acme"})
	exportDir := filepath.Join(env.dir, "out")

	out, err := env.run(t, "export", "--export-dir", exportDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report saved:")

	matches, err := filepath.Glob(filepath.Join(exportDir, "Marketing_Clinic_Acme_*.txt"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme")
}

func TestExportDirFromEnvironment(t *testing.T) {
	env := newTestEnv(t, testDeck)
	exportDir := filepath.Join(env.dir, "from-env")
	t.Setenv("DECKHAND_EXPORT_DIR", exportDir)

	_, err := env.run(t, "export")
	require.NoError(t, err)

	entries, err := os.ReadDir(exportDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "report and answers")
}

func TestMalformedDeckIsConfigError(t *testing.T) {
	env := newTestEnv(t, "title = [unterminated")
	_, err := env.run(t, "fields", "list")
	require.Error(t, err)
	assert.True(t, deck.IsConfigError(err))
}

func TestPresentRejectsInvalidDeck(t *testing.T) {
	env := newTestEnv(t, `title = "Bad"

[[slides]]
title = "Negative"
duration_seconds = -5
`)
	_, err := env.run(t, "present")
	require.Error(t, err)
	assert.True(t, deck.IsConfigError(err))
}

func TestPresentRejectsEmptyDeck(t *testing.T) {
	env := newTestEnv(t, `title = "Empty"`)
	_, err := env.run(t, "present", env.deck)
	require.Error(t, err)
	assert.True(t, deck.IsConfigError(err))
}

func TestFieldsListShowsUndeclaredKeys(t *testing.T) {
	env := newTestEnv(t, testDeck)
	env.seed(t, map[string]string{"retired-question": "kept"})

	out, err := env.run(t, "fields", "list")
	require.NoError(t, err)
	assert.Equal(t, "retired-question = \"kept\"\n", out)
}

func TestInitWritesDefaultDeck(t *testing.T) {
	for _, name := range []string{"workshop.toml", "workshop.yaml"} {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t, testDeck)
			path := filepath.Join(env.dir, name)

			out, err := env.run(t, "init", path)
			require.NoError(t, err)
			assert.Contains(t, out, "Deck written to "+path)

			cfg, err := config.NewService(path, nil).LoadFromPath(path)
			require.NoError(t, err)
			want := config.DefaultConfig()
			assert.Equal(t, want.Title, cfg.Title)
			assert.Len(t, cfg.Slides, len(want.Slides))
			assert.Len(t, cfg.Roles, len(want.Roles))

			logData, err := os.ReadFile(filepath.Join(env.dir, "deckhand.log"))
			require.NoError(t, err)
			assert.Contains(t, string(logData), "Saved deck "+path)
		})
	}
}

func TestInitRefusesToOverwrite(t *testing.T) {
	env := newTestEnv(t, testDeck)

	_, err := env.run(t, "init", env.deck)
	assert.ErrorContains(t, err, "already exists")

	data, err := os.ReadFile(env.deck)
	require.NoError(t, err)
	assert.Equal(t, testDeck, string(data))

	_, err = env.run(t, "init", "--force", env.deck)
	require.NoError(t, err)
	cfg, err := config.NewService(env.deck, nil).LoadFromPath(env.deck)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Title, cfg.Title)
}
