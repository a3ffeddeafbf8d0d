//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	require.NoError(t, tf.WriteDeck(shortDeck))

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("E2E Deck"), "Should show deck title")

	require.NoError(t, tf.Quit())
	if err := tf.WaitExit(1500 * time.Millisecond); err != nil {
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatalf("Application did not exit on q: %v", err)
	}
}

func TestApplicationExitWithCtrlC(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.WriteDeck(shortDeck))

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.SendCtrlC())
	require.NoError(t, tf.WaitExit(1500*time.Millisecond))
}

func TestInvalidDeckExitsWithError(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.WriteDeck("title = \"Bad\"\n\n[[slides]]\ntitle = \"x\"\nduration_seconds = -1\n"))

	require.NoError(t, tf.StartApp())
	err = tf.WaitExit(3 * time.Second)
	require.Error(t, err, "Negative durations must stop the presenter")
	require.True(t, tf.SeePlain("negative duration"))
}
