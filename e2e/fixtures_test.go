//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

const shortDeck = `title = "E2E Deck"

[[slides]]
title = "Opening"
body = "First slide"
duration_seconds = 90
fields = ["checkinQuestion"]

[[slides]]
title = "Agenda"
section = "Timeline"
items = ["Alpha", "Beta"]

[[slides]]
title = "Closing"
duration_seconds = 5
`

// CreateTestWorkspace makes an empty working directory for one run
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "deckhand-e2e-*")
	if err != nil {
		return "", err
	}
	tf.workspace = dir
	return dir, nil
}

// WriteDeck writes the default deck file into the workspace
func (tf *TUITestFramework) WriteDeck(content string) error {
	return os.WriteFile(filepath.Join(tf.workspace, ".deckhand.toml"), []byte(content), 0644)
}
