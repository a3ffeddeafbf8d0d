package main

import (
	"os"

	"deckhand/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
