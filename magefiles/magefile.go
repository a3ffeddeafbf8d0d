//go:build mage

// Build targets for deckhand.
package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified.
var Default = Build

const binary = "bin/deckhand"

// Build compiles the deckhand binary into bin/.
func Build() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return err
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return sh.RunV("go", "build",
		"-ldflags", "-X deckhand/internal/cli.version="+version,
		"-o", binary, "./cmd/deckhand")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// E2E runs the PTY driven tests in the e2e module.
func E2E() error {
	mg.Deps(Build)
	return sh.RunWithV(nil, "go", "-C", "e2e", "test", "-tags", "e2e", "-count=1", "./...")
}

// Check runs vet and the unit tests.
func Check() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	mg.Deps(Test)
	return nil
}

// Clean removes build output.
func Clean() error {
	return sh.Rm("bin")
}
