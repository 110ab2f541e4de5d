//go:build mage

// Package main contains Mage build targets for uxf-mermaid developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "uxf-mermaid"
	cmdPkg  = "./cmd/uxf-mermaid"

	// umlDir is the default diagram directory the converter reads.
	umlDir = "_files/uml"
)

// Init creates the default diagram directory.
func Init() error {
	if err := os.MkdirAll(umlDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", umlDir, err)
	}
	fmt.Println("  ", umlDir)
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Convert builds the CLI and converts every diagram in _files/uml.
func Convert() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "convert", umlDir)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
