//go:build mage

// Package main provides build targets for nxnbld using Mage.
//
// Usage:
//
//	mage build      Compile the nxnbld binary to bin/
//	mage test       Run all tests
//	mage testShort  Run tests without the slow random-cube properties
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install nxnbld to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "nxnbld"
	binaryDir  = "bin"
	cmdDir     = "./cmd/nxnbld"
)

// Build compiles the nxnbld binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestShort runs tests in -short mode.
func TestShort() error {
	return sh.RunV("go", "test", "-short", "./...")
}

// Lint runs go vet and golangci-lint.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install builds and installs nxnbld to GOPATH/bin.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", cmdDir)
}
