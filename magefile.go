//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the luabench binary
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/luabench", "./cmd/luabench")
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// CI runs vet and the tests
func CI() error {
	mg.Deps(Vet)
	return Test()
}

// Clean removes build artifacts and the generated table
func Clean() error {
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	if err := os.Remove("benchmark_table.tex"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
