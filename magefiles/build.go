//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Binary builds the taggen binary
func (Build) Binary() error {
	fmt.Println("Building taggen binary...")
	return sh.RunV("go", "build", "-o", "bin/taggen", "./cmd/taggen")
}

// Install installs taggen to GOPATH/bin
func (Build) Install() error {
	fmt.Println("Installing taggen...")
	return sh.RunV("go", "install", "./cmd/taggen")
}

// Clean removes built artifacts
func (Build) Clean() error {
	fmt.Println("Cleaning build artifacts...")
	return sh.Rm("bin")
}
