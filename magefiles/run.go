//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the landscape demo with config.toml.
func (Run) Landscape() error {
	fmt.Println("Run landscape...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "config.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the demo for a few seconds at debug log level.
func (Run) Smoke() error {
	mg.Deps(Build.Binary)
	if _, err := executeCmd("bin/landscape", withArgs("-config", "magefiles/smoke.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
