// Package main provides the CLI entry point for tsxrename.
//
// tsxrename takes no arguments. It renames the abbreviated component files in
// components/ui (relative to the working directory) to their expanded names,
// creating the directory first if it is missing.
package main

import (
	"os"

	"tsxrename/internal/config"
	"tsxrename/internal/orchestrator"
	"tsxrename/internal/output"
)

func main() {
	out := output.New(output.DefaultConfig())

	// Failed renames are reported per file and do not affect the exit code.
	if _, err := orchestrator.Run(config.DefaultConfiguration(), out); err != nil {
		out.Error("Error: %v", err)
		os.Exit(1)
	}
}
