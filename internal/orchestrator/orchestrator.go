// Package orchestrator coordinates the component rename workflow for tsxrename.
package orchestrator

import (
	"fmt"
	"os"

	"tsxrename/internal/config"
	"tsxrename/internal/organizer"
	"tsxrename/internal/output"
)

// directoryMode is the permission used when creating the component directory.
const directoryMode = 0755

// Result represents the outcome of renaming a single file.
type Result struct {
	OldName string
	NewName string
	Success bool
	Error   error
}

// Summary represents the overall results of a run.
type Summary struct {
	TotalFiles   int
	SuccessCount int
	ErrorCount   int
	Results      []Result
}

// Run executes the rename workflow.
// It creates the configured directory if needed, plans a rename for every
// matching entry and applies them in order. A failed rename is reported and
// recorded in the summary; it never stops the batch. Only a failure to
// prepare or list the directory aborts the run.
func Run(cfg *config.Configuration, out *output.Output) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Directory, directoryMode); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", cfg.Directory, err)
	}

	renames, err := Plan(cfg)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalFiles: len(renames),
		Results:    make([]Result, 0, len(renames)),
	}

	for _, rename := range renames {
		result := processFile(cfg.Directory, rename)
		summary.Results = append(summary.Results, result)
		if result.Success {
			summary.SuccessCount++
			out.Renamed(result.OldName, result.NewName)
		} else {
			summary.ErrorCount++
			out.RenameFailed(result.OldName, result.Error)
		}
	}

	return summary, nil
}

// processFile renames a single entry.
func processFile(directory string, rename Rename) Result {
	if _, err := organizer.Rename(directory, rename.OldName, rename.NewName); err != nil {
		return Result{
			OldName: rename.OldName,
			NewName: rename.NewName,
			Success: false,
			Error:   err,
		}
	}

	return Result{
		OldName: rename.OldName,
		NewName: rename.NewName,
		Success: true,
	}
}

// HasErrors returns true if any rename failed.
func (s *Summary) HasErrors() bool {
	return s.ErrorCount > 0
}
