package orchestrator

import (
	"fmt"

	"tsxrename/internal/config"
	"tsxrename/internal/normalizer"
	"tsxrename/internal/scanner"
)

// Rename is a planned rename of one directory entry.
type Rename struct {
	OldName string
	NewName string
}

// Plan lists the entries of the configured directory that match its
// extensions and computes the normalized name of each, without modifying
// anything. The directory must exist. Renames are ordered by entry name.
func Plan(cfg *config.Configuration) ([]Rename, error) {
	filter, err := scanner.NewFilter(cfg.Extensions)
	if err != nil {
		return nil, fmt.Errorf("failed to build extension filter: %w", err)
	}

	files, err := scanner.Scan(cfg.Directory, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", cfg.Directory, err)
	}

	renames := make([]Rename, 0, len(files))
	for _, file := range files {
		renames = append(renames, Rename{
			OldName: file.Name,
			NewName: normalizer.Normalize(file.Name),
		})
	}

	return renames, nil
}
