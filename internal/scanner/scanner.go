// Package scanner lists the component files of a directory for tsxrename.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// DirectoryNotFound indicates the directory does not exist.
	DirectoryNotFound ScanErrorType = "DIRECTORY_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions to read the directory.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
	// InvalidPattern indicates the extension filter could not be compiled.
	InvalidPattern ScanErrorType = "INVALID_PATTERN"
)

// ScanError represents an error that occurred during directory scanning.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// FileEntry represents a directory entry selected for renaming.
type FileEntry struct {
	Name     string // Entry name only
	FullPath string // Directory joined with Name
}

// Filter selects entry names by exact suffix.
type Filter struct {
	extensions []string
	pattern    glob.Glob
}

// NewFilter compiles a filter accepting names that end in one of extensions.
// Matching is case-sensitive: ".tsx" does not accept "a.Tsx".
func NewFilter(extensions []string) (*Filter, error) {
	if len(extensions) == 0 {
		return nil, &ScanError{
			Type: InvalidPattern,
			Err:  errors.New("no extensions given"),
		}
	}

	expr := "*{" + strings.Join(extensions, ",") + "}"
	pattern, err := glob.Compile(expr)
	if err != nil {
		return nil, &ScanError{
			Type: InvalidPattern,
			Path: expr,
			Err:  err,
		}
	}

	exts := make([]string, len(extensions))
	copy(exts, extensions)
	return &Filter{extensions: exts, pattern: pattern}, nil
}

// Match reports whether name ends in one of the filter's extensions.
func (f *Filter) Match(name string) bool {
	return f.pattern.Match(name)
}

// Extensions returns the extensions the filter accepts.
func (f *Filter) Extensions() []string {
	result := make([]string, len(f.extensions))
	copy(result, f.extensions)
	return result
}

// Scan lists the entries of directory whose names match filter, without
// recursion. Entries are selected by name alone, so a subdirectory or
// symlink named "x.tsx" is returned as well. The result is sorted by name.
func Scan(directory string, filter *Filter) ([]FileEntry, error) {
	info, err := os.Stat(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{
				Type: DirectoryNotFound,
				Path: directory,
				Err:  err,
			}
		}
		if os.IsPermission(err) {
			return nil, &ScanError{
				Type: PermissionDenied,
				Path: directory,
				Err:  err,
			}
		}
		return nil, err
	}

	if !info.IsDir() {
		return nil, &ScanError{
			Type: DirectoryNotFound,
			Path: directory,
			Err:  errors.New("path is not a directory"),
		}
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{
				Type: PermissionDenied,
				Path: directory,
				Err:  err,
			}
		}
		return nil, err
	}

	files := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		if !filter.Match(entry.Name()) {
			continue
		}
		files = append(files, FileEntry{
			Name:     entry.Name(),
			FullPath: filepath.Join(directory, entry.Name()),
		})
	}

	return files, nil
}
