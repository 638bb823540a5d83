// Package organizer performs the rename of a single component file for tsxrename.
package organizer

import (
	"fmt"
	"os"
	"path/filepath"
)

// MoveErrorType represents the type of move error.
type MoveErrorType string

const (
	// SourceNotFound indicates the source file does not exist.
	SourceNotFound MoveErrorType = "SOURCE_NOT_FOUND"
	// DestinationExists indicates a different file already exists at the destination.
	DestinationExists MoveErrorType = "DESTINATION_EXISTS"
	// PermissionDenied indicates insufficient permissions for the operation.
	PermissionDenied MoveErrorType = "PERMISSION_DENIED"
	// RenameFailed covers every other failure of the rename call.
	RenameFailed MoveErrorType = "RENAME_FAILED"
)

// MoveError represents an error that occurred during a rename.
type MoveError struct {
	Type MoveErrorType
	Path string
	Err  error
}

func (e *MoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// MoveResult represents the result of a successful rename.
type MoveResult struct {
	SourcePath      string
	DestinationPath string
	Unchanged       bool // True if source and destination name the same entry
}

// Rename renames oldName to newName inside directory with a single rename call.
//
// It never overwrites: if newName already exists and is not the same file as
// oldName, it fails with DestinationExists. A destination that is the same
// file (a case-only rename on a case-insensitive filesystem) is allowed.
// There is no retry and no copy fallback.
func Rename(directory, oldName, newName string) (*MoveResult, error) {
	srcPath := filepath.Join(directory, oldName)
	destPath := filepath.Join(directory, newName)

	srcInfo, err := os.Lstat(srcPath)
	if err != nil {
		return nil, classify(srcPath, err)
	}

	result := &MoveResult{
		SourcePath:      srcPath,
		DestinationPath: destPath,
	}

	if oldName == newName {
		result.Unchanged = true
		return result, nil
	}

	if destInfo, err := os.Lstat(destPath); err == nil && !os.SameFile(srcInfo, destInfo) {
		return nil, &MoveError{
			Type: DestinationExists,
			Path: destPath,
			Err:  os.ErrExist,
		}
	}

	if err := os.Rename(srcPath, destPath); err != nil {
		return nil, classify(srcPath, err)
	}

	return result, nil
}

func classify(path string, err error) *MoveError {
	switch {
	case os.IsNotExist(err):
		return &MoveError{Type: SourceNotFound, Path: path, Err: err}
	case os.IsPermission(err):
		return &MoveError{Type: PermissionDenied, Path: path, Err: err}
	case os.IsExist(err):
		return &MoveError{Type: DestinationExists, Path: path, Err: err}
	default:
		return &MoveError{Type: RenameFailed, Path: path, Err: err}
	}
}
