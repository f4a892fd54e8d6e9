package errors

import (
	"fmt"
)

// InvalidCharacterError occurs when a configured delimiter or separator is not exactly one single-byte character
type InvalidCharacterError struct {
	Name  string
	Value rune
}

// Error returns a textual representation of this InvalidCharacterError
func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s can only be a single character. Was: %q", e.Name, e.Value)
}

// CharacterCollisionError occurs when the delimiter and separator are configured to the same character
type CharacterCollisionError struct{ Character rune }

// Error returns a textual representation of this CharacterCollisionError
func (e CharacterCollisionError) Error() string {
	return fmt.Sprintf("delimiter and separator cannot be the same character. Was: %q", e.Character)
}

// InvalidLinesPerSplitError occurs when a negative lines-per-split count is configured
type InvalidLinesPerSplitError struct{ Value int }

// Error returns a textual representation of this InvalidLinesPerSplitError
func (e InvalidLinesPerSplitError) Error() string {
	return fmt.Sprintf("lines per split must be positive. Was: %d", e.Value)
}

// NotAFileError occurs when an enumerated path is not a regular file
type NotAFileError struct{ Path string }

// Error returns a textual representation of this NotAFileError
func (e NotAFileError) Error() string {
	return fmt.Sprintf("Not a file: %s", e.Path)
}

// NoFilesError occurs when a glob pattern matches no files
type NoFilesError struct{ Glob string }

// Error returns a textual representation of this NoFilesError
func (e NoFilesError) Error() string {
	return fmt.Sprintf("glob %s produced 0 files", e.Glob)
}
