package errors

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// MaxNameLength is the longest graph name the interpreter accepts.
const MaxNameLength = 64

var nameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reservedNames are interpreter command words that cannot name a graph.
var reservedNames = []string{
	"cheeger", "dot", "exit", "graph6", "help", "info", "list", "quit", "save", "viz",
}

// ValidateName validates a graph name used on the left of an interpreter
// assignment. Names are identifiers: a letter or underscore followed by
// letters, digits or underscores, not longer than [MaxNameLength], and not
// one of the interpreter's command words. A valid name is also a valid DOT
// graph ID.
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "graph name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidName, "graph name too long (max %d characters)", MaxNameLength)
	}
	if !nameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid graph name %q (use letters, digits and _)", name)
	}
	if slices.Contains(reservedNames, name) {
		return New(ErrCodeInvalidName, "%q is a command and cannot name a graph", name)
	}
	return nil
}

// ValidatePath validates a file name supplied inside the interpreter. Such
// paths are resolved below the configured output directory, so they must stay
// inside it.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 255 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 255
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}
