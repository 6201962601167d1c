package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces an uploaded filename to a form that is safe to
// store on disk: path components are dropped, unsafe characters become
// underscores, and leading dots are stripped so the result can never escape
// the upload directory or hide itself.
func SanitizeFilename(name string) string {
	// Drop any directory components, whichever separator the client used.
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, "._")

	return name
}
