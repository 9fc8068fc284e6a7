package domain

import (
	"path/filepath"
	"strings"
)

// SourceFormat identifies how the input text is interpreted.
type SourceFormat string

// Available source formats.
const (
	// FormatAuto picks markdown or text from the file extension.
	FormatAuto SourceFormat = "auto"

	// FormatMarkdown runs the Markdown flattening pipeline before parsing.
	FormatMarkdown SourceFormat = "markdown"

	// FormatText parses lines as-is.
	FormatText SourceFormat = "text"
)

var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
}

// IsValid returns true if the format is recognised.
func (f SourceFormat) IsValid() bool {
	switch f {
	case FormatAuto, FormatMarkdown, FormatText:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f SourceFormat) String() string {
	return string(f)
}

// Resolve returns the concrete format for path.
// Explicit formats are returned unchanged.
func (f SourceFormat) Resolve(path string) SourceFormat {
	if f == FormatMarkdown || f == FormatText {
		return f
	}
	return FormatForPath(path)
}

// FormatForPath infers the source format from the file extension.
func FormatForPath(path string) SourceFormat {
	ext := strings.ToLower(filepath.Ext(path))
	if markdownExtensions[ext] {
		return FormatMarkdown
	}
	return FormatText
}

// ParseSourceFormat converts a config or flag value to a SourceFormat.
// Empty input yields FormatAuto.
func ParseSourceFormat(s string) (SourceFormat, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return FormatAuto, true
	case "md":
		return FormatMarkdown, true
	case "txt", "plain":
		return FormatText, true
	}
	f := SourceFormat(s)
	return f, f.IsValid()
}
