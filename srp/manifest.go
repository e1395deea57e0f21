package srp

import (
	"strings"
)

// Byte caps inherited from the packer's fixed buffer contract. A field over
// its cap is a parse failure for that line, not a silent truncation.
const (
	MaxCategoryLen = 159
	MaxFilenameLen = 575

	// MaxLineLen bounds one manifest line inclusive of its terminator.
	// Longer lines are a producer defect; the reader truncates at the bound.
	MaxLineLen = 767
)

// Entry is one manifest line: a category label and the bundled file it names.
// Both fields are used verbatim to build destination paths. The manifest is
// trusted build-time input and is not sanitized for traversal.
type Entry struct {
	Category string
	Filename string
}

// ParseLine parses a trimmed non-empty manifest line of the form
// "<category>\t<filename>". The filename may itself contain tabs; only the
// first tab separates the fields.
func ParseLine(line string) (Entry, error) {
	category, filename, found := strings.Cut(line, "\t")
	if !found || category == "" || filename == "" {
		return Entry{}, errLineMalformed(line)
	}
	if len(category) > MaxCategoryLen || len(filename) > MaxFilenameLen {
		return Entry{}, errLineMalformed(line)
	}
	return Entry{Category: category, Filename: filename}, nil
}
