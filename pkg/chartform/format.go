package chartform

import (
	"fmt"
	"strings"
)

// ImageFormat is an export format for a rendered chart.
type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatJPG ImageFormat = "jpg"
	// FormatPDF is recognized but cannot be produced without an external
	// PDF library.
	FormatPDF ImageFormat = "pdf"
)

// DefaultFileName is the base name used for exports when the title is
// empty.
const DefaultFileName = "chart"

// ExportFormats are the formats offered after a successful submit.
var ExportFormats = []ImageFormat{FormatPNG, FormatJPG}

// ParseImageFormat parses s case-insensitively; "jpeg" is accepted as an
// alias of [FormatJPG].
func ParseImageFormat(s string) (ImageFormat, error) {
	switch f := ImageFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatJPG, FormatPDF:
		return f, nil
	case "jpeg":
		return FormatJPG, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Name returns the display name of the format, e.g. "PNG".
func (f ImageFormat) Name() string {
	return strings.ToUpper(string(f))
}

// Extension returns the file extension without the leading dot.
func (f ImageFormat) Extension() string {
	return string(f)
}

// FileName derives the export file name from the title field.
func FileName(title string, f ImageFormat) string {
	base := title
	if base == "" {
		base = DefaultFileName
	}

	return base + "." + f.Extension()
}
