package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown image format")

// Format is a snapshot image encoding
type Format uint8

const (
	WebP Format = iota
	TGA
	PNG
)

var formatNames = [...]string{
	WebP: "webp",
	TGA:  "tga",
	PNG:  "png",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", f)
}

// Extension returns the file extension, dot included
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat accepts a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("export: %q: %w", s, ErrUnknownFormat)
}

// FormatFromPath picks the format matching the file extension of path
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
