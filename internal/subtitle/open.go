package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// parsed cue file
type File interface {
	Format() Format
	Subtitle() *Subtitle
}

// Open parses a cue file. Files with unknown extensions are read as SubRip.
func Open(path string) (File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".vtt":
		return parseVTTFile(path)
	case ".ass", ".ssa":
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	default:
		return parseSRTFile(path)
	}
}
