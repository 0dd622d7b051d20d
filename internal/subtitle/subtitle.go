package subtitle

import (
	"errors"
	"time"
)

var ErrUnsupportedFormat = errors.New("unsupported subtitle format")

// represents single subtitle cue
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
	// cue settings following the timing arrow, e.g. "position:50% align:middle line:90%"
	Settings string
}

// represents complete subtitle track
type Subtitle struct {
	Entries  []Entry
	Language string
	Format   string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)
