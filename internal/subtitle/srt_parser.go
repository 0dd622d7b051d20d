package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SubRip timing line; NPO exports carry WebVTT cue settings after the end time
var srtTimestampRegex = regexp.MustCompile(
	`^\s*(\d{1,2}):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d{1,2}):(\d{2}):(\d{2})[,.](\d{3})(.*)$`,
)

type SRTFile struct {
	entries []Entry
}

func parseSRTFile(path string) (*SRTFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var entries []Entry
	scanner := bufio.NewScanner(file)

	var currentEntry *Entry
	var textLines []string
	timed := false
	lineNum := 0

	flush := func() {
		if currentEntry != nil && timed && len(textLines) > 0 {
			currentEntry.Text = strings.Join(textLines, "\n")
			entries = append(entries, *currentEntry)
		}
		currentEntry = nil
		textLines = nil
		timed = false
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if currentEntry == nil {
			index, err := strconv.Atoi(strings.TrimSpace(line))
			if err == nil {
				currentEntry = &Entry{Index: index}
				continue
			}
		}

		if !timed {
			matches := srtTimestampRegex.FindStringSubmatch(line)
			if len(matches) == 10 {
				startTime, err := parseSRTTimestamp(
					matches[1], matches[2], matches[3], matches[4],
				)
				if err != nil {
					return nil, fmt.Errorf(
						"invalid start timestamp at line %d: %w",
						lineNum,
						err,
					)
				}
				endTime, err := parseSRTTimestamp(
					matches[5], matches[6], matches[7], matches[8],
				)
				if err != nil {
					return nil, fmt.Errorf(
						"invalid end timestamp at line %d: %w",
						lineNum,
						err,
					)
				}
				if currentEntry == nil {
					currentEntry = &Entry{Index: len(entries) + 1}
				}
				currentEntry.StartTime = startTime
				currentEntry.EndTime = endTime
				currentEntry.Settings = strings.TrimSpace(matches[9])
				timed = true
				continue
			}
		}

		if currentEntry != nil && timed {
			textLines = append(textLines, line)
		}
	}

	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT file: %w", err)
	}

	return &SRTFile{entries: entries}, nil
}

func parseSRTTimestamp(
	hours, minutes, seconds, millis string,
) (time.Duration, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}
	if m > 59 || s > 59 {
		return 0, fmt.Errorf("timestamp field out of range: %s:%s:%s", hours, minutes, seconds)
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

func (f *SRTFile) Format() Format {
	return FormatSRT
}

func (f *SRTFile) Subtitle() *Subtitle {
	return &Subtitle{
		Entries: f.entries,
		Format:  string(FormatSRT),
	}
}
