package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

// hours are optional in WebVTT timestamps; cue settings follow the end time
var vttTimestampRegex = regexp.MustCompile(
	`^\s*(?:(\d{2,}):)?(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(?:(\d{2,}):)?(\d{2}):(\d{2})\.(\d{3})(.*)$`,
)

type VTTFile struct {
	entries []Entry
}

func parseVTTFile(path string) (*VTTFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open VTT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var entries []Entry
	scanner := bufio.NewScanner(file)

	var currentEntry *Entry
	var textLines []string
	lineNum := 0
	headerParsed := false
	entryIndex := 0

	flush := func() {
		if currentEntry != nil && len(textLines) > 0 {
			currentEntry.Text = strings.Join(textLines, "\n")
			entries = append(entries, *currentEntry)
		}
		currentEntry = nil
		textLines = nil
	}

	skipBlock := func() {
		for scanner.Scan() {
			lineNum++
			if strings.TrimSpace(scanner.Text()) == "" {
				break
			}
		}
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if !headerParsed {
			if strings.HasPrefix(strings.TrimSpace(line), "WEBVTT") {
				headerParsed = true
				skipBlock()
				continue
			}
		}

		if currentEntry == nil {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "NOTE") ||
				strings.HasPrefix(trimmed, "STYLE") ||
				strings.HasPrefix(trimmed, "REGION") {
				skipBlock()
				continue
			}
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		matches := vttTimestampRegex.FindStringSubmatch(line)
		if len(matches) == 10 {
			flush()

			startTime, err := parseVTTTimestamp(
				matches[1], matches[2], matches[3], matches[4],
			)
			if err != nil {
				return nil, fmt.Errorf(
					"invalid start timestamp at line %d: %w",
					lineNum,
					err,
				)
			}
			endTime, err := parseVTTTimestamp(
				matches[5], matches[6], matches[7], matches[8],
			)
			if err != nil {
				return nil, fmt.Errorf(
					"invalid end timestamp at line %d: %w",
					lineNum,
					err,
				)
			}

			entryIndex++
			currentEntry = &Entry{
				Index:     entryIndex,
				StartTime: startTime,
				EndTime:   endTime,
				Settings:  strings.TrimSpace(matches[9]),
			}
			continue
		}

		if currentEntry != nil {
			textLines = append(textLines, line)
		}
	}

	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading VTT file: %w", err)
	}

	return &VTTFile{entries: entries}, nil
}

func parseVTTTimestamp(
	hours, minutes, seconds, millis string,
) (time.Duration, error) {
	if hours == "" {
		hours = "00"
	}
	return parseSRTTimestamp(hours, minutes, seconds, millis)
}

func (f *VTTFile) Format() Format {
	return FormatVTT
}

func (f *VTTFile) Subtitle() *Subtitle {
	return &Subtitle{
		Entries: f.entries,
		Format:  string(FormatVTT),
	}
}
