package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

const (
	styleFormat = "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"
	eventFormat = "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"
)

// WriteScript serializes the script to path, creating parent directories.
func WriteScript(script *Script, path string) (err error) {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create ASS file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to close ASS file: %w", cerr))
		}
	}()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(RenderScript(script)); err != nil {
		return fmt.Errorf("failed to write ASS file: %w", err)
	}
	return writer.Flush()
}

// RenderScript returns the textual form of the script.
func RenderScript(script *Script) string {
	var sb strings.Builder

	// script info section
	sb.WriteString("[Script Info]\n")
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("WrapStyle: 0\n")
	sb.WriteString("ScaledBorderAndShadow: yes\n")
	sb.WriteString("Collisions: Normal\n")
	for _, field := range script.Info {
		sb.WriteString(fmt.Sprintf("%s: %s\n", field.Key, field.Value))
	}
	sb.WriteString("\n")

	// v4+ styles section
	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString(styleFormat + "\n")
	for _, style := range script.Styles {
		sb.WriteString(formatStyleLine(style))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	// events section
	sb.WriteString("[Events]\n")
	sb.WriteString(eventFormat + "\n")
	for _, event := range script.Events {
		sb.WriteString(fmt.Sprintf("Dialogue: 0,%s,%s,%s,,0,0,%d,,%s\n",
			formatASSTime(event.Start),
			formatASSTime(event.End),
			event.Style,
			event.MarginV,
			escapeASSText(event.Text)))
	}

	return sb.String()
}

func formatStyleLine(s Style) string {
	fields := []string{
		s.Name,
		s.FontName,
		formatNumber(s.FontSize),
		s.PrimaryColor.String(),
		s.SecondaryColor.String(),
		s.OutlineColor.String(),
		s.BackColor.String(),
		formatBool(s.Bold),
		"0", "0", "0", // italic, underline, strikeout
		"100", "100", "0", "0", // scale x/y, spacing, angle
		"1", // border style: outline + drop shadow
		formatNumber(s.Outline),
		formatNumber(s.Shadow),
		strconv.Itoa(s.Alignment),
		strconv.Itoa(s.MarginL),
		strconv.Itoa(s.MarginR),
		strconv.Itoa(s.MarginV),
		"1",
	}
	return "Style: " + strings.Join(fields, ",")
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "-1"
	}
	return "0"
}

func formatASSTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	centis := (int(d.Milliseconds()) % 1000) / 10

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

func escapeASSText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\\N")
	text = strings.ReplaceAll(text, "\n", "\\N")
	return text
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
