package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestColorString(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Color{255, 255, 255, 0}, "&H00FFFFFF"},
		{Color{255, 0, 0, 0}, "&H000000FF"},
		{Color{0, 0, 255, 0}, "&H00FF0000"},
		{Color{0, 0, 0, 160}, "&HA0000000"},
	}

	for _, tt := range tests {
		if got := tt.color.String(); got != tt.want {
			t.Errorf("%+v.String() = %s, want %s", tt.color, got, tt.want)
		}
	}
}

func TestFormatASSTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00:00.00"},
		{1500 * time.Millisecond, "0:00:01.50"},
		{time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond, "1:02:03.45"},
		{-time.Second, "0:00:00.00"},
	}

	for _, tt := range tests {
		if got := formatASSTime(tt.d); got != tt.want {
			t.Errorf("formatASSTime(%v) = %s, want %s", tt.d, got, tt.want)
		}
	}
}

func TestWriteScript(t *testing.T) {
	script := &Script{
		Info: []InfoField{
			{Key: "YCbCr Matrix", Value: "TV.709"},
			{Key: "PlayResX", Value: "1920"},
			{Key: "PlayResY", Value: "1080"},
		},
		Styles: []Style{
			{
				Name:           "Default",
				FontName:       "Clear Sans Medium",
				FontSize:       73,
				Bold:           true,
				PrimaryColor:   Color{255, 255, 255, 0},
				SecondaryColor: Color{255, 0, 0, 0},
				BackColor:      Color{0, 0, 0, 160},
				Outline:        3.5,
				Shadow:         2.1,
				Alignment:      2,
				MarginL:        100,
				MarginR:        100,
				MarginV:        78,
			},
		},
		Events: []Event{
			{
				Start:   time.Second,
				End:     4 * time.Second,
				Style:   "Red",
				Text:    "{\\an1}Hello\\Nworld",
				MarginV: 186,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "nested", "out.ass")
	if err := WriteScript(script, path); err != nil {
		t.Fatalf("WriteScript failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	out := string(data)

	wantLines := []string{
		"[Script Info]",
		"YCbCr Matrix: TV.709",
		"PlayResX: 1920",
		"PlayResY: 1080",
		"[V4+ Styles]",
		"Style: Default,Clear Sans Medium,73,&H00FFFFFF,&H000000FF,&H00000000,&HA0000000,-1,0,0,0,100,100,0,0,1,3.5,2.1,2,100,100,78,1",
		"[Events]",
		"Dialogue: 0,0:00:01.00,0:00:04.00,Red,,0,0,186,,{\\an1}Hello\\Nworld",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("output missing line %q\ngot:\n%s", line, out)
		}
	}

	if strings.Index(out, "[V4+ Styles]") > strings.Index(out, "[Events]") {
		t.Error("styles section must precede events section")
	}
}
