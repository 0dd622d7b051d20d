package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// target video the generated script is laid out for
type Video struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	ColorMatrix string `yaml:"color_matrix"`
}

// base font parameters shared by every palette entry
type Font struct {
	Name    string  `yaml:"name"`
	Size    float64 `yaml:"size"`
	Bold    bool    `yaml:"bold"`
	Outline float64 `yaml:"outline"`
	Shadow  float64 `yaml:"shadow"`
	MarginL int     `yaml:"margin_l"`
	MarginR int     `yaml:"margin_r"`
}

// vertical placement of cue lines
type Layout struct {
	// percentage of the screen height measured from the top
	DefaultLinePercent float64 `yaml:"default_line_percent"`
	MarginVOffset      float64 `yaml:"marginv_offset"`
}

// Config holds the house constants used during conversion. It is passed
// around by value and never mutated after Load returns.
type Config struct {
	Video  Video  `yaml:"video"`
	Font   Font   `yaml:"font"`
	Layout Layout `yaml:"layout"`
}

func Default() Config {
	return Config{
		Video: Video{
			Width:       1920,
			Height:      1080,
			ColorMatrix: "TV.709",
		},
		Font: Font{
			Name:    "Clear Sans Medium",
			Size:    73,
			Bold:    true,
			Outline: 3.5,
			Shadow:  2.1,
			MarginL: 100,
			MarginR: 100,
		},
		Layout: Layout{
			DefaultLinePercent: 90,
			MarginVOffset:      -30,
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Video.Width <= 0 || c.Video.Height <= 0 {
		errs = append(errs, fmt.Errorf(
			"video dimensions must be positive, got %dx%d",
			c.Video.Width,
			c.Video.Height,
		))
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font size must be positive, got %v", c.Font.Size))
	}
	if c.Layout.DefaultLinePercent <= 0 || c.Layout.DefaultLinePercent > 100 {
		errs = append(errs, fmt.Errorf(
			"default line percent must be in (0, 100], got %v",
			c.Layout.DefaultLinePercent,
		))
	}
	return errors.Join(errs...)
}

// MarginV converts a line position, given as a percentage from the top of
// the screen, into a bottom margin in script pixels.
func (c Config) MarginV(linePercent float64) int {
	margin := (1-linePercent/100)*float64(c.Video.Height) + c.Layout.MarginVOffset
	return int(math.RoundToEven(margin))
}

// DefaultMarginV is the bottom margin of the Default style.
func (c Config) DefaultMarginV() int {
	return c.MarginV(c.Layout.DefaultLinePercent)
}
