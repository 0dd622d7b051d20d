package cli

import (
	"errors"
	"fmt"

	"github.com/mgpai22/rang/internal/config"
	"github.com/mgpai22/rang/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rang [subtitle_file]",
	Short: "Convert color-classed caption files to styled ASS subtitles",
	Long: `Rang converts SubRip or WebVTT caption files that carry inline color
classes (<c.yellow>, <c.S4>, ...) and WebVTT cue settings into Advanced
SubStation Alpha scripts with one named style per color.

The script is written next to the input as <input>.ass.

Examples:
  rang episode.srt
  rang episode.vtt --dual
  rang episode.srt --unstyled --config house.yaml`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	RunE: runConvert,
}

// exitError carries a nonzero exit status out of a command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", e.code)
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if configPath != "" {
		logger.Debugw("Loaded configuration", "path", configPath)
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "YAML file overriding the house style constants")
}
