package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/rang/internal/convert"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.Flags().
		Bool("dual", false, "Also write an unstyled <input>.nostyle.ass next to the styled script")
	rootCmd.Flags().
		Bool("unstyled", false, "Only write the unstyled <input>.nostyle.ass")
	rootCmd.MarkFlagsMutuallyExclusive("dual", "unstyled")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	dual, _ := cmd.Flags().GetBool("dual")
	unstyled, _ := cmd.Flags().GetBool("unstyled")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runs := []convert.Options{{}}
	switch {
	case dual:
		runs = append(runs, convert.Options{StripStyling: true})
	case unstyled:
		runs = []convert.Options{{StripStyling: true}}
	}

	// usage was fine from here on, failures are per file
	cmd.SilenceUsage = true

	logger.Debugw("Starting conversion",
		"input", input,
		"dual", dual,
		"unstyled", unstyled,
	)

	pipeline := convert.New(cfg, logger, nil)

	status := 0
	for _, opts := range runs {
		if code := pipeline.Process(input, opts); code != 0 {
			status += code
			continue
		}
		absOutput, _ := filepath.Abs(convert.OutputPath(input, opts))
		fmt.Printf("Subtitles converted successfully: %s\n", absOutput)
	}

	if status != 0 {
		return &exitError{code: status}
	}
	return nil
}
