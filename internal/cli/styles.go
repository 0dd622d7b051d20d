package cli

import (
	"fmt"

	"github.com/mgpai22/rang/internal/style"
	"github.com/mgpai22/rang/internal/subtitle"
	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Print the script header and style table used for every conversion",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		script := &subtitle.Script{
			Info:   style.Info(cfg),
			Styles: style.Build(cfg).Styles(),
		}
		fmt.Fprint(cmd.OutOrStdout(), subtitle.RenderScript(script))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
