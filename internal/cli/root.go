package cli

import (
	"github.com/mgpai22/subshift/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subshift",
	Short: "Shift SubRip subtitle timings",
	Long: `Subshift is a CLI tool that moves every timestamp in a SubRip (SRT)
subtitle file by a fixed number of seconds.

Text, ids and block order are kept as they are in the source file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("output", "o", "tmp", "Output file path")
	rootCmd.PersistentFlags().
		StringP("config", "c", "", "YAML config file")
}
