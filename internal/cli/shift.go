package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/subshift/internal/config"
	"github.com/mgpai22/subshift/internal/shifter"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Move every subtitle timestamp by a number of seconds",
	Long: `Shift all start and end times in a SubRip file by a fixed offset.

A negative offset moves subtitles earlier. Times that would fall below
zero are clamped to 00:00:00,000. Blocks that cannot be parsed are
reported and left out of the output.

Flags set on the command line override values from --config.

Examples:
  subshift shift movie.srt
  subshift shift movie.srt -o fixed.srt --offset=3
  subshift shift --input movie.srt --offset=-12 --blank-lines
  subshift shift -c subshift.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		StringP("input", "i", "", "Input SRT file (alternative to the positional argument)")
	shiftCmd.Flags().
		Int64P("offset", "s", config.DefaultOffset, "Number of seconds to move by")
	shiftCmd.Flags().
		Bool("blank-lines", false, "Separate output blocks with a blank line")
}

func runShift(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	logger.Infow("INPUT", "path", cfg.Input)
	logger.Infow("OUTPUT", "path", cfg.Output)
	logger.Debugw("Shifting subtitles",
		"offset_seconds", cfg.Offset,
		"blank_lines", cfg.BlankLines,
	)

	report, err := shifter.Run(cfg, logger)
	if err != nil {
		logger.Errorw("Shift failed", "error", err)
		return fmt.Errorf("shift failed: %w", err)
	}

	absOutput, _ := filepath.Abs(cfg.Output)
	fmt.Printf("Subtitles shifted successfully: %s\n", absOutput)
	fmt.Printf("  Blocks: %d\n", report.Blocks)
	if len(report.Errors) > 0 {
		fmt.Printf("  Skipped: %d\n", len(report.Errors))
	}

	return nil
}

// config file first, then any flag the user actually set
func resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input, _ = flags.GetString("input")
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("offset") {
		cfg.Offset, _ = flags.GetInt64("offset")
	}
	if flags.Changed("blank-lines") {
		cfg.BlankLines, _ = flags.GetBool("blank-lines")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: pass a subtitle file or --input", err)
	}
	return cfg, nil
}
