package shifter

import (
	"strings"

	"github.com/mgpai22/subshift/internal/config"
	"github.com/mgpai22/subshift/internal/logging"
	"github.com/mgpai22/subshift/internal/subtitle"
)

type Options struct {
	// seconds, may be negative
	OffsetSeconds int64
	// blank line between output blocks
	BlankLines bool
}

// outcome of one pass over a file
type Report struct {
	Output []byte
	Blocks int
	Blanks int
	Errors []*subtitle.ParseError
}

// Shift parses lines, moves every block by the offset and renders the
// result. Blocks that fail to parse are logged and dropped.
func Shift(lines []string, opts Options, logger *logging.Logger) *Report {
	report := &Report{}
	parser := subtitle.NewParser(lines)
	renderer := &subtitle.Renderer{Separate: opts.BlankLines}

	var sb strings.Builder
	for !parser.Done() {
		res := parser.Next()

		switch res.Kind {
		case subtitle.KindBlank:
			report.Blanks++
		case subtitle.KindError:
			logger.Warnw("Skipping malformed subtitle block",
				"line", res.Err.Line,
				"text", res.Err.Text,
				"error", res.Err.Err,
			)
			report.Errors = append(report.Errors, res.Err)
		case subtitle.KindBlock:
			res.Block.Shift(opts.OffsetSeconds)
			renderer.Render(&sb, res.Block)
			report.Blocks++
		}
	}

	report.Output = []byte(sb.String())
	return report
}

// Run reads cfg.Input, shifts it and writes cfg.Output. Only I/O errors
// fail the run.
func Run(cfg config.Config, logger *logging.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lines, err := ReadInput(cfg.Input)
	if err != nil {
		return nil, err
	}

	logger.Infow("Read subtitle", "lines", len(lines))

	report := Shift(lines, Options{
		OffsetSeconds: cfg.Offset,
		BlankLines:    cfg.BlankLines,
	}, logger)

	logger.Debugw("Shift complete",
		"blocks", report.Blocks,
		"blanks", report.Blanks,
		"errors", len(report.Errors),
	)

	if err := WriteOutput(cfg.Output, report.Output); err != nil {
		return nil, err
	}

	return report, nil
}
