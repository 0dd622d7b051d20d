package convert

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/mgpai22/rang/internal/config"
	"github.com/mgpai22/rang/internal/logging"
	"github.com/mgpai22/rang/internal/style"
	"github.com/mgpai22/rang/internal/subtitle"
)

// ErrOpen marks failures to open or parse an input file.
var ErrOpen = errors.New("could not open subtitle file")

const (
	styledSuffix   = ".ass"
	unstyledSuffix = ".nostyle.ass"
)

type Options struct {
	// drop color styling, write <input>.nostyle.ass
	StripStyling bool
}

// OutputPath returns where the script for input is written.
func OutputPath(input string, opts Options) string {
	if opts.StripStyling {
		return input + unstyledSuffix
	}
	return input + styledSuffix
}

// Pipeline converts whole cue files into styled scripts.
type Pipeline struct {
	cfg    config.Config
	logger *logging.Logger
	sink   Sink
}

// New builds a pipeline. A nil sink logs diagnostics through logger.
func New(cfg config.Config, logger *logging.Logger, sink Sink) *Pipeline {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Pipeline{cfg: cfg, logger: logger, sink: sink}
}

// Build converts every cue and returns the complete script, events
// ordered by start time. Cues starting together keep their input order.
func (p *Pipeline) Build(entries []subtitle.Entry, sink Sink, opts Options) *subtitle.Script {
	converter := NewConverter(p.cfg, sink)

	events := make([]subtitle.Event, 0, len(entries))
	for _, entry := range entries {
		events = append(events, converter.Convert(entry))
	}
	slices.SortStableFunc(events, func(a, b subtitle.Event) int {
		return cmp.Compare(a.Start, b.Start)
	})

	if opts.StripStyling {
		events = StripStyling(events)
	}

	return &subtitle.Script{
		Info:   style.Info(p.cfg),
		Styles: style.Build(p.cfg).Styles(),
		Events: events,
	}
}

// ConvertFile reads input, converts it and writes the script next to it.
// It returns the output path.
func (p *Pipeline) ConvertFile(input string, opts Options) (string, error) {
	file, err := subtitle.Open(input)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrOpen, input, err)
	}

	sink := &countingSink{next: p.fileSink(input)}
	sub := file.Subtitle()
	script := p.Build(sub.Entries, sink, opts)

	output := OutputPath(input, opts)
	if err := subtitle.WriteScript(script, output); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", output, err)
	}

	p.logger.Infow("Converted subtitle file",
		"input", input,
		"output", output,
		"format", file.Format(),
		"cues", len(sub.Entries),
		"warnings", sink.count,
		"stripped", opts.StripStyling,
	)
	return output, nil
}

// Process converts one file and reports the outcome as an exit status:
// 0 on success, 1 on failure. Failures are logged, never propagated.
func (p *Pipeline) Process(input string, opts Options) int {
	if _, err := p.ConvertFile(input, opts); err != nil {
		p.logger.Errorw("Conversion failed",
			"input", input,
			"error", err,
		)
		return 1
	}
	return 0
}

func (p *Pipeline) fileSink(input string) Sink {
	if p.sink != nil {
		return p.sink
	}
	return LogSink{Logger: p.logger, File: input}
}
