package convert

import (
	"github.com/mgpai22/rang/internal/logging"
)

// Kind classifies a recognition warning.
type Kind int

const (
	UnknownTag Kind = iota + 1
	UnsupportedPlacement
	UnparsableLine
	UnmodeledPosition
)

func (k Kind) String() string {
	switch k {
	case UnknownTag:
		return "unknown_tag"
	case UnsupportedPlacement:
		return "unsupported_placement"
	case UnparsableLine:
		return "unparsable_line"
	case UnmodeledPosition:
		return "unmodeled_position"
	default:
		return "unknown"
	}
}

// Diagnostic is a non-fatal finding about a single cue. Conversion always
// continues with best-effort output.
type Diagnostic struct {
	Kind Kind
	// 1-based cue index, 0 when not tied to a cue
	Cue     int
	Message string
	// offending input fragment
	Detail string
}

// Sink receives diagnostics as they are produced.
type Sink interface {
	Report(d Diagnostic)
}

// Collector keeps every diagnostic in memory.
type Collector struct {
	diagnostics []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

func (c *Collector) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// Discard drops every diagnostic.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(Diagnostic) {}

// LogSink writes diagnostics as warnings.
type LogSink struct {
	Logger *logging.Logger
	// input file the diagnostics belong to
	File string
}

func (s LogSink) Report(d Diagnostic) {
	s.Logger.Warnw(d.Message,
		"file", s.File,
		"cue", d.Cue,
		"kind", d.Kind.String(),
		"detail", d.Detail,
	)
}

// counts what passes through, used for the per-file summary
type countingSink struct {
	next  Sink
	count int
}

func (s *countingSink) Report(d Diagnostic) {
	s.count++
	s.next.Report(d)
}

func reportAll(sink Sink, cue int, diags []Diagnostic) {
	for _, d := range diags {
		d.Cue = cue
		sink.Report(d)
	}
}
