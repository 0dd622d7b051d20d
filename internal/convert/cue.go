package convert

import (
	"github.com/mgpai22/rang/internal/config"
	"github.com/mgpai22/rang/internal/subtitle"
)

// Converter turns one parsed cue into one script event.
type Converter struct {
	tags      *TagTranslator
	positions PositionMapper
	sink      Sink
}

func NewConverter(cfg config.Config, sink Sink) *Converter {
	if sink == nil {
		sink = Discard
	}
	return &Converter{
		tags:      NewTagTranslator(),
		positions: NewPositionMapper(cfg),
		sink:      sink,
	}
}

// Convert never fails; anything it cannot express goes to the sink.
func (c *Converter) Convert(entry subtitle.Entry) subtitle.Event {
	translation, tagDiags := c.tags.Translate(entry.Text)
	placement, posDiags := c.positions.Map(entry.Settings)

	reportAll(c.sink, entry.Index, tagDiags)
	reportAll(c.sink, entry.Index, posDiags)

	return subtitle.Event{
		Start:   entry.StartTime,
		End:     entry.EndTime,
		Style:   translation.Style,
		Text:    placement.Directive + translation.Text,
		MarginV: placement.MarginV,
	}
}
