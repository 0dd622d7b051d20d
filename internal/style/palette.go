// Package style builds the fixed palette of named styles every converted
// script carries, together with the script-level info block.
package style

import (
	"strconv"

	"github.com/mgpai22/rang/internal/config"
	"github.com/mgpai22/rang/internal/subtitle"
)

const DefaultName = "Default"

var (
	white   = subtitle.Color{R: 255, G: 255, B: 255}
	black   = subtitle.Color{}
	lime    = subtitle.Color{G: 255}
	cyan    = subtitle.Color{G: 255, B: 255}
	red     = subtitle.Color{R: 255}
	yellow  = subtitle.Color{R: 255, G: 255}
	magenta = subtitle.Color{R: 255, B: 255}
	blue    = subtitle.Color{B: 255}
)

// Palette is the ordered set of styles of a converted script.
type Palette struct {
	styles []subtitle.Style
}

// Build returns Default followed by the eight color variants.
func Build(cfg config.Config) Palette {
	base := defaultStyle(cfg)
	return Palette{styles: []subtitle.Style{
		base,
		variant(base, "White", white),
		variant(base, "Lime", lime),
		variant(base, "Cyan", cyan),
		variant(base, "Red", red),
		variant(base, "Yellow", yellow),
		variant(base, "Magenta", magenta),
		variant(base, "Blue", blue),
		highContrast(base, "Black", black, white),
	}}
}

func defaultStyle(cfg config.Config) subtitle.Style {
	return subtitle.Style{
		Name:           DefaultName,
		FontName:       cfg.Font.Name,
		FontSize:       cfg.Font.Size,
		Bold:           cfg.Font.Bold,
		PrimaryColor:   white,
		SecondaryColor: red,
		OutlineColor:   black,
		BackColor:      subtitle.Color{A: 160},
		Outline:        cfg.Font.Outline,
		Shadow:         cfg.Font.Shadow,
		Alignment:      2,
		MarginL:        cfg.Font.MarginL,
		MarginR:        cfg.Font.MarginR,
		MarginV:        cfg.DefaultMarginV(),
	}
}

func variant(base subtitle.Style, name string, primary subtitle.Color) subtitle.Style {
	base.Name = name
	base.PrimaryColor = primary
	return base
}

func highContrast(base subtitle.Style, name string, primary, outline subtitle.Color) subtitle.Style {
	s := variant(base, name, primary)
	s.OutlineColor = outline
	return s
}

// Styles returns a copy of the palette entries in script order.
func (p Palette) Styles() []subtitle.Style {
	out := make([]subtitle.Style, len(p.styles))
	copy(out, p.styles)
	return out
}

func (p Palette) Lookup(name string) (subtitle.Style, bool) {
	for _, s := range p.styles {
		if s.Name == name {
			return s, true
		}
	}
	return subtitle.Style{}, false
}

func (p Palette) Len() int {
	return len(p.styles)
}

// Info returns the [Script Info] fields the output container needs.
func Info(cfg config.Config) []subtitle.InfoField {
	return []subtitle.InfoField{
		{Key: "YCbCr Matrix", Value: cfg.Video.ColorMatrix},
		{Key: "PlayResX", Value: strconv.Itoa(cfg.Video.Width)},
		{Key: "PlayResY", Value: strconv.Itoa(cfg.Video.Height)},
	}
}
