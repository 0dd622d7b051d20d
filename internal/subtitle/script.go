package subtitle

import (
	"fmt"
	"time"
)

// RGBA color; A is transparency, 0 is fully opaque
type Color struct {
	R, G, B, A uint8
}

// String renders the color in the &HAABBGGRR form used by style lines.
func (c Color) String() string {
	return fmt.Sprintf("&H%02X%02X%02X%02X", c.A, c.B, c.G, c.R)
}

// named style of an Advanced SubStation Alpha script
type Style struct {
	Name           string
	FontName       string
	FontSize       float64
	Bold           bool
	PrimaryColor   Color
	SecondaryColor Color
	OutlineColor   Color
	BackColor      Color
	Outline        float64
	Shadow         float64
	// numpad alignment, 2 is bottom center
	Alignment int
	MarginL   int
	MarginR   int
	MarginV   int
}

// key/value line of the [Script Info] section
type InfoField struct {
	Key   string
	Value string
}

// dialogue line of the [Events] section
type Event struct {
	Start time.Duration
	End   time.Duration
	Style string
	Text  string
	// 0 inherits the style margin
	MarginV int
}

// complete Advanced SubStation Alpha script
type Script struct {
	Info   []InfoField
	Styles []Style
	Events []Event
}
