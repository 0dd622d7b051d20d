package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/mgpai22/rang/internal/config"
)

// numpad alignment 1, used for cues anchored at the start or end of the line
const anchorDirective = `{\an1}`

// Placement is the positioning outcome for one cue.
type Placement struct {
	// alignment override, empty keeps the style alignment
	Directive string
	// 0 inherits the style margin
	MarginV int
}

// PositionMapper maps WebVTT cue settings onto script placement.
type PositionMapper struct {
	cfg config.Config
}

func NewPositionMapper(cfg config.Config) PositionMapper {
	return PositionMapper{cfg: cfg}
}

// Map evaluates the cue settings. Settings it cannot express are reported
// and otherwise ignored.
func (m PositionMapper) Map(settings string) (Placement, []Diagnostic) {
	var (
		placement Placement
		diags     []Diagnostic
	)

	fields := parseSettings(settings)
	if len(fields) == 0 {
		return placement, nil
	}

	position, hasPosition := percent(fields["position"])
	align := strings.ToLower(fields["align"])

	switch {
	case hasPosition && position == 50 && (align == "middle" || align == "center"):
		// bottom center is the style default
	case hasPosition && position == 30 && align == "start":
		placement.Directive = anchorDirective
	case hasPosition && position == 70 && align == "end":
		placement.Directive = anchorDirective
	default:
		diags = append(diags, Diagnostic{
			Kind:    UnsupportedPlacement,
			Message: "unsupported position/align combination",
			Detail:  settings,
		})
	}

	if raw, ok := fields["line"]; ok {
		line, ok := percent(raw)
		switch {
		case !ok:
			diags = append(diags, Diagnostic{
				Kind:    UnparsableLine,
				Message: "could not parse vertical position",
				Detail:  settings,
			})
		case line != m.cfg.Layout.DefaultLinePercent:
			placement.MarginV = m.cfg.MarginV(line)
		}
	}

	_, vertical := fields["vertical"]
	_, size := fields["size"]
	if vertical || size {
		diags = append(diags, Diagnostic{
			Kind:    UnmodeledPosition,
			Message: "unaccounted-for position data present",
			Detail:  settings,
		})
	}

	return placement, diags
}

// parseSettings splits "key:value" tokens separated by spaces or
// semicolons. Tokens without a colon are ignored; later keys win.
func parseSettings(settings string) map[string]string {
	fields := make(map[string]string)
	tokens := strings.FieldsFunc(settings, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ';'
	})
	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, ":")
		if !ok || key == "" {
			continue
		}
		fields[strings.ToLower(key)] = value
	}
	return fields
}

// percent parses values like "80%" or "80%,end" into 80.
func percent(value string) (float64, bool) {
	value, _, _ = strings.Cut(value, ",")
	number, ok := strings.CutSuffix(strings.TrimSpace(value), "%")
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > 100 {
		return 0, false
	}
	return f, true
}
