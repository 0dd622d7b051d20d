package convert

import (
	"regexp"

	"github.com/mgpai22/rang/internal/style"
	"github.com/mgpai22/rang/internal/subtitle"
)

// switch and reset directives; alignment and breaks are left alone
var styleDirectiveRegex = regexp.MustCompile(`\{\\r[^}]*\}`)

// StripStyling moves every event to the Default style and removes inline
// style directives.
func StripStyling(events []subtitle.Event) []subtitle.Event {
	out := make([]subtitle.Event, len(events))
	for i, event := range events {
		event.Style = style.DefaultName
		event.Text = styleDirectiveRegex.ReplaceAllString(event.Text, "")
		out[i] = event
	}
	return out
}
