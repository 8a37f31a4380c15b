package domain

import (
	"fmt"
	"time"
)

// DisplayDateTimeFormat is the default layout for rendering task datetimes:
// day, month, year, hour, minute.
const DisplayDateTimeFormat = "02/01/2006 15:04"

// dateTimeLayouts are the accepted input layouts, tried in order.
// Task datetimes are stored as the user typed them; parsing happens only
// for sorting and display.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime parses a stored datetime string against the accepted
// layouts. No timezone normalization is applied; layouts without a zone
// parse in UTC.
func ParseDateTime(raw string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", raw)
}

// FormatForDisplay renders a stored datetime string using the given layout.
// Values that do not parse are returned unchanged.
func FormatForDisplay(raw, layout string) string {
	t, err := ParseDateTime(raw)
	if err != nil {
		return raw
	}
	return t.Format(layout)
}
