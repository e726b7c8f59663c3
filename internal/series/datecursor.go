package series

import (
	"fmt"
	"time"
)

const cursorLayout = "2006-01-02"

// DateCursor is the user-selected calendar day driving date-scoped queries.
// Stepping is whole-calendar-day and timezone-naive: it works on the local
// wall-clock date and formats as YYYY-MM-DD.
type DateCursor struct {
	t time.Time
}

// CursorAt builds a cursor on the calendar day containing t.
func CursorAt(t time.Time) DateCursor {
	y, m, d := t.Date()
	return DateCursor{t: time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

// ParseCursor parses a YYYY-MM-DD value.
func ParseCursor(value string) (DateCursor, error) {
	t, err := time.ParseInLocation(cursorLayout, value, time.Local)
	if err != nil {
		return DateCursor{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return DateCursor{t: t}, nil
}

// Step returns the cursor moved by days whole calendar days.
func (c DateCursor) Step(days int) DateCursor {
	return DateCursor{t: c.t.AddDate(0, 0, days)}
}

// PriorNight returns the cursor minus one day. Sleep is attributed to the
// night before the selected date, so sleep series flag this day instead of
// the cursor itself.
func (c DateCursor) PriorNight() DateCursor {
	return c.Step(-1)
}

// Time returns the cursor as midnight local time.
func (c DateCursor) Time() time.Time { return c.t }

// String formats the cursor as YYYY-MM-DD, the API's date parameter format.
func (c DateCursor) String() string { return c.t.Format(cursorLayout) }

// IsZero reports whether the cursor was never set.
func (c DateCursor) IsZero() bool { return c.t.IsZero() }
