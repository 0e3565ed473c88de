package schedule

import (
	"fmt"
	"time"
)

// Slot is a single timed artist showing within one exhibition day.
type Slot struct {
	ID       int64
	Artist   string
	OpensAt  string // time-of-day "HH:MM:SS"
	ClosesAt string
}

// Day is one calendar day of the event with its own theme and slot list.
type Day struct {
	ID        int64
	Date      string // ISO date string as delivered by the backend
	Theme     string
	SeatsLeft int
	Slots     []Slot
}

// EventInfo is the immutable top-level snapshot of the whole event,
// fetched once and read-only for the session.
type EventInfo struct {
	ID                int64
	Name              string
	City              string
	Venue             string
	StartDate         string
	EndDate           string
	Description       string
	MaxVisitorsPerDay int
	Days              []Day
}

func (e *EventInfo) DayByID(id int64) (Day, bool) {
	for _, d := range e.Days {
		if d.ID == id {
			return d, true
		}
	}
	return Day{}, false
}

func (e *EventInfo) HasDay(id int64) bool {
	_, ok := e.DayByID(id)
	return ok
}

// serbian month names in genitive, as rendered by the sr-RS locale
var serbianMonths = [...]string{
	"januar", "februar", "mart", "april", "maj", "jun",
	"jul", "avgust", "septembar", "oktobar", "novembar", "decembar",
}

// DayLabel renders a day as "15. maj — Slikarstvo" for confirmation
// summaries. Unknown ids fall back to "#<id>".
func (e *EventInfo) DayLabel(id int64) string {
	d, ok := e.DayByID(id)
	if !ok {
		return fmt.Sprintf("#%d", id)
	}
	t, err := time.Parse(time.RFC3339, d.Date)
	if err != nil {
		if t, err = time.Parse("2006-01-02", d.Date); err != nil {
			return fmt.Sprintf("%s — %s", d.Date, d.Theme)
		}
	}
	return fmt.Sprintf("%d. %s — %s", t.Day(), serbianMonths[t.Month()-1], d.Theme)
}
