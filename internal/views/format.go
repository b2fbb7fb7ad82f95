package views

import (
	"fmt"
	"strings"
	"time"
)

// Display layouts shared by every view.
const (
	DateLayout  = "Jan 2, 2006"
	TimeLayout  = "3:04 PM"
	MonthLayout = "January 2006"
	DayLayout   = "2006-01-02"
)

func in(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc)
}

// FormatTime renders t as a short clock time such as "3:04 PM".
func FormatTime(t time.Time, loc *time.Location) string {
	return in(t, loc).Format(TimeLayout)
}

// MonthTitle renders the month containing t in upper case, e.g. "OCTOBER 2026".
func MonthTitle(t time.Time, loc *time.Location) string {
	return strings.ToUpper(in(t, loc).Format(MonthLayout))
}

// CardCountLabel renders a flashcard count, e.g. "10 cards".
func CardCountLabel(n int) string {
	return fmt.Sprintf("%d cards", n)
}

// CreatedLabel renders a creation date, e.g. "Created: Oct 19, 2026".
func CreatedLabel(t time.Time, loc *time.Location) string {
	return "Created: " + in(t, loc).Format(DateLayout)
}
