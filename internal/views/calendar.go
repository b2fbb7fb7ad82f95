package views

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/domain"
)

// GridDays is the number of cells in a month grid: six full weeks.
const GridDays = 42

// SessionSource finds the sessions scheduled on a day. store.StudyGuideStore
// satisfies it.
type SessionSource interface {
	SessionsOn(ctx context.Context, day time.Time, loc *time.Location) []domain.StudySession
}

// Day is one cell of the month grid.
type Day struct {
	Date           string `json:"date"`
	Day            int    `json:"day"`
	IsToday        bool   `json:"is_today"`
	IsSelected     bool   `json:"is_selected"`
	IsCurrentMonth bool   `json:"is_current_month"`
	HasSessions    bool   `json:"has_sessions"`
}

// Session is one entry in the selected day's session list.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Topic     string    `json:"topic"`
	Time      string    `json:"time"`
	Completed bool      `json:"completed"`
}

// CalendarView is the rendered month plus the sessions of the selected day.
type CalendarView struct {
	Title    string    `json:"title"`
	Selected string    `json:"selected"`
	Days     []Day     `json:"days"`
	Sessions []Session `json:"sessions"`
}

// Calendar tracks the selected date of a month view.
type Calendar struct {
	selected time.Time
	loc      *time.Location
}

// NewCalendar creates a Calendar with selected as the selected date.
// A nil loc means time.Local.
func NewCalendar(selected time.Time, loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{selected: selected.In(loc), loc: loc}
}

// Selected returns the selected date.
func (c *Calendar) Selected() time.Time { return c.selected }

// Select makes date the selected date.
func (c *Calendar) Select(date time.Time) { c.selected = date.In(c.loc) }

// ChangeMonth moves the selection by direction months.
func (c *Calendar) ChangeMonth(direction int) {
	c.selected = ChangeMonth(c.selected, direction)
}

// Title returns the upper-case month title of the selection.
func (c *Calendar) Title() string { return MonthTitle(c.selected, c.loc) }

// Grid returns the 42 days shown for the selected month.
func (c *Calendar) Grid() []time.Time { return MonthGrid(c.selected, c.loc) }

// Render builds the month view. now decides which cell is today.
func (c *Calendar) Render(ctx context.Context, src SessionSource, now time.Time) CalendarView {
	grid := c.Grid()
	days := make([]Day, 0, len(grid))
	for _, d := range grid {
		days = append(days, Day{
			Date:           d.Format(DayLayout),
			Day:            d.Day(),
			IsToday:        domain.SameDay(d, now, c.loc),
			IsSelected:     domain.SameDay(d, c.selected, c.loc),
			IsCurrentMonth: d.Month() == c.selected.Month() && d.Year() == c.selected.Year(),
			HasSessions:    len(src.SessionsOn(ctx, d, c.loc)) > 0,
		})
	}

	found := src.SessionsOn(ctx, c.selected, c.loc)
	sessions := make([]Session, 0, len(found))
	for _, s := range found {
		sessions = append(sessions, Session{
			ID:        s.ID,
			Topic:     s.Topic,
			Time:      FormatTime(s.Date, c.loc),
			Completed: s.Completed,
		})
	}

	return CalendarView{
		Title:    c.Title(),
		Selected: c.selected.Format(DayLayout),
		Days:     days,
		Sessions: sessions,
	}
}

// MonthGrid returns GridDays consecutive days starting on the Sunday on or
// before the first day of date's month in loc.
func MonthGrid(date time.Time, loc *time.Location) []time.Time {
	d := in(date, loc)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]time.Time, GridDays)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// ChangeMonth moves date by direction months, keeping the time of day.
// The day of month is clamped to the length of the target month, so
// January 31 plus one month is the last day of February.
func ChangeMonth(date time.Time, direction int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m+time.Month(direction), 1, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
	if last := daysIn(first.Year(), first.Month(), date.Location()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
