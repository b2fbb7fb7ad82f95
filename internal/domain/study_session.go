package domain

import (
	"time"

	"github.com/google/uuid"
)

// StudySession is one scheduled day-level review entry tied to a study
// guide's topic. Completed is carried for display; no flow sets it.
type StudySession struct {
	ID        uuid.UUID `json:"id"        yaml:"id"`
	Date      time.Time `json:"date"      yaml:"date"`
	Topic     string    `json:"topic"     yaml:"topic"`
	Completed bool      `json:"completed" yaml:"completed"`
}

// NewStudySession creates an incomplete session on date with the given label.
func NewStudySession(date time.Time, topic string) StudySession {
	return StudySession{
		ID:    uuid.New(),
		Date:  date,
		Topic: topic,
	}
}

// OnDay reports whether the session falls on the same calendar day as day,
// with both instants interpreted in loc.
func (s StudySession) OnDay(day time.Time, loc *time.Location) bool {
	return SameDay(s.Date, day, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
// A nil loc means time.Local.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
