package generation

import (
	"time"

	"github.com/phrazzld/flipiq/internal/domain"
)

// SchedulePhases label the days of a study schedule, in order.
var SchedulePhases = []string{
	"Introduction and Overview",
	"Core Concepts",
	"Detailed Study",
	"Practice Problems",
	"Review and Reinforcement",
	"Advanced Applications",
	"Final Review and Testing",
}

// BuildSchedule returns one incomplete session per phase on successive
// calendar days in loc, starting on the day of start at the same clock time.
// A nil loc means time.Local.
func BuildSchedule(start time.Time, topic string, loc *time.Location) []domain.StudySession {
	if loc == nil {
		loc = time.Local
	}
	start = start.In(loc)

	sessions := make([]domain.StudySession, 0, len(SchedulePhases))
	for i, phase := range SchedulePhases {
		sessions = append(sessions, domain.NewStudySession(start.AddDate(0, 0, i), phase+": "+topic))
	}
	return sessions
}
