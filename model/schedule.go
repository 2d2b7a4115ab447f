package model

import "time"

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// DaysOfWeek lists the seven day tags in schedule order, Monday first.
var DaysOfWeek = [7]DayOfWeek{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// DaysByWeekday maps time.Weekday indexes (Sunday = 0) to day tags.
var DaysByWeekday = [7]DayOfWeek{
	Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday,
}

func (d DayOfWeek) Valid() bool {
	for _, day := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// WeekSchedule assigns tasks to each day of one calendar week, identified
// by the YYYY-MM-DD string of its Monday. Each day's list is ordered and
// holds task ids by value; the ids are weak references and survive task
// deletion.
type WeekSchedule struct {
	ScheduleID    string                 `bson:"_id,omitempty" json:"id"`
	WeekStartDate string                 `bson:"week_start_date" json:"week_start_date"`
	Tasks         map[DayOfWeek][]string `bson:"tasks" json:"tasks"`
	CreatedAt     time.Time              `bson:"created_at" json:"created_at"`
}

// Clone returns a deep copy so callers can edit speculatively before an
// explicit save.
func (s *WeekSchedule) Clone() *WeekSchedule {
	out := &WeekSchedule{
		ScheduleID:    s.ScheduleID,
		WeekStartDate: s.WeekStartDate,
		Tasks:         make(map[DayOfWeek][]string, len(s.Tasks)),
		CreatedAt:     s.CreatedAt,
	}
	for day, ids := range s.Tasks {
		out.Tasks[day] = append([]string(nil), ids...)
	}
	return out
}
