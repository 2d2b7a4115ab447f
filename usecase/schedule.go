package usecase

import (
	"time"

	"main/model"
	"main/utils"
)

// ToggleScheduleTask returns a copy of schedule with taskID removed from
// the given day when present, appended to the end of that day's list
// otherwise. The input schedule is left untouched so edits can be thrown
// away before an explicit save; toggling twice restores the original
// assignment.
func ToggleScheduleTask(schedule *model.WeekSchedule, day model.DayOfWeek, taskID string) *model.WeekSchedule {
	out := schedule.Clone()
	if out.Tasks == nil {
		out.Tasks = make(map[model.DayOfWeek][]string)
	}

	ids := out.Tasks[day]
	for i, id := range ids {
		if id == taskID {
			out.Tasks[day] = append(ids[:i:i], ids[i+1:]...)
			return out
		}
	}
	out.Tasks[day] = append(ids, taskID)
	return out
}

// FindScheduleForWeek returns the schedule whose week_start_date matches
// exactly, or nil.
func FindScheduleForWeek(schedules []*model.WeekSchedule, weekStartDate string) *model.WeekSchedule {
	for _, s := range schedules {
		if s.WeekStartDate == weekStartDate {
			return s
		}
	}
	return nil
}

// NewWeekSchedule builds an empty schedule for the given week. The caller
// persists it with an explicit save; creation alone stores nothing.
func NewWeekSchedule(weekStartDate string, now time.Time) *model.WeekSchedule {
	return &model.WeekSchedule{
		ScheduleID:    utils.GenerateID(),
		WeekStartDate: weekStartDate,
		Tasks:         make(map[model.DayOfWeek][]string),
		CreatedAt:     now,
	}
}
